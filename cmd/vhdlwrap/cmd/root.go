package cmd

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/OpenTraceLab/vhdlwrap/internal/config"
	"github.com/OpenTraceLab/vhdlwrap/pkg/flatten"
	"github.com/OpenTraceLab/vhdlwrap/pkg/vhdl"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var (
	// Global flags
	verbose     bool
	configPath  string
	strictParse bool

	// Loaded before any subcommand runs
	cfg *config.Config
)

var rootCmd = &cobra.Command{
	Use:   "vhdlwrap",
	Short: "VHDL wrapper generator for array-style ports",
	Long: `Generate a wrapper entity that exposes std_logic_vector ports of an
existing VHDL entity as arrays of vectors, together with a package declaring
the array types.

Examples:
  vhdlwrap parse core.vhd                           # List the entity's ports
  vhdlwrap plan core.vhd data --bits 8              # Split data into 8-bit elements
  vhdlwrap generate core.vhd -f data=8 -f ctl=4x2   # Print wrapper and package
  vhdlwrap generate core.vhd -f data=8 -o core_wrapper.vhd`,
	Version:           "0.3.0",
	SilenceUsage:      true,
	SilenceErrors:     true,
	PersistentPreRunE: setup,
}

// Execute runs the root command
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output")
	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "",
		"configuration file (default: ./vhdlwrap.json or ~/.config/vhdlwrap/config.json)")
	rootCmd.PersistentFlags().BoolVar(&strictParse, "strict", false,
		"parse with the strict entity grammar instead of the scanner")
}

func setup(cmd *cobra.Command, args []string) error {
	log.SetOutput(cmd.ErrOrStderr())
	log.SetLevel(log.InfoLevel)
	if verbose {
		log.SetLevel(log.DebugLevel)
	}

	var err error
	if configPath != "" {
		cfg, err = config.LoadFile(configPath)
	} else {
		cfg, err = config.Load(".")
	}
	if err != nil {
		return err
	}
	log.WithField("mode", cfg.Parser.Mode).Debug("configuration loaded")
	return nil
}

// parseEntity reads VHDL from path ("-" for stdin) and extracts its entity.
func parseEntity(cmd *cobra.Command, path string) (*vhdl.Entity, error) {
	mode := cfg.ParserMode()
	if strictParse {
		mode = vhdl.ModeStrict
	}

	parser, err := vhdl.NewParser(vhdl.WithMode(mode))
	if err != nil {
		return nil, fmt.Errorf("failed to create parser: %w", err)
	}

	var data []byte
	if path == "-" {
		data, err = io.ReadAll(cmd.InOrStdin())
	} else {
		data, err = os.ReadFile(path)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}
	src := string(data)

	entity, err := parser.ParseString(src)
	if err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", path, err)
	}

	if mode == vhdl.ModeScan {
		for _, names := range vhdl.IdentifierLists(src) {
			log.Warnf("%s: ports %s share a declaration; scan mode keeps only %s, use --strict to parse every name",
				path, strings.Join(names, ", "), names[len(names)-1])
		}
	}

	log.WithFields(log.Fields{
		"entity": entity.Name,
		"ports":  len(entity.Ports),
		"mode":   mode,
	}).Debug("entity parsed")
	return entity, nil
}

// flattenPlans resolves the config's flatten defaults together with the
// --flatten flags. A flag naming a port replaces the config entry for it.
func flattenPlans(entity *vhdl.Entity, flags []string) (flatten.Plans, error) {
	defaults, err := flatten.ParseRequests(cfg.Flatten)
	if err != nil {
		return nil, fmt.Errorf("config flatten: %w", err)
	}
	overrides, err := flatten.ParseRequests(flags)
	if err != nil {
		return nil, err
	}
	return flatten.Annotate(*entity, flatten.Merge(defaults, overrides))
}

func printf(w io.Writer, format string, a ...any) {
	fmt.Fprintf(w, format, a...)
}
