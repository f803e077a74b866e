package cmd

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/OpenTraceLab/vhdlwrap/pkg/vhdl"
	"github.com/OpenTraceLab/vhdlwrap/pkg/wrapper"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"golang.org/x/term"
)

var (
	genFlatten    []string
	genOutput     string
	genPackageOut string
	genArch       string
	genForce      bool
)

var generateCmd = &cobra.Command{
	Use:   "generate <vhdl-file|->",
	Short: "Generate the wrapper entity and its type package",
	Long: `Generate a wrapper around the parsed entity. Ports named with --flatten
are exposed as arrays of std_logic_vector; all other ports pass through.

Without --output both units are printed to stdout. With --output the wrapper
is written there and the package next to it (or to --package-out, which
requires --output). Existing files are overwritten. Paths without an
extension get ".vhd". Flatten entries from the config file apply unless a
--flatten flag names the same port.

Examples:
  vhdlwrap generate core.vhd -f data=8
  vhdlwrap generate core.vhd -f data=8 -f valid=4x1 -o build/core_wrapper.vhd`,
	Args: cobra.ExactArgs(1),
	RunE: runGenerate,
}

func init() {
	rootCmd.AddCommand(generateCmd)

	generateCmd.Flags().StringArrayVarP(&genFlatten, "flatten", "f", nil,
		"flatten request: name=bits or name=NxB (repeatable)")
	generateCmd.Flags().StringVarP(&genOutput, "output", "o", "",
		"write the wrapper to this file")
	generateCmd.Flags().StringVarP(&genPackageOut, "package-out", "p", "",
		"write the type package to this file (default: next to --output)")
	generateCmd.Flags().StringVar(&genArch, "arch", "",
		"architecture name (overrides config)")
	generateCmd.Flags().BoolVar(&genForce, "force", false,
		"generate even when no entity name was found")
}

func runGenerate(cmd *cobra.Command, args []string) error {
	if genPackageOut != "" && genOutput == "" {
		return errors.New("--package-out requires --output")
	}

	entity, err := parseEntity(cmd, args[0])
	if err != nil {
		return err
	}

	if !entity.Resolved() {
		if !genForce {
			return fmt.Errorf("no \"entity <name> is\" header found in %s; use --force to generate %s anyway",
				args[0], entity.WrapperName())
		}
		log.Warnf("entity name not found, generating %s", entity.WrapperName())
	}

	plans, err := flattenPlans(entity, genFlatten)
	if err != nil {
		return err
	}
	for name, plan := range plans {
		log.WithFields(log.Fields{"port": name, "plan": plan.String()}).Debug("flatten plan attached")
	}

	opts := cfg.WrapperOptions(entity.Name)
	if genArch != "" {
		opts.Architecture = genArch
	}
	res, err := wrapper.New(opts).Generate(*entity, plans)
	if err != nil {
		return err
	}
	log.WithField("types", len(res.Types)).Debug("wrapper generated")

	if genOutput == "" {
		return printUnits(cmd.OutOrStdout(), entity, res)
	}
	return writeUnits(cmd.OutOrStdout(), res)
}

// printUnits writes both units to w. On a terminal each unit is preceded by
// a comment naming the file it would be saved as.
func printUnits(w io.Writer, entity *vhdl.Entity, res *wrapper.Result) error {
	banners := false
	if f, ok := w.(*os.File); ok {
		banners = term.IsTerminal(int(f.Fd()))
	}

	if banners {
		printf(w, "-- ===== %s.vhd =====\n", entity.WrapperName())
	}
	printf(w, "%s\n", res.Wrapper)
	if banners {
		printf(w, "-- ===== %s.vhd =====\n", res.PackageName)
	}
	printf(w, "%s", res.Package)
	return nil
}

func writeUnits(w io.Writer, res *wrapper.Result) error {
	wrapperPath := withExtension(genOutput)
	pkgPath := genPackageOut
	if pkgPath == "" {
		pkgPath = filepath.Join(filepath.Dir(wrapperPath), res.PackageName+".vhd")
	}
	pkgPath = withExtension(pkgPath)

	if err := writeFile(wrapperPath, res.Wrapper); err != nil {
		return err
	}
	if err := writeFile(pkgPath, res.Package); err != nil {
		return err
	}

	printf(w, "Wrapper written to %s\n", wrapperPath)
	printf(w, "Package written to %s\n", pkgPath)
	return nil
}

// withExtension appends ".vhd" to paths that have no extension.
func withExtension(path string) string {
	if filepath.Ext(path) == "" {
		return path + ".vhd"
	}
	return path
}

func writeFile(path, content string) error {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("failed to create %s: %w", dir, err)
		}
	}
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	log.WithField("path", path).Debug("file written")
	return nil
}
