package cmd

import (
	"fmt"
	"os"

	"github.com/OpenTraceLab/vhdlwrap/internal/config"
	"github.com/spf13/cobra"
)

var initForce bool

var initCmd = &cobra.Command{
	Use:   "init [path]",
	Short: "Create a vhdlwrap.json configuration file",
	Args:  cobra.MaximumNArgs(1),
	RunE:  runInit,
}

func init() {
	rootCmd.AddCommand(initCmd)

	initCmd.Flags().BoolVar(&initForce, "force", false, "overwrite an existing file")
}

func runInit(cmd *cobra.Command, args []string) error {
	path := config.FileName
	if len(args) == 1 {
		path = args[0]
	}

	if _, err := os.Stat(path); err == nil && !initForce {
		return fmt.Errorf("config file %s already exists (use --force to overwrite)", path)
	}

	if err := config.DefaultConfig().Save(path); err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	printf(out, "Created %s\n", path)
	printf(out, "\nEdit this file to configure:\n")
	printf(out, "  - Parser mode (scan or strict)\n")
	printf(out, "  - Architecture, library and package naming\n")
	printf(out, "  - Default flatten requests\n")
	return nil
}
