package cmd

import "github.com/spf13/cobra"

var parseFlatten []string

var parseCmd = &cobra.Command{
	Use:   "parse <vhdl-file|->",
	Short: "Parse a VHDL entity and list its ports",
	Long: `Parse a VHDL entity and display its name and ports in declaration
order. With --flatten the resulting plan of each requested port is shown;
flatten entries from the config file apply too, and a flag naming the same
port replaces them.

The default scan mode keeps only the last name of a list such as
"a, b : in std_logic" and logs a warning. Use --strict to parse every name.

Examples:
  vhdlwrap parse core.vhd
  vhdlwrap parse --strict core.vhd
  cat core.vhd | vhdlwrap parse -f data=8 -`,
	Args: cobra.ExactArgs(1),
	RunE: runParse,
}

func init() {
	rootCmd.AddCommand(parseCmd)

	parseCmd.Flags().StringArrayVarP(&parseFlatten, "flatten", "f", nil,
		"flatten request: name=bits or name=NxB (repeatable)")
}

func runParse(cmd *cobra.Command, args []string) error {
	entity, err := parseEntity(cmd, args[0])
	if err != nil {
		return err
	}

	plans, err := flattenPlans(entity, parseFlatten)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	printf(out, "Entity: %s\n", entity.Name)
	if !entity.Resolved() {
		printf(out, "  (no \"entity <name> is\" header found)\n")
	}
	printf(out, "Ports: %d total\n", len(entity.Ports))
	printf(out, "  %-20s %-4s %-20s %-16s %s\n", "NAME", "DIR", "TYPE", "RANGE", "FLATTEN")
	for _, port := range entity.Ports {
		rng := port.Range
		if rng == "" {
			rng = "-"
		}
		flat := ""
		if plan, ok := plans.Lookup(port.Name); ok {
			flat = plan.String()
		}
		printf(out, "  %-20s %-4s %-20s %-16s %s\n", port.Name, port.Direction, port.Type, rng, flat)
	}
	return nil
}
