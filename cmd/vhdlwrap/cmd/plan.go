package cmd

import (
	"fmt"

	"github.com/OpenTraceLab/vhdlwrap/pkg/flatten"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var (
	planBits      int
	planInstances int
)

var planCmd = &cobra.Command{
	Use:   "plan <vhdl-file|-> <port>",
	Short: "Compute how a port splits into array elements",
	Long: `Compute the flatten plan of one port. With --bits only, the number of
instances is derived from the port's declared range, which must divide
evenly. With --instances as well, both dimensions are taken as given; use
this for ports without a numeric range.

Examples:
  vhdlwrap plan core.vhd data --bits 8
  vhdlwrap plan core.vhd valid --instances 4 --bits 1`,
	Args: cobra.ExactArgs(2),
	RunE: runPlan,
}

func init() {
	rootCmd.AddCommand(planCmd)

	planCmd.Flags().IntVarP(&planBits, "bits", "b", 0, "bits per instance")
	planCmd.Flags().IntVarP(&planInstances, "instances", "n", 0,
		"number of instances (skips the range check)")
	planCmd.MarkFlagRequired("bits")
}

func runPlan(cmd *cobra.Command, args []string) error {
	entity, err := parseEntity(cmd, args[0])
	if err != nil {
		return err
	}

	port, ok := entity.Port(args[1])
	if !ok {
		return fmt.Errorf("%w %q in entity %s", flatten.ErrUnknownPort, args[1], entity.Name)
	}

	var plan flatten.Plan
	if cmd.Flags().Changed("instances") {
		plan, err = flatten.Direct(planInstances, planBits)
		if err == nil {
			if r, rerr := port.Bounds(); rerr == nil && r.TotalBits() != plan.Width() {
				log.Warnf("port %s declares %d bits but plan %s spans %d", port.Name, r.TotalBits(), plan, plan.Width())
			}
		}
	} else {
		plan, err = flatten.FromBitsPerInstance(port, planBits)
	}
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	printf(out, "Port:       %s : %s %s\n", port.Name, port.Direction, port.TypeClause())
	printf(out, "Plan:       %s (%d instances x %d bits)\n", plan, plan.Instances, plan.BitsPerInstance)
	printf(out, "Total bits: %d\n", plan.Width())
	printf(out, "Type:       %s\n", plan.TypeName())
	printf(out, "Bus:        %s_flat(%d downto 0)\n", port.Name, plan.Width()-1)
	return nil
}
