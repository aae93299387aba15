package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jbweber/vms/internal/vm"
)

var getCmd = &cobra.Command{
	Use:   "get <vm-name>",
	Short: "Get details about a VM",
	Long: `Get the inventory record of a single VM, matched by display name
ignoring case.

Output formats:
  -o plain  Name, with * if running (default)
  -o table  Name, state, and configuration path
  -o yaml   YAML document
  -o json   JSON object`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		vmName := args[0]

		formatter, err := newFormatter()
		if err != nil {
			return err
		}

		root, err := settings.ExpandedVMPath()
		if err != nil {
			return err
		}

		v, err := vm.FindByName(cmd.Context(), root, vmName, newClient())
		if err != nil {
			return err
		}

		result, err := formatter.FormatVM(v)
		if err != nil {
			return fmt.Errorf("failed to format output: %w", err)
		}

		_, err = fmt.Fprint(cmd.OutOrStdout(), result)
		return err
	},
}

func init() {
	addOutputFlags(getCmd)
}
