package main

import (
	"github.com/spf13/cobra"

	"github.com/jbweber/vms/internal/vm"
	"github.com/jbweber/vms/internal/vmrun"
)

// newActionCmd builds the start, stop, and suspend commands.
func newActionCmd(action vmrun.Action, short, long string) *cobra.Command {
	return &cobra.Command{
		Use:   action.String() + " <vm-name>",
		Short: short,
		Long: long + `

The VM is matched by display name, ignoring case. If several VMs share
the name, the first one found under the VM path is used.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			vmName := args[0]

			root, err := settings.ExpandedVMPath()
			if err != nil {
				return err
			}

			client := newClient()
			v, err := vm.FindByName(cmd.Context(), root, vmName, client)
			if err != nil {
				return err
			}

			return vm.Manage(cmd.Context(), client, v, action, cmd.ErrOrStderr())
		},
	}
}
