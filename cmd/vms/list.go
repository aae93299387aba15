package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jbweber/vms/internal/output"
	"github.com/jbweber/vms/internal/vm"
)

// Output flags shared by list and get
var (
	outputFormat string
	noHeaders    bool
)

func addOutputFlags(cmd *cobra.Command) {
	cmd.Flags().StringVarP(&outputFormat, "output", "o", "", "output format: plain, table, yaml, json (default from config, else plain)")
	cmd.Flags().BoolVar(&noHeaders, "no-headers", false, "omit table headers")
}

// newFormatter builds the formatter selected by -o, falling back to the configured default.
func newFormatter() (output.Formatter, error) {
	format := outputFormat
	if format == "" {
		format = settings.Output
	}

	if err := output.ValidateFormat(format); err != nil {
		return nil, err
	}

	return output.NewFormatter(output.Options{
		Format:    output.Format(format),
		NoHeaders: noHeaders,
	})
}

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List VMs (* marks a running VM)",
	Long: `List every VM found under the VM path.

In the default plain format each VM's display name is printed on its own
line, with * appended to the names of running VMs.

Output formats:
  -o plain  One name per line (default)
  -o table  Name, state, and configuration path
  -o yaml   YAML stream, one document per VM
  -o json   JSON array`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		formatter, err := newFormatter()
		if err != nil {
			return err
		}

		root, err := settings.ExpandedVMPath()
		if err != nil {
			return err
		}

		vms, err := vm.BuildInventory(cmd.Context(), root, newClient())
		if err != nil {
			return fmt.Errorf("failed to list VMs: %w", err)
		}

		result, err := formatter.FormatVMList(vms)
		if err != nil {
			return fmt.Errorf("failed to format output: %w", err)
		}

		_, err = fmt.Fprint(cmd.OutOrStdout(), result)
		return err
	},
}

func init() {
	addOutputFlags(listCmd)
}
