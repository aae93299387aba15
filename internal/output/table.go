package output

import (
	"bytes"
	"fmt"
	"text/tabwriter"

	"github.com/jbweber/vms/internal/vm"
)

// TableFormatter formats VMs as human-readable tables.
type TableFormatter struct {
	// NoHeaders omits the header row and the totals footer.
	NoHeaders bool
}

// FormatVM formats a single VM as a table row.
func (f *TableFormatter) FormatVM(v vm.VM) (string, error) {
	return f.FormatVMList([]vm.VM{v})
}

// FormatVMList formats a list of VMs as a table.
func (f *TableFormatter) FormatVMList(vms []vm.VM) (string, error) {
	if len(vms) == 0 {
		return "No VMs found\n", nil
	}

	var buf bytes.Buffer
	w := tabwriter.NewWriter(&buf, 0, 0, 2, ' ', 0)

	// Write header unless NoHeaders is set
	if !f.NoHeaders {
		_, _ = fmt.Fprintln(w, "NAME\tSTATE\tPATH")
	}

	for _, v := range vms {
		_, _ = fmt.Fprintf(w, "%s\t%s\t%s\n", v.Name, stateString(v.Running), v.ConfigPath)
	}

	_ = w.Flush()

	if !f.NoHeaders && len(vms) > 1 {
		total, running := vm.Summary(vms)
		_, _ = fmt.Fprintf(&buf, "\nTotal: %d VM(s), %d running\n", total, running)
	}

	return buf.String(), nil
}

// stateString converts the running flag to the STATE column value.
// vmrun only reports running VMs, so anything else is "not running"
// rather than a more specific state such as suspended.
func stateString(running bool) string {
	if running {
		return "running"
	}
	return "not running"
}
