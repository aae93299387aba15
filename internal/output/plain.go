package output

import (
	"strings"

	"github.com/jbweber/vms/internal/vm"
)

// RunningMarker is appended to the name of a running VM in plain output.
const RunningMarker = "*"

// PlainFormatter prints one display name per line.
type PlainFormatter struct{}

// FormatVM formats a single VM as its name, marked if running.
func (f *PlainFormatter) FormatVM(v vm.VM) (string, error) {
	return f.FormatVMList([]vm.VM{v})
}

// FormatVMList formats each VM on its own line. An empty list prints nothing.
func (f *PlainFormatter) FormatVMList(vms []vm.VM) (string, error) {
	var b strings.Builder
	for _, v := range vms {
		b.WriteString(v.Name)
		if v.Running {
			b.WriteString(RunningMarker)
		}
		b.WriteByte('\n')
	}
	return b.String(), nil
}
