// Package output provides formatters for displaying the VM inventory
// in various formats (plain, table, YAML, JSON).
package output

import (
	"fmt"

	"github.com/jbweber/vms/internal/vm"
)

// Format represents an output format type.
type Format string

const (
	// FormatPlain prints one display name per line, marking running VMs.
	FormatPlain Format = "plain"
	// FormatTable is a human-readable table format.
	FormatTable Format = "table"
	// FormatYAML is a YAML format.
	FormatYAML Format = "yaml"
	// FormatJSON is a JSON format for machine consumption.
	FormatJSON Format = "json"
)

// Formatter formats VM records for output.
type Formatter interface {
	// FormatVM formats a single VM.
	FormatVM(v vm.VM) (string, error)

	// FormatVMList formats a list of VMs.
	FormatVMList(vms []vm.VM) (string, error)
}

// Options contains options for formatting output.
type Options struct {
	// Format specifies the output format.
	Format Format
	// NoHeaders omits headers in table format.
	NoHeaders bool
}

// NewFormatter creates a new Formatter based on the specified format.
func NewFormatter(opts Options) (Formatter, error) {
	switch opts.Format {
	case FormatPlain:
		return &PlainFormatter{}, nil
	case FormatTable:
		return &TableFormatter{NoHeaders: opts.NoHeaders}, nil
	case FormatYAML:
		return &YAMLFormatter{}, nil
	case FormatJSON:
		return &JSONFormatter{}, nil
	default:
		return nil, fmt.Errorf("unsupported output format: %s (supported: plain, table, yaml, json)", opts.Format)
	}
}

// ValidateFormat checks if a format string is valid.
func ValidateFormat(format string) error {
	f := Format(format)
	switch f {
	case FormatPlain, FormatTable, FormatYAML, FormatJSON:
		return nil
	default:
		return fmt.Errorf("invalid format: %s (valid formats: plain, table, yaml, json)", format)
	}
}
