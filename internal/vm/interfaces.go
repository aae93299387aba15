package vm

import (
	"context"

	"github.com/jbweber/vms/internal/vmrun"
)

// Runtime defines the vmrun operations needed for inventory and control.
//
// In production, this is satisfied by *vmrun.Client.
// In tests, this is satisfied by mock implementations.
type Runtime interface {
	// ListRunning returns the configuration paths of running VMs
	ListRunning(ctx context.Context) ([]string, error)

	// Manage performs a power action on the VM at path
	Manage(ctx context.Context, path string, action vmrun.Action) error
}

var _ Runtime = (*vmrun.Client)(nil)
