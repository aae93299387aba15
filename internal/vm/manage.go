package vm

import (
	"context"
	"fmt"
	"io"

	"github.com/jbweber/vms/internal/logging"
	"github.com/jbweber/vms/internal/vmrun"
)

// Manage performs action on v and writes a notice such as "started Web Server"
// to w once vmrun reports success. The VM's state is not re-checked.
func Manage(ctx context.Context, rt Runtime, v VM, action vmrun.Action, w io.Writer) error {
	log := logging.WithContext(ctx).WithField("vm", v.Name).WithField("path", v.ConfigPath)
	log.WithField("action", action.String()).Debug("dispatching action")

	if err := rt.Manage(ctx, v.ConfigPath, action); err != nil {
		return fmt.Errorf("failed to %s %s: %w", action, v.Name, err)
	}

	_, _ = fmt.Fprintf(w, "%s %s\n", action.Past(), v.Name)
	return nil
}
