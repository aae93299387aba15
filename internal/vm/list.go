package vm

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"iter"
	"os"
	"path/filepath"
	"strings"

	"github.com/jbweber/vms/internal/logging"
	"github.com/jbweber/vms/internal/vmx"
)

// VM represents one virtual machine discovered on disk.
type VM struct {
	// Name is the display name, or vmx.UnknownName if the file declares none.
	Name string `json:"name" yaml:"name"`

	// ConfigPath is the absolute path of the .vmx file and the VM's identity.
	ConfigPath string `json:"configPath" yaml:"configPath"`

	// Running is true if vmrun listed ConfigPath when the inventory was built.
	Running bool `json:"running" yaml:"running"`
}

// ErrNotFound is matched by errors returned when no VM has the requested name.
var ErrNotFound = errors.New("VM not found")

// NotFoundError reports a failed lookup by display name.
type NotFoundError struct {
	Name string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("no VM named %q found", e.Name)
}

// Is reports whether target is ErrNotFound.
func (e *NotFoundError) Is(target error) bool {
	return target == ErrNotFound
}

// BuildInventory lists every VM whose .vmx file lives under root.
//
// Records are returned in walk order (lexical by path). If root is a symlink
// its target is walked, but ConfigPath stays under root as given. A VM is
// marked running if its configuration path, or the same path under the link
// target, appears verbatim in rt.ListRunning.
func BuildInventory(ctx context.Context, root string, rt Runtime) ([]VM, error) {
	log := logging.WithContext(ctx)

	running, err := rt.ListRunning(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list running VMs: %w", err)
	}
	runningSet := make(map[string]struct{}, len(running))
	for _, path := range running {
		runningSet[path] = struct{}{}
	}

	absRoot, walkRoot, err := resolveRoot(root)
	if err != nil {
		return nil, err
	}

	vms := []VM{}
	for resolved, err := range configFiles(ctx, walkRoot) {
		if err != nil {
			return nil, fmt.Errorf("failed to scan VM path %s: %w", absRoot, err)
		}

		// Report paths under the root as given, not under its link target.
		rel, err := filepath.Rel(walkRoot, resolved)
		if err != nil {
			return nil, fmt.Errorf("failed to scan VM path %s: %w", absRoot, err)
		}
		path := filepath.Join(absRoot, rel)

		name, err := vmx.ExtractName(path)
		if err != nil {
			log.WithError(err).WithField("path", path).Debug("skipping unreadable configuration")
			continue
		}

		_, isRunning := runningSet[path]
		if !isRunning {
			_, isRunning = runningSet[resolved]
		}
		vms = append(vms, VM{
			Name:       name,
			ConfigPath: path,
			Running:    isRunning,
		})
	}

	log.WithField("vms", len(vms)).WithField("running", len(running)).Debug("inventory built")
	return vms, nil
}

// resolveRoot returns root as an absolute path and the directory to walk,
// which is root with any symlinks resolved. A root that does not exist, or
// is neither a directory nor a .vmx file, is an error.
func resolveRoot(root string) (absRoot, walkRoot string, err error) {
	absRoot, err = filepath.Abs(root)
	if err != nil {
		return "", "", fmt.Errorf("failed to resolve VM path %s: %w", root, err)
	}

	walkRoot, err = filepath.EvalSymlinks(absRoot)
	if err != nil {
		return "", "", fmt.Errorf("failed to resolve VM path %s: %w", absRoot, err)
	}

	info, err := os.Stat(walkRoot)
	if err != nil {
		return "", "", fmt.Errorf("failed to resolve VM path %s: %w", absRoot, err)
	}
	if !info.IsDir() && !(info.Mode().IsRegular() && vmx.HasConfigExt(walkRoot)) {
		return "", "", fmt.Errorf("VM path %s is not a directory", absRoot)
	}

	return absRoot, walkRoot, nil
}

// configFiles yields the path of every regular .vmx file under root.
//
// Errors below root are logged and skipped. An error on root itself is
// yielded once and ends the sequence.
func configFiles(ctx context.Context, root string) iter.Seq2[string, error] {
	log := logging.WithContext(ctx)

	return func(yield func(string, error) bool) {
		_ = filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
			if err != nil {
				if path == root {
					yield("", err)
					return filepath.SkipAll
				}
				log.WithError(err).WithField("path", path).Debug("skipping unreadable entry")
				if d != nil && d.IsDir() {
					return filepath.SkipDir
				}
				return nil
			}

			if !d.Type().IsRegular() || !vmx.HasConfigExt(path) {
				return nil
			}

			if !yield(path, nil) {
				return filepath.SkipAll
			}
			return nil
		})
	}
}

// FindByName builds the inventory under root and returns the VM whose display
// name equals name, ignoring case.
//
// Display names are not unique. When several VMs share a name, the first one
// in inventory order is returned.
func FindByName(ctx context.Context, root, name string, rt Runtime) (VM, error) {
	vms, err := BuildInventory(ctx, root, rt)
	if err != nil {
		return VM{}, err
	}

	for _, v := range vms {
		if strings.EqualFold(v.Name, name) {
			return v, nil
		}
	}

	return VM{}, &NotFoundError{Name: name}
}

// Summary returns the number of VMs and how many of them are running.
func Summary(vms []VM) (total, running int) {
	for _, v := range vms {
		if v.Running {
			running++
		}
	}
	return len(vms), running
}
