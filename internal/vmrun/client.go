// Package vmrun wraps VMware's vmrun command-line utility.
//
// Only the operations needed for inventory and power control are exposed:
// listing running VMs and starting, stopping, or suspending a VM by the path
// of its configuration file. vmrun's own semantics are trusted; a zero exit
// status is treated as success without checking the VM afterwards.
package vmrun

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os/exec"
	"strings"
	"unicode/utf8"
)

// DefaultPath is the vmrun executable looked up on PATH when none is configured.
const DefaultPath = "vmrun"

var (
	// ErrInvocation is returned when vmrun cannot be launched or exits non-zero.
	ErrInvocation = errors.New("vmrun invocation failed")

	// ErrDecode is returned when vmrun output is not valid UTF-8 text.
	ErrDecode = errors.New("vmrun output is not valid UTF-8")
)

// runFunc runs a command and returns its stdout and stderr.
type runFunc func(ctx context.Context, name string, args ...string) (stdout, stderr []byte, err error)

// Client invokes vmrun as a subprocess.
type Client struct {
	// Path is the vmrun executable, either a bare name resolved on PATH or an absolute path.
	Path string

	// HostType, when set, is passed as vmrun's -T flag (fusion, ws, player).
	HostType string

	run runFunc
}

// Option configures a Client.
type Option func(*Client)

// WithPath sets the vmrun executable.
func WithPath(path string) Option {
	return func(c *Client) {
		if path != "" {
			c.Path = path
		}
	}
}

// WithHostType sets the -T host type passed to every invocation.
func WithHostType(hostType string) Option {
	return func(c *Client) {
		c.HostType = hostType
	}
}

// NewClient creates a Client that runs vmrun from PATH unless overridden.
func NewClient(opts ...Option) *Client {
	c := &Client{
		Path: DefaultPath,
		run:  execRun,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// ListRunning returns the configuration paths of the VMs vmrun reports as running.
//
// The first line of output is a "Total running VMs: N" header and is dropped.
// Paths are returned verbatim so they compare equal to inventory paths.
func (c *Client) ListRunning(ctx context.Context) ([]string, error) {
	stdout, err := c.invoke(ctx, "list")
	if err != nil {
		return nil, err
	}

	if !utf8.Valid(stdout) {
		return nil, ErrDecode
	}

	return parseList(string(stdout)), nil
}

// Manage performs action on the VM whose configuration file is at path.
func (c *Client) Manage(ctx context.Context, path string, action Action) error {
	_, err := c.invoke(ctx, action.String(), path)
	return err
}

// args builds the vmrun argument list, prefixing -T when a host type is set.
func (c *Client) args(verb string, params ...string) []string {
	args := make([]string, 0, len(params)+3)
	if c.HostType != "" {
		args = append(args, "-T", c.HostType)
	}
	args = append(args, verb)
	return append(args, params...)
}

func (c *Client) invoke(ctx context.Context, verb string, params ...string) ([]byte, error) {
	args := c.args(verb, params...)
	stdout, stderr, err := c.run(ctx, c.Path, args...)
	if err != nil {
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			// vmrun reports most failures on stdout as "Error: ...".
			detail := strings.TrimSpace(string(stderr))
			if detail == "" {
				detail = strings.TrimSpace(string(stdout))
			}
			return nil, fmt.Errorf("%w: %s %s: exit status %d: %s",
				ErrInvocation, c.Path, strings.Join(args, " "), exitErr.ExitCode(), detail)
		}
		return nil, fmt.Errorf("%w: failed to run %s: %w", ErrInvocation, c.Path, err)
	}
	return stdout, nil
}

// parseList drops the header line and returns one path per remaining line.
func parseList(out string) []string {
	lines := strings.Split(out, "\n")
	if len(lines) <= 1 {
		return []string{}
	}

	paths := make([]string, 0, len(lines)-1)
	for _, line := range lines[1:] {
		line = strings.TrimSuffix(line, "\r")
		if line == "" {
			continue
		}
		paths = append(paths, line)
	}
	return paths
}

func execRun(ctx context.Context, name string, args ...string) ([]byte, []byte, error) {
	var stdout, stderr bytes.Buffer
	cmd := exec.CommandContext(ctx, name, args...)
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr
	err := cmd.Run()
	return stdout.Bytes(), stderr.Bytes(), err
}
