// Package config loads settings for the vms command.
//
// Settings are resolved in order of increasing precedence: built-in
// defaults, the YAML config file, environment variables, and finally
// command-line flags (applied by the caller).
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"runtime"
	"strings"

	"github.com/mitchellh/go-homedir"
	"github.com/sirupsen/logrus"
	"gopkg.in/yaml.v3"

	"github.com/jbweber/vms/internal/output"
	"github.com/jbweber/vms/internal/vmrun"
)

// Environment variables that override config file values.
const (
	EnvVMPath   = "VMS_VM_PATH"
	EnvVMRun    = "VMRUN"
	EnvHostType = "VMS_HOST_TYPE"
)

// Config holds the settings for one invocation.
type Config struct {
	VMPath   string `yaml:"vm_path,omitempty"`   // Directory searched for .vmx files; "~" is expanded
	VMRun    string `yaml:"vmrun,omitempty"`     // vmrun executable (default: "vmrun" on PATH)
	HostType string `yaml:"host_type,omitempty"` // vmrun -T value: fusion, ws, player, or empty
	Output   string `yaml:"output,omitempty"`    // Default list format (default: "plain")
	LogLevel string `yaml:"log_level,omitempty"` // logrus level (default: "warn")
}

// DefaultVMPath returns the directory VMware stores VMs in on goos.
func DefaultVMPath(goos string) string {
	switch goos {
	case "darwin":
		return "~/Documents/Virtual Machines.localized/"
	case "windows":
		return "~/Documents/Virtual Machines"
	default:
		return "~/vmware"
	}
}

// Default returns the built-in configuration for the current platform.
func Default() *Config {
	return &Config{
		VMPath:   DefaultVMPath(runtime.GOOS),
		VMRun:    vmrun.DefaultPath,
		Output:   string(output.FormatPlain),
		LogLevel: logrus.WarnLevel.String(),
	}
}

// DefaultFile returns the default config file location,
// e.g. ~/.config/vms/config.yaml on Linux.
func DefaultFile() (string, error) {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("failed to determine config directory: %w", err)
	}
	return filepath.Join(dir, "vms", "config.yaml"), nil
}

// Load builds the configuration from defaults, the file at path, and the
// environment.
//
// If path is empty, DefaultFile is used and a missing file is not an error.
// A path given explicitly must exist. The result is not validated, so callers
// can overlay flags first and then call Validate.
func Load(path string) (*Config, error) {
	cfg := Default()

	explicit := path != ""
	if !explicit {
		defaultPath, err := DefaultFile()
		if err == nil {
			path = defaultPath
		}
	}

	if path != "" {
		if err := cfg.mergeFile(path); err != nil {
			if explicit || !errors.Is(err, fs.ErrNotExist) {
				return nil, err
			}
		}
	}

	cfg.applyEnv()

	return cfg, nil
}

// mergeFile overlays non-empty values from the YAML file at path.
func (c *Config) mergeFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read config file: %w", err)
	}

	var file Config
	if err := yaml.Unmarshal(data, &file); err != nil {
		return fmt.Errorf("failed to parse YAML in %s: %w", path, err)
	}

	c.Merge(&file)
	return nil
}

// Merge overlays the non-empty fields of other onto c.
func (c *Config) Merge(other *Config) {
	if other.VMPath != "" {
		c.VMPath = other.VMPath
	}
	if other.VMRun != "" {
		c.VMRun = other.VMRun
	}
	if other.HostType != "" {
		c.HostType = other.HostType
	}
	if other.Output != "" {
		c.Output = other.Output
	}
	if other.LogLevel != "" {
		c.LogLevel = other.LogLevel
	}
}

func (c *Config) applyEnv() {
	c.Merge(&Config{
		VMPath:   os.Getenv(EnvVMPath),
		VMRun:    os.Getenv(EnvVMRun),
		HostType: os.Getenv(EnvHostType),
	})
}

// Validate checks the configuration for errors.
// Does not check that vmrun or the VM directory exist.
func (c *Config) Validate() error {
	if strings.TrimSpace(c.VMPath) == "" {
		return fmt.Errorf("vm_path is required")
	}

	switch c.HostType {
	case "", "fusion", "ws", "player":
	default:
		return fmt.Errorf("host_type must be one of fusion, ws, player, got %q", c.HostType)
	}

	if err := output.ValidateFormat(c.Output); err != nil {
		return fmt.Errorf("output: %w", err)
	}

	if _, err := logrus.ParseLevel(c.LogLevel); err != nil {
		return fmt.Errorf("log_level: %w", err)
	}

	return nil
}

// ExpandedVMPath returns VMPath with a leading "~" replaced by the home directory.
func (c *Config) ExpandedVMPath() (string, error) {
	path, err := homedir.Expand(c.VMPath)
	if err != nil {
		return "", fmt.Errorf("failed to expand vm_path %q: %w", c.VMPath, err)
	}
	return path, nil
}
