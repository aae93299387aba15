package config

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"runtime"
	"testing"

	"github.com/mitchellh/go-homedir"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// isolate points the user config dir and home at a temp dir and clears
// the environment overrides.
func isolate(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	t.Setenv("HOME", dir)
	t.Setenv("XDG_CONFIG_HOME", filepath.Join(dir, ".config"))
	t.Setenv("AppData", filepath.Join(dir, "AppData"))
	t.Setenv(EnvVMPath, "")
	t.Setenv(EnvVMRun, "")
	t.Setenv(EnvHostType, "")
	return dir
}

func writeConfig(t *testing.T, path, content string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
}

func TestLoad_DefaultsWhenNoFile(t *testing.T) {
	isolate(t)

	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
	assert.Equal(t, DefaultVMPath(runtime.GOOS), cfg.VMPath)
	assert.Equal(t, "vmrun", cfg.VMRun)
	assert.Equal(t, "plain", cfg.Output)
	assert.Equal(t, "warning", cfg.LogLevel)
}

func TestLoad_DefaultFile(t *testing.T) {
	isolate(t)
	path, err := DefaultFile()
	require.NoError(t, err)
	writeConfig(t, path, `vm_path: /srv/vmware
host_type: ws
output: table
`)

	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, "/srv/vmware", cfg.VMPath)
	assert.Equal(t, "ws", cfg.HostType)
	assert.Equal(t, "table", cfg.Output)
	assert.Equal(t, "vmrun", cfg.VMRun, "unset fields keep their defaults")
}

func TestLoad_ExplicitFile(t *testing.T) {
	dir := isolate(t)
	path := filepath.Join(dir, "custom.yaml")
	writeConfig(t, path, `vm_path: ~/VMs
vmrun: /Applications/VMware Fusion.app/Contents/Library/vmrun
host_type: fusion
log_level: debug
`)

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "~/VMs", cfg.VMPath)
	assert.Equal(t, "/Applications/VMware Fusion.app/Contents/Library/vmrun", cfg.VMRun)
	assert.Equal(t, "fusion", cfg.HostType)
	assert.Equal(t, "debug", cfg.LogLevel)
}

func TestLoad_ExplicitFileMissing(t *testing.T) {
	dir := isolate(t)

	_, err := Load(filepath.Join(dir, "nope.yaml"))
	require.Error(t, err)
	assert.True(t, errors.Is(err, fs.ErrNotExist))
}

func TestLoad_InvalidYAML(t *testing.T) {
	dir := isolate(t)
	path := filepath.Join(dir, "bad.yaml")
	writeConfig(t, path, "vm_path: [unterminated\n")

	_, err := Load(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to parse YAML")
}

func TestLoad_EnvOverridesFile(t *testing.T) {
	dir := isolate(t)
	path := filepath.Join(dir, "config.yaml")
	writeConfig(t, path, `vm_path: /from/file
vmrun: /from/file/vmrun
host_type: ws
`)
	t.Setenv(EnvVMPath, "/from/env")
	t.Setenv(EnvVMRun, "/from/env/vmrun")
	t.Setenv(EnvHostType, "player")

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "/from/env", cfg.VMPath)
	assert.Equal(t, "/from/env/vmrun", cfg.VMRun)
	assert.Equal(t, "player", cfg.HostType)
}

func TestLoad_InvalidValues(t *testing.T) {
	tests := []struct {
		name    string
		content string
		wantErr string
	}{
		{
			name:    "bad host type",
			content: "host_type: esxi\n",
			wantErr: "host_type",
		},
		{
			name:    "bad output",
			content: "output: xml\n",
			wantErr: "output",
		},
		{
			name:    "bad log level",
			content: "log_level: chatty\n",
			wantErr: "log_level",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dir := isolate(t)
			path := filepath.Join(dir, "config.yaml")
			writeConfig(t, path, tt.content)

			cfg, err := Load(path)
			require.NoError(t, err, "Load leaves validation to the caller")

			err = cfg.Validate()
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestLoad_InvalidEnvOverriddenLater(t *testing.T) {
	isolate(t)
	t.Setenv(EnvHostType, "bogus")

	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, "bogus", cfg.HostType)
	assert.Error(t, cfg.Validate())

	cfg.Merge(&Config{HostType: "fusion"})
	assert.NoError(t, cfg.Validate())
}

func TestValidate_EmptyVMPath(t *testing.T) {
	cfg := Default()
	cfg.VMPath = "  "
	assert.Error(t, cfg.Validate())
}

func TestMerge(t *testing.T) {
	cfg := Default()
	cfg.Merge(&Config{Output: "json"})
	assert.Equal(t, "json", cfg.Output)
	assert.Equal(t, "vmrun", cfg.VMRun)

	cfg.Merge(&Config{})
	assert.Equal(t, "json", cfg.Output, "empty values do not override")
}

func TestDefaultVMPath(t *testing.T) {
	assert.Equal(t, "~/Documents/Virtual Machines.localized/", DefaultVMPath("darwin"))
	assert.Equal(t, "~/Documents/Virtual Machines", DefaultVMPath("windows"))
	assert.Equal(t, "~/vmware", DefaultVMPath("linux"))
}

func TestExpandedVMPath(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("home directory comes from USERPROFILE on windows")
	}
	homedir.DisableCache = true
	t.Cleanup(func() { homedir.DisableCache = false })

	home := isolate(t)

	tests := []struct {
		vmPath string
		want   string
	}{
		{"~/Documents/Virtual Machines.localized/", filepath.Join(home, "Documents", "Virtual Machines.localized")},
		{"~", home},
		{"/absolute/path", "/absolute/path"},
		{"relative/path", "relative/path"},
	}

	for _, tt := range tests {
		t.Run(tt.vmPath, func(t *testing.T) {
			cfg := &Config{VMPath: tt.vmPath}
			got, err := cfg.ExpandedVMPath()
			require.NoError(t, err)
			assert.Equal(t, tt.want, filepath.Clean(got))
		})
	}

	_, err := (&Config{VMPath: "~someone/vms"}).ExpandedVMPath()
	assert.Error(t, err)
}
