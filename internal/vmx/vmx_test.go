package vmx

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeVMX(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "test.vmx")
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestExtractName(t *testing.T) {
	tests := []struct {
		name    string
		content string
		want    string
	}{
		{
			name: "typical fusion config",
			content: `.encoding = "UTF-8"
config.version = "8"
virtualHW.version = "19"
displayName = "Web Server"
guestOS = "ubuntu-64"
`,
			want: "Web Server",
		},
		{
			name:    "no displayname line",
			content: "config.version = \"8\"\nguestOS = \"other\"\n",
			want:    UnknownName,
		},
		{
			name:    "empty file",
			content: "",
			want:    UnknownName,
		},
		{
			name:    "first occurrence wins",
			content: "displayname = \"First\"\ndisplayname = \"Second\"\n",
			want:    "First",
		},
		{
			name:    "lowercase key",
			content: "displayname = \"Build Box\"\n",
			want:    "Build Box",
		},
		{
			name:    "empty display name",
			content: "displayname = \"\"\n",
			want:    "",
		},
		{
			name:    "crlf line endings",
			content: "config.version = \"8\"\r\ndisplayname = \"Windows 11\"\r\n",
			want:    "Windows 11",
		},
		{
			name:    "last line without newline",
			content: "guestOS = \"darwin\"\ndisplayname = \"macOS\"",
			want:    "macOS",
		},
		{
			name:    "malformed lines are skipped",
			content: "displayname=\"no spaces\"\ndisplayname = unquoted\ndisplayname = \"Good\"\n",
			want:    "Good",
		},
		{
			name:    "unicode name",
			content: "displayname = \"Überserver ✓\"\n",
			want:    "Überserver ✓",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ExtractName(writeVMX(t, tt.content))
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestExtractName_LongLine(t *testing.T) {
	// Longer than bufio.Scanner's default token limit.
	content := "annotation = \"" + strings.Repeat("x", 200*1024) + "\"\ndisplayname = \"After Long Line\"\n"

	got, err := ExtractName(writeVMX(t, content))
	require.NoError(t, err)
	assert.Equal(t, "After Long Line", got)
}

func TestExtractName_MissingFile(t *testing.T) {
	_, err := ExtractName(filepath.Join(t.TempDir(), "missing.vmx"))
	require.Error(t, err)
	assert.True(t, errors.Is(err, fs.ErrNotExist), "expected fs.ErrNotExist, got %v", err)
}

func TestHasConfigExt(t *testing.T) {
	tests := []struct {
		path string
		want bool
	}{
		{"/vms/a/one.vmx", true},
		{"one.vmx", true},
		{"/vms/a/one.vmxf", false},
		{"/vms/a/one.vmsd", false},
		{"/vms/a/one.VMX", false},
		{"/vms/a/vmx", false},
		{"/vms/a/one.vmx.lck", false},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			assert.Equal(t, tt.want, HasConfigExt(tt.path))
		})
	}
}
