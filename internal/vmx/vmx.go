// Package vmx reads VMware virtual machine configuration (.vmx) files.
//
// Only the display name is extracted. Everything else in the file is
// owned by the virtualization product and is never interpreted or modified.
package vmx

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"regexp"
	"strings"
)

const (
	// Ext is the file extension of a VM configuration file.
	Ext = ".vmx"

	// UnknownName is returned when a configuration file has no displayname line.
	UnknownName = "Unknown"
)

// Keys in .vmx files are case-insensitive; Fusion writes displayName.
var displayNameRe = regexp.MustCompile(`(?i:displayname) = "(.*)"`)

// HasConfigExt reports whether path carries the .vmx extension.
// The comparison is case-sensitive.
func HasConfigExt(path string) bool {
	return filepath.Ext(path) == Ext
}

// ExtractName returns the display name declared in the configuration file at
// path. The file is read line by line and the first displayname line wins.
// If no line matches, UnknownName is returned.
func ExtractName(path string) (string, error) {
	file, err := os.Open(path)
	if err != nil {
		return "", fmt.Errorf("failed to open %s: %w", path, err)
	}
	defer func() {
		_ = file.Close()
	}()

	return scanName(file)
}

// scanName reads r until the first displayname line.
// bufio.Reader is used over bufio.Scanner so that a single very long line
// cannot abort the read with ErrTooLong.
func scanName(r io.Reader) (string, error) {
	reader := bufio.NewReader(r)
	for {
		line, err := reader.ReadString('\n')
		if len(line) > 0 {
			if m := displayNameRe.FindStringSubmatch(strings.TrimRight(line, "\r\n")); m != nil {
				return m[1], nil
			}
		}
		if errors.Is(err, io.EOF) {
			return UnknownName, nil
		}
		if err != nil {
			return "", fmt.Errorf("failed to read configuration: %w", err)
		}
	}
}
