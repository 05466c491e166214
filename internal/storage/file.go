// Package storage reads and writes the plain newline-delimited text files the
// editor works on.
package storage

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"
)

// ReadLines reads path and returns its lines with "\n" and any trailing "\r"
// stripped. An empty file has no lines. A missing file returns an error
// matching fs.ErrNotExist.
func ReadLines(path string) ([]string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	text := string(data)
	if text == "" {
		return nil, nil
	}
	// No phantom empty line after the final newline.
	text = strings.TrimSuffix(text, "\n")
	lines := strings.Split(text, "\n")
	for i, line := range lines {
		lines[i] = strings.TrimRight(line, "\r")
	}
	return lines, nil
}

// WriteFile replaces the contents of path with data, creating it if needed.
// It returns the number of bytes written.
func WriteFile(path string, data []byte) (int, error) {
	f, err := os.OpenFile(path, os.O_RDWR|os.O_CREATE|os.O_TRUNC, 0644)
	if err != nil {
		return 0, fmt.Errorf("save %s: %w", path, err)
	}
	n, err := f.Write(data)
	if cerr := f.Close(); err == nil {
		err = cerr
	}
	if err != nil {
		return n, fmt.Errorf("save %s: %w", path, err)
	}
	return n, nil
}

// Create makes an empty file at path. An existing file is left untouched.
func Create(path string) error {
	f, err := os.OpenFile(path, os.O_RDWR|os.O_CREATE, 0644)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	return f.Close()
}

// Exists reports whether path names an existing file.
func Exists(path string) bool {
	_, err := os.Stat(path)
	return err == nil || !errors.Is(err, fs.ErrNotExist)
}

// IsNotExist reports whether err came from opening a missing file.
func IsNotExist(err error) bool {
	return errors.Is(err, fs.ErrNotExist)
}
