package jsondoc

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// ReadFile returns the full content of a regular file. Missing paths and
// paths that are not regular files fail with ErrNotFound.
func ReadFile(path string, cfgs ...*Config) ([]byte, error) {
	cfg, err := resolveConfig(cfgs...)
	if err != nil {
		return nil, err
	}
	if err := validateFilePath(path); err != nil {
		return nil, err
	}

	info, err := os.Stat(path)
	if err != nil {
		return nil, newPathError("read_file", path, "path does not exist", ErrNotFound)
	}
	if !info.Mode().IsRegular() {
		return nil, newPathError("read_file", path, "path is not a file", ErrNotFound)
	}
	if info.Size() > cfg.MaxJSONSize {
		return nil, newSizeLimitError("read_file", path, info.Size(), cfg.MaxJSONSize)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, &DocError{
			Op:      "read_file",
			Path:    path,
			Message: "failed to read file",
			Err:     fmt.Errorf("read file error: %w", err),
		}
	}
	return data, nil
}

// ParseFile reads a regular file and parses its content.
func ParseFile(path string, cfgs ...*Config) (*Node, error) {
	data, err := ReadFile(path, cfgs...)
	if err != nil {
		return nil, err
	}
	n, err := Parse(data, cfgs...)
	if err != nil {
		return nil, withPath(err, path)
	}
	return n, nil
}

// WriteFile writes data to path, creating missing parent directories.
func WriteFile(path string, data []byte) error {
	if err := validateFilePath(path); err != nil {
		return err
	}
	if err := createDirectoryIfNotExists(path); err != nil {
		return &DocError{
			Op:      "write_file",
			Path:    path,
			Message: "failed to create directory",
			Err:     fmt.Errorf("directory creation error: %w", err),
		}
	}
	if err := os.WriteFile(path, data, DefaultFileMode); err != nil {
		return &DocError{
			Op:      "write_file",
			Path:    path,
			Message: "failed to write file",
			Err:     fmt.Errorf("write file error: %w", err),
		}
	}
	return nil
}

// createDirectoryIfNotExists creates the directory structure for a file path if needed.
func createDirectoryIfNotExists(path string) error {
	dir := filepath.Dir(path)
	if dir == "." || dir == "/" {
		return nil
	}
	if _, err := os.Stat(dir); os.IsNotExist(err) {
		return os.MkdirAll(dir, DefaultDirMode)
	}
	return nil
}

// validateFilePath rejects paths the operating system would misread
func validateFilePath(path string) error {
	if path == "" {
		return newPathError("validate_file_path", path, "file path cannot be empty", ErrNotFound)
	}
	if strings.Contains(path, "\x00") {
		return newPathError("validate_file_path", sanitizePath(path), "null byte in path", ErrNotFound)
	}
	if len(filepath.Clean(path)) > MaxFilePathLength {
		return newPathError("validate_file_path", sanitizePath(path),
			fmt.Sprintf("path too long: %d > %d", len(path), MaxFilePathLength), ErrNotFound)
	}
	return nil
}

// withPath attaches a file path to a DocError that has none.
func withPath(err error, path string) error {
	if docErr, ok := err.(*DocError); ok && docErr.Path == "" {
		clone := *docErr
		clone.Path = path
		return &clone
	}
	return err
}
