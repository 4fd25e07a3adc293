package propsfile

import (
	"fmt"
	"os"
)

// Store defines the interface for reading and writing the backing file.
type Store interface {
	// ReadText reads the file at path as text.
	ReadText(path string) (string, error)
	// WriteText replaces the file at path with content.
	WriteText(path string, content string) error
}

// NewStore returns a Store backed by the local filesystem.
func NewStore() Store {
	return osStore{}
}

type osStore struct{}

func (osStore) ReadText(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("failed to read properties file: %w", err)
	}
	return string(data), nil
}

func (osStore) WriteText(path string, content string) error {
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		return fmt.Errorf("failed to write properties file: %w", err)
	}
	return nil
}
