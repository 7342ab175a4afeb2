// File: lixenwraith/getarg/io.go
package getarg

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"go.uber.org/zap"
	"gopkg.in/yaml.v3"
)

// Format selects the encoding used by Dump
type Format string

const (
	FormatTOML Format = "toml"
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
)

// ParseFormat maps a user supplied name onto a Format, accepting common aliases
func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "toml", "tml", "":
		return FormatTOML, nil
	case "json":
		return FormatJSON, nil
	case "yaml", "yml":
		return FormatYAML, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownFormat, s)
	}
}

// Dump writes the resolved arguments to w in the given format.
// Dotted option names are written as nested tables.
func (a *Args) Dump(w io.Writer, format Format) error {
	nestedData := a.nested()

	switch format {
	case FormatTOML:
		if err := toml.NewEncoder(w).Encode(nestedData); err != nil {
			return fmt.Errorf("failed to marshal arguments to TOML: %w", err)
		}
	case FormatJSON:
		encoder := json.NewEncoder(w)
		encoder.SetIndent("", "  ")
		if err := encoder.Encode(nestedData); err != nil {
			return fmt.Errorf("failed to marshal arguments to JSON: %w", err)
		}
	case FormatYAML:
		encoder := yaml.NewEncoder(w)
		encoder.SetIndent(2)
		if err := encoder.Encode(nestedData); err != nil {
			return fmt.Errorf("failed to marshal arguments to YAML: %w", err)
		}
		if err := encoder.Close(); err != nil {
			return fmt.Errorf("failed to flush YAML encoder: %w", err)
		}
	default:
		return fmt.Errorf("%w: %q", ErrUnknownFormat, format)
	}

	return nil
}

// Save writes the resolved arguments to a TOML file atomically
func (a *Args) Save(path string) error {
	var buf bytes.Buffer
	if err := a.Dump(&buf, FormatTOML); err != nil {
		return err
	}

	if err := atomicWriteFile(path, buf.Bytes()); err != nil {
		return err
	}

	a.logger.Info("arguments saved", zap.String("path", path), zap.Int("keys", a.Len()))
	return nil
}

// nested builds a nested map from the resolved snapshot
func (a *Args) nested() map[string]any {
	nestedData := make(map[string]any)
	for name, value := range a.Snapshot() {
		if name == "" || strings.HasPrefix(name, ".") || strings.HasSuffix(name, ".") {
			continue
		}
		setNestedValue(nestedData, name, value)
	}
	return nestedData
}

// atomicWriteFile performs atomic file write
func atomicWriteFile(path string, data []byte) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create directory '%s': %w", dir, err)
	}

	tempFile, err := os.CreateTemp(dir, filepath.Base(path)+".*.tmp")
	if err != nil {
		return fmt.Errorf("failed to create temporary file: %w", err)
	}

	tempPath := tempFile.Name()
	defer os.Remove(tempPath) // Clean up on any error

	if _, err := tempFile.Write(data); err != nil {
		tempFile.Close()
		return fmt.Errorf("failed to write temporary file: %w", err)
	}

	if err := tempFile.Sync(); err != nil {
		tempFile.Close()
		return fmt.Errorf("failed to sync temporary file: %w", err)
	}

	if err := tempFile.Close(); err != nil {
		return fmt.Errorf("failed to close temporary file: %w", err)
	}

	if err := os.Chmod(tempPath, 0644); err != nil {
		return fmt.Errorf("failed to set permissions: %w", err)
	}

	if err := os.Rename(tempPath, path); err != nil {
		return fmt.Errorf("failed to rename temporary file: %w", err)
	}

	return nil
}
