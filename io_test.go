// FILE: lixenwraith/getarg/io_test.go
package getarg

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/BurntSushi/toml"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func newDumpArgs() *Args {
	args := New()
	args.Parse([]string{"-name=node1", "-name=node2", "-listen", "-noUpnp", "-rpc.port=8332"})
	return args
}

var expectedDump = map[string]any{
	"name":   "node2",
	"listen": "",
	"noUpnp": "",
	"Upnp":   "0",
	"rpc":    map[string]any{"port": "8332"},
}

// TestDump tests writing the resolved store in each format
func TestDump(t *testing.T) {
	args := newDumpArgs()

	t.Run("TOML", func(t *testing.T) {
		var buf bytes.Buffer
		require.NoError(t, args.Dump(&buf, FormatTOML))
		assert.Contains(t, buf.String(), "[rpc]")

		decoded := make(map[string]any)
		_, err := toml.Decode(buf.String(), &decoded)
		require.NoError(t, err)
		assert.Equal(t, expectedDump, decoded)
	})

	t.Run("JSON", func(t *testing.T) {
		var buf bytes.Buffer
		require.NoError(t, args.Dump(&buf, FormatJSON))

		decoded := make(map[string]any)
		require.NoError(t, json.Unmarshal(buf.Bytes(), &decoded))
		assert.Equal(t, expectedDump, decoded)
	})

	t.Run("YAML", func(t *testing.T) {
		var buf bytes.Buffer
		require.NoError(t, args.Dump(&buf, FormatYAML))

		decoded := make(map[string]any)
		require.NoError(t, yaml.Unmarshal(buf.Bytes(), &decoded))
		assert.Equal(t, expectedDump, decoded)
	})

	t.Run("UnknownFormat", func(t *testing.T) {
		var buf bytes.Buffer
		err := args.Dump(&buf, Format("ini"))
		assert.ErrorIs(t, err, ErrUnknownFormat)
		assert.Zero(t, buf.Len())
	})

	t.Run("EmptyStore", func(t *testing.T) {
		var buf bytes.Buffer
		require.NoError(t, New().Dump(&buf, FormatJSON))
		assert.JSONEq(t, "{}", buf.String())
	})
}

// TestParseFormat tests format name handling
func TestParseFormat(t *testing.T) {
	tests := []struct {
		in       string
		expected Format
		wantErr  bool
	}{
		{"toml", FormatTOML, false},
		{"TML", FormatTOML, false},
		{"", FormatTOML, false},
		{"json", FormatJSON, false},
		{" YAML ", FormatYAML, false},
		{"yml", FormatYAML, false},
		{"xml", "", true},
	}

	for _, tt := range tests {
		format, err := ParseFormat(tt.in)
		if tt.wantErr {
			assert.ErrorIs(t, err, ErrUnknownFormat, "input %q", tt.in)
			continue
		}
		assert.NoError(t, err, "input %q", tt.in)
		assert.Equal(t, tt.expected, format, "input %q", tt.in)
	}
}

// TestSave tests atomic TOML file output
func TestSave(t *testing.T) {
	tmpDir := t.TempDir()

	t.Run("WritesFile", func(t *testing.T) {
		path := filepath.Join(tmpDir, "nested", "args.toml")
		require.NoError(t, newDumpArgs().Save(path))

		decoded := make(map[string]any)
		_, err := toml.DecodeFile(path, &decoded)
		require.NoError(t, err)
		assert.Equal(t, expectedDump, decoded)

		info, err := os.Stat(path)
		require.NoError(t, err)
		assert.Equal(t, os.FileMode(0644), info.Mode().Perm())

		// No temp files left behind
		entries, err := os.ReadDir(filepath.Dir(path))
		require.NoError(t, err)
		assert.Len(t, entries, 1)
	})

	t.Run("Overwrites", func(t *testing.T) {
		path := filepath.Join(tmpDir, "over.toml")
		require.NoError(t, os.WriteFile(path, []byte("old = true\n"), 0600))

		args := New()
		args.Parse([]string{"-fresh=1"})
		require.NoError(t, args.Save(path))

		data, err := os.ReadFile(path)
		require.NoError(t, err)
		assert.Contains(t, string(data), `fresh = "1"`)
		assert.NotContains(t, string(data), "old")
	})
}
