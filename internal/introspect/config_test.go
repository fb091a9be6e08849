package introspect

import (
	"io/fs"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestConfig_TOMLAndYAMLAgree verifies both config formats load the
// same allow-list.
func TestConfig_TOMLAndYAMLAgree(t *testing.T) {
	fromTOML, err := NewParser(filepath.Join("testdata", "parse.toml"))
	require.NoError(t, err)

	fromYAML, err := NewParser(filepath.Join("testdata", "parse.yaml"))
	require.NoError(t, err)

	assert.Equal(t, []string{"in_features", "out_features"}, fromTOML.Keep())
	assert.Equal(t, fromTOML.Keep(), fromYAML.Keep())
}

// TestConfig_MissingFile verifies a ConfigError wrapping the I/O error.
func TestConfig_MissingFile(t *testing.T) {
	_, err := NewParser(filepath.Join("testdata", "does_not_exist.toml"))

	var cerr *ConfigError
	require.ErrorAs(t, err, &cerr)
	assert.ErrorIs(t, err, fs.ErrNotExist)
}

// TestConfig_MissingKeepList verifies the sentinel for a config without
// attributes.keep.
func TestConfig_MissingKeepList(t *testing.T) {
	_, err := NewParser(filepath.Join("testdata", "no_keep.toml"))

	var cerr *ConfigError
	require.ErrorAs(t, err, &cerr)
	assert.ErrorIs(t, err, ErrMissingKeepList)
}

// TestConfig_Malformed verifies a parse failure surfaces as ConfigError.
func TestConfig_Malformed(t *testing.T) {
	_, err := NewParser(filepath.Join("testdata", "broken.toml"))

	var cerr *ConfigError
	require.ErrorAs(t, err, &cerr)
	assert.Equal(t, filepath.Join("testdata", "broken.toml"), cerr.Path)
}

// TestConfig_UnsupportedExtension verifies unknown formats are rejected
// rather than guessed at.
func TestConfig_UnsupportedExtension(t *testing.T) {
	_, err := NewParser(filepath.Join("testdata", "parse.json"))
	assert.ErrorIs(t, err, ErrUnsupportedFormat)
}

// TestConfig_EmptyKeepList verifies an empty keep list is valid
// configuration, distinct from a missing one.
func TestConfig_EmptyKeepList(t *testing.T) {
	p := NewParserWithKeep(nil)
	node, err := p.Parse(newSimpleLayer(3, 4))
	require.NoError(t, err)
	assert.Empty(t, node.Attributes)
}
