package introspect

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"
)

// parserConfig mirrors the on-disk config layout:
//
//	[attributes]
//	keep = ["in_features", "out_features"]
//
// or, as YAML:
//
//	attributes:
//	  keep: [in_features, out_features]
type parserConfig struct {
	Attributes struct {
		Keep []string `toml:"keep" yaml:"keep"`
	} `toml:"attributes" yaml:"attributes"`
}

// loadKeepList reads the attribute allow-list from a TOML or YAML file,
// chosen by extension (.toml, .yaml, .yml).
//
// The list order is preserved: it later dictates attribute insertion
// order in parsed nodes.
func loadKeepList(path string) ([]string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, &ConfigError{Path: path, Err: err}
	}

	var cfg parserConfig
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".toml":
		if err := toml.Unmarshal(data, &cfg); err != nil {
			return nil, &ConfigError{Path: path, Err: fmt.Errorf("parse toml: %w", err)}
		}
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return nil, &ConfigError{Path: path, Err: fmt.Errorf("parse yaml: %w", err)}
		}
	default:
		return nil, &ConfigError{Path: path, Err: fmt.Errorf("%w: %q", ErrUnsupportedFormat, ext)}
	}

	if cfg.Attributes.Keep == nil {
		return nil, &ConfigError{Path: path, Err: ErrMissingKeepList}
	}
	return cfg.Attributes.Keep, nil
}
