// Package config loads the CLI's optional schema defaults file, the
// Go-native equivalent of Graphite's storage-schemas.conf: named
// retention/aggregation presets a create command can pick by name
// instead of spelling out archives on the command line every time.
package config

import (
	"fmt"

	"github.com/BurntSushi/toml"
)

// Schema is one named retention + aggregation preset.
type Schema struct {
	Retentions   string  `toml:"retentions"`
	Aggregation  string  `toml:"aggregation"`
	XFilesFactor float64 `toml:"x_files_factor"`
}

// File is the top-level shape of a schema config file:
//
//	[schemas.default]
//	retentions = "1s:1d,1m:30d,1h:5y"
//	aggregation = "average"
//	x_files_factor = 0.5
type File struct {
	Schemas map[string]Schema `toml:"schemas"`
}

// Load parses a TOML schema config file from path.
func Load(path string) (*File, error) {
	var f File
	if _, err := toml.DecodeFile(path, &f); err != nil {
		return nil, fmt.Errorf("failed to load schema config %s: %w", path, err)
	}
	return &f, nil
}

// Lookup returns the named schema, or an error if it isn't defined.
func (f *File) Lookup(name string) (Schema, error) {
	s, ok := f.Schemas[name]
	if !ok {
		return Schema{}, fmt.Errorf("no schema named %q in config", name)
	}
	return s, nil
}
