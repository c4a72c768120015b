// Package fixture loads memfs stores from YAML fixture documents, so
// tests can declare initial store contents in testdata files instead of
// building them up call by call.
package fixture

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"memfs"
	"memfs/internal/logging"
)

var (
	logger = logging.GetLogger().WithPrefix("fixture")
)

// Document is the shape of a store fixture:
//
//	directories:
//	  - /src
//	  - /src/vendor
//	files:
//	  /config.json: "{}"
//
// Directories are applied before files, with the same semantics as
// memfs.Options: no ancestor creation, and a path listed in both sections
// ends up a file.
type Document struct {
	Directories []string          `yaml:"directories"`
	Files       map[string]string `yaml:"files"`
}

// Parse decodes a YAML fixture document.
func Parse(data []byte) (*Document, error) {
	var doc Document
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("failed to parse fixture: %w", err)
	}
	logger.Debug("Parsed fixture: %d directories, %d files",
		len(doc.Directories), len(doc.Files))
	return &doc, nil
}

// Options converts the document into store construction options.
func (d *Document) Options() memfs.Options {
	return memfs.Options{
		InitialDirectories: d.Directories,
		InitialFiles:       d.Files,
	}
}

// NewStore builds a store populated from the document.
func (d *Document) NewStore() *memfs.Store {
	return memfs.New(d.Options())
}

// Load reads a fixture file and builds a store from it.
func Load(path string) (*memfs.Store, error) {
	logger.Debug("Loading fixture from: %s", path)
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read fixture %s: %w", path, err)
	}

	doc, err := Parse(data)
	if err != nil {
		return nil, err
	}
	return doc.NewStore(), nil
}
