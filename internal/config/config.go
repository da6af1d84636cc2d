// Package config loads the model type configuration of the checker.
//
// The configuration file is JSON ({"modelTypes": [...]}), optionally with
// comments, or YAML when the file has a .yaml or .yml extension. Any problem
// loading it falls back to the built-in defaults; it is never fatal.
package config

import (
	_ "embed"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/tidwall/jsonc"
	"github.com/xeipuuv/gojsonschema"
	"gopkg.in/yaml.v3"
)

//go:embed schema.json
var schema string

var (
	defaultModelTypes       = []string{"Entity", "AggregateRoot", "ValueObject", "Model", "Domain"}
	defaultExemptionMarkers = []string{"Response", "DTO"}
)

// Configuration is the set of model type names a use case must not return.
type Configuration struct {
	ModelTypes       []string `json:"modelTypes" yaml:"modelTypes"`
	ExemptionMarkers []string `json:"exemptionMarkers,omitempty" yaml:"exemptionMarkers,omitempty"`
}

// Default returns the built-in configuration.
func Default() Configuration {
	return Configuration{ModelTypes: append([]string(nil), defaultModelTypes...)}
}

// Markers returns the configured exemption markers or the defaults.
func (c Configuration) Markers() []string {
	if len(c.ExemptionMarkers) == 0 {
		return append([]string(nil), defaultExemptionMarkers...)
	}
	return c.ExemptionMarkers
}

// ErrInvalid is wrapped by LoadError when the document does not match the schema.
var ErrInvalid = errors.New("invalid configuration")

// LoadError reports why a configuration file was not used.
type LoadError struct {
	Path string
	Err  error
}

func (e *LoadError) Error() string {
	return fmt.Sprintf("load configuration %s: %v", e.Path, e.Err)
}

func (e *LoadError) Unwrap() error {
	return e.Err
}

// Load reads the configuration at path. An empty path yields the default
// configuration and no error. When the file is missing, unreadable or
// malformed, Load returns the default configuration together with a
// *LoadError for the caller to log.
func Load(path string) (Configuration, error) {
	if path == "" {
		return Default(), nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return Default(), &LoadError{Path: path, Err: err}
	}

	cfg, err := Parse(data, isYAML(path))
	if err != nil {
		return Default(), &LoadError{Path: path, Err: err}
	}
	return cfg, nil
}

// Parse decodes and validates a configuration document. Model types are kept
// exactly as written, including order and duplicates.
func Parse(data []byte, asYAML bool) (Configuration, error) {
	doc, err := normalize(data, asYAML)
	if err != nil {
		return Configuration{}, err
	}

	result, err := gojsonschema.Validate(gojsonschema.NewStringLoader(schema), gojsonschema.NewBytesLoader(doc))
	if err != nil {
		return Configuration{}, fmt.Errorf("validate: %w", err)
	}
	if !result.Valid() {
		msgs := make([]string, 0, len(result.Errors()))
		for _, desc := range result.Errors() {
			field := desc.Field()
			if field == "" {
				field = "(root)"
			}
			msgs = append(msgs, field+": "+desc.Description())
		}
		return Configuration{}, fmt.Errorf("%w: %s", ErrInvalid, strings.Join(msgs, "; "))
	}

	var cfg Configuration
	if err := json.Unmarshal(doc, &cfg); err != nil {
		return Configuration{}, fmt.Errorf("decode: %w", err)
	}
	return cfg, nil
}

// normalize turns the raw file into plain JSON.
func normalize(data []byte, asYAML bool) ([]byte, error) {
	if asYAML {
		var v any
		if err := yaml.Unmarshal(data, &v); err != nil {
			return nil, fmt.Errorf("decode yaml: %w", err)
		}
		return json.Marshal(v)
	}
	doc := jsonc.ToJSON(data)
	if !json.Valid(doc) {
		return nil, errors.New("malformed JSON")
	}
	return doc, nil
}

func isYAML(path string) bool {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return true
	}
	return false
}
