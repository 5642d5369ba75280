// Copyright (c) 2024 Fantom Foundation
//
// Use of this software is governed by the Business Source License included
// in the LICENSE file and at fantom.foundation/bsl11.
//
// Change Date: 2028-4-16
//
// On the date above, in accordance with the Business Source License, use of
// this software will be governed by the GNU Lesser General Public License v3.

// Package config defines the interchange format for generation sessions:
// a YAML document listing parameters with their values and the constraints
// between them. JSON documents are accepted as well, being a YAML subset.
package config

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/pairgen/pairgen/constraint"
	"github.com/pairgen/pairgen/param"
)

// ParameterConfig is one parameter declaration.
type ParameterConfig struct {
	Name   string   `yaml:"name"`
	Values []string `yaml:"values"`
}

// ConstraintConfig is one constraint in its textual grammar form, with an
// optional free-text description.
type ConstraintConfig struct {
	Text        string `yaml:"constraint"`
	Description string `yaml:"description,omitempty"`
}

// Config is a complete generation session description.
type Config struct {
	Parameters  []ParameterConfig  `yaml:"parameters"`
	Constraints []ConstraintConfig `yaml:"constraints,omitempty"`
}

// Load reads a session description from the given file.
func Load(path string) (*Config, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open config file: %w", err)
	}
	defer file.Close()
	return LoadReader(file)
}

// LoadReader reads a session description from the given reader.
func LoadReader(reader io.Reader) (*Config, error) {
	data, err := io.ReadAll(reader)
	if err != nil {
		return nil, fmt.Errorf("failed to read config: %w", err)
	}
	var config Config
	if err := yaml.Unmarshal(data, &config); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}
	return &config, nil
}

// Save writes the session description to the given file in YAML form.
func (c *Config) Save(path string) error {
	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("failed to encode config: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}
	return nil
}

// Build constructs the parameter registry and constraint set described by
// the configuration. It does not stop at the first problem: every invalid
// parameter and constraint is logged and reported in a single joined
// error, while all valid entries are retained. A nil logger defaults to
// slog.Default().
func (c *Config) Build(logger *slog.Logger) (*param.Registry, *constraint.Set, error) {
	if logger == nil {
		logger = slog.Default()
	}

	registry := param.NewRegistry()
	var errs []error
	for _, p := range c.Parameters {
		if err := registry.Add(p.Name, p.Values); err != nil {
			logger.Warn("Rejected parameter",
				slog.String("name", p.Name),
				slog.String("error", err.Error()))
			errs = append(errs, fmt.Errorf("parameter %q: %w", p.Name, err))
		}
	}

	set := constraint.NewSet(registry)
	for _, item := range c.Constraints {
		if err := set.Add(item.Text, item.Description); err != nil {
			logger.Warn("Rejected constraint",
				slog.String("constraint", item.Text),
				slog.String("error", err.Error()))
			errs = append(errs, fmt.Errorf("constraint %q: %w", item.Text, err))
		}
	}

	return registry, set, errors.Join(errs...)
}
