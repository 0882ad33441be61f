// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

// Package config handles witgen project configuration.
package config

import (
	"errors"
	"fmt"
	"log/slog"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/dacolabs/witgen/internal/translate"
)

// CurrentConfigVersion is the current version of the config file format.
const CurrentConfigVersion = 1

// FileName is the default config file name.
const FileName = "witgen.yaml"

// Defaults applied to empty fields.
const (
	DefaultOutput = "wit"
	DefaultFormat = "wit"
)

// ErrUnsupportedVersion indicates a config file written for another format version.
var ErrUnsupportedVersion = errors.New("unsupported config version")

// Config represents the witgen.yaml project configuration file.
type Config struct {
	Version     int    `yaml:"version"`
	Input       string `yaml:"input,omitempty"`
	PackageName string `yaml:"packageName,omitempty"`
	ProjectName string `yaml:"projectName,omitempty"`
	ErrorModel  string `yaml:"errorModel,omitempty"`
	Strict      bool   `yaml:"strict,omitempty"`
	Output      string `yaml:"output,omitempty"`
	Format      string `yaml:"format,omitempty"`
}

// Default returns a Config with every default filled in.
func Default() *Config {
	return &Config{
		Version:     CurrentConfigVersion,
		PackageName: translate.DefaultPackageName,
		ErrorModel:  translate.ErrorModelVariant,
		Output:      DefaultOutput,
		Format:      DefaultFormat,
	}
}

// Load reads a Config from a file path.
func Load(path string) (*Config, error) {
	f, err := os.Open(path) //nolint:gosec // path is provided by caller
	if err != nil {
		return nil, err
	}
	defer f.Close() //nolint:errcheck

	var cfg Config
	if err := yaml.NewDecoder(f).Decode(&cfg); err != nil {
		return nil, err
	}
	cfg.applyDefaults()
	return &cfg, nil
}

// LoadOrDefault reads the Config at path, or returns Default when the file
// does not exist.
func LoadOrDefault(path string) (*Config, error) {
	cfg, err := Load(path)
	if errors.Is(err, os.ErrNotExist) {
		return Default(), nil
	}
	return cfg, err
}

// Save writes the Config to a file path.
func (c *Config) Save(path string) error {
	f, err := os.Create(path) //nolint:gosec // path is provided by caller
	if err != nil {
		return err
	}
	defer f.Close() //nolint:errcheck

	enc := yaml.NewEncoder(f)
	enc.SetIndent(2)
	return enc.Encode(c)
}

// Validate checks the configuration for required fields and valid values.
func (c *Config) Validate() error {
	if c.Version != CurrentConfigVersion {
		return ErrUnsupportedVersion
	}
	switch c.ErrorModel {
	case "", translate.ErrorModelString, translate.ErrorModelRecord, translate.ErrorModelVariant:
	default:
		return fmt.Errorf("invalid errorModel %q: must be one of %s, %s, %s", c.ErrorModel,
			translate.ErrorModelString, translate.ErrorModelRecord, translate.ErrorModelVariant)
	}
	return nil
}

// Options converts the configuration into translator options.
func (c *Config) Options(logger *slog.Logger) translate.Options {
	return translate.Options{
		PackageName: c.PackageName,
		ProjectName: c.ProjectName,
		ErrorModel:  c.ErrorModel,
		Strict:      c.Strict,
		Logger:      logger,
	}
}

func (c *Config) applyDefaults() {
	d := Default()
	if c.PackageName == "" {
		c.PackageName = d.PackageName
	}
	if c.ErrorModel == "" {
		c.ErrorModel = d.ErrorModel
	}
	if c.Output == "" {
		c.Output = d.Output
	}
	if c.Format == "" {
		c.Format = d.Format
	}
}
