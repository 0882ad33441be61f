// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

package config

import (
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dacolabs/witgen/internal/translate"
)

func TestConfig_LoadAndSave(t *testing.T) {
	tmpDir := t.TempDir()
	cfgPath := filepath.Join(tmpDir, FileName)

	cfg := Config{
		Version:     1,
		Input:       "api/openapi.yaml",
		PackageName: "petstore",
		ErrorModel:  translate.ErrorModelVariant,
		Strict:      true,
		Output:      "gen",
		Format:      "manifest",
	}

	err := cfg.Save(cfgPath)
	require.NoError(t, err)

	loaded, err := Load(cfgPath)
	require.NoError(t, err)

	assert.Equal(t, cfg, *loaded)
}

func TestConfig_Validate(t *testing.T) {
	tests := []struct {
		name    string
		cfg     Config
		wantErr string
	}{
		{
			name:    "valid config",
			cfg:     Config{Version: 1},
			wantErr: "",
		},
		{
			name:    "string error model",
			cfg:     Config{Version: 1, ErrorModel: translate.ErrorModelString},
			wantErr: "",
		},
		{
			name:    "unsupported version",
			cfg:     Config{Version: 99},
			wantErr: "unsupported config version",
		},
		{
			name:    "unknown error model",
			cfg:     Config{Version: 1, ErrorModel: "exception"},
			wantErr: "invalid errorModel",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.cfg.Validate()
			if tt.wantErr == "" {
				assert.NoError(t, err)
			} else {
				assert.Error(t, err)
				assert.Contains(t, err.Error(), tt.wantErr)
			}
		})
	}
}

func TestConfig_SaveFormat(t *testing.T) {
	tmpDir := t.TempDir()
	cfgPath := filepath.Join(tmpDir, FileName)

	err := Default().Save(cfgPath)
	require.NoError(t, err)

	content, err := os.ReadFile(cfgPath) //nolint:gosec // test file path
	require.NoError(t, err)

	output := string(content)
	assert.Contains(t, output, "version: 1")
	assert.Contains(t, output, "packageName: openapi")
	assert.Contains(t, output, "errorModel: variant")
	assert.NotContains(t, output, "strict")
}

func TestConfig_Load(t *testing.T) {
	cfg, err := Load("testdata/valid.yaml")
	require.NoError(t, err)

	assert.Equal(t, 1, cfg.Version)
	assert.Equal(t, "api/openapi.yaml", cfg.Input)
	assert.Equal(t, "petstore", cfg.PackageName)
	assert.Equal(t, "Petstore", cfg.ProjectName)
	assert.True(t, cfg.Strict)
	assert.Equal(t, "gen", cfg.Output)
	// unset fields take defaults
	assert.Equal(t, translate.ErrorModelVariant, cfg.ErrorModel)
	assert.Equal(t, DefaultFormat, cfg.Format)
}

func TestConfig_Load_NotFound(t *testing.T) {
	_, err := Load("testdata/nonexistent.yaml")
	assert.Error(t, err)
}

func TestConfig_Load_Invalid(t *testing.T) {
	_, err := Load("testdata/invalid.yaml")
	assert.Error(t, err)
}

func TestConfig_Save_InvalidPath(t *testing.T) {
	cfg := Config{Version: 1}

	err := cfg.Save("/nonexistent/directory/config.yaml")
	assert.Error(t, err)
}

func TestConfig_Load_Empty(t *testing.T) {
	tmpDir := t.TempDir()
	emptyFile := filepath.Join(tmpDir, "empty.yaml")
	require.NoError(t, os.WriteFile(emptyFile, []byte(""), 0o600))

	_, err := Load(emptyFile)
	assert.Error(t, err)
}

func TestLoadOrDefault(t *testing.T) {
	cfg, err := LoadOrDefault(filepath.Join(t.TempDir(), FileName))
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)

	cfg, err = LoadOrDefault("testdata/valid.yaml")
	require.NoError(t, err)
	assert.Equal(t, "petstore", cfg.PackageName)

	_, err = LoadOrDefault("testdata/invalid.yaml")
	assert.Error(t, err)
}

func TestConfig_Options(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	cfg, err := Load("testdata/valid.yaml")
	require.NoError(t, err)

	opts := cfg.Options(logger)
	assert.Equal(t, "petstore", opts.PackageName)
	assert.Equal(t, "Petstore", opts.ProjectName)
	assert.Equal(t, translate.ErrorModelVariant, opts.ErrorModel)
	assert.True(t, opts.Strict)
	assert.Same(t, logger, opts.Logger)
}
