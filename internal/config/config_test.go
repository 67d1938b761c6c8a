package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/5t3ph/metaschema/pkg/metaschema"
)

func TestLoad_AllFields(t *testing.T) {
	dir := t.TempDir()
	content := `meta_key: details
meta_extension: sidecar
missing_schema: warn
content_extensions:
  - .md
  - .njk
data_dir: _globals
ignore:
  - drafts/**
`
	require.NoError(t, os.WriteFile(filepath.Join(dir, ConfigFileName), []byte(content), 0644))

	cfg, err := Load(dir)
	require.NoError(t, err)
	require.NotNil(t, cfg)

	assert.Equal(t, "details", cfg.MetaKey)
	assert.Equal(t, "sidecar", cfg.MetaExtension)
	assert.Equal(t, "warn", cfg.MissingSchema)
	assert.Equal(t, []string{".md", ".njk"}, cfg.ContentExtensions)
	assert.Equal(t, "_globals", cfg.DataDir)
	assert.Equal(t, []string{"drafts/**"}, cfg.Ignore)
}

func TestLoad_FileNotFound(t *testing.T) {
	cfg, err := Load(t.TempDir())
	assert.True(t, errors.Is(err, ErrConfigNotFound), "expected ErrConfigNotFound, got: %v", err)
	assert.Nil(t, cfg)
}

func TestLoad_InvalidYAML(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, ConfigFileName), []byte("{{invalid"), 0644))

	cfg, err := Load(dir)
	assert.Error(t, err)
	assert.True(t, errors.Is(err, metaschema.ErrInvalidConfig))
	assert.Nil(t, cfg)
}

func TestLoadProject_MissingFileIsEmptyConfig(t *testing.T) {
	cfg, err := LoadProject(t.TempDir())
	require.NoError(t, err)
	require.NotNil(t, cfg)
	assert.Equal(t, ProjectConfig{}, *cfg)
}

func TestLoadProject_ReadsDotEnv(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, ".env"), []byte(EnvMetaKey+"=fromdotenv\n"), 0644))

	// Register cleanup for a variable godotenv will set.
	t.Setenv(EnvMetaKey, "")
	require.NoError(t, os.Unsetenv(EnvMetaKey))

	cfg, err := LoadProject(dir)
	require.NoError(t, err)
	cfg.ApplyEnv()
	assert.Equal(t, "fromdotenv", cfg.MetaKey)
}

func TestApplyEnv_OverridesFile(t *testing.T) {
	t.Setenv(EnvMetaKey, "envkey")
	t.Setenv(EnvMetaExtension, "envext")
	t.Setenv(EnvMissingSchema, "warn")

	cfg := &ProjectConfig{MetaKey: "filekey", MetaExtension: "fileext"}
	cfg.ApplyEnv()

	assert.Equal(t, "envkey", cfg.MetaKey)
	assert.Equal(t, "envext", cfg.MetaExtension)
	assert.Equal(t, "warn", cfg.MissingSchema)
}

func TestOptions(t *testing.T) {
	opts, err := (&ProjectConfig{}).Options()
	require.NoError(t, err)
	assert.Equal(t, metaschema.DefaultOptions(), opts)

	opts, err = (&ProjectConfig{MetaKey: "info", MetaExtension: ".side", MissingSchema: "warn"}).Options()
	require.NoError(t, err)
	assert.Equal(t, metaschema.Options{MetaKey: "info", MetaExtension: "side", MissingSchema: metaschema.MissingSchemaWarn}, opts)

	_, err = (&ProjectConfig{MissingSchema: "boom"}).Options()
	assert.True(t, errors.Is(err, metaschema.ErrInvalidConfig))

	_, err = (&ProjectConfig{MetaExtension: "a.b"}).Options()
	assert.True(t, errors.Is(err, metaschema.ErrInvalidConfig))
}
