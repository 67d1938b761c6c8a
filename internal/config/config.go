package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"

	"github.com/5t3ph/metaschema/pkg/metaschema"
)

// ErrConfigNotFound is returned when the config file does not exist.
// Callers can check for this with errors.Is(err, config.ErrConfigNotFound).
var ErrConfigNotFound = errors.New("config file not found")

// Environment variables that override values from the project file.
const (
	EnvMetaKey       = "METASCHEMA_META_KEY"
	EnvMetaExtension = "METASCHEMA_META_EXTENSION"
	EnvMissingSchema = "METASCHEMA_MISSING_SCHEMA"
)

// ProjectConfig is the contents of metaschema.yaml.
type ProjectConfig struct {
	MetaKey           string   `yaml:"meta_key,omitempty"`
	MetaExtension     string   `yaml:"meta_extension,omitempty"`
	MissingSchema     string   `yaml:"missing_schema,omitempty"`
	ContentExtensions []string `yaml:"content_extensions,omitempty"`
	DataDir           string   `yaml:"data_dir,omitempty"`
	Ignore            []string `yaml:"ignore,omitempty"`
}

const ConfigFileName = "metaschema.yaml"

// Load reads metaschema.yaml from the site root.
func Load(sourcePath string) (*ProjectConfig, error) {
	configPath := filepath.Join(sourcePath, ConfigFileName)
	data, err := os.ReadFile(configPath)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, ErrConfigNotFound
		}
		return nil, err
	}

	var cfg ProjectConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse %s: %v: %w", ConfigFileName, err, metaschema.ErrInvalidConfig)
	}
	return &cfg, nil
}

// LoadProject loads .env files and the project configuration.
// Returns an empty config if metaschema.yaml does not exist (not an error).
// A .env in the site root is loaded before one in the working directory;
// variables already set in the environment are never overwritten.
func LoadProject(sourcePath string) (*ProjectConfig, error) {
	_ = godotenv.Load(filepath.Join(sourcePath, ".env"))
	_ = godotenv.Load()

	cfg, err := Load(sourcePath)
	if err != nil {
		if errors.Is(err, ErrConfigNotFound) {
			return &ProjectConfig{}, nil
		}
		return nil, err
	}
	return cfg, nil
}

// ApplyEnv overrides fields with METASCHEMA_* environment variables when set.
func (c *ProjectConfig) ApplyEnv() {
	if v, ok := os.LookupEnv(EnvMetaKey); ok && v != "" {
		c.MetaKey = v
	}
	if v, ok := os.LookupEnv(EnvMetaExtension); ok && v != "" {
		c.MetaExtension = v
	}
	if v, ok := os.LookupEnv(EnvMissingSchema); ok && v != "" {
		c.MissingSchema = v
	}
}

// Options converts the project configuration into plugin options with
// defaults applied, and validates them.
func (c *ProjectConfig) Options() (metaschema.Options, error) {
	policy, err := metaschema.ParseMissingSchemaPolicy(c.MissingSchema)
	if err != nil {
		return metaschema.Options{}, err
	}

	opts := metaschema.Options{
		MetaKey:       c.MetaKey,
		MetaExtension: c.MetaExtension,
		MissingSchema: policy,
	}.WithDefaults()

	if err := opts.Validate(); err != nil {
		return metaschema.Options{}, err
	}
	return opts, nil
}
