// Package config loads the site configuration file.
package config

import (
	"errors"
	"fmt"
	"os"

	"github.com/alnah/go-mdsite/internal/yamlutil"
)

// Sentinel errors for config operations.
var (
	ErrConfigNotFound = errors.New("config file not found")
	ErrConfigParse    = errors.New("failed to parse config")
	ErrEmptyDir       = errors.New("directory cannot be empty")
	ErrInvalidWorkers = errors.New("workers must be >= 0")
)

// Default site layout, matching what the CLI assumes when no config
// file is present.
const (
	DefaultContentDir = "content"
	DefaultStaticDir  = "static"
	DefaultOutputDir  = "public"
	DefaultTemplate   = "template.html"
	DefaultBasePath   = "/"
)

// Config holds all configuration for a site build.
type Config struct {
	Content  string `yaml:"content"`  // markdown source directory
	Static   string `yaml:"static"`   // static asset directory (optional)
	Output   string `yaml:"output"`   // generated site directory
	Template string `yaml:"template"` // page template path ("" = embedded default)
	BasePath string `yaml:"basepath"` // site base path, e.g. "/my-site"
	Workers  int    `yaml:"workers"`  // parallel page builds (0 = auto)
}

// Default returns a config populated with the default site layout.
func Default() Config {
	return Config{
		Content:  DefaultContentDir,
		Static:   DefaultStaticDir,
		Output:   DefaultOutputDir,
		Template: DefaultTemplate,
		BasePath: DefaultBasePath,
	}
}

// Load reads and parses a config file, layered over the defaults.
// Unknown fields are rejected so typos fail loudly.
func Load(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return Config{}, fmt.Errorf("%w: %s", ErrConfigNotFound, path)
		}
		return Config{}, fmt.Errorf("reading config: %w", err)
	}

	cfg := Default()
	if err := yamlutil.UnmarshalStrict(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("%w: %v", ErrConfigParse, err)
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate checks that the configuration is usable.
func (c Config) Validate() error {
	if c.Content == "" {
		return fmt.Errorf("%w: content", ErrEmptyDir)
	}
	if c.Output == "" {
		return fmt.Errorf("%w: output", ErrEmptyDir)
	}
	if c.Workers < 0 {
		return fmt.Errorf("%w: got %d", ErrInvalidWorkers, c.Workers)
	}
	return nil
}
