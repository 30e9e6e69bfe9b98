// internal/config/config.go
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// ProjectConfig holds the configuration from the mtm.yaml file at the
// project root. The `yaml` tags map file keys to struct fields.
type ProjectConfig struct {
	Title       string            `yaml:"title"`
	Author      string            `yaml:"author"`
	Description string            `yaml:"description"`
	Lang        string            `yaml:"lang"`
	PagesDir    string            `yaml:"pages_dir"`
	StaticDir   string            `yaml:"static_dir"`
	OutputDir   string            `yaml:"output_dir"`
	Paths       map[string]string `yaml:"paths"` // import alias -> directory
	Workers     int               `yaml:"workers"`
}

// Defaults fills in the conventional directory layout for fields the file
// leaves empty.
func (c *ProjectConfig) Defaults() {
	if c.PagesDir == "" {
		c.PagesDir = "pages"
	}
	if c.StaticDir == "" {
		c.StaticDir = "static"
	}
	if c.OutputDir == "" {
		c.OutputDir = "dist"
	}
	if c.Workers <= 0 {
		c.Workers = 4
	}
}

// LoadProjectConfig parses mtm.yaml with a proper YAML parser. A missing
// file is not an error; the zero config with defaults applies.
func LoadProjectConfig(path string) (ProjectConfig, error) {
	cfg := ProjectConfig{}
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			cfg.Defaults()
			return cfg, nil
		}
		return ProjectConfig{}, fmt.Errorf("could not read config file at %s: %w", path, err)
	}

	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return ProjectConfig{}, fmt.Errorf("could not parse config file %s: %w", path, err)
	}

	cfg.Defaults()
	return cfg, nil
}
