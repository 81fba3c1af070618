package config

import (
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

// fileConfig mirrors Config for the optional YAML file named by CONFIG_FILE.
type fileConfig struct {
	Port             string   `yaml:"port"`
	Env              string   `yaml:"env"`
	DatabaseURL      string   `yaml:"database_url"`
	DBDriver         string   `yaml:"db_driver"`
	AutoMigrate      *bool    `yaml:"auto_migrate"`
	CORSAllowOrigins []string `yaml:"cors_allow_origins"`
	ShutdownTimeout  string   `yaml:"shutdown_timeout"`
}

func loadFile(path string) (fileConfig, error) {
	var fc fileConfig
	path = strings.TrimSpace(path)
	if path == "" {
		return fc, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return fileConfig{}, fmt.Errorf("read %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, &fc); err != nil {
		return fileConfig{}, fmt.Errorf("parse %s: %w", path, err)
	}
	return fc, nil
}
