package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"gopkg.in/yaml.v3"
)

// fileConfig mirrors the optional YAML config file. Every key is optional.
type fileConfig struct {
	APIURL    string `yaml:"api_url"`
	TokenPath string `yaml:"token_path"`
	Timeout   string `yaml:"timeout"`
	LogPath   string `yaml:"log_path"`
	LogLevel  string `yaml:"log_level"`
	Locale    string `yaml:"locale"`
}

// loadFile returns an empty fileConfig when path does not exist.
func loadFile(path string) (fileConfig, error) {
	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return fileConfig{}, nil
	}
	if err != nil {
		return fileConfig{}, fmt.Errorf("reading config %s: %w", path, err)
	}

	var fc fileConfig
	if err := yaml.Unmarshal(data, &fc); err != nil {
		return fileConfig{}, fmt.Errorf("parsing config %s: %w", path, err)
	}
	return fc, nil
}
