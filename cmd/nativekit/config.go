package main

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// fileConfig is the optional on-disk configuration. Command-line flags
// override whatever it sets.
type fileConfig struct {
	OCR struct {
		Datapath  string            `yaml:"datapath"`
		Language  string            `yaml:"language"`
		Variables map[string]string `yaml:"variables"`
	} `yaml:"ocr"`
	GMT struct {
		Tag string `yaml:"tag"`
		Pad uint   `yaml:"pad"`
	} `yaml:"gmt"`
	Media struct {
		Profile   string `yaml:"profile"`
		ModuleDir string `yaml:"module_dir"`
	} `yaml:"media"`
}

func loadConfig(path string) (*fileConfig, error) {
	cfg := &fileConfig{}
	if path == "" {
		return cfg, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse config %s: %w", path, err)
	}
	return cfg, nil
}
