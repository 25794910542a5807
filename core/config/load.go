package config

import (
	"log"
	"os"
	"path/filepath"

	"sigs.k8s.io/yaml"
)

// Load loads the configuration from the directory.
func Load(path string) (*Configuration, error) {
	// If given the path to a config.yaml file, move back up a level.
	if filepath.Base(path) == ConfigurationName {
		path = filepath.Dir(path)
	}

	configContents, err := os.ReadFile(filepath.Join(path, ConfigurationName))
	if err != nil {
		return nil, err
	}
	var out Configuration
	if err := yaml.UnmarshalStrict(configContents, &out); err != nil {
		return nil, err
	}
	out.configDir = path

	if err := out.Validate(); err != nil {
		return nil, err
	}
	return &out, nil
}

// Initialize writes the default configuration into the directory so it
// can be customized. Existing files are left alone.
func Initialize(path string, logger *log.Logger) (*Configuration, error) {
	configPath := filepath.Join(path, ConfigurationName)
	if _, err := os.Stat(configPath); err == nil {
		logger.Printf("%s already exists, leaving it as-is", configPath)
		return Load(path)
	}

	logger.Printf("Writing default configuration to %s", configPath)
	if err := os.WriteFile(configPath, defaultConfigData, 0644); err != nil {
		return nil, err
	}

	return Load(path)
}
