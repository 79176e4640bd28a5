package config

import (
	"fmt"
	"log"
	"path/filepath"

	"github.com/spf13/afero"
)

// Initialize writes the default configuration into dir and loads it. An
// existing configuration is kept as-is.
func Initialize(fs afero.Fs, dir string, logger *log.Logger) (*Configuration, error) {
	configPath := filepath.Join(dir, ConfigurationName)

	exists, err := afero.Exists(fs, configPath)
	if err != nil {
		return nil, err
	}

	if exists {
		logger.Printf("Configuration %q already exists, skipping.", configPath)
	} else {
		logger.Printf("Creating directory %q", dir)
		if err := fs.MkdirAll(dir, 0755); err != nil {
			return nil, fmt.Errorf("couldn't create config dir: %w", err)
		}

		logger.Printf("Writing configuration %q", configPath)
		if err := afero.WriteFile(fs, configPath, defaultConfigData, 0644); err != nil {
			return nil, fmt.Errorf("couldn't write config: %w", err)
		}
	}

	return Load(fs, dir)
}
