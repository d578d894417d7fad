package config

import (
	"fmt"
	"os"

	"cardmail/internal/models"

	"gopkg.in/yaml.v2"
)

// Load reads the configuration from the specified YAML file and returns a
// Config struct. Missing required values are an error here, before any
// retrieval begins.
func Load(filepath string) (*models.Config, error) {
	configFile, err := os.ReadFile(filepath)
	if err != nil {
		return nil, err
	}

	var config models.Config
	if err := yaml.Unmarshal(configFile, &config); err != nil {
		return nil, err
	}

	if err := validate(&config); err != nil {
		return nil, err
	}

	return &config, nil
}

func validate(cfg *models.Config) error {
	if cfg.Gmail.Credentials == "" {
		return fmt.Errorf("configuration missing: gmail.credentials")
	}
	if cfg.Gmail.Token == "" {
		return fmt.Errorf("configuration missing: gmail.token")
	}
	if cfg.Database.Path == "" {
		return fmt.Errorf("configuration missing: database.path")
	}
	if cfg.Database.Table == "" {
		return fmt.Errorf("configuration missing: database.table")
	}
	if len(cfg.Issuers) == 0 {
		return fmt.Errorf("configuration missing: at least one issuer is required")
	}
	for i, issuer := range cfg.Issuers {
		if issuer.Name == "" {
			return fmt.Errorf("configuration missing: issuers[%d].name", i)
		}
		if issuer.Address == "" {
			return fmt.Errorf("configuration missing: issuers[%d].address", i)
		}
	}
	return nil
}
