package internal

import (
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Config holds the defaults remembered between runs, so a resumed import
// does not need every flag repeated.
type Config struct {
	Vault              string `yaml:"vault,omitempty"`
	ServiceAccountName string `yaml:"service_account_name,omitempty"`
	HourlyLimit        int    `yaml:"hourly_limit,omitempty"`
	DailyLimit         int    `yaml:"daily_limit,omitempty"`
}

func LoadConfig() (*Config, error) {
	configPath, err := getConfigPath()
	if err != nil {
		return &Config{}, nil
	}

	data, err := os.ReadFile(configPath)
	if err != nil {
		if os.IsNotExist(err) {
			return &Config{}, nil
		}
		return nil, err
	}

	var config Config
	if err := yaml.Unmarshal(data, &config); err != nil {
		return nil, err
	}

	return &config, nil
}

func (c *Config) Save() error {
	configPath, err := getConfigPath()
	if err != nil {
		return err
	}

	// Ensure config directory exists
	if err := os.MkdirAll(filepath.Dir(configPath), 0755); err != nil {
		return err
	}

	data, err := yaml.Marshal(c)
	if err != nil {
		return err
	}

	return os.WriteFile(configPath, data, 0644)
}

func getConfigPath() (string, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(homeDir, ".config", "enpass2onepassword", "config.yaml"), nil
}
