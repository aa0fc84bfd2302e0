package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// ErrConfigNotFound is returned when the config file does not exist.
// Callers can check for this with errors.Is(err, config.ErrConfigNotFound).
var ErrConfigNotFound = errors.New("config file not found")

// ProjectConfig mirrors tabload.yaml. Every field is a pointer so that an
// absent key can be told apart from a zero value; in particular Files must
// distinguish "key absent" (scan the directory) from "key present but empty"
// (load nothing).
type ProjectConfig struct {
	DatabaseURL    *string   `yaml:"database_url,omitempty"`
	Dir            *string   `yaml:"dir,omitempty"`
	Files          *[]string `yaml:"files,omitempty"`
	Schema         *string   `yaml:"schema,omitempty"`
	Separator      *string   `yaml:"separator,omitempty"`
	Encoding       *string   `yaml:"encoding,omitempty"`
	BatchSize      *int      `yaml:"batch_size,omitempty"`
	Timeout        *string   `yaml:"timeout,omitempty"`
	AuthMethod     *string   `yaml:"auth_method,omitempty"`
	AzureTenantID  *string   `yaml:"azure_tenant_id,omitempty"`
	AzureClientID  *string   `yaml:"azure_client_id,omitempty"`
	AWSRegion      *string   `yaml:"aws_region,omitempty"`
	GoogleInstance *string   `yaml:"google_instance,omitempty"`
}

const ConfigFileName = "tabload.yaml"

// Load reads tabload.yaml from dir. A missing file yields ErrConfigNotFound;
// callers treat that as "no project config" rather than a failure.
func Load(dir string) (*ProjectConfig, error) {
	configPath := filepath.Join(dir, ConfigFileName)
	data, err := os.ReadFile(configPath)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, ErrConfigNotFound
		}
		return nil, err
	}

	var cfg ProjectConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parsing %s: %w", configPath, err)
	}
	return &cfg, nil
}
