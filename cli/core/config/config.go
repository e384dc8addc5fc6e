package config

import (
	"fmt"

	"github.com/joho/godotenv"

	"github.com/indexer-tools/actionq/pkg/env"
	"github.com/indexer-tools/actionq/pkg/validator"
	"github.com/indexer-tools/actionq/pkg/yamlconf"
)

// Config holds everything the CLI needs to reach the management service.
// Values come from an optional YAML file, overridden by environment
// variables.
type Config struct {
	managementURL   string
	protocolNetwork string
	outputFormat    string
	production      bool
}

type yamlFile struct {
	ManagementURL   string `yaml:"management_url"`
	ProtocolNetwork string `yaml:"protocol_network"`
	OutputFormat    string `yaml:"output_format"`
}

var cfg Config

// Init loads configuration from .env, an optional config file named by
// ACTIONQ_CONFIG_FILE, and environment variables.
func Init() error {
	// A missing .env file is fine; env vars may come from the shell.
	_ = godotenv.Load()

	var fileCfg yamlFile
	if configPath := env.GetEnvString("ACTIONQ_CONFIG_FILE", ""); configPath != "" {
		if err := yamlconf.Load(configPath, &fileCfg); err != nil {
			return fmt.Errorf("error loading config file: %w", err)
		}
	}

	cfg = Config{
		managementURL:   env.GetEnvString("ACTIONQ_MANAGEMENT_URL", fallback(fileCfg.ManagementURL, "http://localhost:8000")),
		protocolNetwork: env.GetEnvString("ACTIONQ_PROTOCOL_NETWORK", fallback(fileCfg.ProtocolNetwork, "arbitrum-one")),
		outputFormat:    env.GetEnvString("ACTIONQ_OUTPUT_FORMAT", fallback(fileCfg.OutputFormat, "table")),
		production:      env.GetEnvBool("ACTIONQ_PRODUCTION", false),
	}

	if !validator.IsValidRPCAddress(cfg.managementURL) {
		return fmt.Errorf("invalid management service URL %q", cfg.managementURL)
	}
	return nil
}

func fallback(value, defaultValue string) string {
	if value != "" {
		return value
	}
	return defaultValue
}

func GetManagementURL() string {
	return cfg.managementURL
}

func GetProtocolNetwork() string {
	return cfg.protocolNetwork
}

func GetOutputFormat() string {
	return cfg.outputFormat
}

func IsProduction() bool {
	return cfg.production
}
