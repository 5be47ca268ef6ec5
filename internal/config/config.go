package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/ipahub/ipahub-cli/pkg/models"
	"github.com/ipahub/ipahub-cli/pkg/repo"
	"github.com/spf13/viper"
)

var defaultConfig = models.Config{
	Repository: models.RepositoryConfig{
		Name:               "My Repository",
		Subtitle:           "",
		Website:            "",
		PlaceholderIconURL: repo.DefaultPlaceholderIconURL,
	},
	Export: models.ExportSettings{
		Deduplicate:        true,
		FilterIncompatible: false,
		Pretty:             true,
		Output:             "repo.json",
	},
	Import: models.ImportSettings{
		TimeoutSeconds: 30,
		UserAgent:      "ipahub-cli/1.0",
	},
}

// Load loads configuration from file and environment
func Load(configPath string) (*models.Config, error) {
	viper.SetConfigType("yaml")

	// Set defaults
	viper.SetDefault("repository.name", defaultConfig.Repository.Name)
	viper.SetDefault("repository.subtitle", defaultConfig.Repository.Subtitle)
	viper.SetDefault("repository.website", defaultConfig.Repository.Website)
	viper.SetDefault("repository.placeholder_icon_url", defaultConfig.Repository.PlaceholderIconURL)
	viper.SetDefault("export.deduplicate", defaultConfig.Export.Deduplicate)
	viper.SetDefault("export.filter_incompatible", defaultConfig.Export.FilterIncompatible)
	viper.SetDefault("export.pretty", defaultConfig.Export.Pretty)
	viper.SetDefault("export.output", defaultConfig.Export.Output)
	viper.SetDefault("import.timeout_seconds", defaultConfig.Import.TimeoutSeconds)
	viper.SetDefault("import.user_agent", defaultConfig.Import.UserAgent)

	// Try to load config file
	if configPath != "" {
		viper.SetConfigFile(configPath)
	} else {
		// Look for config in current directory and parent directories
		viper.SetConfigName("ipahub")
		viper.AddConfigPath(".")

		// Also check in user's home directory
		if home, err := os.UserHomeDir(); err == nil {
			viper.AddConfigPath(filepath.Join(home, ".config", "ipahub"))
		}
	}

	// Read config file if exists
	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
		// Config file not found is not an error, we'll use defaults
	}

	// Bind environment variables
	viper.SetEnvPrefix("IPAHUB")
	viper.AutomaticEnv()

	// Unmarshal configuration
	var config models.Config
	if err := viper.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	return &config, nil
}

// SaveTemplate saves a configuration template
func SaveTemplate(path string) error {
	templateContent := `# IpaHub Configuration File

repository:
  # Default name for freshly created drafts
  name: "My Repository"

  # Default subtitle shown by installer clients
  subtitle: ""

  # Repository website
  website: ""

  # Icon substituted for apps without one at export time
  placeholder_icon_url: "` + repo.DefaultPlaceholderIconURL + `"

export:
  # Keep only the highest version per app identity
  deduplicate: true

  # Drop apps that need jailbreak/TrollStore/JIT capabilities
  filter_incompatible: false

  # Indent the exported JSON document
  pretty: true

  # Default output file
  output: "repo.json"

import:
  # HTTP timeout for remote ingestion, in seconds
  timeout_seconds: 30

  # User-Agent header sent on ingestion fetches
  user_agent: "ipahub-cli/1.0"
`

	return os.WriteFile(path, []byte(templateContent), 0644)
}
