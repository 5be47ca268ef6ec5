package models

// Config represents the application configuration
type Config struct {
	Repository RepositoryConfig `mapstructure:"repository" json:"repository"`
	Export     ExportSettings   `mapstructure:"export" json:"export"`
	Import     ImportSettings   `mapstructure:"import" json:"import"`
}

// RepositoryConfig contains defaults applied to freshly created drafts
type RepositoryConfig struct {
	Name               string `mapstructure:"name" json:"name"`
	Subtitle           string `mapstructure:"subtitle" json:"subtitle"`
	Website            string `mapstructure:"website" json:"website"`
	PlaceholderIconURL string `mapstructure:"placeholder_icon_url" json:"placeholder_icon_url"`
}

// ExportSettings contains default export pipeline switches
type ExportSettings struct {
	Deduplicate        bool   `mapstructure:"deduplicate" json:"deduplicate"`
	FilterIncompatible bool   `mapstructure:"filter_incompatible" json:"filter_incompatible"`
	Pretty             bool   `mapstructure:"pretty" json:"pretty"`
	Output             string `mapstructure:"output" json:"output"`
}

// ImportSettings contains network settings for remote ingestion
type ImportSettings struct {
	TimeoutSeconds int    `mapstructure:"timeout_seconds" json:"timeout_seconds"`
	UserAgent      string `mapstructure:"user_agent" json:"user_agent"`
}
