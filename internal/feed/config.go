package feed

import (
	"fmt"
	"os"

	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
)

// Config is the watch-mode configuration
type Config struct {
	Feed FeedSettings `hcl:"feed,block"`
	UI   UISettings   `hcl:"ui,block"`
}

// FeedSettings contains feed connection settings
type FeedSettings struct {
	URL            string `hcl:"url"`
	StaleSeconds   int    `hcl:"stale_seconds,optional"`
	ConnectTimeout int    `hcl:"connect_timeout,optional"`
}

// UISettings contains display settings
type UISettings struct {
	LogLevel string `hcl:"log_level,optional"`
	LogFile  string `hcl:"log_file,optional"`
}

// DefaultConfig returns the default watch configuration
func DefaultConfig() *Config {
	return &Config{
		Feed: FeedSettings{
			URL:            "ws://localhost:8899/feed",
			StaleSeconds:   30,
			ConnectTimeout: 10,
		},
		UI: UISettings{
			LogLevel: "warn",
			LogFile:  "handview.log",
		},
	}
}

// LoadConfig loads watch configuration from an HCL file, falling back to
// defaults when the file does not exist.
func LoadConfig(filename string) (*Config, error) {
	if _, err := os.Stat(filename); os.IsNotExist(err) {
		return DefaultConfig(), nil
	}

	parser := hclparse.NewParser()
	file, diags := parser.ParseHCLFile(filename)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to parse config file %s: %s", filename, diags.Error())
	}

	var config Config
	diags = gohcl.DecodeBody(file.Body, nil, &config)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to decode config file %s: %s", filename, diags.Error())
	}

	// Apply defaults for missing values
	defaults := DefaultConfig()

	if config.Feed.URL == "" {
		config.Feed.URL = defaults.Feed.URL
	}
	if config.Feed.StaleSeconds == 0 {
		config.Feed.StaleSeconds = defaults.Feed.StaleSeconds
	}
	if config.Feed.ConnectTimeout == 0 {
		config.Feed.ConnectTimeout = defaults.Feed.ConnectTimeout
	}

	if config.UI.LogLevel == "" {
		config.UI.LogLevel = defaults.UI.LogLevel
	}
	if config.UI.LogFile == "" {
		config.UI.LogFile = defaults.UI.LogFile
	}

	return &config, nil
}
