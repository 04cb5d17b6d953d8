package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"

	"github.com/dnorberg/vidsum/internal/store"
)

type Config struct {
	Gemini  GeminiConfig `mapstructure:"gemini"`
	Notion  NotionConfig `mapstructure:"notion"`
	History store.Config `mapstructure:"history"`
}

type GeminiConfig struct {
	APIKey string `mapstructure:"api_key"`
	Model  string `mapstructure:"model"`
}

// NotionConfig configures the document-store destination. ParentPage is the
// page ID new summary pages are created under.
type NotionConfig struct {
	Token      string `mapstructure:"token"`
	Version    string `mapstructure:"version"`     // Notion-Version header override
	ParentPage string `mapstructure:"parent_page"` // Default parent page ID
}

func Load() (*Config, error) {
	configPath, err := GetConfigDir()
	if err != nil {
		return nil, fmt.Errorf("failed to get config dir: %w", err)
	}

	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath(configPath)
	viper.AddConfigPath(".")

	// Set defaults
	viper.SetDefault("gemini.model", "gemini-3-flash-preview")
	viper.SetDefault("history.enabled", true)
	viper.SetDefault("history.max_age_days", 0)

	// Read config file (optional - won't error if missing)
	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("failed to read config: %w", err)
		}
	}

	var cfg Config
	if err := viper.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	// Resolve credentials from config value or environment
	cfg.Gemini.APIKey = expandEnv(cfg.Gemini.APIKey)
	if cfg.Gemini.APIKey == "" {
		cfg.Gemini.APIKey = os.Getenv("GEMINI_API_KEY")
	}
	cfg.Notion.Token = expandEnv(cfg.Notion.Token)
	if cfg.Notion.Token == "" {
		cfg.Notion.Token = os.Getenv("NOTION_TOKEN")
	}
	cfg.Notion.ParentPage = expandEnv(cfg.Notion.ParentPage)

	return &cfg, nil
}

// expandEnv expands ${VAR} or $VAR in a string
func expandEnv(s string) string {
	if strings.HasPrefix(s, "${") && strings.HasSuffix(s, "}") {
		return os.Getenv(s[2 : len(s)-1])
	}
	if strings.HasPrefix(s, "$") {
		return os.Getenv(s[1:])
	}
	return s
}

// GetConfigDir returns the XDG config directory for vidsum.
// Uses $XDG_CONFIG_HOME if set, otherwise ~/.config
func GetConfigDir() (string, error) {
	if xdgHome := os.Getenv("XDG_CONFIG_HOME"); xdgHome != "" {
		return filepath.Join(xdgHome, "vidsum"), nil
	}
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(homeDir, ".config", "vidsum"), nil
}

// GetConfigPath returns the path where the config file should be located
func GetConfigPath() (string, error) {
	configDir, err := GetConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(configDir, "config.yaml"), nil
}

// Exists returns true if a config file exists
func Exists() bool {
	path, err := GetConfigPath()
	if err != nil {
		return false
	}
	_, err = os.Stat(path)
	return err == nil
}

// WriteStarter writes a commented starter config to disk without
// overwriting an existing file.
func WriteStarter() (string, error) {
	path, err := GetConfigPath()
	if err != nil {
		return "", err
	}
	if _, err := os.Stat(path); err == nil {
		return path, fmt.Errorf("config already exists at %s", path)
	}

	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return "", fmt.Errorf("failed to create config directory: %w", err)
	}

	content := `gemini:
  # api_key: set here or via GEMINI_API_KEY
  model: gemini-3-flash-preview

notion:
  # token: set here or via NOTION_TOKEN
  # parent_page: page ID that new summary pages are created under
  # parent_page: 00000000-0000-0000-0000-000000000000

history:
  enabled: true
  # Auto-prune runs older than N days (0 = keep forever)
  max_age_days: 0
`

	return path, os.WriteFile(path, []byte(content), 0600)
}
