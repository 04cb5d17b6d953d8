package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/dnorberg/vidsum/internal/config"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Show the resolved configuration",
	RunE:  runConfig,
}

var configInitCmd = &cobra.Command{
	Use:   "init",
	Short: "Write a starter config file",
	RunE: func(cmd *cobra.Command, args []string) error {
		path, err := config.WriteStarter()
		if err != nil {
			return err
		}
		fmt.Printf("Wrote %s\n", path)
		return nil
	},
}

func init() {
	configCmd.AddCommand(configInitCmd)
	rootCmd.AddCommand(configCmd)
}

func runConfig(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	path, _ := config.GetConfigPath()
	fmt.Printf("Config file: %s", path)
	if !config.Exists() {
		fmt.Print(" (not created yet, run `vidsum config init`)")
	}
	fmt.Println()
	fmt.Println()

	fmt.Printf("gemini.model:       %s\n", cfg.Gemini.Model)
	fmt.Printf("gemini.api_key:     %s\n", redact(cfg.Gemini.APIKey))
	fmt.Printf("notion.token:       %s\n", redact(cfg.Notion.Token))
	fmt.Printf("notion.parent_page: %s\n", valueOrUnset(cfg.Notion.ParentPage))
	fmt.Printf("history.enabled:    %v\n", cfg.History.Enabled)
	fmt.Printf("history.max_age_days: %d\n", cfg.History.MaxAgeDays)
	return nil
}

func redact(secret string) string {
	if secret == "" {
		return "(unset)"
	}
	if len(secret) <= 8 {
		return "****"
	}
	return secret[:4] + "..." + secret[len(secret)-4:]
}

func valueOrUnset(v string) string {
	if v == "" {
		return "(unset)"
	}
	return v
}
