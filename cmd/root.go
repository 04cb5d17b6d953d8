package cmd

import (
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "vidsum",
	Short: "Turn YouTube videos into structured Notion summaries",
	Long: `vidsum summarizes YouTube videos with Gemini and converts the markdown
summary into a structured block document for Notion.

Examples:
  vidsum summarize https://youtu.be/pMSXPgAUq_k
  vidsum summarize https://youtu.be/pMSXPgAUq_k --publish
  vidsum convert notes.md --video-url https://youtu.be/pMSXPgAUq_k
  vidsum history`,
	CompletionOptions: cobra.CompletionOptions{DisableDefaultCmd: true},
}

var debugActive bool

func init() {
	rootCmd.PersistentFlags().BoolVar(&debugActive, "debug", false, "Emit request/response debug traces to stderr")
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
