package cmd

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/dnorberg/vidsum/internal/markdown"
	"github.com/dnorberg/vidsum/internal/timestamp"
	"github.com/dnorberg/vidsum/internal/ui"
)

var (
	convertVideoURL string
	convertFormat   string
	convertPreview  bool
)

var convertCmd = &cobra.Command{
	Use:   "convert [file]",
	Short: "Convert a markdown summary into a block document",
	Long: `convert reads markdown from a file (or stdin) and prints the structured
block document. With --video-url, bracketed timestamps like [8:05] are
rewritten into deep links before conversion.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runConvert,
}

func init() {
	convertCmd.Flags().StringVar(&convertVideoURL, "video-url", "", "Video URL used to link bracketed timestamps")
	convertCmd.Flags().StringVarP(&convertFormat, "format", "f", "json", `Output format: "json" or "yaml"`)
	convertCmd.Flags().BoolVar(&convertPreview, "preview", false, "Render the enriched markdown in the terminal instead of emitting blocks")

	rootCmd.AddCommand(convertCmd)
}

func runConvert(cmd *cobra.Command, args []string) error {
	text, err := readInput(args)
	if err != nil {
		return err
	}

	if convertVideoURL != "" {
		text = timestamp.Enrich(text, convertVideoURL)
	}

	if convertPreview {
		fmt.Println(ui.RenderMarkdown(text, previewWidth()))
		return nil
	}

	doc := markdown.ToBlocks(text)
	if debugActive {
		fmt.Fprintf(os.Stderr, "converted %d lines into %d blocks\n", countLines(text), len(doc))
	}
	return writeDocument(os.Stdout, doc, convertFormat)
}

func readInput(args []string) (string, error) {
	if len(args) == 1 && args[0] != "-" {
		data, err := os.ReadFile(args[0])
		if err != nil {
			return "", fmt.Errorf("read input: %w", err)
		}
		return string(data), nil
	}
	data, err := io.ReadAll(os.Stdin)
	if err != nil {
		return "", fmt.Errorf("read stdin: %w", err)
	}
	return string(data), nil
}

func countLines(text string) int {
	if text == "" {
		return 0
	}
	n := 1
	for _, r := range text {
		if r == '\n' {
			n++
		}
	}
	return n
}
