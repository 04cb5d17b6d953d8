package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/dnorberg/vidsum/internal/config"
	"github.com/dnorberg/vidsum/internal/markdown"
	"github.com/dnorberg/vidsum/internal/notion"
	"github.com/dnorberg/vidsum/internal/signal"
	"github.com/dnorberg/vidsum/internal/timestamp"
)

var (
	publishVideoURL string
	publishParent   string
	publishTitle    string
	publishAppend   string
)

var publishCmd = &cobra.Command{
	Use:   "publish <file>",
	Short: "Convert a markdown file and push it to Notion",
	Long: `publish converts an existing markdown file into a block document and
creates a Notion page from it (or appends to an existing page with
--append-to). With --video-url, bracketed timestamps are linked first.`,
	Args: cobra.ExactArgs(1),
	RunE: runPublish,
}

func init() {
	publishCmd.Flags().StringVar(&publishVideoURL, "video-url", "", "Video URL used to link bracketed timestamps")
	publishCmd.Flags().StringVar(&publishParent, "parent", "", "Parent page ID (defaults to notion.parent_page)")
	publishCmd.Flags().StringVar(&publishTitle, "title", "", "Page title (defaults to the file name)")
	publishCmd.Flags().StringVar(&publishAppend, "append-to", "", "Append to this page ID instead of creating a page")

	rootCmd.AddCommand(publishCmd)
}

func runPublish(cmd *cobra.Command, args []string) error {
	ctx, stop := signal.NotifyContext()
	defer stop()

	cfg, err := config.Load()
	if err != nil {
		return err
	}

	text, err := readInput(args)
	if err != nil {
		return err
	}
	if publishVideoURL != "" {
		text = timestamp.Enrich(text, publishVideoURL)
	}
	doc := markdown.ToBlocks(text)
	if len(doc) == 0 {
		return fmt.Errorf("nothing to publish: %s produced no blocks", args[0])
	}

	client := notion.NewClient(cfg.Notion.Token, notion.WithVersion(cfg.Notion.Version))

	if publishAppend != "" {
		if err := client.AppendBlocks(ctx, publishAppend, doc); err != nil {
			return err
		}
		fmt.Printf("Appended %d blocks to %s\n", len(doc), publishAppend)
		return nil
	}

	parent := firstNonEmpty(publishParent, cfg.Notion.ParentPage)
	if parent == "" {
		return fmt.Errorf("no parent page: pass --parent or set notion.parent_page")
	}
	title := publishTitle
	if title == "" {
		title = args[0]
	}
	page, err := client.CreatePage(ctx, parent, title, doc)
	if err != nil {
		return err
	}
	fmt.Printf("Created %s\n", page.URL)
	return nil
}
