package cmd

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/dnorberg/vidsum/internal/config"
	"github.com/dnorberg/vidsum/internal/markdown"
	"github.com/dnorberg/vidsum/internal/notion"
	"github.com/dnorberg/vidsum/internal/signal"
	"github.com/dnorberg/vidsum/internal/store"
	"github.com/dnorberg/vidsum/internal/summarizer"
	"github.com/dnorberg/vidsum/internal/timestamp"
	"github.com/dnorberg/vidsum/internal/ui"
	"github.com/dnorberg/vidsum/internal/youtube"
)

var (
	summarizeModel   string
	summarizeFormat  string
	summarizePublish bool
	summarizePreview bool
	summarizeParent  string
)

var summarizeCmd = &cobra.Command{
	Use:   "summarize <video-url>",
	Short: "Summarize a YouTube video into a block document",
	Long: `summarize runs the full pipeline: look up video metadata, ask Gemini for
a markdown summary, link bracketed timestamps, and convert the result into
a structured block document. With --publish the document is pushed to
Notion as a new page.`,
	Args: cobra.ExactArgs(1),
	RunE: runSummarize,
}

func init() {
	summarizeCmd.Flags().StringVarP(&summarizeModel, "model", "m", "", "Override the Gemini model")
	summarizeCmd.Flags().StringVarP(&summarizeFormat, "format", "f", "json", `Output format: "json" or "yaml"`)
	summarizeCmd.Flags().BoolVar(&summarizePublish, "publish", false, "Create a Notion page instead of printing blocks")
	summarizeCmd.Flags().BoolVar(&summarizePreview, "preview", false, "Render the summary in the terminal instead of emitting blocks")
	summarizeCmd.Flags().StringVar(&summarizeParent, "parent", "", "Parent page ID for --publish (defaults to notion.parent_page)")

	rootCmd.AddCommand(summarizeCmd)
}

func runSummarize(cmd *cobra.Command, args []string) error {
	ctx, stop := signal.NotifyContext()
	defer stop()

	videoURL := args[0]
	videoID, ok := youtube.VideoID(videoURL)
	if !ok {
		return fmt.Errorf("not a youtube video url: %s", videoURL)
	}

	cfg, err := config.Load()
	if err != nil {
		return err
	}

	// Metadata failure degrades to an untitled document.
	meta, err := youtube.NewClient().Metadata(ctx, videoURL)
	if err != nil {
		if debugActive {
			fmt.Fprintf(os.Stderr, "metadata lookup failed: %v\n", err)
		}
		meta = nil
	}

	s := summarizer.New(cfg.Gemini.APIKey,
		summarizer.WithModel(firstNonEmpty(summarizeModel, cfg.Gemini.Model)),
		summarizer.WithDebug(debugActive),
	)
	summary, err := s.Summarize(ctx, videoURL, meta)
	if err != nil {
		return err
	}

	enriched := timestamp.Enrich(summary, videoURL)
	doc := markdown.ToBlocks(enriched)

	run := &store.Run{
		VideoID:    videoID,
		VideoURL:   videoURL,
		Model:      s.Model(),
		BlockCount: len(doc),
	}
	if meta != nil {
		run.Title = meta.Title
	}

	if summarizePublish {
		parent := firstNonEmpty(summarizeParent, cfg.Notion.ParentPage)
		if parent == "" {
			return fmt.Errorf("no parent page: pass --parent or set notion.parent_page")
		}
		client := notion.NewClient(cfg.Notion.Token, notion.WithVersion(cfg.Notion.Version))
		page, err := client.CreatePage(ctx, parent, pageTitle(meta, videoID), doc)
		if err != nil {
			return err
		}
		run.PageID = page.ID
		fmt.Printf("Created %s\n", page.URL)
	} else if summarizePreview {
		fmt.Println(ui.RenderMarkdown(enriched, previewWidth()))
	} else {
		if err := writeDocument(os.Stdout, doc, summarizeFormat); err != nil {
			return err
		}
	}

	recordRun(ctx, cfg, run)
	return nil
}

// recordRun saves the run to history. History failures never fail the
// pipeline; the summary was already delivered.
func recordRun(ctx context.Context, cfg *config.Config, run *store.Run) {
	if !cfg.History.Enabled {
		return
	}
	path, err := store.DefaultDBPath()
	if err != nil {
		return
	}
	st, err := store.NewSQLiteStore(path)
	if err != nil {
		if debugActive {
			fmt.Fprintf(os.Stderr, "history store unavailable: %v\n", err)
		}
		return
	}
	defer st.Close()

	if err := st.Record(ctx, run); err != nil && debugActive {
		fmt.Fprintf(os.Stderr, "failed to record run: %v\n", err)
	}
	if cfg.History.MaxAgeDays > 0 {
		st.Prune(ctx, cfg.History.MaxAgeDays)
	}
}

func pageTitle(meta *youtube.Metadata, videoID string) string {
	if meta != nil && meta.Title != "" {
		return meta.Title
	}
	return "Video summary " + videoID
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
