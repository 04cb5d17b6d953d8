package cmd

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/dnorberg/vidsum/internal/signal"
	"github.com/dnorberg/vidsum/internal/store"
)

var (
	historyLimit int
	historyPrune int
)

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "List past summarize and publish runs",
	RunE:  runHistory,
}

func init() {
	historyCmd.Flags().IntVarP(&historyLimit, "limit", "n", 20, "Maximum runs to show")
	historyCmd.Flags().IntVar(&historyPrune, "prune", 0, "Delete runs older than N days before listing")

	rootCmd.AddCommand(historyCmd)
}

func runHistory(cmd *cobra.Command, args []string) error {
	ctx, stop := signal.NotifyContext()
	defer stop()

	path, err := store.DefaultDBPath()
	if err != nil {
		return err
	}
	st, err := store.NewSQLiteStore(path)
	if err != nil {
		return err
	}
	defer st.Close()

	if historyPrune > 0 {
		deleted, err := st.Prune(ctx, historyPrune)
		if err != nil {
			return err
		}
		fmt.Printf("Pruned %d runs older than %d days\n", deleted, historyPrune)
	}

	runs, err := st.List(ctx, historyLimit)
	if err != nil {
		return err
	}
	if len(runs) == 0 {
		fmt.Println("No runs recorded yet.")
		return nil
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "WHEN\tVIDEO\tTITLE\tBLOCKS\tPAGE")
	for _, r := range runs {
		title := r.Title
		if len(title) > 40 {
			title = title[:37] + "..."
		}
		page := r.PageID
		if page == "" {
			page = "-"
		}
		fmt.Fprintf(w, "%s\t%s\t%s\t%d\t%s\n",
			r.CreatedAt.Local().Format("2006-01-02 15:04"), r.VideoID, title, r.BlockCount, page)
	}
	return w.Flush()
}
