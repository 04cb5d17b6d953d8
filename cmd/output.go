package cmd

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strconv"

	"gopkg.in/yaml.v3"

	"github.com/dnorberg/vidsum/internal/blocks"
)

// writeDocument serializes a block document to w in the requested format.
func writeDocument(w io.Writer, doc []blocks.Block, format string) error {
	switch format {
	case "json", "":
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		if err := enc.Encode(doc); err != nil {
			return fmt.Errorf("encode document: %w", err)
		}
	case "yaml":
		out, err := yaml.Marshal(doc)
		if err != nil {
			return fmt.Errorf("encode document: %w", err)
		}
		if _, err := w.Write(out); err != nil {
			return err
		}
	default:
		return fmt.Errorf("unknown format %q (want json or yaml)", format)
	}
	return nil
}

// previewWidth picks a render width for terminal preview. $COLUMNS wins
// when set; otherwise a comfortable default.
func previewWidth() int {
	if cols := os.Getenv("COLUMNS"); cols != "" {
		if n, err := strconv.Atoi(cols); err == nil && n > 20 {
			return n
		}
	}
	return 100
}
