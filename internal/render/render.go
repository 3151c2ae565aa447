// Package render prints parsed clippings for the command line.
package render

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/mrlokans/clippings/internal/config"
	"github.com/mrlokans/clippings/internal/kindle"
)

// Entries writes entries to w in the given format.
func Entries(w io.Writer, format config.OutputFormat, entries []kindle.Entry) error {
	switch format {
	case config.OutputFormatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(entries)
	case config.OutputFormatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(entries); err != nil {
			return err
		}
		return enc.Close()
	case config.OutputFormatText, "":
		return text(w, entries)
	default:
		return fmt.Errorf("unsupported output format %q", format)
	}
}

func text(w io.Writer, entries []kindle.Entry) error {
	for i, entry := range entries {
		if _, err := fmt.Fprintf(w, "%d. [%s] %s\n", i+1, entry.Kind, bookLabel(entry.Title, entry.Author)); err != nil {
			return err
		}

		position := "location " + entry.Location.String()
		if entry.Page != nil {
			position = fmt.Sprintf("page %d, %s", *entry.Page, position)
		}
		if _, err := fmt.Fprintf(w, "   %s, added %s\n", position, entry.CreatedAt.Format(time.DateTime)); err != nil {
			return err
		}

		if entry.Text != "" {
			body := strings.ReplaceAll(entry.Text, "\n", "\n   ")
			if _, err := fmt.Fprintf(w, "   %s\n", body); err != nil {
				return err
			}
		}
	}
	return nil
}

func bookLabel(title, author string) string {
	if author == "" {
		return fmt.Sprintf("%q (no author)", title)
	}
	return fmt.Sprintf("%q by %s", title, author)
}
