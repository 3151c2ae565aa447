package render

import (
	"fmt"
	"io"
	"strings"

	"github.com/mrlokans/clippings/internal/kindle"
)

// BookSummary counts the entries of one book.
type BookSummary struct {
	Title      string
	Author     string
	Highlights int
	Notes      int
	Bookmarks  int
}

// Total is the number of entries of any kind.
func (b BookSummary) Total() int {
	return b.Highlights + b.Notes + b.Bookmarks
}

// Summarize groups entries by title and author, in order of first appearance.
// Titles and authors are compared case-insensitively.
func Summarize(entries []kindle.Entry) []BookSummary {
	index := make(map[string]int)
	var books []BookSummary

	for _, entry := range entries {
		key := bookKey(entry.Title, entry.Author)
		i, ok := index[key]
		if !ok {
			i = len(books)
			index[key] = i
			books = append(books, BookSummary{Title: entry.Title, Author: entry.Author})
		}

		switch entry.Kind {
		case kindle.KindHighlight:
			books[i].Highlights++
		case kindle.KindNote:
			books[i].Notes++
		case kindle.KindBookmark:
			books[i].Bookmarks++
		}
	}

	return books
}

// Summary writes the per-book counts of entries.
func Summary(w io.Writer, entries []kindle.Entry) error {
	books := Summarize(entries)

	if _, err := fmt.Fprintf(w, "Found %d entries in %d books\n", len(entries), len(books)); err != nil {
		return err
	}
	for i, book := range books {
		_, err := fmt.Fprintf(w, "%d. %s: %d entries (%d highlights, %d notes, %d bookmarks)\n",
			i+1, bookLabel(book.Title, book.Author), book.Total(), book.Highlights, book.Notes, book.Bookmarks)
		if err != nil {
			return err
		}
	}
	return nil
}

func bookKey(title, author string) string {
	return strings.ToLower(title) + "|" + strings.ToLower(author)
}
