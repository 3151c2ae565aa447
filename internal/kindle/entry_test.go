package kindle

import (
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExtractEntry_Highlight(t *testing.T) {
	entry, err := ExtractEntry([]string{
		"Title (Author)",
		"- Your Highlight on page 5 | Location 100-105 | Added on Tuesday, March 5, 2024 7:42:10 PM",
		"",
		"Some highlighted text.",
	})
	require.NoError(t, err)

	assert.Equal(t, "Title", entry.Title)
	assert.Equal(t, "Author", entry.Author)
	assert.Equal(t, KindHighlight, entry.Kind)
	require.NotNil(t, entry.Page)
	assert.Equal(t, Page(5), *entry.Page)
	assert.Equal(t, Location{Start: 100, End: 105}, entry.Location)
	assert.Equal(t, time.Date(2024, time.March, 5, 19, 42, 10, 0, time.UTC), entry.CreatedAt)
	assert.Equal(t, "Some highlighted text.", entry.Text)
}

func TestExtractEntry_NoPage(t *testing.T) {
	entry, err := ExtractEntry([]string{
		"Fahrenheit 451 (Ray Bradbury)",
		"- Your Note on Location 307 | Added on Tuesday, April 15, 2025 11:33:26 PM",
		"",
		"Watch the thinker",
	})
	require.NoError(t, err)

	assert.Equal(t, KindNote, entry.Kind)
	assert.Nil(t, entry.Page)
	assert.Equal(t, Location{Start: 307, End: 307}, entry.Location)
}

func TestExtractEntry_PageFortyTwo(t *testing.T) {
	entry, err := ExtractEntry([]string{
		"Title (Author)",
		"- Your Highlight on page 42 | Location 10 | Added on Tuesday, March 5, 2024 7:42:10 PM",
	})
	require.NoError(t, err)
	require.NotNil(t, entry.Page)
	assert.Equal(t, Page(42), *entry.Page)
}

func TestExtractEntry_BookmarkWithoutBody(t *testing.T) {
	tests := []struct {
		name  string
		lines []string
	}{
		{
			name: "no body line",
			lines: []string{
				"Fahrenheit 451 (Ray Bradbury)",
				"- Your Bookmark on Location 346 | Added on Saturday, March 26, 2016 3:46:21 PM",
				"",
			},
		},
		{
			name: "blank body line",
			lines: []string{
				"Fahrenheit 451 (Ray Bradbury)",
				"- Your Bookmark on Location 346 | Added on Saturday, March 26, 2016 3:46:21 PM",
				"",
				"",
			},
		},
		{
			name: "metadata only",
			lines: []string{
				"Fahrenheit 451 (Ray Bradbury)",
				"- Your Bookmark on Location 346 | Added on Saturday, March 26, 2016 3:46:21 PM",
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			entry, err := ExtractEntry(tt.lines)
			require.NoError(t, err)
			assert.Equal(t, KindBookmark, entry.Kind)
			assert.Empty(t, entry.Text)
		})
	}
}

func TestExtractEntry_MultiLineBody(t *testing.T) {
	entry, err := ExtractEntry([]string{
		"Test Book (Test Author)",
		"- Your Note on page 1 | Location 10-15 | Added on Wednesday, January 1, 2025 12:00:00 PM",
		"",
		"This note spans",
		"multiple lines.",
	})
	require.NoError(t, err)
	assert.Equal(t, "This note spans\nmultiple lines.", entry.Text)
}

func TestExtractEntry_TitleLine(t *testing.T) {
	tests := []struct {
		line   string
		title  string
		author string
	}{
		{line: "The_Power_of_Now (Eckhart Tolle)", title: "The_Power_of_Now", author: "Eckhart Tolle"},
		{
			line:   "The Selfish Gene: 30th Anniversary Edition (Richard Dawkins)",
			title:  "The Selfish Gene: 30th Anniversary Edition",
			author: "Richard Dawkins",
		},
		{
			line:   "Book With (Nested (Parentheses)) (Author Name)",
			title:  "Book With (Nested (Parentheses))",
			author: "Author Name",
		},
		{line: "Anonymous Pamphlet ()", title: "Anonymous Pamphlet", author: ""},
		{line: "\ufeffBOM Title (Someone)", title: "BOM Title", author: "Someone"},
	}

	for _, tt := range tests {
		t.Run(tt.line, func(t *testing.T) {
			entry, err := ExtractEntry([]string{
				tt.line,
				"- Your Highlight on Location 1 | Added on Tuesday, March 5, 2024 7:42:10 PM",
				"",
				"text",
			})
			require.NoError(t, err)
			assert.Equal(t, tt.title, entry.Title)
			assert.Equal(t, tt.author, entry.Author)
		})
	}
}

func TestExtractEntry_Errors(t *testing.T) {
	const validTitle = "Title (Author)"
	const date = "Tuesday, March 5, 2024 7:42:10 PM"

	tests := []struct {
		name     string
		lines    []string
		expected error
		value    string
	}{
		{name: "no lines", lines: nil, expected: ErrTitleNotFound},
		{name: "empty title line", lines: []string{"", "- Your Highlight"}, expected: ErrTitleNotFound},
		{name: "empty title", lines: []string{" (Author)"}, expected: ErrTitleNotFound},
		{name: "no author", lines: []string{"Harry_Potter_und_die_Kammer_des_Schreckens"}, expected: ErrAuthorNotFound},
		{name: "missing metadata line", lines: []string{validTitle}, expected: ErrKindNotFound},
		{name: "metadata without prefix", lines: []string{validTitle, "Highlight on Location 1 | Added on " + date}, expected: ErrKindNotFound},
		{
			name:     "unknown kind",
			lines:    []string{validTitle, "- Your Underline on page 1 | Location 1 | Added on " + date},
			expected: ErrInvalidKind,
			value:    "Underline",
		},
		{
			name:     "kind checked before page",
			lines:    []string{validTitle, "- Your Clip on page x | Location y | Added on nope"},
			expected: ErrInvalidKind,
			value:    "Clip",
		},
		{
			name:     "bad page",
			lines:    []string{validTitle, "- Your Highlight on page xii | Location 1 | Added on " + date},
			expected: ErrInvalidPage,
			value:    "xii",
		},
		{
			name:     "page checked before location",
			lines:    []string{validTitle, "- Your Highlight on page 1-2 | Location abc | Added on " + date},
			expected: ErrInvalidPage,
			value:    "1-2",
		},
		{
			name:     "page without delimiter",
			lines:    []string{validTitle, "- Your Highlight on page 5 Location 5 | Added on " + date},
			expected: ErrInvalidPage,
			value:    "5 Location 5",
		},
		{
			name:     "page at end of line",
			lines:    []string{validTitle, "- Your Highlight on page 5"},
			expected: ErrInvalidPage,
			value:    "5",
		},
		{
			name:     "missing location",
			lines:    []string{validTitle, "- Your Highlight at location 784-785 | Added on " + date},
			expected: ErrLocationNotFound,
		},
		{
			name:     "missing on",
			lines:    []string{validTitle, "- Your Highlight Location 5 | Added on " + date},
			expected: ErrLocationNotFound,
		},
		{
			name:     "text between on and location",
			lines:    []string{validTitle, "- Your Highlight on the Location 5 | Added on " + date},
			expected: ErrLocationNotFound,
		},
		{
			name:     "location range with spaces",
			lines:    []string{validTitle, "- Your Highlight on Location 5 - 6 | Added on " + date},
			expected: ErrInvalidLocation,
			value:    "5 - 6",
		},
		{
			name:     "extra clause after location",
			lines:    []string{validTitle, "- Your Highlight on Location 5 | Chapter 2 | Added on " + date},
			expected: ErrInvalidLocation,
			value:    "5 | Chapter 2",
		},
		{
			name:     "bad location",
			lines:    []string{validTitle, "- Your Highlight on Location 10-20-30 | Added on " + date},
			expected: ErrInvalidLocation,
			value:    "10-20-30",
		},
		{
			name:     "location checked before date",
			lines:    []string{validTitle, "- Your Highlight on Location abc | Added on yesterday"},
			expected: ErrInvalidLocation,
			value:    "abc",
		},
		{
			name:     "missing date",
			lines:    []string{validTitle, "- Your Highlight on Location 10"},
			expected: ErrDateNotFound,
		},
		{
			name:     "empty date",
			lines:    []string{validTitle, "- Your Highlight on Location 10 | Added on"},
			expected: ErrDateNotFound,
		},
		{
			name:     "bad date",
			lines:    []string{validTitle, "- Your Highlight on Location 10 | Added on Saturday, 26 March 2016 15:46:21"},
			expected: ErrInvalidDate,
			value:    "Saturday, 26 March 2016 15:46:21",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ExtractEntry(tt.lines)
			require.ErrorIs(t, err, tt.expected)

			if tt.value != "" {
				var valueErr *ValueError
				require.True(t, errors.As(err, &valueErr))
				assert.Equal(t, tt.value, valueErr.Value)
			}
		})
	}
}

func TestExtractEntry_RoundTrip(t *testing.T) {
	dates := []time.Time{
		time.Date(2024, time.March, 5, 19, 42, 10, 0, time.UTC),
		time.Date(2016, time.March, 26, 0, 0, 1, 0, time.UTC),
		time.Date(2025, time.December, 31, 12, 59, 59, 0, time.UTC),
	}
	kinds := []EntryKind{KindHighlight, KindNote, KindBookmark}
	pages := []*Page{nil, pagePtr(0), pagePtr(731)}
	locations := []Location{{Start: 1, End: 1}, {Start: 64, End: 65}, {Start: 9000, End: 9100}}

	for i, kind := range kinds {
		for j, page := range pages {
			for k, location := range locations {
				expected := Entry{
					Title:     fmt.Sprintf("Book %d (Vol. %d)", i, j),
					Author:    fmt.Sprintf("Author %d", k),
					Kind:      kind,
					Page:      page,
					Location:  location,
					CreatedAt: dates[(i+j+k)%len(dates)],
					Text:      fmt.Sprintf("body %d-%d-%d", i, j, k),
				}

				got, err := ExtractEntry(renderLines(expected))
				require.NoError(t, err)
				assert.Equal(t, expected, got)
			}
		}
	}
}

func pagePtr(p Page) *Page {
	return &p
}

func renderLines(e Entry) []string {
	pageClause := ""
	if e.Page != nil {
		pageClause = fmt.Sprintf(" page %d |", *e.Page)
	}
	return []string{
		fmt.Sprintf("%s (%s)", e.Title, e.Author),
		fmt.Sprintf("- Your %s on%s Location %s | Added on %s",
			e.Kind, pageClause, e.Location, e.CreatedAt.Format(TimestampLayout)),
		"",
		e.Text,
	}
}
