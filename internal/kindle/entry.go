// Package kindle parses the "My Clippings.txt" export of Kindle devices into
// typed entries.
package kindle

import (
	"regexp"
	"strings"
	"time"
)

// Entry is a single highlight, note or bookmark from the clippings file.
type Entry struct {
	Title     string    `json:"title" yaml:"title"`
	Author    string    `json:"author" yaml:"author"`
	Kind      EntryKind `json:"kind" yaml:"kind"`
	Page      *Page     `json:"page,omitempty" yaml:"page,omitempty"`
	Location  Location  `json:"location" yaml:"location"`
	CreatedAt time.Time `json:"created_at" yaml:"created_at"`
	Text      string    `json:"text" yaml:"text"`
}

const byteOrderMark = "\ufeff"

var (
	// "The Selfish Gene (Richard Dawkins)". The last parenthesized group is the author.
	titleAuthorPattern = regexp.MustCompile(`^(.*) \((.*)\)$`)

	// The metadata line is consumed left to right, each pattern anchored at
	// the end of the previous clause, so the whole line has to match
	//   - Your <kind> on[ page <page> |] Location <location> | Added on <date>
	// e.g. "- Your Highlight on page 8 | Location 64-65 | Added on Tuesday, April 15, 2025 10:16:21 PM"
	kindPattern     = regexp.MustCompile(`^- Your (\S+)`)
	pagePattern     = regexp.MustCompile(`^ page (.*?) \|`)
	locationPattern = regexp.MustCompile(`^ Location (.*?)(?: \| Added on(?: |$)|$)`)
)

// ExtractEntry builds an Entry from the lines of one clipping: title line,
// metadata line, blank line, then the body. The first failing field is
// reported, in title, author, kind, page, location, date order.
func ExtractEntry(lines []string) (Entry, error) {
	if len(lines) == 0 {
		return Entry{}, ErrTitleNotFound
	}

	title, author, err := parseTitleLine(lines[0])
	if err != nil {
		return Entry{}, err
	}

	var metadata string
	if len(lines) > 1 {
		metadata = lines[1]
	}

	kind, page, location, createdAt, err := parseMetadataLine(metadata)
	if err != nil {
		return Entry{}, err
	}

	// lines[2] is the blank line between metadata and body
	var text string
	if len(lines) > 3 {
		text = strings.Join(lines[3:], "\n")
	}

	return Entry{
		Title:     title,
		Author:    author,
		Kind:      kind,
		Page:      page,
		Location:  location,
		CreatedAt: createdAt,
		Text:      text,
	}, nil
}

func parseTitleLine(line string) (title, author string, err error) {
	line = strings.TrimPrefix(line, byteOrderMark)
	if line == "" {
		return "", "", ErrTitleNotFound
	}

	matches := titleAuthorPattern.FindStringSubmatch(line)
	if matches == nil {
		return "", "", ErrAuthorNotFound
	}
	if matches[1] == "" {
		return "", "", ErrTitleNotFound
	}
	return matches[1], matches[2], nil
}

// parseMetadataLine returns a nil page when the line has no page clause.
func parseMetadataLine(line string) (kind EntryKind, page *Page, location Location, createdAt time.Time, err error) {
	matches := kindPattern.FindStringSubmatch(line)
	if matches == nil {
		return "", nil, Location{}, time.Time{}, ErrKindNotFound
	}
	if kind, err = ParseKind(matches[1]); err != nil {
		return "", nil, Location{}, time.Time{}, err
	}

	rest, ok := strings.CutPrefix(line[len(matches[0]):], " on")
	if !ok {
		return "", nil, Location{}, time.Time{}, ErrLocationNotFound
	}

	if raw, ok := strings.CutPrefix(rest, " page "); ok {
		matches = pagePattern.FindStringSubmatch(rest)
		if matches == nil {
			return "", nil, Location{}, time.Time{}, invalid(ErrInvalidPage, raw)
		}
		parsed, err := ParsePage(matches[1])
		if err != nil {
			return "", nil, Location{}, time.Time{}, err
		}
		page = &parsed
		rest = rest[len(matches[0]):]
	}

	matches = locationPattern.FindStringSubmatch(rest)
	if matches == nil {
		return "", nil, Location{}, time.Time{}, ErrLocationNotFound
	}
	if location, err = ParseLocation(matches[1]); err != nil {
		return "", nil, Location{}, time.Time{}, err
	}

	date := rest[len(matches[0]):]
	if date == "" {
		return "", nil, Location{}, time.Time{}, ErrDateNotFound
	}
	if createdAt, err = ParseTimestamp(date); err != nil {
		return "", nil, Location{}, time.Time{}, err
	}

	return kind, page, location, createdAt, nil
}
