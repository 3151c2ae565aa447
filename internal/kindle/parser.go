package kindle

import (
	"errors"
	"io"
	"os"
)

// Parser parses Kindle My Clippings.txt files. The zero value is ready to
// use and holds no state between calls.
type Parser struct{}

func NewParser() *Parser {
	return &Parser{}
}

// ParseFile opens path and parses every entry in it.
func (p *Parser) ParseFile(path string) ([]Entry, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, &FileReadError{Path: path, Err: err}
	}
	defer file.Close()

	entries, err := p.ParseEntries(file)
	if err != nil {
		var readErr *FileReadError
		if errors.As(err, &readErr) && readErr.Path == "" {
			readErr.Path = path
		}
		return nil, err
	}
	return entries, nil
}

// ParseEntries parses all entries from r in file order. Parsing stops at the
// first malformed entry or read error; no entries are returned in that case.
func (p *Parser) ParseEntries(r io.Reader) ([]Entry, error) {
	segmenter := NewSegmenter(r)
	entries := []Entry{}

	for index := 1; segmenter.Next(); index++ {
		entry, err := ExtractEntry(segmenter.Group())
		if err != nil {
			return nil, &EntryError{Index: index, Err: err}
		}
		entries = append(entries, entry)
	}

	if err := segmenter.Err(); err != nil {
		return nil, err
	}

	return entries, nil
}
