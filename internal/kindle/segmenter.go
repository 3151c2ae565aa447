package kindle

import (
	"bufio"
	"io"
	"strings"
)

const (
	entrySeparator = "=========="

	maxLineSize = 1024 * 1024
)

// Segmenter splits a clippings stream into the line groups of individual
// entries. It is used like bufio.Scanner:
//
//	seg := NewSegmenter(r)
//	for seg.Next() {
//		lines := seg.Group()
//	}
//	if err := seg.Err(); err != nil { ... }
//
// Groups that are empty or contain only blank lines are skipped. Any read
// error stops the segmenter and is reported by Err as a *FileReadError.
type Segmenter struct {
	scanner *bufio.Scanner
	group   []string
	err     error
	done    bool
}

func NewSegmenter(r io.Reader) *Segmenter {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), maxLineSize)
	return &Segmenter{scanner: scanner}
}

// Next advances to the next non-empty group and reports whether there is one.
func (s *Segmenter) Next() bool {
	if s.done {
		return false
	}

	var current []string
	for s.scanner.Scan() {
		line := s.scanner.Text()
		if line == entrySeparator {
			if !isBlankGroup(current) {
				s.group = current
				return true
			}
			current = nil
			continue
		}
		current = append(current, line)
	}

	s.done = true
	if err := s.scanner.Err(); err != nil {
		s.err = &FileReadError{Err: err}
		s.group = nil
		return false
	}

	// last entry without a trailing separator
	if !isBlankGroup(current) {
		s.group = current
		return true
	}
	s.group = nil
	return false
}

// Group returns the lines of the current entry.
func (s *Segmenter) Group() []string {
	return s.group
}

func (s *Segmenter) Err() error {
	return s.err
}

func isBlankGroup(lines []string) bool {
	for _, line := range lines {
		if strings.TrimSpace(line) != "" {
			return false
		}
	}
	return true
}
