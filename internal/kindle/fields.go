package kindle

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// EntryKind is the type of a clipping. The values are the literal labels
// used by the device.
type EntryKind string

const (
	KindHighlight EntryKind = "Highlight"
	KindNote      EntryKind = "Note"
	KindBookmark  EntryKind = "Bookmark"
)

// Location is an inclusive range of device locations. A single location is
// stored with Start == End. Start > End is kept as written by the device.
type Location struct {
	Start uint64 `json:"start" yaml:"start"`
	End   uint64 `json:"end" yaml:"end"`
}

func (l Location) String() string {
	if l.Start == l.End {
		return strconv.FormatUint(l.Start, 10)
	}
	return fmt.Sprintf("%d-%d", l.Start, l.End)
}

// Page is a printed page number.
type Page uint64

// TimestampLayout is the only date format written by the device,
// e.g. "Tuesday, March 5, 2024 7:42:10 PM".
const TimestampLayout = "Monday, January 2, 2006 3:04:05 PM"

// ParseLocation parses "N" or "N-M".
func ParseLocation(s string) (Location, error) {
	parts := strings.Split(s, "-")
	if len(parts) > 2 {
		return Location{}, invalid(ErrInvalidLocation, s)
	}

	values := make([]uint64, 0, len(parts))
	for _, part := range parts {
		v, err := strconv.ParseUint(part, 10, 64)
		if err != nil {
			return Location{}, invalid(ErrInvalidLocation, s)
		}
		values = append(values, v)
	}

	if len(values) == 1 {
		return Location{Start: values[0], End: values[0]}, nil
	}
	return Location{Start: values[0], End: values[1]}, nil
}

func ParsePage(s string) (Page, error) {
	v, err := strconv.ParseUint(s, 10, 64)
	if err != nil {
		return 0, invalid(ErrInvalidPage, s)
	}
	return Page(v), nil
}

// ParseKind matches the label exactly; no case folding or trimming.
func ParseKind(s string) (EntryKind, error) {
	switch EntryKind(s) {
	case KindHighlight, KindNote, KindBookmark:
		return EntryKind(s), nil
	default:
		return "", invalid(ErrInvalidKind, s)
	}
}

// ParseTimestamp parses s with TimestampLayout. The result must format back
// to exactly s, so padded days or hours and mismatched weekdays are rejected.
func ParseTimestamp(s string) (time.Time, error) {
	t, err := time.Parse(TimestampLayout, s)
	if err != nil || t.Format(TimestampLayout) != s {
		return time.Time{}, invalid(ErrInvalidDate, s)
	}
	return t, nil
}
