package kindle

import (
	"errors"
	"fmt"
)

// Sentinel errors returned while parsing a clippings file. Use errors.Is to
// match them; value-carrying variants are wrapped in *ValueError.
var (
	ErrFileRead = errors.New("IO error during reading the file")

	ErrTitleNotFound  = errors.New("title is not found")
	ErrAuthorNotFound = errors.New("author is not found")

	ErrKindNotFound = errors.New("entry type is not found")
	ErrInvalidKind  = errors.New("invalid entry type, must be Highlight, Note or Bookmark")

	ErrLocationNotFound = errors.New("location is not found")
	ErrInvalidLocation  = errors.New("invalid location")

	ErrInvalidPage = errors.New("invalid page number")

	ErrDateNotFound = errors.New("date is not found")
	ErrInvalidDate  = errors.New("invalid date")
)

// ValueError carries the offending text of an InvalidKind, InvalidPage,
// InvalidLocation or InvalidDate failure.
type ValueError struct {
	Err   error
	Value string
}

func (e *ValueError) Error() string {
	return fmt.Sprintf("%v: %q", e.Err, e.Value)
}

func (e *ValueError) Unwrap() error {
	return e.Err
}

func invalid(err error, value string) error {
	return &ValueError{Err: err, Value: value}
}

// FileReadError reports a failure to open or read the clippings file.
type FileReadError struct {
	Path string
	Err  error
}

func (e *FileReadError) Error() string {
	if e.Path == "" {
		return fmt.Sprintf("%v: %v", ErrFileRead, e.Err)
	}
	return fmt.Sprintf("%v %s: %v", ErrFileRead, e.Path, e.Err)
}

func (e *FileReadError) Unwrap() error {
	return e.Err
}

func (e *FileReadError) Is(target error) bool {
	return target == ErrFileRead
}

// EntryError tells which entry of the file failed to parse. Index is 1-based.
type EntryError struct {
	Index int
	Err   error
}

func (e *EntryError) Error() string {
	return fmt.Sprintf("entry %d: %v", e.Index, e.Err)
}

func (e *EntryError) Unwrap() error {
	return e.Err
}
