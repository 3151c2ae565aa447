package http

import (
	"errors"
	"fmt"
	"io"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/mrlokans/clippings/internal/kindle"
)

const (
	maxClippingsFileSize = 10 * 1024 * 1024 // 10 MB
)

var errFileTooLarge = fmt.Errorf("file too large (max %d MB)", maxClippingsFileSize/(1024*1024))

// ClippingsParser is the subset of *kindle.Parser used by the controller.
type ClippingsParser interface {
	ParseEntries(r io.Reader) ([]kindle.Entry, error)
}

var _ ClippingsParser = (*kindle.Parser)(nil)

type ClippingsController struct {
	parser ClippingsParser
}

func NewClippingsController(parser ClippingsParser) *ClippingsController {
	return &ClippingsController{parser: parser}
}

type ParseResult struct {
	Success bool           `json:"success"`
	Error   string         `json:"error,omitempty"`
	Entry   int            `json:"entry,omitempty"` // 1-based index of the entry that failed
	Count   int            `json:"count"`
	Entries []kindle.Entry `json:"entries,omitempty"`
}

// Parse accepts a multipart upload in the "clippings_file" field and responds
// with every parsed entry, or with the first parse error.
func (c *ClippingsController) Parse(ctx *gin.Context) {
	file, header, err := ctx.Request.FormFile("clippings_file")
	if err != nil {
		ctx.JSON(http.StatusBadRequest, &ParseResult{
			Success: false,
			Error:   "Clippings file not provided",
		})
		return
	}
	defer file.Close()

	if header.Size > maxClippingsFileSize {
		ctx.JSON(http.StatusBadRequest, &ParseResult{
			Success: false,
			Error:   errFileTooLarge.Error(),
		})
		return
	}

	// the multipart header size is client supplied
	reader := http.MaxBytesReader(ctx.Writer, file, maxClippingsFileSize)

	entries, err := c.parser.ParseEntries(reader)
	var tooLarge *http.MaxBytesError
	if errors.As(err, &tooLarge) {
		ctx.JSON(http.StatusBadRequest, &ParseResult{Success: false, Error: errFileTooLarge.Error()})
		return
	}
	if err != nil {
		result := &ParseResult{
			Success: false,
			Error:   fmt.Sprintf("Failed to parse clippings: %v", err),
		}
		var entryErr *kindle.EntryError
		if errors.As(err, &entryErr) {
			result.Entry = entryErr.Index
		}
		log.Printf("Rejected clippings upload %q: %v", header.Filename, err)
		ctx.JSON(http.StatusBadRequest, result)
		return
	}

	log.Printf("Parsed %d clippings from %q", len(entries), header.Filename)

	ctx.JSON(http.StatusOK, &ParseResult{
		Success: true,
		Count:   len(entries),
		Entries: entries,
	})
}
