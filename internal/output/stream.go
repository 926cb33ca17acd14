// Package output renders directory entry names to a writer in the supported formats.
package output

import (
	"fmt"
	"io"

	"github.com/temirov/lsdir/internal/types"
)

const errorUnsupportedFormat = "unsupported format '%s'"

// StreamRenderer receives entry names one at a time and completes the document on Flush.
type StreamRenderer interface {
	Handle(name string) error
	Flush() error
}

// NewStreamRenderer returns the renderer registered for format.
func NewStreamRenderer(format string, stdout io.Writer) (StreamRenderer, error) {
	switch format {
	case types.FormatRaw:
		return NewRawStreamRenderer(stdout), nil
	case types.FormatJSON:
		return NewJSONStreamRenderer(stdout), nil
	case types.FormatXML:
		return NewXMLStreamRenderer(stdout), nil
	default:
		return nil, fmt.Errorf(errorUnsupportedFormat, format)
	}
}
