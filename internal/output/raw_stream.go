package output

import (
	"fmt"
	"io"
)

type rawStreamRenderer struct {
	stdout io.Writer
}

// NewRawStreamRenderer writes one name per line with no header or summary.
func NewRawStreamRenderer(stdout io.Writer) StreamRenderer {
	return &rawStreamRenderer{stdout: stdout}
}

func (renderer *rawStreamRenderer) Handle(name string) error {
	if renderer.stdout == nil {
		return nil
	}
	_, err := fmt.Fprintln(renderer.stdout, name)
	return err
}

func (renderer *rawStreamRenderer) Flush() error {
	return nil
}
