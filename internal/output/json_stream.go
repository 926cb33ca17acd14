package output

import (
	"encoding/json"
	"io"
)

const (
	jsonArrayOpen      = "["
	jsonArrayClose     = "]\n"
	jsonEmptyArray     = "[]\n"
	jsonFirstIndent    = "\n  "
	jsonElementPrefix  = ",\n  "
	jsonNonEmptyFooter = "\n"
)

type jsonStreamRenderer struct {
	stdout      io.Writer
	arrayOpened bool
}

// NewJSONStreamRenderer streams names as the elements of a single JSON array.
func NewJSONStreamRenderer(stdout io.Writer) StreamRenderer {
	return &jsonStreamRenderer{stdout: stdout}
}

func (renderer *jsonStreamRenderer) Handle(name string) error {
	if renderer.stdout == nil {
		return nil
	}
	encoded, err := json.Marshal(name)
	if err != nil {
		return err
	}
	separator := jsonElementPrefix
	if !renderer.arrayOpened {
		if _, err := io.WriteString(renderer.stdout, jsonArrayOpen); err != nil {
			return err
		}
		renderer.arrayOpened = true
		separator = jsonFirstIndent
	}
	if _, err := io.WriteString(renderer.stdout, separator); err != nil {
		return err
	}
	_, err = renderer.stdout.Write(encoded)
	return err
}

func (renderer *jsonStreamRenderer) Flush() error {
	if renderer.stdout == nil {
		return nil
	}
	if !renderer.arrayOpened {
		_, err := io.WriteString(renderer.stdout, jsonEmptyArray)
		return err
	}
	if _, err := io.WriteString(renderer.stdout, jsonNonEmptyFooter); err != nil {
		return err
	}
	_, err := io.WriteString(renderer.stdout, jsonArrayClose)
	return err
}
