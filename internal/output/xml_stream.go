package output

import (
	"encoding/xml"
	"io"
)

const (
	xmlRootOpen  = "<entries>\n"
	xmlRootClose = "</entries>\n"
	xmlEntryName = "entry"
	xmlIndent    = "  "
	xmlNewline   = "\n"
)

type xmlStreamRenderer struct {
	stdout  io.Writer
	encoder *xml.Encoder
	started bool
}

// NewXMLStreamRenderer streams names as <entry> elements under a single <entries> root.
func NewXMLStreamRenderer(stdout io.Writer) StreamRenderer {
	return &xmlStreamRenderer{stdout: stdout}
}

func (renderer *xmlStreamRenderer) Handle(name string) error {
	if err := renderer.ensureEncoder(); err != nil {
		return err
	}
	if renderer.encoder == nil {
		return nil
	}
	if _, err := io.WriteString(renderer.stdout, xmlIndent); err != nil {
		return err
	}
	element := xml.StartElement{Name: xml.Name{Local: xmlEntryName}}
	if err := renderer.encoder.EncodeElement(name, element); err != nil {
		return err
	}
	if err := renderer.encoder.Flush(); err != nil {
		return err
	}
	_, err := io.WriteString(renderer.stdout, xmlNewline)
	return err
}

func (renderer *xmlStreamRenderer) Flush() error {
	if err := renderer.ensureEncoder(); err != nil {
		return err
	}
	if renderer.encoder != nil {
		if err := renderer.encoder.Flush(); err != nil {
			return err
		}
	}
	if renderer.started && renderer.stdout != nil {
		if _, err := io.WriteString(renderer.stdout, xmlRootClose); err != nil {
			return err
		}
	}
	return nil
}

func (renderer *xmlStreamRenderer) ensureEncoder() error {
	if renderer.stdout == nil || renderer.started {
		return nil
	}
	if _, err := io.WriteString(renderer.stdout, xml.Header); err != nil {
		return err
	}
	if _, err := io.WriteString(renderer.stdout, xmlRootOpen); err != nil {
		return err
	}
	renderer.encoder = xml.NewEncoder(renderer.stdout)
	renderer.started = true
	return nil
}
