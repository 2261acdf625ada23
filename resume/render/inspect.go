package render

import (
	"bytes"
	"io"

	"github.com/ledongthuc/pdf"
	"github.com/pkg/errors"
)

// Info summarises a PDF read back from bytes.
type Info struct {
	Pages int
	Text  string
}

// Inspect parses a PDF and extracts its page count and plain text.
func Inspect(data []byte) (Info, error) {
	reader, err := pdf.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return Info{}, errors.Wrap(err, "open pdf")
	}
	plain, err := reader.GetPlainText()
	if err != nil {
		return Info{}, errors.Wrap(err, "extract pdf text")
	}
	var buf bytes.Buffer
	if _, err := io.Copy(&buf, plain); err != nil {
		return Info{}, errors.Wrap(err, "read pdf text")
	}
	return Info{Pages: reader.NumPage(), Text: buf.String()}, nil
}
