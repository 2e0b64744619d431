package register

// input.go wraps register input for parsing:
//
//   - a UTF-8 byte order mark (common in files saved on Windows) is removed
//   - invalid UTF-8 sequences are replaced with U+FFFD
//   - bytes read are counted for progress logging
//
// Use WrapInput to apply all of them.

import (
	"io"

	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"
)

// CountingReader wraps an io.Reader to track bytes read.
type CountingReader struct {
	reader    io.Reader
	BytesRead int64
}

// Read implements io.Reader.
func (r *CountingReader) Read(p []byte) (int, error) {
	n, err := r.reader.Read(p)
	r.BytesRead += int64(n)
	return n, err
}

// WrapInput returns a reader that strips a BOM and sanitizes UTF-8, and
// counts the raw bytes consumed from r.
func WrapInput(r io.Reader) (io.Reader, *CountingReader) {
	counter := &CountingReader{reader: r}
	return transform.NewReader(counter, unicode.UTF8BOM.NewDecoder()), counter
}
