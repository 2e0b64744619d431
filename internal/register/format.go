package register

import (
	"bufio"
	"bytes"
	"fmt"
	"io"
	"path/filepath"
	"strings"
)

// Format names a register input layout.
type Format string

const (
	FormatAuto Format = "auto" // detect from file name and content
	FormatText Format = "text" // text extracted from the published document
	FormatRows Format = "rows" // CSV export of the register spreadsheet
	FormatCSV  Format = "csv"  // CSV artifact written by WriteCSV
)

// ParseFormat validates a format name, case-insensitively.
func ParseFormat(s string) (Format, error) {
	switch f := Format(strings.ToLower(strings.TrimSpace(s))); f {
	case FormatAuto, FormatText, FormatRows, FormatCSV:
		return f, nil
	case "":
		return FormatAuto, nil
	default:
		return "", fmt.Errorf("unknown input format %q", s)
	}
}

const sniffSize = 4096

var utf8BOM = []byte("\xef\xbb\xbf")

// DetectFormat guesses the layout from the file name and the first bytes.
func DetectFormat(name string, head []byte) Format {
	head = bytes.TrimPrefix(head, utf8BOM)
	first, _, _ := bytes.Cut(head, []byte("\n"))
	first = bytes.TrimSpace(bytes.ToLower(first))

	if bytes.HasPrefix(first, []byte("level1")) {
		return FormatCSV
	}
	if strings.EqualFold(filepath.Ext(name), ".csv") {
		return FormatRows
	}
	for _, line := range bytes.Split(head, []byte("\n")) {
		line = bytes.TrimSpace(line)
		if len(line) == 0 {
			continue
		}
		line = bytes.TrimLeft(line, `"`)
		if bytes.HasPrefix(line, []byte("UA")) && bytes.IndexByte(line, ',') >= 0 {
			return FormatRows
		}
		break
	}
	return FormatText
}

// Read parses register records from r. name is only used for FormatAuto
// detection and may be empty.
func Read(r io.Reader, name string, format Format) ([]Record, Format, error) {
	br := bufio.NewReaderSize(r, sniffSize)
	if format == FormatAuto || format == "" {
		head, _ := br.Peek(sniffSize)
		format = DetectFormat(name, head)
	}

	var (
		recs []Record
		err  error
	)
	switch format {
	case FormatText:
		recs, err = ReadLines(br)
	case FormatRows:
		recs, err = ReadRows(br)
	case FormatCSV:
		recs, err = ReadCSV(br)
	default:
		return nil, format, fmt.Errorf("unknown input format %q", format)
	}
	return recs, format, err
}
