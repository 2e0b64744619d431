package register

import (
	"bufio"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"regexp"
	"strings"
)

// lineRegex matches a register row in extracted page text: one or more
// codes, the category letter and the name.
var lineRegex = regexp.MustCompile(`^\s*((?:UA\d{17}\s+)+)(\S)\s+(.+?)\s*$`)

var rowStartRegex = regexp.MustCompile(`^UA\d{17}`)

// ParseLine parses one line of extracted text. ok is false for lines that
// are not register rows (page headers, titles, blank lines).
func ParseLine(line string) (rec Record, ok bool, err error) {
	m := lineRegex.FindStringSubmatch(line)
	if m == nil {
		return Record{}, false, nil
	}
	rec, err = newRecord(strings.Fields(m[1]), m[2], m[3])
	return rec, true, err
}

// ParseRow parses a spreadsheet-style row: code cells (possibly empty),
// then the category and the name. ok is false when the first cell is not
// a code.
func ParseRow(cells []string) (rec Record, ok bool, err error) {
	if len(cells) < 3 || !rowStartRegex.MatchString(strings.TrimSpace(cells[0])) {
		return Record{}, false, nil
	}
	n := len(cells)
	var codes []string
	for _, c := range cells[:n-2] {
		if c = strings.TrimSpace(c); c != "" {
			codes = append(codes, c)
		}
	}
	rec, err = newRecord(codes, cells[n-2], cells[n-1])
	return rec, true, err
}

func newRecord(codes []string, category, name string) (Record, error) {
	fixed := fixCategory(category)
	if fixed != strings.TrimSpace(category) && len(codes) > 0 {
		slog.Debug("fixed cyrillic category", "code", codes[len(codes)-1], "category", category, "name", name)
	}
	rec := Record{
		Codes:    codes,
		Category: Category(fixed),
		Name:     NormalizeName(name),
	}
	if err := rec.Validate(); err != nil {
		return Record{}, err
	}
	return rec, nil
}

// ReadLines parses every register row in extracted text.
func ReadLines(r io.Reader) ([]Record, error) {
	in, counter := WrapInput(r)
	scanner := bufio.NewScanner(in)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)

	var records []Record
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		rec, ok, err := ParseLine(scanner.Text())
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", lineNo, err)
		}
		if ok {
			records = append(records, rec)
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("read lines: %w", err)
	}

	slog.Debug("register text parsed", "lines", lineNo, "records", len(records), "bytes", counter.BytesRead)
	return records, nil
}

// ReadRows parses every register row of a CSV export of the register
// spreadsheet. Rows that do not start with a code are skipped.
func ReadRows(r io.Reader) ([]Record, error) {
	in, counter := WrapInput(r)
	reader := csv.NewReader(in)
	reader.FieldsPerRecord = -1
	reader.LazyQuotes = true

	var records []Record
	for {
		cells, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("read rows: %w", err)
		}
		rec, ok, err := ParseRow(cells)
		if err != nil {
			line, _ := reader.FieldPos(0)
			return nil, fmt.Errorf("row %d: %w", line, err)
		}
		if ok {
			records = append(records, rec)
		}
	}

	slog.Debug("register rows parsed", "records", len(records), "bytes", counter.BytesRead)
	return records, nil
}
