package register

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/JonMunkholm/toponyms/internal/translit"
)

// Header is the column layout of the CSV artifact.
var Header = func() []string {
	h := make([]string, 0, MaxLevels+5)
	for i := 1; i <= MaxLevels; i++ {
		h = append(h, "level"+strconv.Itoa(i))
	}
	h = append(h, "category", "name")
	for _, s := range translit.Standards() {
		h = append(h, s.Column())
	}
	return h
}()

// CSVWriter writes records as CSV rows, starting with the header.
type CSVWriter struct {
	w           *csv.Writer
	wroteHeader bool
}

// NewCSVWriter returns a writer that writes to w. Rows end in CRLF.
func NewCSVWriter(w io.Writer) *CSVWriter {
	cw := csv.NewWriter(w)
	cw.UseCRLF = true
	return &CSVWriter{w: cw}
}

// Write writes one record, preceded by the header on first use.
func (w *CSVWriter) Write(rec Record) error {
	if !w.wroteHeader {
		if err := w.w.Write(Header); err != nil {
			return err
		}
		w.wroteHeader = true
	}

	row := make([]string, 0, len(Header))
	for i := 1; i <= MaxLevels; i++ {
		row = append(row, rec.Level(i))
	}
	row = append(row, string(rec.Category), rec.Name)
	for _, s := range translit.Standards() {
		row = append(row, rec.Latin.Get(s))
	}
	return w.w.Write(row)
}

// Flush writes buffered rows (and the header, if nothing was written yet).
func (w *CSVWriter) Flush() error {
	if !w.wroteHeader {
		if err := w.w.Write(Header); err != nil {
			return err
		}
		w.wroteHeader = true
	}
	w.w.Flush()
	return w.w.Error()
}

// WriteCSV writes the header and all records to w.
func WriteCSV(w io.Writer, recs []Record) error {
	cw := NewCSVWriter(w)
	for _, rec := range recs {
		if err := cw.Write(rec); err != nil {
			return fmt.Errorf("write csv: %w", err)
		}
	}
	return cw.Flush()
}

// headerIndex maps lowercase column names to their position.
type headerIndex map[string]int

func (h headerIndex) get(row []string, col string) string {
	if i, ok := h[col]; ok && i < len(row) {
		return row[i]
	}
	return ""
}

// ReadCSV reads a CSV artifact written by WriteCSV. Columns are located by
// header name; missing romanization columns are left empty.
func ReadCSV(r io.Reader) ([]Record, error) {
	in, _ := WrapInput(r)
	reader := csv.NewReader(in)
	reader.FieldsPerRecord = -1

	header, err := reader.Read()
	if err != nil {
		if errors.Is(err, io.EOF) {
			return nil, nil
		}
		return nil, fmt.Errorf("read csv header: %w", err)
	}
	idx := make(headerIndex, len(header))
	for i, col := range header {
		idx[strings.ToLower(strings.TrimSpace(col))] = i
	}
	for _, required := range []string{"level1", "category", "name"} {
		if _, ok := idx[required]; !ok {
			return nil, fmt.Errorf("missing required column %q", required)
		}
	}

	var records []Record
	for {
		row, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("read csv: %w", err)
		}

		rec := Record{
			Category: Category(idx.get(row, "category")),
			Name:     idx.get(row, "name"),
			Latin: translit.Names{
				A: idx.get(row, translit.StandardA.Column()),
				B: idx.get(row, translit.StandardB.Column()),
				K: idx.get(row, translit.StandardK.Column()),
			},
		}
		for i := 1; i <= MaxLevels; i++ {
			if code := idx.get(row, "level"+strconv.Itoa(i)); code != "" {
				rec.Codes = append(rec.Codes, code)
			}
		}
		if err := rec.Validate(); err != nil {
			line, _ := reader.FieldPos(0)
			return nil, fmt.Errorf("line %d: %w", line, err)
		}
		records = append(records, rec)
	}
	return records, nil
}
