package store

import (
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"

	"github.com/JonMunkholm/toponyms/internal/register"
	"github.com/JonMunkholm/toponyms/internal/translit"
)

var copyColumns = []string{
	"level1", "level2", "level3", "level4", "level5",
	"category", "name", "name_dstua", "name_dstub", "name_kmu", "import_id",
}

// copySource streams records to COPY without materializing all rows.
func copySource(recs []register.Record, importID uuid.UUID) pgx.CopyFromSource {
	return pgx.CopyFromSlice(len(recs), func(i int) ([]any, error) {
		return recordValues(recs[i], importID), nil
	})
}

// recordValues lays a record out in copyColumns order. Missing levels are NULL.
func recordValues(rec register.Record, importID uuid.UUID) []any {
	vals := make([]any, 0, len(copyColumns))
	vals = append(vals, rec.Level(1))
	for n := 2; n <= register.MaxLevels; n++ {
		vals = append(vals, toPgText(rec.Level(n)))
	}
	return append(vals,
		string(rec.Category),
		rec.Name,
		rec.Latin.A,
		rec.Latin.B,
		rec.Latin.K,
		importID,
	)
}

func toPgText(s string) pgtype.Text {
	if s == "" {
		return pgtype.Text{Valid: false}
	}
	return pgtype.Text{String: s, Valid: true}
}

func scanRecord(row pgx.CollectableRow) (register.Record, error) {
	var (
		level1   string
		levels   [register.MaxLevels - 1]pgtype.Text
		category string
		rec      register.Record
	)

	if err := row.Scan(
		&level1, &levels[0], &levels[1], &levels[2], &levels[3],
		&category, &rec.Name, &rec.Latin.A, &rec.Latin.B, &rec.Latin.K,
	); err != nil {
		return register.Record{}, err
	}

	return buildRecord(level1, levels[:], category, rec.Name, rec.Latin)
}

// buildRecord assembles a record from stored columns. Codes stop at the
// first NULL level.
func buildRecord(level1 string, levels []pgtype.Text, category, name string, latin translit.Names) (register.Record, error) {
	codes := []string{level1}
	for _, l := range levels {
		if !l.Valid {
			break
		}
		codes = append(codes, l.String)
	}

	cat, err := register.ParseCategory(category)
	if err != nil {
		return register.Record{}, fmt.Errorf("row %s: %w", codes[len(codes)-1], err)
	}

	return register.Record{Codes: codes, Category: cat, Name: name, Latin: latin}, nil
}
