package register

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"go.uber.org/goleak"

	"github.com/JonMunkholm/toponyms/internal/translit"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

func TestConverter_Convert(t *testing.T) {
	c := NewConverter(translit.Default(), 1)
	rec := Record{Codes: []string{codeKyiv}, Category: CategorySpecialCity, Name: "Київ"}
	c.Convert(&rec)

	want := translit.Names{A: "Kyïv", B: "Kyjiv", K: "Kyiv"}
	if rec.Latin != want {
		t.Errorf("Convert() Latin = %+v, want %+v", rec.Latin, want)
	}
}

func TestConverter_ConvertAll(t *testing.T) {
	names := []string{"Київ", "Єнакієве", "Знам'янка", "Львів", "Запоріжжя", "Ужгород"}
	recs := make([]Record, 1000)
	for i := range recs {
		recs[i] = Record{
			Codes:    []string{fmt.Sprintf("UA%017d", i)},
			Category: CategoryVillage,
			Name:     names[i%len(names)],
		}
	}

	reg := translit.Default()
	c := NewConverter(reg, 4)
	if err := c.ConvertAll(context.Background(), recs); err != nil {
		t.Fatalf("ConvertAll() error = %v", err)
	}

	for i, rec := range recs {
		if want := reg.All(rec.Name); rec.Latin != want {
			t.Fatalf("record %d: Latin = %+v, want %+v", i, rec.Latin, want)
		}
	}
}

func TestConverter_ConvertAllCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	recs := []Record{{Name: "Київ"}, {Name: "Львів"}}
	err := NewConverter(translit.Default(), 2).ConvertAll(ctx, recs)
	if !errors.Is(err, context.Canceled) {
		t.Errorf("ConvertAll() error = %v, want context.Canceled", err)
	}

	if err := NewConverter(translit.Default(), 2).ConvertAll(ctx, nil); !errors.Is(err, context.Canceled) {
		t.Errorf("ConvertAll(nil) error = %v, want context.Canceled", err)
	}
}

func TestConverter_ConvertAllStopsBeforeWork(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	recs := make([]Record, 3*contextCheckInterval+1)
	for i := range recs {
		recs[i] = Record{Codes: []string{fmt.Sprintf("UA%017d", i)}, Category: CategoryVillage, Name: "Київ"}
	}
	if err := NewConverter(translit.Default(), 1).ConvertAll(ctx, recs); !errors.Is(err, context.Canceled) {
		t.Fatalf("ConvertAll() error = %v, want context.Canceled", err)
	}
	for i, rec := range recs {
		if rec.Latin != (translit.Names{}) {
			t.Fatalf("record %d converted after cancellation", i)
		}
	}
}

func TestNewConverter_DefaultWorkers(t *testing.T) {
	c := NewConverter(translit.Default(), 0)
	if c.workers <= 0 {
		t.Errorf("workers = %d, want > 0", c.workers)
	}
}
