package register

import (
	"context"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func sampleRegister() []Record {
	return []Record{
		{Codes: []string{codeOblast, codeRaion, codeHromada, codeVillage}, Category: CategoryVillage, Name: "Агрономічне"},
		{Codes: []string{codeKyiv}, Category: CategorySpecialCity, Name: "Київ"},
		{Codes: []string{codeOblast, codeRaion}, Category: CategoryRaion, Name: "Вінницький"},
		{Codes: []string{codeOblast}, Category: CategoryOblast, Name: "Вінницька"},
		{Codes: []string{codeOblast, codeRaion, codeHromada}, Category: CategoryHromada, Name: "Агрономічна"},
	}
}

func TestSortByCodes(t *testing.T) {
	recs := sampleRegister()
	SortByCodes(recs)

	var got []string
	for _, r := range recs {
		got = append(got, r.Name)
	}
	want := []string{"Вінницька", "Вінницький", "Агрономічна", "Агрономічне", "Київ"}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("SortByCodes() order mismatch (-want +got):\n%s", diff)
	}
}

func TestCollator_SortByName(t *testing.T) {
	names := []string{"Яготин", "Іршава", "Ґалаґани", "Житомир", "Гадяч"}
	recs := make([]Record, len(names))
	for i, n := range names {
		recs[i] = Record{Name: n}
	}

	NewCollator().SortByName(recs)

	var got []string
	for _, r := range recs {
		got = append(got, r.Name)
	}
	want := []string{"Гадяч", "Ґалаґани", "Житомир", "Іршава", "Яготин"}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("SortByName() order mismatch (-want +got):\n%s", diff)
	}
}

func TestCollator_Compare(t *testing.T) {
	c := NewCollator()
	if c.Compare("Іршава", "Яготин") >= 0 {
		t.Error("Іршава should sort before Яготин")
	}
	if c.Compare("Київ", "Київ") != 0 {
		t.Error("equal names should compare equal")
	}
}

func TestUnique(t *testing.T) {
	recs := []Record{{Name: "Миколаївка", Codes: []string{"1"}}, {Name: "Іванівка"}, {Name: "Миколаївка", Codes: []string{"2"}}}
	got := Unique(recs)
	if len(got) != 2 || got[0].Codes[0] != "1" || got[1].Name != "Іванівка" {
		t.Errorf("Unique() = %+v", got)
	}
}

func TestFilter(t *testing.T) {
	recs := sampleRegister()
	if got := Filter(recs); len(got) != len(recs) {
		t.Errorf("Filter() without categories returned %d records, want %d", len(got), len(recs))
	}
	got := Filter(recs, CategoryOblast, CategorySpecialCity)
	if len(got) != 2 {
		t.Fatalf("Filter(O, K) returned %d records, want 2", len(got))
	}
	for _, r := range got {
		if r.Category != CategoryOblast && r.Category != CategorySpecialCity {
			t.Errorf("unexpected category %q", r.Category)
		}
	}
}

func TestIndex(t *testing.T) {
	recs := sampleRegister()
	ix := NewIndex(recs)

	village := recs[0]
	if got := ix.Oblast(village); got != "Вінницька" {
		t.Errorf("Oblast() = %q, want %q", got, "Вінницька")
	}
	if got := ix.Raion(village); got != "Вінницький" {
		t.Errorf("Raion() = %q, want %q", got, "Вінницький")
	}
	if got := ix.Raion(recs[1]); got != "" {
		t.Errorf("Raion(Kyiv) = %q, want empty", got)
	}
}

func TestSet_Records(t *testing.T) {
	s := NewSet(sampleRegister())
	if s.Len() != 5 {
		t.Fatalf("Len() = %d, want 5", s.Len())
	}

	got, err := s.Records(context.Background(), CategoryRaion)
	if err != nil {
		t.Fatalf("Records() error = %v", err)
	}
	if len(got) != 1 || got[0].Name != "Вінницький" {
		t.Errorf("Records(P) = %+v", got)
	}

	all, _ := s.Records(context.Background())
	if all[0].Name != "Вінницька" {
		t.Errorf("Records() not ordered by codes: first = %q", all[0].Name)
	}

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if _, err := s.Records(ctx); err == nil {
		t.Error("Records() with cancelled context expected error")
	}
}
