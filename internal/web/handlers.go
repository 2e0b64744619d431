package web

import (
	"net/http"
	"slices"
	"strconv"
	"strings"

	"github.com/JonMunkholm/toponyms/internal/logging"
	"github.com/JonMunkholm/toponyms/internal/register"
	"github.com/JonMunkholm/toponyms/internal/translit"
)

type standardJSON struct {
	Letter string `json:"letter"`
	Tag    string `json:"tag"`
	Column string `json:"column"`
	Title  string `json:"title"`
}

// handleStandards lists the supported romanization systems.
func (s *Server) handleStandards(w http.ResponseWriter, r *http.Request) {
	out := make([]standardJSON, 0, len(translit.Standards()))
	for _, std := range translit.Standards() {
		out = append(out, standardJSON{
			Letter: std.String(),
			Tag:    std.Tag(),
			Column: std.Column(),
			Title:  std.Title(),
		})
	}
	writeJSON(w, r, out)
}

type transliterationJSON struct {
	Text     string          `json:"text"`
	Standard string          `json:"standard,omitempty"`
	Latin    string          `json:"latin,omitempty"`
	All      *translit.Names `json:"all,omitempty"`
}

// handleTransliterate romanizes ?text= under ?standard=, or under all
// standards when none is given.
func (s *Server) handleTransliterate(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	if !q.Has("text") {
		respondError(w, r, errMissingText)
		return
	}
	text := register.NormalizeName(q.Get("text"))

	resp := transliterationJSON{Text: text}
	if v := q.Get("standard"); v != "" {
		std, err := translit.ParseStandard(v)
		if err != nil {
			respondError(w, r, badStandard(err))
			return
		}
		resp.Standard = std.Tag()
		resp.Latin = s.registry.Transliterate(std, text)
	} else {
		all := s.registry.All(text)
		resp.All = &all
	}

	logging.FromContext(r.Context()).Debug("transliterate", "text", text, "standard", resp.Standard)
	writeJSON(w, r, resp)
}

type toponymJSON struct {
	Code          string         `json:"code"`
	Codes         []string       `json:"codes"`
	Category      string         `json:"category"`
	CategoryLabel string         `json:"category_label"`
	Name          string         `json:"name"`
	Latin         translit.Names `json:"latin"`
	Oblast        string         `json:"oblast,omitempty"`
	Raion         string         `json:"raion,omitempty"`
}

type toponymsJSON struct {
	Count    int           `json:"count"`
	Toponyms []toponymJSON `json:"toponyms"`
}

// handleToponyms returns records of ?category= sorted by Ukrainian
// collation. Categories may repeat or be combined (?category=KM), and their
// union is sorted as one list. ?unique=1 keeps one record per name.
func (s *Server) handleToponyms(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	cats, err := parseCategories(q["category"])
	if err != nil {
		respondError(w, r, badCategory(err))
		return
	}
	unique, _ := strconv.ParseBool(q.Get("unique"))

	all, err := s.source.Records(r.Context())
	if err != nil {
		respondError(w, r, sourceFailed(err))
		return
	}
	ix := register.NewIndex(all)

	recs := register.Filter(all, cats...)
	s.collator.SortByName(recs)
	if unique {
		recs = register.Unique(recs)
	}

	out := toponymsJSON{Count: len(recs), Toponyms: make([]toponymJSON, 0, len(recs))}
	for _, rec := range recs {
		out.Toponyms = append(out.Toponyms, toponymJSON{
			Code:          rec.Code(),
			Codes:         rec.Codes,
			Category:      string(rec.Category),
			CategoryLabel: rec.Category.Label(),
			Name:          rec.Name,
			Latin:         rec.Latin,
			Oblast:        ix.Oblast(rec),
			Raion:         ix.Raion(rec),
		})
	}
	writeJSON(w, r, out)
}

// parseCategories reads every category letter from values. A value may hold
// several letters.
func parseCategories(values []string) ([]register.Category, error) {
	var cats []register.Category
	for _, v := range values {
		for _, letter := range strings.TrimSpace(v) {
			cat, err := register.ParseCategory(string(letter))
			if err != nil {
				return nil, err
			}
			if !slices.Contains(cats, cat) {
				cats = append(cats, cat)
			}
		}
	}
	return cats, nil
}

// handleExport streams the CSV artifact.
func (s *Server) handleExport(w http.ResponseWriter, r *http.Request) {
	recs, err := s.source.Records(r.Context())
	if err != nil {
		respondError(w, r, sourceFailed(err))
		return
	}

	w.Header().Set("Content-Type", "text/csv; charset=utf-8")
	w.Header().Set("Content-Disposition", `attachment; filename="katottg.csv"`)

	cw := register.NewCSVWriter(w)
	for _, rec := range recs {
		if err := cw.Write(rec); err != nil {
			logging.FromContext(r.Context()).Error("export write failed", "error", err)
			return
		}
	}
	if err := cw.Flush(); err != nil {
		logging.FromContext(r.Context()).Error("export flush failed", "error", err)
	}
}

// handleHealth reports whether the record source is reachable.
func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	if p, ok := s.source.(Pinger); ok {
		if err := p.Ping(r.Context()); err != nil {
			respondError(w, r, sourceFailed(err))
			return
		}
	}
	writeJSON(w, r, map[string]string{"status": "ok"})
}
