package register

import (
	"context"
	"runtime"

	"golang.org/x/sync/errgroup"

	"github.com/JonMunkholm/toponyms/internal/translit"
)

// contextCheckInterval is how often (in records) a worker checks for
// cancellation.
const contextCheckInterval = 100

// minChunk keeps small inputs from being split across many goroutines.
const minChunk = 256

// Converter fills in the romanized names of records.
type Converter struct {
	registry *translit.Registry
	workers  int
}

// NewConverter returns a converter using reg. workers <= 0 means GOMAXPROCS.
func NewConverter(reg *translit.Registry, workers int) *Converter {
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}
	return &Converter{registry: reg, workers: workers}
}

// Convert sets rec.Latin from rec.Name.
func (c *Converter) Convert(rec *Record) {
	rec.Latin = c.registry.All(rec.Name)
}

// ConvertAll converts recs in place, splitting the slice across workers.
// Transducers are pure, so workers share the registry without locking.
func (c *Converter) ConvertAll(ctx context.Context, recs []Record) error {
	if len(recs) == 0 {
		return ctx.Err()
	}

	chunk := (len(recs) + c.workers - 1) / c.workers
	if chunk < minChunk {
		chunk = minChunk
	}

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(c.workers)

	for start := 0; start < len(recs); start += chunk {
		part := recs[start:min(start+chunk, len(recs))]
		g.Go(func() error {
			for i := range part {
				if i%contextCheckInterval == 0 {
					if err := ctx.Err(); err != nil {
						return err
					}
				}
				c.Convert(&part[i])
			}
			return nil
		})
	}

	return g.Wait()
}
