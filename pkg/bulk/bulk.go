package bulk

import (
	"bufio"
	"context"
	"errors"
	"io"
	"runtime"
	"strings"

	"golang.org/x/sync/errgroup"

	"github.com/dmitrymomot/ukpostcode/pkg/postcode"
)

// Item is the outcome for one candidate.
type Item struct {
	Line   int    `json:"line,omitempty" yaml:"line,omitempty"`
	Error  string `json:"error,omitempty" yaml:"error,omitempty"`
	postcode.Result `yaml:",inline"`
}

// Summary counts outcomes.
type Summary struct {
	Total   int `json:"total" yaml:"total"`
	Valid   int `json:"valid" yaml:"valid"`
	Invalid int `json:"invalid" yaml:"invalid"`
}

// Candidate is one input value with its source line (0 when unknown).
// Value may be of any type; only strings can be valid.
type Candidate struct {
	Line  int
	Value any
}

// Check validates codes using up to workers goroutines. Non-positive workers
// default to GOMAXPROCS. Results keep input order. It stops early and
// returns ctx.Err() if the context is cancelled.
func Check(ctx context.Context, v *postcode.Validator, codes []Candidate, workers int) ([]Item, error) {
	if v == nil {
		return nil, ErrNilValidator
	}
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}

	items := make([]Item, len(codes))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)

	for i, c := range codes {
		if gctx.Err() != nil {
			break
		}
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			res := v.Check(c.Value)
			items[i] = Item{Line: c.Line, Error: res.Reason(), Result: res}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return items, nil
}

// Strings wraps plain codes as candidates without line numbers.
func Strings(codes ...string) []Candidate {
	out := make([]Candidate, len(codes))
	for i, c := range codes {
		out[i] = Candidate{Value: c}
	}
	return out
}

// ReadLines reads one candidate per line. Leading and trailing spaces and a
// trailing carriage return are trimmed; other whitespace is kept, so a
// line reads exactly as the same code passed to postcode.IsValid. Empty
// lines and lines starting with # are skipped.
func ReadLines(r io.Reader) ([]Candidate, error) {
	var out []Candidate
	sc := bufio.NewScanner(r)
	line := 0
	for sc.Scan() {
		line++
		text := strings.Trim(sc.Text(), " \r")
		if text == "" || strings.HasPrefix(text, "#") {
			continue
		}
		out = append(out, Candidate{Line: line, Value: text})
	}
	if err := sc.Err(); err != nil {
		return nil, errors.Join(ErrReadInput, err)
	}
	return out, nil
}

// Summarize counts valid and invalid items.
func Summarize(items []Item) Summary {
	s := Summary{Total: len(items)}
	for _, it := range items {
		if it.Valid {
			s.Valid++
		} else {
			s.Invalid++
		}
	}
	return s
}
