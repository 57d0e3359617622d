// Package search implements greedy forward feature selection: at each step
// every not-yet-selected column is evaluated as an addition to the current
// selection, scored by classification accuracy on the held-out test split,
// and the best scoring column is committed. The outer loop sweeps the k
// range.
package search

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"sift/internal/classify"
	"sift/internal/dataset"
	"sift/internal/geom"
	"sift/internal/krange"
	"sift/internal/logging"
)

var ErrNoColumns = fmt.Errorf("no feature columns specified")

// Result is one committed selection step: the k it was evaluated under, the
// accuracy of the winning trial in percent and the selected column indices
// so far, in selection order.
type Result struct {
	K       int
	Percent float64
	Columns []int
}

// Step describes a single column trial, reported to the observer as the
// search progresses.
type Step struct {
	K        int
	Selected []int
	Trial    int
	Passed   int
	Failed   int
	Unknown  int
	Accuracy float64
}

type Option func(*Engine)

// WithTestFraction sets the fraction of each label group held out for
// scoring. Defaults to 0.25.
func WithTestFraction(f float64) Option {
	return func(e *Engine) {
		e.opts.testFraction = f
	}
}

// WithObserver registers a callback invoked after every column trial.
func WithObserver(fn func(Step)) Option {
	return func(e *Engine) {
		e.opts.observer = fn
	}
}

type options struct {
	testFraction float64
	observer     func(Step)
}

type Engine struct {
	opts   options
	distFn geom.DistanceFn
}

func New(distFn geom.DistanceFn, opts ...Option) (*Engine, error) {
	if distFn == nil {
		return nil, fmt.Errorf("distance function is required")
	}
	e := &Engine{distFn: distFn, opts: options{testFraction: 0.25}}
	for _, opt := range opts {
		opt(e)
	}
	if e.opts.testFraction < 0 || e.opts.testFraction > 1 {
		return nil, fmt.Errorf("test fraction must be within [0, 1], got %v", e.opts.testFraction)
	}
	return e, nil
}

// Search runs the greedy selection over the given columns for every k the
// range yields against the train split. Results are appended in the order
// steps complete: k ascending, then selection step ascending. columns holds
// the source CSV indices of the record features, in feature order.
func (e *Engine) Search(ctx context.Context, records []dataset.Record, columns []int, kr krange.Range) ([]Result, error) {
	logger := logging.FromContext(ctx)

	if len(columns) == 0 {
		return nil, ErrNoColumns
	}

	train, test := dataset.Split(records, e.opts.testFraction)

	runID := uuid.New().String()
	logger.Infow("starting feature search",
		"run_id", runID,
		"train_size", train.Len(),
		"test_size", test.Len(),
		"columns", len(columns),
	)

	classifier := classify.New(e.distFn)
	tally := classify.NewTally()
	pool := &projected{view: train}
	var query []float64

	var results []Result
	for _, k := range kr.Values(train.Len()) {
		// positions index into the record feature vectors; columns maps
		// them back to source CSV indices for reporting
		selected := make([]int, 0, len(columns))
		avail := make([]int, len(columns))
		for i := range avail {
			avail[i] = i
		}

		for len(avail) > 0 {
			bestIdx := -1
			var bestAcc float64

			for i, pos := range avail {
				var passed, failed, unknown int
				pool.project(selected, pos)

				for _, rec := range test {
					query = gather(query, rec.Vec, selected, pos)
					if _, err := classifier.Classify(k, pool, query, tally); err != nil {
						return nil, fmt.Errorf("run %s: classify trial column %d: %w", runID, columns[pos], err)
					}
					label, _, ok := tally.Max()
					switch {
					case !ok:
						unknown++
					case label == rec.Label:
						passed++
					default:
						failed++
					}
				}

				var accuracy float64
				if test.Len() > 0 {
					accuracy = float64(passed) / float64(test.Len())
				}
				if e.opts.observer != nil {
					e.opts.observer(Step{
						K:        k,
						Selected: sourceColumns(columns, selected),
						Trial:    columns[pos],
						Passed:   passed,
						Failed:   failed,
						Unknown:  unknown,
						Accuracy: accuracy,
					})
				}
				// strict comparison, the earlier candidate wins ties
				if bestIdx < 0 || accuracy > bestAcc {
					bestIdx, bestAcc = i, accuracy
				}
			}

			selected = append(selected, avail[bestIdx])
			avail = append(avail[:bestIdx], avail[bestIdx+1:]...)
			results = append(results, Result{
				K:       k,
				Percent: bestAcc * 100,
				Columns: sourceColumns(columns, selected),
			})
		}
	}

	logger.Infow("feature search complete", "run_id", runID, "results", len(results))
	return results, nil
}

// projected exposes a train view narrowed to the trial feature set. The
// projection buffer is reused across records, the classifier reads each
// vector before requesting the next.
type projected struct {
	view      dataset.View
	positions []int
	trial     int
	buf       []float64
}

func (p *projected) project(positions []int, trial int) {
	p.positions = positions
	p.trial = trial
}

func (p *projected) Len() int {
	return p.view.Len()
}

func (p *projected) Vec(i int) []float64 {
	vec := p.view.Vec(i)
	p.buf = p.buf[:0]
	for _, pos := range p.positions {
		p.buf = append(p.buf, vec[pos])
	}
	p.buf = append(p.buf, vec[p.trial])
	return p.buf
}

func (p *projected) Label(i int) string {
	return p.view.Label(i)
}

// gather builds the trial query vector: the values at the selected
// positions, in selection order, plus the trial position.
func gather(buf []float64, vec geom.Point, selected []int, trial int) []float64 {
	buf = buf[:0]
	for _, pos := range selected {
		buf = append(buf, vec.Dim(pos))
	}
	return append(buf, vec.Dim(trial))
}

func sourceColumns(columns, positions []int) []int {
	out := make([]int, len(positions))
	for i, pos := range positions {
		out[i] = columns[pos]
	}
	return out
}
