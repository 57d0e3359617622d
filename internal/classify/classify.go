// Package classify implements the k-nearest-neighbors voting engine. Records
// are ranked by distance from the query under a total, stable ordering and
// the labels of the nearest k are tallied.
package classify

import (
	"fmt"
	"math"
	"sort"

	"sift/internal/geom"
)

// Source yields the labeled vectors to rank against a query. The vector
// returned by Vec is only read before the next call, so implementations may
// reuse a scratch buffer.
type Source interface {
	Len() int
	Vec(i int) []float64
	Label(i int) string
}

type scored struct {
	dist  float64
	label string
}

// Classifier ranks records by distance and tallies the nearest labels. The
// zero value is not usable; construct with New. A Classifier reuses its
// internal scratch buffer across calls and is not safe for concurrent use.
type Classifier struct {
	distFn  geom.DistanceFn
	scratch []scored
}

func New(distFn geom.DistanceFn) *Classifier {
	return &Classifier{distFn: distFn}
}

// Classify computes the distance from query to every record, ranks the
// records ascending by distance and tallies the labels of the nearest
// min(k, records.Len()) entries into tally. The tally is reset first.
//
// The ordering is total and stable: NaN distances sort after every number
// and equidistant records keep their input order, which keeps results
// reproducible when records are equidistant from the query.
func (c *Classifier) Classify(k int, records Source, query []float64, tally *Tally) (int, error) {
	tally.Reset()
	c.scratch = c.scratch[:0]

	for i := 0; i < records.Len(); i++ {
		vec := records.Vec(i)
		distance, err := c.distFn(query, vec)
		if err != nil {
			return 0, fmt.Errorf("unable to compute distance between %v and %v: %w", query, vec, err)
		}
		c.scratch = append(c.scratch, scored{dist: distance, label: records.Label(i)})
	}

	sort.SliceStable(c.scratch, func(i, j int) bool {
		return totalLess(c.scratch[i].dist, c.scratch[j].dist)
	})

	effective := k
	if n := len(c.scratch); n < effective {
		effective = n
	}
	for i := 0; i < effective; i++ {
		tally.Add(c.scratch[i].label)
	}
	return effective, nil
}

// Classify is a convenience wrapper that allocates a fresh classifier and
// tally for a single call.
func Classify(k int, records Source, distFn geom.DistanceFn, query []float64) (int, *Tally, error) {
	tally := NewTally()
	effective, err := New(distFn).Classify(k, records, query, tally)
	if err != nil {
		return 0, nil, err
	}
	return effective, tally, nil
}

// totalLess orders float64 values totally: NaN is greater than any number,
// two NaNs compare equal.
func totalLess(a, b float64) bool {
	if math.IsNaN(a) {
		return false
	}
	if math.IsNaN(b) {
		return true
	}
	return a < b
}
