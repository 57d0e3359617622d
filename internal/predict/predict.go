// Package predict classifies a single novel datapoint against a record
// store, swept over a k range, and reports the per-k label distribution.
package predict

import (
	"fmt"

	"sift/internal/classify"
	"sift/internal/dataset"
	"sift/internal/geom"
	"sift/internal/krange"
)

// LabelShare is one label's neighbor count and its share of the effective k.
type LabelShare struct {
	Label string
	Count int
	Share float64
}

// Result is the label distribution for one evaluated k value.
type Result struct {
	K          int
	EffectiveK int
	Shares     []LabelShare
}

// Predict classifies query against the records for every k the range yields.
// Shares are reported in label first-insertion order, count over effective k.
// An empty record store yields no results.
func Predict(records dataset.View, distFn geom.DistanceFn, kr krange.Range, query []float64) ([]Result, error) {
	classifier := classify.New(distFn)
	tally := classify.NewTally()

	var results []Result
	for _, k := range kr.Values(records.Len()) {
		effective, err := classifier.Classify(k, records, query, tally)
		if err != nil {
			return nil, fmt.Errorf("classify with k %d: %w", k, err)
		}

		result := Result{K: k, EffectiveK: effective}
		for _, label := range tally.Labels() {
			count := tally.Count(label)
			var share float64
			if effective > 0 {
				share = float64(count) / float64(effective)
			}
			result.Shares = append(result.Shares, LabelShare{Label: label, Count: count, Share: share})
		}
		results = append(results, result)
	}
	return results, nil
}
