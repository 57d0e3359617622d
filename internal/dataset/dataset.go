// Package dataset holds the labeled numeric records the engines operate on.
// The store owns all feature data; splits and classification work on
// borrowed views into it and never duplicate feature vectors.
package dataset

import "sift/internal/geom"

// Record is a single labeled datapoint. Immutable once collected.
type Record struct {
	Vec   geom.Point
	Label string
}

// View is an ordered borrowed view into a record store.
type View []*Record

func NewView(records []Record) View {
	v := make(View, len(records))
	for i := range records {
		v[i] = &records[i]
	}
	return v
}

func (v View) Len() int {
	return len(v)
}

func (v View) Vec(i int) []float64 {
	return v[i].Vec.Points()
}

func (v View) Label(i int) string {
	return v[i].Label
}
