package search

import "sift/pkg/pqueue"

// Top ranks results by accuracy and returns the best n. Ties keep the order
// in which the steps completed, so repeated runs rank identically.
func Top(results []Result, n int) []Result {
	if n <= 0 || len(results) == 0 {
		return nil
	}
	q := pqueue.New(pqueue.WithOrderDesc(), pqueue.WithCap(uint(n)))
	for i := range results {
		q.Push(results[i], results[i].Percent)
	}
	drained := q.PopAll()
	ranked := make([]Result, len(drained))
	for i := range drained {
		ranked[i] = drained[i].(Result)
	}
	return ranked
}
