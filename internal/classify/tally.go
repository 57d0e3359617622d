package classify

// Tally counts label occurrences among the nearest neighbors of one
// classification call. Labels are remembered in first-insertion order so
// that tie-breaks among equally frequent labels stay deterministic.
type Tally struct {
	counts map[string]int
	order  []string
}

func NewTally() *Tally {
	return &Tally{counts: make(map[string]int)}
}

func (t *Tally) Reset() {
	for label := range t.counts {
		delete(t.counts, label)
	}
	t.order = t.order[:0]
}

func (t *Tally) Add(label string) {
	if _, ok := t.counts[label]; !ok {
		t.order = append(t.order, label)
	}
	t.counts[label]++
}

func (t *Tally) Count(label string) int {
	return t.counts[label]
}

func (t *Tally) Len() int {
	return len(t.order)
}

// Labels returns the tallied labels in first-insertion order.
func (t *Tally) Labels() []string {
	return t.order
}

// Max returns the first label reaching the maximum count in insertion
// order. The third result is false when the tally is empty.
func (t *Tally) Max() (string, int, bool) {
	var (
		maxLabel string
		maxCount int
		found    bool
	)
	for _, label := range t.order {
		if count := t.counts[label]; count > maxCount {
			maxLabel, maxCount, found = label, count, true
		}
	}
	return maxLabel, maxCount, found
}
