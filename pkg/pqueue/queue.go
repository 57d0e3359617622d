// Package pqueue provides a small capacity-bounded priority queue with a
// deterministic ordering: items with equal priority keep their insertion
// order.
package pqueue

import "sort"

type Option func(*Queue)

func WithOrderAsc() Option {
	return func(q *Queue) {
		q.order = orderAsc
	}
}

func WithOrderDesc() Option {
	return func(q *Queue) {
		q.order = orderDesc
	}
}

// WithCap keeps only the best n items; everything beyond the capacity is
// discarded on push.
func WithCap(size uint) Option {
	return func(q *Queue) {
		q.cap = int(size)
	}
}

type order uint8

const (
	orderAsc order = iota
	orderDesc
)

type item struct {
	value interface{}
	prior float64
}

func New(opts ...Option) *Queue {
	q := &Queue{order: orderAsc, cap: -1}
	for _, opt := range opts {
		opt(q)
	}
	return q
}

type Queue struct {
	order order
	cap   int
	items []item
}

func (q *Queue) Push(val interface{}, priority float64) {
	q.items = append(q.items, item{value: val, prior: priority})
	sort.Stable(byPriority{items: q.items, order: q.order})
	if q.cap >= 0 && q.cap < len(q.items) {
		q.items = q.items[:q.cap]
	}
}

// PopAll drains the queue in priority order.
func (q *Queue) PopAll() []interface{} {
	pulled := make([]interface{}, len(q.items))
	for i := range q.items {
		pulled[i] = q.items[i].value
	}
	q.items = q.items[:0]
	return pulled
}

// Head removes and returns the best item, or nil when empty.
func (q *Queue) Head() interface{} {
	if len(q.items) == 0 {
		return nil
	}
	x := q.items[0]
	q.items = q.items[1:]
	return x.value
}

func (q *Queue) Seek(idx int) (interface{}, float64) {
	it := q.items[idx]
	return it.value, it.prior
}

func (q *Queue) Cap() int { return q.cap }

func (q *Queue) Len() int { return len(q.items) }

type byPriority struct {
	items []item
	order order
}

func (b byPriority) Len() int { return len(b.items) }

func (b byPriority) Swap(i, j int) { b.items[i], b.items[j] = b.items[j], b.items[i] }

func (b byPriority) Less(i, j int) bool {
	if b.order == orderAsc {
		return b.items[i].prior < b.items[j].prior
	}
	return b.items[i].prior > b.items[j].prior
}
