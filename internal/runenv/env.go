// Package runenv holds the provider functions a run is assembled from.
package runenv

import (
	"sift/internal/geom"
	"sift/internal/search"
)

// DistanceProvideFn resolves a user supplied algorithm name to a distance
// function.
type DistanceProvideFn func(algo string) (geom.DistanceFn, error)

// SearchProvideFn constructs a feature search engine.
type SearchProvideFn func(distFn geom.DistanceFn, opts ...search.Option) (*search.Engine, error)

type Option func(*Env) *Env

func New(opts ...Option) *Env {
	env := &Env{}
	for _, f := range opts {
		env = f(env)
	}
	return env
}

type Env struct {
	distance     DistanceProvideFn
	searchEngine SearchProvideFn
}

func (e *Env) ProvideDistance() DistanceProvideFn {
	return e.distance
}

func (e *Env) ProvideSearchEngine() SearchProvideFn {
	return e.searchEngine
}

func WithDistance(fn DistanceProvideFn) Option {
	return func(e *Env) *Env {
		e.distance = fn
		return e
	}
}

func WithSearchEngine(fn SearchProvideFn) Option {
	return func(e *Env) *Env {
		e.searchEngine = fn
		return e
	}
}
