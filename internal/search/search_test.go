package search

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"sift/internal/dataset"
	"sift/internal/geom"
	"sift/internal/krange"
	"sift/internal/logging"
)

func testCtx() context.Context {
	return logging.WithLogger(context.Background(), zap.NewNop().Sugar())
}

// two features per record: the first separates the labels perfectly, the
// second carries no signal
func separable() []dataset.Record {
	points := []struct {
		x     float64
		label string
	}{
		{-1, "a"}, {1, "b"},
		{-2, "a"}, {2, "b"},
		{-3, "a"}, {3, "b"},
		{-4, "a"}, {4, "b"},
	}
	records := make([]dataset.Record, len(points))
	for i, p := range points {
		records[i] = dataset.Record{Vec: geom.New([]float64{p.x, 0}), Label: p.label}
	}
	return records
}

func mustRange(t *testing.T, given string) krange.Range {
	t.Helper()
	kr, err := krange.Parse(given)
	require.NoError(t, err)
	return kr
}

func TestSearch_PicksDiscriminativeColumn(t *testing.T) {
	t.Parallel()
	engine, err := New(geom.EuclideanDistance, WithTestFraction(0.5))
	require.NoError(t, err)

	// source CSV indices of the two features
	columns := []int{2, 5}
	results, err := engine.Search(testCtx(), separable(), columns, mustRange(t, "1"))
	require.NoError(t, err)

	// one step per column for the single k value
	require.Len(t, results, 2)
	assert.Equal(t, Result{K: 1, Percent: 100, Columns: []int{2}}, results[0])
	assert.Equal(t, Result{K: 1, Percent: 100, Columns: []int{2, 5}}, results[1])
}

func TestSearch_MonotonicProgress(t *testing.T) {
	t.Parallel()
	engine, err := New(geom.EuclideanDistance, WithTestFraction(0.5))
	require.NoError(t, err)

	columns := []int{0, 1}
	results, err := engine.Search(testCtx(), separable(), columns, mustRange(t, "1-2"))
	require.NoError(t, err)

	// len(columns) steps per k value, k ascending then step ascending
	require.Len(t, results, 4)
	expectK := []int{1, 1, 2, 2}
	for i, result := range results {
		assert.Equal(t, expectK[i], result.K)
		assert.Len(t, result.Columns, i%2+1)
		seen := make(map[int]bool)
		for _, col := range result.Columns {
			assert.False(t, seen[col], "selected columns must be distinct")
			seen[col] = true
		}
	}
	// each step extends the previous selection within the same k
	assert.Equal(t, results[0].Columns[0], results[1].Columns[0])
	assert.Equal(t, results[2].Columns[0], results[3].Columns[0])
}

func TestSearch_TieKeepsEarlierColumn(t *testing.T) {
	t.Parallel()
	// both features are constant, every trial scores identically
	records := make([]dataset.Record, 8)
	for i := range records {
		label := "a"
		if i%2 == 1 {
			label = "b"
		}
		records[i] = dataset.Record{Vec: geom.New([]float64{0, 0}), Label: label}
	}

	engine, err := New(geom.EuclideanDistance, WithTestFraction(0.5))
	require.NoError(t, err)

	columns := []int{9, 4}
	results, err := engine.Search(testCtx(), records, columns, mustRange(t, "1"))
	require.NoError(t, err)
	require.Len(t, results, 2)
	assert.Equal(t, []int{9}, results[0].Columns)
	assert.Equal(t, []int{9, 4}, results[1].Columns)
}

func TestSearch_Observer(t *testing.T) {
	t.Parallel()
	var steps []Step
	engine, err := New(geom.EuclideanDistance,
		WithTestFraction(0.5),
		WithObserver(func(s Step) { steps = append(steps, s) }),
	)
	require.NoError(t, err)

	_, err = engine.Search(testCtx(), separable(), []int{0, 1}, mustRange(t, "1"))
	require.NoError(t, err)

	// step one trials both columns, step two trials the remaining one
	require.Len(t, steps, 3)
	assert.Equal(t, 0, steps[0].Trial)
	assert.Equal(t, 1, steps[1].Trial)
	assert.Empty(t, steps[0].Selected)
	assert.Equal(t, []int{0}, steps[2].Selected)
	assert.Equal(t, 1, steps[2].Trial)
	for _, s := range steps {
		assert.Equal(t, 4, s.Passed+s.Failed+s.Unknown)
	}
}

func TestSearch_NoColumns(t *testing.T) {
	t.Parallel()
	engine, err := New(geom.EuclideanDistance)
	require.NoError(t, err)

	_, err = engine.Search(testCtx(), separable(), nil, mustRange(t, "1"))
	assert.ErrorIs(t, err, ErrNoColumns)
}

func TestSearch_EmptyTrain(t *testing.T) {
	t.Parallel()
	engine, err := New(geom.EuclideanDistance, WithTestFraction(1))
	require.NoError(t, err)

	// everything held out, the k sweep over an empty train yields nothing
	results, err := engine.Search(testCtx(), separable(), []int{0}, mustRange(t, "1-5"))
	require.NoError(t, err)
	assert.Empty(t, results)
}

func TestNew_Validation(t *testing.T) {
	t.Parallel()
	if _, err := New(nil); err == nil {
		t.Errorf("a nil distance function must be rejected")
	}
	if _, err := New(geom.EuclideanDistance, WithTestFraction(1.5)); err == nil {
		t.Errorf("a test fraction outside [0, 1] must be rejected")
	}
}

func TestTop(t *testing.T) {
	t.Parallel()
	results := []Result{
		{K: 1, Percent: 50, Columns: []int{0}},
		{K: 1, Percent: 75, Columns: []int{0, 1}},
		{K: 2, Percent: 75, Columns: []int{0}},
		{K: 2, Percent: 100, Columns: []int{0, 1}},
	}
	top := Top(results, 2)
	require.Len(t, top, 2)
	assert.Equal(t, 100.0, top[0].Percent)
	// ties rank in production order
	assert.Equal(t, Result{K: 1, Percent: 75, Columns: []int{0, 1}}, top[1])

	assert.Nil(t, Top(results, 0))
	assert.Len(t, Top(results, 10), 4)
}
