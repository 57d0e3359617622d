package predict

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"sift/internal/dataset"
	"sift/internal/geom"
	"sift/internal/krange"
)

func fixture() dataset.View {
	points := []struct {
		x, y  float64
		label string
	}{
		{1.0, 1.0, "a"},
		{2.0, 2.0, "b"},
		{1.5, 2.5, "a"},
		{1.0, 3.0, "b"},
		{2.0, 1.0, "a"},
		{1.0, 2.0, "b"},
		{3.0, 1.0, "a"},
		{2.5, 1.5, "b"},
	}
	records := make([]dataset.Record, len(points))
	for i, p := range points {
		records[i] = dataset.Record{Vec: geom.New([]float64{p.x, p.y}), Label: p.label}
	}
	return dataset.NewView(records)
}

func TestPredict_KSweep(t *testing.T) {
	t.Parallel()
	kr, err := krange.Parse("2-3")
	require.NoError(t, err)

	results, err := Predict(fixture(), geom.EuclideanDistance, kr, []float64{1.5, 1.0})
	require.NoError(t, err)
	require.Len(t, results, 2)

	assert.Equal(t, 2, results[0].K)
	assert.Equal(t, 2, results[0].EffectiveK)
	require.Len(t, results[0].Shares, 1)
	assert.Equal(t, LabelShare{Label: "a", Count: 2, Share: 1.0}, results[0].Shares[0])

	assert.Equal(t, 3, results[1].K)
	assert.Equal(t, 3, results[1].EffectiveK)
	require.Len(t, results[1].Shares, 2)
	assert.Equal(t, "a", results[1].Shares[0].Label)
	assert.Equal(t, 2, results[1].Shares[0].Count)
	assert.InDelta(t, 2.0/3.0, results[1].Shares[0].Share, 1e-12)
	assert.Equal(t, "b", results[1].Shares[1].Label)
	assert.Equal(t, 1, results[1].Shares[1].Count)
}

func TestPredict_ClampsToRecordCount(t *testing.T) {
	t.Parallel()
	kr, err := krange.Parse("7-20")
	require.NoError(t, err)

	results, err := Predict(fixture(), geom.EuclideanDistance, kr, []float64{1.5, 1.0})
	require.NoError(t, err)
	// total of 8 records clamps the sweep to k=7
	require.Len(t, results, 1)
	assert.Equal(t, 7, results[0].K)
	assert.Equal(t, 7, results[0].EffectiveK)
}

func TestPredict_EmptyStore(t *testing.T) {
	t.Parallel()
	kr, err := krange.Parse("3")
	require.NoError(t, err)

	results, err := Predict(dataset.View{}, geom.EuclideanDistance, kr, []float64{1.0, 1.0})
	require.NoError(t, err)
	assert.Empty(t, results)
}
