package id3

import (
	"testing"

	"github.com/pbanos/id3/dataset"
	"github.com/pbanos/id3/feature"
	"github.com/stretchr/testify/require"
)

func TestCandidateSplits(t *testing.T) {
	for _, tc := range []struct {
		values   []float64
		expected []float64
	}{
		{[]float64{1, 2, 3, 4}, []float64{1.5, 2.5, 3.5}},
		{[]float64{4, 1, 3, 2}, []float64{1.5, 2.5, 3.5}},
		{[]float64{3, 1, 1, 2, 3}, []float64{1.5, 2.5}},
		{[]float64{-1, 1}, []float64{0}},
		{[]float64{5, 5, 5}, []float64{}},
		{[]float64{5}, []float64{}},
		{nil, []float64{}},
	} {
		require.Equal(t, tc.expected, CandidateSplits(tc.values), "%v", tc.values)
	}
}

func TestCandidateSplitsCount(t *testing.T) {
	values := []float64{}
	for i := 0; i < 20; i++ {
		values = append(values, float64(i%7))
		require.Len(t, CandidateSplits(values), distinctCount(values)-1)
	}
}

func distinctCount(values []float64) int {
	seen := map[float64]bool{}
	for _, v := range values {
		seen[v] = true
	}
	return len(seen)
}

func continuousDataset(t *testing.T, values []string, labels []string) (*dataset.Dataset, *feature.ContinuousFeature) {
	x := feature.NewContinuousFeature(0, "x")
	class := feature.NewClassFeature("class", []string{"neg", "pos"})
	instances := []dataset.Instance{}
	for i, v := range values {
		instances = append(instances, dataset.Instance{v, labels[i]})
	}
	d, err := dataset.New([]feature.Feature{x}, class, instances)
	require.NoError(t, err)
	return d, x
}

func TestBestSplitAtLabelTransition(t *testing.T) {
	d, x := continuousDataset(t, []string{"1.0", "2.0", "3.0", "4.0"}, []string{"neg", "neg", "pos", "pos"})
	threshold, err := BestSplit(d, x)
	require.NoError(t, err)
	require.Equal(t, 2.5, threshold)
	e, err := d.ContinuousEntropy(x, threshold)
	require.NoError(t, err)
	require.Equal(t, 0.0, e)
}

func TestBestSplitIgnoresInstanceOrder(t *testing.T) {
	d, x := continuousDataset(t, []string{"4", "1", "3", "2", "1"}, []string{"pos", "neg", "pos", "neg", "neg"})
	threshold, err := BestSplit(d, x)
	require.NoError(t, err)
	require.Equal(t, 2.5, threshold)
}

func TestBestSplitTiesGoToLowestCandidate(t *testing.T) {
	d, x := continuousDataset(t, []string{"1", "2", "3"}, []string{"neg", "pos", "neg"})
	threshold, err := BestSplit(d, x)
	require.NoError(t, err)
	require.Equal(t, 1.5, threshold)
}

func TestBestSplitSingleValue(t *testing.T) {
	d, x := continuousDataset(t, []string{"7.25", "7.25"}, []string{"neg", "pos"})
	threshold, err := BestSplit(d, x)
	require.NoError(t, err)
	require.Equal(t, 7.25, threshold)
}

func TestBestSplitEmptyDataset(t *testing.T) {
	d, x := continuousDataset(t, nil, nil)
	threshold, err := BestSplit(d, x)
	require.NoError(t, err)
	require.Equal(t, 0.0, threshold)
}
