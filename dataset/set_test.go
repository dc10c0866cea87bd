package dataset

import (
	"testing"

	"github.com/pbanos/id3/feature"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/require"
)

func TestNewValidatesInstances(t *testing.T) {
	features := []feature.Feature{color, size}
	_, err := New(features, yesNo, []Instance{{"red", "1", "yes"}, {"blue", "2"}})
	var dfe *DataFormatError
	require.True(t, errors.As(err, &dfe))
	require.Equal(t, 2, dfe.Row)

	_, err = New(features, yesNo, []Instance{{"red", "tall", "yes"}})
	require.True(t, errors.As(err, &dfe))
	require.Equal(t, 1, dfe.Row)
	require.Equal(t, "size", dfe.Feature)
	require.Equal(t, "tall", dfe.Value)

	// unseen nominal values and labels are left for the tree to deal with
	d, err := New(features, yesNo, []Instance{{"purple", "1", "maybe"}})
	require.NoError(t, err)
	require.Equal(t, 1, d.Count())
}

func TestNewRequiresBinaryClass(t *testing.T) {
	_, err := New(nil, feature.NewClassFeature("c", []string{"a", "b", "c"}), nil)
	require.Error(t, err)
	_, err = New(nil, nil, nil)
	require.Error(t, err)
}

func TestNewRequiresOrdinalOrder(t *testing.T) {
	_, err := New([]feature.Feature{size, color}, yesNo, nil)
	require.Error(t, err)
}

func TestSubsetWithSharesInstances(t *testing.T) {
	d, err := New([]feature.Feature{color, size}, yesNo, []Instance{
		{"red", "1", "yes"},
		{"blue", "2", "no"},
		{"Red", "3", "no"},
	})
	require.NoError(t, err)
	red, err := d.SubsetWith(feature.NewNominalCriterion(color, "red"))
	require.NoError(t, err)
	require.Equal(t, 2, red.Count())
	require.Equal(t, []int{1, 1}, red.ClassCounts())
	require.Equal(t, &d.Instances()[2][0], &red.Instances()[1][0])

	small, err := d.SubsetWith(feature.NewContinuousCriterion(size, 1.5, false))
	require.NoError(t, err)
	require.Equal(t, []Instance{{"red", "1", "yes"}}, small.Instances())

	values, err := d.ContinuousValues(size)
	require.NoError(t, err)
	require.Equal(t, []float64{1, 2, 3}, values)
}

func TestInstanceValueFor(t *testing.T) {
	i := Instance{"red", "1", "yes"}
	v, err := i.ValueFor(size)
	require.NoError(t, err)
	require.Equal(t, "1", v)
	require.Equal(t, "yes", i.Label())
	_, err = i.ValueFor(feature.NewContinuousFeature(2, "class"))
	require.Error(t, err)
}
