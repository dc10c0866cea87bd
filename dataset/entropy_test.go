package dataset

import (
	"math"
	"testing"

	"github.com/pbanos/id3/feature"
	"github.com/stretchr/testify/require"
)

var (
	yesNo = feature.NewClassFeature("class", []string{"yes", "no"})
	color = feature.NewNominalFeature(0, "color", []string{"red", "blue", "green"})
	size  = feature.NewContinuousFeature(1, "size")
)

func instances(rows ...string) []Instance {
	result := []Instance{}
	for i := 0; i+2 < len(rows); i += 3 {
		result = append(result, Instance{rows[i], rows[i+1], rows[i+2]})
	}
	return result
}

func TestEntropyZeroGuards(t *testing.T) {
	for total := 0; total < 10; total++ {
		require.Equal(t, 0.0, Entropy(0, total))
	}
	for count := 0; count < 10; count++ {
		require.Equal(t, 0.0, Entropy(count, 0))
	}
	require.Equal(t, -0.5, Entropy(1, 2))
	require.Equal(t, 0.0, Entropy(3, 3))
}

func TestOverallEntropyPureSetIsZero(t *testing.T) {
	for n := 1; n < 6; n++ {
		var is []Instance
		for i := 0; i < n; i++ {
			is = append(is, Instance{"red", "1", "No"})
		}
		require.Equal(t, 0.0, OverallEntropy(yesNo, is))
	}
	require.Equal(t, 0.0, OverallEntropy(yesNo, nil))
}

func TestOverallEntropyEvenSplitIsOne(t *testing.T) {
	for n := 1; n < 6; n++ {
		var is []Instance
		for i := 0; i < n; i++ {
			is = append(is, Instance{"red", "1", "yes"}, Instance{"blue", "2", "NO"})
		}
		require.Equal(t, 1.0, OverallEntropy(yesNo, is))
	}
}

func TestOverallEntropy(t *testing.T) {
	is := instances(
		"red", "1", "yes",
		"red", "2", "yes",
		"red", "3", "yes",
		"blue", "4", "no",
	)
	expected := -(0.75*math.Log2(0.75) + 0.25*math.Log2(0.25))
	require.InDelta(t, expected, OverallEntropy(yesNo, is), 1e-12)
}

func TestNominalEntropy(t *testing.T) {
	is := instances(
		"red", "1", "yes",
		"RED", "2", "no",
		"blue", "3", "no",
		"blue", "4", "no",
	)
	// red is 50/50 (1 bit) and holds half the instances, blue is pure, green is empty
	require.InDelta(t, 0.5, NominalEntropy(color, yesNo, is), 1e-12)
	require.Equal(t, 0.0, NominalEntropy(color, yesNo, nil))

	pure := instances(
		"red", "1", "yes",
		"blue", "2", "no",
	)
	require.Equal(t, 0.0, NominalEntropy(color, yesNo, pure))
}

func TestContinuousEntropy(t *testing.T) {
	is := instances(
		"red", "1.0", "no",
		"red", "2.0", "no",
		"red", "3.0", "yes",
		"red", "4.0", "yes",
	)
	e, err := ContinuousEntropy(size, 2.5, yesNo, is)
	require.NoError(t, err)
	require.Equal(t, 0.0, e)

	e, err = ContinuousEntropy(size, 1.5, yesNo, is)
	require.NoError(t, err)
	// 1/4 pure, 3/4 with proportions 1/3 and 2/3
	expected := -0.75 * (1.0/3.0*math.Log2(1.0/3.0) + 2.0/3.0*math.Log2(2.0/3.0))
	require.InDelta(t, expected, e, 1e-12)

	e, err = ContinuousEntropy(size, 10, yesNo, is)
	require.NoError(t, err)
	require.InDelta(t, 1.0, e, 1e-12)

	_, err = ContinuousEntropy(size, 1, yesNo, instances("red", "big", "no"))
	require.Error(t, err)
	require.IsType(t, &DataFormatError{}, err)
}

func TestNominalAndContinuousEntropyAgree(t *testing.T) {
	binary := feature.NewNominalFeature(0, "small", []string{"t", "f"})
	is := instances(
		"t", "1", "yes",
		"t", "1", "no",
		"t", "1", "yes",
		"f", "5", "no",
		"f", "5", "no",
		"f", "5", "yes",
		"f", "5", "no",
	)
	ce, err := ContinuousEntropy(size, 3, yesNo, is)
	require.NoError(t, err)
	require.InDelta(t, NominalEntropy(binary, yesNo, is), ce, 1e-12)
}

func TestInformationGain(t *testing.T) {
	require.Equal(t, 0.75, InformationGain(1.0, 0.25))
	require.True(t, InformationGain(0.5, 0.75) < 0)
}

func TestMajorityLabel(t *testing.T) {
	l, ok := MajorityLabel(yesNo, instances("red", "1", "no", "red", "1", "yes", "red", "1", "NO"))
	require.True(t, ok)
	require.Equal(t, "no", l)

	l, ok = MajorityLabel(yesNo, instances("red", "1", "no", "red", "1", "yes"))
	require.True(t, ok)
	require.Equal(t, "yes", l)

	_, ok = MajorityLabel(yesNo, nil)
	require.False(t, ok)

	_, ok = MajorityLabel(yesNo, instances("red", "1", "maybe"))
	require.False(t, ok)

	abc := feature.NewClassFeature("class", []string{"a", "b", "c"})
	l, ok = MajorityLabel(abc, instances("red", "1", "c", "red", "1", "b", "red", "1", "c", "red", "1", "b"))
	require.True(t, ok)
	require.Equal(t, "b", l)
}
