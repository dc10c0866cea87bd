package arff

import (
	"io/ioutil"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/pbanos/id3/dataset"
	"github.com/pbanos/id3/feature"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/require"
)

const weather = `% The weather dataset
@relation weather

@attribute outlook {sunny, overcast, rainy}
@ATTRIBUTE temperature real
@attribute 'relative humidity' numeric
@attribute windy {TRUE, FALSE}
@attribute play {yes, no}

@data
sunny,85,85,FALSE,no
% comment between rows
overcast, 83, 86, FALSE, yes
'rainy',70,96,"FALSE",yes
`

func TestRead(t *testing.T) {
	d, err := Read(strings.NewReader(weather))
	require.NoError(t, err)

	features := d.Features()
	require.Len(t, features, 4)
	outlook, ok := features[0].(*feature.NominalFeature)
	require.True(t, ok)
	require.Equal(t, []string{"sunny", "overcast", "rainy"}, outlook.AvailableValues())
	require.IsType(t, &feature.ContinuousFeature{}, features[1])
	require.Equal(t, "relative humidity", features[2].Name())
	require.Equal(t, 2, features[2].Ordinal())
	require.Equal(t, "windy", features[3].Name())

	require.Equal(t, "play", d.Class().Name())
	require.Equal(t, []string{"yes", "no"}, d.Class().Labels())

	require.Equal(t, []dataset.Instance{
		{"sunny", "85", "85", "FALSE", "no"},
		{"overcast", "83", "86", "FALSE", "yes"},
		{"rainy", "70", "96", "FALSE", "yes"},
	}, d.Instances())
}

func TestReadEmptyData(t *testing.T) {
	d, err := Read(strings.NewReader("@relation r\n@attribute a numeric\n@attribute c {p, n}\n@data\n"))
	require.NoError(t, err)
	require.Equal(t, 0, d.Count())
}

func TestReadErrors(t *testing.T) {
	for _, tc := range []struct {
		document string
		row      int
	}{
		{"@relation r\n@attribute a numeric\n@attribute c {p, n}\n", 0},
		{"@relation r\n@data\n", 2},
		{"@relation r\n@attribute a string\n@attribute c {p, n}\n@data\n", 2},
		{"@relation r\n@attribute a {x, y\n@attribute c {p, n}\n@data\n", 2},
		{"@relation r\n@attribute a numeric\n@attribute a numeric\n@attribute c {p, n}\n@data\n", 3},
		{"@relation r\n@attribute a numeric\n@attribute c numeric\n@data\n", 3},
		{"@relation r\n@attribute a numeric\n@attribute c {p, n, u}\n@data\n", 3},
		{"@relation r\n@attribute a numeric\n@attribute c {p, n}\n@data\n1,p\n2\n", 6},
		{"@relation r\n@attribute a numeric\n@attribute c {p, n}\n@data\n1,p\nhigh,n\n", 6},
		{"@relation r\n@attribute a numeric\n@attribute c {p, n}\n@data\n{0 1, 1 p}\n", 5},
		{"@relation r\n@attribute a numeric\n@attribute c {p, n}\n@data\n'1,p\n", 5},
		{"@relation r\n@attributes a numeric\n", 2},
	} {
		_, err := Read(strings.NewReader(tc.document))
		var dfe *dataset.DataFormatError
		require.True(t, errors.As(err, &dfe), "%q: %v", tc.document, err)
		require.Equal(t, tc.row, dfe.Row, tc.document)
	}
}

func TestReadFile(t *testing.T) {
	dir, err := ioutil.TempDir("", "arff")
	require.NoError(t, err)
	defer os.RemoveAll(dir)
	path := filepath.Join(dir, "weather.arff")
	require.NoError(t, ioutil.WriteFile(path, []byte(weather), 0644))

	d, err := ReadFile(path)
	require.NoError(t, err)
	require.Equal(t, 3, d.Count())

	_, err = ReadFile(filepath.Join(dir, "missing.arff"))
	require.Error(t, err)
}

func TestSplitValues(t *testing.T) {
	for _, tc := range []struct {
		s        string
		expected []string
	}{
		{"a,b,c", []string{"a", "b", "c"}},
		{" a , 'b c' ,\"d,e\"", []string{"a", "b c", "d,e"}},
		{"a,,b", []string{"a", "", "b"}},
		{"", []string{}},
	} {
		values, err := splitValues(tc.s)
		require.NoError(t, err)
		require.Equal(t, tc.expected, values, tc.s)
	}
	_, err := splitValues("'a' b")
	require.Error(t, err)
}
