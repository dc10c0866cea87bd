package yaml

import (
	"testing"

	"github.com/pbanos/id3/feature"
	"github.com/stretchr/testify/require"
)

func TestReadFeaturesKeepsDeclarationOrder(t *testing.T) {
	md := []byte(`
features:
  outlook: [sunny, overcast, rainy]
  temperature: continuous
  humidity: numeric
  windy: ["true", "false"]
  play: ["yes", "no"]
`)
	features, class, err := ReadFeatures(md)
	require.NoError(t, err)
	require.Len(t, features, 4)
	names := []string{}
	for i, f := range features {
		require.Equal(t, i, f.Ordinal())
		names = append(names, f.Name())
	}
	require.Equal(t, []string{"outlook", "temperature", "humidity", "windy"}, names)
	require.IsType(t, &feature.NominalFeature{}, features[0])
	require.IsType(t, &feature.ContinuousFeature{}, features[1])
	require.Equal(t, []string{"sunny", "overcast", "rainy"}, features[0].(*feature.NominalFeature).AvailableValues())
	require.Equal(t, "play", class.Name())
	require.Equal(t, []string{"yes", "no"}, class.Labels())
}

func TestReadFeaturesWithExplicitClass(t *testing.T) {
	md := []byte(`
class: sick
features:
  sick: [negative, positive]
  age: continuous
`)
	features, class, err := ReadFeatures(md)
	require.NoError(t, err)
	require.Len(t, features, 1)
	require.Equal(t, 0, features[0].Ordinal())
	require.Equal(t, "sick", class.Name())
}

func TestReadFeaturesErrors(t *testing.T) {
	for name, md := range map[string]string{
		"no features":        "class: x\n",
		"continuous class":   "features:\n  a: [x, y]\n  b: continuous\n",
		"unknown class":      "class: z\nfeatures:\n  a: [x, y]\n",
		"invalid type":       "features:\n  a: 3\n  b: [x, y]\n",
		"invalid continuous": "features:\n  a: discrete\n  b: [x, y]\n",
	} {
		_, _, err := ReadFeatures([]byte(md))
		require.Error(t, err, name)
	}
}
