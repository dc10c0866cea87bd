package json

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/pbanos/id3"
	"github.com/pbanos/id3/dataset"
	"github.com/pbanos/id3/feature"
	"github.com/pbanos/id3/tree"
	"github.com/stretchr/testify/require"
)

var (
	outlook  = feature.NewNominalFeature(0, "outlook", []string{"sunny", "overcast", "rainy"})
	humidity = feature.NewContinuousFeature(1, "humidity")
	features = []feature.Feature{outlook, humidity}
	play     = feature.NewClassFeature("play", []string{"yes", "no"})
)

func grownTree(t *testing.T) *tree.Tree {
	d, err := dataset.New(features, play, []dataset.Instance{
		{"sunny", "85", "no"},
		{"sunny", "90", "no"},
		{"sunny", "70", "yes"},
		{"sunny", "65", "yes"},
		{"overcast", "78", "yes"},
		{"overcast", "90", "yes"},
		{"rainy", "80", "no"},
		{"rainy", "96", "yes"},
		{"rainy", "70", "no"},
	})
	require.NoError(t, err)
	tr, err := id3.Grow(context.Background(), d, nil, tree.NewMemoryNodeStore(), nil)
	require.NoError(t, err)
	return tr
}

func TestWriteReadJSONTree(t *testing.T) {
	ctx := context.Background()
	original := grownTree(t)
	ned := NewNodeEncodeDecoder(features)

	var buf bytes.Buffer
	require.NoError(t, WriteJSONTree(ctx, original, ned, &buf))

	read := tree.New("", tree.NewMemoryNodeStore(), nil)
	require.NoError(t, ReadJSONTree(ctx, read, ned, play, &buf))
	require.Equal(t, original.RootID, read.RootID)
	require.Equal(t, play, read.Class)
	require.Equal(t, original.String(), read.String())

	for _, instance := range []dataset.Instance{
		{"sunny", "60", "?"},
		{"sunny", "95", "?"},
		{"overcast", "60", "?"},
		{"rainy", "99", "?"},
		{"rainy", "75", "?"},
	} {
		expected, expectedErr := original.Classify(ctx, instance)
		label, err := read.Classify(ctx, instance)
		require.Equal(t, expectedErr, err)
		require.Equal(t, expected, label)
	}
}

func TestNodeEncodeDecoder(t *testing.T) {
	ned := NewNodeEncodeDecoder(features)
	for _, n := range []*tree.Node{
		{ID: "1", SubtreeIDs: []string{"2", "3", "4"}, SubtreeFeature: outlook, ClassCounts: []int{5, 4}},
		{ID: "2", ParentID: "1", Level: 1, FeatureCriterion: feature.NewNominalCriterion(outlook, "sunny"), SubtreeFeature: humidity, Threshold: 77.5, SubtreeIDs: []string{"5", "6"}, ClassCounts: []int{2, 2}},
		{ID: "5", ParentID: "2", Level: 2, FeatureCriterion: feature.NewContinuousCriterion(humidity, 77.5, false), ClassCounts: []int{2, 0}, Label: "yes"},
		{ID: "6", ParentID: "2", Level: 2, FeatureCriterion: feature.NewContinuousCriterion(humidity, 77.5, true), ClassCounts: []int{0, 2}, Label: "no"},
		{ID: "4", ParentID: "1", Level: 1, FeatureCriterion: feature.NewNominalCriterion(outlook, "rainy"), ClassCounts: []int{0, 0}},
	} {
		data, err := ned.Encode(n)
		require.NoError(t, err)
		decoded, err := ned.Decode(data)
		require.NoError(t, err)
		require.Equal(t, n, decoded)
	}
}

func TestDecodeErrors(t *testing.T) {
	ned := NewNodeEncodeDecoder(features)
	for _, data := range []string{
		`{"id":"1","f":"temperature"}`,
		`{"id":"1","c":{"type":"nominal","f":"temperature","v":"hot"}}`,
		`{"id":"1","c":{"type":"nominal","f":"humidity","v":"high"}}`,
		`{"id":"1","c":{"type":"continuous","f":"outlook","t":1}}`,
		`{"id":"1","c":{"type":"range","f":"humidity"}}`,
		`{"id":`,
	} {
		_, err := ned.Decode([]byte(data))
		require.Error(t, err, data)
	}
}

func TestReadJSONTreeErrors(t *testing.T) {
	ctx := context.Background()
	ned := NewNodeEncodeDecoder(features)
	for _, data := range []string{
		`{"rootID":"1","class":"weather","labels":["yes","no"],"nodes":[]}`,
		`{"rootID":"1","class":"play","labels":["no","yes"],"nodes":[]}`,
		`{"rootID":"1","class":"play","labels":["yes"],"nodes":[]}`,
		`{"rootID":"","class":"play","labels":["yes","no"],"nodes":[]}`,
		`{"rootID":"1","class":"play","labels":["yes","no"],"nodes":[null]}`,
		`{"rootID":"1","class":"play","labels":["yes","no"],"nodes":[{"id":"1","f":"wind"}]}`,
		`not json`,
	} {
		tr := tree.New("", tree.NewMemoryNodeStore(), nil)
		require.Error(t, ReadJSONTree(ctx, tr, ned, play, strings.NewReader(data)), data)
	}
}
