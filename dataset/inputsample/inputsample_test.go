package inputsample

import (
	"strings"
	"testing"

	"github.com/pbanos/id3/feature"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/require"
)

type recordingRequester struct {
	requested []string
	rejected  []string
	fail      bool
}

func (rr *recordingRequester) RequestValueFor(f feature.Feature) error {
	rr.requested = append(rr.requested, f.Name())
	return nil
}

func (rr *recordingRequester) RejectValueFor(f feature.Feature, v string) error {
	rr.rejected = append(rr.rejected, v)
	if rr.fail {
		return errors.New("rejected")
	}
	return nil
}

var (
	outlook  = feature.NewNominalFeature(0, "outlook", []string{"sunny", "overcast", "rainy"})
	humidity = feature.NewContinuousFeature(1, "humidity")
)

func TestValueFor(t *testing.T) {
	rr := &recordingRequester{}
	s := New(strings.NewReader("high\n85.5\nfoggy\nSunny\n"), rr)

	v, err := s.ValueFor(humidity)
	require.NoError(t, err)
	require.Equal(t, "85.5", v)
	v, err = s.ValueFor(outlook)
	require.NoError(t, err)
	require.Equal(t, "Sunny", v)
	v, err = s.ValueFor(humidity)
	require.NoError(t, err)
	require.Equal(t, "85.5", v)

	require.Equal(t, []string{"humidity", "outlook"}, rr.requested)
	require.Equal(t, []string{"high", "foggy"}, rr.rejected)
}

func TestValueForErrors(t *testing.T) {
	_, err := New(strings.NewReader("foggy\n"), &recordingRequester{}).ValueFor(outlook)
	require.Error(t, err)

	_, err = New(strings.NewReader("foggy\nsunny\n"), &recordingRequester{fail: true}).ValueFor(outlook)
	require.Error(t, err)
}
