/*
Package inputsample provides an implementation of feature.Sample whose values
are read from an io.Reader as they are needed.
*/
package inputsample

import (
	"bufio"
	"io"

	"github.com/pbanos/id3/feature"
	"github.com/pkg/errors"
)

/*
FeatureValueRequester represents a way to ask
for feature values and reject the given values.
*/
type FeatureValueRequester interface {
	RequestValueFor(feature.Feature) error
	RejectValueFor(feature.Feature, string) error
}

type readSample struct {
	obtainedValues        map[string]string
	scanner               *bufio.Scanner
	featureValueRequester FeatureValueRequester
}

/*
New takes an io.Reader and a FeatureValueRequester and returns a
feature.Sample whose ValueFor method reads feature values first requesting
them with the given FeatureValueRequester and then parsing them from the
reader. Values are only requested once per feature.

The parsing expects each value to be presented ending with the '\n'
character, that is in new lines.

For a feature.ContinuousFeature, lines will be read from the reader until a
line containing a valid number is found.

For a feature.NominalFeature, lines will be read from the reader until a line
with one of the feature's available values (ignoring case) is found.

For both kinds of feature.Feature, non accepted values will be rejected with
the FeatureValueRequester's RejectValueFor method.
*/
func New(r io.Reader, featureValueRequester FeatureValueRequester) feature.Sample {
	return &readSample{make(map[string]string), bufio.NewScanner(r), featureValueRequester}
}

func (rs *readSample) ValueFor(f feature.Feature) (string, error) {
	value, ok := rs.obtainedValues[f.Name()]
	if ok {
		return value, nil
	}
	err := rs.featureValueRequester.RequestValueFor(f)
	if err != nil {
		return "", err
	}
	for rs.scanner.Scan() {
		line := rs.scanner.Text()
		if f.Valid(line) == nil {
			rs.obtainedValues[f.Name()] = line
			return line, nil
		}
		err = rs.featureValueRequester.RejectValueFor(f, line)
		if err != nil {
			return "", err
		}
	}
	err = rs.scanner.Err()
	if err != nil {
		return "", errors.Wrapf(err, "reading value for %s", f.Name())
	}
	return "", errors.Errorf("EOF when requesting value for %s", f.Name())
}
