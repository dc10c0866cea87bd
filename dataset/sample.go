package dataset

import (
	"fmt"
	"strings"

	"github.com/pbanos/id3/feature"
	"github.com/pkg/errors"
)

/*
Instance represents an item to classify or from which to learn how to classify
them: the string encoded values for every feature in ordinal order followed by
the class label.

Instances are never modified once built, subsets share them.
*/
type Instance []string

/*
ValueFor returns the value of the instance corresponding to the feature
passed as parameter, making Instance a feature.Sample.
*/
func (i Instance) ValueFor(f feature.Feature) (string, error) {
	o := f.Ordinal()
	if o < 0 || o >= len(i)-1 {
		return "", errors.Errorf("instance has no value for feature %s at position %d", f.Name(), o)
	}
	return i[o], nil
}

// Label returns the class label of the instance, its trailing field.
func (i Instance) Label() string {
	if len(i) == 0 {
		return ""
	}
	return i[len(i)-1]
}

func (i Instance) String() string {
	return fmt.Sprintf("[%s]", strings.Join(i, ","))
}
