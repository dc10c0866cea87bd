package feature

import (
	"strconv"
	"strings"

	"github.com/pkg/errors"
)

/*
Feature represents a property that can be observed on an instance.

Its Name method returns the name of the feature, and its Ordinal method the
position of the feature's value in an instance row (0-based).

Its Valid method takes the string encoding of a value and returns an error
describing why it cannot be a value for the feature, or nil.
*/
type Feature interface {
	Name() string
	Ordinal() int
	Valid(string) error
}

/*
NominalFeature represents a property that can be observed and that can only
take a value among a finite, ordered set.
*/
type NominalFeature struct {
	ordinal         int
	name            string
	availableValues []string
}

/*
ContinuousFeature represents a property that can be observed and that can take
a numeric value
*/
type ContinuousFeature struct {
	ordinal int
	name    string
}

/*
ClassFeature represents the feature a tree predicts: a name and the ordered
labels it may take. Label order is significant, the first label is the
"first class" that wins ties when computing majorities.
*/
type ClassFeature struct {
	name   string
	labels []string
}

/*
NewNominalFeature takes an ordinal, a name string and a slice of available
value strings and returns a nominal feature with them.
*/
func NewNominalFeature(ordinal int, name string, availableValues []string) *NominalFeature {
	return &NominalFeature{ordinal, name, availableValues}
}

/*
NewContinuousFeature takes an ordinal and a name string and returns a
continuous feature with them.
*/
func NewContinuousFeature(ordinal int, name string) *ContinuousFeature {
	return &ContinuousFeature{ordinal, name}
}

/*
NewClassFeature takes a name and the ordered labels of the class and returns
a class feature for them.
*/
func NewClassFeature(name string, labels []string) *ClassFeature {
	return &ClassFeature{name, labels}
}

/*
Name returns a string with the name of the feature
*/
func (nf *NominalFeature) Name() string {
	return nf.name
}

// Ordinal returns the position of the feature in instance rows.
func (nf *NominalFeature) Ordinal() int {
	return nf.ordinal
}

/*
Valid receives a value and returns nil when it is included (ignoring case) in
the available values of the feature. Otherwise it returns an error describing
the reason.
*/
func (nf *NominalFeature) Valid(value string) error {
	if nf.IndexOf(value) < 0 {
		return errors.Errorf("nominal feature %s got unknown value %s", nf.name, value)
	}
	return nil
}

/*
AvailableValues returns a string slice with the values available for the
feature, in declaration order.
*/
func (nf *NominalFeature) AvailableValues() []string {
	return nf.availableValues
}

/*
IndexOf returns the position among the available values of the one that
case-insensitively equals the given value, or -1 if there is none.
*/
func (nf *NominalFeature) IndexOf(value string) int {
	for i, av := range nf.availableValues {
		if strings.EqualFold(av, value) {
			return i
		}
	}
	return -1
}

func (nf *NominalFeature) String() string {
	return nf.name
}

/*
Name returns a string with the name of the feature
*/
func (cf *ContinuousFeature) Name() string {
	return cf.name
}

// Ordinal returns the position of the feature in instance rows.
func (cf *ContinuousFeature) Ordinal() int {
	return cf.ordinal
}

/*
Valid receives a value and returns nil when it can be parsed as a float64,
otherwise an error describing the reason.
*/
func (cf *ContinuousFeature) Valid(value string) error {
	_, err := ParseFloat(value)
	if err != nil {
		return errors.Wrapf(err, "continuous feature %s", cf.name)
	}
	return nil
}

func (cf *ContinuousFeature) String() string {
	return cf.name
}

// Name returns the name of the class feature.
func (c *ClassFeature) Name() string {
	return c.name
}

// Labels returns the ordered labels of the class.
func (c *ClassFeature) Labels() []string {
	return c.labels
}

/*
IndexOf returns the position of the label that case-insensitively equals the
given value, or -1 if there is none.
*/
func (c *ClassFeature) IndexOf(label string) int {
	for i, l := range c.labels {
		if strings.EqualFold(l, label) {
			return i
		}
	}
	return -1
}

func (c *ClassFeature) String() string {
	return c.name
}

// ParseFloat parses the string encoding of a continuous value.
func ParseFloat(value string) (float64, error) {
	f, err := strconv.ParseFloat(strings.TrimSpace(value), 64)
	if err != nil {
		return 0.0, errors.Errorf("cannot parse %q as a number", value)
	}
	return f, nil
}
