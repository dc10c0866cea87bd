package feature

import (
	"fmt"
	"strings"
)

/*
Criterion represents a constraint on a feature, the predicate of a branch in a
tree.

Its SatisfiedBy method takes a sample and returns a boolean indicating if
the sample satisfies the criterion.

Its Feature method returns the feature on which the criterion is applied.
*/
type Criterion interface {
	Feature() Feature
	SatisfiedBy(sample Sample) (bool, error)
}

/*
Sample is an interface for something that can satisfy a Criterion.

Its ValueFor method returns the string encoded value corresponding to the
feature passed as parameter.
*/
type Sample interface {
	ValueFor(Feature) (string, error)
}

/*
ContinuousCriterion represents a constraint on a continuous feature: its value
being below or equal to a threshold, or above it.

Its Threshold method returns the threshold and its Above method whether
satisfying values must be strictly greater than it.
*/
type ContinuousCriterion interface {
	Criterion
	Threshold() float64
	Above() bool
}

/*
NominalCriterion represents a constraint on a nominal feature, a
value it must take.

Its Value method returns the value to which the feature is constrained as
a string.
*/
type NominalCriterion interface {
	Criterion
	Value() string
}

type continuousCriterion struct {
	feature   *ContinuousFeature
	threshold float64
	above     bool
}

type nominalCriterion struct {
	feature *NominalFeature
	value   string
}

/*
NewContinuousCriterion takes a ContinuousFeature, a threshold and a boolean and
returns a ContinuousCriterion satisfied by values greater than the threshold
if above is true, or by values lower than or equal to it otherwise.
*/
func NewContinuousCriterion(feature *ContinuousFeature, threshold float64, above bool) ContinuousCriterion {
	return &continuousCriterion{feature, threshold, above}
}

/*
NewNominalCriterion takes a NominalFeature and one of its values and returns a
NominalCriterion satisfied by samples whose value for the feature equals the
given one, ignoring case.
*/
func NewNominalCriterion(feature *NominalFeature, value string) NominalCriterion {
	return &nominalCriterion{feature, value}
}

/*
Feature returns the feature to which the constraint applies.
*/
func (cc *continuousCriterion) Feature() Feature {
	return cc.feature
}

/*
SatisfiedBy receives a sample as parameter and returns a boolean indicating if
the sample satisfies the criterion. An error is returned if the sample value
cannot be obtained or parsed as a float64.
*/
func (cc *continuousCriterion) SatisfiedBy(sample Sample) (bool, error) {
	val, err := sample.ValueFor(cc.feature)
	if err != nil {
		return false, err
	}
	floatVal, err := ParseFloat(val)
	if err != nil {
		return false, err
	}
	if cc.above {
		return floatVal > cc.threshold, nil
	}
	return floatVal <= cc.threshold, nil
}

func (cc *continuousCriterion) Threshold() float64 {
	return cc.threshold
}

func (cc *continuousCriterion) Above() bool {
	return cc.above
}

func (cc *continuousCriterion) String() string {
	if cc.above {
		return fmt.Sprintf("%s > %f", cc.feature.Name(), cc.threshold)
	}
	return fmt.Sprintf("%s <= %f", cc.feature.Name(), cc.threshold)
}

/*
Feature returns the feature to which the constraint applies.
*/
func (nc *nominalCriterion) Feature() Feature {
	return nc.feature
}

/*
SatisfiedBy receives a sample as parameter and returns a boolean indicating if
the sample's value for the feature equals the criterion's value ignoring case.
*/
func (nc *nominalCriterion) SatisfiedBy(sample Sample) (bool, error) {
	val, err := sample.ValueFor(nc.feature)
	if err != nil {
		return false, err
	}
	return strings.EqualFold(nc.value, val), nil
}

func (nc *nominalCriterion) Value() string {
	return nc.value
}

func (nc *nominalCriterion) String() string {
	return fmt.Sprintf("%s = %s", nc.feature.Name(), nc.value)
}
