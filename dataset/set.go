package dataset

import (
	"fmt"
	"strings"

	"github.com/pbanos/id3/feature"
)

/*
Dataset represents a read-only collection of instances together with the
features describing them and the class feature they are labelled with.

Subsets obtained through SubsetWith share features, class and the instances
themselves with the dataset they come from.
*/
type Dataset struct {
	features  []feature.Feature
	class     *feature.ClassFeature
	instances []Instance
}

/*
New takes a slice of features, a class feature and a slice of instances and
returns a dataset built with them, or an error if the class does not have
exactly two labels or any of the instances is malformed (see Validate).
*/
func New(features []feature.Feature, class *feature.ClassFeature, instances []Instance) (*Dataset, error) {
	if class == nil {
		return nil, &DataFormatError{Reason: "no class feature defined"}
	}
	if len(class.Labels()) != 2 {
		return nil, &DataFormatError{Feature: class.Name(), Reason: fmt.Sprintf("class must have exactly 2 labels, got %d", len(class.Labels()))}
	}
	for i, f := range features {
		if f.Ordinal() != i {
			return nil, &DataFormatError{Feature: f.Name(), Reason: fmt.Sprintf("feature declared at position %d has ordinal %d", i, f.Ordinal())}
		}
	}
	for i, instance := range instances {
		if err := Validate(features, instance, i+1); err != nil {
			return nil, err
		}
	}
	return &Dataset{features, class, instances}, nil
}

/*
Validate takes a slice of features, an instance and its 1-based row number in
its source and returns a *DataFormatError if the instance does not have one
field per feature plus the class label, or if any of its continuous fields
cannot be parsed as a number. Nominal values are not checked against the
feature domains.
*/
func Validate(features []feature.Feature, instance Instance, row int) error {
	if len(instance) != len(features)+1 {
		return &DataFormatError{Row: row, Value: strings.Join(instance, ","), Reason: fmt.Sprintf("expected %d fields, got %d", len(features)+1, len(instance))}
	}
	for _, f := range features {
		cf, ok := f.(*feature.ContinuousFeature)
		if !ok {
			continue
		}
		v := instance[cf.Ordinal()]
		if err := cf.Valid(v); err != nil {
			return &DataFormatError{Row: row, Feature: cf.Name(), Value: v, Reason: "not a number"}
		}
	}
	return nil
}

// Features returns the features of the dataset in ordinal order.
func (d *Dataset) Features() []feature.Feature {
	return d.features
}

// Class returns the class feature of the dataset.
func (d *Dataset) Class() *feature.ClassFeature {
	return d.class
}

// Instances returns the instances in the dataset.
func (d *Dataset) Instances() []Instance {
	return d.instances
}

// Count returns the number of instances in the dataset.
func (d *Dataset) Count() int {
	return len(d.instances)
}

/*
SubsetWith takes a feature.Criterion and returns a dataset that only
contains the instances that satisfy it, in the same order, or an error if
the criterion cannot be evaluated on some instance.
*/
func (d *Dataset) SubsetWith(c feature.Criterion) (*Dataset, error) {
	instances := []Instance{}
	for _, instance := range d.instances {
		ok, err := c.SatisfiedBy(instance)
		if err != nil {
			return nil, err
		}
		if ok {
			instances = append(instances, instance)
		}
	}
	return &Dataset{d.features, d.class, instances}, nil
}

/*
ClassCounts returns the number of instances for every class label, in label
order. Labels are compared ignoring case and instances with a label outside
the class are not counted.
*/
func (d *Dataset) ClassCounts() []int {
	return ClassCounts(d.class, d.instances)
}

/*
MajorityLabel returns the most frequent class label among the instances of
the dataset and true, or an empty string and false if there is none. See
MajorityLabel.
*/
func (d *Dataset) MajorityLabel() (string, bool) {
	return MajorityLabel(d.class, d.instances)
}

/*
ContinuousValues returns the numeric values the instances of the dataset have
for the given feature, in instance order, or an error if any cannot be parsed.
*/
func (d *Dataset) ContinuousValues(f *feature.ContinuousFeature) ([]float64, error) {
	values := make([]float64, 0, len(d.instances))
	for i, instance := range d.instances {
		v, err := instance.ValueFor(f)
		if err != nil {
			return nil, err
		}
		fv, err := feature.ParseFloat(v)
		if err != nil {
			return nil, &DataFormatError{Row: i + 1, Feature: f.Name(), Value: v, Reason: "not a number"}
		}
		values = append(values, fv)
	}
	return values, nil
}

/*
ClassCounts takes a class feature and a slice of instances and returns the
number of instances for every class label, in label order.
*/
func ClassCounts(class *feature.ClassFeature, instances []Instance) []int {
	counts := make([]int, len(class.Labels()))
	for _, instance := range instances {
		if i := class.IndexOf(instance.Label()); i >= 0 {
			counts[i]++
		}
	}
	return counts
}

/*
MajorityLabel takes a class feature and a slice of instances and returns the
label with the highest count among them and true. The first label (in class
order) reaching the strict maximum wins ties. When no label has a count above
0, which includes an empty slice of instances, it returns an empty string and
false.
*/
func MajorityLabel(class *feature.ClassFeature, instances []Instance) (string, bool) {
	var label string
	var max int
	for i, c := range ClassCounts(class, instances) {
		if c > max {
			max = c
			label = class.Labels()[i]
		}
	}
	return label, max > 0
}
