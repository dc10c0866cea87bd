package id3

import (
	"github.com/pbanos/id3/dataset"
	"github.com/pbanos/id3/feature"
	"github.com/pkg/errors"
)

/*
Partition represents a partition of a dataset according to a feature
into subsets with an information gain to predict the class feature.
Criteria and Subsets are parallel: the i-th subset holds the instances
satisfying the i-th criterion.
*/
type Partition struct {
	Feature         feature.Feature
	Threshold       float64
	Criteria        []feature.Criterion
	Subsets         []*dataset.Dataset
	InformationGain float64
}

/*
NewNominalPartition takes a dataset and a nominal feature and returns the
partition of the dataset with a subset for every available value of the
feature, in the feature's order.
*/
func NewNominalPartition(d *dataset.Dataset, f *feature.NominalFeature) (*Partition, error) {
	p := &Partition{
		Feature:         f,
		InformationGain: dataset.InformationGain(d.Entropy(), d.NominalEntropy(f)),
	}
	for _, value := range f.AvailableValues() {
		err := p.add(d, feature.NewNominalCriterion(f, value))
		if err != nil {
			return nil, err
		}
	}
	return p, nil
}

/*
NewContinuousPartition takes a dataset and a continuous feature and returns
the partition of the dataset in 2 subsets, instances with a value lower than
or equal to the best split threshold for the feature (see BestSplit) and
instances with a greater value.
*/
func NewContinuousPartition(d *dataset.Dataset, f *feature.ContinuousFeature) (*Partition, error) {
	threshold, err := BestSplit(d, f)
	if err != nil {
		return nil, err
	}
	conditionalEntropy, err := d.ContinuousEntropy(f, threshold)
	if err != nil {
		return nil, err
	}
	p := &Partition{
		Feature:         f,
		Threshold:       threshold,
		InformationGain: dataset.InformationGain(d.Entropy(), conditionalEntropy),
	}
	for _, above := range []bool{false, true} {
		err = p.add(d, feature.NewContinuousCriterion(f, threshold, above))
		if err != nil {
			return nil, err
		}
	}
	return p, nil
}

func partition(d *dataset.Dataset, f feature.Feature) (*Partition, error) {
	switch f := f.(type) {
	default:
		return nil, errors.Errorf("unknown feature type %T for feature %v", f, f.Name())
	case *feature.NominalFeature:
		return NewNominalPartition(d, f)
	case *feature.ContinuousFeature:
		return NewContinuousPartition(d, f)
	}
}

func (p *Partition) add(d *dataset.Dataset, c feature.Criterion) error {
	s, err := d.SubsetWith(c)
	if err != nil {
		return err
	}
	p.Criteria = append(p.Criteria, c)
	p.Subsets = append(p.Subsets, s)
	return nil
}

/*
progresses returns whether every subset of the partition is smaller than the
given dataset, that is, if growing subtrees for it cannot reproduce the same
node endlessly.
*/
func (p *Partition) progresses(d *dataset.Dataset) bool {
	for _, s := range p.Subsets {
		if s.Count() >= d.Count() {
			return false
		}
	}
	return true
}
