package id3

import (
	"github.com/emirpasic/gods/sets/treeset"
	"github.com/emirpasic/gods/utils"
	"github.com/pbanos/id3/dataset"
	"github.com/pbanos/id3/feature"
)

/*
CandidateSplits takes a slice of values and returns the midpoints between
every pair of adjacent distinct values, in ascending order. Duplicated values
are collapsed, so n distinct values produce n-1 candidates, and none if there
is a single distinct value.
*/
func CandidateSplits(values []float64) []float64 {
	distinct := distinctSortedValues(values)
	if len(distinct) < 2 {
		return []float64{}
	}
	candidates := make([]float64, 0, len(distinct)-1)
	for i, v := range distinct[1:] {
		candidates = append(candidates, (distinct[i]+v)/2.0)
	}
	return candidates
}

/*
BestSplit takes a dataset and a continuous feature and returns the threshold
to split the dataset on the feature: the candidate split (see CandidateSplits)
with the minimum conditional entropy, the lowest one winning ties. When the
instances share a single value for the feature, that value is returned. An
empty dataset gets a threshold of 0.

Every midpoint is evaluated, whether the class labels change around it or not.
*/
func BestSplit(d *dataset.Dataset, f *feature.ContinuousFeature) (float64, error) {
	values, err := d.ContinuousValues(f)
	if err != nil {
		return 0.0, err
	}
	distinct := distinctSortedValues(values)
	if len(distinct) == 0 {
		return 0.0, nil
	}
	candidates := CandidateSplits(distinct)
	if len(candidates) == 0 {
		return distinct[0], nil
	}
	var best, minEntropy float64
	for i, c := range candidates {
		e, err := d.ContinuousEntropy(f, c)
		if err != nil {
			return 0.0, err
		}
		if i == 0 || e < minEntropy {
			best = c
			minEntropy = e
		}
	}
	return best, nil
}

func distinctSortedValues(values []float64) []float64 {
	set := treeset.NewWith(utils.Float64Comparator)
	for _, v := range values {
		set.Add(v)
	}
	result := make([]float64, 0, set.Size())
	for _, v := range set.Values() {
		result = append(result, v.(float64))
	}
	return result
}
