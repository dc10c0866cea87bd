package dataset

import (
	"math"
	"strings"

	"github.com/pbanos/id3/feature"
)

// The functions below assume a binary class: they only look at the first two
// labels of the class feature.

/*
Entropy returns the unit entropy term count/total * log2(count/total), which
is 0 when either count or total is 0. Note the term is not negated.
*/
func Entropy(count, total int) float64 {
	if count == 0 || total == 0 {
		return 0.0
	}
	p := float64(count) / float64(total)
	return p * math.Log2(p)
}

/*
OverallEntropy takes a class feature and a slice of instances and returns the
entropy of the class labels among them in bits. A label with no instances
contributes 0, so a set of instances sharing a single label has an entropy of
exactly 0.0.
*/
func OverallEntropy(class *feature.ClassFeature, instances []Instance) float64 {
	var result float64
	counts := ClassCounts(class, instances)
	for i := 0; i < 2 && i < len(counts); i++ {
		result -= Entropy(counts[i], len(instances))
	}
	return result
}

/*
NominalEntropy takes a nominal feature, a class feature and a slice of
instances and returns the conditional entropy of the class labels given the
feature value. Values with no instances contribute 0.
*/
func NominalEntropy(f *feature.NominalFeature, class *feature.ClassFeature, instances []Instance) float64 {
	if len(instances) == 0 {
		return 0.0
	}
	labels := class.Labels()
	var result float64
	for _, value := range f.AvailableValues() {
		var n, c0, c1 int
		for _, instance := range instances {
			if !strings.EqualFold(instance[f.Ordinal()], value) {
				continue
			}
			n++
			switch {
			case strings.EqualFold(instance.Label(), labels[0]):
				c0++
			case strings.EqualFold(instance.Label(), labels[1]):
				c1++
			}
		}
		partial := Entropy(c0, n) + Entropy(c1, n)
		result += float64(n) / float64(len(instances)) * partial
	}
	return -result
}

/*
ContinuousEntropy takes a continuous feature, a threshold, a class feature and
a slice of instances and returns the conditional entropy of the class labels
given whether the feature value is lower than or equal to the threshold. An
error is returned if a feature value cannot be parsed.
*/
func ContinuousEntropy(f *feature.ContinuousFeature, threshold float64, class *feature.ClassFeature, instances []Instance) (float64, error) {
	if len(instances) == 0 {
		return 0.0, nil
	}
	labels := class.Labels()
	var below, above [2]int
	var belowCount, aboveCount int
	for i, instance := range instances {
		v, err := feature.ParseFloat(instance[f.Ordinal()])
		if err != nil {
			return 0.0, &DataFormatError{Row: i + 1, Feature: f.Name(), Value: instance[f.Ordinal()], Reason: "not a number"}
		}
		counts := &above
		if v <= threshold {
			counts = &below
			belowCount++
		} else {
			aboveCount++
		}
		switch {
		case strings.EqualFold(instance.Label(), labels[0]):
			counts[0]++
		case strings.EqualFold(instance.Label(), labels[1]):
			counts[1]++
		}
	}
	total := float64(len(instances))
	p1 := float64(belowCount) / total
	p2 := float64(aboveCount) / total
	p11, p12 := proportions(below, belowCount)
	p21, p22 := proportions(above, aboveCount)
	return -(p1*(plog2p(p11)+plog2p(p12)) + p2*(plog2p(p21)+plog2p(p22))), nil
}

/*
InformationGain returns the reduction of entropy from the given overall
entropy to the given conditional entropy.
*/
func InformationGain(overallEntropy, conditionalEntropy float64) float64 {
	return overallEntropy - conditionalEntropy
}

// Entropy returns the overall entropy of the class labels in the dataset.
func (d *Dataset) Entropy() float64 {
	return OverallEntropy(d.class, d.instances)
}

// NominalEntropy returns the conditional entropy of the dataset given the feature.
func (d *Dataset) NominalEntropy(f *feature.NominalFeature) float64 {
	return NominalEntropy(f, d.class, d.instances)
}

// ContinuousEntropy returns the conditional entropy of the dataset given the feature split at threshold.
func (d *Dataset) ContinuousEntropy(f *feature.ContinuousFeature, threshold float64) (float64, error) {
	return ContinuousEntropy(f, threshold, d.class, d.instances)
}

func proportions(counts [2]int, total int) (float64, float64) {
	if total == 0 {
		return 0.0, 0.0
	}
	return float64(counts[0]) / float64(total), float64(counts[1]) / float64(total)
}

// plog2p returns p*log2(p), 0 for p == 0.
func plog2p(p float64) float64 {
	if p == 0 {
		return 0.0
	}
	return p * math.Log2(p)
}
