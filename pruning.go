package id3

import (
	"github.com/pbanos/id3/dataset"
)

// DefaultMinInstances is the minimum number of instances a node needs to be split.
const DefaultMinInstances = 2

// PruningStrategy holds the configuration
// for when a node must not be partitioned.
type PruningStrategy struct {
	// MinInstances is the minimum number of
	// instances a node must have to be split,
	// nodes with fewer instances become leaves.
	// It may be 0 or negative, then only empty
	// and pure nodes become leaves.
	MinInstances int
	// MaxDepth, when greater than 0, is the level
	// at which nodes become leaves regardless of
	// their instances.
	MaxDepth int
}

/*
DefaultPruningStrategy returns a PruningStrategy with DefaultMinInstances and
no depth limit.
*/
func DefaultPruningStrategy() *PruningStrategy {
	return &PruningStrategy{MinInstances: DefaultMinInstances}
}

/*
stop takes the dataset of a node and its level and returns whether the node
must be a leaf and why. The rules are checked in order: fewer instances than
MinInstances, no instances, an entropy of exactly 0 and finally the
MaxDepth level being reached.
*/
func (ps *PruningStrategy) stop(d *dataset.Dataset, level int) (bool, string) {
	count := d.Count()
	if count < ps.MinInstances {
		return true, "too few instances"
	}
	if count == 0 {
		return true, "no instances"
	}
	if d.Entropy() == 0.0 {
		return true, "pure class"
	}
	if ps.MaxDepth > 0 && level >= ps.MaxDepth {
		return true, "maximum depth reached"
	}
	return false, ""
}
