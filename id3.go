/*
Package id3 grows binary class decision trees from datasets with nominal and
continuous features using the ID3 algorithm: every node is split on the
feature with the highest information gain until nodes are pure or too small.
*/
package id3

import (
	"context"

	"github.com/pbanos/id3/dataset"
	"github.com/pbanos/id3/feature"
	"github.com/pbanos/id3/tree"
	"github.com/pkg/errors"
)

// Logger is the interface wrapping the Logf method, used to report the
// progress of growing a tree.
type Logger interface {
	Logf(format string, a ...interface{})
}

// trainingContext holds what every node needs while growing a tree.
type trainingContext struct {
	features []feature.Feature
	class    *feature.ClassFeature
	strategy *PruningStrategy
	tree     *tree.Tree
	logger   Logger
}

/*
Grow takes a context, a dataset, a pruning strategy, a node store and an
optional logger and grows a tree from the dataset, creating all its nodes on
the node store. A nil pruning strategy means DefaultPruningStrategy.

Every feature of the dataset is considered for every node, so a feature may
be split on again deeper in the tree. The chosen feature is the one with the
maximum information gain, the first one in the dataset feature order winning
ties, even when that gain is not positive.

It returns the grown tree or an error if a node cannot be stored or the
context is cancelled.
*/
func Grow(ctx context.Context, d *dataset.Dataset, ps *PruningStrategy, ns tree.NodeStore, logger Logger) (*tree.Tree, error) {
	if ps == nil {
		ps = DefaultPruningStrategy()
	}
	root := &tree.Node{}
	err := ns.Create(ctx, root)
	if err != nil {
		return nil, errors.Wrap(err, "creating root node")
	}
	tc := &trainingContext{
		features: d.Features(),
		class:    d.Class(),
		strategy: ps,
		tree:     tree.New(root.ID, ns, d.Class()),
		logger:   logger,
	}
	tc.logf("Growing tree from %d instances and %d features to predict %s...", d.Count(), len(tc.features), tc.class.Name())
	err = tc.branchOut(ctx, root, d)
	if err != nil {
		return nil, err
	}
	return tc.tree, nil
}

/*
branchOut takes a context, a node already created on the tree's store and the
dataset of the instances that reached it and develops the node and all nodes
below it, storing them.
*/
func (tc *trainingContext) branchOut(ctx context.Context, n *tree.Node, d *dataset.Dataset) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	n.Instances = d.Instances()
	n.ClassCounts = d.ClassCounts()
	if ok, reason := tc.strategy.stop(d, n.Level); ok {
		tc.logf("Node %s at level %d is a leaf: %s", n.ID, n.Level, reason)
		return tc.leaf(ctx, n, d)
	}
	if len(tc.features) == 0 {
		tc.logf("Node %s at level %d is a leaf: no features", n.ID, n.Level)
		return tc.leaf(ctx, n, d)
	}
	var selected *Partition
	for _, f := range tc.features {
		p, err := partition(d, f)
		if err != nil {
			return errors.Wrapf(err, "partitioning node %s on %s", n.ID, f.Name())
		}
		if selected == nil || p.InformationGain > selected.InformationGain {
			selected = p
		}
	}
	if !selected.progresses(d) {
		tc.logf("Node %s at level %d is a leaf: splitting on %s does not separate any instance", n.ID, n.Level, selected.Feature.Name())
		return tc.leaf(ctx, n, d)
	}
	tc.logf("Splitting node %s at level %d with %d instances on %s (information gain %f)", n.ID, n.Level, d.Count(), selected.Feature.Name(), selected.InformationGain)
	n.SubtreeFeature = selected.Feature
	n.Threshold = selected.Threshold
	n.SubtreeIDs = make([]string, 0, len(selected.Subsets))
	for i, s := range selected.Subsets {
		sn := &tree.Node{
			ParentID:         n.ID,
			Level:            n.Level + 1,
			FeatureCriterion: selected.Criteria[i],
		}
		err := tc.tree.Create(ctx, sn)
		if err != nil {
			return errors.Wrap(err, "creating node")
		}
		n.SubtreeIDs = append(n.SubtreeIDs, sn.ID)
		err = tc.branchOut(ctx, sn, s)
		if err != nil {
			return err
		}
	}
	return tc.store(ctx, n)
}

func (tc *trainingContext) leaf(ctx context.Context, n *tree.Node, d *dataset.Dataset) error {
	n.Label, _ = d.MajorityLabel()
	return tc.store(ctx, n)
}

func (tc *trainingContext) store(ctx context.Context, n *tree.Node) error {
	err := tc.tree.Store(ctx, n)
	if err != nil {
		return errors.Wrapf(err, "storing node %s", n.ID)
	}
	return nil
}

func (tc *trainingContext) logf(format string, a ...interface{}) {
	if tc.logger != nil {
		tc.logger.Logf(format, a...)
	}
}
