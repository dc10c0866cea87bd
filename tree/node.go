package tree

import (
	"github.com/pbanos/id3/dataset"
	"github.com/pbanos/id3/feature"
)

// Kind is the state a node is built in: a leaf or a split on a nominal or a
// continuous feature.
type Kind int

const (
	// Leaf nodes hold a predicted label.
	Leaf Kind = iota
	// NominalSplit nodes have a subtree for every value of a nominal feature.
	NominalSplit
	// ContinuousSplit nodes have 2 subtrees, for values below or equal to a threshold and above it.
	ContinuousSplit
)

func (k Kind) String() string {
	switch k {
	case Leaf:
		return "leaf"
	case NominalSplit:
		return "nominal"
	case ContinuousSplit:
		return "continuous"
	}
	return "unknown"
}

/*
Node is a node of the tree
*/
type Node struct {
	// An ID to identify the node
	ID string
	// The ID for the parent of the node in the tree
	ParentID string
	// An slice with the IDs of the nodes directly under this node. For nominal
	// splits they follow the order of the feature's available values, for
	// continuous splits the first is the subtree for values lower than or
	// equal to the threshold and the second for values above it.
	SubtreeIDs []string
	// The depth of the node, 0 for the root.
	Level int
	// The constraint that selects this node among its parent's subtrees, nil
	// for the root.
	FeatureCriterion feature.Criterion
	// The feature the node splits on, nil for leaves.
	SubtreeFeature feature.Feature
	// The threshold of continuous splits.
	Threshold float64
	// The number of training instances that reached the node for every
	// class label, in label order.
	ClassCounts []int
	// The majority label of leaves. It is empty when it could not be
	// determined, because no training instance reached the leaf.
	Label string
	// The training instances that reached the node. They are only available
	// on trees that have just been grown and are not persisted.
	Instances []dataset.Instance
}

// Kind returns the kind of node, according to the feature it splits on.
func (n *Node) Kind() Kind {
	switch n.SubtreeFeature.(type) {
	case *feature.NominalFeature:
		return NominalSplit
	case *feature.ContinuousFeature:
		return ContinuousSplit
	}
	return Leaf
}

// IsLeaf returns whether the node is a leaf
func (n *Node) IsLeaf() bool {
	return n.Kind() == Leaf
}

// SplitOrdinal returns the ordinal of the feature the node splits on, -1 for leaves.
func (n *Node) SplitOrdinal() int {
	if n.SubtreeFeature == nil {
		return -1
	}
	return n.SubtreeFeature.Ordinal()
}
