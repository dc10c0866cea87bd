package tree

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/pbanos/id3/feature"
	"github.com/pkg/errors"
)

// Tree represents a decision tree. It is composed of a
// NodeStore where all its nodes are stored, the id for the
// root node of the tree and the class it is able to
// predict.
type Tree struct {
	NodeStore
	RootID string
	Class  *feature.ClassFeature
}

// New takes the ID for the root Node, a NodeStore and a class feature and
// returns a tree composed of the nodes in the NodeStore connected to the
// node with the given root ID that predicts the given class.
func New(rootID string, nodeStore NodeStore, class *feature.ClassFeature) *Tree {
	return &Tree{nodeStore, rootID, class}
}

/*
Classify takes a context and a sample and returns the label the tree predicts
for it, descending from the root until a leaf is reached.

It returns a *ClassificationError if the leaf has no label, an
*UnknownCategoryError if the sample has a value for a nominal feature the tree
does not know about and other errors if a node cannot be retrieved or a
sample value obtained.
*/
func (t *Tree) Classify(ctx context.Context, s feature.Sample) (string, error) {
	if t == nil {
		return "", errors.New("nil tree cannot classify samples")
	}
	n, err := t.getNode(ctx, t.RootID)
	if err != nil {
		return "", errors.Wrap(err, "classifying sample")
	}
	for {
		var i int
		switch f := n.SubtreeFeature.(type) {
		case nil:
			if n.Label == "" {
				return "", &ClassificationError{NodeID: n.ID}
			}
			return n.Label, nil
		case *feature.NominalFeature:
			v, err := s.ValueFor(f)
			if err != nil {
				return "", err
			}
			i = f.IndexOf(v)
			if i < 0 {
				return "", &UnknownCategoryError{Feature: f.Name(), Value: v}
			}
		case *feature.ContinuousFeature:
			v, err := s.ValueFor(f)
			if err != nil {
				return "", err
			}
			fv, err := feature.ParseFloat(v)
			if err != nil {
				return "", errors.Wrapf(err, "classifying sample: feature %s", f.Name())
			}
			if fv > n.Threshold {
				i = 1
			}
		default:
			return "", errors.Errorf("classifying sample: unknown feature type %T for feature %s", f, f.Name())
		}
		if i >= len(n.SubtreeIDs) {
			return "", ErrMalformedTree
		}
		n, err = t.getNode(ctx, n.SubtreeIDs[i])
		if err != nil {
			return "", errors.Wrap(err, "classifying sample")
		}
	}
}

// Traverse takes a context, bottomup boolean and an
// error-returning function that takes a context and a node
// as parameters, and goes through the tree running the
// function with the context and every traversed node.
// Traverse will call the function with a parent node before
// calling it for its children if bottomup is false, and
// call it after its children if bottomup is true.
// If the given context times out or is cancelled, the context
// error is returned. If a node cannot be retrieved from the
// tree's node store, the obtained error is returned. If the
// call to the function returns an error, the traversing is
// aborted and the error is returned. Otherwise, when the
// traversing is over, nil is returned.
func (t *Tree) Traverse(ctx context.Context, bottomup bool, f func(context.Context, *Node) error) error {
	n, err := t.getNode(ctx, t.RootID)
	if err != nil {
		return err
	}
	return t.traverse(ctx, n, bottomup, f)
}

func (t *Tree) traverse(ctx context.Context, n *Node, bottomup bool, f func(context.Context, *Node) error) error {
	err := ctx.Err()
	if err != nil {
		return err
	}
	if !bottomup {
		err = f(ctx, n)
		if err != nil {
			return err
		}
	}
	for _, snID := range n.SubtreeIDs {
		sn, err := t.getNode(ctx, snID)
		if err != nil {
			return err
		}
		err = t.traverse(ctx, sn, bottomup, f)
		if err != nil {
			return err
		}
	}
	if bottomup {
		return f(ctx, n)
	}
	return nil
}

/*
Print takes a context and an io.Writer and writes the tree onto it, one line
per subtree: as many "|\t" as the level of its parent, the criterion leading
to it, the class counts of the training instances that reached it between
brackets and, for leaves, a colon followed by the predicted label ("?" if it
has none). A tree consisting of a single leaf is written as its counts and
label alone.
*/
func (t *Tree) Print(ctx context.Context, w io.Writer) error {
	root, err := t.getNode(ctx, t.RootID)
	if err != nil {
		return err
	}
	if root.IsLeaf() {
		_, err = fmt.Fprintf(w, "%s: %s\n", formatCounts(root.ClassCounts), leafLabel(root))
		return err
	}
	return t.printSubtrees(ctx, w, root)
}

func (t *Tree) printSubtrees(ctx context.Context, w io.Writer, n *Node) error {
	indent := strings.Repeat("|\t", n.Level)
	for _, snID := range n.SubtreeIDs {
		sn, err := t.getNode(ctx, snID)
		if err != nil {
			return err
		}
		line := fmt.Sprintf("%s%v %s", indent, sn.FeatureCriterion, formatCounts(sn.ClassCounts))
		if sn.IsLeaf() {
			line = fmt.Sprintf("%s: %s", line, leafLabel(sn))
		}
		if _, err = fmt.Fprintln(w, line); err != nil {
			return err
		}
		if !sn.IsLeaf() {
			if err = t.printSubtrees(ctx, w, sn); err != nil {
				return err
			}
		}
	}
	return nil
}

func (t *Tree) String() string {
	var buf bytes.Buffer
	if err := t.Print(context.TODO(), &buf); err != nil {
		return fmt.Sprintf("ERROR: %s\n", err.Error())
	}
	return buf.String()
}

func (t *Tree) getNode(ctx context.Context, id string) (*Node, error) {
	n, err := t.NodeStore.Get(ctx, id)
	if err != nil {
		return nil, errors.Wrapf(err, "retrieving node %v", id)
	}
	if n == nil {
		return nil, errors.Errorf("node %v not found", id)
	}
	return n, nil
}

func formatCounts(counts []int) string {
	cs := make([]string, len(counts))
	for i, c := range counts {
		cs[i] = fmt.Sprintf("%d", c)
	}
	return fmt.Sprintf("[%s]", strings.Join(cs, " "))
}

func leafLabel(n *Node) string {
	if n.Label == "" {
		return "?"
	}
	return n.Label
}
