/*
Package json serializes grown trees as JSON documents and reads them back
onto a tree.NodeStore.
*/
package json

import (
	"context"
	"encoding/json"
	"fmt"
	"io"

	"github.com/pbanos/id3/feature"
	"github.com/pbanos/id3/tree"
	"github.com/pkg/errors"
)

/*
WriteJSONTree takes a context.Context, a pointer to a tree.Tree
a NodeEncodeDecoder and an io.Writer and serializes the given tree
as JSON onto the io.Writer.
A tree is serialized as a JSON object with the following fields:
* "rootID": a string with the ID of the node at the root of the tree
* "class": a string with the name of the class feature the tree predicts
* "labels": an array with the labels of the class feature
* "nodes": an array containing the nodes that can be traversed on the tree
  serialized by the given NodeEncodeDecoder.
An error is returned if the tree cannot be traversed, serialized or written
onto the io.Writer.
*/
func WriteJSONTree(ctx context.Context, t *tree.Tree, ned NodeEncodeDecoder, w io.Writer) error {
	err := marshalJSONTreeHeader(t, w)
	if err != nil {
		return err
	}
	var i int
	err = t.Traverse(ctx, false, func(ctx context.Context, n *tree.Node) error {
		err := writeNode(i, n, ned, w)
		i++
		return err
	})
	if err != nil {
		return err
	}
	_, err = w.Write([]byte("]}\n"))
	return err
}

/*
ReadJSONTree takes a context.Context, a pointer to a tree.Tree, a
NodeEncodeDecoder, a class feature and an io.Reader and unmarshals the
contents of the io.Reader onto the given tree, storing every node on its
NodeStore.
The JSON object is expected to have the fields WriteJSONTree writes, and its
class must have the name and labels of the given class feature.
An error is returned if the JSON cannot be read from the io.Reader or
unmarshalled onto the tree.
*/
func ReadJSONTree(ctx context.Context, t *tree.Tree, ned NodeEncodeDecoder, class *feature.ClassFeature, r io.Reader) error {
	dec := json.NewDecoder(r)
	jt := &struct {
		RootID string             `json:"rootID"`
		Class  string             `json:"class"`
		Labels []string           `json:"labels"`
		Nodes  []*json.RawMessage `json:"nodes"`
	}{}
	err := dec.Decode(jt)
	if err != nil {
		return errors.Wrap(err, "decoding tree")
	}
	if class == nil || class.Name() != jt.Class {
		return errors.Errorf("tree predicts %q, which is not the defined class feature", jt.Class)
	}
	if len(jt.Labels) != len(class.Labels()) {
		return errors.Errorf("tree predicts %d labels for %s, %d defined", len(jt.Labels), jt.Class, len(class.Labels()))
	}
	for i, l := range jt.Labels {
		if class.IndexOf(l) != i {
			return errors.Errorf("tree label %q for %s does not match the defined labels %v", l, jt.Class, class.Labels())
		}
	}
	if jt.RootID == "" {
		return errors.New("no root node id available")
	}
	t.Class = class
	t.RootID = jt.RootID
	for _, jn := range jt.Nodes {
		if jn == nil {
			return errors.New("null node")
		}
		n, err := ned.Decode(*jn)
		if err != nil {
			return err
		}
		err = t.NodeStore.Store(ctx, n)
		if err != nil {
			return errors.Wrapf(err, "storing node %v", n.ID)
		}
	}
	return nil
}

func marshalJSONTreeHeader(t *tree.Tree, w io.Writer) error {
	jrootID, err := json.Marshal(t.RootID)
	if err != nil {
		return err
	}
	jclass, err := json.Marshal(t.Class.Name())
	if err != nil {
		return err
	}
	jlabels, err := json.Marshal(t.Class.Labels())
	if err != nil {
		return err
	}
	header := fmt.Sprintf(`{"rootID":%s,"class":%s,"labels":%s,"nodes":[`, jrootID, jclass, jlabels)
	_, err = w.Write([]byte(header))
	return err
}

func writeNode(i int, n *tree.Node, ned NodeEncodeDecoder, w io.Writer) error {
	if i != 0 {
		_, err := w.Write([]byte(","))
		if err != nil {
			return err
		}
	}
	jn, err := ned.Encode(n)
	if err != nil {
		return err
	}
	_, err = w.Write(jn)
	return err
}
