package json

import (
	"encoding/json"

	"github.com/pbanos/id3/feature"
	"github.com/pbanos/id3/tree"
	"github.com/pkg/errors"
)

/*
NodeEncodeDecoder is an interface for objects
that allow encoding nodes into slices of
bytes and decoding them back to nodes.
*/
type NodeEncodeDecoder interface {

	//Encode receives a *tree.Node
	// and returns a slice of bytes with the node
	//encoded or an error if the encoding could not
	//be performed for some reason.
	Encode(*tree.Node) ([]byte, error)

	//Decode receives a slice of bytes
	//and returns a *tree.Node decoded from the
	//slice of bytes or an error if the decoding
	//could not be performed for some reason.
	Decode([]byte) (*tree.Node, error)
}

type nodeEncodeDecoder struct {
	features []feature.Feature
}

type node struct {
	ID               string     `json:"id"`
	ParentID         string     `json:"pId,omitempty"`
	SubtreeIDs       []string   `json:"stIds,omitempty"`
	Level            int        `json:"lvl"`
	FeatureCriterion *criterion `json:"c,omitempty"`
	SubtreeFeature   string     `json:"f,omitempty"`
	Threshold        float64    `json:"t,omitempty"`
	ClassCounts      []int      `json:"counts,omitempty"`
	Label            string     `json:"label,omitempty"`
}

const (
	nominalCriterionType    = "nominal"
	continuousCriterionType = "continuous"
)

type criterion struct {
	Type      string  `json:"type"`
	Feature   string  `json:"f"`
	Value     string  `json:"v,omitempty"`
	Threshold float64 `json:"t,omitempty"`
	Above     bool    `json:"above,omitempty"`
}

/*
NewNodeEncodeDecoder returns a NodeEncodeDecoder that encodes nodes as JSON
objects, referencing features by name, and decodes them back resolving those
names among the given features.

Instances are not encoded, so decoded nodes have none.
*/
func NewNodeEncodeDecoder(features []feature.Feature) NodeEncodeDecoder {
	return &nodeEncodeDecoder{features}
}

func (ned *nodeEncodeDecoder) Encode(n *tree.Node) ([]byte, error) {
	jn := &node{
		ID:          n.ID,
		ParentID:    n.ParentID,
		Level:       n.Level,
		Threshold:   n.Threshold,
		ClassCounts: n.ClassCounts,
		Label:       n.Label,
	}
	if len(n.SubtreeIDs) > 0 {
		jn.SubtreeIDs = n.SubtreeIDs
	}
	if n.FeatureCriterion != nil {
		c, err := encodeCriterion(n.FeatureCriterion)
		if err != nil {
			return nil, errors.Wrapf(err, "encoding node %v", n.ID)
		}
		jn.FeatureCriterion = c
	}
	if n.SubtreeFeature != nil {
		jn.SubtreeFeature = n.SubtreeFeature.Name()
	}
	return json.Marshal(jn)
}

func (ned *nodeEncodeDecoder) Decode(data []byte) (*tree.Node, error) {
	jn := &node{}
	err := json.Unmarshal(data, jn)
	if err != nil {
		return nil, err
	}
	n := &tree.Node{
		ID:          jn.ID,
		ParentID:    jn.ParentID,
		Level:       jn.Level,
		Threshold:   jn.Threshold,
		ClassCounts: jn.ClassCounts,
		Label:       jn.Label,
	}
	if len(jn.SubtreeIDs) > 0 {
		n.SubtreeIDs = jn.SubtreeIDs
	}
	if jn.FeatureCriterion != nil {
		n.FeatureCriterion, err = ned.decodeCriterion(jn.FeatureCriterion)
		if err != nil {
			return nil, errors.Wrapf(err, "decoding node %v", n.ID)
		}
	}
	if jn.SubtreeFeature != "" {
		n.SubtreeFeature = ned.featureNamed(jn.SubtreeFeature)
		if n.SubtreeFeature == nil {
			return nil, errors.Errorf("decoding node %v: unknown feature %v", n.ID, jn.SubtreeFeature)
		}
	}
	return n, nil
}

func encodeCriterion(c feature.Criterion) (*criterion, error) {
	switch c := c.(type) {
	case feature.NominalCriterion:
		return &criterion{Type: nominalCriterionType, Feature: c.Feature().Name(), Value: c.Value()}, nil
	case feature.ContinuousCriterion:
		return &criterion{Type: continuousCriterionType, Feature: c.Feature().Name(), Threshold: c.Threshold(), Above: c.Above()}, nil
	}
	return nil, errors.Errorf("unknown criterion type %T", c)
}

func (ned *nodeEncodeDecoder) decodeCriterion(jc *criterion) (feature.Criterion, error) {
	f := ned.featureNamed(jc.Feature)
	if f == nil {
		return nil, errors.Errorf("criterion on unknown feature %v", jc.Feature)
	}
	switch jc.Type {
	case nominalCriterionType:
		nf, ok := f.(*feature.NominalFeature)
		if !ok {
			return nil, errors.Errorf("nominal criterion on non-nominal feature %v", jc.Feature)
		}
		return feature.NewNominalCriterion(nf, jc.Value), nil
	case continuousCriterionType:
		cf, ok := f.(*feature.ContinuousFeature)
		if !ok {
			return nil, errors.Errorf("continuous criterion on non-continuous feature %v", jc.Feature)
		}
		return feature.NewContinuousCriterion(cf, jc.Threshold, jc.Above), nil
	}
	return nil, errors.Errorf("unknown criterion type %q", jc.Type)
}

func (ned *nodeEncodeDecoder) featureNamed(name string) feature.Feature {
	for _, f := range ned.features {
		if f.Name() == name {
			return f
		}
	}
	return nil
}
