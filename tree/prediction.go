package tree

import "fmt"

// PredictionError represents an error related with predictions
type PredictionError string

/*
ErrMalformedTree is returned when a split node does not have the subtree a
sample should be sent to, which can only happen with trees that were not
grown by this package.
*/
const ErrMalformedTree = PredictionError("split node lacks the subtree selected by the sample")

func (pe PredictionError) Error() string {
	return string(pe)
}

/*
ClassificationError is returned when the leaf a sample reaches has no label,
because none of the training instances reached it.
*/
type ClassificationError struct {
	NodeID string
}

func (ce *ClassificationError) Error() string {
	return fmt.Sprintf("no label can be predicted: leaf %s was reached by no training instance", ce.NodeID)
}

/*
UnknownCategoryError is returned when a sample's value for a nominal feature
is not among the values the tree was grown with.
*/
type UnknownCategoryError struct {
	Feature string
	Value   string
}

func (uce *UnknownCategoryError) Error() string {
	return fmt.Sprintf("value %q for feature %s was not seen when growing the tree", uce.Value, uce.Feature)
}
