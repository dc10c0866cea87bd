package tree

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/pbanos/id3/dataset"
	"github.com/pkg/errors"
)

// Result is the outcome of classifying an instance whose label is known.
type Result struct {
	Actual    string
	Predicted string
}

// Correct returns whether the predicted label is the actual one, ignoring case.
func (r Result) Correct() bool {
	return strings.EqualFold(r.Actual, r.Predicted)
}

// Evaluation holds the results of testing a tree against a set of instances.
type Evaluation struct {
	Results []Result
	Correct int
}

/*
Test takes a context and a slice of instances and classifies each of them
with the tree, returning an Evaluation with the results. Classification
failures are not counted as wrong predictions: the first one aborts the test
and is returned wrapped with the 1-based position of the instance.
*/
func (t *Tree) Test(ctx context.Context, instances []dataset.Instance) (*Evaluation, error) {
	e := &Evaluation{Results: make([]Result, 0, len(instances))}
	for i, instance := range instances {
		p, err := t.Classify(ctx, instance)
		if err != nil {
			return nil, errors.Wrapf(err, "test instance %d", i+1)
		}
		r := Result{Actual: instance.Label(), Predicted: p}
		if r.Correct() {
			e.Correct++
		}
		e.Results = append(e.Results, r)
	}
	return e, nil
}

// Total returns the number of instances that were tested.
func (e *Evaluation) Total() int {
	return len(e.Results)
}

// Accuracy returns the fraction of correctly classified instances, 0 if none was tested.
func (e *Evaluation) Accuracy() float64 {
	if len(e.Results) == 0 {
		return 0.0
	}
	return float64(e.Correct) / float64(len(e.Results))
}

/*
WriteTo writes a line per result with its 1-based index, actual and predicted
labels onto the given writer, followed by a line summarizing the number of
correct classifications.
*/
func (e *Evaluation) WriteTo(w io.Writer) (int64, error) {
	var total int64
	for i, r := range e.Results {
		n, err := fmt.Fprintf(w, "%d: Actual: %s Predicted: %s\n", i+1, r.Actual, r.Predicted)
		total += int64(n)
		if err != nil {
			return total, err
		}
	}
	n, err := fmt.Fprintf(w, "Number of correctly classified: %d Total number of test instances: %d\n", e.Correct, e.Total())
	return total + int64(n), err
}
