/*
Package csv reads datasets from CSV documents whose features are described
elsewhere, usually in a YAML metadata document, and writes datasets as CSV.
*/
package csv

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"

	"github.com/pbanos/id3/dataset"
	"github.com/pbanos/id3/feature"
	"github.com/pkg/errors"
)

/*
Writer is an interface for a CSV document to which
instances can be written.
*/
type Writer interface {
	// Write will attempt to write the given instances
	// and will return the actually written number of
	// them and an error (if not all could be written)
	Write([]dataset.Instance) (int, error)
	// Count returns the total number of instances written
	// to the writer
	Count() int
	// Flush ensures any pending written operations finish
	// before returning. It returns an error if that cannot
	// be ensured.
	Flush() error
}

type csvWriter struct {
	count int
	width int
	w     *csv.Writer
}

/*
Read takes an io.Reader for a CSV stream, a slice of features and a class
feature and returns the dataset with the instances parsed from the reader or
an error.

The header or first row of the CSV content is expected to consist of the names
of the given features and the class in any order, each rendered once. The
values of every row are rearranged into the order of the features' ordinals
followed by the class label. Malformed rows produce a *dataset.DataFormatError
with their line number.
*/
func Read(reader io.Reader, features []feature.Feature, class *feature.ClassFeature) (*dataset.Dataset, error) {
	if class == nil {
		return nil, errors.New("no class feature defined")
	}
	r := csv.NewReader(reader)
	r.FieldsPerRecord = -1
	r.TrimLeadingSpace = true
	header, err := r.Read()
	if err == io.EOF {
		return nil, &dataset.DataFormatError{Row: 1, Reason: "missing header"}
	}
	if err != nil {
		return nil, errors.Wrap(err, "reading header")
	}
	positions, err := positionsFromHeader(header, features, class)
	if err != nil {
		return nil, err
	}
	instances := []dataset.Instance{}
	for l := 2; ; l++ {
		row, err := r.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, errors.Wrapf(err, "reading line %d", l)
		}
		if len(row) != len(header) {
			return nil, &dataset.DataFormatError{Row: l, Reason: fmt.Sprintf("expected %d fields, got %d", len(header), len(row))}
		}
		instance := make(dataset.Instance, len(positions))
		for i, p := range positions {
			instance[i] = row[p]
		}
		if err = dataset.Validate(features, instance, l); err != nil {
			return nil, err
		}
		instances = append(instances, instance)
	}
	return dataset.New(features, class, instances)
}

/*
ReadFile takes a filepath string, a slice of features and a class feature,
opens the file to which the filepath points to and uses Read to return the
dataset in it. If the filepath is "" os.Stdin is read instead.
*/
func ReadFile(filepath string, features []feature.Feature, class *feature.ClassFeature) (*dataset.Dataset, error) {
	f := os.Stdin
	if filepath != "" {
		var err error
		f, err = os.Open(filepath)
		if err != nil {
			return nil, errors.Wrap(err, "opening CSV file")
		}
		defer f.Close()
	}
	d, err := Read(f, features, class)
	if err != nil {
		return nil, errors.Wrapf(err, "parsing CSV file %s", filepath)
	}
	return d, nil
}

/*
NewWriter takes an io.Writer, a slice of features and a class feature and
returns a Writer that will write instances of them on the io.Writer, after a
header with the names of the features and the class.
*/
func NewWriter(writer io.Writer, features []feature.Feature, class *feature.ClassFeature) (Writer, error) {
	w := csv.NewWriter(writer)
	record := make([]string, 0, len(features)+1)
	for _, f := range features {
		record = append(record, f.Name())
	}
	record = append(record, class.Name())
	err := w.Write(record)
	if err != nil {
		return nil, errors.Wrap(err, "writing CSV header")
	}
	return &csvWriter{width: len(record), w: w}, nil
}

/*
Write takes a writer and a dataset and dumps the dataset onto the writer in
CSV format. It returns an error if something went wrong when writing.
*/
func Write(writer io.Writer, d *dataset.Dataset) error {
	cw, err := NewWriter(writer, d.Features(), d.Class())
	if err != nil {
		return err
	}
	_, err = cw.Write(d.Instances())
	if err != nil {
		return err
	}
	return cw.Flush()
}

func (cw *csvWriter) Count() int {
	return cw.count
}

func (cw *csvWriter) Write(instances []dataset.Instance) (int, error) {
	for n, instance := range instances {
		if len(instance) != cw.width {
			return n, errors.Errorf("writing CSV row for instance %d: expected %d fields, got %d", cw.count+1, cw.width, len(instance))
		}
		err := cw.w.Write(instance)
		if err != nil {
			return n, errors.Wrapf(err, "writing CSV row for instance %d", cw.count+1)
		}
		cw.count++
	}
	return len(instances), nil
}

func (cw *csvWriter) Flush() error {
	cw.w.Flush()
	return cw.w.Error()
}

/*
positionsFromHeader returns, for every feature in ordinal order and then the
class, the index of its column in the header.
*/
func positionsFromHeader(header []string, features []feature.Feature, class *feature.ClassFeature) ([]int, error) {
	columns := make(map[string]int)
	for i, name := range header {
		if _, ok := columns[name]; ok {
			return nil, &dataset.DataFormatError{Row: 1, Value: name, Reason: "column appears twice in header"}
		}
		columns[name] = i
	}
	names := make([]string, 0, len(features)+1)
	for _, f := range features {
		names = append(names, f.Name())
	}
	names = append(names, class.Name())
	positions := make([]int, 0, len(names))
	for _, name := range names {
		p, ok := columns[name]
		if !ok {
			return nil, &dataset.DataFormatError{Row: 1, Feature: name, Reason: "column missing from header"}
		}
		positions = append(positions, p)
		delete(columns, name)
	}
	for name := range columns {
		return nil, &dataset.DataFormatError{Row: 1, Value: name, Reason: "reference to unknown feature in header"}
	}
	return positions, nil
}
