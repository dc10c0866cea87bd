/*
Package mongodataset reads datasets from MongoDB collections and writes them
onto them. Every instance is a document with a field per feature and the
class, nominal values as strings and continuous values as numbers.
*/
package mongodataset

import (
	"context"
	"strconv"
	"strings"

	"github.com/pbanos/id3/dataset"
	"github.com/pbanos/id3/feature"
	"github.com/pkg/errors"
	mgo "gopkg.in/mgo.v2"
	"gopkg.in/mgo.v2/bson"
)

/*
Read takes a context, a MongoDB session, a collection name, a slice of
features and a class feature and returns the dataset with the documents of the
collection on the default database of the session. Missing fields and
values of unexpected types produce a *dataset.DataFormatError with the 1-based
position of the document.
*/
func Read(ctx context.Context, session *mgo.Session, collection string, features []feature.Feature, class *feature.ClassFeature) (*dataset.Dataset, error) {
	if class == nil {
		return nil, errors.New("no class feature defined")
	}
	if err := validNames(features, class); err != nil {
		return nil, err
	}
	iter := session.DB("").C(collection).Find(nil).Iter()
	instances := []dataset.Instance{}
	var doc bson.M
	for row := 1; iter.Next(&doc); row++ {
		if err := ctx.Err(); err != nil {
			iter.Close()
			return nil, err
		}
		instance, err := instanceFrom(doc, row, features, class)
		if err != nil {
			iter.Close()
			return nil, err
		}
		instances = append(instances, instance)
		doc = nil
	}
	if err := iter.Close(); err != nil {
		return nil, errors.Wrapf(err, "reading collection %s", collection)
	}
	return dataset.New(features, class, instances)
}

/*
Write takes a context, a MongoDB session, a collection name and a dataset and
inserts the instances of the dataset as documents in the collection on the
default database of the session. It returns the number of documents inserted
or an error.
*/
func Write(ctx context.Context, session *mgo.Session, collection string, d *dataset.Dataset) (int, error) {
	if err := validNames(d.Features(), d.Class()); err != nil {
		return 0, err
	}
	docs := make([]interface{}, 0, d.Count())
	for _, instance := range d.Instances() {
		doc := make(bson.M)
		for _, f := range d.Features() {
			v, err := instance.ValueFor(f)
			if err != nil {
				return 0, err
			}
			if _, ok := f.(*feature.ContinuousFeature); ok {
				fv, err := feature.ParseFloat(v)
				if err != nil {
					return 0, err
				}
				doc[f.Name()] = fv
			} else {
				doc[f.Name()] = v
			}
		}
		doc[d.Class().Name()] = instance.Label()
		docs = append(docs, doc)
	}
	if err := ctx.Err(); err != nil {
		return 0, err
	}
	if len(docs) == 0 {
		return 0, nil
	}
	err := session.DB("").C(collection).Insert(docs...)
	if err != nil {
		return 0, errors.Wrapf(err, "inserting documents in collection %s", collection)
	}
	return len(docs), nil
}

func instanceFrom(doc bson.M, row int, features []feature.Feature, class *feature.ClassFeature) (dataset.Instance, error) {
	instance := make(dataset.Instance, 0, len(features)+1)
	names := make([]string, 0, len(features)+1)
	for _, f := range features {
		names = append(names, f.Name())
	}
	names = append(names, class.Name())
	for _, name := range names {
		v, ok := doc[name]
		if !ok || v == nil {
			return nil, &dataset.DataFormatError{Row: row, Feature: name, Reason: "missing value"}
		}
		var s string
		switch v := v.(type) {
		case string:
			s = v
		case float64:
			s = strconv.FormatFloat(v, 'g', -1, 64)
		case int:
			s = strconv.Itoa(v)
		case int64:
			s = strconv.FormatInt(v, 10)
		case bool:
			s = strconv.FormatBool(v)
		default:
			return nil, &dataset.DataFormatError{Row: row, Feature: name, Reason: "unsupported value type"}
		}
		instance = append(instance, s)
	}
	if err := dataset.Validate(features, instance, row); err != nil {
		return nil, err
	}
	return instance, nil
}

func validNames(features []feature.Feature, class *feature.ClassFeature) error {
	names := make([]string, 0, len(features)+1)
	for _, f := range features {
		names = append(names, f.Name())
	}
	names = append(names, class.Name())
	for _, name := range names {
		if name == "_id" {
			return errors.Errorf("invalid feature name %q: reserved collection field", "_id")
		}
		if strings.ContainsAny(name, ".$") {
			return errors.Errorf("invalid feature name %q: contains reserved characters %q or %q", name, ".", "$")
		}
	}
	return nil
}
