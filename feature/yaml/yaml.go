/*
Package yaml provides methods to parse feature.Feature specifications
also known as metadata, from YAML documents.
*/
package yaml

import (
	"fmt"
	"io/ioutil"
	"strings"

	"github.com/pbanos/id3/feature"
	"github.com/pkg/errors"
	yaml "gopkg.in/yaml.v2"
)

/*
ReadFeatures takes a slice of bytes with a feature specification in YML and
returns the slice of features and the class feature parsed from it or an error.

The YML is expected to be an object containing a features property. The value
for this should be an object with a property for each feature with its name and
either a string value of 'continuous' (or 'numeric', 'real', 'integer') for
continuous features or a list of valid values for nominal features. Features
get their ordinals in declaration order. An optional class property names the
nominal feature to predict, the last declared feature being used otherwise.
The class is not part of the returned feature slice.
*/
func ReadFeatures(md []byte) ([]feature.Feature, *feature.ClassFeature, error) {
	metadata := struct {
		Features yaml.MapSlice
		Class    string
	}{}
	err := yaml.Unmarshal(md, &metadata)
	if err != nil {
		return nil, nil, errors.Wrap(err, "parsing yml features")
	}
	if len(metadata.Features) == 0 {
		return nil, nil, errors.New("metadata file has no feature information")
	}
	className := metadata.Class
	if className == "" {
		className = fmt.Sprintf("%v", metadata.Features[len(metadata.Features)-1].Key)
	}
	var class *feature.ClassFeature
	features := []feature.Feature{}
	for _, item := range metadata.Features {
		fn := fmt.Sprintf("%v", item.Key)
		switch values := item.Value.(type) {
		case string:
			if fn == className {
				return nil, nil, errors.Errorf("class feature %s must be nominal", fn)
			}
			if !isContinuousDeclaration(values) {
				return nil, nil, errors.Errorf("invalid feature declaration %q for feature %s", values, fn)
			}
			features = append(features, feature.NewContinuousFeature(len(features), fn))
		case []interface{}:
			stringVs := []string{}
			for _, v := range values {
				stringVs = append(stringVs, fmt.Sprintf("%v", v))
			}
			if fn == className {
				class = feature.NewClassFeature(fn, stringVs)
				continue
			}
			features = append(features, feature.NewNominalFeature(len(features), fn, stringVs))
		default:
			return nil, nil, errors.Errorf("invalid feature declaration of type %T for feature %s", item.Value, fn)
		}
	}
	if class == nil {
		return nil, nil, errors.Errorf("class feature %s is not defined", className)
	}
	return features, class, nil
}

/*
ReadFeaturesFromFile takes a filepath string, reads its contents and uses
ReadFeatures to parse it and return the parsed features or an error.
If the file indicated by the filepath cannot be opened for reading an error
will be returned.
*/
func ReadFeaturesFromFile(filepath string) ([]feature.Feature, *feature.ClassFeature, error) {
	md, err := ioutil.ReadFile(filepath)
	if err != nil {
		return nil, nil, errors.Wrapf(err, "reading features yml file %s", filepath)
	}
	features, class, err := ReadFeatures(md)
	if err != nil {
		err = errors.Wrapf(err, "parsing features yml file %s", filepath)
	}
	return features, class, err
}

func isContinuousDeclaration(s string) bool {
	switch strings.ToLower(s) {
	case "continuous", "numeric", "real", "integer":
		return true
	}
	return false
}
