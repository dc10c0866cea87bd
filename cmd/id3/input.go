package main

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/pbanos/id3"
	"github.com/pbanos/id3/dataset"
	"github.com/pbanos/id3/dataset/arff"
	"github.com/pbanos/id3/dataset/csv"
	"github.com/pbanos/id3/dataset/mongodataset"
	"github.com/pbanos/id3/dataset/sqldataset"
	"github.com/pbanos/id3/dataset/sqldataset/pgadapter"
	"github.com/pbanos/id3/dataset/sqldataset/sqlite3adapter"
	"github.com/pbanos/id3/feature"
	"github.com/pbanos/id3/feature/yaml"
	"github.com/pbanos/id3/tree"
	"github.com/pbanos/id3/tree/json"
	"github.com/pbanos/id3/tree/redisstore"
	mgo "gopkg.in/mgo.v2"
	"gopkg.in/redis.v5"
)

/*
readDataset reads the dataset at the given input, which may be a PostgreSQL
or MongoDB URL, the path to an SQLite3 (.db), CSV (.csv) or ARFF file, or ""
for STDIN (read as CSV if metadata is given, as ARFF otherwise). All inputs
but ARFF need the metadata flag.
*/
func (rcc *rootCmdConfig) readDataset(ctx context.Context, input string) (*dataset.Dataset, error) {
	switch {
	case isPostgreSQLURL(input):
		features, class, err := rcc.metadata()
		if err != nil {
			return nil, err
		}
		rcc.Logf("Reading table %s from PostgreSQL DB...", rcc.table)
		a, err := pgadapter.New(input)
		if err != nil {
			return nil, err
		}
		defer a.Close()
		return sqldataset.Read(ctx, a, rcc.table, features, class)
	case isMongoDBURL(input):
		features, class, err := rcc.metadata()
		if err != nil {
			return nil, err
		}
		rcc.Logf("Reading collection %s from MongoDB...", rcc.table)
		session, err := mgo.Dial(input)
		if err != nil {
			return nil, fmt.Errorf("connecting to MongoDB: %v", err)
		}
		defer session.Close()
		return mongodataset.Read(ctx, session, rcc.table, features, class)
	case strings.HasSuffix(input, ".db"):
		features, class, err := rcc.metadata()
		if err != nil {
			return nil, err
		}
		rcc.Logf("Reading table %s from SQLite3 file %s...", rcc.table, input)
		a, err := sqlite3adapter.New(input)
		if err != nil {
			return nil, err
		}
		defer a.Close()
		return sqldataset.Read(ctx, a, rcc.table, features, class)
	case strings.HasSuffix(input, ".csv"), input == "" && rcc.metadataInput != "":
		features, class, err := rcc.metadata()
		if err != nil {
			return nil, err
		}
		rcc.Logf("Reading CSV from %s...", inputName(input))
		return csv.ReadFile(input, features, class)
	case input == "":
		rcc.Logf("Reading ARFF from STDIN...")
		return arff.Read(os.Stdin)
	}
	rcc.Logf("Reading ARFF file %s...", input)
	return arff.ReadFile(input)
}

/*
readTestSet reads the dataset at the given input like readDataset and
checks its instances fit the given training features.
*/
func (rcc *rootCmdConfig) readTestSet(ctx context.Context, input string, features []feature.Feature) (*dataset.Dataset, error) {
	d, err := rcc.readDataset(ctx, input)
	if err != nil {
		return nil, err
	}
	for i, instance := range d.Instances() {
		if err = dataset.Validate(features, instance, i+1); err != nil {
			return nil, err
		}
	}
	return d, nil
}

/*
writeDataset writes the dataset onto the given output, which may be a
PostgreSQL or MongoDB URL, the path to an SQLite3 (.db) or CSV file, or ""
for STDOUT as CSV.
*/
func (rcc *rootCmdConfig) writeDataset(ctx context.Context, output string, d *dataset.Dataset) error {
	switch {
	case isPostgreSQLURL(output):
		a, err := pgadapter.New(output)
		if err != nil {
			return err
		}
		defer a.Close()
		n, err := sqldataset.Write(ctx, a, rcc.table, d)
		rcc.Logf("%d instances written on table %s of PostgreSQL DB", n, rcc.table)
		return err
	case isMongoDBURL(output):
		session, err := mgo.Dial(output)
		if err != nil {
			return fmt.Errorf("connecting to MongoDB: %v", err)
		}
		defer session.Close()
		n, err := mongodataset.Write(ctx, session, rcc.table, d)
		rcc.Logf("%d instances written on collection %s of MongoDB", n, rcc.table)
		return err
	case strings.HasSuffix(output, ".db"):
		a, err := sqlite3adapter.New(output)
		if err != nil {
			return err
		}
		defer a.Close()
		n, err := sqldataset.Write(ctx, a, rcc.table, d)
		rcc.Logf("%d instances written on table %s of SQLite3 file %s", n, rcc.table, output)
		return err
	case output == "":
		return csv.Write(os.Stdout, d)
	}
	f, err := os.Create(output)
	if err != nil {
		return err
	}
	err = csv.Write(f, d)
	if err != nil {
		f.Close()
		return err
	}
	rcc.Logf("%d instances written on CSV file %s", d.Count(), output)
	return f.Close()
}

func (rcc *rootCmdConfig) metadata() ([]feature.Feature, *feature.ClassFeature, error) {
	if rcc.metadataInput == "" {
		return nil, nil, fmt.Errorf("required metadata flag was not set")
	}
	rcc.Logf("Reading features from metadata at %s...", rcc.metadataInput)
	return yaml.ReadFeaturesFromFile(rcc.metadataInput)
}

/*
schema returns the features and class defined on the metadata flag or, if it
is not set, the ones of the dataset at the given input.
*/
func (rcc *rootCmdConfig) schema(ctx context.Context, input string) ([]feature.Feature, *feature.ClassFeature, error) {
	if rcc.metadataInput != "" || input == "" {
		return rcc.metadata()
	}
	d, err := rcc.readDataset(ctx, input)
	if err != nil {
		return nil, nil, err
	}
	return d.Features(), d.Class(), nil
}

/*
nodeStore returns a redis backed tree.NodeStore if the redis-addr flag is
set, or a memory one otherwise.
*/
func (rcc *rootCmdConfig) nodeStore(features []feature.Feature) tree.NodeStore {
	if rcc.redisAddr == "" {
		return tree.NewMemoryNodeStore()
	}
	rcc.Logf("Storing nodes on redis at %s with prefix %s", rcc.redisAddr, rcc.redisPrefix)
	rc := redis.NewClient(&redis.Options{
		Addr:     rcc.redisAddr,
		Password: rcc.redisPassword,
		DB:       rcc.redisDB,
	})
	return redisstore.New(rc, rcc.redisPrefix, json.NewNodeEncodeDecoder(features))
}

func (rcc *rootCmdConfig) grow(ctx context.Context, d *dataset.Dataset, ps *id3.PruningStrategy) (*tree.Tree, error) {
	rcc.Logf("Growing tree from a set with %d instances and %d features to predict %s...", d.Count(), len(d.Features()), d.Class().Name())
	t, err := id3.Grow(ctx, d, ps, rcc.nodeStore(d.Features()), logger(rcc.verbose))
	if err != nil {
		return nil, fmt.Errorf("growing the tree: %v", err)
	}
	rcc.Logf("Done")
	return t, nil
}

/*
loadTree reads the tree in JSON at the given path onto memory or, if the
redis-addr flag is set and the path is "", uses the tree already on redis
with the given root node ID.
*/
func (rcc *rootCmdConfig) loadTree(ctx context.Context, path, rootID string, features []feature.Feature, class *feature.ClassFeature) (*tree.Tree, error) {
	if path == "" {
		if rcc.redisAddr == "" || rootID == "" {
			return nil, fmt.Errorf("either the tree flag or the redis-addr and root-id flags must be set")
		}
		return tree.New(rootID, rcc.nodeStore(features), class), nil
	}
	rcc.Logf("Reading tree in JSON from %s...", path)
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("reading tree in JSON from %s: %v", path, err)
	}
	defer f.Close()
	t := tree.New("", tree.NewMemoryNodeStore(), class)
	err = json.ReadJSONTree(ctx, t, json.NewNodeEncodeDecoder(features), class, f)
	if err != nil {
		return nil, fmt.Errorf("parsing tree in JSON from %s: %v", path, err)
	}
	return t, nil
}

func outputTree(ctx context.Context, outputPath string, t *tree.Tree, features []feature.Feature) error {
	f := os.Stdout
	if outputPath != "" {
		var err error
		f, err = os.Create(outputPath)
		if err != nil {
			return err
		}
		defer f.Close()
	}
	return json.WriteJSONTree(ctx, t, json.NewNodeEncodeDecoder(features), f)
}

func isPostgreSQLURL(s string) bool {
	return strings.HasPrefix(s, "postgresql://") || strings.HasPrefix(s, "postgres://")
}

func isMongoDBURL(s string) bool {
	return strings.HasPrefix(s, "mongodb://")
}

func inputName(input string) string {
	if input == "" {
		return "STDIN"
	}
	return input
}
