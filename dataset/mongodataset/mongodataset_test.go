package mongodataset

import (
	"context"
	"fmt"
	"os"
	"testing"
	"time"

	"github.com/pbanos/id3/dataset"
	"github.com/pbanos/id3/feature"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/require"
	mgo "gopkg.in/mgo.v2"
	"gopkg.in/mgo.v2/bson"
)

var (
	outlook  = feature.NewNominalFeature(0, "outlook", []string{"sunny", "overcast", "rainy"})
	humidity = feature.NewContinuousFeature(1, "humidity")
	features = []feature.Feature{outlook, humidity}
	play     = feature.NewClassFeature("play", []string{"yes", "no"})
)

func TestInstanceFrom(t *testing.T) {
	instance, err := instanceFrom(bson.M{"_id": 1, "outlook": "sunny", "humidity": 85.5, "play": "no"}, 1, features, play)
	require.NoError(t, err)
	require.Equal(t, dataset.Instance{"sunny", "85.5", "no"}, instance)

	instance, err = instanceFrom(bson.M{"outlook": "rainy", "humidity": 70, "play": "yes"}, 1, features, play)
	require.NoError(t, err)
	require.Equal(t, dataset.Instance{"rainy", "70", "yes"}, instance)

	var dfe *dataset.DataFormatError
	_, err = instanceFrom(bson.M{"outlook": "rainy", "play": "yes"}, 3, features, play)
	require.True(t, errors.As(err, &dfe))
	require.Equal(t, 3, dfe.Row)
	require.Equal(t, "humidity", dfe.Feature)

	_, err = instanceFrom(bson.M{"outlook": "rainy", "humidity": "high", "play": "yes"}, 4, features, play)
	require.True(t, errors.As(err, &dfe))
	require.Equal(t, 4, dfe.Row)

	_, err = instanceFrom(bson.M{"outlook": []string{"rainy"}, "humidity": 1.0, "play": "yes"}, 5, features, play)
	require.True(t, errors.As(err, &dfe))
}

func TestValidNames(t *testing.T) {
	require.NoError(t, validNames(features, play))
	require.Error(t, validNames([]feature.Feature{feature.NewContinuousFeature(0, "_id")}, play))
	require.Error(t, validNames(features, feature.NewClassFeature("play.it", []string{"yes", "no"})))
}

// TestWriteRead needs a MongoDB server, whose URL must be set on the
// ID3_TEST_MONGO_URL environment variable.
func TestWriteRead(t *testing.T) {
	url := os.Getenv("ID3_TEST_MONGO_URL")
	if url == "" {
		t.Skip("ID3_TEST_MONGO_URL not set")
	}
	ctx := context.Background()
	session, err := mgo.Dial(url)
	require.NoError(t, err)
	defer session.Close()
	collection := fmt.Sprintf("id3test%d", time.Now().UnixNano())
	defer session.DB("").C(collection).DropCollection()

	d, err := dataset.New(features, play, []dataset.Instance{
		{"sunny", "85.5", "no"},
		{"overcast", "70", "yes"},
	})
	require.NoError(t, err)
	n, err := Write(ctx, session, collection, d)
	require.NoError(t, err)
	require.Equal(t, 2, n)

	read, err := Read(ctx, session, collection, features, play)
	require.NoError(t, err)
	require.ElementsMatch(t, d.Instances(), read.Instances())
}
