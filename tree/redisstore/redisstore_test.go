package redisstore

import (
	"context"
	"fmt"
	"os"
	"testing"
	"time"

	"github.com/pbanos/id3/feature"
	"github.com/pbanos/id3/tree"
	"github.com/pbanos/id3/tree/json"
	"github.com/stretchr/testify/require"
	"gopkg.in/redis.v5"
)

// These tests need a redis server, whose address must be set on the
// ID3_TEST_REDIS_ADDR environment variable.
func testStore(t *testing.T) (tree.NodeStore, *redis.Client, string) {
	addr := os.Getenv("ID3_TEST_REDIS_ADDR")
	if addr == "" {
		t.Skip("ID3_TEST_REDIS_ADDR not set")
	}
	rc := redis.NewClient(&redis.Options{Addr: addr})
	require.NoError(t, rc.Ping().Err())
	prefix := fmt.Sprintf("id3test%d", time.Now().UnixNano())
	features := []feature.Feature{feature.NewNominalFeature(0, "outlook", []string{"sunny", "rainy"})}
	return New(rc, prefix, json.NewNodeEncodeDecoder(features)), rc, prefix
}

func TestRedisStore(t *testing.T) {
	ctx := context.Background()
	ns, rc, prefix := testStore(t)
	defer func() {
		keys, err := rc.Keys(prefix + ":*").Result()
		require.NoError(t, err)
		if len(keys) > 0 {
			require.NoError(t, rc.Del(keys...).Err())
		}
		require.NoError(t, ns.Close(ctx))
	}()

	root := &tree.Node{ClassCounts: []int{1, 1}}
	require.NoError(t, ns.Create(ctx, root))
	leaf := &tree.Node{ParentID: root.ID, Level: 1, ClassCounts: []int{1, 0}, Label: "yes"}
	require.NoError(t, ns.Create(ctx, leaf))
	require.NotEqual(t, root.ID, leaf.ID)

	root.SubtreeIDs = []string{leaf.ID}
	require.NoError(t, ns.Store(ctx, root))
	n, err := ns.Get(ctx, root.ID)
	require.NoError(t, err)
	require.Equal(t, root, n)

	require.NoError(t, ns.Delete(ctx, leaf))
	n, err = ns.Get(ctx, leaf.ID)
	require.NoError(t, err)
	require.Nil(t, n)
}
