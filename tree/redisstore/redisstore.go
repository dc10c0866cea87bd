/*
Package redisstore provides a tree.NodeStore backed by a redis DB, where every
node is kept encoded under a key made of a prefix and its ID.
*/
package redisstore

import (
	"context"
	"fmt"

	"github.com/pbanos/id3/tree"
	"github.com/pkg/errors"
	"gopkg.in/redis.v5"
)

/*
NodeEncodeDecoder is an interface for objects
that allow encoding nodes into slices of
bytes and decoding them back to nodes.
*/
type NodeEncodeDecoder interface {
	Encode(*tree.Node) ([]byte, error)
	Decode([]byte) (*tree.Node, error)
}

type redisStore struct {
	rc      *redis.Client
	prefix  string
	nencdec NodeEncodeDecoder
}

/*
New builds a tree.NodeStore backed by the redis DB of the given client,
storing nodes under keys with the given prefix encoded with the given
NodeEncodeDecoder. IDs for new nodes come from a counter kept under the
prefix too. Closing the store closes the client.

Redis operations cannot be cancelled once started: the context is only
checked before issuing them.
*/
func New(rc *redis.Client, prefix string, nencdec NodeEncodeDecoder) tree.NodeStore {
	return &redisStore{rc, prefix, nencdec}
}

func (rs *redisStore) Create(ctx context.Context, n *tree.Node) error {
	var ok bool
	for !ok {
		if err := ctx.Err(); err != nil {
			return err
		}
		id, err := rs.rc.Incr(rs.keyFor("nextID")).Result()
		if err != nil {
			return errors.Wrap(err, "creating node in redis: obtaining id")
		}
		n.ID = fmt.Sprintf("%d", id)
		data, err := rs.nencdec.Encode(n)
		if err != nil {
			return errors.Wrap(err, "creating node: encoding node")
		}
		ok, err = rs.rc.SetNX(rs.nodeKeyFor(n.ID), data, 0).Result()
		if err != nil {
			return errors.Wrap(err, "creating node in redis")
		}
	}
	return nil
}

func (rs *redisStore) Get(ctx context.Context, id string) (*tree.Node, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	data, err := rs.rc.Get(rs.nodeKeyFor(id)).Result()
	if err == redis.Nil {
		return nil, nil
	}
	if err != nil {
		return nil, errors.Wrapf(err, "retrieving node %q", id)
	}
	n, err := rs.nencdec.Decode([]byte(data))
	if err != nil {
		return nil, errors.Wrapf(err, "retrieving node %q: decoding %q", id, data)
	}
	return n, nil
}

func (rs *redisStore) Store(ctx context.Context, n *tree.Node) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	redisID := rs.nodeKeyFor(n.ID)
	data, err := rs.nencdec.Encode(n)
	if err != nil {
		return errors.Wrapf(err, "storing node %q: encoding node", redisID)
	}
	_, err = rs.rc.Set(redisID, data, 0).Result()
	if err != nil {
		return errors.Wrapf(err, "storing node %q in redis", redisID)
	}
	return nil
}

func (rs *redisStore) Delete(ctx context.Context, n *tree.Node) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	redisID := rs.nodeKeyFor(n.ID)
	_, err := rs.rc.Del(redisID).Result()
	if err != nil {
		return errors.Wrapf(err, "deleting node %q from redis", redisID)
	}
	return nil
}

func (rs *redisStore) Close(ctx context.Context) error {
	return rs.rc.Close()
}

func (rs *redisStore) keyFor(name string) string {
	return fmt.Sprintf("%s:%s", rs.prefix, name)
}

func (rs *redisStore) nodeKeyFor(id string) string {
	return rs.keyFor("node:" + id)
}
