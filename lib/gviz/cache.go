package gviz

import (
	"bytes"
	"context"
	"encoding/gob"
	"errors"
	"time"

	"github.com/dgraph-io/badger/v4"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
)

var errSnapshotNotFound = errors.New("gviz: snapshot not found")

const snapshotTTL = time.Minute * 10

type snapshot struct {
	Cells     [][]string
	ExpiresAt int64
}

type snapshotCache struct {
	db *badger.DB
}

func (c *snapshotCache) get(ctx context.Context, key string) ([][]string, error) {
	_, span := tracer.Start(ctx, "cache.get")
	defer span.End()
	span.SetAttributes(attribute.String("cache_key", key))

	tx := c.db.NewTransaction(false)
	defer tx.Discard()

	item, err := tx.Get([]byte(key))
	if err == badger.ErrKeyNotFound {
		return nil, errSnapshotNotFound
	}
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "failed to read item from badger")
		return nil, err
	}
	serialized, err := item.ValueCopy(nil)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "failed to copy cached item")
		return nil, err
	}

	var cached snapshot
	err = gob.NewDecoder(bytes.NewBuffer(serialized)).Decode(&cached)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "failed to deserialize cached item")
		return nil, err
	}

	if time.Now().Unix() >= cached.ExpiresAt {
		return nil, errSnapshotNotFound
	}
	return cached.Cells, nil
}

func (c *snapshotCache) set(ctx context.Context, key string, cells [][]string) error {
	_, span := tracer.Start(ctx, "cache.set")
	defer span.End()
	span.SetAttributes(attribute.String("cache_key", key))

	var buf bytes.Buffer
	err := gob.NewEncoder(&buf).Encode(snapshot{
		Cells:     cells,
		ExpiresAt: time.Now().Add(snapshotTTL).Unix(),
	})
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "failed to serialize snapshot")
		return err
	}

	tx := c.db.NewTransaction(true)
	defer tx.Discard()
	err = tx.Set([]byte(key), buf.Bytes())
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "failed to write snapshot to badger")
		return err
	}
	return tx.Commit()
}
