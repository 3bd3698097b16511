package gviz

import (
	"context"
	"testing"

	"github.com/dgraph-io/badger/v4"
	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"
)

func TestSnapshotCache(t *testing.T) {
	db, err := badger.Open(badger.DefaultOptions("").WithInMemory(true).WithLogger(nil))
	require.NoError(t, err)
	defer db.Close()

	cache := &snapshotCache{db: db}
	ctx := context.Background()

	_, err = cache.get(ctx, "grid:1:0")
	require.ErrorIs(t, err, errSnapshotNotFound)

	cells := [][]string{{"a", "b"}, {"c", ""}}
	require.NoError(t, cache.set(ctx, "grid:1:0", cells))

	got, err := cache.get(ctx, "grid:1:0")
	require.NoError(t, err)
	if diff := cmp.Diff(cells, got); diff != "" {
		t.Fatal(diff)
	}

	// keys are scoped per cell mode
	_, err = cache.get(ctx, "grid:1:1")
	require.ErrorIs(t, err, errSnapshotNotFound)
}
