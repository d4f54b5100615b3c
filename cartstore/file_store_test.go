package cartstore

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"

	"github.com/take-two/storefront/models"
)

func TestFileStoreRoundTrip(t *testing.T) {
	ctx := context.Background()
	store := NewFileStore(t.TempDir(), "session-1", zap.NewNop())

	items := []models.LineItem{
		{ID: 1, Name: "Hoodie", Price: 500, Image: "/img/hoodie.png", Size: "M", Color: "Black", Quantity: 2},
		{ID: 2, Name: "Shirt", Price: 99.5, Image: "/img/shirt.png", Size: "L", Color: "Red", Quantity: 1},
	}

	assert.NoError(t, store.Save(ctx, items))
	assert.Equal(t, items, store.Load(ctx))
}

func TestFileStoreMissingSlot(t *testing.T) {
	store := NewFileStore(t.TempDir(), "never-saved", zap.NewNop())
	items := store.Load(context.Background())
	assert.NotNil(t, items)
	assert.Empty(t, items)
}

func TestFileStoreMalformedSlot(t *testing.T) {
	dir := t.TempDir()
	assert.NoError(t, os.WriteFile(filepath.Join(dir, "broken.json"), []byte("{not json"), 0o644))

	store := NewFileStore(dir, "broken", zap.NewNop())
	items := store.Load(context.Background())
	assert.NotNil(t, items)
	assert.Empty(t, items)
}

func TestFileStoreSaveOverwrites(t *testing.T) {
	ctx := context.Background()
	store := NewFileStore(t.TempDir(), "session-2", zap.NewNop())

	assert.NoError(t, store.Save(ctx, []models.LineItem{
		{ID: 1, Name: "A", Size: "S", Color: "Red", Quantity: 1},
		{ID: 2, Name: "B", Size: "S", Color: "Red", Quantity: 1},
	}))
	assert.NoError(t, store.Save(ctx, []models.LineItem{
		{ID: 2, Name: "B", Size: "S", Color: "Red", Quantity: 1},
	}))

	items := store.Load(ctx)
	assert.Len(t, items, 1)
	assert.Equal(t, "B", items[0].Name)
}

func TestFileStoreEmptySnapshot(t *testing.T) {
	ctx := context.Background()
	store := NewFileStore(t.TempDir(), "session-3", zap.NewNop())

	assert.NoError(t, store.Save(ctx, []models.LineItem{{ID: 1, Name: "A", Size: "S", Color: "Red", Quantity: 1}}))
	assert.NoError(t, store.Save(ctx, []models.LineItem{}))
	assert.Empty(t, store.Load(ctx))
}
