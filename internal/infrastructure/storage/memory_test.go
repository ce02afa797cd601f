package storage

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryStorage_Roundtrip(t *testing.T) {
	store := NewMemoryStorage()
	ctx := context.Background()

	url, err := store.Upload(ctx, "books/dune.pdf", []byte("pdf-bytes"), "application/pdf")
	require.NoError(t, err)
	assert.Equal(t, "memory://books/dune.pdf", url)

	data, ok := store.Get("books/dune.pdf")
	require.True(t, ok)
	assert.Equal(t, []byte("pdf-bytes"), data)
	assert.Equal(t, 1, store.Len())

	require.NoError(t, store.DeleteObject(ctx, "books/dune.pdf"))
	_, ok = store.Get("books/dune.pdf")
	assert.False(t, ok)
	assert.Equal(t, 0, store.Len())
}

func TestMemoryStorage_UploadCopiesData(t *testing.T) {
	store := NewMemoryStorage()
	ctx := context.Background()

	payload := []byte("original")
	_, err := store.Upload(ctx, "k", payload, "application/octet-stream")
	require.NoError(t, err)

	payload[0] = 'X'

	data, ok := store.Get("k")
	require.True(t, ok)
	assert.Equal(t, []byte("original"), data)
}

func TestMemoryStorage_DeleteMissingKey(t *testing.T) {
	store := NewMemoryStorage()
	assert.NoError(t, store.DeleteObject(context.Background(), "nope"))
}
