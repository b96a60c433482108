package unit

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStorage_StoreAndRemove(t *testing.T) {
	store, err := NewStorage(t.TempDir())
	require.NoError(t, err)

	path, err := store.Store("kitchen.jpg", []byte("image bytes"))
	require.NoError(t, err)

	require.True(t, strings.HasPrefix(path, "/uploads/"))
	filename := strings.TrimPrefix(path, "/uploads/")

	// <16 hex chars>-<original name>
	parts := strings.SplitN(filename, "-", 2)
	require.Len(t, parts, 2)
	assert.Len(t, parts[0], 16)
	assert.Equal(t, "kitchen.jpg", parts[1])

	data, err := os.ReadFile(filepath.Join(store.Dir(), filename))
	require.NoError(t, err)
	assert.Equal(t, []byte("image bytes"), data)

	require.NoError(t, store.Remove(path))
	_, err = os.Stat(filepath.Join(store.Dir(), filename))
	assert.True(t, os.IsNotExist(err))
}

func TestStorage_SameNameDifferentContent(t *testing.T) {
	store, err := NewStorage(t.TempDir())
	require.NoError(t, err)

	first, err := store.Store("photo.jpg", []byte("one"))
	require.NoError(t, err)

	second, err := store.Store("photo.jpg", []byte("two"))
	require.NoError(t, err)

	assert.NotEqual(t, first, second)
}

func TestStorage_SanitizesFilename(t *testing.T) {
	store, err := NewStorage(t.TempDir())
	require.NoError(t, err)

	path, err := store.Store("../../etc/pass wd!.png", []byte("x"))
	require.NoError(t, err)

	filename := strings.TrimPrefix(path, "/uploads/")
	assert.NotContains(t, filename, "/")
	assert.NotContains(t, filename, " ")

	// The file lands inside the uploads dir, not above it.
	_, err = os.Stat(filepath.Join(store.Dir(), filename))
	require.NoError(t, err)
}

func TestSanitizeFilename(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{input: "kitchen.jpg", want: "kitchen.jpg"},
		{input: "a b.png", want: "a_b.png"},
		{input: "..", want: "file"},
		{input: "", want: "file"},
		{input: "über.png", want: "__ber.png"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, sanitizeFilename(tt.input), tt.input)
	}
}
