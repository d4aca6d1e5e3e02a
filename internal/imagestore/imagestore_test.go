package imagestore

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestDiskStore_StoreAndRemove(t *testing.T) {
	store, err := NewDiskStore(t.TempDir())
	require.NoError(t, err)

	ref, err := store.Store("photo.PNG", strings.NewReader("fake image bytes"))
	require.NoError(t, err)
	require.True(t, strings.HasPrefix(ref, URLPrefix))
	require.True(t, strings.HasSuffix(ref, ".png"), "extension should be preserved lower-cased")

	name := strings.TrimPrefix(ref, URLPrefix)
	content, err := os.ReadFile(filepath.Join(store.Dir(), name))
	require.NoError(t, err)
	require.Equal(t, "fake image bytes", string(content))

	require.NoError(t, store.Remove(ref))
	_, err = os.Stat(filepath.Join(store.Dir(), name))
	require.ErrorIs(t, err, os.ErrNotExist)

	// removing an already-removed reference is not an error
	require.NoError(t, store.Remove(ref))
}

func TestDiskStore_RejectsUnsupportedFormats(t *testing.T) {
	store, err := NewDiskStore(t.TempDir())
	require.NoError(t, err)

	for _, filename := range []string{"malware.exe", "notes.txt", "archive.tar.gz", "noextension"} {
		_, err := store.Store(filename, strings.NewReader("x"))
		require.ErrorIs(t, err, ErrUnsupportedFormat, "filename %q", filename)
	}
}

func TestDiskStore_SanitizesTraversalAttempts(t *testing.T) {
	store, err := NewDiskStore(t.TempDir())
	require.NoError(t, err)

	ref, err := store.Store("../../etc/passwd.png", strings.NewReader("x"))
	require.NoError(t, err)

	// the stored file must live inside the upload dir under a fresh name
	name := strings.TrimPrefix(ref, URLPrefix)
	require.NotContains(t, name, "..")
	require.NotContains(t, name, "/")
	_, err = os.Stat(filepath.Join(store.Dir(), name))
	require.NoError(t, err)

	// a traversal-shaped reference never escapes the upload dir on removal
	require.Error(t, store.Remove("/uploads/.."))
}

func TestAllowed(t *testing.T) {
	require.True(t, Allowed("a.png"))
	require.True(t, Allowed("a.JPG"))
	require.True(t, Allowed("a.jpeg"))
	require.True(t, Allowed("a.gif"))
	require.False(t, Allowed("a.svg"))
	require.False(t, Allowed("a"))
}
