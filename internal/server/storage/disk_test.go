package storage

import (
	"context"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/dmitrijs2005/reportkeeper/internal/common"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewDiskStore_RequiresPath(t *testing.T) {
	_, err := NewDiskStore("  ")
	require.Error(t, err)
}

func TestDiskStore_SaveOpenExistsDelete(t *testing.T) {
	ctx := context.Background()
	root := t.TempDir()
	s, err := NewDiskStore(root)
	require.NoError(t, err)

	ref := "reports/1/2024/01/02/id/r.txt"
	require.NoError(t, s.Save(ctx, ref, strings.NewReader("hello"), 5))

	b, err := os.ReadFile(filepath.Join(root, "reports", "1", "2024", "01", "02", "id", "r.txt"))
	require.NoError(t, err)
	assert.Equal(t, "hello", string(b))

	ok, err := s.Exists(ctx, ref)
	require.NoError(t, err)
	assert.True(t, ok)

	rc, err := s.Open(ctx, ref)
	require.NoError(t, err)
	got, err := io.ReadAll(rc)
	require.NoError(t, err)
	require.NoError(t, rc.Close())
	assert.Equal(t, "hello", string(got))

	require.NoError(t, s.Delete(ctx, ref))

	ok, err = s.Exists(ctx, ref)
	require.NoError(t, err)
	assert.False(t, ok)

	// second delete of a missing artifact is fine
	require.NoError(t, s.Delete(ctx, ref))

	_, err = s.Open(ctx, ref)
	assert.ErrorIs(t, err, common.ErrorArtifactMissing)
}

type failingReader struct{}

func (failingReader) Read([]byte) (int, error) { return 0, io.ErrUnexpectedEOF }

func TestDiskStore_SaveFailureLeavesNothing(t *testing.T) {
	ctx := context.Background()
	root := t.TempDir()
	s, err := NewDiskStore(root)
	require.NoError(t, err)

	err = s.Save(ctx, "a/b.txt", failingReader{}, -1)
	require.ErrorIs(t, err, common.ErrorIO)

	entries, err := os.ReadDir(filepath.Join(root, "a"))
	require.NoError(t, err)
	assert.Empty(t, entries)
}

func TestDiskStore_RejectsEscapingRefs(t *testing.T) {
	ctx := context.Background()
	s, err := NewDiskStore(t.TempDir())
	require.NoError(t, err)

	err = s.Save(ctx, "../outside.txt", strings.NewReader("x"), 1)
	assert.ErrorIs(t, err, common.ErrorIO)

	_, err = s.Open(ctx, "/etc/passwd")
	assert.ErrorIs(t, err, common.ErrorIO)
}
