package label

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestRepository(t *testing.T) *Repository {
	t.Helper()
	root := t.TempDir()
	src := filepath.Join(root, "label_2")
	require.NoError(t, os.MkdirAll(src, 0o755))
	return NewRepository(src, filepath.Join(root, "Labels"), nil)
}

func TestRepository_LoadMissing(t *testing.T) {
	r := newTestRepository(t)
	boxes, err := r.Load("000001")
	require.ErrorIs(t, err, ErrLabelFileMissing)
	assert.Empty(t, boxes)
}

func TestRepository_LoadEmptyFile(t *testing.T) {
	r := newTestRepository(t)
	require.NoError(t, os.WriteFile(r.SourcePath("000001"), nil, 0o644))
	boxes, err := r.Load("000001")
	require.NoError(t, err)
	assert.NotNil(t, boxes)
	assert.Empty(t, boxes)
}

func TestRepository_LoadParseErrorNamesFile(t *testing.T) {
	r := newTestRepository(t)
	require.NoError(t, os.WriteFile(r.SourcePath("bad"), []byte("Car 0 0 0 1 1 2 2 1 1 1 0 0 0 zz\n"), 0o644))
	_, err := r.Load("bad")
	require.ErrorIs(t, err, ErrLabelParse)
	assert.Contains(t, err.Error(), "bad.txt")
}

func TestRepository_AppendBoxDuplicates(t *testing.T) {
	r := newTestRepository(t)
	require.NoError(t, os.WriteFile(r.SourcePath("k"), []byte(carLine+"\n"), 0o644))
	boxes, err := r.Load("k")
	require.NoError(t, err)
	require.Len(t, boxes, 1)

	// Output dir does not exist yet; AppendBox creates it.
	require.NoError(t, r.AppendBox("k", boxes[0]))
	require.NoError(t, r.AppendBox("k", boxes[0]))

	data, err := os.ReadFile(r.OutputPath("k"))
	require.NoError(t, err)
	want := "Car 0 0 0 10 20 110 220 1 1 1 0 0 0 0.1\n"
	assert.Equal(t, want+want, string(data))
}

func TestRepository_AppendBoxIOError(t *testing.T) {
	r := newTestRepository(t)
	// A regular file where the output directory should be.
	require.NoError(t, os.WriteFile(r.OutputDir, []byte("x"), 0o644))
	err := r.AppendBox("k", BoundingBox{Type: "Car"})
	require.ErrorIs(t, err, ErrIO)
}
