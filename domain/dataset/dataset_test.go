package dataset

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func touch(t *testing.T, path string) {
	t.Helper()
	require.NoError(t, os.WriteFile(path, []byte("x"), 0o644))
}

func TestScanImages_FiltersAndSorts(t *testing.T) {
	dir := t.TempDir()
	for _, n := range []string{"b.jpg", "a.PNG", "c.jpeg", "notes.txt", "d.JPG", "e.gif"} {
		touch(t, filepath.Join(dir, n))
	}
	require.NoError(t, os.Mkdir(filepath.Join(dir, "sub.jpg"), 0o755))

	files, err := ScanImages(dir)
	require.NoError(t, err)
	assert.Equal(t, []string{
		filepath.Join(dir, "a.PNG"),
		filepath.Join(dir, "b.jpg"),
		filepath.Join(dir, "c.jpeg"),
		filepath.Join(dir, "d.JPG"),
	}, files)
}

func TestScanImages_MissingDir(t *testing.T) {
	_, err := ScanImages(filepath.Join(t.TempDir(), "missing"))
	require.Error(t, err)
}

func TestKey(t *testing.T) {
	assert.Equal(t, "000123", Key("/x/y/000123.jpg"))
	assert.Equal(t, "a.b", Key("a.b.png"))
}

func TestLayout_PathsUnderParent(t *testing.T) {
	root := t.TempDir()
	l := NewLayout(filepath.Join(root, "Rope3D") + string(filepath.Separator))
	assert.Equal(t, root, l.Base)
	assert.Equal(t, filepath.Join(root, "Questions", "k.txt"), l.QuestionPath("k"))
	assert.Equal(t, filepath.Join(root, "Answers", "k.txt"), l.AnswerPath("k"))

	require.NoError(t, l.EnsureDirs())
	for _, name := range []string{QuestionsDir, AnswersDir, LabelsDir} {
		fi, err := os.Stat(l.Dir(name))
		require.NoError(t, err)
		assert.True(t, fi.IsDir())
	}
}

func TestWriteFileAtomic_Overwrites(t *testing.T) {
	path := filepath.Join(t.TempDir(), "Questions", "k.txt")
	require.NoError(t, WriteFileAtomic(path, []byte("first question, rather long\n")))
	require.NoError(t, WriteFileAtomic(path, []byte("second\n")))
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "second\n", string(data))

	entries, err := os.ReadDir(filepath.Dir(path))
	require.NoError(t, err)
	assert.Len(t, entries, 1)
}
