package settings

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStore_MissingFileYieldsDefaults(t *testing.T) {
	s := NewStore(filepath.Join(t.TempDir(), "nope", "settings.json"), nil)
	assert.Equal(t, Record{}, s.Load())
}

func TestStore_EmptyAndCorruptYieldDefaults(t *testing.T) {
	for _, body := range []string{"", "  \n", "{not json", `["a"]`} {
		path := filepath.Join(t.TempDir(), "settings.json")
		require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
		assert.Equal(t, Record{}, NewStore(path, nil).Load(), "body %q", body)
	}
}

func TestStore_SaveLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "cfg", "settings.json")
	s := NewStore(path, nil)
	rec := Record{DatasetRoot: "/data/Rope3D/label_2", ImageFolder: "/data/Rope3D/image_2", LastFileName: "1632_fa2sd4a11North151_420_1613716810_1613717418_1_obstacle"}
	require.NoError(t, s.Save(rec))
	assert.Equal(t, rec, s.Load())

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	for _, key := range []string{`"rope3d_path"`, `"image_folder"`, `"last_file_name"`} {
		assert.True(t, strings.Contains(string(data), key), "missing key %s", key)
	}
}

func TestDefaultPath(t *testing.T) {
	p := DefaultPath()
	assert.Equal(t, "settings.json", filepath.Base(p))
	assert.Equal(t, appDir, filepath.Base(filepath.Dir(p)))
}
