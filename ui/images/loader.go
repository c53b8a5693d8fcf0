package images

import (
	"fmt"
	"image"
	"log/slog"

	"github.com/disintegration/imaging"
	lru "github.com/hashicorp/golang-lru/v2"
)

// Loader decodes images from disk and keeps the most recently used ones so
// stepping back and forth does not decode the same file twice.
type Loader struct {
	cache  *lru.Cache[string, image.Image]
	logger *slog.Logger
}

// NewLoader returns a Loader caching up to size images. size <= 0 disables the cache.
func NewLoader(size int, logger *slog.Logger) *Loader {
	l := &Loader{logger: logger}
	if size > 0 {
		c, err := lru.New[string, image.Image](size)
		if err == nil {
			l.cache = c
		}
	}
	return l
}

// Decode returns the native-resolution image at path. EXIF orientation is applied.
func (l *Loader) Decode(path string) (image.Image, error) {
	if l.cache != nil {
		if img, ok := l.cache.Get(path); ok {
			return img, nil
		}
	}
	img, err := imaging.Open(path, imaging.AutoOrientation(true))
	if err != nil {
		return nil, fmt.Errorf("decode %s: %w", path, err)
	}
	if l.cache != nil {
		l.cache.Add(path, img)
	}
	if l.logger != nil {
		b := img.Bounds()
		l.logger.Debug("image decoded", "path", path, "width", b.Dx(), "height", b.Dy())
	}
	return img, nil
}

// Cached reports how many decoded images are held.
func (l *Loader) Cached() int {
	if l.cache == nil {
		return 0
	}
	return l.cache.Len()
}
