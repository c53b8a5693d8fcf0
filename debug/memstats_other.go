//go:build !unix && !windows

package debug

import (
	"log/slog"
	"time"
)

// StartMemLogger logs Go heap stats only; no native figure is available.
func StartMemLogger(interval time.Duration, logger *slog.Logger) {
	if interval <= 0 {
		interval = 2 * time.Second
	}
	go func() {
		ticker := time.NewTicker(interval)
		defer ticker.Stop()
		for range ticker.C {
			logMemStats(logger, slog.Uint64("rss", 0))
		}
	}()
}
