//go:build unix

package debug

import (
	"log/slog"
	"time"

	"golang.org/x/sys/unix"
)

// StartMemLogger logs the peak resident set from getrusage with the Go heap
// stats every interval. Units follow the platform (KiB on Linux).
func StartMemLogger(interval time.Duration, logger *slog.Logger) {
	if interval <= 0 {
		interval = 2 * time.Second
	}
	go func() {
		ticker := time.NewTicker(interval)
		defer ticker.Stop()
		var rssErrLogged bool
		for range ticker.C {
			var ru unix.Rusage
			maxRSS := uint64(0)
			if err := unix.Getrusage(unix.RUSAGE_SELF, &ru); err == nil {
				maxRSS = uint64(ru.Maxrss)
			} else if !rssErrLogged {
				logger.Warn("memlog: getrusage failed", slog.String("err", err.Error()))
				rssErrLogged = true
			}
			logMemStats(logger, slog.Uint64("max_rss", maxRSS))
		}
	}()
}
