package debug

import (
	"log/slog"
	"runtime"
)

// logMemStats emits one memstats record with the platform's native memory
// figure attached. Decoded images dominate the heap, so heap_alloc tracks the
// image cache.
func logMemStats(logger *slog.Logger, native slog.Attr) {
	var ms runtime.MemStats
	runtime.ReadMemStats(&ms)
	logger.Info("memstats",
		slog.Int("goroutines", runtime.NumGoroutine()),
		slog.Uint64("heap_alloc", ms.HeapAlloc),
		slog.Uint64("heap_inuse", ms.HeapInuse),
		slog.Uint64("heap_idle", ms.HeapIdle),
		slog.Uint64("heap_sys", ms.HeapSys),
		slog.Uint64("next_gc", ms.NextGC),
		native,
		slog.Uint64("num_gc", uint64(ms.NumGC)),
	)
}
