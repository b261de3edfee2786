package whisper

import (
	"os"
	"sync"
)

// headerCache is a process-wide path -> *Header memoization. It never
// invalidates entries automatically: a Whisper file's header is
// immutable once created, and a file recreated with a different schema
// while cached will make readers see the stale header until
// EvictHeaderCache is called explicitly.
var headerCache sync.Map

// readHeaderCached reads the header without touching the cache when
// CacheHeaders is disabled. When it is enabled, it returns the cached
// header for path if present, otherwise reads, caches, and returns it.
// Concurrent insertion is safe via sync.Map's LoadOrStore.
func readHeaderCached(f *os.File, path string) (*Header, error) {
	if !CacheHeaders {
		return readHeader(f, path)
	}

	if v, ok := headerCache.Load(path); ok {
		return v.(*Header), nil
	}

	h, err := readHeader(f, path)
	if err != nil {
		return nil, err
	}

	actual, _ := headerCache.LoadOrStore(path, h)
	return actual.(*Header), nil
}

// EvictHeaderCache removes a path's cached header, if present. The
// header cache has no automatic invalidation; this is the sole
// explicit escape hatch a caller has after recreating a file at path.
func EvictHeaderCache(path string) {
	headerCache.Delete(path)
}
