package whisper

import (
	"os"

	"golang.org/x/sys/unix"
)

// AutoFlush controls whether Create and Update issue an fsync before
// closing the file. Read without synchronization, like the reference
// implementation's process-wide switch; flip it once at startup.
var AutoFlush = false

// CacheHeaders enables the process-wide header cache (see cache.go).
// Read without synchronization, same discipline as AutoFlush.
var CacheHeaders = false

// lockShared and lockExclusive implement the file's share discipline:
// Info/Fetch take a shared lock, which any number of readers can hold
// at once; Update takes an exclusive lock, which waits until no other
// lock is held. Create opens with O_EXCL, so no other handle can exist
// yet, and also takes the exclusive lock.
func lockShared(f *os.File) error {
	return unix.Flock(int(f.Fd()), unix.LOCK_SH)
}

func lockExclusive(f *os.File) error {
	return unix.Flock(int(f.Fd()), unix.LOCK_EX)
}

func unlock(f *os.File) error {
	return unix.Flock(int(f.Fd()), unix.LOCK_UN)
}

func maybeSync(f *os.File) error {
	if !AutoFlush {
		return nil
	}
	return f.Sync()
}
