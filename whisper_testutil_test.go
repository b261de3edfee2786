package whisper

import (
	"os"
	"path/filepath"
	"testing"
)

// openScratchFile creates an empty, pre-sized file backing a single
// archive's ring for the low-level addressing tests in ring_test.go.
func openScratchFile(t *testing.T, dir string) *os.File {
	t.Helper()
	path := filepath.Join(dir, "scratch")
	f, err := os.OpenFile(path, os.O_RDWR|os.O_CREATE, 0644)
	if err != nil {
		t.Fatalf("failed to create scratch file: %s", err)
	}
	if err := f.Truncate(1 << 16); err != nil {
		t.Fatalf("failed to size scratch file: %s", err)
	}
	return f
}

func writeArchivePoints(t *testing.T, f *os.File, arc ArchiveInfo, points []Point) {
	t.Helper()
	for i, p := range points {
		off := arc.Offset + uint64(i)*PointSize
		if _, err := f.WriteAt(p.bytes(), int64(off)); err != nil {
			t.Fatalf("failed to write point %d: %s", i, err)
		}
	}
}
