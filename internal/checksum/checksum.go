// Package checksum computes and verifies xxhash64 digests over a
// Whisper archive's raw ring bytes. This is additive metadata that
// lives in a sidecar file next to the .wsp file; it never touches the
// byte-exact on-disk format the core engine reads and writes.
package checksum

import (
	"encoding/binary"
	"fmt"
	"os"

	"github.com/cespare/xxhash/v2"
)

// Archive describes one archive's ring extent within a file, enough
// to read and digest its raw bytes.
type Archive struct {
	Offset uint64
	Size   uint64
}

// Digest computes the xxhash64 digest of one archive's raw ring bytes.
func Digest(f *os.File, a Archive) (uint64, error) {
	buf := make([]byte, a.Size)
	if _, err := f.ReadAt(buf, int64(a.Offset)); err != nil {
		return 0, err
	}
	return xxhash.Sum64(buf), nil
}

func sidecarPath(path string) string { return path + ".xxh" }

// WriteSidecar writes one big-endian uint64 digest per archive, in
// archive order, to path+".xxh".
func WriteSidecar(path string, f *os.File, archives []Archive) error {
	buf := make([]byte, 8*len(archives))
	for i, a := range archives {
		digest, err := Digest(f, a)
		if err != nil {
			return err
		}
		binary.BigEndian.PutUint64(buf[i*8:i*8+8], digest)
	}
	return os.WriteFile(sidecarPath(path), buf, 0644)
}

// Verify recomputes each archive's digest and compares it against the
// sidecar written by WriteSidecar, returning the indices that mismatch.
func Verify(path string, f *os.File, archives []Archive) ([]int, error) {
	want, err := os.ReadFile(sidecarPath(path))
	if err != nil {
		return nil, err
	}
	if len(want) != 8*len(archives) {
		return nil, fmt.Errorf("sidecar %s has %d bytes, want %d for %d archives",
			sidecarPath(path), len(want), 8*len(archives), len(archives))
	}

	var mismatched []int
	for i, a := range archives {
		got, err := Digest(f, a)
		if err != nil {
			return nil, err
		}
		if binary.BigEndian.Uint64(want[i*8:i*8+8]) != got {
			mismatched = append(mismatched, i)
		}
	}
	return mismatched, nil
}
