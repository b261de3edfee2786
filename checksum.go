package whisper

import (
	"os"

	"github.com/jdaigle/whisper/internal/checksum"
)

func toChecksumArchives(archives []ArchiveInfo) []checksum.Archive {
	out := make([]checksum.Archive, len(archives))
	for i, a := range archives {
		out[i] = checksum.Archive{Offset: a.Offset, Size: a.Size()}
	}
	return out
}

func writeChecksumSidecar(path string, f *os.File, header *Header) error {
	return checksum.WriteSidecar(path, f, toChecksumArchives(header.Archives))
}

// VerifyChecksum recomputes each archive's xxhash64 digest and compares
// it against the ".xxh" sidecar written when the file was created with
// CreateOptions.Checksum. It returns the indices of archives whose
// digest no longer matches.
func VerifyChecksum(path string) ([]int, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	if err := lockShared(f); err != nil {
		return nil, err
	}
	defer unlock(f)

	header, err := readHeaderCached(f, path)
	if err != nil {
		return nil, err
	}

	return checksum.Verify(path, f, toChecksumArchives(header.Archives))
}
