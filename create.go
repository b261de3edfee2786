package whisper

import (
	"fmt"
	"io"
	"os"
)

// CreateOptions customizes Create. Every field has a documented
// zero-value default matching the reference implementation.
type CreateOptions struct {
	// XFilesFactor is the minimum fraction of known finer slots
	// required to propagate a coarser point. Defaults to 0.5.
	XFilesFactor float64
	// AggregationMethod picks how coarser points are derived.
	// Defaults to Average.
	AggregationMethod AggregationMethod
	// Sparse creates the data region as a hole instead of writing
	// zeros, relying on the filesystem to honor sparse allocation.
	Sparse bool
	// Checksum additionally writes an xxhash64 digest sidecar
	// (path+".xxh") covering each archive's ring contents, for the
	// optional integrity-verification tooling in cmd/wsp/verify.
	// This never alters the on-disk Whisper file itself.
	Checksum bool
}

// Create lays out a new Whisper file: header, archive index, and a
// zero-filled (or sparse) data region. It fails if path already
// exists. archives is validated and sorted ascending by precision;
// the caller's slice order is not preserved.
func Create(path string, archives []ArchiveSpec, opts *CreateOptions) error {
	if opts == nil {
		opts = &CreateOptions{}
	}
	xFilesFactor := opts.XFilesFactor
	if xFilesFactor == 0 {
		xFilesFactor = 0.5
	}
	aggregationMethod := opts.AggregationMethod
	if aggregationMethod == 0 {
		aggregationMethod = Average
	}

	sorted, err := ValidateArchiveList(archives)
	if err != nil {
		return err
	}
	copy(archives, sorted)

	f, err := os.OpenFile(path, os.O_RDWR|os.O_CREATE|os.O_EXCL, 0644)
	if err != nil {
		if os.IsExist(err) {
			return &ConfigurationError{Msg: fmt.Sprintf("%s already exists", path)}
		}
		return err
	}
	defer f.Close()

	if err := lockExclusive(f); err != nil {
		return err
	}
	defer unlock(f)

	header := &Header{
		AggregationMethod: aggregationMethod,
		XFilesFactor:      xFilesFactor,
	}
	header.Archives = make([]ArchiveInfo, len(sorted))

	offset := uint64(MetadataSize + ArchiveInfoSize*len(sorted))
	dataStart := offset
	for i, spec := range sorted {
		header.Archives[i] = ArchiveInfo{
			Offset:          offset,
			SecondsPerPoint: spec.SecondsPerPoint,
			Points:          spec.Points,
		}
		offset += header.Archives[i].Size()
		if r := header.Archives[i].Retention(); r > header.MaxRetention {
			header.MaxRetention = r
		}
	}
	totalSize := offset

	if err := writeHeader(f, header); err != nil {
		return err
	}

	if opts.Sparse {
		if _, err := f.Seek(int64(totalSize-1), io.SeekStart); err != nil {
			return err
		}
		if _, err := f.Write([]byte{0}); err != nil {
			return err
		}
	} else {
		if _, err := f.Seek(int64(dataStart), io.SeekStart); err != nil {
			return err
		}
		if err := zeroFill(f, totalSize-dataStart); err != nil {
			return err
		}
	}

	if err := maybeSync(f); err != nil {
		return err
	}

	if opts.Checksum {
		if err := writeChecksumSidecar(path, f, header); err != nil {
			return err
		}
	}

	return nil
}

const zeroFillChunk = 16 * 1024

func zeroFill(f *os.File, n uint64) error {
	buf := make([]byte, zeroFillChunk)
	for n > zeroFillChunk {
		if _, err := f.Write(buf); err != nil {
			return err
		}
		n -= zeroFillChunk
	}
	if _, err := f.Write(buf[:n]); err != nil {
		return err
	}
	return nil
}

// Info opens path read-only under a shared lock and returns its
// decoded header. The shared lock lets it run alongside other readers;
// it does not run while an Update or UpdateMany holds the exclusive
// lock.
func Info(path string) (*Header, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	if err := lockShared(f); err != nil {
		return nil, err
	}
	defer unlock(f)

	return readHeaderCached(f, path)
}
