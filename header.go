package whisper

import (
	"fmt"
	"io"
	"os"
)

// Fixed sizes of the on-disk header per the file layout:
//
//	Metadata     := aggregationType:u64 maxRetention:u64 xFilesFactor:f64 archiveCount:u64
//	ArchiveInfo  := offset:u64 secondsPerPoint:u64 points:u64
const (
	MetadataSize    = 32
	ArchiveInfoSize = 24
)

// AggregationMethod is the closed enum of ways a coarser archive's
// point is derived from the finer archive's known values.
type AggregationMethod uint64

const (
	Average AggregationMethod = iota + 1
	Sum
	Last
	Max
	Min
)

func (m AggregationMethod) String() string {
	switch m {
	case Average:
		return "average"
	case Sum:
		return "sum"
	case Last:
		return "last"
	case Max:
		return "max"
	case Min:
		return "min"
	}
	return fmt.Sprintf("unknown(%d)", uint64(m))
}

// ParseAggregationMethod maps a Graphite-style config string to its
// enum value, for CLI flags and schema config files.
func ParseAggregationMethod(s string) (AggregationMethod, bool) {
	switch s {
	case "average", "avg":
		return Average, true
	case "sum":
		return Sum, true
	case "last":
		return Last, true
	case "max":
		return Max, true
	case "min":
		return Min, true
	}
	return 0, false
}

// ArchiveInfo describes one ring buffer's placement and resolution.
type ArchiveInfo struct {
	Offset          uint64
	SecondsPerPoint uint64
	Points          uint64
}

// Size is the number of bytes the archive's ring occupies.
func (a ArchiveInfo) Size() uint64 { return PointSize * a.Points }

// Retention is the total wall-clock span the archive covers.
func (a ArchiveInfo) Retention() uint64 { return a.SecondsPerPoint * a.Points }

// Header is the decoded metadata block and archive index of a file.
type Header struct {
	AggregationMethod AggregationMethod
	MaxRetention      uint64
	XFilesFactor      float64
	Archives          []ArchiveInfo
}

// readHeader decodes the metadata block and archive index starting at
// byte 0 of f. It does not restore the caller's prior file position;
// every public operation opens its own handle, so that isn't observable.
func readHeader(f *os.File, path string) (*Header, error) {
	if _, err := f.Seek(0, io.SeekStart); err != nil {
		return nil, err
	}

	buf := make([]byte, MetadataSize)
	if _, err := io.ReadFull(f, buf); err != nil {
		return nil, &CorruptFileError{Path: path, Reason: "metadata block", Err: err}
	}

	h := &Header{
		AggregationMethod: AggregationMethod(getUint64(buf[0:8])),
		MaxRetention:      getUint64(buf[8:16]),
		XFilesFactor:      getFloat64(buf[16:24]),
	}
	archiveCount := getUint64(buf[24:32])

	abuf := make([]byte, ArchiveInfoSize)
	h.Archives = make([]ArchiveInfo, archiveCount)
	for i := range h.Archives {
		if _, err := io.ReadFull(f, abuf); err != nil {
			return nil, &CorruptFileError{Path: path, Reason: fmt.Sprintf("archive %d index entry", i), Err: err}
		}
		h.Archives[i] = ArchiveInfo{
			Offset:          getUint64(abuf[0:8]),
			SecondsPerPoint: getUint64(abuf[8:16]),
			Points:          getUint64(abuf[16:24]),
		}
	}

	return h, nil
}

// writeHeader is the inverse of readHeader; used only by Create.
func writeHeader(f *os.File, h *Header) error {
	buf := make([]byte, MetadataSize+ArchiveInfoSize*len(h.Archives))
	putUint64(buf[0:8], uint64(h.AggregationMethod))
	putUint64(buf[8:16], h.MaxRetention)
	putFloat64(buf[16:24], h.XFilesFactor)
	putUint64(buf[24:32], uint64(len(h.Archives)))

	off := MetadataSize
	for _, a := range h.Archives {
		putUint64(buf[off:off+8], a.Offset)
		putUint64(buf[off+8:off+16], a.SecondsPerPoint)
		putUint64(buf[off+16:off+24], a.Points)
		off += ArchiveInfoSize
	}

	_, err := f.WriteAt(buf, 0)
	return err
}
