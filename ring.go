package whisper

import "os"

// mod is Euclidean mod: 0 <= mod(a,b) < b for positive b, even when a
// is negative. This is load-bearing for archive addressing, where
// byteDistance can be negative when writing a point earlier than an
// archive's base interval.
func mod(a, b int64) int64 {
	return ((a % b) + b) % b
}

// baseInterval returns the timestamp stored in slot 0 of the archive,
// which anchors all modular addressing into its ring. A zero result
// means the archive has never been written.
func baseInterval(f *os.File, arc ArchiveInfo) (uint64, error) {
	buf := make([]byte, PointSize)
	if _, err := f.ReadAt(buf, int64(arc.Offset)); err != nil {
		return 0, err
	}
	return getUint64(buf[0:8]), nil
}

// pointOffset computes the byte offset of the slot for an aligned
// timestamp within an archive whose base interval is already known.
// Callers must special-case an empty archive (base == 0) themselves:
// there the write position is simply arc.Offset, not a function of
// timestamp.
func pointOffset(arc ArchiveInfo, base, timestamp uint64) uint64 {
	timeDistance := int64(timestamp) - int64(base)
	pointDistance := timeDistance / int64(arc.SecondsPerPoint)
	byteDistance := pointDistance * PointSize
	return arc.Offset + uint64(mod(byteDistance, int64(arc.Size())))
}

// slotOffset is pointOffset generalized over the empty-archive case:
// when base is zero the slot to write is the archive's first byte.
func slotOffset(arc ArchiveInfo, base, timestamp uint64) uint64 {
	if base == 0 {
		return arc.Offset
	}
	return pointOffset(arc, base, timestamp)
}

// readRing reads the byte range [fromOffset, untilOffset) of an
// archive's ring, wrapping around the end of the archive when
// untilOffset <= fromOffset. The returned buffer is a single
// contiguous logical slice whose first PointSize bytes are the slot
// at fromOffset.
func readRing(f *os.File, arc ArchiveInfo, fromOffset, untilOffset uint64) ([]byte, error) {
	if fromOffset < untilOffset {
		buf := make([]byte, untilOffset-fromOffset)
		if _, err := f.ReadAt(buf, int64(fromOffset)); err != nil {
			return nil, err
		}
		return buf, nil
	}

	end := arc.Offset + arc.Size()
	head := make([]byte, end-fromOffset)
	if _, err := f.ReadAt(head, int64(fromOffset)); err != nil {
		return nil, err
	}
	tail := make([]byte, untilOffset-arc.Offset)
	if _, err := f.ReadAt(tail, int64(arc.Offset)); err != nil {
		return nil, err
	}
	return append(head, tail...), nil
}
