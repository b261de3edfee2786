package whisper

import (
	"encoding/binary"
	"math"
)

// PointSize is the on-disk size of one (timestamp, value) slot.
const PointSize = 16

// Point is a single sample. A Timestamp of zero denotes an unwritten
// ring slot; a legitimate unix time of zero is unrepresentable and is
// rejected at the Update boundary.
type Point struct {
	Timestamp uint64
	Value     float64
}

func putUint64(b []byte, v uint64)  { binary.BigEndian.PutUint64(b, v) }
func getUint64(b []byte) uint64     { return binary.BigEndian.Uint64(b) }
func putFloat64(b []byte, v float64) { binary.BigEndian.PutUint64(b, math.Float64bits(v)) }
func getFloat64(b []byte) float64   { return math.Float64frombits(binary.BigEndian.Uint64(b)) }

func (p Point) bytes() []byte {
	b := make([]byte, PointSize)
	putUint64(b[0:8], p.Timestamp)
	putFloat64(b[8:16], p.Value)
	return b
}

func decodePoint(b []byte) Point {
	return Point{Timestamp: getUint64(b[0:8]), Value: getFloat64(b[8:16])}
}

func decodePoints(b []byte) []Point {
	n := len(b) / PointSize
	points := make([]Point, n)
	for i := 0; i < n; i++ {
		points[i] = decodePoint(b[i*PointSize : (i+1)*PointSize])
	}
	return points
}
