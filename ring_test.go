package whisper

import (
	"testing"

	"github.com/kr/pretty"
)

func TestModWellFormed(t *testing.T) {
	cases := []int64{-100, -13, -1, 0, 1, 13, 100, 1<<40 + 7}
	const b = 60
	for _, a := range cases {
		r := mod(a, b)
		if r < 0 || r >= b {
			t.Errorf("mod(%d, %d) = %d, want 0 <= r < %d", a, b, r, b)
		}
		if (r-a)%b != 0 {
			t.Errorf("mod(%d, %d) = %d, not congruent to a mod b", a, b, r)
		}
	}
}

func TestPointOffsetWithinBounds(t *testing.T) {
	arc := ArchiveInfo{Offset: 100, SecondsPerPoint: 10, Points: 5} // size = 80
	base := uint64(1000)

	for _, ts := range []uint64{960, 970, 1000, 1010, 1040, 1050} {
		off := pointOffset(arc, base, ts)
		if off < arc.Offset || off >= arc.Offset+arc.Size() {
			t.Errorf("pointOffset(%d) = %d, out of archive bounds [%d, %d)", ts, off, arc.Offset, arc.Offset+arc.Size())
		}
		if (off-arc.Offset)%PointSize != 0 {
			t.Errorf("pointOffset(%d) = %d, not aligned to PointSize", ts, off)
		}
	}
}

func TestPointOffsetWrapsBackwardInTime(t *testing.T) {
	arc := ArchiveInfo{Offset: 0, SecondsPerPoint: 1, Points: 4} // size = 64
	base := uint64(100)

	// One point earlier than base should land in the last slot.
	off := pointOffset(arc, base, 99)
	last := arc.Offset + arc.Size() - PointSize
	if off != last {
		t.Errorf("pointOffset(99) = %d, want last slot %d", off, last)
	}
}

func TestReadRingContiguous(t *testing.T) {
	dir := t.TempDir()
	f := openScratchFile(t, dir)
	defer f.Close()

	arc := ArchiveInfo{Offset: 0, SecondsPerPoint: 1, Points: 4}
	writeArchivePoints(t, f, arc, []Point{{1, 1}, {2, 2}, {3, 3}, {4, 4}})

	raw, err := readRing(f, arc, arc.Offset, arc.Offset+arc.Size())
	if err != nil {
		t.Fatalf("readRing: %s", err)
	}
	points := decodePoints(raw)
	if len(points) != 4 || points[0].Timestamp != 1 || points[3].Timestamp != 4 {
		t.Fatalf("unexpected points: %+v", points)
	}
}

func TestReadRingWraps(t *testing.T) {
	dir := t.TempDir()
	f := openScratchFile(t, dir)
	defer f.Close()

	arc := ArchiveInfo{Offset: 0, SecondsPerPoint: 1, Points: 4}
	writeArchivePoints(t, f, arc, []Point{{1, 1}, {2, 2}, {3, 3}, {4, 4}})

	// Read starting at slot 2, wrapping around to slot 1: expect [3,4,1,2].
	from := arc.Offset + 2*PointSize
	until := arc.Offset + 2*PointSize
	raw, err := readRing(f, arc, from, until)
	if err != nil {
		t.Fatalf("readRing: %s", err)
	}
	points := decodePoints(raw)
	want := []uint64{3, 4, 1, 2} // full wrap since from==until reads the whole ring
	if len(points) != 4 {
		pretty.Println(points)
		t.Fatalf("expected a full-ring read of 4 points, got %d", len(points))
	}
	if points[0].Timestamp != want[0] {
		pretty.Println(points)
		t.Errorf("points[0].Timestamp = %d, want %d", points[0].Timestamp, want[0])
	}
}
