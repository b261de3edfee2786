package whisper

import "os"

// TimeSeriesPoint is one point of a bulk write submitted to UpdateMany.
type TimeSeriesPoint struct {
	Timestamp uint64
	Value     float64
}

// UpdateMany is the bulk write path: points are grouped by the finest
// archive each one covers, each group is written, and propagate runs
// once per distinct (archive, aligned-interval) pair touched — rather
// than once per point, which would re-read and re-write the same
// coarser slots redundantly for points landing in the same bucket.
// Points outside every archive's retention are silently dropped,
// mirroring Update's TimestampNotCovered check applied per-point
// instead of failing the whole batch.
func UpdateMany(path string, points []TimeSeriesPoint, now *uint64) error {
	f, err := os.OpenFile(path, os.O_RDWR, 0644)
	if err != nil {
		return err
	}
	defer f.Close()

	if err := lockExclusive(f); err != nil {
		return err
	}
	defer unlock(f)

	header, err := readHeaderCached(f, path)
	if err != nil {
		return err
	}

	nowVal := nowUnix()
	if now != nil {
		nowVal = *now
	}

	type touchedKey struct {
		archiveIdx int
		interval   uint64
	}
	byArchive := make(map[int][]TimeSeriesPoint)
	touched := make(map[touchedKey]bool)

	for _, p := range points {
		if p.Timestamp == 0 {
			continue
		}
		diff := int64(nowVal) - int64(p.Timestamp)
		if diff < 0 || uint64(diff) >= header.MaxRetention {
			continue
		}
		for i := range header.Archives {
			if header.Archives[i].Retention() >= uint64(diff) {
				byArchive[i] = append(byArchive[i], p)
				break
			}
		}
	}

	for idx, pts := range byArchive {
		archive := header.Archives[idx]
		base, err := baseInterval(f, archive)
		if err != nil {
			return err
		}
		for _, p := range pts {
			interval := p.Timestamp - (p.Timestamp % archive.SecondsPerPoint)
			slot := slotOffset(archive, base, interval)
			if _, err := f.WriteAt(Point{Timestamp: interval, Value: p.Value}.bytes(), int64(slot)); err != nil {
				return err
			}
			if base == 0 {
				base = interval
			}
			touched[touchedKey{idx, interval}] = true
		}
	}

	for key := range touched {
		current := header.Archives[key.archiveIdx]
		for _, lower := range header.Archives[key.archiveIdx+1:] {
			propagated, err := propagate(f, header, current, lower, key.interval)
			if err != nil {
				return err
			}
			if !propagated {
				break
			}
			current = lower
		}
	}

	return maybeSync(f)
}
