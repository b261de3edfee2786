package whisper

import "os"

// Update writes a single point into the finest archive covering
// timestamp and propagates the aggregated value downward through
// every coarser archive, stopping at the first one that doesn't
// accumulate enough known data to satisfy xFilesFactor. timestamp and
// now default to the current time when nil. A timestamp of exactly
// zero is rejected: it collides with the on-disk empty-slot sentinel.
func Update(path string, value float64, timestamp, now *uint64) error {
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
	ts := nowVal
	if timestamp != nil {
		ts = *timestamp
	}
	if ts == 0 {
		return &ConfigurationError{Msg: "timestamp 0 collides with the empty-slot sentinel and cannot be written"}
	}

	diff := int64(nowVal) - int64(ts)
	if diff < 0 || uint64(diff) >= header.MaxRetention {
		return &TimestampNotCoveredError{Timestamp: ts, Now: nowVal, MaxRetention: header.MaxRetention}
	}

	higherIdx := -1
	for i := range header.Archives {
		if header.Archives[i].Retention() >= uint64(diff) {
			higherIdx = i
			break
		}
	}
	higher := header.Archives[higherIdx]

	myInterval := ts - (ts % higher.SecondsPerPoint)

	base, err := baseInterval(f, higher)
	if err != nil {
		return err
	}
	slot := slotOffset(higher, base, myInterval)
	if _, err := f.WriteAt(Point{Timestamp: myInterval, Value: value}.bytes(), int64(slot)); err != nil {
		return err
	}

	current := higher
	for _, lower := range header.Archives[higherIdx+1:] {
		propagated, err := propagate(f, header, current, lower, myInterval)
		if err != nil {
			return err
		}
		if !propagated {
			break
		}
		current = lower
	}

	return maybeSync(f)
}

// propagate downsamples higher's points covering timestamp's lower
// bucket into lower. It treats any non-zero-timestamp candidate slot
// as "known" without checking that its timestamp lands on the
// expected grid position — a later Update that reaches a stale slot
// simply overwrites it. It returns false (without writing lower) when
// either no candidate slot is known, or the known fraction falls below
// xFilesFactor.
func propagate(f *os.File, header *Header, higher, lower ArchiveInfo, timestamp uint64) (bool, error) {
	lowerIntervalStart := timestamp - (timestamp % lower.SecondsPerPoint)

	higherBase, err := baseInterval(f, higher)
	if err != nil {
		return false, err
	}
	higherFirstOffset := slotOffset(higher, higherBase, lowerIntervalStart)

	higherPoints := lower.SecondsPerPoint / higher.SecondsPerPoint
	higherSize := int64(higherPoints * PointSize)
	relativeFirst := int64(higherFirstOffset) - int64(higher.Offset)
	relativeLast := mod(relativeFirst+higherSize, int64(higher.Size()))
	higherLastOffset := higher.Offset + uint64(relativeLast)

	raw, err := readRing(f, higher, higherFirstOffset, higherLastOffset)
	if err != nil {
		return false, err
	}
	candidates := decodePoints(raw)

	known := make([]float64, 0, len(candidates))
	for _, p := range candidates {
		if p.Timestamp != 0 {
			known = append(known, p.Value)
		}
	}
	if len(known) == 0 {
		return false, nil
	}
	if float64(len(known))/float64(len(candidates)) < header.XFilesFactor {
		return false, nil
	}

	aggregated, err := Aggregate(header.AggregationMethod, known)
	if err != nil {
		return false, err
	}

	lowerBase, err := baseInterval(f, lower)
	if err != nil {
		return false, err
	}
	lowerSlot := slotOffset(lower, lowerBase, lowerIntervalStart)
	if _, err := f.WriteAt(Point{Timestamp: lowerIntervalStart, Value: aggregated}.bytes(), int64(lowerSlot)); err != nil {
		return false, err
	}

	return true, nil
}
