package whisper

import (
	"os"
	"time"
)

// TimeInfo describes the aligned window a fetch actually covers. Both
// From and Until mark bucket *ends*: the interval labels the point
// that would land at that timestamp, not the bucket's start.
type TimeInfo struct {
	From, Until, Step uint64
}

// ArchiveFetch is the result of a Fetch: the aligned window, and the
// occupied slots within it. Values is sparse — only slots whose
// timestamp is non-zero are present; callers reconstruct gaps from
// TimeInfo (From, Until, Step).
type ArchiveFetch struct {
	TimeInfo TimeInfo
	Values   []Point
}

func nowUnix() uint64 { return uint64(time.Now().Unix()) }

// Fetch reads the densest archive covering [from, until] and returns
// its occupied points. until and now default to the current time when
// nil. A nil result (with a nil error) means the window falls entirely
// outside what the file can answer: entirely in the future, or older
// than every archive's retention.
func Fetch(path string, from uint64, until, now *uint64) (*ArchiveFetch, error) {
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

	nowVal := nowUnix()
	if now != nil {
		nowVal = *now
	}
	untilVal := nowVal
	if until != nil {
		untilVal = *until
	}

	if from > untilVal {
		return nil, &TimeIntervalError{From: from, Until: untilVal}
	}

	nowI := int64(nowVal)
	fromI := int64(from)
	untilI := int64(untilVal)
	oldestI := nowI - int64(header.MaxRetention)
	if oldestI < 0 {
		// Unsigned timestamps can't represent a negative oldest
		// bound; the retention window simply reaches back to epoch.
		oldestI = 0
	}

	if fromI > nowI {
		return nil, nil
	}
	if untilI < oldestI {
		return nil, nil
	}
	if fromI < oldestI {
		fromI = oldestI
	}
	if untilI > nowI {
		untilI = nowI
	}
	fromVal, untilVal := uint64(fromI), uint64(untilI)

	var archive *ArchiveInfo
	needed := nowVal - fromVal
	for i := range header.Archives {
		if header.Archives[i].Retention() >= needed {
			archive = &header.Archives[i]
			break
		}
	}
	if archive == nil {
		return nil, nil
	}

	step := archive.SecondsPerPoint
	fromInterval := fromVal - (fromVal % step) + step
	untilInterval := untilVal - (untilVal % step) + step
	if fromInterval == untilInterval {
		// A zero-width window would otherwise make fromOffset ==
		// untilOffset, which readRing treats as "wrap around the
		// whole ring" instead of "nothing here".
		untilInterval += step
	}
	timeInfo := TimeInfo{From: fromInterval, Until: untilInterval, Step: step}

	base, err := baseInterval(f, *archive)
	if err != nil {
		return nil, err
	}
	if base == 0 {
		return &ArchiveFetch{TimeInfo: timeInfo}, nil
	}

	fromOffset := pointOffset(*archive, base, fromInterval)
	untilOffset := pointOffset(*archive, base, untilInterval)

	raw, err := readRing(f, *archive, fromOffset, untilOffset)
	if err != nil {
		return nil, err
	}

	candidates := decodePoints(raw)
	values := make([]Point, 0, len(candidates))
	for _, p := range candidates {
		if p.Timestamp != 0 {
			values = append(values, p)
		}
	}

	return &ArchiveFetch{TimeInfo: timeInfo, Values: values}, nil
}
