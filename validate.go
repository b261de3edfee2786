package whisper

import (
	"fmt"
	"sort"
)

// ArchiveSpec is a caller-supplied (unvalidated, unpositioned) archive
// definition: a resolution and a point count. Create and
// ValidateArchiveList turn a slice of these into a sorted, positioned
// []ArchiveInfo.
type ArchiveSpec struct {
	SecondsPerPoint uint64
	Points          uint64
}

// ValidateArchiveList sorts specs ascending by SecondsPerPoint and
// checks every adjacent pair against the well-formedness rules: no
// duplicate precisions, coarser evenly divisible by finer, coarser
// retention strictly greater, and enough finer points to consolidate
// one coarser point. It returns the sorted list or a ConfigurationError
// naming the offending pair and rule.
func ValidateArchiveList(specs []ArchiveSpec) ([]ArchiveSpec, error) {
	if len(specs) == 0 {
		return nil, &ConfigurationError{Msg: "at least one archive is required"}
	}

	sorted := make([]ArchiveSpec, len(specs))
	copy(sorted, specs)
	sort.Slice(sorted, func(i, j int) bool {
		return sorted[i].SecondsPerPoint < sorted[j].SecondsPerPoint
	})

	for i := 0; i < len(sorted)-1; i++ {
		lo, hi := sorted[i], sorted[i+1]

		if hi.SecondsPerPoint <= lo.SecondsPerPoint {
			return nil, &ConfigurationError{Msg: fmt.Sprintf(
				"archive %d and %d have the same precision (%ds); precisions must be strictly increasing",
				i, i+1, lo.SecondsPerPoint)}
		}

		if hi.SecondsPerPoint%lo.SecondsPerPoint != 0 {
			return nil, &ConfigurationError{Msg: fmt.Sprintf(
				"archive %d's precision (%ds) does not evenly divide archive %d's precision (%ds)",
				i, lo.SecondsPerPoint, i+1, hi.SecondsPerPoint)}
		}

		loRetention := lo.SecondsPerPoint * lo.Points
		hiRetention := hi.SecondsPerPoint * hi.Points
		if hiRetention <= loRetention {
			return nil, &ConfigurationError{Msg: fmt.Sprintf(
				"archive %d's retention (%ds) does not exceed archive %d's retention (%ds)",
				i+1, hiRetention, i, loRetention)}
		}

		needed := hi.SecondsPerPoint / lo.SecondsPerPoint
		if lo.Points < needed {
			return nil, &ConfigurationError{Msg: fmt.Sprintf(
				"archive %d needs at least %d points to consolidate into archive %d but has only %d",
				i, needed, i+1, lo.Points)}
		}
	}

	return sorted, nil
}
