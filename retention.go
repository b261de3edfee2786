package whisper

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

// Unit multipliers for Graphite-style retention definitions, e.g. "10s:14d".
const (
	Seconds = 1
	Minutes = 60
	Hours   = 60 * Minutes
	Days    = 24 * Hours
	Weeks   = 7 * Days
	Years   = 365 * Days
)

var retentionPartRegexp = regexp.MustCompile(`^(\d+)([smhdwy])$`)

func unitMultiplier(unit string) (uint64, error) {
	switch unit {
	case "s":
		return Seconds, nil
	case "m":
		return Minutes, nil
	case "h":
		return Hours, nil
	case "d":
		return Days, nil
	case "w":
		return Weeks, nil
	case "y":
		return Years, nil
	}
	return 0, fmt.Errorf("invalid unit multiplier %q", unit)
}

// parseRetentionPart parses one half of a "precision:retention"
// definition. A bare integer carries no unit multiplier and is
// returned as-is; a suffixed value (e.g. "14d") is expanded to seconds.
func parseRetentionPart(part string) (uint64, error) {
	if n, err := strconv.ParseUint(part, 10, 64); err == nil {
		return n, nil
	}
	m := retentionPartRegexp.FindStringSubmatch(part)
	if m == nil {
		return 0, fmt.Errorf("invalid retention part %q", part)
	}
	value, err := strconv.ParseUint(m[1], 10, 64)
	if err != nil {
		return 0, err
	}
	multiplier, err := unitMultiplier(m[2])
	if err != nil {
		return 0, err
	}
	return value * multiplier, nil
}

// ParseArchiveSpec parses a single Graphite storage-schemas.conf-style
// retention definition, e.g. "10s:14d" (10 second resolution, retained
// for 14 days). This is the missing piece between a human-supplied
// schema string and the already-built archive list ValidateArchiveList
// and Create expect.
//
// A bare (unitless) retention field is a literal point count, matching
// storage-schemas.conf: "10s:8640" means 8640 points, not 8640 seconds.
// A unit-suffixed retention field is a duration, converted to a point
// count by dividing by the precision.
func ParseArchiveSpec(def string) (ArchiveSpec, error) {
	parts := strings.Split(def, ":")
	if len(parts) != 2 {
		return ArchiveSpec{}, fmt.Errorf("invalid retention definition %q: expected precision:retention", def)
	}

	secondsPerPoint, err := parseRetentionPart(parts[0])
	if err != nil {
		return ArchiveSpec{}, fmt.Errorf("failed to parse precision: %w", err)
	}
	if secondsPerPoint == 0 {
		return ArchiveSpec{}, fmt.Errorf("invalid retention definition %q: precision must be positive", def)
	}

	if points, err := strconv.ParseUint(parts[1], 10, 64); err == nil {
		return ArchiveSpec{SecondsPerPoint: secondsPerPoint, Points: points}, nil
	}

	totalSeconds, err := parseRetentionPart(parts[1])
	if err != nil {
		return ArchiveSpec{}, fmt.Errorf("failed to parse retention: %w", err)
	}

	return ArchiveSpec{SecondsPerPoint: secondsPerPoint, Points: totalSeconds / secondsPerPoint}, nil
}

// ParseArchiveSpecs parses a comma-separated list of retention
// definitions, e.g. "1s:1d,1m:30d,1h:5y".
func ParseArchiveSpecs(defs string) ([]ArchiveSpec, error) {
	var specs []ArchiveSpec
	for _, def := range strings.Split(defs, ",") {
		spec, err := ParseArchiveSpec(def)
		if err != nil {
			return nil, err
		}
		specs = append(specs, spec)
	}
	return specs, nil
}
