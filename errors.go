package whisper

import (
	"errors"
	"fmt"
)

// Sentinel kinds for the error taxonomy. Callers distinguish failure
// classes with errors.Is against these rather than type assertions.
var (
	ErrInvalidConfiguration     = errors.New("invalid configuration")
	ErrInvalidTimeInterval      = errors.New("invalid time interval")
	ErrTimestampNotCovered      = errors.New("timestamp not covered by any archive")
	ErrInvalidAggregationMethod = errors.New("invalid aggregation method")
	ErrCorruptWhisperFile       = errors.New("corrupt whisper file")
)

// ConfigurationError reports an archive list that fails validation, or
// an attempt to create a file that already exists.
type ConfigurationError struct {
	Msg string
}

func (e *ConfigurationError) Error() string { return e.Msg }
func (e *ConfigurationError) Unwrap() error { return ErrInvalidConfiguration }

// TimeIntervalError reports a Fetch call whose window is inverted.
type TimeIntervalError struct {
	From, Until uint64
}

func (e *TimeIntervalError) Error() string {
	return fmt.Sprintf("invalid time interval: from %d is after until %d", e.From, e.Until)
}
func (e *TimeIntervalError) Unwrap() error { return ErrInvalidTimeInterval }

// TimestampNotCoveredError reports an Update whose timestamp falls
// outside every archive's retention window.
type TimestampNotCoveredError struct {
	Timestamp, Now, MaxRetention uint64
}

func (e *TimestampNotCoveredError) Error() string {
	return fmt.Sprintf("timestamp %d not covered by any archive (now=%d, maxRetention=%d)",
		e.Timestamp, e.Now, e.MaxRetention)
}
func (e *TimestampNotCoveredError) Unwrap() error { return ErrTimestampNotCovered }

// AggregationMethodError reports an unknown aggregation enum discriminant.
type AggregationMethodError struct {
	Method AggregationMethod
}

func (e *AggregationMethodError) Error() string {
	return fmt.Sprintf("invalid aggregation method: %d", uint64(e.Method))
}
func (e *AggregationMethodError) Unwrap() error { return ErrInvalidAggregationMethod }

// CorruptFileError reports a header or archive that could not be
// decoded: a short read, a malformed field, or an inconsistent index.
type CorruptFileError struct {
	Path   string
	Reason string
	Err    error
}

func (e *CorruptFileError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: corrupt whisper file (%s): %s", e.Path, e.Reason, e.Err)
	}
	return fmt.Sprintf("%s: corrupt whisper file (%s)", e.Path, e.Reason)
}
func (e *CorruptFileError) Unwrap() error { return e.Err }
func (e *CorruptFileError) Is(target error) bool { return target == ErrCorruptWhisperFile }
