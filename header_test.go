package whisper

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
)

func TestHeaderRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "roundtrip.wsp")
	f, err := os.OpenFile(path, os.O_RDWR|os.O_CREATE|os.O_EXCL, 0644)
	if err != nil {
		t.Fatalf("failed to create file: %s", err)
	}
	defer f.Close()

	want := &Header{
		AggregationMethod: Sum,
		MaxRetention:      3600,
		XFilesFactor:      0.3,
		Archives: []ArchiveInfo{
			{Offset: 32 + 24*2, SecondsPerPoint: 1, Points: 60},
			{Offset: 32 + 24*2 + 60*16, SecondsPerPoint: 60, Points: 60},
		},
	}

	if err := writeHeader(f, want); err != nil {
		t.Fatalf("writeHeader: %s", err)
	}

	got, err := readHeader(f, path)
	if err != nil {
		t.Fatalf("readHeader: %s", err)
	}

	if diff := cmp.Diff(want, got, cmpopts.EquateApprox(0, 1e-9)); diff != "" {
		t.Errorf("header round-trip mismatch (-want +got):\n%s", diff)
	}
}

func TestReadHeaderShortFileIsCorrupt(t *testing.T) {
	path := filepath.Join(t.TempDir(), "short.wsp")
	if err := os.WriteFile(path, []byte{1, 2, 3}, 0644); err != nil {
		t.Fatalf("failed to write file: %s", err)
	}
	f, err := os.Open(path)
	if err != nil {
		t.Fatalf("failed to open file: %s", err)
	}
	defer f.Close()

	_, err = readHeader(f, path)
	var corrupt *CorruptFileError
	if err == nil {
		t.Fatal("expected an error for a truncated header")
	}
	if !asCorrupt(err, &corrupt) {
		t.Fatalf("expected *CorruptFileError, got %T: %v", err, err)
	}
	if corrupt.Path != path {
		t.Errorf("corrupt.Path = %q, want %q", corrupt.Path, path)
	}
}

func asCorrupt(err error, target **CorruptFileError) bool {
	ce, ok := err.(*CorruptFileError)
	if !ok {
		return false
	}
	*target = ce
	return true
}

func TestAggregationMethodString(t *testing.T) {
	cases := map[AggregationMethod]string{
		Average: "average",
		Sum:     "sum",
		Last:    "last",
		Max:     "max",
		Min:     "min",
	}
	for method, want := range cases {
		if got := method.String(); got != want {
			t.Errorf("%d.String() = %q, want %q", method, got, want)
		}
	}
}

func TestParseAggregationMethod(t *testing.T) {
	method, ok := ParseAggregationMethod("avg")
	if !ok || method != Average {
		t.Errorf("ParseAggregationMethod(avg) = %v, %v; want Average, true", method, ok)
	}
	if _, ok := ParseAggregationMethod("bogus"); ok {
		t.Error("ParseAggregationMethod(bogus) should fail")
	}
}
