package whisper

import (
	"os"
	"path/filepath"
	"testing"
)

func TestCreateLayout(t *testing.T) {
	path := filepath.Join(t.TempDir(), "layout.wsp")
	archives := []ArchiveSpec{
		{SecondsPerPoint: 1, Points: 60},
		{SecondsPerPoint: 60, Points: 60},
	}
	if err := Create(path, archives, nil); err != nil {
		t.Fatalf("Create: %s", err)
	}

	header, err := Info(path)
	if err != nil {
		t.Fatalf("Info: %s", err)
	}

	if header.AggregationMethod != Average {
		t.Errorf("AggregationMethod = %v, want Average", header.AggregationMethod)
	}
	if header.XFilesFactor != 0.5 {
		t.Errorf("XFilesFactor = %v, want 0.5", header.XFilesFactor)
	}
	if header.MaxRetention != 3600 {
		t.Errorf("MaxRetention = %d, want 3600", header.MaxRetention)
	}
	if len(header.Archives) != 2 {
		t.Fatalf("expected 2 archives, got %d", len(header.Archives))
	}

	wantOffset0 := uint64(MetadataSize + ArchiveInfoSize*2)
	if header.Archives[0].Offset != wantOffset0 {
		t.Errorf("archive[0].Offset = %d, want %d", header.Archives[0].Offset, wantOffset0)
	}
	wantOffset1 := wantOffset0 + 60*PointSize
	if header.Archives[1].Offset != wantOffset1 {
		t.Errorf("archive[1].Offset = %d, want %d", header.Archives[1].Offset, wantOffset1)
	}

	info, err := os.Stat(path)
	if err != nil {
		t.Fatalf("Stat: %s", err)
	}
	wantSize := wantOffset0 + 60*PointSize + 60*PointSize
	if uint64(info.Size()) != wantSize {
		t.Errorf("file size = %d, want %d", info.Size(), wantSize)
	}
}

func TestCreateRejectsExistingFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "exists.wsp")
	archives := []ArchiveSpec{{SecondsPerPoint: 1, Points: 60}}
	if err := Create(path, archives, nil); err != nil {
		t.Fatalf("Create: %s", err)
	}
	err := Create(path, archives, nil)
	if err == nil {
		t.Fatal("expected an error creating an already-existing file")
	}
}

func TestCreateSparse(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sparse.wsp")
	archives := []ArchiveSpec{
		{SecondsPerPoint: 1, Points: 60},
		{SecondsPerPoint: 60, Points: 60},
		{SecondsPerPoint: 3600, Points: 24},
		{SecondsPerPoint: 86400, Points: 365},
	}
	if err := Create(path, archives, &CreateOptions{Sparse: true}); err != nil {
		t.Fatalf("Create: %s", err)
	}

	header, err := Info(path)
	if err != nil {
		t.Fatalf("Info: %s", err)
	}
	if len(header.Archives) != 4 {
		t.Fatalf("expected 4 archives, got %d", len(header.Archives))
	}
}
