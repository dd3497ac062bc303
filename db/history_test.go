package db

import (
	"path/filepath"
	"testing"
)

func TestInsertAndListGenerations(t *testing.T) {
	database, err := OpenAt(filepath.Join(t.TempDir(), "history.db"))
	if err != nil {
		t.Fatalf("OpenAt: %v", err)
	}
	defer database.Close()

	first := Generation{
		VideoPath:  "/videos/office.mp4",
		OutputPath: "/videos/office-clips/clip.gif",
		Format:     "gif",
		StartMs:    1000,
		EndMs:      4000,
		Status:     StatusOK,
		SizeBytes:  123456,
		ElapsedMs:  2500,
	}
	id, err := InsertGeneration(database, first)
	if err != nil {
		t.Fatalf("InsertGeneration: %v", err)
	}
	if id == 0 {
		t.Fatal("expected non-zero ID")
	}

	failed := Generation{
		VideoPath:  "/videos/office.mp4",
		OutputPath: "/videos/office-clips/clip.webp",
		Format:     "webp",
		StartMs:    5000,
		EndMs:      9000,
		Status:     StatusError,
		Error:      "ffmpeg: filter parse error",
	}
	if _, err := InsertGeneration(database, failed); err != nil {
		t.Fatalf("InsertGeneration: %v", err)
	}

	got, err := ListGenerations(database, 10)
	if err != nil {
		t.Fatalf("ListGenerations: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("expected 2 rows, got %d", len(got))
	}

	// Newest first.
	if got[0].Status != StatusError || got[0].Error == "" {
		t.Errorf("first row = %+v, want the failed generation", got[0])
	}
	if got[1].VideoPath != first.VideoPath || got[1].SizeBytes != first.SizeBytes {
		t.Errorf("second row = %+v", got[1])
	}
	if got[1].CreatedAt.IsZero() {
		t.Error("created_at not populated")
	}
}

func TestListGenerationsLimit(t *testing.T) {
	database, err := OpenAt(filepath.Join(t.TempDir(), "history.db"))
	if err != nil {
		t.Fatalf("OpenAt: %v", err)
	}
	defer database.Close()

	for i := 0; i < 5; i++ {
		g := Generation{
			VideoPath:  "/v.mp4",
			OutputPath: "/out.gif",
			Format:     "gif",
			StartMs:    i * 1000,
			EndMs:      i*1000 + 500,
			Status:     StatusOK,
		}
		if _, err := InsertGeneration(database, g); err != nil {
			t.Fatal(err)
		}
	}

	got, err := ListGenerations(database, 3)
	if err != nil {
		t.Fatalf("ListGenerations: %v", err)
	}
	if len(got) != 3 {
		t.Fatalf("expected 3 rows, got %d", len(got))
	}
	if got[0].StartMs != 4000 {
		t.Errorf("newest row StartMs = %d, want 4000", got[0].StartMs)
	}
}

func TestMigrateIsIdempotent(t *testing.T) {
	path := filepath.Join(t.TempDir(), "history.db")
	database, err := OpenAt(path)
	if err != nil {
		t.Fatalf("OpenAt: %v", err)
	}
	database.Close()

	// Opening again re-runs migrations against the existing schema.
	database, err = OpenAt(path)
	if err != nil {
		t.Fatalf("second OpenAt: %v", err)
	}
	database.Close()
}
