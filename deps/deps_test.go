package deps

import (
	"errors"
	"testing"
)

func TestCheckAllReportsMissingRequired(t *testing.T) {
	// With an empty PATH nothing resolves, so both required tools are
	// reported. mpv is optional and must not appear.
	t.Setenv("PATH", t.TempDir())

	errs := CheckAll()
	if len(errs) != 2 {
		t.Fatalf("CheckAll returned %d errors, want 2: %v", len(errs), errs)
	}

	names := map[string]bool{}
	for _, err := range errs {
		var depErr *DependencyError
		if !errors.As(err, &depErr) {
			t.Fatalf("error %v is not a DependencyError", err)
		}
		names[depErr.Name] = true
	}
	if !names["ffmpeg"] || !names["ffprobe"] {
		t.Errorf("missing set = %v, want ffmpeg and ffprobe", names)
	}
	if names["mpv"] {
		t.Error("mpv should not be part of the required set")
	}
}

func TestDependencyErrorMessage(t *testing.T) {
	err := &DependencyError{Name: "ffmpeg", InstallURL: FfmpegInstallURL}
	want := "ffmpeg not found. Install from: " + FfmpegInstallURL
	if err.Error() != want {
		t.Errorf("Error() = %q, want %q", err.Error(), want)
	}
}
