package model

import (
	"math"
	"testing"
)

// TestSummaryPercent tests the zero-safe percentage calculation.
func TestSummaryPercent(t *testing.T) {
	t.Parallel()

	t.Run("normal division", func(t *testing.T) {
		t.Parallel()

		s := Summary{Total: 8, Extracted: 6, Pending: 1, Errored: 1}

		got, ok := s.Percent(s.Extracted)
		if !ok {
			t.Fatal("expected defined percentage")
		}
		if math.Abs(got-75.0) > 1e-9 {
			t.Errorf("expected 75.0, got %v", got)
		}
	})

	t.Run("zero total is undefined", func(t *testing.T) {
		t.Parallel()

		s := Summary{}
		if _, ok := s.Percent(0); ok {
			t.Error("expected undefined percentage for zero total")
		}
	})

	t.Run("percentages cover the classified statuses", func(t *testing.T) {
		t.Parallel()

		s := Summary{Total: 10, Extracted: 7, Pending: 2, Errored: 1}

		var sum float64
		for _, c := range []int64{s.Extracted, s.Pending, s.Errored} {
			pct, ok := s.Percent(c)
			if !ok {
				t.Fatal("expected defined percentage")
			}
			sum += pct
		}
		if math.Abs(sum-100.0) > 1e-9 {
			t.Errorf("expected classified percentages to sum to 100, got %v", sum)
		}
	})
}

// TestInspectReportFileSizeKiB tests the byte-to-KiB conversion.
func TestInspectReportFileSizeKiB(t *testing.T) {
	t.Parallel()

	r := NewInspectReport("/tmp/colors.db")
	r.FileSizeBytes = 4096

	if got := r.FileSizeKiB(); got != 4.0 {
		t.Errorf("expected 4.0 KiB, got %v", got)
	}

	r.FileSizeBytes = 1536
	if got := r.FileSizeKiB(); got != 1.5 {
		t.Errorf("expected 1.5 KiB, got %v", got)
	}
}

// TestNewInspectReport tests report initialization.
func TestNewInspectReport(t *testing.T) {
	t.Parallel()

	r := NewInspectReport("/data/colors.db")
	if r.DBPath != "/data/colors.db" {
		t.Errorf("unexpected db path: %q", r.DBPath)
	}
	if r.GeneratedAt.IsZero() {
		t.Error("expected GeneratedAt to be set")
	}
}
