package models

import "testing"

func TestComputeRatingSummary(t *testing.T) {
	summary := ComputeRatingSummary([]int{5, 4, 4, 3, 5})

	if summary.Count != 5 {
		t.Fatalf("got count %d, want 5", summary.Count)
	}
	if summary.Average != 4.2 {
		t.Fatalf("got average %v, want 4.2", summary.Average)
	}
	if summary.Distribution[4] != 2 || summary.Distribution[5] != 2 || summary.Distribution[3] != 1 {
		t.Fatalf("wrong distribution: %v", summary.Distribution)
	}
	if summary.Distribution[1] != 0 || summary.Distribution[2] != 0 {
		t.Fatalf("distribution must carry zero buckets: %v", summary.Distribution)
	}
}

func TestComputeRatingSummaryEmpty(t *testing.T) {
	summary := ComputeRatingSummary(nil)
	if summary.Count != 0 || summary.Average != 0 {
		t.Fatalf("empty input should produce zero aggregate: %+v", summary)
	}
	if len(summary.Distribution) != 5 {
		t.Fatalf("distribution must always hold 5 buckets, got %d", len(summary.Distribution))
	}
}

func TestComputeRatingSummaryRounding(t *testing.T) {
	// 1+2 over 3 reviews: 1.666... rounds to 1.67.
	summary := ComputeRatingSummary([]int{1, 2, 2})
	if summary.Average != 1.67 {
		t.Fatalf("got average %v, want 1.67", summary.Average)
	}
}
