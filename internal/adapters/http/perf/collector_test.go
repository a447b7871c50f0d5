package perf

import (
	"testing"
	"time"
)

// TestCollector_RecordAndSnapshot verifies basic record and aggregation.
func TestCollector_RecordAndSnapshot(t *testing.T) {
	c := NewCollector(100)
	now := time.Now()

	c.Record(Entry{Kind: KindRequest, Path: "GET /api/calendar/week", StatusCode: 200, DurationMs: 10, Timestamp: now})
	c.Record(Entry{Kind: KindRequest, Path: "GET /api/calendar/week", StatusCode: 200, DurationMs: 30, Timestamp: now})
	c.Record(Entry{Kind: KindQuery, Path: "QueryContext", DurationMs: 5, Timestamp: now})

	snap := c.Snapshot(now.Add(-time.Minute), 10)
	if snap.TotalRequests != 3 {
		t.Errorf("TotalRequests = %d, want 3", snap.TotalRequests)
	}
	if len(snap.SlowestPaths) != 1 {
		t.Fatalf("SlowestPaths len = %d, want 1", len(snap.SlowestPaths))
	}
	if snap.SlowestPaths[0].AvgMs != 20 {
		t.Errorf("AvgMs = %v, want 20", snap.SlowestPaths[0].AvgMs)
	}
	if len(snap.SlowestQueries) != 1 {
		t.Fatalf("SlowestQueries len = %d, want 1", len(snap.SlowestQueries))
	}
}

// TestCollector_RingOverwrite verifies the oldest entries are overwritten
// when the buffer is full.
func TestCollector_RingOverwrite(t *testing.T) {
	c := NewCollector(2)
	now := time.Now()

	c.Record(Entry{Kind: KindRequest, Path: "A", DurationMs: 1, Timestamp: now})
	c.Record(Entry{Kind: KindRequest, Path: "B", DurationMs: 1, Timestamp: now})
	c.Record(Entry{Kind: KindRequest, Path: "C", DurationMs: 1, Timestamp: now})

	snap := c.Snapshot(now.Add(-time.Minute), 10)
	for _, s := range snap.SlowestPaths {
		if s.Path == "A" {
			t.Error("oldest entry should have been overwritten")
		}
	}
	if c.TotalRecorded() != 3 {
		t.Errorf("TotalRecorded = %d, want 3", c.TotalRecorded())
	}
}

// TestCollector_SnapshotSinceFilter verifies entries before the cutoff are
// ignored.
func TestCollector_SnapshotSinceFilter(t *testing.T) {
	c := NewCollector(10)
	old := time.Now().Add(-time.Hour)
	now := time.Now()

	c.Record(Entry{Kind: KindRequest, Path: "old", DurationMs: 1, Timestamp: old})
	c.Record(Entry{Kind: KindRequest, Path: "new", DurationMs: 1, Timestamp: now})

	snap := c.Snapshot(now.Add(-time.Minute), 10)
	if len(snap.SlowestPaths) != 1 || snap.SlowestPaths[0].Path != "new" {
		t.Errorf("expected only the recent entry, got %v", snap.SlowestPaths)
	}
}

// TestPercentile verifies interpolation between sorted samples.
func TestPercentile(t *testing.T) {
	sorted := []float64{10, 20, 30, 40}
	if p := percentile(sorted, 50); p != 25 {
		t.Errorf("p50 = %v, want 25", p)
	}
	if p := percentile(sorted, 100); p != 40 {
		t.Errorf("p100 = %v, want 40", p)
	}
	if p := percentile(nil, 50); p != 0 {
		t.Errorf("empty p50 = %v, want 0", p)
	}
}
