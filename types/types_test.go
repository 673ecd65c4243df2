package types

import (
	"testing"
	"time"
)

func TestJSONBindAndScan(t *testing.T) {
	j := NewJSON(map[string]int{"a": 1})
	if !j.Valid {
		t.Fatal("expected valid JSON value")
	}

	v, err := j.Value()
	if err != nil {
		t.Fatalf("Value failed: %v", err)
	}

	var back JSON[map[string]int]
	if err := back.Scan(v); err != nil {
		t.Fatalf("Scan failed: %v", err)
	}
	if back.Val()["a"] != 1 {
		t.Errorf("round trip = %v", back.Val())
	}
}

func TestJSONScanNil(t *testing.T) {
	var j JSON[int]
	if err := j.Scan(nil); err != nil {
		t.Fatalf("Scan failed: %v", err)
	}
	if j.Valid {
		t.Error("expected invalid after scanning NULL")
	}
}

func TestJSONScanGarbage(t *testing.T) {
	var j JSON[int]
	if err := j.Scan("{not json"); err == nil {
		t.Error("expected error for malformed JSON")
	}
	if j.Valid {
		t.Error("expected invalid after failed scan")
	}
}

func TestTimeRoundTrip(t *testing.T) {
	now := time.Date(2025, 6, 1, 12, 30, 0, 0, time.UTC)

	v, err := Time(now).Value()
	if err != nil {
		t.Fatalf("Value failed: %v", err)
	}
	if v != "2025-06-01 12:30:00" {
		t.Errorf("value = %v", v)
	}

	var back Time
	if err := back.Scan(v); err != nil {
		t.Fatalf("Scan failed: %v", err)
	}
	if !time.Time(back).Equal(now) {
		t.Errorf("round trip = %v, want %v", back, now)
	}
}

func TestTimeZeroBindsNull(t *testing.T) {
	v, err := Time{}.Value()
	if err != nil {
		t.Fatalf("Value failed: %v", err)
	}
	if v != nil {
		t.Errorf("value = %v, want nil", v)
	}
}

func TestTimeScanNil(t *testing.T) {
	back := Time(time.Now())
	if err := back.Scan(nil); err != nil {
		t.Fatalf("Scan failed: %v", err)
	}
	if !back.IsZero() {
		t.Errorf("expected zero time, got %v", back)
	}
}
