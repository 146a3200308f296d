package utils

import (
	"encoding/json"
	"testing"
	"time"
)

func TestParseDateParam(t *testing.T) {
	start, end, err := ParseDateParam("2026-09-11")
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if start.Hour() != 0 || start.Minute() != 0 {
		t.Errorf("start of day = %v", start)
	}
	if end.Sub(start) != 24*time.Hour {
		t.Errorf("end bound = %v, want start of next day", end)
	}
	if start.Day() != 11 || start.Month() != time.September {
		t.Errorf("wrong day: %v", start)
	}

	// cận trên là nửa khoảng: 23:59:59.5 của ngày đó vẫn nằm trong [start, end)
	lastMoment := start.Add(24*time.Hour - 500*time.Millisecond)
	if !lastMoment.Before(end) {
		t.Errorf("%v should fall inside the day window", lastMoment)
	}

	if _, _, err := ParseDateParam("11-09-2026"); err == nil {
		t.Error("expected error for non ISO date")
	}
	if _, _, err := ParseDateParam("not-a-date"); err == nil {
		t.Error("expected error for garbage input")
	}
}

func TestCustomDateJSON(t *testing.T) {
	var d CustomDate
	if err := json.Unmarshal([]byte(`"2026-09-11"`), &d); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if d.Format("2006-01-02") != "2026-09-11" {
		t.Errorf("date = %s", d)
	}

	out, err := json.Marshal(d)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	if string(out) != `"2026-09-11"` {
		t.Errorf("marshal = %s", out)
	}

	if err := json.Unmarshal([]byte(`"11/09/2026"`), &d); err == nil {
		t.Error("expected error for wrong format")
	}

	var null CustomDate
	out, _ = json.Marshal(null)
	if string(out) != "null" {
		t.Errorf("zero date marshal = %s", out)
	}
}
