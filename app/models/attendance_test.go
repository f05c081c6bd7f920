package models

import (
	"testing"
	"time"
)

func TestAttendanceID(t *testing.T) {
	date := time.Date(2024, 3, 15, 10, 30, 0, 0, time.UTC)

	id := AttendanceID("a1b2", date)
	if id != "a1b2_2024-03-15" {
		t.Errorf("AttendanceID() = %q, want %q", id, "a1b2_2024-03-15")
	}

	// The time of day must not matter: every write for the same student and
	// calendar day maps onto the same record.
	evening := time.Date(2024, 3, 15, 22, 5, 0, 0, time.UTC)
	if AttendanceID("a1b2", evening) != id {
		t.Error("AttendanceID differs for the same student and calendar day")
	}
}

func TestParseAttendanceStatus(t *testing.T) {
	for _, valid := range []string{"presente", "ausente", "tardanza"} {
		status, ok := ParseAttendanceStatus(valid)
		if !ok || string(status) != valid {
			t.Errorf("ParseAttendanceStatus(%q) = %q, %v", valid, status, ok)
		}
	}

	for _, invalid := range []string{"present", "PRESENTE", "", "excused"} {
		if _, ok := ParseAttendanceStatus(invalid); ok {
			t.Errorf("ParseAttendanceStatus(%q) accepted an invalid status", invalid)
		}
	}
}
