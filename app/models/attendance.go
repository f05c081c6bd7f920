package models

import "time"

// AttendanceStatus is the closed set of daily statuses.
type AttendanceStatus string

const (
	Presente AttendanceStatus = "presente"
	Ausente  AttendanceStatus = "ausente"
	Tardanza AttendanceStatus = "tardanza"
)

// ParseAttendanceStatus validates a raw status value.
func ParseAttendanceStatus(s string) (AttendanceStatus, bool) {
	switch AttendanceStatus(s) {
	case Presente, Ausente, Tardanza:
		return AttendanceStatus(s), true
	}
	return "", false
}

// AttendanceRecord is one student's status for one calendar day in a course.
// StudentName is denormalized at write time: renaming a student later does
// NOT rewrite past records. That staleness is the contract, not a bug.
type AttendanceRecord struct {
	ID          string           `json:"id"`
	CourseID    string           `json:"course_id" validate:"required,uuid"`
	StudentID   string           `json:"student_id" validate:"required,uuid"`
	StudentName string           `json:"student_name"`
	Date        time.Time        `json:"date" validate:"required"`
	Status      AttendanceStatus `json:"status" validate:"required,oneof=presente ausente tardanza"`
	MarkedBy    *string          `json:"marked_by,omitempty"`
	CreatedAt   time.Time        `json:"created_at"`
	UpdatedAt   time.Time        `json:"updated_at"`
}

// DateLayout is the wire format for attendance dates.
const DateLayout = "2006-01-02"

// AttendanceID builds the deterministic record id studentID_YYYY-MM-DD.
// Uniqueness of one record per (student, date) rests entirely on this id:
// concurrent writers collide on it and the last write wins.
func AttendanceID(studentID string, date time.Time) string {
	return studentID + "_" + date.Format(DateLayout)
}
