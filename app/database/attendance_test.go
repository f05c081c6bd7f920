package database

import (
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"

	"github.com/SB-fmayen/EduLink-sub000/app/models"
)

// Marking a student repeatedly for the same day must keep one stored row.
// Every call derives the same deterministic id, so the write always lands
// on the same conflict key and overwrites the status in place.
func TestUpsertAttendanceOverwritesSameRow(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New() failed: %v", err)
	}
	defer db.Close()

	date := time.Date(2024, 3, 14, 8, 15, 0, 0, time.UTC)
	wantID := models.AttendanceID("stu-1", date)
	markedBy := "teacher-1"

	upsert := `(?s)INSERT INTO attendance_records.*ON CONFLICT \(course_id, id\).*DO UPDATE SET status = EXCLUDED\.status`

	statuses := []models.AttendanceStatus{models.Ausente, models.Tardanza, models.Presente}
	for _, status := range statuses {
		mock.ExpectExec(upsert).
			WithArgs(wantID, "course-1", "stu-1", "Ana Torres", "2024-03-14", string(status), "teacher-1").
			WillReturnResult(sqlmock.NewResult(0, 1))

		rec := &models.AttendanceRecord{
			CourseID:    "course-1",
			StudentID:   "stu-1",
			StudentName: "Ana Torres",
			Date:        date,
			Status:      status,
			MarkedBy:    &markedBy,
		}
		if err := UpsertAttendance(db, rec); err != nil {
			t.Fatalf("UpsertAttendance(%s) failed: %v", status, err)
		}
		assert.Equal(t, wantID, rec.ID)
	}

	assert.NoError(t, mock.ExpectationsWereMet())
}

// The clock time of the marking moment must not change the target row; only
// the calendar day is part of the id.
func TestUpsertAttendanceIgnoresTimeOfDay(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New() failed: %v", err)
	}
	defer db.Close()

	morning := time.Date(2024, 3, 14, 7, 5, 0, 0, time.UTC)
	evening := time.Date(2024, 3, 14, 21, 40, 0, 0, time.UTC)
	wantID := models.AttendanceID("stu-1", morning)
	markedBy := "teacher-1"

	for _, at := range []time.Time{morning, evening} {
		mock.ExpectExec(`INSERT INTO attendance_records`).
			WithArgs(wantID, "course-1", "stu-1", "Ana Torres", "2024-03-14", string(models.Presente), "teacher-1").
			WillReturnResult(sqlmock.NewResult(0, 1))

		rec := &models.AttendanceRecord{
			CourseID:    "course-1",
			StudentID:   "stu-1",
			StudentName: "Ana Torres",
			Date:        at,
			Status:      models.Presente,
			MarkedBy:    &markedBy,
		}
		if err := UpsertAttendance(db, rec); err != nil {
			t.Fatalf("UpsertAttendance at %s failed: %v", at, err)
		}
		assert.Equal(t, wantID, rec.ID)
	}

	assert.NoError(t, mock.ExpectationsWereMet())
}
