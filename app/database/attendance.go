package database

import (
	"database/sql"
	"time"

	"github.com/SB-fmayen/EduLink-sub000/app/models"
)

func GetAttendanceByCourseAndDate(db *sql.DB, courseID string, date time.Time) ([]*models.AttendanceRecord, error) {
	query := `SELECT id, course_id, student_id, student_name, date, status, marked_by, created_at, updated_at
			  FROM attendance_records
			  WHERE course_id = $1 AND date = $2
			  ORDER BY student_name`

	rows, err := db.Query(query, courseID, date.Format(models.DateLayout))
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var records []*models.AttendanceRecord
	for rows.Next() {
		rec := &models.AttendanceRecord{}
		if err := rows.Scan(
			&rec.ID, &rec.CourseID, &rec.StudentID, &rec.StudentName,
			&rec.Date, &rec.Status, &rec.MarkedBy, &rec.CreatedAt, &rec.UpdatedAt,
		); err != nil {
			return nil, err
		}
		records = append(records, rec)
	}
	if records == nil {
		records = []*models.AttendanceRecord{}
	}
	return records, rows.Err()
}

// UpsertAttendance writes one record under its deterministic id. Repeated
// calls for the same (student, date) overwrite the status in place, so the
// stored row count per pair stays at one; concurrent writers last-write-win.
func UpsertAttendance(db *sql.DB, rec *models.AttendanceRecord) error {
	rec.ID = models.AttendanceID(rec.StudentID, rec.Date)

	query := `INSERT INTO attendance_records (id, course_id, student_id, student_name, date, status, marked_by)
			  VALUES ($1, $2, $3, $4, $5, $6, $7)
			  ON CONFLICT (course_id, id)
			  DO UPDATE SET status = EXCLUDED.status,
							student_name = EXCLUDED.student_name,
							marked_by = EXCLUDED.marked_by,
							updated_at = NOW()`

	_, err := db.Exec(query,
		rec.ID, rec.CourseID, rec.StudentID, rec.StudentName,
		rec.Date.Format(models.DateLayout), rec.Status, rec.MarkedBy,
	)
	return err
}

// GetStudentAttendanceHistory lists a student's records in a course, most
// recent first, for the per-student report view.
func GetStudentAttendanceHistory(db *sql.DB, courseID, studentID string) ([]*models.AttendanceRecord, error) {
	query := `SELECT id, course_id, student_id, student_name, date, status, marked_by, created_at, updated_at
			  FROM attendance_records
			  WHERE course_id = $1 AND student_id = $2
			  ORDER BY date DESC`

	rows, err := db.Query(query, courseID, studentID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var records []*models.AttendanceRecord
	for rows.Next() {
		rec := &models.AttendanceRecord{}
		if err := rows.Scan(
			&rec.ID, &rec.CourseID, &rec.StudentID, &rec.StudentName,
			&rec.Date, &rec.Status, &rec.MarkedBy, &rec.CreatedAt, &rec.UpdatedAt,
		); err != nil {
			return nil, err
		}
		records = append(records, rec)
	}
	if records == nil {
		records = []*models.AttendanceRecord{}
	}
	return records, rows.Err()
}

// CountUnrecordedCourses reports, per school, how many active courses have
// no attendance record at all for the given date. The evening scheduler
// logs it as a completion reminder.
func CountUnrecordedCourses(db *sql.DB, date time.Time) (map[string]int, error) {
	query := `SELECT COALESCE(c.school_id::text, ''), COUNT(*)
			  FROM courses c
			  WHERE c.is_active = true
			  AND NOT EXISTS (
				  SELECT 1 FROM attendance_records a
				  WHERE a.course_id = c.id AND a.date = $1
			  )
			  GROUP BY c.school_id`

	rows, err := db.Query(query, date.Format(models.DateLayout))
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	counts := make(map[string]int)
	for rows.Next() {
		var schoolID string
		var n int
		if err := rows.Scan(&schoolID, &n); err != nil {
			return nil, err
		}
		counts[schoolID] = n
	}
	return counts, rows.Err()
}
