package database

import (
	"database/sql"

	"github.com/SB-fmayen/EduLink-sub000/app/models"
)

const courseColumns = `c.id, c.subject_name, c.section_name, c.grade_name, c.teacher_id,
			  COALESCE(c.section_id::text, ''), COALESCE(c.school_id::text, ''), c.is_active, c.created_at, c.updated_at,
			  u.first_name, u.last_name, u.email`

func scanCourse(rows interface{ Scan(...interface{}) error }) (*models.Course, error) {
	course := &models.Course{}
	var teacherFirstName, teacherLastName, teacherEmail sql.NullString
	err := rows.Scan(
		&course.ID, &course.SubjectName, &course.SectionName, &course.GradeName, &course.TeacherID,
		&course.SectionID, &course.SchoolID, &course.IsActive, &course.CreatedAt, &course.UpdatedAt,
		&teacherFirstName, &teacherLastName, &teacherEmail,
	)
	if err != nil {
		return nil, err
	}
	if teacherFirstName.Valid {
		course.Teacher = &models.UserProfile{
			ID:        course.TeacherID,
			FirstName: teacherFirstName.String,
			LastName:  teacherLastName.String,
			Email:     teacherEmail.String,
			Role:      models.RoleTeacher,
		}
	}
	return course, nil
}

func GetCourseByID(db *sql.DB, courseID string) (*models.Course, error) {
	query := `SELECT ` + courseColumns + `
			  FROM courses c
			  LEFT JOIN users u ON c.teacher_id = u.id
			  WHERE c.id = $1 AND c.is_active = true`
	return scanCourse(db.QueryRow(query, courseID))
}

func queryCourses(db *sql.DB, query string, args ...interface{}) ([]*models.Course, error) {
	rows, err := db.Query(query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var courses []*models.Course
	for rows.Next() {
		course, err := scanCourse(rows)
		if err != nil {
			return nil, err
		}
		courses = append(courses, course)
	}
	if courses == nil {
		courses = []*models.Course{}
	}
	return courses, rows.Err()
}

func GetCoursesBySchool(db *sql.DB, schoolID string) ([]*models.Course, error) {
	query := `SELECT ` + courseColumns + `
			  FROM courses c
			  LEFT JOIN users u ON c.teacher_id = u.id
			  WHERE c.school_id = $1 AND c.is_active = true
			  ORDER BY c.grade_name, c.subject_name`
	return queryCourses(db, query, schoolID)
}

func GetCoursesByTeacher(db *sql.DB, teacherID string) ([]*models.Course, error) {
	query := `SELECT ` + courseColumns + `
			  FROM courses c
			  LEFT JOIN users u ON c.teacher_id = u.id
			  WHERE c.teacher_id = $1 AND c.is_active = true
			  ORDER BY c.grade_name, c.subject_name`
	return queryCourses(db, query, teacherID)
}

// GetCoursesByStudent resolves enrollment membership back to courses.
func GetCoursesByStudent(db *sql.DB, studentID string) ([]*models.Course, error) {
	query := `SELECT ` + courseColumns + `
			  FROM courses c
			  JOIN enrollments e ON e.course_id = c.id
			  LEFT JOIN users u ON c.teacher_id = u.id
			  WHERE e.student_id = $1 AND c.is_active = true
			  ORDER BY c.grade_name, c.subject_name`
	return queryCourses(db, query, studentID)
}

// UpdateCourse patches the editable course fields. Provisioning of new
// courses happens outside the web surface, so there is no CreateCourse
// handler path; the migrate CLI seeds development data directly.
func UpdateCourse(db *sql.DB, course *models.Course) error {
	query := `UPDATE courses
			  SET subject_name = $1, section_name = $2, grade_name = $3, teacher_id = $4, updated_at = NOW()
			  WHERE id = $5 AND is_active = true`
	res, err := db.Exec(query, course.SubjectName, course.SectionName, course.GradeName, course.TeacherID, course.ID)
	if err != nil {
		return err
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return sql.ErrNoRows
	}
	return nil
}

func GetEnrollmentsByCourse(db *sql.DB, courseID string) ([]*models.Enrollment, error) {
	query := `SELECT id, course_id, student_id, created_at
			  FROM enrollments WHERE course_id = $1 ORDER BY created_at`

	rows, err := db.Query(query, courseID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var enrollments []*models.Enrollment
	for rows.Next() {
		e := &models.Enrollment{}
		if err := rows.Scan(&e.ID, &e.CourseID, &e.StudentID, &e.CreatedAt); err != nil {
			return nil, err
		}
		enrollments = append(enrollments, e)
	}
	if enrollments == nil {
		enrollments = []*models.Enrollment{}
	}
	return enrollments, rows.Err()
}

// IsStudentEnrolled reports membership in a course roster. Writes keyed by
// student id (submissions, grades) check it first so rows never appear for
// students outside the roster.
func IsStudentEnrolled(db *sql.DB, courseID, studentID string) (bool, error) {
	query := `SELECT EXISTS (
				  SELECT 1 FROM enrollments WHERE course_id = $1 AND student_id = $2
			  )`
	var enrolled bool
	err := db.QueryRow(query, courseID, studentID).Scan(&enrolled)
	return enrolled, err
}

func CreateEnrollment(db *sql.DB, courseID, studentID string) error {
	query := `INSERT INTO enrollments (course_id, student_id) VALUES ($1, $2)
			  ON CONFLICT (course_id, student_id) DO NOTHING`
	_, err := db.Exec(query, courseID, studentID)
	return err
}
