package tasks

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"

	"github.com/SB-fmayen/EduLink-sub000/app/config"
	"github.com/SB-fmayen/EduLink-sub000/app/models"
	"github.com/SB-fmayen/EduLink-sub000/app/routes/auth"
)

func newTestApp(t *testing.T) (*fiber.App, sqlmock.Sqlmock) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New() failed: %v", err)
	}
	t.Cleanup(func() { db.Close() })

	config.AppConfig = &config.Config{DB: db}

	app := fiber.New()
	SetupTasksRoutes(app)
	return app, mock
}

func profileRows(id, email string, role models.Role) *sqlmock.Rows {
	now := time.Now()
	return sqlmock.NewRows([]string{
		"id", "email", "password", "first_name", "last_name", "role", "school_id", "is_active", "created_at", "updated_at",
	}).AddRow(id, email, "hash", "Test", "User", string(role), "school-1", true, now, now)
}

func taskRows(taskID, courseID string, totalPoints float64) *sqlmock.Rows {
	now := time.Now()
	return sqlmock.NewRows([]string{
		"id", "course_id", "title", "description", "due_date", "is_group_task", "total_points", "created_at", "updated_at",
	}).AddRow(taskID, courseID, "Homework 3", "", now.Add(24*time.Hour), false, totalPoints, now, now)
}

func courseRows(courseID, teacherID string) *sqlmock.Rows {
	now := time.Now()
	return sqlmock.NewRows([]string{
		"id", "subject_name", "section_name", "grade_name", "teacher_id", "section_id", "school_id",
		"is_active", "created_at", "updated_at", "first_name", "last_name", "email",
	}).AddRow(courseID, "Matematicas", "A", "4to", teacherID, "", "school-1", true, now, now, "Marta", "Lopez", "marta@edulink.test")
}

func enrollmentRows(enrolled bool) *sqlmock.Rows {
	return sqlmock.NewRows([]string{"exists"}).AddRow(enrolled)
}

func jsonRequest(t *testing.T, token, method, path string, body interface{}) *http.Request {
	var buf bytes.Buffer
	if body != nil {
		if err := json.NewEncoder(&buf).Encode(body); err != nil {
			t.Fatalf("encode request failed: %v", err)
		}
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+token)
	return req
}

// A student outside the roster cannot turn anything in; the membership check
// runs before the write.
func TestSubmitTaskAPINotEnrolled(t *testing.T) {
	app, mock := newTestApp(t)

	token, err := auth.GenerateJWT("stu-9", "stu9@edulink.test")
	if err != nil {
		t.Fatalf("GenerateJWT() failed: %v", err)
	}

	mock.ExpectQuery(`SELECT id, email, password`).
		WithArgs("stu-9").
		WillReturnRows(profileRows("stu-9", "stu9@edulink.test", models.RoleStudent))
	mock.ExpectQuery(`SELECT id, course_id, title`).
		WithArgs("task-1").
		WillReturnRows(taskRows("task-1", "course-1", 100))
	mock.ExpectQuery(`SELECT EXISTS`).
		WithArgs("course-1", "stu-9").
		WillReturnRows(enrollmentRows(false))

	resp, err := app.Test(jsonRequest(t, token, "POST", "/api/tasks/task-1/submit", nil), -1)
	if err != nil {
		t.Fatalf("app.Test() failed: %v", err)
	}
	assert.Equal(t, 403, resp.StatusCode)

	// no INSERT was issued
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSubmitTaskAPIEnrolled(t *testing.T) {
	app, mock := newTestApp(t)

	token, err := auth.GenerateJWT("stu-9", "stu9@edulink.test")
	if err != nil {
		t.Fatalf("GenerateJWT() failed: %v", err)
	}

	mock.ExpectQuery(`SELECT id, email, password`).
		WithArgs("stu-9").
		WillReturnRows(profileRows("stu-9", "stu9@edulink.test", models.RoleStudent))
	mock.ExpectQuery(`SELECT id, course_id, title`).
		WithArgs("task-1").
		WillReturnRows(taskRows("task-1", "course-1", 100))
	mock.ExpectQuery(`SELECT EXISTS`).
		WithArgs("course-1", "stu-9").
		WillReturnRows(enrollmentRows(true))
	mock.ExpectExec(`INSERT INTO submissions`).
		WithArgs("stu-9", "task-1", models.SubmissionStatusSubmitted, sqlmock.AnyArg()).
		WillReturnResult(sqlmock.NewResult(0, 1))

	resp, err := app.Test(jsonRequest(t, token, "POST", "/api/tasks/task-1/submit", nil), -1)
	if err != nil {
		t.Fatalf("app.Test() failed: %v", err)
	}
	assert.Equal(t, 200, resp.StatusCode)
	assert.NoError(t, mock.ExpectationsWereMet())
}

// Grading a student who is not on the roster must not synthesize a carrier
// row for them.
func TestSaveGradeAPIStudentNotEnrolled(t *testing.T) {
	app, mock := newTestApp(t)

	token, err := auth.GenerateJWT("teacher-1", "marta@edulink.test")
	if err != nil {
		t.Fatalf("GenerateJWT() failed: %v", err)
	}

	studentID := "0f8fad5b-d9cb-469f-a165-70867728950e"

	mock.ExpectQuery(`SELECT id, email, password`).
		WithArgs("teacher-1").
		WillReturnRows(profileRows("teacher-1", "marta@edulink.test", models.RoleTeacher))
	mock.ExpectQuery(`SELECT id, course_id, title`).
		WithArgs("task-1").
		WillReturnRows(taskRows("task-1", "course-1", 100))
	mock.ExpectQuery(`FROM courses c`).
		WithArgs("course-1").
		WillReturnRows(courseRows("course-1", "teacher-1"))
	mock.ExpectQuery(`SELECT EXISTS`).
		WithArgs("course-1", studentID).
		WillReturnRows(enrollmentRows(false))

	body := fiber.Map{"student_id": studentID, "score": 85}
	resp, err := app.Test(jsonRequest(t, token, "POST", "/api/tasks/task-1/grade", body), -1)
	if err != nil {
		t.Fatalf("app.Test() failed: %v", err)
	}
	assert.Equal(t, 404, resp.StatusCode)
	assert.NoError(t, mock.ExpectationsWereMet())
}
