package attendance

import (
	"database/sql"
	"time"

	"github.com/SB-fmayen/EduLink-sub000/app/config"
	"github.com/SB-fmayen/EduLink-sub000/app/database"
	"github.com/SB-fmayen/EduLink-sub000/app/helpers"
	"github.com/SB-fmayen/EduLink-sub000/app/models"
	"github.com/gofiber/fiber/v2"
)

// DaySheetRow pairs a rostered student with their record for the day; the
// record is nil while the student is unmarked.
type DaySheetRow struct {
	Student *models.UserProfile      `json:"student"`
	Record  *models.AttendanceRecord `json:"record,omitempty"`
}

// buildDaySheet joins the course roster with the day's records by student
// id. Records for students no longer on the roster are dropped.
func buildDaySheet(courseID string, date time.Time) ([]*DaySheetRow, error) {
	db := config.GetDB()

	students, err := database.ResolveCourseStudents(db, courseID)
	if err != nil {
		return nil, err
	}

	records, err := database.GetAttendanceByCourseAndDate(db, courseID, date)
	if err != nil {
		return nil, err
	}

	byStudent := make(map[string]*models.AttendanceRecord, len(records))
	for _, rec := range records {
		byStudent[rec.StudentID] = rec
	}

	rows := make([]*DaySheetRow, 0, len(students))
	for _, student := range students {
		rows = append(rows, &DaySheetRow{Student: student, Record: byStudent[student.ID]})
	}
	return rows, nil
}

func GetAttendanceByCourseAndDateAPI(c *fiber.Ctx) error {
	courseID := c.Params("courseId")
	dateStr := c.Params("date")

	if courseID == "" || dateStr == "" {
		return c.Status(400).JSON(fiber.Map{"error": "Course ID and date are required"})
	}

	// Parse date
	date, err := time.Parse(models.DateLayout, dateStr)
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid date format. Use YYYY-MM-DD"})
	}

	rows, err := buildDaySheet(courseID, date)
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to fetch attendance records"})
	}

	return c.JSON(fiber.Map{
		"rows":      rows,
		"count":     len(rows),
		"date":      dateStr,
		"course_id": courseID,
	})
}

// SetStatusAPI writes one student's status for one day. The record id is
// studentID_date, so repeated calls overwrite rather than accumulate.
func SetStatusAPI(c *fiber.Ctx) error {
	type AttendanceRequest struct {
		CourseID  string `json:"course_id" validate:"required,uuid"`
		StudentID string `json:"student_id" validate:"required,uuid"`
		Date      string `json:"date" validate:"required"`
		Status    string `json:"status" validate:"required,oneof=presente ausente tardanza"`
	}

	var req AttendanceRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid request body"})
	}
	if ok, resp := helpers.Validate(c, &req); !ok {
		return resp
	}

	// Parse date
	date, err := time.Parse(models.DateLayout, req.Date)
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid date format. Use YYYY-MM-DD"})
	}

	status, valid := models.ParseAttendanceStatus(req.Status)
	if !valid {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid status. Must be presente, ausente, or tardanza"})
	}

	db := config.GetDB()

	course, err := database.GetCourseByID(db, req.CourseID)
	if err != nil {
		return c.Status(404).JSON(fiber.Map{"error": "Course not found"})
	}

	user := c.Locals("user").(*models.UserProfile)
	if !models.CanManage(user.Role, course.IsOwnedBy(user.ID)) {
		return c.Status(403).JSON(fiber.Map{"error": "Insufficient permissions"})
	}

	// The student profile must resolve: the record stores the display name
	// as written today, and old records keep whatever name they were
	// written with.
	student, err := database.GetUserByID(db, req.StudentID)
	if err != nil {
		if err == sql.ErrNoRows {
			return c.Status(404).JSON(fiber.Map{"error": "Student not found"})
		}
		return c.Status(500).JSON(fiber.Map{"error": "Database error"})
	}

	markedBy := user.ID
	record := &models.AttendanceRecord{
		CourseID:    req.CourseID,
		StudentID:   student.ID,
		StudentName: student.FullName(),
		Date:        date,
		Status:      status,
		MarkedBy:    &markedBy,
	}

	return helpers.Mutation(c, database.UpsertAttendance(db, record), "Attendance record saved successfully", record)
}

func GetStudentHistoryAPI(c *fiber.Ctx) error {
	courseID := c.Params("courseId")
	studentID := c.Params("studentId")

	if courseID == "" || studentID == "" {
		return c.Status(400).JSON(fiber.Map{"error": "Course ID and student ID are required"})
	}

	records, err := database.GetStudentAttendanceHistory(config.GetDB(), courseID, studentID)
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to fetch attendance history"})
	}

	return c.JSON(fiber.Map{
		"attendance": records,
		"count":      len(records),
		"student_id": studentID,
	})
}
