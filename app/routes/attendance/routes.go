package attendance

import (
	"time"

	"github.com/SB-fmayen/EduLink-sub000/app/config"
	"github.com/SB-fmayen/EduLink-sub000/app/database"
	"github.com/SB-fmayen/EduLink-sub000/app/models"
	"github.com/SB-fmayen/EduLink-sub000/app/routes/auth"
	"github.com/gofiber/fiber/v2"
)

func SetupAttendanceRoutes(app *fiber.App) {
	attendance := app.Group("/attendance")
	attendance.Use(auth.AuthMiddleware)

	// Routes
	attendance.Get("/", AttendancePage)
	attendance.Get("/course/:courseId/date/:date", AttendanceByCourseAndDatePage)

	// API routes
	api := app.Group("/api/attendance")
	api.Use(auth.AuthMiddleware)
	api.Get("/course/:courseId/date/:date", GetAttendanceByCourseAndDateAPI)
	api.Get("/course/:courseId/student/:studentId", GetStudentHistoryAPI)
	api.Post("/single", SetStatusAPI)
}

func AttendancePage(c *fiber.Ctx) error {
	user := c.Locals("user").(*models.UserProfile)

	var courses []*models.Course
	var err error
	switch user.Role {
	case models.RoleAdmin, models.RoleDirector:
		courses, err = database.GetCoursesBySchool(config.GetDB(), user.SchoolID)
	default:
		courses, err = database.GetCoursesByTeacher(config.GetDB(), user.ID)
	}
	if err != nil {
		return c.Status(500).SendString("Failed to fetch courses")
	}

	return c.Render("attendance/index", fiber.Map{
		"Title":       "Attendance - EduLink",
		"CurrentPage": "attendance",
		"user":        user,
		"Today":       time.Now().Format(models.DateLayout),
		"courses":     courses,
	})
}

// AttendanceByCourseAndDatePage is the day sheet: the full roster joined
// with whatever records exist for the date, unmarked students included.
func AttendanceByCourseAndDatePage(c *fiber.Ctx) error {
	user := c.Locals("user").(*models.UserProfile)
	courseID := c.Params("courseId")
	dateStr := c.Params("date")

	date, err := time.Parse(models.DateLayout, dateStr)
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid date format. Use YYYY-MM-DD")
	}

	course, err := database.GetCourseByID(config.GetDB(), courseID)
	if err != nil {
		return fiber.NewError(fiber.StatusNotFound, "Course not found")
	}

	sheet, err := buildDaySheet(courseID, date)
	if err != nil {
		return c.Status(500).SendString("Failed to fetch attendance")
	}

	return c.Render("attendance/sheet", fiber.Map{
		"Title":       "Attendance - EduLink",
		"CurrentPage": "attendance",
		"user":        user,
		"course":      course,
		"Date":        dateStr,
		"rows":        sheet,
		"CanManage":   models.CanManage(user.Role, course.IsOwnedBy(user.ID)),
	})
}
