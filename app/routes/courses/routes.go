package courses

import (
	"github.com/SB-fmayen/EduLink-sub000/app/config"
	"github.com/SB-fmayen/EduLink-sub000/app/database"
	"github.com/SB-fmayen/EduLink-sub000/app/models"
	"github.com/SB-fmayen/EduLink-sub000/app/routes/auth"
	"github.com/gofiber/fiber/v2"
)

func SetupCoursesRoutes(app *fiber.App) {
	courses := app.Group("/courses")
	courses.Use(auth.AuthMiddleware)
	courses.Get("/", CoursesPage)
	courses.Get("/:courseId", CourseDetailPage)

	api := app.Group("/api/courses")
	api.Use(auth.AuthMiddleware)
	api.Get("/", GetCoursesAPI)
	api.Get("/:courseId", GetCourseAPI)
	api.Get("/:courseId/students", GetCourseStudentsAPI)
	api.Put("/:courseId", UpdateCourseAPI)
}

func CoursesPage(c *fiber.Ctx) error {
	user := c.Locals("user").(*models.UserProfile)

	courses, err := coursesForUser(user)
	if err != nil {
		return c.Status(500).SendString("Failed to fetch courses")
	}

	return c.Render("courses/index", fiber.Map{
		"Title":       "Courses - EduLink",
		"CurrentPage": "courses",
		"user":        user,
		"Role":        string(user.Role),
		"courses":     courses,
	})
}

func CourseDetailPage(c *fiber.Ctx) error {
	user := c.Locals("user").(*models.UserProfile)
	courseID := c.Params("courseId")

	course, err := database.GetCourseByID(config.GetDB(), courseID)
	if err != nil {
		return fiber.NewError(fiber.StatusNotFound, "Course not found")
	}

	students, err := database.ResolveCourseStudents(config.GetDB(), courseID)
	if err != nil {
		return c.Status(500).SendString("Failed to fetch students")
	}

	return c.Render("courses/detail", fiber.Map{
		"Title":       course.SubjectName + " - EduLink",
		"CurrentPage": "courses",
		"user":        user,
		"course":      course,
		"students":    students,
		"CanManage":   models.CanManage(user.Role, course.IsOwnedBy(user.ID)),
	})
}
