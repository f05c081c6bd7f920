package tasks

import (
	"github.com/SB-fmayen/EduLink-sub000/app/config"
	"github.com/SB-fmayen/EduLink-sub000/app/database"
	"github.com/SB-fmayen/EduLink-sub000/app/models"
	"github.com/SB-fmayen/EduLink-sub000/app/routes/auth"
	"github.com/gofiber/fiber/v2"
)

func SetupTasksRoutes(app *fiber.App) {
	tasks := app.Group("/tasks")
	tasks.Use(auth.AuthMiddleware)
	tasks.Get("/course/:courseId", TasksByCoursePage)
	tasks.Get("/:taskId/grading", GradingPage)

	api := app.Group("/api/tasks")
	api.Use(auth.AuthMiddleware)
	api.Get("/course/:courseId", GetTasksByCourseAPI)
	api.Post("/course/:courseId", CreateTaskAPI)
	api.Put("/:taskId", UpdateTaskAPI)
	api.Get("/:taskId/submissions", GetTaskSubmissionsAPI)
	api.Post("/:taskId/submit", SubmitTaskAPI)
	api.Post("/:taskId/grade", SaveGradeAPI)
}

func TasksByCoursePage(c *fiber.Ctx) error {
	user := c.Locals("user").(*models.UserProfile)
	courseID := c.Params("courseId")

	course, err := database.GetCourseByID(config.GetDB(), courseID)
	if err != nil {
		return fiber.NewError(fiber.StatusNotFound, "Course not found")
	}

	tasks, err := database.GetTasksByCourse(config.GetDB(), courseID)
	if err != nil {
		return c.Status(500).SendString("Failed to fetch tasks")
	}

	return c.Render("tasks/index", fiber.Map{
		"Title":       "Tasks - EduLink",
		"CurrentPage": "tasks",
		"user":        user,
		"course":      course,
		"tasks":       tasks,
		"CanManage":   models.CanManage(user.Role, course.IsOwnedBy(user.ID)),
	})
}

// GradingPage lists every rostered student with their submission state so
// the teacher can open an edit buffer per row.
func GradingPage(c *fiber.Ctx) error {
	user := c.Locals("user").(*models.UserProfile)
	taskID := c.Params("taskId")

	task, err := database.GetTaskByID(config.GetDB(), taskID)
	if err != nil {
		return fiber.NewError(fiber.StatusNotFound, "Task not found")
	}

	course, err := database.GetCourseByID(config.GetDB(), task.CourseID)
	if err != nil {
		return fiber.NewError(fiber.StatusNotFound, "Course not found")
	}

	if !models.CanManage(user.Role, course.IsOwnedBy(user.ID)) {
		return fiber.NewError(fiber.StatusForbidden, "Insufficient permissions")
	}

	rows, err := buildGradingRows(task)
	if err != nil {
		return c.Status(500).SendString("Failed to fetch submissions")
	}

	return c.Render("tasks/grading", fiber.Map{
		"Title":       "Grading - EduLink",
		"CurrentPage": "tasks",
		"user":        user,
		"course":      course,
		"task":        task,
		"rows":        rows,
	})
}
