package dashboard

import (
	"github.com/SB-fmayen/EduLink-sub000/app/config"
	"github.com/SB-fmayen/EduLink-sub000/app/database"
	"github.com/SB-fmayen/EduLink-sub000/app/models"
	"github.com/SB-fmayen/EduLink-sub000/app/routes/auth"
	"github.com/gofiber/fiber/v2"
)

func SetupDashboardRoutes(app *fiber.App) {
	dashboard := app.Group("/dashboard")
	dashboard.Use(auth.AuthMiddleware)
	dashboard.Get("/", DashboardPage)

	api := app.Group("/api/dashboard")
	api.Use(auth.AuthMiddleware)
	api.Get("/stats", GetDashboardStatsAPI)
}

// DashboardPage renders the landing page for every role; the template
// branches on Role to decide which navigation cards to show.
func DashboardPage(c *fiber.Ctx) error {
	user := c.Locals("user").(*models.UserProfile)

	var courses []*models.Course
	var err error
	switch user.Role {
	case models.RoleAdmin, models.RoleDirector:
		courses, err = database.GetCoursesBySchool(config.GetDB(), user.SchoolID)
	case models.RoleTeacher:
		courses, err = database.GetCoursesByTeacher(config.GetDB(), user.ID)
	default:
		courses, err = database.GetCoursesByStudent(config.GetDB(), user.ID)
	}
	if err != nil {
		return c.Status(500).SendString("Failed to fetch courses")
	}

	return c.Render("dashboard/index", fiber.Map{
		"Title":       "Dashboard - EduLink",
		"CurrentPage": "dashboard",
		"user":        user,
		"FirstName":   user.FirstName,
		"LastName":    user.LastName,
		"Role":        string(user.Role),
		"courses":     courses,
	})
}

func GetDashboardStatsAPI(c *fiber.Ctx) error {
	user := c.Locals("user").(*models.UserProfile)

	counts, err := database.CountUsersByRole(config.GetDB(), user.SchoolID)
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to fetch statistics"})
	}

	courses, err := database.GetCoursesBySchool(config.GetDB(), user.SchoolID)
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to fetch courses"})
	}

	return c.JSON(fiber.Map{
		"success": true,
		"stats": fiber.Map{
			"students": counts[models.RoleStudent],
			"teachers": counts[models.RoleTeacher],
			"parents":  counts[models.RoleParent],
			"courses":  len(courses),
		},
	})
}
