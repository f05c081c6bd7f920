package schools

import (
	"github.com/SB-fmayen/EduLink-sub000/app/config"
	"github.com/SB-fmayen/EduLink-sub000/app/database"
	"github.com/SB-fmayen/EduLink-sub000/app/helpers"
	"github.com/SB-fmayen/EduLink-sub000/app/models"
	"github.com/SB-fmayen/EduLink-sub000/app/routes/auth"
	"github.com/gofiber/fiber/v2"
)

func SetupSchoolsRoutes(app *fiber.App) {
	schools := app.Group("/schools")
	schools.Use(auth.AuthMiddleware)
	schools.Use(auth.RoleMiddleware(models.RoleAdmin))
	schools.Get("/", SchoolsPage)

	api := app.Group("/api/schools")
	api.Use(auth.AuthMiddleware)
	api.Use(auth.RoleMiddleware(models.RoleAdmin))
	api.Get("/", GetSchoolsAPI)
	api.Post("/", CreateSchoolAPI)
}

func SchoolsPage(c *fiber.Ctx) error {
	user := c.Locals("user").(*models.UserProfile)

	schools, err := database.GetAllSchools(config.GetDB())
	if err != nil {
		return c.Status(500).SendString("Failed to fetch schools")
	}

	return c.Render("schools/index", fiber.Map{
		"Title":       "Schools - EduLink",
		"CurrentPage": "schools",
		"user":        user,
		"schools":     schools,
	})
}

func GetSchoolsAPI(c *fiber.Ctx) error {
	schools, err := database.GetAllSchools(config.GetDB())
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to fetch schools"})
	}

	return c.JSON(fiber.Map{
		"schools": schools,
		"count":   len(schools),
	})
}

func CreateSchoolAPI(c *fiber.Ctx) error {
	type CreateSchoolRequest struct {
		Name    string `json:"name" validate:"required"`
		Address string `json:"address"`
		Phone   string `json:"phone"`
	}

	var req CreateSchoolRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid request body"})
	}
	if ok, resp := helpers.Validate(c, &req); !ok {
		return resp
	}

	school := &models.School{
		Name:    req.Name,
		Address: req.Address,
		Phone:   req.Phone,
	}

	return helpers.Mutation(c, database.CreateSchool(config.GetDB(), school), "School created successfully", school)
}
