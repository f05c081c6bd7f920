package users

import (
	"github.com/SB-fmayen/EduLink-sub000/app/config"
	"github.com/SB-fmayen/EduLink-sub000/app/database"
	"github.com/SB-fmayen/EduLink-sub000/app/models"
	"github.com/SB-fmayen/EduLink-sub000/app/routes/auth"
	"github.com/gofiber/fiber/v2"
)

func SetupUsersRoutes(app *fiber.App) {
	users := app.Group("/users")
	users.Use(auth.AuthMiddleware)
	users.Use(auth.RoleMiddleware(models.RoleAdmin, models.RoleDirector))
	users.Get("/", UsersPage)

	api := app.Group("/api/users")
	api.Use(auth.AuthMiddleware)
	api.Use(auth.RoleMiddleware(models.RoleAdmin, models.RoleDirector))
	api.Get("/", GetUsersAPI)
	api.Post("/", CreateUserAPI)
	// Role assignment is reserved for admins; directors manage the rest of
	// the user surface but cannot change permissions.
	api.Post("/:userId/role", auth.RoleMiddleware(models.RoleAdmin), AssignRoleAPI)
}

func UsersPage(c *fiber.Ctx) error {
	user := c.Locals("user").(*models.UserProfile)

	users, totalCount, err := database.GetUsersWithFilters(config.GetDB(), database.UserFilters{
		SchoolID: user.SchoolID,
	})
	if err != nil {
		return c.Status(500).SendString("Failed to fetch users")
	}

	return c.Render("users/index", fiber.Map{
		"Title":       "Users - EduLink",
		"CurrentPage": "users",
		"user":        user,
		"users":       users,
		"TotalCount":  totalCount,
		"Roles":       models.AllRoles,
	})
}
