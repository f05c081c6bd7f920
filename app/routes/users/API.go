package users

import (
	"log"

	"github.com/SB-fmayen/EduLink-sub000/app/config"
	"github.com/SB-fmayen/EduLink-sub000/app/database"
	"github.com/SB-fmayen/EduLink-sub000/app/helpers"
	"github.com/SB-fmayen/EduLink-sub000/app/models"
	"github.com/SB-fmayen/EduLink-sub000/app/routes/auth"
	"github.com/gofiber/fiber/v2"
)

func GetUsersAPI(c *fiber.Ctx) error {
	user := c.Locals("user").(*models.UserProfile)

	filters := database.UserFilters{
		Search:    c.Query("search"),
		Role:      c.Query("role"),
		SchoolID:  user.SchoolID,
		SortBy:    c.Query("sort_by", "last_name"),
		SortOrder: c.Query("sort_order", "asc"),
		Limit:     c.QueryInt("limit", 25),
		Offset:    c.QueryInt("offset", 0),
	}

	users, totalCount, err := database.GetUsersWithFilters(config.GetDB(), filters)
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to fetch users"})
	}

	return c.JSON(fiber.Map{
		"users":       users,
		"count":       len(users),
		"total_count": totalCount,
	})
}

// AssignRoleAPI reassigns a profile's role. The response carries the
// updated profile so the page swaps the badge in place, no reload.
func AssignRoleAPI(c *fiber.Ctx) error {
	type AssignRoleRequest struct {
		Role string `json:"role" validate:"required"`
	}

	userID := c.Params("userId")
	if userID == "" {
		return c.Status(400).JSON(fiber.Map{"error": "User ID is required"})
	}

	var req AssignRoleRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid request body"})
	}
	if ok, resp := helpers.Validate(c, &req); !ok {
		return resp
	}

	role, valid := models.ParseRole(req.Role)
	if !valid {
		return c.Status(400).JSON(fiber.Map{"error": "Unknown role"})
	}

	updated, err := database.UpdateUserRole(config.GetDB(), userID, role)
	return helpers.Mutation(c, err, "Role assigned successfully", updated)
}

// CreateUserAPI is the administrative creation path. It runs behind the
// privileged service credential and shares the CreateUser authority (and
// its defaulting rules) with self-signup.
func CreateUserAPI(c *fiber.Ctx) error {
	if _, err := config.RequireServiceCredential(); err != nil {
		log.Printf("Administrative user creation unavailable: %v", err)
		return c.Status(503).JSON(fiber.Map{"error": "Administrative user creation is not configured"})
	}

	type CreateUserRequest struct {
		Email     string `json:"email" validate:"required,email"`
		Password  string `json:"password" validate:"required,min=8"`
		FirstName string `json:"first_name" validate:"required"`
		LastName  string `json:"last_name" validate:"required"`
		Role      string `json:"role"`
	}

	var req CreateUserRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid request body"})
	}
	if ok, resp := helpers.Validate(c, &req); !ok {
		return resp
	}

	var role models.Role
	if req.Role != "" {
		parsed, valid := models.ParseRole(req.Role)
		if !valid {
			return c.Status(400).JSON(fiber.Map{"error": "Unknown role"})
		}
		role = parsed
	}

	hashedPassword, err := auth.HashPassword(req.Password)
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to hash password"})
	}

	admin := c.Locals("user").(*models.UserProfile)
	user := &models.UserProfile{
		Email:     req.Email,
		Password:  hashedPassword,
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Role:      role,
		SchoolID:  admin.SchoolID,
	}

	return helpers.Mutation(c, database.CreateUser(config.GetDB(), user), "User created successfully", user)
}
