package courses

import (
	"github.com/SB-fmayen/EduLink-sub000/app/config"
	"github.com/SB-fmayen/EduLink-sub000/app/database"
	"github.com/SB-fmayen/EduLink-sub000/app/helpers"
	"github.com/SB-fmayen/EduLink-sub000/app/models"
	"github.com/gofiber/fiber/v2"
)

// coursesForUser is the role branch behind every course listing: admins and
// directors see the whole school, teachers what they own, students and
// parents what they are enrolled in.
func coursesForUser(user *models.UserProfile) ([]*models.Course, error) {
	switch user.Role {
	case models.RoleAdmin, models.RoleDirector:
		return database.GetCoursesBySchool(config.GetDB(), user.SchoolID)
	case models.RoleTeacher:
		return database.GetCoursesByTeacher(config.GetDB(), user.ID)
	default:
		return database.GetCoursesByStudent(config.GetDB(), user.ID)
	}
}

func GetCoursesAPI(c *fiber.Ctx) error {
	user := c.Locals("user").(*models.UserProfile)

	courses, err := coursesForUser(user)
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to fetch courses"})
	}

	return c.JSON(fiber.Map{
		"courses": courses,
		"count":   len(courses),
	})
}

func GetCourseAPI(c *fiber.Ctx) error {
	courseID := c.Params("courseId")
	if courseID == "" {
		return c.Status(400).JSON(fiber.Map{"error": "Course ID is required"})
	}

	course, err := database.GetCourseByID(config.GetDB(), courseID)
	if err != nil {
		return c.Status(404).JSON(fiber.Map{"error": "Course not found"})
	}

	user := c.Locals("user").(*models.UserProfile)
	return c.JSON(fiber.Map{
		"course":     course,
		"can_manage": models.CanManage(user.Role, course.IsOwnedBy(user.ID)),
	})
}

// GetCourseStudentsAPI resolves the course roster: enrollment rows first,
// then one batched profile lookup.
func GetCourseStudentsAPI(c *fiber.Ctx) error {
	courseID := c.Params("courseId")
	if courseID == "" {
		return c.Status(400).JSON(fiber.Map{"error": "Course ID is required"})
	}

	students, err := database.ResolveCourseStudents(config.GetDB(), courseID)
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to fetch students"})
	}

	return c.JSON(fiber.Map{
		"students": students,
		"count":    len(students),
	})
}

func UpdateCourseAPI(c *fiber.Ctx) error {
	type UpdateCourseRequest struct {
		SubjectName string `json:"subject_name" validate:"required"`
		SectionName string `json:"section_name"`
		GradeName   string `json:"grade_name"`
		TeacherID   string `json:"teacher_id" validate:"required,uuid"`
	}

	courseID := c.Params("courseId")
	course, err := database.GetCourseByID(config.GetDB(), courseID)
	if err != nil {
		return c.Status(404).JSON(fiber.Map{"error": "Course not found"})
	}

	user := c.Locals("user").(*models.UserProfile)
	if !models.CanManage(user.Role, course.IsOwnedBy(user.ID)) {
		return c.Status(403).JSON(fiber.Map{"error": "Insufficient permissions"})
	}

	var req UpdateCourseRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid request body"})
	}
	if ok, resp := helpers.Validate(c, &req); !ok {
		return resp
	}

	course.SubjectName = req.SubjectName
	course.SectionName = req.SectionName
	course.GradeName = req.GradeName
	course.TeacherID = req.TeacherID

	return helpers.Mutation(c, database.UpdateCourse(config.GetDB(), course), "Course updated successfully", course)
}
