package tasks

import (
	"database/sql"
	"encoding/json"
	"time"

	"github.com/SB-fmayen/EduLink-sub000/app/config"
	"github.com/SB-fmayen/EduLink-sub000/app/database"
	"github.com/SB-fmayen/EduLink-sub000/app/helpers"
	"github.com/SB-fmayen/EduLink-sub000/app/models"
	"github.com/gofiber/fiber/v2"
)

func GetTasksByCourseAPI(c *fiber.Ctx) error {
	courseID := c.Params("courseId")
	if courseID == "" {
		return c.Status(400).JSON(fiber.Map{"error": "Course ID is required"})
	}

	tasks, err := database.GetTasksByCourse(config.GetDB(), courseID)
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to fetch tasks"})
	}

	// Students see their own delivery and grading status inline
	user := c.Locals("user").(*models.UserProfile)
	if user.Role == models.RoleStudent {
		return studentTaskList(c, tasks, user)
	}

	return c.JSON(fiber.Map{
		"tasks": tasks,
		"count": len(tasks),
	})
}

func studentTaskList(c *fiber.Ctx, tasks []*models.Task, user *models.UserProfile) error {
	type studentTask struct {
		*models.Task
		DeliveryStatus models.DeliveryStatus `json:"delivery_status"`
		GradingStatus  models.GradingStatus  `json:"grading_status"`
		Score          *float64              `json:"score,omitempty"`
	}

	now := time.Now()
	out := make([]*studentTask, 0, len(tasks))
	for _, task := range tasks {
		sub, err := database.GetSubmission(config.GetDB(), task.ID, user.ID)
		if err != nil && err != sql.ErrNoRows {
			return c.Status(500).JSON(fiber.Map{"error": "Failed to fetch submissions"})
		}
		st := &studentTask{
			Task:           task,
			DeliveryStatus: models.DeriveDeliveryStatus(sub, task.DueDate, now),
			GradingStatus:  models.DeriveGradingStatus(sub),
		}
		if sub != nil {
			st.Score = sub.Score
		}
		out = append(out, st)
	}

	return c.JSON(fiber.Map{
		"tasks": out,
		"count": len(out),
	})
}

// requireManageableCourse loads the task's course and checks management
// permission for the current user. When it returns false the rejection
// response has already been written.
func requireManageableCourse(c *fiber.Ctx, courseID string) (*models.Course, bool) {
	course, err := database.GetCourseByID(config.GetDB(), courseID)
	if err != nil {
		_ = c.Status(404).JSON(fiber.Map{"error": "Course not found"})
		return nil, false
	}

	user := c.Locals("user").(*models.UserProfile)
	if !models.CanManage(user.Role, course.IsOwnedBy(user.ID)) {
		_ = c.Status(403).JSON(fiber.Map{"error": "Insufficient permissions"})
		return nil, false
	}
	return course, true
}

type taskRequest struct {
	Title       string  `json:"title" validate:"required"`
	Description string  `json:"description"`
	DueDate     string  `json:"due_date" validate:"required"`
	IsGroupTask bool    `json:"is_group_task"`
	TotalPoints float64 `json:"total_points" validate:"required,gt=0"`
}

func CreateTaskAPI(c *fiber.Ctx) error {
	courseID := c.Params("courseId")
	if _, ok := requireManageableCourse(c, courseID); !ok {
		return nil
	}

	var req taskRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid request body"})
	}
	if ok, resp := helpers.Validate(c, &req); !ok {
		return resp
	}

	dueDate, err := time.Parse(time.RFC3339, req.DueDate)
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid due date. Use RFC 3339"})
	}

	task := &models.Task{
		CourseID:    courseID,
		Title:       req.Title,
		Description: req.Description,
		DueDate:     dueDate,
		IsGroupTask: req.IsGroupTask,
		TotalPoints: req.TotalPoints,
	}

	return helpers.Mutation(c, database.CreateTask(config.GetDB(), task), "Task created successfully", task)
}

func UpdateTaskAPI(c *fiber.Ctx) error {
	taskID := c.Params("taskId")

	task, err := database.GetTaskByID(config.GetDB(), taskID)
	if err != nil {
		return c.Status(404).JSON(fiber.Map{"error": "Task not found"})
	}
	if _, ok := requireManageableCourse(c, task.CourseID); !ok {
		return nil
	}

	var req taskRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid request body"})
	}
	if ok, resp := helpers.Validate(c, &req); !ok {
		return resp
	}

	dueDate, err := time.Parse(time.RFC3339, req.DueDate)
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid due date. Use RFC 3339"})
	}

	task.Title = req.Title
	task.Description = req.Description
	task.DueDate = dueDate
	task.IsGroupTask = req.IsGroupTask
	task.TotalPoints = req.TotalPoints

	return helpers.Mutation(c, database.UpdateTask(config.GetDB(), task), "Task updated successfully", task)
}

func GetTaskSubmissionsAPI(c *fiber.Ctx) error {
	taskID := c.Params("taskId")

	task, err := database.GetTaskByID(config.GetDB(), taskID)
	if err != nil {
		return c.Status(404).JSON(fiber.Map{"error": "Task not found"})
	}
	if _, ok := requireManageableCourse(c, task.CourseID); !ok {
		return nil
	}

	rows, err := buildGradingRows(task)
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to fetch submissions"})
	}

	return c.JSON(fiber.Map{
		"task":  task,
		"rows":  rows,
		"count": len(rows),
	})
}

// SubmitTaskAPI records the current student's turn-in. Late submissions are
// accepted; lateness only shows up in the derived delivery status.
func SubmitTaskAPI(c *fiber.Ctx) error {
	taskID := c.Params("taskId")

	task, err := database.GetTaskByID(config.GetDB(), taskID)
	if err != nil {
		return c.Status(404).JSON(fiber.Map{"error": "Task not found"})
	}

	user := c.Locals("user").(*models.UserProfile)
	if user.Role != models.RoleStudent {
		return c.Status(403).JSON(fiber.Map{"error": "Only students can submit"})
	}

	enrolled, err := database.IsStudentEnrolled(config.GetDB(), task.CourseID, user.ID)
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to verify enrollment"})
	}
	if !enrolled {
		return c.Status(403).JSON(fiber.Map{"error": "You are not enrolled in this course"})
	}

	return helpers.Mutation(c,
		database.CreateSubmission(config.GetDB(), taskID, user.ID, time.Now()),
		"Task submitted successfully", nil)
}

// SaveGradeAPI assigns a score to a student for a task. A student with no
// submission still gets graded: a carrier row is synthesized for them.
func SaveGradeAPI(c *fiber.Ctx) error {
	type GradeRequest struct {
		StudentID string          `json:"student_id" validate:"required,uuid"`
		Score     json.RawMessage `json:"score" validate:"required"`
	}

	taskID := c.Params("taskId")

	task, err := database.GetTaskByID(config.GetDB(), taskID)
	if err != nil {
		return c.Status(404).JSON(fiber.Map{"error": "Task not found"})
	}
	if _, ok := requireManageableCourse(c, task.CourseID); !ok {
		return nil
	}

	var req GradeRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid request body"})
	}
	if ok, resp := helpers.Validate(c, &req); !ok {
		return resp
	}

	score, err := parseScore(req.Score)
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"error": err.Error()})
	}
	if err := validateScore(score, task.TotalPoints); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": err.Error()})
	}

	// Grading synthesizes a carrier row when no submission exists, so the
	// roster check has to happen here or phantom students get rows.
	enrolled, err := database.IsStudentEnrolled(config.GetDB(), task.CourseID, req.StudentID)
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to verify enrollment"})
	}
	if !enrolled {
		return c.Status(404).JSON(fiber.Map{"error": "Student is not enrolled in this course"})
	}

	return helpers.Mutation(c,
		database.SaveGrade(config.GetDB(), taskID, req.StudentID, score),
		"Grade saved successfully", fiber.Map{
			"task_id":    taskID,
			"student_id": req.StudentID,
			"score":      score,
		})
}
