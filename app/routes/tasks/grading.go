package tasks

import (
	"encoding/json"
	"errors"
	"math"
	"strconv"
	"time"

	"github.com/SB-fmayen/EduLink-sub000/app/config"
	"github.com/SB-fmayen/EduLink-sub000/app/database"
	"github.com/SB-fmayen/EduLink-sub000/app/models"
)

var (
	errScoreNotNumeric = errors.New("score must be a number")
	errScoreOutOfRange = errors.New("score must be between 0 and the task's total points")
)

// parseScore accepts the raw score value from the grading form. Clients
// send it either as a JSON number or as the string the input field held;
// anything that does not parse as a number is rejected before any write.
func parseScore(raw json.RawMessage) (float64, error) {
	if len(raw) == 0 || string(raw) == "null" {
		return 0, errScoreNotNumeric
	}

	var num float64
	if err := json.Unmarshal(raw, &num); err == nil {
		return num, nil
	}

	var str string
	if err := json.Unmarshal(raw, &str); err != nil {
		return 0, errScoreNotNumeric
	}
	num, err := strconv.ParseFloat(str, 64)
	if err != nil {
		return 0, errScoreNotNumeric
	}
	return num, nil
}

// validateScore enforces 0 <= score <= totalPoints. NaN and the infinities
// slip through ParseFloat and compare false against both bounds, so they
// are rejected explicitly before the range check.
func validateScore(score, totalPoints float64) error {
	if math.IsNaN(score) || math.IsInf(score, 0) {
		return errScoreNotNumeric
	}
	if score < 0 || score > totalPoints {
		return errScoreOutOfRange
	}
	return nil
}

// GradingRow is one line of the grading screen: the student, their
// submission if any, and the two independent derived statuses.
type GradingRow struct {
	Student        *models.UserProfile   `json:"student"`
	Submission     *models.Submission    `json:"submission,omitempty"`
	DeliveryStatus models.DeliveryStatus `json:"delivery_status"`
	GradingStatus  models.GradingStatus  `json:"grading_status"`
}

// buildGradingRows joins the course roster with the task's submissions by
// student id and derives both statuses per row.
func buildGradingRows(task *models.Task) ([]*GradingRow, error) {
	db := config.GetDB()

	students, err := database.ResolveCourseStudents(db, task.CourseID)
	if err != nil {
		return nil, err
	}

	submissions, err := database.GetSubmissionsByTask(db, task.ID)
	if err != nil {
		return nil, err
	}

	byStudent := make(map[string]*models.Submission, len(submissions))
	for _, sub := range submissions {
		byStudent[sub.StudentID] = sub
	}

	now := time.Now()
	rows := make([]*GradingRow, 0, len(students))
	for _, student := range students {
		sub := byStudent[student.ID]
		rows = append(rows, &GradingRow{
			Student:        student,
			Submission:     sub,
			DeliveryStatus: models.DeriveDeliveryStatus(sub, task.DueDate, now),
			GradingStatus:  models.DeriveGradingStatus(sub),
		})
	}
	return rows, nil
}
