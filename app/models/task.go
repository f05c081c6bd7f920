package models

import "time"

// Task is an assignment published in a course.
type Task struct {
	ID          string    `json:"id" validate:"required,uuid"`
	CourseID    string    `json:"course_id" validate:"required,uuid"`
	Title       string    `json:"title" validate:"required"`
	Description string    `json:"description"`
	DueDate     time.Time `json:"due_date" validate:"required"`
	IsGroupTask bool      `json:"is_group_task"`
	TotalPoints float64   `json:"total_points" validate:"gt=0"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// SubmissionStatusGradedWithoutSubmission marks submissions synthesized by
// the grading flow for students who never turned anything in.
const SubmissionStatusGradedWithoutSubmission = "graded_without_submission"

// SubmissionStatusSubmitted marks a real student submission.
const SubmissionStatusSubmitted = "submitted"

// Submission is one student's turn-in (or synthesized grade carrier) for a
// task. Its id IS the student id, so there can only ever be one per
// (student, task).
type Submission struct {
	ID          string     `json:"id"`
	TaskID      string     `json:"task_id" validate:"required,uuid"`
	StudentID   string     `json:"student_id" validate:"required,uuid"`
	Status      string     `json:"status"`
	SubmittedAt *time.Time `json:"submitted_at,omitempty"`
	Score       *float64   `json:"score,omitempty"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at"`
}

// DeliveryStatus classifies whether and when a student turned a task in.
type DeliveryStatus string

const (
	DeliveryPending      DeliveryStatus = "pending"
	DeliveryDidNotSubmit DeliveryStatus = "did_not_submit"
	DeliveryOnTime       DeliveryStatus = "submitted_on_time"
	DeliveryLate         DeliveryStatus = "submitted_late"
)

// DeriveDeliveryStatus is pure over (submission, dueDate, now). A submission
// with no timestamp (synthesized by grading) counts as not submitted.
func DeriveDeliveryStatus(sub *Submission, dueDate, now time.Time) DeliveryStatus {
	if sub == nil || sub.SubmittedAt == nil {
		if now.After(dueDate) {
			return DeliveryDidNotSubmit
		}
		return DeliveryPending
	}
	if sub.SubmittedAt.After(dueDate) {
		return DeliveryLate
	}
	return DeliveryOnTime
}

// GradingStatus classifies whether a score has been assigned.
type GradingStatus string

const (
	Graded       GradingStatus = "graded"
	PendingGrade GradingStatus = "pending_grading"
)

// DeriveGradingStatus is independent of delivery: a late or missing
// submission can still be graded.
func DeriveGradingStatus(sub *Submission) GradingStatus {
	if sub != nil && sub.Score != nil {
		return Graded
	}
	return PendingGrade
}
