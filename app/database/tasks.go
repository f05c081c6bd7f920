package database

import (
	"database/sql"
	"time"

	"github.com/SB-fmayen/EduLink-sub000/app/models"
)

func GetTasksByCourse(db *sql.DB, courseID string) ([]*models.Task, error) {
	query := `SELECT id, course_id, title, description, due_date, is_group_task, total_points, created_at, updated_at
			  FROM tasks WHERE course_id = $1 ORDER BY due_date DESC`

	rows, err := db.Query(query, courseID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var tasks []*models.Task
	for rows.Next() {
		task := &models.Task{}
		if err := rows.Scan(
			&task.ID, &task.CourseID, &task.Title, &task.Description,
			&task.DueDate, &task.IsGroupTask, &task.TotalPoints, &task.CreatedAt, &task.UpdatedAt,
		); err != nil {
			return nil, err
		}
		tasks = append(tasks, task)
	}
	if tasks == nil {
		tasks = []*models.Task{}
	}
	return tasks, rows.Err()
}

func GetTaskByID(db *sql.DB, taskID string) (*models.Task, error) {
	task := &models.Task{}
	query := `SELECT id, course_id, title, description, due_date, is_group_task, total_points, created_at, updated_at
			  FROM tasks WHERE id = $1`

	err := db.QueryRow(query, taskID).Scan(
		&task.ID, &task.CourseID, &task.Title, &task.Description,
		&task.DueDate, &task.IsGroupTask, &task.TotalPoints, &task.CreatedAt, &task.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return task, nil
}

func CreateTask(db *sql.DB, task *models.Task) error {
	query := `INSERT INTO tasks (course_id, title, description, due_date, is_group_task, total_points)
			  VALUES ($1, $2, $3, $4, $5, $6)
			  RETURNING id, created_at, updated_at`

	return db.QueryRow(query,
		task.CourseID, task.Title, task.Description, task.DueDate, task.IsGroupTask, task.TotalPoints,
	).Scan(&task.ID, &task.CreatedAt, &task.UpdatedAt)
}

func UpdateTask(db *sql.DB, task *models.Task) error {
	query := `UPDATE tasks
			  SET title = $1, description = $2, due_date = $3, is_group_task = $4, total_points = $5, updated_at = NOW()
			  WHERE id = $6`
	res, err := db.Exec(query, task.Title, task.Description, task.DueDate, task.IsGroupTask, task.TotalPoints, task.ID)
	if err != nil {
		return err
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return sql.ErrNoRows
	}
	return nil
}

func GetSubmissionsByTask(db *sql.DB, taskID string) ([]*models.Submission, error) {
	query := `SELECT id, task_id, student_id, status, submitted_at, score, created_at, updated_at
			  FROM submissions WHERE task_id = $1`

	rows, err := db.Query(query, taskID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var submissions []*models.Submission
	for rows.Next() {
		sub := &models.Submission{}
		if err := rows.Scan(
			&sub.ID, &sub.TaskID, &sub.StudentID, &sub.Status,
			&sub.SubmittedAt, &sub.Score, &sub.CreatedAt, &sub.UpdatedAt,
		); err != nil {
			return nil, err
		}
		submissions = append(submissions, sub)
	}
	if submissions == nil {
		submissions = []*models.Submission{}
	}
	return submissions, rows.Err()
}

func GetSubmission(db *sql.DB, taskID, studentID string) (*models.Submission, error) {
	sub := &models.Submission{}
	query := `SELECT id, task_id, student_id, status, submitted_at, score, created_at, updated_at
			  FROM submissions WHERE task_id = $1 AND id = $2`

	err := db.QueryRow(query, taskID, studentID).Scan(
		&sub.ID, &sub.TaskID, &sub.StudentID, &sub.Status,
		&sub.SubmittedAt, &sub.Score, &sub.CreatedAt, &sub.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return sub, nil
}

// CreateSubmission records a student turn-in. The row id is the student id,
// so re-submitting refreshes the timestamp instead of adding a second row.
func CreateSubmission(db *sql.DB, taskID, studentID string, submittedAt time.Time) error {
	query := `INSERT INTO submissions (id, task_id, student_id, status, submitted_at)
			  VALUES ($1, $2, $1, $3, $4)
			  ON CONFLICT (task_id, id)
			  DO UPDATE SET submitted_at = EXCLUDED.submitted_at,
							status = EXCLUDED.status,
							updated_at = NOW()`
	_, err := db.Exec(query, studentID, taskID, models.SubmissionStatusSubmitted, submittedAt)
	return err
}

// SaveGrade assigns a score. With an existing submission only the score
// column is patched; without one a carrier row is synthesized with the
// graded_without_submission status so offline work can still be graded.
func SaveGrade(db *sql.DB, taskID, studentID string, score float64) error {
	res, err := db.Exec(
		`UPDATE submissions SET score = $1, updated_at = NOW() WHERE task_id = $2 AND id = $3`,
		score, taskID, studentID,
	)
	if err != nil {
		return err
	}
	if n, err := res.RowsAffected(); err == nil && n > 0 {
		return nil
	}

	_, err = db.Exec(
		`INSERT INTO submissions (id, task_id, student_id, status, score)
		 VALUES ($1, $2, $1, $3, $4)`,
		studentID, taskID, models.SubmissionStatusGradedWithoutSubmission, score,
	)
	return err
}
