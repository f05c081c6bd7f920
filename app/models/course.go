package models

import "time"

// Course is a taught section (subject + grade + section) owned by one
// teacher. Courses are provisioned by the school's back office, not through
// the web surface; the app reads and updates them.
type Course struct {
	ID          string       `json:"id" validate:"required,uuid"`
	SubjectName string       `json:"subject_name" validate:"required"`
	SectionName string       `json:"section_name"`
	GradeName   string       `json:"grade_name"`
	TeacherID   string       `json:"teacher_id" validate:"required,uuid"`
	SectionID   string       `json:"section_id,omitempty"`
	SchoolID    string       `json:"school_id" validate:"required,uuid"`
	IsActive    bool         `json:"is_active"`
	CreatedAt   time.Time    `json:"created_at"`
	UpdatedAt   time.Time    `json:"updated_at"`
	Teacher     *UserProfile `json:"teacher,omitempty"`
}

// Enrollment links one student profile to one course.
type Enrollment struct {
	ID        string    `json:"id" validate:"required,uuid"`
	CourseID  string    `json:"course_id" validate:"required,uuid"`
	StudentID string    `json:"student_id" validate:"required,uuid"`
	CreatedAt time.Time `json:"created_at"`
}

// IsOwnedBy reports course ownership. Management permission is always
// CanManage(role, course.IsOwnedBy(userID)) recomputed from live reads,
// never cached.
func (c *Course) IsOwnedBy(userID string) bool {
	return c.TeacherID == userID
}
