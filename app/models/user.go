package models

import "time"

// UserProfile is the stored profile for every account regardless of role.
type UserProfile struct {
	ID        string     `json:"id" validate:"required,uuid"`
	Email     string     `json:"email" validate:"required,email"`
	Password  string     `json:"-" validate:"required,min=8"`
	FirstName string     `json:"first_name" validate:"required"`
	LastName  string     `json:"last_name" validate:"required"`
	Role      Role       `json:"role" validate:"required"`
	SchoolID  string     `json:"school_id" validate:"required,uuid"`
	IsActive  bool       `json:"is_active"`
	CreatedAt time.Time  `json:"created_at"`
	UpdatedAt time.Time  `json:"updated_at"`
	DeletedAt *time.Time `json:"deleted_at,omitempty"`
}

// FullName is the display form used on dashboards and denormalized records.
func (u *UserProfile) FullName() string {
	return u.FirstName + " " + u.LastName
}
