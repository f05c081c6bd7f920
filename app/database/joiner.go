package database

import (
	"database/sql"

	"github.com/SB-fmayen/EduLink-sub000/app/models"
	"github.com/lib/pq"
)

// profileBatchCap bounds how many ids one profile lookup may reference.
// Ids beyond the cap are silently dropped from the result, never an error.
const profileBatchCap = 30

// collectStudentIDs extracts the referenced student ids from enrollment
// rows, deduplicated, first occurrence order.
func collectStudentIDs(enrollments []*models.Enrollment) []string {
	seen := make(map[string]bool, len(enrollments))
	var ids []string
	for _, e := range enrollments {
		if e.StudentID == "" || seen[e.StudentID] {
			continue
		}
		seen[e.StudentID] = true
		ids = append(ids, e.StudentID)
	}
	return ids
}

// capIDs truncates an id list to the batch cap.
func capIDs(ids []string) []string {
	if len(ids) > profileBatchCap {
		return ids[:profileBatchCap]
	}
	return ids
}

// ResolveProfiles looks up the given profiles in a single batched query.
// An empty id list issues no query at all. Ids that resolve to nothing
// (deleted users, ids past the cap) are simply absent from the result.
func ResolveProfiles(db *sql.DB, ids []string) ([]*models.UserProfile, error) {
	if len(ids) == 0 {
		return []*models.UserProfile{}, nil
	}
	ids = capIDs(ids)

	query := `SELECT id, email, first_name, last_name, role, COALESCE(school_id::text, ''), is_active, created_at, updated_at
			  FROM users WHERE id = ANY($1) AND is_active = true
			  ORDER BY last_name, first_name`

	rows, err := db.Query(query, pq.Array(ids))
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var profiles []*models.UserProfile
	for rows.Next() {
		p := &models.UserProfile{}
		if err := rows.Scan(
			&p.ID, &p.Email, &p.FirstName, &p.LastName,
			&p.Role, &p.SchoolID, &p.IsActive, &p.CreatedAt, &p.UpdatedAt,
		); err != nil {
			return nil, err
		}
		profiles = append(profiles, p)
	}
	if profiles == nil {
		profiles = []*models.UserProfile{}
	}
	return profiles, rows.Err()
}

// ResolveCourseStudents joins a course's enrollment membership to full
// student profiles in two round trips: one for the enrollment rows, one
// batched lookup for the referenced profiles.
func ResolveCourseStudents(db *sql.DB, courseID string) ([]*models.UserProfile, error) {
	enrollments, err := GetEnrollmentsByCourse(db, courseID)
	if err != nil {
		return nil, err
	}
	return ResolveProfiles(db, collectStudentIDs(enrollments))
}
