package database

import (
	"database/sql"
	"fmt"
	"strings"

	"github.com/SB-fmayen/EduLink-sub000/app/models"
)

// UserFilters represents filtering options for the users screen
type UserFilters struct {
	Search    string
	Role      string
	SchoolID  string
	SortBy    string
	SortOrder string
	Limit     int
	Offset    int
}

func GetUserByEmail(db *sql.DB, email string) (*models.UserProfile, error) {
	user := &models.UserProfile{}
	query := `SELECT id, email, password, first_name, last_name, role, COALESCE(school_id::text, ''), is_active, created_at, updated_at
			  FROM users WHERE email = $1 AND is_active = true`

	err := db.QueryRow(query, email).Scan(
		&user.ID, &user.Email, &user.Password, &user.FirstName,
		&user.LastName, &user.Role, &user.SchoolID, &user.IsActive, &user.CreatedAt, &user.UpdatedAt,
	)

	if err != nil {
		return nil, err
	}
	return user, nil
}

func GetUserByID(db *sql.DB, userID string) (*models.UserProfile, error) {
	user := &models.UserProfile{}
	query := `SELECT id, email, password, first_name, last_name, role, COALESCE(school_id::text, ''), is_active, created_at, updated_at
			  FROM users WHERE id = $1 AND is_active = true`

	err := db.QueryRow(query, userID).Scan(
		&user.ID, &user.Email, &user.Password, &user.FirstName,
		&user.LastName, &user.Role, &user.SchoolID, &user.IsActive, &user.CreatedAt, &user.UpdatedAt,
	)

	if err != nil {
		return nil, err
	}
	return user, nil
}

// CreateUser is the single authority for new profiles. Both self-signup and
// administrative creation go through it so the defaulting rules cannot
// drift apart: an empty role becomes the default role, an empty school the
// default school.
func CreateUser(db *sql.DB, user *models.UserProfile) error {
	if user.Role == "" {
		user.Role = models.DefaultRole
	}
	if user.SchoolID == "" {
		school, err := GetDefaultSchool(db)
		if err != nil {
			return fmt.Errorf("resolve default school: %w", err)
		}
		user.SchoolID = school.ID
	}

	query := `INSERT INTO users (email, password, first_name, last_name, role, school_id)
			  VALUES ($1, $2, $3, $4, $5, $6)
			  RETURNING id, is_active, created_at, updated_at`

	return db.QueryRow(query,
		user.Email, user.Password, user.FirstName, user.LastName, user.Role, user.SchoolID,
	).Scan(&user.ID, &user.IsActive, &user.CreatedAt, &user.UpdatedAt)
}

func UpdateUserPassword(db *sql.DB, userID string, hashedPassword string) error {
	query := `UPDATE users SET password = $1, updated_at = NOW() WHERE id = $2`
	_, err := db.Exec(query, hashedPassword, userID)
	return err
}

// UpdateUserRole reassigns a profile's role and returns the updated profile
// so the caller can render the new badge without a second read.
func UpdateUserRole(db *sql.DB, userID string, role models.Role) (*models.UserProfile, error) {
	query := `UPDATE users SET role = $1, updated_at = NOW() WHERE id = $2 AND is_active = true`
	res, err := db.Exec(query, role, userID)
	if err != nil {
		return nil, err
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return nil, sql.ErrNoRows
	}
	return GetUserByID(db, userID)
}

// GetUsersWithFilters backs the admin users table with search, role filter
// and pagination.
func GetUsersWithFilters(db *sql.DB, filters UserFilters) ([]*models.UserProfile, int, error) {
	conditions := []string{"is_active = true"}
	args := []interface{}{}
	argPos := 1

	if filters.Search != "" {
		conditions = append(conditions, fmt.Sprintf(
			"(first_name ILIKE $%d OR last_name ILIKE $%d OR email ILIKE $%d)", argPos, argPos, argPos))
		args = append(args, "%"+filters.Search+"%")
		argPos++
	}
	if filters.Role != "" {
		conditions = append(conditions, fmt.Sprintf("role = $%d", argPos))
		args = append(args, filters.Role)
		argPos++
	}
	if filters.SchoolID != "" {
		conditions = append(conditions, fmt.Sprintf("school_id = $%d", argPos))
		args = append(args, filters.SchoolID)
		argPos++
	}

	where := strings.Join(conditions, " AND ")

	var totalCount int
	countQuery := "SELECT COUNT(*) FROM users WHERE " + where
	if err := db.QueryRow(countQuery, args...).Scan(&totalCount); err != nil {
		return nil, 0, err
	}

	sortBy := "last_name"
	switch filters.SortBy {
	case "email", "role", "created_at", "first_name":
		sortBy = filters.SortBy
	}
	sortOrder := "ASC"
	if strings.EqualFold(filters.SortOrder, "desc") {
		sortOrder = "DESC"
	}

	query := fmt.Sprintf(`SELECT id, email, first_name, last_name, role, COALESCE(school_id::text, ''), is_active, created_at, updated_at
			  FROM users WHERE %s ORDER BY %s %s`, where, sortBy, sortOrder)

	if filters.Limit > 0 {
		query += fmt.Sprintf(" LIMIT $%d OFFSET $%d", argPos, argPos+1)
		args = append(args, filters.Limit, filters.Offset)
	}

	rows, err := db.Query(query, args...)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	var users []*models.UserProfile
	for rows.Next() {
		user := &models.UserProfile{}
		if err := rows.Scan(
			&user.ID, &user.Email, &user.FirstName, &user.LastName,
			&user.Role, &user.SchoolID, &user.IsActive, &user.CreatedAt, &user.UpdatedAt,
		); err != nil {
			return nil, 0, err
		}
		users = append(users, user)
	}
	if users == nil {
		users = []*models.UserProfile{}
	}
	return users, totalCount, rows.Err()
}

// CountUsersByRole feeds the dashboard cards.
func CountUsersByRole(db *sql.DB, schoolID string) (map[models.Role]int, error) {
	query := `SELECT role, COUNT(*) FROM users WHERE is_active = true`
	args := []interface{}{}
	if schoolID != "" {
		query += " AND school_id = $1"
		args = append(args, schoolID)
	}
	query += " GROUP BY role"

	rows, err := db.Query(query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	counts := make(map[models.Role]int)
	for rows.Next() {
		var role models.Role
		var n int
		if err := rows.Scan(&role, &n); err != nil {
			return nil, err
		}
		counts[role] = n
	}
	return counts, rows.Err()
}
