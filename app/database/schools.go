package database

import (
	"database/sql"

	"github.com/SB-fmayen/EduLink-sub000/app/models"
)

func GetAllSchools(db *sql.DB) ([]*models.School, error) {
	query := `SELECT id, name, address, phone, is_default, is_active, created_at, updated_at
			  FROM schools WHERE is_active = true ORDER BY name`

	rows, err := db.Query(query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var schools []*models.School
	for rows.Next() {
		school := &models.School{}
		if err := rows.Scan(
			&school.ID, &school.Name, &school.Address, &school.Phone,
			&school.IsDefault, &school.IsActive, &school.CreatedAt, &school.UpdatedAt,
		); err != nil {
			return nil, err
		}
		schools = append(schools, school)
	}
	if schools == nil {
		schools = []*models.School{}
	}
	return schools, rows.Err()
}

func GetSchoolByID(db *sql.DB, schoolID string) (*models.School, error) {
	school := &models.School{}
	query := `SELECT id, name, address, phone, is_default, is_active, created_at, updated_at
			  FROM schools WHERE id = $1 AND is_active = true`

	err := db.QueryRow(query, schoolID).Scan(
		&school.ID, &school.Name, &school.Address, &school.Phone,
		&school.IsDefault, &school.IsActive, &school.CreatedAt, &school.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return school, nil
}

// GetDefaultSchool returns the school self-registration assigns.
func GetDefaultSchool(db *sql.DB) (*models.School, error) {
	school := &models.School{}
	query := `SELECT id, name, address, phone, is_default, is_active, created_at, updated_at
			  FROM schools WHERE is_default = true AND is_active = true LIMIT 1`

	err := db.QueryRow(query).Scan(
		&school.ID, &school.Name, &school.Address, &school.Phone,
		&school.IsDefault, &school.IsActive, &school.CreatedAt, &school.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return school, nil
}

func CreateSchool(db *sql.DB, school *models.School) error {
	query := `INSERT INTO schools (name, address, phone)
			  VALUES ($1, $2, $3)
			  RETURNING id, is_default, is_active, created_at, updated_at`

	return db.QueryRow(query, school.Name, school.Address, school.Phone).Scan(
		&school.ID, &school.IsDefault, &school.IsActive, &school.CreatedAt, &school.UpdatedAt,
	)
}
