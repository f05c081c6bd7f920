package database

import (
	"database/sql"
	"log"
)

// RunMigrations creates the schema when missing and applies incremental
// column additions. Everything here is idempotent so the server can run it
// on every boot.
func RunMigrations(db *sql.DB) error {
	log.Println("Running database migrations...")

	statements := []string{
		`CREATE EXTENSION IF NOT EXISTS "pgcrypto"`,
		`CREATE TABLE IF NOT EXISTS schools (
			id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
			name VARCHAR(255) NOT NULL,
			address TEXT DEFAULT '',
			phone VARCHAR(30) DEFAULT '',
			is_default BOOLEAN NOT NULL DEFAULT false,
			is_active BOOLEAN NOT NULL DEFAULT true,
			created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
			updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
		)`,
		`CREATE TABLE IF NOT EXISTS users (
			id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
			email VARCHAR(255) NOT NULL UNIQUE,
			password VARCHAR(255) NOT NULL,
			first_name VARCHAR(100) NOT NULL,
			last_name VARCHAR(100) NOT NULL,
			role VARCHAR(20) NOT NULL DEFAULT 'student',
			school_id UUID REFERENCES schools(id),
			is_active BOOLEAN NOT NULL DEFAULT true,
			created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
			updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
			deleted_at TIMESTAMPTZ
		)`,
		`CREATE TABLE IF NOT EXISTS courses (
			id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
			subject_name VARCHAR(255) NOT NULL,
			section_name VARCHAR(100) DEFAULT '',
			grade_name VARCHAR(100) DEFAULT '',
			teacher_id UUID NOT NULL REFERENCES users(id),
			section_id UUID,
			school_id UUID REFERENCES schools(id),
			is_active BOOLEAN NOT NULL DEFAULT true,
			created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
			updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
		)`,
		`CREATE TABLE IF NOT EXISTS enrollments (
			id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
			course_id UUID NOT NULL REFERENCES courses(id),
			student_id UUID NOT NULL REFERENCES users(id),
			created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
			UNIQUE (course_id, student_id)
		)`,
		`CREATE TABLE IF NOT EXISTS attendance_records (
			id VARCHAR(100) NOT NULL,
			course_id UUID NOT NULL REFERENCES courses(id),
			student_id UUID NOT NULL REFERENCES users(id),
			student_name VARCHAR(255) NOT NULL,
			date DATE NOT NULL,
			status VARCHAR(10) NOT NULL,
			marked_by UUID REFERENCES users(id),
			created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
			updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
			PRIMARY KEY (course_id, id)
		)`,
		`CREATE TABLE IF NOT EXISTS tasks (
			id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
			course_id UUID NOT NULL REFERENCES courses(id),
			title VARCHAR(255) NOT NULL,
			description TEXT DEFAULT '',
			due_date TIMESTAMPTZ NOT NULL,
			is_group_task BOOLEAN NOT NULL DEFAULT false,
			total_points NUMERIC(7,2) NOT NULL,
			created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
			updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
		)`,
		`CREATE TABLE IF NOT EXISTS submissions (
			id UUID NOT NULL,
			task_id UUID NOT NULL REFERENCES tasks(id),
			student_id UUID NOT NULL REFERENCES users(id),
			status VARCHAR(30) NOT NULL DEFAULT 'submitted',
			submitted_at TIMESTAMPTZ,
			score NUMERIC(7,2),
			created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
			updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
			PRIMARY KEY (task_id, id)
		)`,
		`CREATE INDEX IF NOT EXISTS idx_enrollments_course ON enrollments(course_id)`,
		`CREATE INDEX IF NOT EXISTS idx_attendance_course_date ON attendance_records(course_id, date)`,
		`CREATE INDEX IF NOT EXISTS idx_tasks_course ON tasks(course_id)`,
		`CREATE INDEX IF NOT EXISTS idx_courses_teacher ON courses(teacher_id)`,
	}

	for _, stmt := range statements {
		if _, err := db.Exec(stmt); err != nil {
			log.Printf("Migration statement failed: %v", err)
			return err
		}
	}

	if err := addSectionIDColumn(db); err != nil {
		return err
	}
	if err := ensureDefaultSchool(db); err != nil {
		return err
	}

	log.Println("Database migrations completed successfully")
	return nil
}

func addSectionIDColumn(db *sql.DB) error {
	query := `
		DO $$
		BEGIN
			IF NOT EXISTS (
				SELECT 1
				FROM information_schema.columns
				WHERE table_name = 'courses'
				AND column_name = 'section_id'
			) THEN
				ALTER TABLE courses ADD COLUMN section_id UUID;
				RAISE NOTICE 'Added section_id column to courses';
			END IF;
		END $$;
	`
	_, err := db.Exec(query)
	if err != nil {
		log.Printf("Failed to run migration for section_id column: %v", err)
		return err
	}
	return nil
}

// ensureDefaultSchool guarantees the school self-registration lands in.
func ensureDefaultSchool(db *sql.DB) error {
	query := `
		INSERT INTO schools (name, is_default)
		SELECT 'EduLink Central', true
		WHERE NOT EXISTS (SELECT 1 FROM schools WHERE is_default = true)
	`
	_, err := db.Exec(query)
	if err != nil {
		log.Printf("Failed to ensure default school: %v", err)
		return err
	}
	return nil
}
