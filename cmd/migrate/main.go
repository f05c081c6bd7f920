package main

import (
	"database/sql"
	"flag"
	"log"
	"time"

	"github.com/SB-fmayen/EduLink-sub000/app/config"
	"github.com/SB-fmayen/EduLink-sub000/app/database"
	"github.com/SB-fmayen/EduLink-sub000/app/models"
	"github.com/SB-fmayen/EduLink-sub000/app/routes/auth"
	"github.com/google/uuid"
)

func main() {
	seed := flag.Bool("seed", false, "create demo course data after migrating")
	flag.Parse()

	log.Println("Starting manual migration...")

	config.LoadEnv()
	config.InitDB()
	db := config.GetDB()
	if db == nil {
		log.Fatal("Failed to get database instance")
	}
	defer db.Close()

	if err := database.RunMigrations(db); err != nil {
		log.Fatal("Migration failed:", err)
	}
	log.Println("Migration completed successfully")

	if *seed {
		if err := seedDemoData(db); err != nil {
			log.Fatal("Seed failed:", err)
		}
		log.Println("Demo data seeded")
	}
}

// seedDemoData provisions what the web surface deliberately cannot create:
// a course with its teacher and enrolled students. Mirrors what the school
// back office would load in production.
func seedDemoData(db *sql.DB) error {
	hashed, err := auth.HashPassword("edulink-demo")
	if err != nil {
		return err
	}

	teacher := &models.UserProfile{
		Email:     "teacher.demo@edulink.example",
		Password:  hashed,
		FirstName: "Marta",
		LastName:  "Lopez",
		Role:      models.RoleTeacher,
	}
	if err := database.CreateUser(db, teacher); err != nil {
		return err
	}

	courseID := ""
	sectionID := uuid.NewString()
	err = db.QueryRow(
		`INSERT INTO courses (subject_name, section_name, grade_name, teacher_id, section_id, school_id)
		 VALUES ($1, $2, $3, $4, $5, $6) RETURNING id`,
		"Matematicas", "A", "Primero Basico", teacher.ID, sectionID, teacher.SchoolID,
	).Scan(&courseID)
	if err != nil {
		return err
	}

	students := []struct{ first, last string }{
		{"Diego", "Ramirez"},
		{"Sofia", "Garcia"},
		{"Luis", "Morales"},
	}
	for i, s := range students {
		student := &models.UserProfile{
			Email:     uuid.NewString()[:8] + "@edulink.example",
			Password:  hashed,
			FirstName: s.first,
			LastName:  s.last,
			Role:      models.RoleStudent,
		}
		if err := database.CreateUser(db, student); err != nil {
			return err
		}
		if err := database.CreateEnrollment(db, courseID, student.ID); err != nil {
			return err
		}

		// One seeded task submission so the grading screen has rows
		if i == 0 {
			task := &models.Task{
				CourseID:    courseID,
				Title:       "Guia de fracciones",
				Description: "Ejercicios 1 al 20",
				DueDate:     time.Now().AddDate(0, 0, 7),
				TotalPoints: 100,
			}
			if err := database.CreateTask(db, task); err != nil {
				return err
			}
			if err := database.CreateSubmission(db, task.ID, student.ID, time.Now()); err != nil {
				return err
			}
		}
	}
	return nil
}
