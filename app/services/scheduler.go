package services

import (
	"database/sql"
	"log"
	"time"

	"github.com/SB-fmayen/EduLink-sub000/app/database"
)

// StartScheduler starts the background reminder loop. At 18:00 it logs, per
// school, how many active courses still have no attendance record for the
// day. Observational only; it never writes.
func StartScheduler(db *sql.DB) {
	go func() {
		log.Println("Scheduler started...")
		ticker := time.NewTicker(1 * time.Minute)
		defer ticker.Stop()

		for range ticker.C {
			now := time.Now()

			// Trigger at 6:00 PM (18:00)
			if now.Hour() == 18 && now.Minute() == 0 {
				log.Println("Running attendance completion check [18:00]...")
				reportUnrecordedAttendance(db, now)
			}
		}
	}()
}

func reportUnrecordedAttendance(db *sql.DB, date time.Time) {
	counts, err := database.CountUnrecordedCourses(db, date)
	if err != nil {
		log.Printf("Error checking attendance completion: %v", err)
		return
	}

	if len(counts) == 0 {
		log.Println("All courses have attendance recorded for today")
		return
	}
	for schoolID, n := range counts {
		log.Printf("School %s: %d course(s) without attendance for %s", schoolID, n, date.Format("2006-01-02"))
	}
}
