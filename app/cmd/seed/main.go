package main

import (
	"fmt"
	"log"
	"time"

	"stmarys-portal/app/config"
	"stmarys-portal/app/database"
	"stmarys-portal/app/models"
)

// Seeds a fresh database with the current academic year, its three
// terms and the standard subject list. Safe to rerun; duplicates are
// skipped.
func main() {
	config.LoadEnv()
	config.InitDB()
	db := config.GetDB()
	defer db.Close()

	if err := database.RunMigrations(db); err != nil {
		log.Fatal("Failed to run migrations:", err)
	}

	yearStart := time.Date(time.Now().Year(), 2, 1, 0, 0, 0, 0, time.Local)
	yearEnd := yearStart.AddDate(0, 10, 0)

	year := &models.AcademicYear{
		Name:      fmt.Sprintf("%d", yearStart.Year()),
		StartDate: models.CustomTime{Time: yearStart},
		EndDate:   models.CustomTime{Time: yearEnd},
		IsCurrent: true,
	}
	if err := database.CreateAcademicYear(db, year); err != nil {
		if err != database.ErrDuplicate {
			log.Fatal("Failed to create academic year:", err)
		}
		log.Printf("Academic year %s already exists, skipping", year.Name)
	} else {
		log.Printf("Created academic year %s", year.Name)

		termStart := yearStart
		for n := 1; n <= 3; n++ {
			termEnd := termStart.AddDate(0, 3, 0)
			term := &models.Term{
				AcademicYearID: year.ID,
				TermNumber:     n,
				Name:           fmt.Sprintf("Term %d", n),
				StartDate:      models.CustomDate{Time: termStart},
				EndDate:        models.CustomDate{Time: termEnd},
			}
			if err := database.CreateTerm(db, term); err != nil {
				log.Fatal("Failed to create term:", err)
			}
			log.Printf("Created %s", term.Name)
			termStart = termEnd.AddDate(0, 0, 14)
		}
	}

	subjects := []struct {
		name, code string
		core       bool
	}{
		{"Mathematics", "MATH", true},
		{"English", "ENG", true},
		{"Science", "SCI", true},
		{"Social Studies", "SST", true},
		{"Religious Education", "RE", false},
		{"Physical Education", "PE", false},
		{"Art and Craft", "ART", false},
		{"Music", "MUS", false},
	}
	for _, s := range subjects {
		subject := &models.Subject{Name: s.name, Code: s.code, IsCore: s.core}
		if err := database.CreateSubject(db, subject); err != nil {
			if err != database.ErrDuplicate {
				log.Fatal("Failed to create subject:", err)
			}
			continue
		}
		log.Printf("Created subject %s (%s)", s.name, s.code)
	}

	log.Println("Seed complete")
}
