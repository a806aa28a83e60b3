package database

import (
	"database/sql"

	"stmarys-portal/app/models"
)

// GetAdminDashboardStats gathers the headline totals for the admin
// landing page.
func GetAdminDashboardStats(db *sql.DB, userID string) (*models.AdminDashboardStats, error) {
	stats := &models.AdminDashboardStats{}

	var err error
	if stats.TotalStudents, err = CountActiveStudents(db); err != nil {
		return nil, err
	}
	if stats.TotalTeachers, err = CountActiveTeachers(db); err != nil {
		return nil, err
	}
	if stats.TotalParents, err = CountParents(db); err != nil {
		return nil, err
	}

	year, err := GetCurrentAcademicYear(db)
	if err != nil && err != sql.ErrNoRows {
		return nil, err
	}
	if year != nil {
		stats.CurrentYear = year.Name
		err = db.QueryRow(`SELECT COUNT(*) FROM classes WHERE academic_year_id = $1`,
			year.ID).Scan(&stats.TotalClasses)
		if err != nil {
			return nil, err
		}
	}

	term, err := GetCurrentTerm(db)
	if err != nil && err != sql.ErrNoRows {
		return nil, err
	}
	stats.CurrentTerm = term

	if stats.UnreadMessages, err = CountUnreadMessages(db, userID); err != nil {
		return nil, err
	}
	return stats, nil
}
