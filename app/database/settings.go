package database

import (
	"database/sql"

	"stmarys-portal/app/models"
)

const settingsSelect = `SELECT id, school_year_start_month, grading_scale, attendance_required,
		parent_access_enabled, assignment_submission_enabled, communication_enabled,
		report_generation_enabled, created_at, updated_at
		FROM portal_settings`

func scanSettings(row interface{ Scan(...interface{}) error }) (*models.PortalSettings, error) {
	s := &models.PortalSettings{}
	err := row.Scan(&s.ID, &s.SchoolYearStartMonth, &s.GradingScale, &s.AttendanceRequired,
		&s.ParentAccessEnabled, &s.AssignmentSubmissionEnabled, &s.CommunicationEnabled,
		&s.ReportGenerationEnabled, &s.CreatedAt, &s.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return s, nil
}

// GetPortalSettings returns the single settings row, or sql.ErrNoRows
// when none has been created yet.
func GetPortalSettings(db *sql.DB) (*models.PortalSettings, error) {
	return scanSettings(db.QueryRow(settingsSelect + ` LIMIT 1`))
}

// CreatePortalSettings inserts the settings row. The singleton column
// makes a second insert fail with ErrDuplicate.
func CreatePortalSettings(db *sql.DB, s *models.PortalSettings) error {
	query := `INSERT INTO portal_settings (school_year_start_month, grading_scale, attendance_required,
			  parent_access_enabled, assignment_submission_enabled, communication_enabled, report_generation_enabled)
			  VALUES ($1, $2, $3, $4, $5, $6, $7)
			  RETURNING id, created_at, updated_at`
	err := db.QueryRow(query, s.SchoolYearStartMonth, s.GradingScale, s.AttendanceRequired,
		s.ParentAccessEnabled, s.AssignmentSubmissionEnabled, s.CommunicationEnabled,
		s.ReportGenerationEnabled).Scan(&s.ID, &s.CreatedAt, &s.UpdatedAt)
	if IsUniqueViolation(err) {
		return ErrDuplicate
	}
	return err
}

func UpdatePortalSettings(db *sql.DB, s *models.PortalSettings) error {
	query := `UPDATE portal_settings SET school_year_start_month = $1, grading_scale = $2,
			  attendance_required = $3, parent_access_enabled = $4, assignment_submission_enabled = $5,
			  communication_enabled = $6, report_generation_enabled = $7, updated_at = NOW()
			  WHERE id = $8 RETURNING updated_at`
	return db.QueryRow(query, s.SchoolYearStartMonth, s.GradingScale, s.AttendanceRequired,
		s.ParentAccessEnabled, s.AssignmentSubmissionEnabled, s.CommunicationEnabled,
		s.ReportGenerationEnabled, s.ID).Scan(&s.UpdatedAt)
}

// EnsurePortalSettings returns the settings row, creating a default one
// on first use.
func EnsurePortalSettings(db *sql.DB) (*models.PortalSettings, error) {
	settings, err := GetPortalSettings(db)
	if err == nil {
		return settings, nil
	}
	if err != sql.ErrNoRows {
		return nil, err
	}
	settings = &models.PortalSettings{
		SchoolYearStartMonth:        1,
		GradingScale:                models.GradingScale{},
		AttendanceRequired:          true,
		ParentAccessEnabled:         true,
		AssignmentSubmissionEnabled: true,
		CommunicationEnabled:        true,
		ReportGenerationEnabled:     true,
	}
	if err := CreatePortalSettings(db, settings); err != nil {
		if err == ErrDuplicate {
			return GetPortalSettings(db)
		}
		return nil, err
	}
	return settings, nil
}
