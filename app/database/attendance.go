package database

import (
	"database/sql"
	"time"

	"stmarys-portal/app/models"
)

// CreateOrUpdateAttendance upserts on the (student, date) pair: marking
// the same day twice updates the existing record.
func CreateOrUpdateAttendance(db *sql.DB, a *models.Attendance) error {
	query := `INSERT INTO attendance (student_id, date, status, time_in, time_out, notes, marked_by, created_at)
			  VALUES ($1, $2, $3, $4, $5, $6, $7, NOW())
			  ON CONFLICT (student_id, date)
			  DO UPDATE SET status = EXCLUDED.status, time_in = EXCLUDED.time_in,
						    time_out = EXCLUDED.time_out, notes = EXCLUDED.notes,
						    marked_by = EXCLUDED.marked_by
			  RETURNING id, created_at`
	return db.QueryRow(query, a.StudentID, a.Date, a.Status, a.TimeIn, a.TimeOut, a.Notes, a.MarkedBy).Scan(
		&a.ID, &a.CreatedAt)
}

// GetAttendanceByStudentAndRange lists a student's records in [from,
// to], newest first.
func GetAttendanceByStudentAndRange(db *sql.DB, studentID string, from, to time.Time) ([]*models.Attendance, error) {
	query := `SELECT id, student_id, date, status, time_in, time_out, notes, marked_by, created_at
			  FROM attendance
			  WHERE student_id = $1 AND date BETWEEN $2 AND $3
			  ORDER BY date DESC`

	rows, err := db.Query(query, studentID, from, to)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var records []*models.Attendance
	for rows.Next() {
		a := &models.Attendance{}
		if err := rows.Scan(&a.ID, &a.StudentID, &a.Date, &a.Status, &a.TimeIn, &a.TimeOut,
			&a.Notes, &a.MarkedBy, &a.CreatedAt); err != nil {
			return nil, err
		}
		records = append(records, a)
	}
	if records == nil {
		records = []*models.Attendance{}
	}
	return records, rows.Err()
}

// GetAttendanceSummary counts a student's records by status over a date
// range. Days with no record are not counted at all.
func GetAttendanceSummary(db *sql.DB, studentID string, from, to time.Time) (models.AttendanceSummary, error) {
	var s models.AttendanceSummary
	query := `SELECT COUNT(*),
			  COUNT(*) FILTER (WHERE status = 'present'),
			  COUNT(*) FILTER (WHERE status = 'absent'),
			  COUNT(*) FILTER (WHERE status = 'late'),
			  COUNT(*) FILTER (WHERE status = 'excused')
			  FROM attendance
			  WHERE student_id = $1 AND date BETWEEN $2 AND $3`
	err := db.QueryRow(query, studentID, from, to).Scan(
		&s.TotalDays, &s.PresentDays, &s.AbsentDays, &s.LateDays, &s.ExcusedDays)
	return s, err
}

// GetAttendanceByClassAndDate returns the day's records for every
// student in a class.
func GetAttendanceByClassAndDate(db *sql.DB, classID string, date time.Time) ([]*models.Attendance, error) {
	query := `SELECT a.id, a.student_id, a.date, a.status, a.time_in, a.time_out, a.notes, a.marked_by,
			  a.created_at, u.first_name || ' ' || u.last_name
			  FROM attendance a
			  JOIN students s ON a.student_id = s.id
			  JOIN user_profiles p ON s.profile_id = p.id
			  JOIN users u ON p.user_id = u.id
			  WHERE s.current_class_id = $1 AND a.date = $2
			  ORDER BY u.first_name`

	rows, err := db.Query(query, classID, date)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var records []*models.Attendance
	for rows.Next() {
		a := &models.Attendance{}
		if err := rows.Scan(&a.ID, &a.StudentID, &a.Date, &a.Status, &a.TimeIn, &a.TimeOut,
			&a.Notes, &a.MarkedBy, &a.CreatedAt, &a.StudentName); err != nil {
			return nil, err
		}
		records = append(records, a)
	}
	if records == nil {
		records = []*models.Attendance{}
	}
	return records, rows.Err()
}
