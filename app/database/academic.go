package database

import (
	"database/sql"

	"stmarys-portal/app/models"
)

func GetAllAcademicYears(db *sql.DB) ([]*models.AcademicYear, error) {
	query := `SELECT id, name, start_date, end_date, is_current, created_at, updated_at
			  FROM academic_years ORDER BY start_date DESC`

	rows, err := db.Query(query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var years []*models.AcademicYear
	for rows.Next() {
		year := &models.AcademicYear{}
		if err := rows.Scan(&year.ID, &year.Name, &year.StartDate.Time, &year.EndDate.Time,
			&year.IsCurrent, &year.CreatedAt, &year.UpdatedAt); err != nil {
			return nil, err
		}
		years = append(years, year)
	}
	if years == nil {
		years = []*models.AcademicYear{}
	}
	return years, rows.Err()
}

func GetAcademicYearByID(db *sql.DB, id string) (*models.AcademicYear, error) {
	query := `SELECT id, name, start_date, end_date, is_current, created_at, updated_at
			  FROM academic_years WHERE id = $1`

	year := &models.AcademicYear{}
	err := db.QueryRow(query, id).Scan(&year.ID, &year.Name, &year.StartDate.Time, &year.EndDate.Time,
		&year.IsCurrent, &year.CreatedAt, &year.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return year, nil
}

func GetCurrentAcademicYear(db *sql.DB) (*models.AcademicYear, error) {
	query := `SELECT id, name, start_date, end_date, is_current, created_at, updated_at
			  FROM academic_years WHERE is_current = true LIMIT 1`

	year := &models.AcademicYear{}
	err := db.QueryRow(query).Scan(&year.ID, &year.Name, &year.StartDate.Time, &year.EndDate.Time,
		&year.IsCurrent, &year.CreatedAt, &year.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return year, nil
}

// CreateAcademicYear inserts a year. When is_current is set the flag is
// cleared from every other year in the same transaction so at most one
// year stays current.
func CreateAcademicYear(db *sql.DB, year *models.AcademicYear) error {
	tx, err := db.Begin()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	if year.IsCurrent {
		if _, err = tx.Exec(`UPDATE academic_years SET is_current = false WHERE is_current = true`); err != nil {
			return err
		}
	}

	query := `INSERT INTO academic_years (name, start_date, end_date, is_current, created_at, updated_at)
			  VALUES ($1, $2, $3, $4, NOW(), NOW())
			  RETURNING id, created_at, updated_at`
	err = tx.QueryRow(query, year.Name, year.StartDate.Time, year.EndDate.Time, year.IsCurrent).Scan(
		&year.ID, &year.CreatedAt, &year.UpdatedAt)
	if err != nil {
		if IsUniqueViolation(err) {
			return ErrDuplicate
		}
		return err
	}

	return tx.Commit()
}

func UpdateAcademicYear(db *sql.DB, year *models.AcademicYear) error {
	tx, err := db.Begin()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	if year.IsCurrent {
		if _, err = tx.Exec(`UPDATE academic_years SET is_current = false WHERE is_current = true AND id <> $1`, year.ID); err != nil {
			return err
		}
	}

	query := `UPDATE academic_years SET name = $1, start_date = $2, end_date = $3, is_current = $4, updated_at = NOW()
			  WHERE id = $5`
	if _, err = tx.Exec(query, year.Name, year.StartDate.Time, year.EndDate.Time, year.IsCurrent, year.ID); err != nil {
		return err
	}

	return tx.Commit()
}

func DeleteAcademicYear(db *sql.DB, id string) error {
	_, err := db.Exec(`DELETE FROM academic_years WHERE id = $1`, id)
	return err
}

func GetAllTerms(db *sql.DB) ([]*models.Term, error) {
	query := `SELECT t.id, t.academic_year_id, t.term_number, t.name, t.start_date, t.end_date, t.is_current,
			  t.created_at, t.updated_at, ay.name
			  FROM terms t
			  JOIN academic_years ay ON t.academic_year_id = ay.id
			  ORDER BY ay.start_date DESC, t.term_number`

	rows, err := db.Query(query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var terms []*models.Term
	for rows.Next() {
		term := &models.Term{AcademicYear: &models.AcademicYear{}}
		if err := rows.Scan(&term.ID, &term.AcademicYearID, &term.TermNumber, &term.Name,
			&term.StartDate.Time, &term.EndDate.Time, &term.IsCurrent,
			&term.CreatedAt, &term.UpdatedAt, &term.AcademicYear.Name); err != nil {
			return nil, err
		}
		term.AcademicYear.ID = term.AcademicYearID
		terms = append(terms, term)
	}
	if terms == nil {
		terms = []*models.Term{}
	}
	return terms, rows.Err()
}

func GetTermsByAcademicYear(db *sql.DB, academicYearID string) ([]*models.Term, error) {
	query := `SELECT id, academic_year_id, term_number, name, start_date, end_date, is_current, created_at, updated_at
			  FROM terms WHERE academic_year_id = $1 ORDER BY term_number`

	rows, err := db.Query(query, academicYearID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var terms []*models.Term
	for rows.Next() {
		term := &models.Term{}
		if err := rows.Scan(&term.ID, &term.AcademicYearID, &term.TermNumber, &term.Name,
			&term.StartDate.Time, &term.EndDate.Time, &term.IsCurrent, &term.CreatedAt, &term.UpdatedAt); err != nil {
			return nil, err
		}
		terms = append(terms, term)
	}
	if terms == nil {
		terms = []*models.Term{}
	}
	return terms, rows.Err()
}

func GetTermByID(db *sql.DB, id string) (*models.Term, error) {
	query := `SELECT id, academic_year_id, term_number, name, start_date, end_date, is_current, created_at, updated_at
			  FROM terms WHERE id = $1`

	term := &models.Term{}
	err := db.QueryRow(query, id).Scan(&term.ID, &term.AcademicYearID, &term.TermNumber, &term.Name,
		&term.StartDate.Time, &term.EndDate.Time, &term.IsCurrent, &term.CreatedAt, &term.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return term, nil
}

func GetCurrentTerm(db *sql.DB) (*models.Term, error) {
	query := `SELECT id, academic_year_id, term_number, name, start_date, end_date, is_current, created_at, updated_at
			  FROM terms WHERE is_current = true LIMIT 1`

	term := &models.Term{}
	err := db.QueryRow(query).Scan(&term.ID, &term.AcademicYearID, &term.TermNumber, &term.Name,
		&term.StartDate.Time, &term.EndDate.Time, &term.IsCurrent, &term.CreatedAt, &term.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return term, nil
}

// CreateTerm inserts a term, clearing the current flag from all other
// terms when this one is marked current.
func CreateTerm(db *sql.DB, term *models.Term) error {
	tx, err := db.Begin()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	if term.IsCurrent {
		if _, err = tx.Exec(`UPDATE terms SET is_current = false WHERE is_current = true`); err != nil {
			return err
		}
	}

	query := `INSERT INTO terms (academic_year_id, term_number, name, start_date, end_date, is_current, created_at, updated_at)
			  VALUES ($1, $2, $3, $4, $5, $6, NOW(), NOW())
			  RETURNING id, created_at, updated_at`
	err = tx.QueryRow(query, term.AcademicYearID, term.TermNumber, term.Name,
		term.StartDate.Time, term.EndDate.Time, term.IsCurrent).Scan(
		&term.ID, &term.CreatedAt, &term.UpdatedAt)
	if err != nil {
		if IsUniqueViolation(err) {
			return ErrDuplicate
		}
		return err
	}

	return tx.Commit()
}

func UpdateTerm(db *sql.DB, term *models.Term) error {
	tx, err := db.Begin()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	if term.IsCurrent {
		if _, err = tx.Exec(`UPDATE terms SET is_current = false WHERE is_current = true AND id <> $1`, term.ID); err != nil {
			return err
		}
	}

	query := `UPDATE terms SET academic_year_id = $1, term_number = $2, name = $3, start_date = $4, end_date = $5,
			  is_current = $6, updated_at = NOW() WHERE id = $7`
	if _, err = tx.Exec(query, term.AcademicYearID, term.TermNumber, term.Name,
		term.StartDate.Time, term.EndDate.Time, term.IsCurrent, term.ID); err != nil {
		return err
	}

	return tx.Commit()
}

func DeleteTerm(db *sql.DB, id string) error {
	_, err := db.Exec(`DELETE FROM terms WHERE id = $1`, id)
	return err
}

// SetCurrentTerm points the global current-term flag at the given term
// with a transactional clear-then-set.
func SetCurrentTerm(db *sql.DB, termID string) error {
	tx, err := db.Begin()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	if _, err = tx.Exec(`UPDATE terms SET is_current = false WHERE is_current = true`); err != nil {
		return err
	}
	res, err := tx.Exec(`UPDATE terms SET is_current = true, updated_at = NOW() WHERE id = $1`, termID)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return sql.ErrNoRows
	}

	return tx.Commit()
}
