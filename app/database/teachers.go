package database

import (
	"database/sql"

	"stmarys-portal/app/models"
)

const teacherSelect = `SELECT t.id, t.profile_id, t.employee_id, t.employment_status, t.hire_date,
		t.qualifications, t.is_active, t.created_at, u.first_name, u.last_name, u.email
		FROM teachers t
		JOIN user_profiles p ON t.profile_id = p.id
		JOIN users u ON p.user_id = u.id`

func scanTeacher(row interface{ Scan(...interface{}) error }) (*models.Teacher, error) {
	teacher := &models.Teacher{}
	err := row.Scan(&teacher.ID, &teacher.ProfileID, &teacher.EmployeeID, &teacher.EmploymentStatus,
		&teacher.HireDate.Time, &teacher.Qualifications, &teacher.IsActive, &teacher.CreatedAt,
		&teacher.FirstName, &teacher.LastName, &teacher.Email)
	if err != nil {
		return nil, err
	}
	return teacher, nil
}

func GetAllTeachers(db *sql.DB) ([]*models.Teacher, error) {
	rows, err := db.Query(teacherSelect + ` WHERE t.is_active = true ORDER BY u.first_name, u.last_name`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var teachers []*models.Teacher
	for rows.Next() {
		teacher, err := scanTeacher(rows)
		if err != nil {
			return nil, err
		}
		teachers = append(teachers, teacher)
	}
	if teachers == nil {
		teachers = []*models.Teacher{}
	}
	return teachers, rows.Err()
}

func GetTeacherByID(db *sql.DB, id string) (*models.Teacher, error) {
	return scanTeacher(db.QueryRow(teacherSelect+` WHERE t.id = $1`, id))
}

// GetTeacherByUserID resolves the teacher role record for an
// authenticated user.
func GetTeacherByUserID(db *sql.DB, userID string) (*models.Teacher, error) {
	return scanTeacher(db.QueryRow(teacherSelect+` WHERE p.user_id = $1`, userID))
}

// CreateTeacher creates the account, profile and teacher role record
// in one transaction.
func CreateTeacher(db *sql.DB, user *models.User, teacher *models.Teacher) error {
	hashedPassword, err := hashPassword(user.Password)
	if err != nil {
		return err
	}

	tx, err := db.Begin()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	err = tx.QueryRow(`INSERT INTO users (email, password, first_name, last_name, is_active, created_at, updated_at)
		VALUES ($1, $2, $3, $4, true, NOW(), NOW()) RETURNING id, created_at, updated_at`,
		user.Email, hashedPassword, user.FirstName, user.LastName).Scan(&user.ID, &user.CreatedAt, &user.UpdatedAt)
	if err != nil {
		if IsUniqueViolation(err) {
			return ErrDuplicate
		}
		return err
	}

	err = tx.QueryRow(`INSERT INTO user_profiles (user_id, user_type, created_at, updated_at)
		VALUES ($1, 'teacher', NOW(), NOW()) RETURNING id`, user.ID).Scan(&teacher.ProfileID)
	if err != nil {
		return err
	}

	err = tx.QueryRow(`INSERT INTO teachers (profile_id, employee_id, employment_status, hire_date, qualifications, is_active, created_at)
		VALUES ($1, $2, $3, $4, $5, true, NOW()) RETURNING id, created_at`,
		teacher.ProfileID, teacher.EmployeeID, teacher.EmploymentStatus, teacher.HireDate.Time,
		teacher.Qualifications).Scan(&teacher.ID, &teacher.CreatedAt)
	if err != nil {
		if IsUniqueViolation(err) {
			return ErrDuplicate
		}
		return err
	}

	teacher.FirstName = user.FirstName
	teacher.LastName = user.LastName
	teacher.Email = user.Email

	return tx.Commit()
}

func UpdateTeacher(db *sql.DB, teacher *models.Teacher) error {
	query := `UPDATE teachers SET employee_id = $1, employment_status = $2, hire_date = $3,
			  qualifications = $4, is_active = $5 WHERE id = $6`
	_, err := db.Exec(query, teacher.EmployeeID, teacher.EmploymentStatus, teacher.HireDate.Time,
		teacher.Qualifications, teacher.IsActive, teacher.ID)
	return err
}

// DeactivateTeacher soft-disables the role record; the account stays.
func DeactivateTeacher(db *sql.DB, id string) error {
	_, err := db.Exec(`UPDATE teachers SET is_active = false WHERE id = $1`, id)
	return err
}

func CountActiveTeachers(db *sql.DB) (int, error) {
	var count int
	err := db.QueryRow(`SELECT COUNT(*) FROM teachers WHERE is_active = true`).Scan(&count)
	return count, err
}
