package database

import (
	"database/sql"

	"stmarys-portal/app/models"
)

const studentSelect = `SELECT s.id, s.profile_id, s.admission_number, s.current_class_id, s.gender,
		s.admission_date, s.parent_guardian_id, s.medical_conditions, s.previous_school, s.is_active,
		s.created_at, u.first_name, u.last_name, u.email, COALESCE(c.display_name, '')
		FROM students s
		JOIN user_profiles p ON s.profile_id = p.id
		JOIN users u ON p.user_id = u.id
		LEFT JOIN classes c ON s.current_class_id = c.id`

func scanStudent(row interface{ Scan(...interface{}) error }) (*models.Student, error) {
	student := &models.Student{}
	err := row.Scan(&student.ID, &student.ProfileID, &student.AdmissionNumber, &student.CurrentClassID,
		&student.Gender, &student.AdmissionDate.Time, &student.ParentGuardianID, &student.MedicalConditions,
		&student.PreviousSchool, &student.IsActive, &student.CreatedAt,
		&student.FirstName, &student.LastName, &student.Email, &student.ClassName)
	if err != nil {
		return nil, err
	}
	return student, nil
}

func GetAllStudents(db *sql.DB) ([]*models.Student, error) {
	rows, err := db.Query(studentSelect + ` WHERE s.is_active = true ORDER BY s.admission_number`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return collectStudents(rows)
}

func collectStudents(rows *sql.Rows) ([]*models.Student, error) {
	var students []*models.Student
	for rows.Next() {
		student, err := scanStudent(rows)
		if err != nil {
			return nil, err
		}
		students = append(students, student)
	}
	if students == nil {
		students = []*models.Student{}
	}
	return students, rows.Err()
}

func GetStudentByID(db *sql.DB, id string) (*models.Student, error) {
	return scanStudent(db.QueryRow(studentSelect+` WHERE s.id = $1`, id))
}

// GetStudentByUserID resolves the student role record for an
// authenticated user.
func GetStudentByUserID(db *sql.DB, userID string) (*models.Student, error) {
	return scanStudent(db.QueryRow(studentSelect+` WHERE p.user_id = $1`, userID))
}

func GetStudentsByClass(db *sql.DB, classID string) ([]*models.Student, error) {
	rows, err := db.Query(studentSelect+` WHERE s.current_class_id = $1 AND s.is_active = true
		ORDER BY u.first_name, u.last_name`, classID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return collectStudents(rows)
}

// CreateStudent creates the account, profile and student role record
// in one transaction. A duplicate admission number surfaces as
// ErrDuplicate.
func CreateStudent(db *sql.DB, user *models.User, student *models.Student) error {
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
		VALUES ($1, 'student', NOW(), NOW()) RETURNING id`, user.ID).Scan(&student.ProfileID)
	if err != nil {
		return err
	}

	err = tx.QueryRow(`INSERT INTO students (profile_id, admission_number, current_class_id, gender,
		admission_date, parent_guardian_id, medical_conditions, previous_school, is_active, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, true, NOW()) RETURNING id, created_at`,
		student.ProfileID, student.AdmissionNumber, student.CurrentClassID, student.Gender,
		student.AdmissionDate.Time, student.ParentGuardianID, student.MedicalConditions,
		student.PreviousSchool).Scan(&student.ID, &student.CreatedAt)
	if err != nil {
		if IsUniqueViolation(err) {
			return ErrDuplicate
		}
		return err
	}

	student.FirstName = user.FirstName
	student.LastName = user.LastName
	student.Email = user.Email

	return tx.Commit()
}

func UpdateStudent(db *sql.DB, student *models.Student) error {
	query := `UPDATE students SET admission_number = $1, current_class_id = $2, gender = $3,
			  admission_date = $4, parent_guardian_id = $5, medical_conditions = $6,
			  previous_school = $7, is_active = $8 WHERE id = $9`
	_, err := db.Exec(query, student.AdmissionNumber, student.CurrentClassID, student.Gender,
		student.AdmissionDate.Time, student.ParentGuardianID, student.MedicalConditions,
		student.PreviousSchool, student.IsActive, student.ID)
	if IsUniqueViolation(err) {
		return ErrDuplicate
	}
	return err
}

// DeactivateStudent soft-disables the role record.
func DeactivateStudent(db *sql.DB, id string) error {
	_, err := db.Exec(`UPDATE students SET is_active = false WHERE id = $1`, id)
	return err
}

func CountActiveStudents(db *sql.DB) (int, error) {
	var count int
	err := db.QueryRow(`SELECT COUNT(*) FROM students WHERE is_active = true`).Scan(&count)
	return count, err
}
