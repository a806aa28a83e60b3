package database

import (
	"database/sql"

	"stmarys-portal/app/models"
)

func GetAllSubjects(db *sql.DB) ([]*models.Subject, error) {
	query := `SELECT id, name, code, description, is_core, created_at, updated_at
			  FROM subjects ORDER BY name`

	rows, err := db.Query(query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var subjects []*models.Subject
	for rows.Next() {
		subject := &models.Subject{}
		if err := rows.Scan(&subject.ID, &subject.Name, &subject.Code, &subject.Description,
			&subject.IsCore, &subject.CreatedAt, &subject.UpdatedAt); err != nil {
			return nil, err
		}
		subjects = append(subjects, subject)
	}
	if subjects == nil {
		subjects = []*models.Subject{}
	}
	return subjects, rows.Err()
}

func GetSubjectByID(db *sql.DB, id string) (*models.Subject, error) {
	query := `SELECT id, name, code, description, is_core, created_at, updated_at
			  FROM subjects WHERE id = $1`

	subject := &models.Subject{}
	err := db.QueryRow(query, id).Scan(&subject.ID, &subject.Name, &subject.Code,
		&subject.Description, &subject.IsCore, &subject.CreatedAt, &subject.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return subject, nil
}

func CreateSubject(db *sql.DB, subject *models.Subject) error {
	query := `INSERT INTO subjects (name, code, description, is_core, created_at, updated_at)
			  VALUES ($1, $2, $3, $4, NOW(), NOW())
			  RETURNING id, created_at, updated_at`
	err := db.QueryRow(query, subject.Name, subject.Code, subject.Description, subject.IsCore).Scan(
		&subject.ID, &subject.CreatedAt, &subject.UpdatedAt)
	if IsUniqueViolation(err) {
		return ErrDuplicate
	}
	return err
}

func UpdateSubject(db *sql.DB, subject *models.Subject) error {
	query := `UPDATE subjects SET name = $1, code = $2, description = $3, is_core = $4, updated_at = NOW()
			  WHERE id = $5`
	_, err := db.Exec(query, subject.Name, subject.Code, subject.Description, subject.IsCore, subject.ID)
	return err
}

func DeleteSubject(db *sql.DB, id string) error {
	_, err := db.Exec(`DELETE FROM subjects WHERE id = $1`, id)
	return err
}

func GetSubjectsByTeacher(db *sql.DB, teacherID string) ([]*models.Subject, error) {
	query := `SELECT s.id, s.name, s.code, s.description, s.is_core, s.created_at, s.updated_at
			  FROM subjects s
			  JOIN teacher_subjects ts ON ts.subject_id = s.id
			  WHERE ts.teacher_id = $1
			  ORDER BY s.name`

	rows, err := db.Query(query, teacherID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var subjects []*models.Subject
	for rows.Next() {
		subject := &models.Subject{}
		if err := rows.Scan(&subject.ID, &subject.Name, &subject.Code, &subject.Description,
			&subject.IsCore, &subject.CreatedAt, &subject.UpdatedAt); err != nil {
			return nil, err
		}
		subjects = append(subjects, subject)
	}
	if subjects == nil {
		subjects = []*models.Subject{}
	}
	return subjects, rows.Err()
}

func SetTeacherSubjects(db *sql.DB, teacherID string, subjectIDs []string) error {
	tx, err := db.Begin()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	if _, err = tx.Exec(`DELETE FROM teacher_subjects WHERE teacher_id = $1`, teacherID); err != nil {
		return err
	}
	for _, subjectID := range subjectIDs {
		if _, err = tx.Exec(`INSERT INTO teacher_subjects (teacher_id, subject_id) VALUES ($1, $2)`,
			teacherID, subjectID); err != nil {
			return err
		}
	}

	return tx.Commit()
}
