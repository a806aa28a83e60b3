package database

import (
	"database/sql"

	"stmarys-portal/app/models"
)

const parentSelect = `SELECT pa.id, pa.profile_id, pa.relationship, pa.occupation, pa.workplace,
		pa.work_phone, pa.is_primary_contact, pa.created_at, u.first_name, u.last_name, u.email
		FROM parents pa
		JOIN user_profiles p ON pa.profile_id = p.id
		JOIN users u ON p.user_id = u.id`

func scanParent(row interface{ Scan(...interface{}) error }) (*models.Parent, error) {
	parent := &models.Parent{}
	err := row.Scan(&parent.ID, &parent.ProfileID, &parent.Relationship, &parent.Occupation,
		&parent.Workplace, &parent.WorkPhone, &parent.IsPrimaryContact, &parent.CreatedAt,
		&parent.FirstName, &parent.LastName, &parent.Email)
	if err != nil {
		return nil, err
	}
	return parent, nil
}

func GetAllParents(db *sql.DB) ([]*models.Parent, error) {
	rows, err := db.Query(parentSelect + ` ORDER BY u.first_name, u.last_name`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var parents []*models.Parent
	for rows.Next() {
		parent, err := scanParent(rows)
		if err != nil {
			return nil, err
		}
		parents = append(parents, parent)
	}
	if parents == nil {
		parents = []*models.Parent{}
	}
	return parents, rows.Err()
}

func GetParentByID(db *sql.DB, id string) (*models.Parent, error) {
	return scanParent(db.QueryRow(parentSelect+` WHERE pa.id = $1`, id))
}

// GetParentByUserID resolves the parent role record for an
// authenticated user.
func GetParentByUserID(db *sql.DB, userID string) (*models.Parent, error) {
	return scanParent(db.QueryRow(parentSelect+` WHERE p.user_id = $1`, userID))
}

// CreateParent creates the account, profile and parent role record in
// one transaction.
func CreateParent(db *sql.DB, user *models.User, parent *models.Parent) error {
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
		VALUES ($1, 'parent', NOW(), NOW()) RETURNING id`, user.ID).Scan(&parent.ProfileID)
	if err != nil {
		return err
	}

	err = tx.QueryRow(`INSERT INTO parents (profile_id, relationship, occupation, workplace, work_phone, is_primary_contact, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, NOW()) RETURNING id, created_at`,
		parent.ProfileID, parent.Relationship, parent.Occupation, parent.Workplace,
		parent.WorkPhone, parent.IsPrimaryContact).Scan(&parent.ID, &parent.CreatedAt)
	if err != nil {
		return err
	}

	parent.FirstName = user.FirstName
	parent.LastName = user.LastName
	parent.Email = user.Email

	return tx.Commit()
}

func UpdateParent(db *sql.DB, parent *models.Parent) error {
	query := `UPDATE parents SET relationship = $1, occupation = $2, workplace = $3,
			  work_phone = $4, is_primary_contact = $5 WHERE id = $6`
	_, err := db.Exec(query, parent.Relationship, parent.Occupation, parent.Workplace,
		parent.WorkPhone, parent.IsPrimaryContact, parent.ID)
	return err
}

// GetChildren returns the active students linked to a parent.
func GetChildren(db *sql.DB, parentID string) ([]*models.Student, error) {
	rows, err := db.Query(studentSelect+`
		JOIN parent_children pc ON pc.student_id = s.id
		WHERE pc.parent_id = $1 AND s.is_active = true
		ORDER BY u.first_name`, parentID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return collectStudents(rows)
}

// IsParentOfStudent reports whether the student is in the parent's
// children set.
func IsParentOfStudent(db *sql.DB, parentID, studentID string) (bool, error) {
	var ok bool
	err := db.QueryRow(`SELECT EXISTS (
		SELECT 1 FROM parent_children WHERE parent_id = $1 AND student_id = $2
	)`, parentID, studentID).Scan(&ok)
	return ok, err
}

func AddChild(db *sql.DB, parentID, studentID string) error {
	_, err := db.Exec(`INSERT INTO parent_children (parent_id, student_id) VALUES ($1, $2)
		ON CONFLICT DO NOTHING`, parentID, studentID)
	return err
}

func RemoveChild(db *sql.DB, parentID, studentID string) error {
	_, err := db.Exec(`DELETE FROM parent_children WHERE parent_id = $1 AND student_id = $2`, parentID, studentID)
	return err
}

func CountParents(db *sql.DB) (int, error) {
	var count int
	err := db.QueryRow(`SELECT COUNT(*) FROM parents`).Scan(&count)
	return count, err
}
