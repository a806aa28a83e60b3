package database

import (
	"database/sql"
	"time"

	"stmarys-portal/app/models"

	"golang.org/x/crypto/bcrypt"
)

// hashPassword hashes a password using bcrypt
func hashPassword(password string) (string, error) {
	bytes, err := bcrypt.GenerateFromPassword([]byte(password), 14)
	return string(bytes), err
}

func GetUserByEmail(db *sql.DB, email string) (*models.User, error) {
	user := &models.User{}
	query := `SELECT id, email, password, first_name, last_name, is_active, created_at, updated_at
			  FROM users WHERE email = $1 AND is_active = true`

	err := db.QueryRow(query, email).Scan(
		&user.ID, &user.Email, &user.Password, &user.FirstName,
		&user.LastName, &user.IsActive, &user.CreatedAt, &user.UpdatedAt,
	)

	if err != nil {
		return nil, err
	}
	return user, nil
}

func GetUserByID(db *sql.DB, userID string) (*models.User, error) {
	user := &models.User{}
	query := `SELECT id, email, password, first_name, last_name, is_active, created_at, updated_at
			  FROM users WHERE id = $1 AND is_active = true`

	err := db.QueryRow(query, userID).Scan(
		&user.ID, &user.Email, &user.Password, &user.FirstName,
		&user.LastName, &user.IsActive, &user.CreatedAt, &user.UpdatedAt,
	)

	if err != nil {
		return nil, err
	}
	return user, nil
}

// GetProfileByUserID loads the portal profile carrying the user's role.
func GetProfileByUserID(db *sql.DB, userID string) (*models.UserProfile, error) {
	profile := &models.UserProfile{}
	query := `SELECT id, user_id, user_type, phone, address, date_of_birth, profile_picture,
			  emergency_contact, emergency_phone, created_at, updated_at
			  FROM user_profiles WHERE user_id = $1`

	err := db.QueryRow(query, userID).Scan(
		&profile.ID, &profile.UserID, &profile.UserType, &profile.Phone, &profile.Address,
		&profile.DateOfBirth, &profile.ProfilePicture, &profile.EmergencyContact,
		&profile.EmergencyPhone, &profile.CreatedAt, &profile.UpdatedAt,
	)

	if err != nil {
		return nil, err
	}
	return profile, nil
}

func UpdateProfile(db *sql.DB, profile *models.UserProfile) error {
	query := `UPDATE user_profiles
			  SET phone = $1, address = $2, date_of_birth = $3, profile_picture = $4,
				  emergency_contact = $5, emergency_phone = $6, updated_at = NOW()
			  WHERE id = $7`
	_, err := db.Exec(query, profile.Phone, profile.Address, profile.DateOfBirth,
		profile.ProfilePicture, profile.EmergencyContact, profile.EmergencyPhone, profile.ID)
	return err
}

// CreateUserWithProfile creates the account row and its role profile in
// one transaction. The caller supplies a plaintext password.
func CreateUserWithProfile(db *sql.DB, user *models.User, userType models.UserType) (*models.UserProfile, error) {
	hashedPassword, err := hashPassword(user.Password)
	if err != nil {
		return nil, err
	}

	tx, err := db.Begin()
	if err != nil {
		return nil, err
	}
	defer tx.Rollback()

	query := `INSERT INTO users (email, password, first_name, last_name, is_active, created_at, updated_at)
			  VALUES ($1, $2, $3, $4, true, NOW(), NOW())
			  RETURNING id, created_at, updated_at`
	err = tx.QueryRow(query, user.Email, hashedPassword, user.FirstName, user.LastName).Scan(
		&user.ID, &user.CreatedAt, &user.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	profile := &models.UserProfile{UserID: user.ID, UserType: userType}
	profileQuery := `INSERT INTO user_profiles (user_id, user_type, created_at, updated_at)
					 VALUES ($1, $2, NOW(), NOW())
					 RETURNING id, created_at, updated_at`
	err = tx.QueryRow(profileQuery, user.ID, userType).Scan(
		&profile.ID, &profile.CreatedAt, &profile.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	if err := tx.Commit(); err != nil {
		return nil, err
	}
	return profile, nil
}

func CreateSession(db *sql.DB, sessionID interface{}, userID string, expiresAt time.Time) error {
	query := `INSERT INTO sessions (id, user_id, expires_at, created_at) VALUES ($1, $2, $3, $4)`
	_, err := db.Exec(query, sessionID, userID, expiresAt, time.Now())
	return err
}

func GetSessionByID(db *sql.DB, sessionID string) (*models.Session, error) {
	session := &models.Session{}
	query := `SELECT id, user_id, expires_at, created_at FROM sessions WHERE id = $1 AND expires_at > NOW()`

	err := db.QueryRow(query, sessionID).Scan(
		&session.ID, &session.UserID, &session.ExpiresAt, &session.CreatedAt,
	)

	if err != nil {
		return nil, err
	}
	return session, nil
}

func DeleteSession(db *sql.DB, sessionID string) error {
	query := `DELETE FROM sessions WHERE id = $1`
	_, err := db.Exec(query, sessionID)
	return err
}

// DeleteExpiredSessions removes stale session rows; called by the
// background scheduler.
func DeleteExpiredSessions(db *sql.DB) (int64, error) {
	res, err := db.Exec(`DELETE FROM sessions WHERE expires_at <= NOW()`)
	if err != nil {
		return 0, err
	}
	return res.RowsAffected()
}

func UpdateUserPassword(db *sql.DB, userID string, hashedPassword string) error {
	query := `UPDATE users SET password = $1, updated_at = NOW() WHERE id = $2`
	_, err := db.Exec(query, hashedPassword, userID)
	return err
}
