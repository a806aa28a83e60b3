package models

import "time"

type User struct {
	ID        string       `json:"id" gorm:"primaryKey;type:uuid;default:gen_random_uuid()" validate:"required,uuid"`
	Email     string       `json:"email" gorm:"uniqueIndex;not null" validate:"required,email"`
	Password  string       `json:"-" gorm:"not null" validate:"required,min=8"`
	FirstName string       `json:"first_name" gorm:"not null" validate:"required"`
	LastName  string       `json:"last_name" gorm:"not null" validate:"required"`
	IsActive  bool         `json:"is_active" gorm:"default:true"`
	CreatedAt time.Time    `json:"created_at" gorm:"autoCreateTime"`
	UpdatedAt time.Time    `json:"updated_at" gorm:"autoUpdateTime"`
	Profile   *UserProfile `json:"profile,omitempty" gorm:"foreignKey:UserID;references:ID"`
}

// FullName joins first and last names for display.
func (u *User) FullName() string {
	return u.FirstName + " " + u.LastName
}

// UserProfile extends a User with portal role and contact details.
// Exactly one profile exists per user; user_type decides which role
// record (teacher/student/parent) the portal resolves at login.
type UserProfile struct {
	ID               string     `json:"id" gorm:"primaryKey;type:uuid;default:gen_random_uuid()" validate:"required,uuid"`
	UserID           string     `json:"user_id" gorm:"uniqueIndex;not null;type:uuid" validate:"required,uuid"`
	UserType         UserType   `json:"user_type" gorm:"not null;type:varchar(20)" validate:"required,oneof=admin teacher student parent"`
	Phone            string     `json:"phone,omitempty" gorm:"type:varchar(20)"`
	Address          string     `json:"address,omitempty"`
	DateOfBirth      *time.Time `json:"date_of_birth,omitempty" gorm:"type:date"`
	ProfilePicture   string     `json:"profile_picture,omitempty"`
	EmergencyContact string     `json:"emergency_contact,omitempty"`
	EmergencyPhone   string     `json:"emergency_phone,omitempty"`
	CreatedAt        time.Time  `json:"created_at" gorm:"autoCreateTime"`
	UpdatedAt        time.Time  `json:"updated_at" gorm:"autoUpdateTime"`
	User             *User      `json:"user,omitempty" gorm:"foreignKey:UserID;references:ID"`
}

type Session struct {
	ID        string    `json:"id" gorm:"primaryKey;type:uuid;default:gen_random_uuid()" validate:"required,uuid"`
	UserID    string    `json:"user_id" gorm:"not null;index;type:uuid" validate:"required,uuid"`
	ExpiresAt time.Time `json:"expires_at" gorm:"not null;index"`
	CreatedAt time.Time `json:"created_at" gorm:"autoCreateTime"`
	User      *User     `json:"user,omitempty" gorm:"foreignKey:UserID;references:ID"`
}
