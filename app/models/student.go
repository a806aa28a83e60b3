package models

import "time"

// Student is the role record linked one-to-one to a user profile.
type Student struct {
	ID                string       `json:"id" gorm:"primaryKey;type:uuid;default:gen_random_uuid()" validate:"required,uuid"`
	ProfileID         string       `json:"profile_id" gorm:"uniqueIndex;not null;type:uuid" validate:"required,uuid"`
	AdmissionNumber   string       `json:"admission_number" gorm:"uniqueIndex;not null" validate:"required"`
	CurrentClassID    *string      `json:"current_class_id,omitempty" gorm:"index;type:uuid"`
	Gender            Gender       `json:"gender" gorm:"type:varchar(10)" validate:"required,oneof=male female"`
	AdmissionDate     CustomDate   `json:"admission_date" gorm:"not null;type:date"`
	ParentGuardianID  *string      `json:"parent_guardian_id,omitempty" gorm:"index;type:uuid"`
	MedicalConditions string       `json:"medical_conditions,omitempty"`
	PreviousSchool    string       `json:"previous_school,omitempty"`
	IsActive          bool         `json:"is_active" gorm:"default:true"`
	CreatedAt         time.Time    `json:"created_at" gorm:"autoCreateTime"`
	Profile           *UserProfile `json:"profile,omitempty" gorm:"foreignKey:ProfileID;references:ID"`
	CurrentClass      *Class       `json:"current_class,omitempty" gorm:"foreignKey:CurrentClassID;references:ID"`

	// Display fields populated by joins
	FirstName string `json:"first_name,omitempty" gorm:"-"`
	LastName  string `json:"last_name,omitempty" gorm:"-"`
	Email     string `json:"email,omitempty" gorm:"-"`
	ClassName string `json:"class_name,omitempty" gorm:"-"`
}

// FullName joins the display names loaded from the user join.
func (s *Student) FullName() string {
	return s.FirstName + " " + s.LastName
}

// Age computes the student's age from the profile date of birth,
// or -1 when no date of birth is recorded.
func (s *Student) Age() int {
	if s.Profile == nil || s.Profile.DateOfBirth == nil {
		return -1
	}
	dob := *s.Profile.DateOfBirth
	now := time.Now()
	age := now.Year() - dob.Year()
	if now.Month() < dob.Month() || (now.Month() == dob.Month() && now.Day() < dob.Day()) {
		age--
	}
	return age
}
