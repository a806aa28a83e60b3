package models

import "time"

// Teacher is the role record linked one-to-one to a user profile.
type Teacher struct {
	ID               string           `json:"id" gorm:"primaryKey;type:uuid;default:gen_random_uuid()" validate:"required,uuid"`
	ProfileID        string           `json:"profile_id" gorm:"uniqueIndex;not null;type:uuid" validate:"required,uuid"`
	EmployeeID       string           `json:"employee_id" gorm:"uniqueIndex;not null" validate:"required"`
	EmploymentStatus EmploymentStatus `json:"employment_status" gorm:"type:varchar(20);default:permanent"`
	HireDate         CustomDate       `json:"hire_date" gorm:"not null;type:date"`
	Qualifications   string           `json:"qualifications,omitempty"`
	IsActive         bool             `json:"is_active" gorm:"default:true"`
	CreatedAt        time.Time        `json:"created_at" gorm:"autoCreateTime"`
	Profile          *UserProfile     `json:"profile,omitempty" gorm:"foreignKey:ProfileID;references:ID"`
	Subjects         []*Subject       `json:"subjects,omitempty" gorm:"many2many:teacher_subjects;"`

	// Display fields populated by joins
	FirstName string `json:"first_name,omitempty" gorm:"-"`
	LastName  string `json:"last_name,omitempty" gorm:"-"`
	Email     string `json:"email,omitempty" gorm:"-"`
}

// FullName joins the display names loaded from the user join.
func (t *Teacher) FullName() string {
	return t.FirstName + " " + t.LastName
}
