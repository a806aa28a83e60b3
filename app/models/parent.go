package models

import "time"

// Parent is the role record linked one-to-one to a user profile.
// Children are linked through the parent_children join table.
type Parent struct {
	ID               string           `json:"id" gorm:"primaryKey;type:uuid;default:gen_random_uuid()" validate:"required,uuid"`
	ProfileID        string           `json:"profile_id" gorm:"uniqueIndex;not null;type:uuid" validate:"required,uuid"`
	Relationship     RelationshipType `json:"relationship" gorm:"type:varchar(20)" validate:"required"`
	Occupation       string           `json:"occupation,omitempty"`
	Workplace        string           `json:"workplace,omitempty"`
	WorkPhone        string           `json:"work_phone,omitempty"`
	IsPrimaryContact bool             `json:"is_primary_contact" gorm:"default:true"`
	CreatedAt        time.Time        `json:"created_at" gorm:"autoCreateTime"`
	Profile          *UserProfile     `json:"profile,omitempty" gorm:"foreignKey:ProfileID;references:ID"`
	Children         []*Student       `json:"children,omitempty" gorm:"many2many:parent_children;"`

	// Display fields populated by joins
	FirstName string `json:"first_name,omitempty" gorm:"-"`
	LastName  string `json:"last_name,omitempty" gorm:"-"`
	Email     string `json:"email,omitempty" gorm:"-"`
}

// FullName joins the display names loaded from the user join.
func (p *Parent) FullName() string {
	return p.FirstName + " " + p.LastName
}
