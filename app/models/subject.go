package models

import "time"

type Subject struct {
	ID          string    `json:"id" gorm:"primaryKey;type:uuid;default:gen_random_uuid()" validate:"required,uuid"`
	Name        string    `json:"name" gorm:"uniqueIndex;not null" validate:"required"`
	Code        string    `json:"code" gorm:"uniqueIndex;not null" validate:"required"`
	Description string    `json:"description,omitempty"`
	IsCore      bool      `json:"is_core" gorm:"default:true"`
	CreatedAt   time.Time `json:"created_at" gorm:"autoCreateTime"`
	UpdatedAt   time.Time `json:"updated_at" gorm:"autoUpdateTime"`
	Classes     []*Class  `json:"classes,omitempty" gorm:"many2many:class_subjects;"`
}
