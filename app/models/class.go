package models

import "time"

type Class struct {
	ID             string        `json:"id" gorm:"primaryKey;type:uuid;default:gen_random_uuid()" validate:"required,uuid"`
	Name           string        `json:"name" gorm:"not null" validate:"required"`
	DisplayName    string        `json:"display_name" gorm:"not null" validate:"required"`
	Level          int           `json:"level" gorm:"not null" validate:"required,min=1,max=14"`
	Capacity       int           `json:"capacity" gorm:"default:40"`
	AcademicYearID string        `json:"academic_year_id" gorm:"not null;index;type:uuid" validate:"required,uuid"`
	ClassTeacherID *string       `json:"class_teacher_id,omitempty" gorm:"index;type:uuid" validate:"omitempty,uuid"`
	StudentCount   int           `json:"student_count" gorm:"-"`
	CreatedAt      time.Time     `json:"created_at" gorm:"autoCreateTime"`
	UpdatedAt      time.Time     `json:"updated_at" gorm:"autoUpdateTime"`
	AcademicYear   *AcademicYear `json:"academic_year,omitempty" gorm:"foreignKey:AcademicYearID;references:ID"`
	ClassTeacher   *Teacher      `json:"class_teacher,omitempty" gorm:"foreignKey:ClassTeacherID;references:ID"`
	Subjects       []*Subject    `json:"subjects,omitempty" gorm:"many2many:class_subjects;"`
	Students       []*Student    `json:"students,omitempty" gorm:"foreignKey:CurrentClassID;references:ID"`
}

// ClassSubject links a subject to a class with the assigned teacher
// and weekly lesson count. One row per (class, subject) pair.
type ClassSubject struct {
	ID             string    `json:"id" gorm:"primaryKey;type:uuid;default:gen_random_uuid()" validate:"required,uuid"`
	ClassID        string    `json:"class_id" gorm:"not null;index;type:uuid" validate:"required,uuid"`
	SubjectID      string    `json:"subject_id" gorm:"not null;index;type:uuid" validate:"required,uuid"`
	TeacherID      *string   `json:"teacher_id,omitempty" gorm:"index;type:uuid"`
	LessonsPerWeek int       `json:"lessons_per_week" gorm:"default:1"`
	CreatedAt      time.Time `json:"created_at" gorm:"autoCreateTime"`
	Class          *Class    `json:"class,omitempty" gorm:"foreignKey:ClassID;references:ID"`
	Subject        *Subject  `json:"subject,omitempty" gorm:"foreignKey:SubjectID;references:ID"`
	Teacher        *Teacher  `json:"teacher,omitempty" gorm:"foreignKey:TeacherID;references:ID"`
}
