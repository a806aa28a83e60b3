package models

import "time"

// ProgressReport is the term-level rollup for a student. One row per
// (student, term).
type ProgressReport struct {
	ID              string     `json:"id"`
	StudentID       string     `json:"student_id"`
	TermID          string     `json:"term_id"`
	ClassTeacherID  string     `json:"class_teacher_id"`
	OverallAverage  *float64   `json:"overall_average,omitempty"`
	ClassPosition   *int       `json:"class_position,omitempty"`
	TotalStudents   *int       `json:"total_students,omitempty"`
	ConductGrade    string     `json:"conduct_grade,omitempty"`
	EffortGrade     string     `json:"effort_grade,omitempty"`
	TeacherComments string     `json:"teacher_comments,omitempty"`
	PrincipalComments string   `json:"principal_comments,omitempty"`
	ParentComments  string     `json:"parent_comments,omitempty"`
	NextTermBegins  *time.Time `json:"next_term_begins,omitempty"`
	GeneratedAt     time.Time  `json:"generated_at"`

	StudentName     string `json:"student_name,omitempty"`
	AdmissionNumber string `json:"admission_number,omitempty"`
	TermName        string `json:"term_name,omitempty"`
}
