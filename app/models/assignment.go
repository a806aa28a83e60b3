package models

import "time"

// Assignment is a task a teacher issues to a class.
type Assignment struct {
	ID             string           `json:"id"`
	Title          string           `json:"title"`
	Description    string           `json:"description"`
	SubjectID      string           `json:"subject_id"`
	ClassID        string           `json:"class_id"`
	TeacherID      string           `json:"teacher_id"`
	AssignmentType AssignmentType   `json:"assignment_type"`
	DueDate        time.Time        `json:"due_date"`
	MaxMarks       int              `json:"max_marks"`
	Instructions   string           `json:"instructions,omitempty"`
	AttachmentPath string           `json:"attachment_path,omitempty"`
	Status         AssignmentStatus `json:"status"`
	CreatedAt      time.Time        `json:"created_at"`
	UpdatedAt      time.Time        `json:"updated_at"`

	SubjectName     string `json:"subject_name,omitempty"`
	SubjectCode     string `json:"subject_code,omitempty"`
	ClassName       string `json:"class_name,omitempty"`
	TeacherName     string `json:"teacher_name,omitempty"`
	SubmissionCount int    `json:"submission_count,omitempty"`

	// Per-student view state, filled when listing for a student
	SubmissionStatus SubmissionStatus      `json:"submission_status,omitempty"`
	Submission       *AssignmentSubmission `json:"submission,omitempty"`
}

// IsOverdue reports whether the due date has passed while the
// assignment is still open.
func (a *Assignment) IsOverdue() bool {
	return time.Now().After(a.DueDate) && a.Status != AssignmentClosed
}

// AcceptsSubmissions reports whether a student may submit right now.
// Late submissions are accepted until the assignment is closed; they
// are flagged rather than rejected.
func (a *Assignment) AcceptsSubmissions() bool {
	return a.Status == AssignmentPublished
}

// AssignmentSubmission is a student's response. At most one row exists
// per (assignment, student); resubmission overwrites it.
type AssignmentSubmission struct {
	ID             string           `json:"id"`
	AssignmentID   string           `json:"assignment_id"`
	StudentID      string           `json:"student_id"`
	SubmissionText string           `json:"submission_text,omitempty"`
	AttachmentPath string           `json:"attachment_path,omitempty"`
	SubmittedAt    *time.Time       `json:"submitted_at,omitempty"`
	MarksObtained  *float64         `json:"marks_obtained,omitempty"`
	TeacherFeedback string          `json:"teacher_feedback,omitempty"`
	Status         SubmissionStatus `json:"status"`
	IsLate         bool             `json:"is_late"`
	CreatedAt      time.Time        `json:"created_at"`
	UpdatedAt      time.Time        `json:"updated_at"`

	StudentName     string `json:"student_name,omitempty"`
	AdmissionNumber string `json:"admission_number,omitempty"`
	AssignmentTitle string `json:"assignment_title,omitempty"`
	MaxMarks        int    `json:"max_marks,omitempty"`
}

// PercentageScore returns the graded percentage rounded to one decimal,
// or -1 when the submission has not been marked.
func (s *AssignmentSubmission) PercentageScore() float64 {
	if s.MarksObtained == nil || s.MaxMarks == 0 {
		return -1
	}
	return roundTo1(*s.MarksObtained / float64(s.MaxMarks) * 100)
}
