package models

import "time"

// AdminDashboardStats aggregates totals for the admin dashboard.
type AdminDashboardStats struct {
	TotalStudents  int    `json:"total_students"`
	TotalTeachers  int    `json:"total_teachers"`
	TotalParents   int    `json:"total_parents"`
	TotalClasses   int    `json:"total_classes"`
	CurrentTerm    *Term  `json:"current_term,omitempty"`
	CurrentYear    string `json:"current_year,omitempty"`
	UnreadMessages int    `json:"unread_messages"`
}

// StudentDashboard bundles the role-scoped summary for a student.
type StudentDashboard struct {
	Student           *Student          `json:"student"`
	CurrentTerm       *Term             `json:"current_term,omitempty"`
	RecentAssignments []*Assignment     `json:"recent_assignments"`
	RecentGrades      []*Grade          `json:"recent_grades"`
	AttendanceSummary AttendanceSummary `json:"attendance_summary"`
	UnreadMessages    int               `json:"unread_messages"`
}

// TeacherDashboard bundles the role-scoped summary for a teacher.
type TeacherDashboard struct {
	Teacher            *Teacher      `json:"teacher"`
	Classes            []*Class      `json:"classes"`
	CurrentTerm        *Term         `json:"current_term,omitempty"`
	RecentAssignments  []*Assignment `json:"recent_assignments"`
	PendingSubmissions int           `json:"pending_submissions"`
	UnreadMessages     int           `json:"unread_messages"`
}

// ChildSummary is the per-child rollup on the parent dashboard.
type ChildSummary struct {
	Student            *Student          `json:"student"`
	RecentGrades       []*Grade          `json:"recent_grades"`
	AttendanceSummary  AttendanceSummary `json:"attendance_summary"`
	PendingAssignments int               `json:"pending_assignments"`
}

// ContactMessage is a public-site contact form submission.
type ContactMessage struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Phone     string    `json:"phone,omitempty"`
	Subject   string    `json:"subject"`
	Message   string    `json:"message"`
	IsRead    bool      `json:"is_read"`
	CreatedAt time.Time `json:"created_at"`
}

// SubjectAverage is one line of a student's per-subject term aggregate.
type SubjectAverage struct {
	SubjectID   string  `json:"subject_id"`
	SubjectName string  `json:"subject_name"`
	SubjectCode string  `json:"subject_code"`
	Average     float64 `json:"average"`
	Letter      string  `json:"letter"`
	EntryCount  int     `json:"entry_count"`
}
