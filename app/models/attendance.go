package models

import "time"

// Attendance is one record per student per calendar day.
type Attendance struct {
	ID        string           `json:"id" gorm:"primaryKey;type:uuid;default:gen_random_uuid()" validate:"required,uuid"`
	StudentID string           `json:"student_id" gorm:"not null;index;type:uuid" validate:"required,uuid"`
	Date      time.Time        `json:"date" gorm:"not null;index;type:date" validate:"required"`
	Status    AttendanceStatus `json:"status" gorm:"not null;type:varchar(10)" validate:"required,oneof=present absent late excused"`
	TimeIn    *string          `json:"time_in,omitempty"`
	TimeOut   *string          `json:"time_out,omitempty"`
	Notes     string           `json:"notes,omitempty"`
	MarkedBy  *string          `json:"marked_by,omitempty" gorm:"type:uuid"`
	CreatedAt time.Time        `json:"created_at" gorm:"autoCreateTime"`
	Student   *Student         `json:"student,omitempty" gorm:"foreignKey:StudentID;references:ID"`

	StudentName string `json:"student_name,omitempty" gorm:"-"`
}

// AttendanceSummary holds per-status counts over a date range.
// Unrecorded days are simply missing from the counts, never assumed
// absent.
type AttendanceSummary struct {
	TotalDays   int `json:"total_days"`
	PresentDays int `json:"present_days"`
	AbsentDays  int `json:"absent_days"`
	LateDays    int `json:"late_days"`
	ExcusedDays int `json:"excused_days"`
}

// Percentage returns present days over recorded days as a percentage,
// 0 when nothing was recorded in the range.
func (s AttendanceSummary) Percentage() float64 {
	if s.TotalDays == 0 {
		return 0
	}
	return roundTo2(float64(s.PresentDays) / float64(s.TotalDays) * 100)
}

// Summarize tallies a set of attendance records by status.
func Summarize(records []*Attendance) AttendanceSummary {
	var s AttendanceSummary
	for _, r := range records {
		s.TotalDays++
		switch r.Status {
		case Present:
			s.PresentDays++
		case Absent:
			s.AbsentDays++
		case Late:
			s.LateDays++
		case Excused:
			s.ExcusedDays++
		}
	}
	return s
}
