package models

import (
	"math"
	"time"
)

// Letter grade percentage bands. Fixed constants; the grading_scale
// map in portal settings is stored for future use but not consulted.
const (
	BandA = 90.0
	BandB = 80.0
	BandC = 70.0
	BandD = 60.0
)

// Grade is a discrete scored entry for a student in a subject and term.
type Grade struct {
	ID            string    `json:"id"`
	StudentID     string    `json:"student_id"`
	SubjectID     string    `json:"subject_id"`
	TermID        string    `json:"term_id"`
	TeacherID     string    `json:"teacher_id"`
	GradeType     GradeType `json:"grade_type"`
	Title         string    `json:"title"`
	MarksObtained float64   `json:"marks_obtained"`
	MaxMarks      float64   `json:"max_marks"`
	Weight        float64   `json:"weight"`
	Comments      string    `json:"comments,omitempty"`
	DateRecorded  time.Time `json:"date_recorded"`
	CreatedAt     time.Time `json:"created_at"`

	SubjectName string `json:"subject_name,omitempty"`
	SubjectCode string `json:"subject_code,omitempty"`
	TeacherName string `json:"teacher_name,omitempty"`
	StudentName string `json:"student_name,omitempty"`
}

// PercentageScore returns marks as a percentage of max, rounded to one
// decimal place. Marks above max are not clamped.
func (g *Grade) PercentageScore() float64 {
	if g.MaxMarks == 0 {
		return 0
	}
	return roundTo1(g.MarksObtained / g.MaxMarks * 100)
}

// LetterGrade converts the percentage score to a letter grade.
func (g *Grade) LetterGrade() string {
	return LetterForPercentage(g.PercentageScore())
}

// LetterForPercentage maps a percentage to the school's letter bands.
func LetterForPercentage(percentage float64) string {
	switch {
	case percentage >= BandA:
		return "A"
	case percentage >= BandB:
		return "B"
	case percentage >= BandC:
		return "C"
	case percentage >= BandD:
		return "D"
	default:
		return "E"
	}
}

func roundTo1(v float64) float64 {
	return math.Round(v*10) / 10
}

func roundTo2(v float64) float64 {
	return math.Round(v*100) / 100
}
