package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSummarize(t *testing.T) {
	records := []*Attendance{
		{Status: Present},
		{Status: Present},
		{Status: Absent},
		{Status: Late},
		{Status: Excused},
	}

	s := Summarize(records)
	assert.Equal(t, 5, s.TotalDays)
	assert.Equal(t, 2, s.PresentDays)
	assert.Equal(t, 1, s.AbsentDays)
	assert.Equal(t, 1, s.LateDays)
	assert.Equal(t, 1, s.ExcusedDays)
	assert.Equal(t, 40.0, s.Percentage())
}

func TestSummarizeEmpty(t *testing.T) {
	s := Summarize(nil)
	assert.Equal(t, 0, s.TotalDays)
	assert.Equal(t, 0.0, s.Percentage())
}

func TestAttendancePercentageRounding(t *testing.T) {
	s := AttendanceSummary{TotalDays: 3, PresentDays: 2}
	assert.Equal(t, 66.67, s.Percentage())
}
