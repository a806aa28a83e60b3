package models

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestAssignmentIsOverdue(t *testing.T) {
	past := time.Now().Add(-24 * time.Hour)
	future := time.Now().Add(24 * time.Hour)

	a := &Assignment{DueDate: past, Status: AssignmentPublished}
	assert.True(t, a.IsOverdue())

	a = &Assignment{DueDate: future, Status: AssignmentPublished}
	assert.False(t, a.IsOverdue())

	// A closed assignment is done, not overdue
	a = &Assignment{DueDate: past, Status: AssignmentClosed}
	assert.False(t, a.IsOverdue())
}

func TestAssignmentAcceptsSubmissions(t *testing.T) {
	future := time.Now().Add(24 * time.Hour)

	assert.True(t, (&Assignment{DueDate: future, Status: AssignmentPublished}).AcceptsSubmissions())
	assert.False(t, (&Assignment{DueDate: future, Status: AssignmentDraft}).AcceptsSubmissions())
	assert.False(t, (&Assignment{DueDate: future, Status: AssignmentClosed}).AcceptsSubmissions())

	// Past due but still open: late submissions stay possible
	past := time.Now().Add(-24 * time.Hour)
	assert.True(t, (&Assignment{DueDate: past, Status: AssignmentPublished}).AcceptsSubmissions())
}

func TestSubmissionPercentageScore(t *testing.T) {
	marks := 15.0
	s := &AssignmentSubmission{MarksObtained: &marks, MaxMarks: 20}
	assert.Equal(t, 75.0, s.PercentageScore())

	s = &AssignmentSubmission{MaxMarks: 20}
	assert.Equal(t, -1.0, s.PercentageScore())

	s = &AssignmentSubmission{MarksObtained: &marks, MaxMarks: 0}
	assert.Equal(t, -1.0, s.PercentageScore())
}
