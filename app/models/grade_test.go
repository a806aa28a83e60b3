package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGradePercentageScore(t *testing.T) {
	g := &Grade{MarksObtained: 85, MaxMarks: 100}
	assert.Equal(t, 85.0, g.PercentageScore())
	assert.Equal(t, "B", g.LetterGrade())

	g = &Grade{MarksObtained: 17, MaxMarks: 20}
	assert.Equal(t, 85.0, g.PercentageScore())

	g = &Grade{MarksObtained: 1, MaxMarks: 3}
	assert.Equal(t, 33.3, g.PercentageScore())
}

func TestGradePercentageScoreZeroMax(t *testing.T) {
	g := &Grade{MarksObtained: 10, MaxMarks: 0}
	assert.Equal(t, 0.0, g.PercentageScore())
	assert.Equal(t, "E", g.LetterGrade())
}

func TestGradePercentageScoreAboveMax(t *testing.T) {
	// Bonus marks are not clamped
	g := &Grade{MarksObtained: 12, MaxMarks: 10}
	assert.Equal(t, 120.0, g.PercentageScore())
	assert.Equal(t, "A", g.LetterGrade())
}

func TestLetterForPercentage(t *testing.T) {
	cases := []struct {
		percentage float64
		want       string
	}{
		{100, "A"},
		{90, "A"},
		{89.9, "B"},
		{80, "B"},
		{79.9, "C"},
		{70, "C"},
		{69.9, "D"},
		{60, "D"},
		{59.9, "E"},
		{0, "E"},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, LetterForPercentage(tc.percentage), "percentage %v", tc.percentage)
	}
}
