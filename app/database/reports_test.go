package database

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Regenerating a class's reports must not wipe narrative fields the
// class teacher has already entered.
func TestUpsertReportKeepsNarrativeFields(t *testing.T) {
	idx := strings.Index(upsertReportQuery, "DO UPDATE SET")
	require.Greater(t, idx, 0)
	updateSet := upsertReportQuery[idx:]

	for _, col := range []string{"conduct_grade", "effort_grade", "teacher_comments", "principal_comments", "parent_comments"} {
		assert.NotContains(t, updateSet, col)
	}
	for _, col := range []string{"overall_average", "class_position", "total_students", "next_term_begins"} {
		assert.Contains(t, updateSet, col+" = EXCLUDED."+col)
	}
}
