package models

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"time"
)

// GradingScale is stored as JSONB. Kept on the settings row for future
// configurability; letter bands currently come from fixed constants.
type GradingScale map[string]float64

func (gs GradingScale) Value() (driver.Value, error) {
	if gs == nil {
		return "{}", nil
	}
	return json.Marshal(gs)
}

func (gs *GradingScale) Scan(value interface{}) error {
	if value == nil {
		*gs = GradingScale{}
		return nil
	}
	b, ok := value.([]byte)
	if !ok {
		return fmt.Errorf("cannot scan %T into GradingScale", value)
	}
	return json.Unmarshal(b, gs)
}

// PortalSettings is the single global configuration row. Creating a
// second row fails.
type PortalSettings struct {
	ID                          string       `json:"id"`
	SchoolYearStartMonth        int          `json:"school_year_start_month"`
	GradingScale                GradingScale `json:"grading_scale"`
	AttendanceRequired          bool         `json:"attendance_required"`
	ParentAccessEnabled         bool         `json:"parent_access_enabled"`
	AssignmentSubmissionEnabled bool         `json:"assignment_submission_enabled"`
	CommunicationEnabled        bool         `json:"communication_enabled"`
	ReportGenerationEnabled     bool         `json:"report_generation_enabled"`
	CreatedAt                   time.Time    `json:"created_at"`
	UpdatedAt                   time.Time    `json:"updated_at"`
}
