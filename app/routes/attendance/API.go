package attendance

import (
	"time"

	"stmarys-portal/app/config"
	"stmarys-portal/app/database"
	"stmarys-portal/app/models"
	"stmarys-portal/app/routes/auth"
	"stmarys-portal/app/validation"

	"github.com/gofiber/fiber/v2"
)

// GetClassAttendanceAPI lists a class's attendance for one day,
// including students with no record yet.
func GetClassAttendanceAPI(c *fiber.Ctx) error {
	classID := c.Params("classId")

	if err := auth.RequireTeacherOfClass(c, classID); err != nil {
		return err
	}

	date := time.Now()
	if s := c.Query("date"); s != "" {
		t, err := time.Parse("2006-01-02", s)
		if err != nil {
			return c.Status(400).JSON(fiber.Map{"error": "Invalid date"})
		}
		date = t
	}

	db := config.GetDB()
	records, err := database.GetAttendanceByClassAndDate(db, classID, date)
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to fetch attendance"})
	}

	students, err := database.GetStudentsByClass(db, classID)
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to fetch students"})
	}

	marked := make(map[string]bool, len(records))
	for _, r := range records {
		marked[r.StudentID] = true
	}
	unmarked := make([]*models.Student, 0)
	for _, s := range students {
		if !marked[s.ID] {
			unmarked = append(unmarked, s)
		}
	}

	return c.JSON(fiber.Map{
		"date":     date.Format("2006-01-02"),
		"records":  records,
		"unmarked": unmarked,
	})
}

// markerTeacherID resolves the caller's teachers row for marked_by.
// Admins have no teachers row, so their marks carry no marker.
func markerTeacherID(c *fiber.Ctx) (*string, error) {
	if auth.CurrentUserType(c) != models.UserTypeTeacher {
		return nil, nil
	}
	teacher, err := auth.RequireOwnTeacher(c)
	if err != nil {
		return nil, err
	}
	return &teacher.ID, nil
}

// MarkAttendanceAPI records one student's attendance for a day.
// Marking the same (student, date) again overwrites the earlier record.
func MarkAttendanceAPI(c *fiber.Ctx) error {
	type MarkRequest struct {
		StudentID string  `json:"student_id"`
		Date      string  `json:"date"`
		Status    string  `json:"status"`
		TimeIn    *string `json:"time_in"`
		TimeOut   *string `json:"time_out"`
		Notes     string  `json:"notes"`
	}

	var req MarkRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid request"})
	}

	if req.StudentID == "" {
		return c.Status(400).JSON(fiber.Map{"error": "Student is required"})
	}
	if err := validation.Var(req.Status, "required,oneof=present absent late excused"); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Status must be present, absent, late or excused"})
	}

	date := time.Now()
	if req.Date != "" {
		t, err := time.Parse("2006-01-02", req.Date)
		if err != nil {
			return c.Status(400).JSON(fiber.Map{"error": "Invalid date"})
		}
		date = t
	}
	// Attendance is recorded for today or the past, never ahead
	if date.After(time.Now()) {
		return c.Status(400).JSON(fiber.Map{"error": "Cannot mark attendance for a future date"})
	}

	if err := auth.CanViewStudent(c, req.StudentID); err != nil {
		return err
	}

	markedBy, err := markerTeacherID(c)
	if err != nil {
		return err
	}
	record := &models.Attendance{
		StudentID: req.StudentID,
		Date:      date,
		Status:    models.AttendanceStatus(req.Status),
		TimeIn:    req.TimeIn,
		TimeOut:   req.TimeOut,
		Notes:     req.Notes,
		MarkedBy:  markedBy,
	}

	if err := database.CreateOrUpdateAttendance(config.GetDB(), record); err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to record attendance"})
	}

	return c.Status(201).JSON(record)
}

// MarkClassAttendanceAPI records a full class register in one request.
func MarkClassAttendanceAPI(c *fiber.Ctx) error {
	type Entry struct {
		StudentID string  `json:"student_id"`
		Status    string  `json:"status"`
		TimeIn    *string `json:"time_in"`
		Notes     string  `json:"notes"`
	}
	type RegisterRequest struct {
		Date    string  `json:"date"`
		Entries []Entry `json:"entries"`
	}

	classID := c.Params("classId")
	if err := auth.RequireTeacherOfClass(c, classID); err != nil {
		return err
	}

	var req RegisterRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid request"})
	}
	if len(req.Entries) == 0 {
		return c.Status(400).JSON(fiber.Map{"error": "No entries provided"})
	}

	date := time.Now()
	if req.Date != "" {
		t, err := time.Parse("2006-01-02", req.Date)
		if err != nil {
			return c.Status(400).JSON(fiber.Map{"error": "Invalid date"})
		}
		date = t
	}
	if date.After(time.Now()) {
		return c.Status(400).JSON(fiber.Map{"error": "Cannot mark attendance for a future date"})
	}

	db := config.GetDB()
	markedBy, err := markerTeacherID(c)
	if err != nil {
		return err
	}

	// Only students of this class may appear in the register
	students, err := database.GetStudentsByClass(db, classID)
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to fetch students"})
	}
	inClass := make(map[string]bool, len(students))
	for _, s := range students {
		inClass[s.ID] = true
	}

	saved := 0
	for _, entry := range req.Entries {
		if !inClass[entry.StudentID] {
			return c.Status(400).JSON(fiber.Map{"error": "Student is not in this class"})
		}
		if err := validation.Var(entry.Status, "required,oneof=present absent late excused"); err != nil {
			return c.Status(400).JSON(fiber.Map{"error": "Status must be present, absent, late or excused"})
		}
		record := &models.Attendance{
			StudentID: entry.StudentID,
			Date:      date,
			Status:    models.AttendanceStatus(entry.Status),
			TimeIn:    entry.TimeIn,
			Notes:     entry.Notes,
			MarkedBy:  markedBy,
		}
		if err := database.CreateOrUpdateAttendance(db, record); err != nil {
			return c.Status(500).JSON(fiber.Map{"error": "Failed to record attendance"})
		}
		saved++
	}

	return c.Status(201).JSON(fiber.Map{
		"message": "Attendance recorded",
		"date":    date.Format("2006-01-02"),
		"count":   saved,
	})
}
