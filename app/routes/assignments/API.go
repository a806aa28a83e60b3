package assignments

import (
	"database/sql"
	"time"

	"stmarys-portal/app/config"
	"stmarys-portal/app/database"
	"stmarys-portal/app/models"
	"stmarys-portal/app/routes/auth"

	"github.com/gofiber/fiber/v2"
)

// canViewAssignment gates an assignment by role: the authoring teacher,
// students of the class, parents of those students, and admins.
func canViewAssignment(c *fiber.Ctx, a *models.Assignment) error {
	db := config.GetDB()

	switch auth.CurrentUserType(c) {
	case models.UserTypeAdmin:
		return nil
	case models.UserTypeTeacher:
		return auth.RequireAssignmentOwner(c, a)
	case models.UserTypeStudent:
		student, err := auth.RequireOwnStudent(c)
		if err != nil {
			return err
		}
		if student.CurrentClassID != nil && *student.CurrentClassID == a.ClassID &&
			a.Status != models.AssignmentDraft {
			return nil
		}
	case models.UserTypeParent:
		parent, err := auth.RequireOwnParent(c)
		if err != nil {
			return err
		}
		children, err := database.GetChildren(db, parent.ID)
		if err != nil {
			return err
		}
		for _, child := range children {
			if child.CurrentClassID != nil && *child.CurrentClassID == a.ClassID &&
				a.Status != models.AssignmentDraft {
				return nil
			}
		}
	}
	return fiber.NewError(fiber.StatusForbidden, "You don't have permission to access this resource")
}

func GetAssignmentsAPI(c *fiber.Ctx) error {
	db := config.GetDB()

	switch auth.CurrentUserType(c) {
	case models.UserTypeTeacher:
		teacher, err := auth.RequireOwnTeacher(c)
		if err != nil {
			return err
		}
		assignments, err := database.GetAssignmentsByTeacher(db, teacher.ID, 0)
		if err != nil {
			return c.Status(500).JSON(fiber.Map{"error": "Failed to fetch assignments"})
		}
		return c.JSON(fiber.Map{"assignments": assignments, "count": len(assignments)})

	case models.UserTypeStudent:
		student, err := auth.RequireOwnStudent(c)
		if err != nil {
			return err
		}
		if student.CurrentClassID == nil {
			return c.JSON(fiber.Map{"assignments": []*models.Assignment{}, "count": 0})
		}
		assignments, err := database.GetPublishedAssignmentsByClass(db, *student.CurrentClassID, 0)
		if err != nil {
			return c.Status(500).JSON(fiber.Map{"error": "Failed to fetch assignments"})
		}
		if err := database.AttachSubmissionState(db, assignments, student.ID); err != nil {
			return c.Status(500).JSON(fiber.Map{"error": "Failed to fetch submissions"})
		}
		return c.JSON(fiber.Map{"assignments": assignments, "count": len(assignments)})

	case models.UserTypeAdmin:
		classID := c.Query("class_id")
		if classID == "" {
			return c.Status(400).JSON(fiber.Map{"error": "class_id is required"})
		}
		assignments, err := database.GetPublishedAssignmentsByClass(db, classID, 0)
		if err != nil {
			return c.Status(500).JSON(fiber.Map{"error": "Failed to fetch assignments"})
		}
		return c.JSON(fiber.Map{"assignments": assignments, "count": len(assignments)})
	}

	return c.Status(403).JSON(fiber.Map{"error": "Insufficient permissions"})
}

func GetAssignmentAPI(c *fiber.Ctx) error {
	assignment, err := database.GetAssignmentByID(config.GetDB(), c.Params("id"))
	if err != nil {
		return c.Status(404).JSON(fiber.Map{"error": "Assignment not found"})
	}

	if err := canViewAssignment(c, assignment); err != nil {
		return err
	}

	return c.JSON(assignment)
}

func CreateAssignmentAPI(c *fiber.Ctx) error {
	type CreateAssignmentRequest struct {
		Title          string  `json:"title"`
		Description    string  `json:"description"`
		SubjectID      string  `json:"subject_id"`
		ClassID        string  `json:"class_id"`
		AssignmentType string  `json:"assignment_type"`
		DueDate        string  `json:"due_date"`
		MaxMarks       int     `json:"max_marks"`
		Instructions   string  `json:"instructions"`
		Status         string  `json:"status"`
	}

	var req CreateAssignmentRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid request"})
	}

	if req.Title == "" || req.SubjectID == "" || req.ClassID == "" {
		return c.Status(400).JSON(fiber.Map{"error": "Title, subject and class are required"})
	}
	if req.MaxMarks <= 0 {
		return c.Status(400).JSON(fiber.Map{"error": "Max marks must be positive"})
	}

	dueDate, err := time.Parse(time.RFC3339, req.DueDate)
	if err != nil {
		if d, derr := time.Parse("2006-01-02", req.DueDate); derr == nil {
			dueDate = d
		} else {
			return c.Status(400).JSON(fiber.Map{"error": "Invalid due date"})
		}
	}

	teacher, err := auth.RequireOwnTeacher(c)
	if err != nil {
		return err
	}
	if err := auth.RequireTeacherOfClass(c, req.ClassID); err != nil {
		return err
	}

	status := models.AssignmentStatus(req.Status)
	if status == "" {
		status = models.AssignmentDraft
	}
	if status != models.AssignmentDraft && status != models.AssignmentPublished {
		return c.Status(400).JSON(fiber.Map{"error": "New assignments must be draft or published"})
	}

	assignmentType := models.AssignmentType(req.AssignmentType)
	if assignmentType == "" {
		assignmentType = models.Homework
	}

	assignment := &models.Assignment{
		Title:          req.Title,
		Description:    req.Description,
		SubjectID:      req.SubjectID,
		ClassID:        req.ClassID,
		AssignmentType: assignmentType,
		DueDate:        dueDate,
		MaxMarks:       req.MaxMarks,
		Instructions:   req.Instructions,
		Status:         status,
		TeacherID:      teacher.ID,
	}

	if err := database.CreateAssignment(config.GetDB(), assignment); err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to create assignment"})
	}

	return c.Status(201).JSON(assignment)
}

func UpdateAssignmentAPI(c *fiber.Ctx) error {
	db := config.GetDB()

	assignment, err := database.GetAssignmentByID(db, c.Params("id"))
	if err != nil {
		return c.Status(404).JSON(fiber.Map{"error": "Assignment not found"})
	}
	if err := auth.RequireAssignmentOwner(c, assignment); err != nil {
		return err
	}

	var update models.Assignment
	if err := c.BodyParser(&update); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid request"})
	}
	update.ID = assignment.ID
	update.TeacherID = assignment.TeacherID
	if update.MaxMarks <= 0 {
		update.MaxMarks = assignment.MaxMarks
	}

	if err := database.UpdateAssignment(db, &update); err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to update assignment"})
	}

	return c.JSON(update)
}

// UpdateAssignmentStatusAPI moves an assignment along its lifecycle:
// draft -> published -> closed.
func UpdateAssignmentStatusAPI(c *fiber.Ctx) error {
	type StatusRequest struct {
		Status string `json:"status"`
	}

	var req StatusRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid request"})
	}

	status := models.AssignmentStatus(req.Status)
	if status != models.AssignmentDraft && status != models.AssignmentPublished && status != models.AssignmentClosed {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid status"})
	}

	db := config.GetDB()
	assignment, err := database.GetAssignmentByID(db, c.Params("id"))
	if err != nil {
		return c.Status(404).JSON(fiber.Map{"error": "Assignment not found"})
	}
	if err := auth.RequireAssignmentOwner(c, assignment); err != nil {
		return err
	}

	// Closed assignments stay closed
	if assignment.Status == models.AssignmentClosed && status != models.AssignmentClosed {
		return c.Status(400).JSON(fiber.Map{"error": "Closed assignments cannot be reopened"})
	}

	if err := database.UpdateAssignmentStatus(db, assignment.ID, status); err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to update status"})
	}

	assignment.Status = status
	return c.JSON(assignment)
}

func GetSubmissionsAPI(c *fiber.Ctx) error {
	db := config.GetDB()

	assignment, err := database.GetAssignmentByID(db, c.Params("id"))
	if err != nil {
		return c.Status(404).JSON(fiber.Map{"error": "Assignment not found"})
	}
	if err := auth.RequireAssignmentOwner(c, assignment); err != nil {
		return err
	}

	submissions, err := database.GetSubmissionsByAssignment(db, assignment.ID)
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to fetch submissions"})
	}

	return c.JSON(fiber.Map{"submissions": submissions, "count": len(submissions)})
}

// SubmitAssignmentAPI records the logged-in student's submission. Late
// submissions are accepted and flagged until the assignment closes.
func SubmitAssignmentAPI(c *fiber.Ctx) error {
	type SubmitRequest struct {
		SubmissionText string `json:"submission_text"`
		AttachmentPath string `json:"attachment_path"`
	}

	var req SubmitRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid request"})
	}

	db := config.GetDB()
	settings, err := database.EnsurePortalSettings(db)
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Database error"})
	}
	if !settings.AssignmentSubmissionEnabled {
		return c.Status(403).JSON(fiber.Map{"error": "Assignment submission is currently disabled"})
	}

	assignment, err := database.GetAssignmentByID(db, c.Params("id"))
	if err != nil {
		return c.Status(404).JSON(fiber.Map{"error": "Assignment not found"})
	}

	student, err := auth.RequireOwnStudent(c)
	if err != nil {
		return err
	}
	if student.CurrentClassID == nil || *student.CurrentClassID != assignment.ClassID {
		return fiber.NewError(fiber.StatusForbidden, "You don't have permission to access this resource")
	}

	if !assignment.AcceptsSubmissions() {
		return c.Status(400).JSON(fiber.Map{"error": "This assignment is not accepting submissions"})
	}

	sub := &models.AssignmentSubmission{
		AssignmentID:   assignment.ID,
		StudentID:      student.ID,
		SubmissionText: req.SubmissionText,
		AttachmentPath: req.AttachmentPath,
	}
	if err := database.SubmitAssignment(db, sub, assignment.DueDate); err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to submit assignment"})
	}

	return c.Status(201).JSON(sub)
}

// GradeSubmissionAPI records marks and feedback for a submission.
func GradeSubmissionAPI(c *fiber.Ctx) error {
	type GradeRequest struct {
		MarksObtained   *float64 `json:"marks_obtained"`
		TeacherFeedback string   `json:"teacher_feedback"`
	}

	var req GradeRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid request"})
	}
	if req.MarksObtained == nil || *req.MarksObtained < 0 {
		return c.Status(400).JSON(fiber.Map{"error": "Marks are required and must not be negative"})
	}

	db := config.GetDB()
	sub, err := database.GetSubmissionByID(db, c.Params("submissionId"))
	if err != nil {
		return c.Status(404).JSON(fiber.Map{"error": "Submission not found"})
	}

	assignment, err := database.GetAssignmentByID(db, sub.AssignmentID)
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Database error"})
	}
	if err := auth.RequireAssignmentOwner(c, assignment); err != nil {
		return err
	}

	if err := database.GradeSubmission(db, sub.ID, *req.MarksObtained, req.TeacherFeedback); err != nil {
		if err == sql.ErrNoRows {
			return c.Status(400).JSON(fiber.Map{"error": "Submission cannot be graded in its current state"})
		}
		return c.Status(500).JSON(fiber.Map{"error": "Failed to grade submission"})
	}

	sub, err = database.GetSubmissionByID(db, sub.ID)
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to reload submission"})
	}
	return c.JSON(sub)
}

// ReturnSubmissionAPI hands the graded work back to the student.
func ReturnSubmissionAPI(c *fiber.Ctx) error {
	db := config.GetDB()

	sub, err := database.GetSubmissionByID(db, c.Params("submissionId"))
	if err != nil {
		return c.Status(404).JSON(fiber.Map{"error": "Submission not found"})
	}

	assignment, err := database.GetAssignmentByID(db, sub.AssignmentID)
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Database error"})
	}
	if err := auth.RequireAssignmentOwner(c, assignment); err != nil {
		return err
	}

	if err := database.ReturnSubmission(db, sub.ID); err != nil {
		if err == sql.ErrNoRows {
			return c.Status(400).JSON(fiber.Map{"error": "Only graded submissions can be returned"})
		}
		return c.Status(500).JSON(fiber.Map{"error": "Failed to return submission"})
	}

	sub.Status = models.SubmissionReturned
	return c.JSON(sub)
}
