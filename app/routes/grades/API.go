package grades

import (
	"stmarys-portal/app/config"
	"stmarys-portal/app/database"
	"stmarys-portal/app/models"
	"stmarys-portal/app/routes/auth"

	"github.com/gofiber/fiber/v2"
)

// CreateGradeAPI records a scored entry for a student. The teacher must
// teach the student's class.
func CreateGradeAPI(c *fiber.Ctx) error {
	type CreateGradeRequest struct {
		StudentID     string  `json:"student_id"`
		SubjectID     string  `json:"subject_id"`
		TermID        string  `json:"term_id"`
		GradeType     string  `json:"grade_type"`
		Title         string  `json:"title"`
		MarksObtained float64 `json:"marks_obtained"`
		MaxMarks      float64 `json:"max_marks"`
		Weight        float64 `json:"weight"`
		Comments      string  `json:"comments"`
	}

	var req CreateGradeRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid request"})
	}

	if req.StudentID == "" || req.SubjectID == "" || req.Title == "" {
		return c.Status(400).JSON(fiber.Map{"error": "Student, subject and title are required"})
	}
	if req.MaxMarks <= 0 {
		return c.Status(400).JSON(fiber.Map{"error": "Max marks must be positive"})
	}
	if req.MarksObtained < 0 {
		return c.Status(400).JSON(fiber.Map{"error": "Marks must not be negative"})
	}

	db := config.GetDB()
	if req.TermID == "" {
		term, err := database.GetCurrentTerm(db)
		if err != nil {
			return c.Status(400).JSON(fiber.Map{"error": "No current term set; pass term_id"})
		}
		req.TermID = term.ID
	}

	teacher, err := auth.RequireOwnTeacher(c)
	if err != nil {
		return err
	}
	if err := auth.CanViewStudent(c, req.StudentID); err != nil {
		return err
	}

	gradeType := models.GradeType(req.GradeType)
	if gradeType == "" {
		gradeType = models.GradeAssignment
	}
	weight := req.Weight
	if weight <= 0 {
		weight = 1
	}

	grade := &models.Grade{
		StudentID:     req.StudentID,
		SubjectID:     req.SubjectID,
		TermID:        req.TermID,
		TeacherID:     teacher.ID,
		GradeType:     gradeType,
		Title:         req.Title,
		MarksObtained: req.MarksObtained,
		MaxMarks:      req.MaxMarks,
		Weight:        weight,
		Comments:      req.Comments,
	}

	if err := database.CreateGrade(db, grade); err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to record grade"})
	}

	return c.Status(201).JSON(fiber.Map{
		"grade":      grade,
		"percentage": grade.PercentageScore(),
		"letter":     grade.LetterGrade(),
	})
}

func UpdateGradeAPI(c *fiber.Ctx) error {
	db := config.GetDB()

	grade, err := database.GetGradeByID(db, c.Params("id"))
	if err != nil {
		return c.Status(404).JSON(fiber.Map{"error": "Grade not found"})
	}

	if auth.CurrentUserType(c) != models.UserTypeAdmin {
		teacher, terr := auth.RequireOwnTeacher(c)
		if terr != nil {
			return terr
		}
		if grade.TeacherID != teacher.ID {
			return fiber.NewError(fiber.StatusForbidden, "You don't have permission to access this resource")
		}
	}

	var update models.Grade
	if err := c.BodyParser(&update); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid request"})
	}
	if update.MaxMarks <= 0 {
		return c.Status(400).JSON(fiber.Map{"error": "Max marks must be positive"})
	}
	update.ID = grade.ID
	update.StudentID = grade.StudentID
	update.SubjectID = grade.SubjectID
	update.TermID = grade.TermID
	update.TeacherID = grade.TeacherID

	if err := database.UpdateGrade(db, &update); err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to update grade"})
	}

	return c.JSON(fiber.Map{
		"grade":      update,
		"percentage": update.PercentageScore(),
		"letter":     update.LetterGrade(),
	})
}

func DeleteGradeAPI(c *fiber.Ctx) error {
	db := config.GetDB()

	grade, err := database.GetGradeByID(db, c.Params("id"))
	if err != nil {
		return c.Status(404).JSON(fiber.Map{"error": "Grade not found"})
	}

	if auth.CurrentUserType(c) != models.UserTypeAdmin {
		teacher, terr := auth.RequireOwnTeacher(c)
		if terr != nil {
			return terr
		}
		if grade.TeacherID != teacher.ID {
			return fiber.NewError(fiber.StatusForbidden, "You don't have permission to access this resource")
		}
	}

	if err := database.DeleteGrade(db, grade.ID); err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to delete grade"})
	}

	return c.JSON(fiber.Map{"message": "Grade deleted"})
}
