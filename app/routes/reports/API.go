package reports

import (
	"database/sql"
	"time"

	"stmarys-portal/app/config"
	"stmarys-portal/app/database"
	"stmarys-portal/app/models"
	"stmarys-portal/app/routes/auth"

	"github.com/gofiber/fiber/v2"
)

func GetStudentReportsAPI(c *fiber.Ctx) error {
	studentID := c.Params("studentId")
	if err := auth.CanViewStudent(c, studentID); err != nil {
		return err
	}

	reports, err := database.GetReportsByStudent(config.GetDB(), studentID)
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to fetch reports"})
	}
	return c.JSON(reports)
}

func GetReportAPI(c *fiber.Ctx) error {
	studentID := c.Params("studentId")
	if err := auth.CanViewStudent(c, studentID); err != nil {
		return err
	}

	report, err := database.GetProgressReport(config.GetDB(), studentID, c.Params("termId"))
	if err != nil {
		if err == sql.ErrNoRows {
			return c.Status(404).JSON(fiber.Map{"error": "Report not found"})
		}
		return c.Status(500).JSON(fiber.Map{"error": "Failed to fetch report"})
	}
	return c.JSON(report)
}

// GenerateClassReportsAPI computes term averages and class positions for
// every student in the class and writes one report per student. Running
// it again for the same term refreshes the figures.
func GenerateClassReportsAPI(c *fiber.Ctx) error {
	classID := c.Params("classId")
	if err := auth.RequireTeacherOfClass(c, classID); err != nil {
		return err
	}

	db := config.GetDB()
	settings, err := database.EnsurePortalSettings(db)
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to load portal settings"})
	}
	if !settings.ReportGenerationEnabled {
		return c.Status(403).JSON(fiber.Map{"error": "Report generation is currently disabled"})
	}

	type GenerateRequest struct {
		TermID         string  `json:"term_id"`
		NextTermBegins *string `json:"next_term_begins"`
	}
	var req GenerateRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid request"})
	}

	termID := req.TermID
	if termID == "" {
		term, err := database.GetCurrentTerm(db)
		if err != nil {
			return c.Status(400).JSON(fiber.Map{"error": "No current term set"})
		}
		termID = term.ID
	}

	class, err := database.GetClassByID(db, classID)
	if err != nil {
		return c.Status(404).JSON(fiber.Map{"error": "Class not found"})
	}

	classTeacherID := ""
	if class.ClassTeacherID != nil {
		classTeacherID = *class.ClassTeacherID
	}
	if auth.CurrentUserType(c) == models.UserTypeTeacher {
		teacher, err := auth.RequireOwnTeacher(c)
		if err != nil {
			return err
		}
		classTeacherID = teacher.ID
	}
	if classTeacherID == "" {
		return c.Status(400).JSON(fiber.Map{"error": "Class has no class teacher assigned"})
	}

	generated, err := database.GenerateClassReports(db, classID, termID, classTeacherID)
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to generate reports"})
	}

	if req.NextTermBegins != nil {
		if begins, perr := time.Parse("2006-01-02", *req.NextTermBegins); perr == nil {
			for _, r := range generated {
				r.NextTermBegins = &begins
				if err := database.UpsertProgressReport(db, r); err != nil {
					return c.Status(500).JSON(fiber.Map{"error": "Failed to save reports"})
				}
			}
		}
	}

	return c.Status(201).JSON(fiber.Map{
		"message": "Reports generated",
		"count":   len(generated),
		"reports": generated,
	})
}

// UpdateReportCommentsAPI sets the narrative parts of an existing report.
// The computed figures are left untouched.
func UpdateReportCommentsAPI(c *fiber.Ctx) error {
	studentID := c.Params("studentId")
	if err := auth.CanViewStudent(c, studentID); err != nil {
		return err
	}

	db := config.GetDB()
	report, err := database.GetProgressReport(db, studentID, c.Params("termId"))
	if err != nil {
		if err == sql.ErrNoRows {
			return c.Status(404).JSON(fiber.Map{"error": "Report not found"})
		}
		return c.Status(500).JSON(fiber.Map{"error": "Failed to fetch report"})
	}

	type CommentsRequest struct {
		ConductGrade      *string `json:"conduct_grade"`
		EffortGrade       *string `json:"effort_grade"`
		TeacherComments   *string `json:"teacher_comments"`
		PrincipalComments *string `json:"principal_comments"`
		ParentComments    *string `json:"parent_comments"`
	}
	var req CommentsRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid request"})
	}

	if req.ConductGrade != nil {
		report.ConductGrade = *req.ConductGrade
	}
	if req.EffortGrade != nil {
		report.EffortGrade = *req.EffortGrade
	}
	if req.TeacherComments != nil {
		report.TeacherComments = *req.TeacherComments
	}
	if req.PrincipalComments != nil {
		report.PrincipalComments = *req.PrincipalComments
	}
	if req.ParentComments != nil {
		report.ParentComments = *req.ParentComments
	}

	if err := database.UpdateReportComments(db, report); err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to update report"})
	}
	return c.JSON(report)
}
