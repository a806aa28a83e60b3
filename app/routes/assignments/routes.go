package assignments

import (
	"stmarys-portal/app/config"
	"stmarys-portal/app/database"
	"stmarys-portal/app/models"
	"stmarys-portal/app/routes/auth"

	"github.com/gofiber/fiber/v2"
)

func SetupAssignmentsRoutes(app *fiber.App) {
	assignments := app.Group("/assignments")
	assignments.Use(auth.AuthMiddleware)
	assignments.Get("/", AssignmentsPage)
	assignments.Get("/:id", AssignmentDetailPage)

	api := app.Group("/api/assignments")
	api.Use(auth.AuthMiddleware)
	api.Get("/", GetAssignmentsAPI)
	api.Get("/:id", GetAssignmentAPI)

	teacher := auth.RequireUserType(models.UserTypeAdmin, models.UserTypeTeacher)
	api.Post("/", auth.RequireUserType(models.UserTypeTeacher), CreateAssignmentAPI)
	api.Put("/:id", teacher, UpdateAssignmentAPI)
	api.Put("/:id/status", teacher, UpdateAssignmentStatusAPI)
	api.Get("/:id/submissions", teacher, GetSubmissionsAPI)

	student := auth.RequireUserType(models.UserTypeStudent)
	api.Post("/:id/submit", student, SubmitAssignmentAPI)

	api.Put("/submissions/:submissionId/grade", teacher, GradeSubmissionAPI)
	api.Put("/submissions/:submissionId/return", teacher, ReturnSubmissionAPI)
}

func AssignmentsPage(c *fiber.Ctx) error {
	db := config.GetDB()

	var assignments []*models.Assignment
	switch auth.CurrentUserType(c) {
	case models.UserTypeTeacher:
		teacher, err := auth.RequireOwnTeacher(c)
		if err != nil {
			return err
		}
		assignments, err = database.GetAssignmentsByTeacher(db, teacher.ID, 0)
		if err != nil {
			assignments = []*models.Assignment{}
		}
	case models.UserTypeStudent:
		student, err := auth.RequireOwnStudent(c)
		if err != nil {
			return err
		}
		if student.CurrentClassID != nil {
			assignments, err = database.GetPublishedAssignmentsByClass(db, *student.CurrentClassID, 0)
			if err == nil {
				err = database.AttachSubmissionState(db, assignments, student.ID)
			}
			if err != nil {
				assignments = []*models.Assignment{}
			}
		}
	}
	if assignments == nil {
		assignments = []*models.Assignment{}
	}

	return c.Render("assignments/index", fiber.Map{
		"Title":       "Assignments - " + config.SiteName(),
		"CurrentPage": "assignments",
		"assignments": assignments,
		"user":        c.Locals("user"),
	})
}

func AssignmentDetailPage(c *fiber.Ctx) error {
	db := config.GetDB()

	assignment, err := database.GetAssignmentByID(db, c.Params("id"))
	if err != nil {
		return fiber.NewError(fiber.StatusNotFound, "Assignment not found")
	}

	if err := canViewAssignment(c, assignment); err != nil {
		return err
	}

	data := fiber.Map{
		"Title":       assignment.Title + " - " + config.SiteName(),
		"CurrentPage": "assignments",
		"assignment":  assignment,
		"user":        c.Locals("user"),
	}

	if auth.CurrentUserType(c) == models.UserTypeStudent {
		student, err := auth.RequireOwnStudent(c)
		if err != nil {
			return err
		}
		if err := database.AttachSubmissionState(db, []*models.Assignment{assignment}, student.ID); err == nil {
			data["submission"] = assignment.Submission
		}
	}

	return c.Render("assignments/detail", data)
}
