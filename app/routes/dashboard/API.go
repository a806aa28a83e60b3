package dashboard

import (
	"database/sql"
	"time"

	"stmarys-portal/app/config"
	"stmarys-portal/app/database"
	"stmarys-portal/app/models"
	"stmarys-portal/app/routes/auth"

	"github.com/gofiber/fiber/v2"
)

// GetDashboard renders the landing page for the logged-in role.
func GetDashboard(c *fiber.Ctx) error {
	user := c.Locals("user").(*models.User)

	view := "dashboard/index"
	switch auth.CurrentUserType(c) {
	case models.UserTypeStudent:
		view = "dashboard/student"
	case models.UserTypeTeacher:
		view = "dashboard/teacher"
	case models.UserTypeParent:
		view = "dashboard/parent"
	}

	db := config.GetDB()
	upcomingEvents, err := database.GetUpcomingEvents(db, 2)
	if err != nil {
		upcomingEvents = nil
	}

	return c.Render(view, fiber.Map{
		"Title":       "Dashboard",
		"CurrentPage": "dashboard",
		"FirstName":   user.FirstName,
		"LastName":    user.LastName,
		"Email":       user.Email,
		"user":        user,
		"Events":      upcomingEvents,
	})
}

// GetDashboardStatsAPI returns the admin totals as JSON
func GetDashboardStatsAPI(c *fiber.Ctx) error {
	if auth.CurrentUserType(c) != models.UserTypeAdmin {
		return c.Status(403).JSON(fiber.Map{"error": "Insufficient permissions"})
	}

	db := config.GetDB()
	userID := c.Locals("user_id").(string)

	stats, err := database.GetAdminDashboardStats(db, userID)
	if err != nil {
		return c.Status(500).JSON(fiber.Map{
			"error":   "Failed to fetch dashboard statistics",
			"details": err.Error(),
		})
	}

	return c.JSON(fiber.Map{
		"success": true,
		"data":    stats,
	})
}

// termWindow returns the current term's date range, or the last 30 days
// when no term is marked current.
func termWindow(term *models.Term) (time.Time, time.Time) {
	if term != nil {
		return term.StartDate.Time, term.EndDate.Time
	}
	now := time.Now()
	return now.AddDate(0, 0, -30), now
}

func GetStudentDashboardAPI(c *fiber.Ctx) error {
	if auth.CurrentUserType(c) != models.UserTypeStudent {
		return c.Status(403).JSON(fiber.Map{"error": "Insufficient permissions"})
	}

	db := config.GetDB()
	student, err := auth.RequireOwnStudent(c)
	if err != nil {
		return err
	}

	term, err := database.GetCurrentTerm(db)
	if err != nil && err != sql.ErrNoRows {
		return c.Status(500).JSON(fiber.Map{"error": "Database error"})
	}

	data := &models.StudentDashboard{
		Student:           student,
		CurrentTerm:       term,
		RecentAssignments: []*models.Assignment{},
		RecentGrades:      []*models.Grade{},
	}

	if student.CurrentClassID != nil {
		assignments, err := database.GetPublishedAssignmentsByClass(db, *student.CurrentClassID, 5)
		if err != nil {
			return c.Status(500).JSON(fiber.Map{"error": "Failed to fetch assignments"})
		}
		if err := database.AttachSubmissionState(db, assignments, student.ID); err != nil {
			return c.Status(500).JSON(fiber.Map{"error": "Failed to fetch submissions"})
		}
		data.RecentAssignments = assignments
	}

	if term != nil {
		grades, err := database.GetGradesByStudentAndTerm(db, student.ID, term.ID, 5)
		if err != nil {
			return c.Status(500).JSON(fiber.Map{"error": "Failed to fetch grades"})
		}
		data.RecentGrades = grades
	}

	from, to := termWindow(term)
	summary, err := database.GetAttendanceSummary(db, student.ID, from, to)
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to fetch attendance"})
	}
	data.AttendanceSummary = summary

	userID := c.Locals("user_id").(string)
	if data.UnreadMessages, err = database.CountUnreadMessages(db, userID); err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to count messages"})
	}

	return c.JSON(fiber.Map{"success": true, "data": data})
}

func GetTeacherDashboardAPI(c *fiber.Ctx) error {
	if auth.CurrentUserType(c) != models.UserTypeTeacher {
		return c.Status(403).JSON(fiber.Map{"error": "Insufficient permissions"})
	}

	db := config.GetDB()
	teacher, err := auth.RequireOwnTeacher(c)
	if err != nil {
		return err
	}

	term, err := database.GetCurrentTerm(db)
	if err != nil && err != sql.ErrNoRows {
		return c.Status(500).JSON(fiber.Map{"error": "Database error"})
	}

	classes, err := database.GetClassesByTeacher(db, teacher.ID)
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to fetch classes"})
	}

	assignments, err := database.GetAssignmentsByTeacher(db, teacher.ID, 5)
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to fetch assignments"})
	}

	pending, err := database.CountPendingSubmissions(db, teacher.ID)
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to count submissions"})
	}

	userID := c.Locals("user_id").(string)
	unread, err := database.CountUnreadMessages(db, userID)
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to count messages"})
	}

	data := &models.TeacherDashboard{
		Teacher:            teacher,
		Classes:            classes,
		CurrentTerm:        term,
		RecentAssignments:  assignments,
		PendingSubmissions: pending,
		UnreadMessages:     unread,
	}
	return c.JSON(fiber.Map{"success": true, "data": data})
}

func GetParentDashboardAPI(c *fiber.Ctx) error {
	if auth.CurrentUserType(c) != models.UserTypeParent {
		return c.Status(403).JSON(fiber.Map{"error": "Insufficient permissions"})
	}

	db := config.GetDB()
	parent, err := auth.RequireOwnParent(c)
	if err != nil {
		return err
	}

	term, err := database.GetCurrentTerm(db)
	if err != nil && err != sql.ErrNoRows {
		return c.Status(500).JSON(fiber.Map{"error": "Database error"})
	}

	children, err := database.GetChildren(db, parent.ID)
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to fetch children"})
	}

	from, to := termWindow(term)
	summaries := make([]*models.ChildSummary, 0, len(children))
	for _, child := range children {
		summary := &models.ChildSummary{Student: child, RecentGrades: []*models.Grade{}}

		if term != nil {
			grades, err := database.GetGradesByStudentAndTerm(db, child.ID, term.ID, 5)
			if err != nil {
				return c.Status(500).JSON(fiber.Map{"error": "Failed to fetch grades"})
			}
			summary.RecentGrades = grades
		}

		attendance, err := database.GetAttendanceSummary(db, child.ID, from, to)
		if err != nil {
			return c.Status(500).JSON(fiber.Map{"error": "Failed to fetch attendance"})
		}
		summary.AttendanceSummary = attendance

		if child.CurrentClassID != nil {
			pending, err := database.CountPendingAssignments(db, child.ID, *child.CurrentClassID)
			if err != nil {
				return c.Status(500).JSON(fiber.Map{"error": "Failed to count assignments"})
			}
			summary.PendingAssignments = pending
		}
		summaries = append(summaries, summary)
	}

	return c.JSON(fiber.Map{
		"success": true,
		"data": fiber.Map{
			"parent":       parent,
			"current_term": term,
			"children":     summaries,
		},
	})
}
