package attendance

import (
	"time"

	"stmarys-portal/app/config"
	"stmarys-portal/app/database"
	"stmarys-portal/app/models"
	"stmarys-portal/app/routes/auth"

	"github.com/gofiber/fiber/v2"
)

func SetupAttendanceRoutes(app *fiber.App) {
	attendance := app.Group("/attendance")
	attendance.Use(auth.AuthMiddleware)
	attendance.Use(auth.RequireUserType(models.UserTypeAdmin, models.UserTypeTeacher))
	attendance.Get("/", AttendancePage)

	api := app.Group("/api/attendance")
	api.Use(auth.AuthMiddleware)

	teacher := auth.RequireUserType(models.UserTypeAdmin, models.UserTypeTeacher)
	api.Get("/class/:classId", teacher, GetClassAttendanceAPI)
	api.Post("/", teacher, MarkAttendanceAPI)
	api.Post("/class/:classId", teacher, MarkClassAttendanceAPI)
}

func AttendancePage(c *fiber.Ctx) error {
	db := config.GetDB()

	var classes []*models.Class
	var err error
	if auth.CurrentUserType(c) == models.UserTypeTeacher {
		teacher, terr := auth.RequireOwnTeacher(c)
		if terr != nil {
			return terr
		}
		classes, err = database.GetClassesByTeacher(db, teacher.ID)
	} else {
		classes, err = database.GetAllClasses(db)
	}
	if err != nil {
		classes = []*models.Class{}
	}

	return c.Render("attendance/index", fiber.Map{
		"Title":       "Attendance - " + config.SiteName(),
		"CurrentPage": "attendance",
		"classes":     classes,
		"Today":       time.Now().Format("2006-01-02"),
		"user":        c.Locals("user"),
	})
}
