package classes

import (
	"stmarys-portal/app/config"
	"stmarys-portal/app/database"
	"stmarys-portal/app/models"
	"stmarys-portal/app/routes/auth"

	"github.com/gofiber/fiber/v2"
)

func SetupClassesRoutes(app *fiber.App) {
	classes := app.Group("/classes")
	classes.Use(auth.AuthMiddleware)
	classes.Use(auth.RequireUserType(models.UserTypeAdmin, models.UserTypeTeacher))

	// Routes
	classes.Get("/", ClassesPage)
	classes.Get("/:id", ClassDetailPage)

	api := app.Group("/api/classes")
	api.Use(auth.AuthMiddleware)
	api.Get("/", GetClassesAPI)
	api.Get("/:id", GetClassAPI)
	api.Get("/:id/subjects", GetClassSubjectsAPI)
	api.Get("/:id/students", GetClassStudentsAPI)

	admin := auth.RequireUserType(models.UserTypeAdmin)
	api.Post("/", admin, CreateClassAPI)
	api.Put("/:id", admin, UpdateClassAPI)
	api.Delete("/:id", admin, DeleteClassAPI)
	api.Post("/:id/subjects", admin, AssignSubjectAPI)
	api.Delete("/:id/subjects/:subjectId", admin, RemoveSubjectAPI)
}

func ClassesPage(c *fiber.Ctx) error {
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

	return c.Render("classes/index", fiber.Map{
		"Title":       "Classes - " + config.SiteName(),
		"CurrentPage": "classes",
		"classes":     classes,
		"user":        c.Locals("user"),
	})
}

// ClassDetailPage renders the individual class detail page
func ClassDetailPage(c *fiber.Ctx) error {
	classID := c.Params("id")
	db := config.GetDB()

	if err := auth.RequireTeacherOfClass(c, classID); err != nil {
		return err
	}

	class, err := database.GetClassByID(db, classID)
	if err != nil {
		return fiber.NewError(fiber.StatusNotFound, "Class not found")
	}

	students, err := database.GetStudentsByClass(db, classID)
	if err != nil {
		students = []*models.Student{}
	}

	subjects, err := database.GetClassSubjects(db, classID)
	if err != nil {
		subjects = []*models.ClassSubject{}
	}

	return c.Render("classes/detail", fiber.Map{
		"Title":       class.DisplayName + " - " + config.SiteName(),
		"CurrentPage": "classes",
		"class":       class,
		"students":    students,
		"subjects":    subjects,
		"user":        c.Locals("user"),
	})
}
