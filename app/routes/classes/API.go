package classes

import (
	"stmarys-portal/app/config"
	"stmarys-portal/app/database"
	"stmarys-portal/app/models"
	"stmarys-portal/app/routes/auth"
	"stmarys-portal/app/validation"

	"github.com/gofiber/fiber/v2"
)

func GetClassesAPI(c *fiber.Ctx) error {
	classes, err := database.GetAllClasses(config.GetDB())
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to fetch classes"})
	}

	return c.JSON(fiber.Map{
		"classes": classes,
		"count":   len(classes),
	})
}

func GetClassAPI(c *fiber.Ctx) error {
	class, err := database.GetClassByID(config.GetDB(), c.Params("id"))
	if err != nil {
		return c.Status(404).JSON(fiber.Map{"error": "Class not found"})
	}

	return c.JSON(class)
}

func GetClassSubjectsAPI(c *fiber.Ctx) error {
	subjects, err := database.GetClassSubjects(config.GetDB(), c.Params("id"))
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to fetch class subjects"})
	}

	return c.JSON(fiber.Map{"subjects": subjects, "count": len(subjects)})
}

func GetClassStudentsAPI(c *fiber.Ctx) error {
	classID := c.Params("id")

	if err := auth.RequireTeacherOfClass(c, classID); err != nil {
		return err
	}

	students, err := database.GetStudentsByClass(config.GetDB(), classID)
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to fetch students"})
	}

	return c.JSON(fiber.Map{"students": students, "count": len(students)})
}

func CreateClassAPI(c *fiber.Ctx) error {
	var class models.Class
	if err := c.BodyParser(&class); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid request"})
	}

	if class.Name == "" || class.DisplayName == "" {
		return c.Status(400).JSON(fiber.Map{"error": "Name and display name are required"})
	}
	if class.Capacity <= 0 {
		class.Capacity = 40
	}
	if err := validation.Var(class.Level, "required,min=1,max=14"); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Level must be between 1 and 14"})
	}
	if err := validation.Var(class.AcademicYearID, "required,uuid"); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "A valid academic year is required"})
	}

	if err := database.CreateClass(config.GetDB(), &class); err != nil {
		if err == database.ErrDuplicate {
			return c.Status(409).JSON(fiber.Map{"error": "Class already exists for this academic year"})
		}
		return c.Status(500).JSON(fiber.Map{"error": "Failed to create class"})
	}

	return c.Status(201).JSON(class)
}

func UpdateClassAPI(c *fiber.Ctx) error {
	var class models.Class
	if err := c.BodyParser(&class); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid request"})
	}
	class.ID = c.Params("id")

	if err := database.UpdateClass(config.GetDB(), &class); err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to update class"})
	}

	return c.JSON(class)
}

func DeleteClassAPI(c *fiber.Ctx) error {
	if err := database.DeleteClass(config.GetDB(), c.Params("id")); err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to delete class"})
	}

	return c.JSON(fiber.Map{"message": "Class deleted successfully"})
}

func AssignSubjectAPI(c *fiber.Ctx) error {
	var cs models.ClassSubject
	if err := c.BodyParser(&cs); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid request"})
	}
	cs.ClassID = c.Params("id")

	if cs.SubjectID == "" {
		return c.Status(400).JSON(fiber.Map{"error": "Subject is required"})
	}
	if cs.LessonsPerWeek <= 0 {
		cs.LessonsPerWeek = 1
	}

	if err := database.AssignSubjectToClass(config.GetDB(), &cs); err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to assign subject"})
	}

	return c.Status(201).JSON(cs)
}

func RemoveSubjectAPI(c *fiber.Ctx) error {
	if err := database.RemoveSubjectFromClass(config.GetDB(), c.Params("id"), c.Params("subjectId")); err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to remove subject"})
	}

	return c.JSON(fiber.Map{"message": "Subject removed from class"})
}
