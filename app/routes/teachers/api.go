package teachers

import (
	"time"

	"stmarys-portal/app/config"
	"stmarys-portal/app/database"
	"stmarys-portal/app/models"
	"stmarys-portal/app/validation"

	"github.com/gofiber/fiber/v2"
)

func GetTeachersAPI(c *fiber.Ctx) error {
	teachers, err := database.GetAllTeachers(config.GetDB())
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to fetch teachers"})
	}

	return c.JSON(fiber.Map{"teachers": teachers, "count": len(teachers)})
}

func GetTeacherAPI(c *fiber.Ctx) error {
	db := config.GetDB()

	teacher, err := database.GetTeacherByID(db, c.Params("id"))
	if err != nil {
		return c.Status(404).JSON(fiber.Map{"error": "Teacher not found"})
	}

	subjects, err := database.GetSubjectsByTeacher(db, teacher.ID)
	if err == nil {
		teacher.Subjects = subjects
	}

	return c.JSON(teacher)
}

func CreateTeacherAPI(c *fiber.Ctx) error {
	type CreateTeacherRequest struct {
		Email            string `json:"email"`
		Password         string `json:"password"`
		FirstName        string `json:"first_name"`
		LastName         string `json:"last_name"`
		EmployeeID       string `json:"employee_id"`
		EmploymentStatus string `json:"employment_status"`
		HireDate         string `json:"hire_date"`
		Qualifications   string `json:"qualifications"`
	}

	var req CreateTeacherRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid request"})
	}

	if err := validation.Var(req.Email, "required,email"); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "A valid email is required"})
	}
	if err := validation.Var(req.Password, "required,min=8"); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Password must be at least 8 characters"})
	}
	if req.FirstName == "" || req.LastName == "" || req.EmployeeID == "" {
		return c.Status(400).JSON(fiber.Map{"error": "Name and employee ID are required"})
	}

	hireDate := time.Now()
	if req.HireDate != "" {
		t, err := time.Parse("2006-01-02", req.HireDate)
		if err != nil {
			return c.Status(400).JSON(fiber.Map{"error": "Invalid hire date"})
		}
		hireDate = t
	}

	status := models.EmploymentStatus(req.EmploymentStatus)
	if status == "" {
		status = models.Permanent
	}

	user := &models.User{
		Email:     req.Email,
		Password:  req.Password,
		FirstName: req.FirstName,
		LastName:  req.LastName,
	}
	teacher := &models.Teacher{
		EmployeeID:       req.EmployeeID,
		EmploymentStatus: status,
		Qualifications:   req.Qualifications,
	}
	teacher.HireDate.Time = hireDate

	if err := database.CreateTeacher(config.GetDB(), user, teacher); err != nil {
		if err == database.ErrDuplicate {
			return c.Status(409).JSON(fiber.Map{"error": "Email or employee ID already in use"})
		}
		return c.Status(500).JSON(fiber.Map{"error": "Failed to create teacher"})
	}

	teacher.FirstName = user.FirstName
	teacher.LastName = user.LastName
	teacher.Email = user.Email
	return c.Status(201).JSON(teacher)
}

func UpdateTeacherAPI(c *fiber.Ctx) error {
	var teacher models.Teacher
	if err := c.BodyParser(&teacher); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid request"})
	}
	teacher.ID = c.Params("id")

	if err := database.UpdateTeacher(config.GetDB(), &teacher); err != nil {
		if err == database.ErrDuplicate {
			return c.Status(409).JSON(fiber.Map{"error": "Employee ID already in use"})
		}
		return c.Status(500).JSON(fiber.Map{"error": "Failed to update teacher"})
	}

	return c.JSON(teacher)
}

func DeactivateTeacherAPI(c *fiber.Ctx) error {
	if err := database.DeactivateTeacher(config.GetDB(), c.Params("id")); err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to deactivate teacher"})
	}

	return c.JSON(fiber.Map{"message": "Teacher deactivated"})
}

// SetTeacherSubjectsAPI replaces the teacher's subject specialties.
func SetTeacherSubjectsAPI(c *fiber.Ctx) error {
	type SubjectsRequest struct {
		SubjectIDs []string `json:"subject_ids"`
	}

	var req SubjectsRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid request"})
	}

	if err := database.SetTeacherSubjects(config.GetDB(), c.Params("id"), req.SubjectIDs); err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to update subjects"})
	}

	return c.JSON(fiber.Map{"message": "Subjects updated"})
}
