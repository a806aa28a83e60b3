package students

import (
	"time"

	"stmarys-portal/app/config"
	"stmarys-portal/app/database"
	"stmarys-portal/app/models"
	"stmarys-portal/app/routes/auth"
	"stmarys-portal/app/validation"

	"github.com/gofiber/fiber/v2"
)

func GetStudentsAPI(c *fiber.Ctx) error {
	db := config.GetDB()

	var students []*models.Student
	var err error
	if classID := c.Query("class_id"); classID != "" {
		if err := auth.RequireTeacherOfClass(c, classID); err != nil {
			return err
		}
		students, err = database.GetStudentsByClass(db, classID)
	} else {
		if auth.CurrentUserType(c) != models.UserTypeAdmin {
			return c.Status(403).JSON(fiber.Map{"error": "Insufficient permissions"})
		}
		students, err = database.GetAllStudents(db)
	}
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to fetch students"})
	}

	return c.JSON(fiber.Map{"students": students, "count": len(students)})
}

func GetStudentAPI(c *fiber.Ctx) error {
	studentID := c.Params("id")

	if err := auth.CanViewStudent(c, studentID); err != nil {
		return err
	}

	student, err := database.GetStudentByID(config.GetDB(), studentID)
	if err != nil {
		return c.Status(404).JSON(fiber.Map{"error": "Student not found"})
	}

	return c.JSON(student)
}

// GetStudentGradesAPI lists the student's grades for a term, with the
// computed term average and per-subject breakdown.
func GetStudentGradesAPI(c *fiber.Ctx) error {
	studentID := c.Params("id")

	if err := auth.CanViewStudent(c, studentID); err != nil {
		return err
	}

	db := config.GetDB()
	termID := c.Query("term_id")
	if termID == "" {
		term, err := database.GetCurrentTerm(db)
		if err != nil {
			return c.Status(400).JSON(fiber.Map{"error": "No current term set; pass term_id"})
		}
		termID = term.ID
	}

	grades, err := database.GetGradesByStudentAndTerm(db, studentID, termID, 0)
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to fetch grades"})
	}

	average, err := database.TermAverage(db, studentID, termID)
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to compute term average"})
	}

	subjects, err := database.SubjectAverages(db, studentID, termID)
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to compute subject averages"})
	}

	return c.JSON(fiber.Map{
		"grades":       grades,
		"term_average": average,
		"subjects":     subjects,
	})
}

// GetStudentAttendanceAPI lists attendance records and the summary for
// a date range (defaults to the last 30 days).
func GetStudentAttendanceAPI(c *fiber.Ctx) error {
	studentID := c.Params("id")

	if err := auth.CanViewStudent(c, studentID); err != nil {
		return err
	}

	to := time.Now()
	from := to.AddDate(0, 0, -30)
	if s := c.Query("from"); s != "" {
		t, err := time.Parse("2006-01-02", s)
		if err != nil {
			return c.Status(400).JSON(fiber.Map{"error": "Invalid from date"})
		}
		from = t
	}
	if s := c.Query("to"); s != "" {
		t, err := time.Parse("2006-01-02", s)
		if err != nil {
			return c.Status(400).JSON(fiber.Map{"error": "Invalid to date"})
		}
		to = t
	}

	db := config.GetDB()
	records, err := database.GetAttendanceByStudentAndRange(db, studentID, from, to)
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to fetch attendance"})
	}

	summary, err := database.GetAttendanceSummary(db, studentID, from, to)
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to compute attendance summary"})
	}

	return c.JSON(fiber.Map{"records": records, "summary": summary})
}

func CreateStudentAPI(c *fiber.Ctx) error {
	type CreateStudentRequest struct {
		Email           string  `json:"email"`
		Password        string  `json:"password"`
		FirstName       string  `json:"first_name"`
		LastName        string  `json:"last_name"`
		AdmissionNumber string  `json:"admission_number"`
		CurrentClassID  *string `json:"current_class_id"`
		Gender          string  `json:"gender"`
		AdmissionDate   string  `json:"admission_date"`
		PreviousSchool  string  `json:"previous_school"`
	}

	var req CreateStudentRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid request"})
	}

	if err := validation.Var(req.Email, "required,email"); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "A valid email is required"})
	}
	if err := validation.Var(req.Password, "required,min=8"); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Password must be at least 8 characters"})
	}
	if req.FirstName == "" || req.LastName == "" || req.AdmissionNumber == "" {
		return c.Status(400).JSON(fiber.Map{"error": "Name and admission number are required"})
	}
	if err := validation.Var(req.Gender, "required,oneof=male female"); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Gender must be male or female"})
	}

	admissionDate := time.Now()
	if req.AdmissionDate != "" {
		t, err := time.Parse("2006-01-02", req.AdmissionDate)
		if err != nil {
			return c.Status(400).JSON(fiber.Map{"error": "Invalid admission date"})
		}
		admissionDate = t
	}

	user := &models.User{
		Email:     req.Email,
		Password:  req.Password,
		FirstName: req.FirstName,
		LastName:  req.LastName,
	}
	student := &models.Student{
		AdmissionNumber: req.AdmissionNumber,
		CurrentClassID:  req.CurrentClassID,
		Gender:          models.Gender(req.Gender),
		PreviousSchool:  req.PreviousSchool,
	}
	student.AdmissionDate.Time = admissionDate

	if err := database.CreateStudent(config.GetDB(), user, student); err != nil {
		if err == database.ErrDuplicate {
			return c.Status(409).JSON(fiber.Map{"error": "Email or admission number already in use"})
		}
		return c.Status(500).JSON(fiber.Map{"error": "Failed to create student"})
	}

	student.FirstName = user.FirstName
	student.LastName = user.LastName
	student.Email = user.Email
	return c.Status(201).JSON(student)
}

func UpdateStudentAPI(c *fiber.Ctx) error {
	var student models.Student
	if err := c.BodyParser(&student); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid request"})
	}
	student.ID = c.Params("id")

	if err := database.UpdateStudent(config.GetDB(), &student); err != nil {
		if err == database.ErrDuplicate {
			return c.Status(409).JSON(fiber.Map{"error": "Admission number already in use"})
		}
		return c.Status(500).JSON(fiber.Map{"error": "Failed to update student"})
	}

	return c.JSON(student)
}

func DeactivateStudentAPI(c *fiber.Ctx) error {
	if err := database.DeactivateStudent(config.GetDB(), c.Params("id")); err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to deactivate student"})
	}

	return c.JSON(fiber.Map{"message": "Student deactivated"})
}
