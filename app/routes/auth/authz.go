package auth

import (
	"database/sql"

	"stmarys-portal/app/config"
	"stmarys-portal/app/database"
	"stmarys-portal/app/models"

	"github.com/gofiber/fiber/v2"
)

// Access checks below resolve the caller's role record on demand and
// answer with 403, never 404, so probing cannot distinguish "exists but
// not yours" from "yours".

var errForbidden = fiber.NewError(fiber.StatusForbidden, "You don't have permission to access this resource")

// CanViewStudent reports whether the logged-in user may see the given
// student's records: admins always, teachers for students in classes
// they teach, students for themselves, parents for their own children.
func CanViewStudent(c *fiber.Ctx, studentID string) error {
	db := config.GetDB()
	userID := c.Locals("user_id").(string)

	switch CurrentUserType(c) {
	case models.UserTypeAdmin:
		return nil
	case models.UserTypeStudent:
		student, err := database.GetStudentByUserID(db, userID)
		if err != nil {
			return errForbidden
		}
		if student.ID == studentID {
			return nil
		}
	case models.UserTypeParent:
		parent, err := database.GetParentByUserID(db, userID)
		if err != nil {
			return errForbidden
		}
		ok, err := database.IsParentOfStudent(db, parent.ID, studentID)
		if err == nil && ok {
			return nil
		}
	case models.UserTypeTeacher:
		teacher, err := database.GetTeacherByUserID(db, userID)
		if err != nil {
			return errForbidden
		}
		var classID *string
		err = db.QueryRow(`SELECT current_class_id FROM students WHERE id = $1`, studentID).Scan(&classID)
		if err != nil || classID == nil {
			return errForbidden
		}
		ok, err := database.TeacherTeachesClass(db, teacher.ID, *classID)
		if err == nil && ok {
			return nil
		}
	}
	return errForbidden
}

// RequireOwnStudent resolves the student record for the logged-in
// student user.
func RequireOwnStudent(c *fiber.Ctx) (*models.Student, error) {
	userID := c.Locals("user_id").(string)
	student, err := database.GetStudentByUserID(config.GetDB(), userID)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, errForbidden
		}
		return nil, err
	}
	return student, nil
}

// RequireOwnTeacher resolves the teacher record for the logged-in
// teacher user.
func RequireOwnTeacher(c *fiber.Ctx) (*models.Teacher, error) {
	userID := c.Locals("user_id").(string)
	teacher, err := database.GetTeacherByUserID(config.GetDB(), userID)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, errForbidden
		}
		return nil, err
	}
	return teacher, nil
}

// RequireOwnParent resolves the parent record for the logged-in parent
// user.
func RequireOwnParent(c *fiber.Ctx) (*models.Parent, error) {
	userID := c.Locals("user_id").(string)
	parent, err := database.GetParentByUserID(config.GetDB(), userID)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, errForbidden
		}
		return nil, err
	}
	return parent, nil
}

// RequireTeacherOfClass allows admins through and checks teachers
// against class assignments.
func RequireTeacherOfClass(c *fiber.Ctx, classID string) error {
	if CurrentUserType(c) == models.UserTypeAdmin {
		return nil
	}
	teacher, err := RequireOwnTeacher(c)
	if err != nil {
		return err
	}
	ok, err := database.TeacherTeachesClass(config.GetDB(), teacher.ID, classID)
	if err != nil {
		return err
	}
	if !ok {
		return errForbidden
	}
	return nil
}

// RequireAssignmentOwner allows admins through and checks teachers
// against assignment authorship.
func RequireAssignmentOwner(c *fiber.Ctx, assignment *models.Assignment) error {
	if CurrentUserType(c) == models.UserTypeAdmin {
		return nil
	}
	teacher, err := RequireOwnTeacher(c)
	if err != nil {
		return err
	}
	if assignment.TeacherID != teacher.ID {
		return errForbidden
	}
	return nil
}
