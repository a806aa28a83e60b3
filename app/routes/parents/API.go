package parents

import (
	"stmarys-portal/app/config"
	"stmarys-portal/app/database"
	"stmarys-portal/app/models"
	"stmarys-portal/app/routes/auth"
	"stmarys-portal/app/validation"

	"github.com/gofiber/fiber/v2"
)

func GetParentsAPI(c *fiber.Ctx) error {
	parents, err := database.GetAllParents(config.GetDB())
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to fetch parents"})
	}

	return c.JSON(fiber.Map{"parents": parents, "count": len(parents)})
}

// GetParentAPI returns a parent record. Admins can fetch any parent;
// a parent can fetch their own record only.
func GetParentAPI(c *fiber.Ctx) error {
	parentID := c.Params("id")

	if auth.CurrentUserType(c) != models.UserTypeAdmin {
		own, err := auth.RequireOwnParent(c)
		if err != nil {
			return err
		}
		if own.ID != parentID {
			return fiber.NewError(fiber.StatusForbidden, "You don't have permission to access this resource")
		}
	}

	parent, err := database.GetParentByID(config.GetDB(), parentID)
	if err != nil {
		return c.Status(404).JSON(fiber.Map{"error": "Parent not found"})
	}

	return c.JSON(parent)
}

func GetChildrenAPI(c *fiber.Ctx) error {
	parentID := c.Params("id")

	if auth.CurrentUserType(c) != models.UserTypeAdmin {
		own, err := auth.RequireOwnParent(c)
		if err != nil {
			return err
		}
		if own.ID != parentID {
			return fiber.NewError(fiber.StatusForbidden, "You don't have permission to access this resource")
		}
	}

	children, err := database.GetChildren(config.GetDB(), parentID)
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to fetch children"})
	}

	return c.JSON(fiber.Map{"children": children, "count": len(children)})
}

func CreateParentAPI(c *fiber.Ctx) error {
	type CreateParentRequest struct {
		Email            string `json:"email"`
		Password         string `json:"password"`
		FirstName        string `json:"first_name"`
		LastName         string `json:"last_name"`
		Relationship     string `json:"relationship"`
		Occupation       string `json:"occupation"`
		Workplace        string `json:"workplace"`
		WorkPhone        string `json:"work_phone"`
		IsPrimaryContact *bool  `json:"is_primary_contact"`
	}

	var req CreateParentRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid request"})
	}

	if err := validation.Var(req.Email, "required,email"); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "A valid email is required"})
	}
	if err := validation.Var(req.Password, "required,min=8"); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Password must be at least 8 characters"})
	}
	if req.FirstName == "" || req.LastName == "" {
		return c.Status(400).JSON(fiber.Map{"error": "Name is required"})
	}
	if err := validation.Var(req.Relationship, "required,oneof=father mother guardian grandfather grandmother uncle aunt other"); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid relationship"})
	}

	primary := true
	if req.IsPrimaryContact != nil {
		primary = *req.IsPrimaryContact
	}

	user := &models.User{
		Email:     req.Email,
		Password:  req.Password,
		FirstName: req.FirstName,
		LastName:  req.LastName,
	}
	parent := &models.Parent{
		Relationship:     models.RelationshipType(req.Relationship),
		Occupation:       req.Occupation,
		Workplace:        req.Workplace,
		WorkPhone:        req.WorkPhone,
		IsPrimaryContact: primary,
	}

	if err := database.CreateParent(config.GetDB(), user, parent); err != nil {
		if err == database.ErrDuplicate {
			return c.Status(409).JSON(fiber.Map{"error": "Email already in use"})
		}
		return c.Status(500).JSON(fiber.Map{"error": "Failed to create parent"})
	}

	parent.FirstName = user.FirstName
	parent.LastName = user.LastName
	parent.Email = user.Email
	return c.Status(201).JSON(parent)
}

// AddChildAPI links a student to a parent. Linking the same pair twice
// is a no-op.
func AddChildAPI(c *fiber.Ctx) error {
	type ChildRequest struct {
		StudentID string `json:"student_id"`
	}

	var req ChildRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid request"})
	}
	if req.StudentID == "" {
		return c.Status(400).JSON(fiber.Map{"error": "Student is required"})
	}

	if err := database.AddChild(config.GetDB(), c.Params("id"), req.StudentID); err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to link child"})
	}

	return c.Status(201).JSON(fiber.Map{"message": "Child linked"})
}

func RemoveChildAPI(c *fiber.Ctx) error {
	if err := database.RemoveChild(config.GetDB(), c.Params("id"), c.Params("studentId")); err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to unlink child"})
	}

	return c.JSON(fiber.Map{"message": "Child unlinked"})
}
