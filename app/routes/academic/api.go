package academic

import (
	"database/sql"

	"stmarys-portal/app/database"
	"stmarys-portal/app/models"

	"github.com/gofiber/fiber/v2"
)

// GetAllAcademicYearsHandler returns all academic years
func GetAllAcademicYearsHandler(db *sql.DB) fiber.Handler {
	return func(c *fiber.Ctx) error {
		academicYears, err := database.GetAllAcademicYears(db)
		if err != nil {
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to retrieve academic years"})
		}

		return c.JSON(academicYears)
	}
}

// GetAcademicYearHandler returns a specific academic year by ID
func GetAcademicYearHandler(db *sql.DB) fiber.Handler {
	return func(c *fiber.Ctx) error {
		academicYearID := c.Params("id")

		academicYear, err := database.GetAcademicYearByID(db, academicYearID)
		if err != nil {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Academic year not found"})
		}

		return c.JSON(academicYear)
	}
}

// CreateAcademicYearHandler creates a new academic year
func CreateAcademicYearHandler(db *sql.DB) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var academicYear models.AcademicYear
		if err := c.BodyParser(&academicYear); err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error": "Invalid request body: " + err.Error(),
			})
		}

		// Validate dates
		if academicYear.EndDate.Time.Before(academicYear.StartDate.Time) {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "End date must be after start date"})
		}

		if err := database.CreateAcademicYear(db, &academicYear); err != nil {
			if err == database.ErrDuplicate {
				return c.Status(fiber.StatusConflict).JSON(fiber.Map{"error": "Academic year already exists"})
			}
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to create academic year: " + err.Error()})
		}

		return c.Status(fiber.StatusCreated).JSON(academicYear)
	}
}

// UpdateAcademicYearHandler updates an existing academic year
func UpdateAcademicYearHandler(db *sql.DB) fiber.Handler {
	return func(c *fiber.Ctx) error {
		academicYearID := c.Params("id")

		var academicYear models.AcademicYear
		if err := c.BodyParser(&academicYear); err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error": "Invalid request body: " + err.Error(),
			})
		}

		// Set the ID from the URL
		academicYear.ID = academicYearID

		// Validate dates
		if academicYear.EndDate.Time.Before(academicYear.StartDate.Time) {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "End date must be after start date"})
		}

		if err := database.UpdateAcademicYear(db, &academicYear); err != nil {
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to update academic year: " + err.Error()})
		}

		return c.JSON(academicYear)
	}
}

// DeleteAcademicYearHandler deletes an academic year
func DeleteAcademicYearHandler(db *sql.DB) fiber.Handler {
	return func(c *fiber.Ctx) error {
		academicYearID := c.Params("id")

		if err := database.DeleteAcademicYear(db, academicYearID); err != nil {
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to delete academic year"})
		}

		return c.SendStatus(fiber.StatusNoContent)
	}
}

// GetAllTermsHandler returns all terms
func GetAllTermsHandler(db *sql.DB) fiber.Handler {
	return func(c *fiber.Ctx) error {
		terms, err := database.GetAllTerms(db)
		if err != nil {
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to retrieve terms"})
		}

		return c.JSON(terms)
	}
}

// GetCurrentTermHandler returns the term marked as current
func GetCurrentTermHandler(db *sql.DB) fiber.Handler {
	return func(c *fiber.Ctx) error {
		term, err := database.GetCurrentTerm(db)
		if err != nil {
			if err == sql.ErrNoRows {
				return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "No current term set"})
			}
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to retrieve current term"})
		}

		return c.JSON(term)
	}
}

// GetTermHandler returns a specific term by ID
func GetTermHandler(db *sql.DB) fiber.Handler {
	return func(c *fiber.Ctx) error {
		termID := c.Params("id")

		term, err := database.GetTermByID(db, termID)
		if err != nil {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Term not found"})
		}

		return c.JSON(term)
	}
}

// CreateTermHandler creates a new term
func CreateTermHandler(db *sql.DB) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var term models.Term
		if err := c.BodyParser(&term); err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error": "Invalid request body: " + err.Error(),
			})
		}

		if term.TermNumber < 1 || term.TermNumber > 3 {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Term number must be between 1 and 3"})
		}

		// Validate dates
		if term.EndDate.Before(term.StartDate.Time) {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "End date must be after start date"})
		}

		// Check if the term dates are within the academic year dates
		academicYear, err := database.GetAcademicYearByID(db, term.AcademicYearID)
		if err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Academic year not found"})
		}

		if term.StartDate.Before(academicYear.StartDate.Time) || term.EndDate.After(academicYear.EndDate.Time) {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Term dates must be within the academic year dates"})
		}

		if err := database.CreateTerm(db, &term); err != nil {
			if err == database.ErrDuplicate {
				return c.Status(fiber.StatusConflict).JSON(fiber.Map{"error": "Term number already exists for this academic year"})
			}
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to create term: " + err.Error()})
		}

		return c.Status(fiber.StatusCreated).JSON(term)
	}
}

// UpdateTermHandler updates an existing term
func UpdateTermHandler(db *sql.DB) fiber.Handler {
	return func(c *fiber.Ctx) error {
		termID := c.Params("id")

		var term models.Term
		if err := c.BodyParser(&term); err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error": "Invalid request body: " + err.Error(),
			})
		}

		// Set the ID from the URL
		term.ID = termID

		if term.TermNumber < 1 || term.TermNumber > 3 {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Term number must be between 1 and 3"})
		}

		// Validate dates
		if term.EndDate.Before(term.StartDate.Time) {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "End date must be after start date"})
		}

		// Check if the term dates are within the academic year dates
		academicYear, err := database.GetAcademicYearByID(db, term.AcademicYearID)
		if err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Academic year not found"})
		}

		if term.StartDate.Before(academicYear.StartDate.Time) || term.EndDate.After(academicYear.EndDate.Time) {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Term dates must be within the academic year dates"})
		}

		if err := database.UpdateTerm(db, &term); err != nil {
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to update term: " + err.Error()})
		}

		return c.JSON(term)
	}
}

// DeleteTermHandler deletes a term
func DeleteTermHandler(db *sql.DB) fiber.Handler {
	return func(c *fiber.Ctx) error {
		termID := c.Params("id")

		if err := database.DeleteTerm(db, termID); err != nil {
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to delete term"})
		}

		return c.SendStatus(fiber.StatusNoContent)
	}
}

// GetTermsByAcademicYearHandler returns all terms for a specific academic year
func GetTermsByAcademicYearHandler(db *sql.DB) fiber.Handler {
	return func(c *fiber.Ctx) error {
		academicYearID := c.Params("academicYearId")

		terms, err := database.GetTermsByAcademicYear(db, academicYearID)
		if err != nil {
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to retrieve terms"})
		}

		return c.JSON(terms)
	}
}

// SetCurrentTermHandler marks a term as current, clearing the previous
// current term in the same transaction.
func SetCurrentTermHandler(db *sql.DB) fiber.Handler {
	return func(c *fiber.Ctx) error {
		termID := c.Params("id")

		if err := database.SetCurrentTerm(db, termID); err != nil {
			if err == sql.ErrNoRows {
				return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Term not found"})
			}
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to set current term"})
		}

		term, err := database.GetTermByID(db, termID)
		if err != nil {
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to reload term"})
		}

		return c.JSON(fiber.Map{"message": "Current term updated", "term": term})
	}
}
