// file: internals/features/registration/students/controller/student_controller.go
package controller

import (
	"errors"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	dto "jaleifoundation_backend/internals/features/registration/students/dto"
	model "jaleifoundation_backend/internals/features/registration/students/model"
	helper "jaleifoundation_backend/internals/helpers"
)

/* =======================================================================
   Controller
======================================================================= */

type StudentController struct {
	DB        *gorm.DB
	Validator *validator.Validate
}

func NewStudentController(db *gorm.DB) *StudentController {
	return &StudentController{
		DB:        db,
		Validator: validator.New(),
	}
}

/* =======================================================================
   Handlers
======================================================================= */

// POST /student
// Upsert keyed on email OR phone. A resubmission matching an existing
// record overwrites the whole profile; it may only claim an email or
// phone that no *other* student already holds.
func (h *StudentController) UpsertStudent(c *fiber.Ctx) error {
	var req dto.StudentRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "invalid json: "+err.Error())
	}
	if err := h.Validator.Struct(&req); err != nil {
		return helper.ValidationError(c, err)
	}

	var saved *model.Student
	created := false

	err := h.DB.WithContext(c.UserContext()).Transaction(func(tx *gorm.DB) error {
		var existing model.Student
		err := tx.
			Where("student_email = ? OR student_phone_number = ?", req.Email, req.PhoneNumber).
			First(&existing).Error

		if errors.Is(err, gorm.ErrRecordNotFound) {
			m := req.ToModel()
			if err := tx.Create(m).Error; err != nil {
				return err
			}
			saved = m
			created = true
			return nil
		}
		if err != nil {
			return err
		}

		// the matched record may keep its own email/phone, but must not
		// steal either from a different student
		var count int64
		if err := tx.Model(&model.Student{}).
			Where("student_email = ? AND student_id <> ?", req.Email, existing.StudentID).
			Count(&count).Error; err != nil {
			return err
		}
		if count > 0 {
			return fiber.NewError(fiber.StatusConflict, "Email already belongs to another student")
		}

		if err := tx.Model(&model.Student{}).
			Where("student_phone_number = ? AND student_id <> ?", req.PhoneNumber, existing.StudentID).
			Count(&count).Error; err != nil {
			return err
		}
		if count > 0 {
			return fiber.NewError(fiber.StatusConflict, "Phone number already belongs to another student")
		}

		req.ApplyTo(&existing)
		if err := tx.Save(&existing).Error; err != nil {
			return err
		}
		saved = &existing
		return nil
	})

	if err != nil {
		// a concurrent upsert can slip past the checks and hit the
		// unique index instead; report it as the same conflict
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return helper.Error(c, fiber.StatusConflict, "Email or phone number already belongs to another student")
		}
		return helper.FromFiberError(c, err)
	}

	if created {
		return c.Status(fiber.StatusCreated).JSON(fiber.Map{
			"message": "Student Created",
			"data":    dto.FromModel(saved),
		})
	}
	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"message": "Student Information Updated",
		"data":    dto.FromModel(saved),
	})
}
