// file: internals/features/registration/students/route/student_routes.go
package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	studentController "jaleifoundation_backend/internals/features/registration/students/controller"
	"jaleifoundation_backend/internals/middlewares"
)

func StudentRoutes(r fiber.Router, db *gorm.DB) {
	h := studentController.NewStudentController(db)

	r.Post("/student", middlewares.RegisterRateLimiter(), h.UpsertStudent)
}
