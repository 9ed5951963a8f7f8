// file: internals/route/index.go
package routes

import (
	"log"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"jaleifoundation_backend/internals/configs"
	orderRoute "jaleifoundation_backend/internals/features/registration/payments/route"
	studentRoute "jaleifoundation_backend/internals/features/registration/students/route"
)

func SetupRoutes(app *fiber.App, db *gorm.DB, cfg *configs.Config) {
	log.Println("[INFO] Setting up StudentRoutes...")
	studentRoute.StudentRoutes(app, db)

	log.Println("[INFO] Setting up OrderRoutes...")
	orderRoute.OrderRoutes(app, db, cfg)
}
