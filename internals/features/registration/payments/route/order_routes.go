// file: internals/features/registration/payments/route/order_routes.go
package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"jaleifoundation_backend/internals/configs"
	orderController "jaleifoundation_backend/internals/features/registration/payments/controller"
	svc "jaleifoundation_backend/internals/features/registration/payments/service"
)

func OrderRoutes(r fiber.Router, db *gorm.DB, cfg *configs.Config) {
	gateway := svc.NewRazorpayService(cfg.RazorpayKeyID, cfg.RazorpaySecret)
	h := orderController.NewOrderController(db, gateway, cfg.RazorpaySecret)

	r.Post("/order", h.PlaceOrder)
	r.Post("/verify", h.VerifyPayment)
}
