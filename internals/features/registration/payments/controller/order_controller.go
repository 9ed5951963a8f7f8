// file: internals/features/registration/payments/controller/order_controller.go
package controller

import (
	"encoding/json"
	"errors"
	"log"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/datatypes"
	"gorm.io/gorm"

	dto "jaleifoundation_backend/internals/features/registration/payments/dto"
	model "jaleifoundation_backend/internals/features/registration/payments/model"
	svc "jaleifoundation_backend/internals/features/registration/payments/service"
	helper "jaleifoundation_backend/internals/helpers"
)

/* =======================================================================
   Controller
======================================================================= */

type OrderController struct {
	DB             *gorm.DB
	Validator      *validator.Validate
	Gateway        svc.OrderCreator
	RazorpaySecret string // HMAC key for the verify callback
}

func NewOrderController(db *gorm.DB, gateway svc.OrderCreator, razorpaySecret string) *OrderController {
	return &OrderController{
		DB:             db,
		Validator:      validator.New(),
		Gateway:        gateway,
		RazorpaySecret: razorpaySecret,
	}
}

/* =======================================================================
   Handlers
======================================================================= */

// POST /order
// Idempotent per student: a pending order is returned as-is, a paid one
// short-circuits, only a student with no order reaches the gateway.
func (h *OrderController) PlaceOrder(c *fiber.Ctx) error {
	var req dto.PlaceOrderRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "invalid json: "+err.Error())
	}
	if err := h.Validator.Struct(&req); err != nil {
		return helper.ValidationError(c, err)
	}

	db := h.DB.WithContext(c.UserContext())

	var existing model.Order
	err := db.Where("order_student_id = ?", req.StudentID).First(&existing).Error
	if err == nil {
		if existing.IsPaid() {
			return c.Status(fiber.StatusOK).JSON(fiber.Map{
				"message": "Student has already paid",
			})
		}
		return c.Status(fiber.StatusOK).JSON(fiber.Map{
			"order_id": existing.OrderGatewayOrderID,
		})
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return helper.Error(c, fiber.StatusInternalServerError, "order lookup failed")
	}

	gatewayOrderID, amount, err := h.Gateway.CreateOrder(svc.RegistrationFeePaise, svc.Currency)
	if err != nil {
		log.Printf("[ERROR] razorpay order create: %v", err)
		return helper.Error(c, fiber.StatusBadGateway, "razorpay error: failed to create order")
	}

	order := model.Order{
		OrderStudentID:      req.StudentID,
		OrderGatewayOrderID: gatewayOrderID,
		OrderAmount:         amount,
	}
	if err := db.Create(&order).Error; err != nil {
		// a concurrent request won the unique index on order_student_id;
		// hand back the winner's order and leave this gateway order to
		// expire unpaid
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			log.Printf("[WARN] concurrent order for student %s, orphaned gateway order %s", req.StudentID, gatewayOrderID)
			var winner model.Order
			if err := db.Where("order_student_id = ?", req.StudentID).First(&winner).Error; err == nil {
				if winner.IsPaid() {
					return c.Status(fiber.StatusOK).JSON(fiber.Map{
						"message": "Student has already paid",
					})
				}
				return c.Status(fiber.StatusOK).JSON(fiber.Map{
					"order_id": winner.OrderGatewayOrderID,
				})
			}
		}
		// the remote order now has no local record; it will expire
		// unpaid at the gateway, but keep its id findable in the logs
		log.Printf("[ERROR] persist order failed, orphaned gateway order %s: %v", gatewayOrderID, err)
		return helper.Error(c, fiber.StatusInternalServerError, "order could not be saved")
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"message":  "Order Created",
		"order_id": gatewayOrderID,
	})
}

// POST /verify
// Answers only {success:bool}; the reason for a failure is recorded in
// gateway_events, never in the response.
func (h *OrderController) VerifyPayment(c *fiber.Ctx) error {
	var req dto.VerifyPaymentRequest
	if err := c.BodyParser(&req); err != nil {
		return verifyFailed(c)
	}
	if err := h.Validator.Struct(&req); err != nil {
		return verifyFailed(c)
	}

	db := h.DB.WithContext(c.UserContext())
	digest := svc.SignaturePayloadDigest(h.RazorpaySecret, req.RazorpayOrderID, req.RazorpayPaymentID)

	if !svc.VerifySignature(h.RazorpaySecret, req.RazorpayOrderID, req.RazorpayPaymentID, req.RazorpaySignature) {
		h.logGatewayEvent(db, nil, &req, digest, model.GatewayEventStatusInvalidSignature)
		return verifyFailed(c)
	}

	var order model.Order
	if err := db.Where("order_gateway_order_id = ?", req.RazorpayOrderID).First(&order).Error; err != nil {
		status := model.GatewayEventStatusOrderNotFound
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			status = model.GatewayEventStatusError
			log.Printf("[ERROR] verify order lookup: %v", err)
		}
		h.logGatewayEvent(db, nil, &req, digest, status)
		return verifyFailed(c)
	}

	// created → paid is one-way; re-verifying a paid order is a no-op
	if !order.IsPaid() {
		now := time.Now()
		updates := map[string]interface{}{
			"order_status":  model.OrderStatusPaid,
			"order_paid_at": &now,
		}
		if err := db.Model(&order).Updates(updates).Error; err != nil {
			log.Printf("[ERROR] mark order paid: %v", err)
			h.logGatewayEvent(db, &order, &req, digest, model.GatewayEventStatusError)
			return verifyFailed(c)
		}
	}

	h.logGatewayEvent(db, &order, &req, digest, model.GatewayEventStatusOK)
	return c.Status(fiber.StatusOK).JSON(fiber.Map{"success": true})
}

func verifyFailed(c *fiber.Ctx) error {
	return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"success": false})
}

/* =======================================================================
   Helpers: callback audit
======================================================================= */

func (h *OrderController) logGatewayEvent(db *gorm.DB, order *model.Order, req *dto.VerifyPaymentRequest, digest, status string) {
	payloadJSON, _ := json.Marshal(req)

	ev := model.GatewayEvent{
		GatewayEventGatewayID: req.RazorpayOrderID,
		GatewayEventPaymentID: req.RazorpayPaymentID,
		GatewayEventSignature: req.RazorpaySignature,
		GatewayEventDigest:    digest,
		GatewayEventStatus:    status,
		GatewayEventPayload:   datatypes.JSON(payloadJSON),
	}
	if order != nil {
		id := order.OrderID
		ev.GatewayEventOrderID = &id
	}

	// audit must never break the callback path
	if err := db.Create(&ev).Error; err != nil {
		log.Printf("[WARN] gateway event log failed: %v", err)
	}
}
