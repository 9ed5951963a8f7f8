package dto

import (
	"github.com/google/uuid"
)

/* =========================================================
   REQUEST DTOs
========================================================= */

// PlaceOrderRequest: studentId of a previously registered student.
type PlaceOrderRequest struct {
	StudentID uuid.UUID `json:"studentId" validate:"required"`
}

// VerifyPaymentRequest carries the fields Razorpay posts back after
// checkout; names are fixed by the gateway.
type VerifyPaymentRequest struct {
	RazorpayOrderID   string `json:"razorpay_order_id" validate:"required"`
	RazorpayPaymentID string `json:"razorpay_payment_id" validate:"required"`
	RazorpaySignature string `json:"razorpay_signature" validate:"required"`
}
