package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

/* ===================== Enums (string) ===================== */

const (
	OrderStatusCreated = "created"
	OrderStatusPaid    = "paid"
)

/* ===================== Model ===================== */

// Order tracks the single registration-fee payment attempt of a student.
// One order per student, enforced by the unique index on order_student_id.
type Order struct {
	OrderID uuid.UUID `gorm:"column:order_id;type:uuid;primaryKey" json:"order_id"`

	OrderStudentID uuid.UUID `gorm:"column:order_student_id;type:uuid;uniqueIndex;not null" json:"order_student_id"`

	// id issued by Razorpay (order_XXXX); the verify callback keys on it
	OrderGatewayOrderID string `gorm:"column:order_gateway_order_id;uniqueIndex;not null" json:"order_gateway_order_id"`

	// amount in paise, kept as text exactly as the gateway reports it
	OrderAmount string `gorm:"column:order_amount;not null" json:"order_amount"`

	OrderStatus string     `gorm:"column:order_status;not null;default:'created'" json:"order_status"`
	OrderPaidAt *time.Time `gorm:"column:order_paid_at" json:"order_paid_at,omitempty"`

	CreatedAt time.Time `gorm:"column:order_created_at;autoCreateTime" json:"order_created_at"`
	UpdatedAt time.Time `gorm:"column:order_updated_at;autoUpdateTime" json:"order_updated_at"`
}

func (Order) TableName() string { return "orders" }

func (o *Order) BeforeCreate(tx *gorm.DB) error {
	if o.OrderID == uuid.Nil {
		o.OrderID = uuid.New()
	}
	if o.OrderStatus == "" {
		o.OrderStatus = OrderStatusCreated
	}
	return nil
}

/* ===================== Helpers ===================== */

func (o *Order) IsPaid() bool {
	return o.OrderStatus == OrderStatusPaid
}
