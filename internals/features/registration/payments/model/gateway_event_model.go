package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

/* ===================== Enums (string) ===================== */

const (
	GatewayEventStatusOK               = "ok"
	GatewayEventStatusInvalidSignature = "invalid_signature"
	GatewayEventStatusOrderNotFound    = "order_not_found"
	GatewayEventStatusError            = "error"
)

/* ===================== Model ===================== */

// GatewayEvent is the audit row written for every verify callback,
// whatever its outcome. The 400 we answer with deliberately says
// nothing; this table holds the detail.
type GatewayEvent struct {
	GatewayEventID uuid.UUID `gorm:"column:gateway_event_id;type:uuid;primaryKey" json:"gateway_event_id"`

	GatewayEventOrderID   *uuid.UUID `gorm:"column:gateway_event_order_id;type:uuid" json:"gateway_event_order_id,omitempty"`
	GatewayEventGatewayID string     `gorm:"column:gateway_event_gateway_id;index" json:"gateway_event_gateway_id"`
	GatewayEventPaymentID string     `gorm:"column:gateway_event_payment_id" json:"gateway_event_payment_id"`

	GatewayEventSignature string `gorm:"column:gateway_event_signature" json:"gateway_event_signature"`
	GatewayEventDigest    string `gorm:"column:gateway_event_digest" json:"gateway_event_digest"`

	GatewayEventStatus  string         `gorm:"column:gateway_event_status;not null" json:"gateway_event_status"`
	GatewayEventPayload datatypes.JSON `gorm:"column:gateway_event_payload" json:"gateway_event_payload,omitempty"`

	CreatedAt time.Time `gorm:"column:gateway_event_created_at;autoCreateTime" json:"gateway_event_created_at"`
}

func (GatewayEvent) TableName() string { return "gateway_events" }

func (e *GatewayEvent) BeforeCreate(tx *gorm.DB) error {
	if e.GatewayEventID == uuid.Nil {
		e.GatewayEventID = uuid.New()
	}
	return nil
}
