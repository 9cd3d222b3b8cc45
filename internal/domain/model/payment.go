package model

import (
	"time"

	"github.com/google/uuid"
)

// PaymentStatus tracks one purchase attempt through its lifecycle.
type PaymentStatus string

const (
	PaymentStatusCreated  PaymentStatus = "created"
	PaymentStatusPending  PaymentStatus = "pending"
	PaymentStatusSuccess  PaymentStatus = "success"
	PaymentStatusFailed   PaymentStatus = "failed"
	PaymentStatusRefunded PaymentStatus = "refunded"
)

// Terminal reports whether no further confirmation can change the status.
func (s PaymentStatus) Terminal() bool {
	return s == PaymentStatusSuccess || s == PaymentStatusFailed || s == PaymentStatusRefunded
}

// Payment is the durable record of one purchase attempt. It is never deleted;
// both confirmation paths read it as the single source of truth.
type Payment struct {
	ID                 int64         `gorm:"primaryKey;autoIncrement" json:"id"`
	GatewayOrderID     string        `gorm:"column:gateway_order_id;uniqueIndex;size:100;not null" json:"gateway_order_id"`
	GatewayPaymentID   *string       `gorm:"column:gateway_payment_id;size:100" json:"gateway_payment_id,omitempty"`
	GatewaySignature   *string       `gorm:"column:gateway_signature;size:200" json:"-"`
	StudentID          uuid.UUID     `gorm:"type:uuid;not null;index" json:"student_id"`
	EducatorID         uuid.UUID     `gorm:"type:uuid;not null;index" json:"educator_id"`
	Amount             int64         `gorm:"not null" json:"amount"`
	PlatformCommission int64         `gorm:"not null" json:"platform_commission"`
	EducatorRevenue    int64         `gorm:"not null" json:"educator_revenue"`
	Status             PaymentStatus `gorm:"size:20;not null;index" json:"status"`
	ResourceKind       ResourceKind  `gorm:"size:20;not null" json:"resource_kind"`
	ResourceID         uuid.UUID     `gorm:"type:uuid;not null" json:"resource_id"`
	IsSettled          bool          `gorm:"not null;default:false" json:"is_settled"`
	SettledAt          *time.Time    `json:"settled_at,omitempty"`
	RefundedAt         *time.Time    `json:"refunded_at,omitempty"`
	FailureReason      *string       `json:"failure_reason,omitempty"`
	WebhookData        JSONB         `gorm:"type:jsonb" json:"-"`
	CreatedAt          time.Time     `gorm:"default:now()" json:"created_at"`
	UpdatedAt          time.Time     `gorm:"default:now()" json:"updated_at"`
}

// TableName specifies the table name for GORM
func (Payment) TableName() string {
	return "payments"
}
