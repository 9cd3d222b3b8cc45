package model

import (
	"time"

	"github.com/google/uuid"
)

// Student is the purchasing party. Owned by the account service; this service
// reads it for existence checks and order-response details.
type Student struct {
	ID           uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	FirstName    string    `gorm:"size:100" json:"first_name"`
	LastName     string    `gorm:"size:100" json:"last_name"`
	Email        string    `gorm:"size:255" json:"email"`
	MobileNumber string    `gorm:"size:20" json:"mobile_number"`
	CreatedAt    time.Time `gorm:"default:now()" json:"created_at"`
}

func (Student) TableName() string {
	return "students"
}

// Educator owns resources and earns revenue from their sale. The revenue
// columns are the per-owner running totals; pending_amount never goes
// negative (refunds are clamped at zero).
type Educator struct {
	ID            uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	FirstName     string    `gorm:"size:100" json:"first_name"`
	LastName      string    `gorm:"size:100" json:"last_name"`
	Email         string    `gorm:"size:255" json:"email"`
	TotalIncome   int64     `gorm:"not null;default:0" json:"total_income"`
	PendingAmount int64     `gorm:"not null;default:0" json:"pending_amount"`
	SettledAmount int64     `gorm:"not null;default:0" json:"settled_amount"`
	CreatedAt     time.Time `gorm:"default:now()" json:"created_at"`
	UpdatedAt     time.Time `gorm:"default:now()" json:"updated_at"`
}

func (Educator) TableName() string {
	return "educators"
}
