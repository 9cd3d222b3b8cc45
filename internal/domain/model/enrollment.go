package model

import (
	"time"

	"github.com/google/uuid"
)

// Enrollment grants a student access to a purchased resource. The composite
// unique index is the guard that keeps concurrent confirmations from
// double-enrolling.
type Enrollment struct {
	ID           int64        `gorm:"primaryKey;autoIncrement" json:"id"`
	StudentID    uuid.UUID    `gorm:"type:uuid;not null;uniqueIndex:uniq_enrollment_triple" json:"student_id"`
	ResourceKind ResourceKind `gorm:"size:20;not null;uniqueIndex:uniq_enrollment_triple" json:"resource_kind"`
	ResourceID   uuid.UUID    `gorm:"type:uuid;not null;uniqueIndex:uniq_enrollment_triple" json:"resource_id"`
	CreatedAt    time.Time    `gorm:"default:now()" json:"created_at"`
}

// TableName specifies the table name for GORM
func (Enrollment) TableName() string {
	return "enrollments"
}
