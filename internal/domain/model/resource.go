package model

import (
	"time"

	"github.com/google/uuid"
)

// Course is a live course with its own fee.
type Course struct {
	ID         uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	Title      string    `gorm:"size:255" json:"title"`
	Fees       int64     `gorm:"not null;default:0" json:"fees"`
	EducatorID uuid.UUID `gorm:"type:uuid;not null;index" json:"educator_id"`
	CreatedAt  time.Time `gorm:"default:now()" json:"created_at"`
}

func (Course) TableName() string {
	return "courses"
}

// TestSeries is a bundle of live tests with its own price.
type TestSeries struct {
	ID         uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	Title      string    `gorm:"size:255" json:"title"`
	Price      int64     `gorm:"not null;default:0" json:"price"`
	EducatorID uuid.UUID `gorm:"type:uuid;not null;index" json:"educator_id"`
	CreatedAt  time.Time `gorm:"default:now()" json:"created_at"`
}

func (TestSeries) TableName() string {
	return "test_series"
}

// LiveClass belongs to a course and has no independent price; its fee and
// owner come from the parent.
type LiveClass struct {
	ID        uuid.UUID  `gorm:"type:uuid;primaryKey" json:"id"`
	Title     string     `gorm:"size:255" json:"title"`
	CourseID  *uuid.UUID `gorm:"type:uuid;index" json:"course_id,omitempty"`
	CreatedAt time.Time  `gorm:"default:now()" json:"created_at"`
}

func (LiveClass) TableName() string {
	return "live_classes"
}

// Webinar is a one-off paid session.
type Webinar struct {
	ID         uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	Title      string    `gorm:"size:255" json:"title"`
	Fees       int64     `gorm:"not null;default:0" json:"fees"`
	EducatorID uuid.UUID `gorm:"type:uuid;not null;index" json:"educator_id"`
	CreatedAt  time.Time `gorm:"default:now()" json:"created_at"`
}

func (Webinar) TableName() string {
	return "webinars"
}
