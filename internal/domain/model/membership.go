package model

import (
	"time"

	"github.com/google/uuid"
)

// Membership rows mirror the enrollment onto each resource's own student
// list. They live in the resource aggregates and are written by the
// enrollment completer as part of the grant.

type CourseMember struct {
	ID        int64     `gorm:"primaryKey;autoIncrement" json:"id"`
	CourseID  uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:uniq_course_member" json:"course_id"`
	StudentID uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:uniq_course_member" json:"student_id"`
	CreatedAt time.Time `gorm:"default:now()" json:"created_at"`
}

func (CourseMember) TableName() string {
	return "course_members"
}

type TestSeriesMember struct {
	ID           int64     `gorm:"primaryKey;autoIncrement" json:"id"`
	TestSeriesID uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:uniq_test_series_member" json:"test_series_id"`
	StudentID    uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:uniq_test_series_member" json:"student_id"`
	CreatedAt    time.Time `gorm:"default:now()" json:"created_at"`
}

func (TestSeriesMember) TableName() string {
	return "test_series_members"
}

type LiveClassMember struct {
	ID          int64     `gorm:"primaryKey;autoIncrement" json:"id"`
	LiveClassID uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:uniq_live_class_member" json:"live_class_id"`
	StudentID   uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:uniq_live_class_member" json:"student_id"`
	CreatedAt   time.Time `gorm:"default:now()" json:"created_at"`
}

func (LiveClassMember) TableName() string {
	return "live_class_members"
}

type WebinarMember struct {
	ID        int64     `gorm:"primaryKey;autoIncrement" json:"id"`
	WebinarID uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:uniq_webinar_member" json:"webinar_id"`
	StudentID uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:uniq_webinar_member" json:"student_id"`
	CreatedAt time.Time `gorm:"default:now()" json:"created_at"`
}

func (WebinarMember) TableName() string {
	return "webinar_members"
}
