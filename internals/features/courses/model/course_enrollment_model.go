package model

import (
	"time"

	"github.com/google/uuid"
)

// Status enrollment. Hanya "active" yang memberi akses ke sesi live course.
const (
	CourseEnrollmentStatusActive    = "active"
	CourseEnrollmentStatusSuspended = "suspended"
	CourseEnrollmentStatusCompleted = "completed"
	CourseEnrollmentStatusCancelled = "cancelled"
)

type CourseEnrollmentModel struct {
	CourseEnrollmentID       uuid.UUID `gorm:"column:course_enrollment_id;primaryKey;type:uuid;default:gen_random_uuid()" json:"course_enrollment_id"`
	CourseEnrollmentUserID   uuid.UUID `gorm:"column:course_enrollment_user_id;type:uuid;not null;uniqueIndex:idx_course_enrollment_user_course" json:"course_enrollment_user_id"`
	CourseEnrollmentCourseID uuid.UUID `gorm:"column:course_enrollment_course_id;type:uuid;not null;uniqueIndex:idx_course_enrollment_user_course" json:"course_enrollment_course_id"`

	CourseEnrollmentStatus string `gorm:"column:course_enrollment_status;type:varchar(20);not null;default:'active'" json:"course_enrollment_status"`

	CourseEnrollmentCreatedAt time.Time  `gorm:"column:course_enrollment_created_at;autoCreateTime" json:"course_enrollment_created_at"`
	CourseEnrollmentUpdatedAt *time.Time `gorm:"column:course_enrollment_updated_at;autoUpdateTime" json:"course_enrollment_updated_at"`

	// Relations
	Course *CourseModel `gorm:"foreignKey:CourseEnrollmentCourseID" json:"course,omitempty"`
}

func (CourseEnrollmentModel) TableName() string {
	return "course_enrollments"
}
