package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type CourseModel struct {
	CourseID          uuid.UUID `gorm:"column:course_id;primaryKey;type:uuid;default:gen_random_uuid()" json:"course_id"`
	CourseTitle       string    `gorm:"column:course_title;type:varchar(255);not null" json:"course_title"`
	CourseDescription string    `gorm:"column:course_description;type:text" json:"course_description"`

	// 👤 Pengajar utama
	CourseInstructorID uuid.UUID `gorm:"column:course_instructor_id;type:uuid;not null" json:"course_instructor_id"`

	// 📌 Status publikasi
	CourseIsPublished bool `gorm:"column:course_is_published;default:false" json:"course_is_published"`

	// 🕒 Metadata
	CourseCreatedAt time.Time      `gorm:"column:course_created_at;autoCreateTime" json:"course_created_at"`
	CourseUpdatedAt *time.Time     `gorm:"column:course_updated_at;autoUpdateTime" json:"course_updated_at"`
	CourseDeletedAt gorm.DeletedAt `gorm:"column:course_deleted_at" json:"course_deleted_at"`
}

func (CourseModel) TableName() string {
	return "courses"
}
