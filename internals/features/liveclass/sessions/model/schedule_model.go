package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

const (
	ScheduleStatusDraft     = "draft"
	ScheduleStatusPublished = "published"
	ScheduleStatusActive    = "active"
	ScheduleStatusCompleted = "completed"
)

// ScheduleModel: bundle berisi banyak live session yang dijual sebagai satu
// unit entitlement (beli paket → akses semua sesi di dalamnya).
type ScheduleModel struct {
	ScheduleID          uuid.UUID `gorm:"column:schedule_id;primaryKey;type:uuid;default:gen_random_uuid()" json:"schedule_id"`
	ScheduleTitle       string    `gorm:"column:schedule_title;type:varchar(255);not null" json:"schedule_title"`
	ScheduleDescription string    `gorm:"column:schedule_description;type:text" json:"schedule_description"`

	ScheduleStatus string `gorm:"column:schedule_status;type:varchar(20);not null;default:'draft'" json:"schedule_status"`

	// 💰 Harga paket (rupiah)
	SchedulePrice int64 `gorm:"column:schedule_price;not null;default:0" json:"schedule_price"`

	// 👥 Kuota siswa paket (NULL = tanpa batas) + counter enrollment aktif
	ScheduleMaxStudents     *int `gorm:"column:schedule_max_students" json:"schedule_max_students"`
	ScheduleEnrollmentCount int  `gorm:"column:schedule_enrollment_count;not null;default:0" json:"schedule_enrollment_count"`

	ScheduleCreatedAt time.Time      `gorm:"column:schedule_created_at;autoCreateTime" json:"schedule_created_at"`
	ScheduleUpdatedAt *time.Time     `gorm:"column:schedule_updated_at;autoUpdateTime" json:"schedule_updated_at"`
	ScheduleDeletedAt gorm.DeletedAt `gorm:"column:schedule_deleted_at" json:"schedule_deleted_at"`
}

func (ScheduleModel) TableName() string {
	return "schedules"
}

// IsPurchasable: paket hanya bisa dibeli kalau sudah dipublikasikan.
func (m *ScheduleModel) IsPurchasable() bool {
	return m.ScheduleStatus == ScheduleStatusPublished ||
		m.ScheduleStatus == ScheduleStatusActive
}
