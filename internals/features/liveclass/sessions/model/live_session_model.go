package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Status sesi. Dikelola subsistem instructor (di luar core ini) — core
// hanya membaca.
const (
	LiveSessionStatusScheduled = "scheduled"
	LiveSessionStatusLive      = "live"
	LiveSessionStatusCompleted = "completed"
	LiveSessionStatusCancelled = "cancelled"
)

// Tipe harga sesi.
const (
	LiveSessionPricingFree             = "free"
	LiveSessionPricingPaid             = "paid"
	LiveSessionPricingSubscriptionOnly = "subscription_only"
)

type LiveSessionModel struct {
	LiveSessionID          uuid.UUID `gorm:"column:live_session_id;primaryKey;type:uuid;default:gen_random_uuid()" json:"live_session_id"`
	LiveSessionTitle       string    `gorm:"column:live_session_title;type:varchar(255);not null" json:"live_session_title"`
	LiveSessionDescription string    `gorm:"column:live_session_description;type:text" json:"live_session_description"`

	// 🔗 Course pemilik + schedule (bundle) opsional
	LiveSessionCourseID   uuid.UUID  `gorm:"column:live_session_course_id;type:uuid;not null;index" json:"live_session_course_id"`
	LiveSessionScheduleID *uuid.UUID `gorm:"column:live_session_schedule_id;type:uuid;index" json:"live_session_schedule_id"`

	// 👤 Pengajar
	LiveSessionInstructorID uuid.UUID `gorm:"column:live_session_instructor_id;type:uuid;not null" json:"live_session_instructor_id"`

	// ⏰ Jadwal
	LiveSessionStartTime       time.Time `gorm:"column:live_session_start_time;not null" json:"live_session_start_time"`
	LiveSessionEndTime         time.Time `gorm:"column:live_session_end_time;not null" json:"live_session_end_time"`
	LiveSessionDurationMinutes int       `gorm:"column:live_session_duration_minutes;not null;default:0" json:"live_session_duration_minutes"`

	LiveSessionStatus string `gorm:"column:live_session_status;type:varchar(20);not null;default:'scheduled'" json:"live_session_status"`

	// 💰 Harga & akses
	LiveSessionPricingType  string `gorm:"column:live_session_pricing_type;type:varchar(20);not null;default:'free'" json:"live_session_pricing_type"`
	LiveSessionPrice        int64  `gorm:"column:live_session_price;not null;default:0" json:"live_session_price"`
	LiveSessionIsFreeForAll bool   `gorm:"column:live_session_is_free_for_all;default:false" json:"live_session_is_free_for_all"`

	// 👥 Kapasitas (NULL = tanpa batas)
	LiveSessionMaxParticipants *int `gorm:"column:live_session_max_participants" json:"live_session_max_participants"`

	// 📈 Counter penjualan pembelian satuan
	LiveSessionSoldCount int `gorm:"column:live_session_sold_count;not null;default:0" json:"live_session_sold_count"`

	// 🕒 Metadata
	LiveSessionCreatedAt time.Time      `gorm:"column:live_session_created_at;autoCreateTime" json:"live_session_created_at"`
	LiveSessionUpdatedAt *time.Time     `gorm:"column:live_session_updated_at;autoUpdateTime" json:"live_session_updated_at"`
	LiveSessionDeletedAt gorm.DeletedAt `gorm:"column:live_session_deleted_at" json:"live_session_deleted_at"`
}

func (LiveSessionModel) TableName() string {
	return "live_sessions"
}

// IsJoinable: join hanya masuk akal sebelum/selama sesi berjalan.
func (m *LiveSessionModel) IsJoinable() bool {
	return m.LiveSessionStatus == LiveSessionStatusScheduled ||
		m.LiveSessionStatus == LiveSessionStatusLive
}
