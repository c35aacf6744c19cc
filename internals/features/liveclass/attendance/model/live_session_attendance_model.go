package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// Detail status kehadiran. is_present adalah fakta historis (pernah hadir),
// status ini turunannya untuk pelaporan.
const (
	AttendanceStatusPresent = "present"
	AttendanceStatusLate    = "late"
	AttendanceStatusAbsent  = "absent"
	AttendanceStatusExcused = "excused"
)

// LiveSessionAttendanceModel: satu baris per (sesi, user) — dijaga unique
// index. Join berulang meng-update baris ini, tidak pernah menduplikasi.
type LiveSessionAttendanceModel struct {
	LiveSessionAttendanceID        uuid.UUID `gorm:"column:live_session_attendance_id;primaryKey;type:uuid;default:gen_random_uuid()" json:"live_session_attendance_id"`
	LiveSessionAttendanceSessionID uuid.UUID `gorm:"column:live_session_attendance_session_id;type:uuid;not null;uniqueIndex:idx_live_session_attendance_session_user" json:"live_session_attendance_session_id"`
	LiveSessionAttendanceUserID    uuid.UUID `gorm:"column:live_session_attendance_user_id;type:uuid;not null;uniqueIndex:idx_live_session_attendance_session_user" json:"live_session_attendance_user_id"`

	// ⏰ Siklus join/leave berjalan. left_at NULL = siklus masih terbuka.
	LiveSessionAttendanceJoinedAt *time.Time `gorm:"column:live_session_attendance_joined_at" json:"live_session_attendance_joined_at"`
	LiveSessionAttendanceLeftAt   *time.Time `gorm:"column:live_session_attendance_left_at" json:"live_session_attendance_left_at"`

	// Akumulasi durasi semua siklus (menit, selalu ≥ 0)
	LiveSessionAttendanceDurationMinutes int `gorm:"column:live_session_attendance_duration_minutes;not null;default:0" json:"live_session_attendance_duration_minutes"`

	LiveSessionAttendanceIsPresent bool   `gorm:"column:live_session_attendance_is_present;not null;default:false" json:"live_session_attendance_is_present"`
	LiveSessionAttendanceStatus    string `gorm:"column:live_session_attendance_status;type:varchar(15);not null;default:'absent'" json:"live_session_attendance_status"`

	// Terlambat berapa menit (dikunci di join pertama) & pulang awal
	LiveSessionAttendanceLateMinutes       int `gorm:"column:live_session_attendance_late_minutes;not null;default:0" json:"live_session_attendance_late_minutes"`
	LiveSessionAttendanceEarlyLeaveMinutes int `gorm:"column:live_session_attendance_early_leave_minutes;not null;default:0" json:"live_session_attendance_early_leave_minutes"`

	// 📊 Skor 0–100, hanya untuk pelaporan — tidak pernah dipakai entitlement
	LiveSessionAttendanceScore int `gorm:"column:live_session_attendance_score;not null;default:0" json:"live_session_attendance_score"`

	// ✍️ Pengecualian manual oleh staff
	LiveSessionAttendanceExcuseReason     *string    `gorm:"column:live_session_attendance_excuse_reason;type:text" json:"live_session_attendance_excuse_reason"`
	LiveSessionAttendanceExcuseApprovedBy *uuid.UUID `gorm:"column:live_session_attendance_excuse_approved_by;type:uuid" json:"live_session_attendance_excuse_approved_by"`
	LiveSessionAttendanceIsManual         bool       `gorm:"column:live_session_attendance_is_manual;not null;default:false" json:"live_session_attendance_is_manual"`

	// 📱 Info device saat join terakhir
	LiveSessionAttendanceDeviceInfo datatypes.JSON `gorm:"column:live_session_attendance_device_info;type:jsonb" json:"live_session_attendance_device_info,omitempty"`

	LiveSessionAttendanceCreatedAt time.Time  `gorm:"column:live_session_attendance_created_at;autoCreateTime" json:"live_session_attendance_created_at"`
	LiveSessionAttendanceUpdatedAt *time.Time `gorm:"column:live_session_attendance_updated_at;autoUpdateTime" json:"live_session_attendance_updated_at"`
}

func (LiveSessionAttendanceModel) TableName() string {
	return "live_session_attendances"
}
