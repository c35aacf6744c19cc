package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// ScheduleEnrollmentModel: pembelian paket (schedule) — satu pembayaran
// membuka semua sesi di dalam paket.
type ScheduleEnrollmentModel struct {
	ScheduleEnrollmentID         uuid.UUID `gorm:"column:schedule_enrollment_id;primaryKey;type:uuid;default:gen_random_uuid()" json:"schedule_enrollment_id"`
	ScheduleEnrollmentUserID     uuid.UUID `gorm:"column:schedule_enrollment_user_id;type:uuid;not null;index" json:"schedule_enrollment_user_id"`
	ScheduleEnrollmentScheduleID uuid.UUID `gorm:"column:schedule_enrollment_schedule_id;type:uuid;not null;index" json:"schedule_enrollment_schedule_id"`

	ScheduleEnrollmentOrderID string `gorm:"column:schedule_enrollment_order_id;type:varchar(64);not null;uniqueIndex" json:"schedule_enrollment_order_id"`

	ScheduleEnrollmentAmount int64  `gorm:"column:schedule_enrollment_amount;not null" json:"schedule_enrollment_amount"`
	ScheduleEnrollmentStatus string `gorm:"column:schedule_enrollment_status;type:varchar(20);not null;default:'pending'" json:"schedule_enrollment_status"`

	ScheduleEnrollmentPaidAt *time.Time `gorm:"column:schedule_enrollment_paid_at" json:"schedule_enrollment_paid_at"`

	ScheduleEnrollmentGatewayPayload datatypes.JSON `gorm:"column:schedule_enrollment_gateway_payload;type:jsonb" json:"-"`

	ScheduleEnrollmentCreatedAt time.Time  `gorm:"column:schedule_enrollment_created_at;autoCreateTime" json:"schedule_enrollment_created_at"`
	ScheduleEnrollmentUpdatedAt *time.Time `gorm:"column:schedule_enrollment_updated_at;autoUpdateTime" json:"schedule_enrollment_updated_at"`
}

func (ScheduleEnrollmentModel) TableName() string {
	return "schedule_enrollments"
}
