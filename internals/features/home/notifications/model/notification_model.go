package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"gorm.io/datatypes"
)

// Jenis notifikasi in-app yang dikirim core live-class.
const (
	NotificationKindPurchaseActivated = "purchase_activated"
	NotificationKindSessionFull       = "session_full"
	NotificationKindSessionReminder   = "session_reminder"
)

type NotificationModel struct {
	NotificationID     uuid.UUID `gorm:"column:notification_id;primaryKey;type:uuid;default:gen_random_uuid()" json:"notification_id"`
	NotificationUserID uuid.UUID `gorm:"column:notification_user_id;type:uuid;not null;index" json:"notification_user_id"`

	NotificationKind  string `gorm:"column:notification_kind;type:varchar(40);not null" json:"notification_kind"`
	NotificationTitle string `gorm:"column:notification_title;type:varchar(255);not null" json:"notification_title"`

	NotificationPayload datatypes.JSON `gorm:"column:notification_payload;type:jsonb" json:"notification_payload,omitempty"`
	NotificationTags    pq.StringArray `gorm:"column:notification_tags;type:text[]" json:"notification_tags"`

	NotificationIsRead bool `gorm:"column:notification_is_read;default:false" json:"notification_is_read"`

	NotificationCreatedAt time.Time `gorm:"column:notification_created_at;autoCreateTime" json:"notification_created_at"`
	NotificationUpdatedAt time.Time `gorm:"column:notification_updated_at;autoUpdateTime" json:"notification_updated_at"`
}

func (NotificationModel) TableName() string {
	return "notifications"
}
