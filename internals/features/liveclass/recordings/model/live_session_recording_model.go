package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type LiveSessionRecordingModel struct {
	LiveSessionRecordingID        uuid.UUID `gorm:"column:live_session_recording_id;primaryKey;type:uuid;default:gen_random_uuid()" json:"live_session_recording_id"`
	LiveSessionRecordingSessionID uuid.UUID `gorm:"column:live_session_recording_session_id;type:uuid;not null;index" json:"live_session_recording_session_id"`

	LiveSessionRecordingTitle    string `gorm:"column:live_session_recording_title;type:varchar(255);not null" json:"live_session_recording_title"`
	LiveSessionRecordingVideoURL string `gorm:"column:live_session_recording_video_url;type:text;not null" json:"-"`

	LiveSessionRecordingDurationSeconds int `gorm:"column:live_session_recording_duration_seconds;not null;default:0" json:"live_session_recording_duration_seconds"`

	// 📌 Publikasi & gating
	LiveSessionRecordingIsPublished      bool `gorm:"column:live_session_recording_is_published;default:false" json:"live_session_recording_is_published"`
	LiveSessionRecordingRequiresPurchase bool `gorm:"column:live_session_recording_requires_purchase;default:true" json:"live_session_recording_requires_purchase"`

	// 📈 Dihitung per view yang lolos gate (tidak dedup per user)
	LiveSessionRecordingViewCount int64 `gorm:"column:live_session_recording_view_count;not null;default:0" json:"live_session_recording_view_count"`

	LiveSessionRecordingCreatedAt time.Time      `gorm:"column:live_session_recording_created_at;autoCreateTime" json:"live_session_recording_created_at"`
	LiveSessionRecordingUpdatedAt *time.Time     `gorm:"column:live_session_recording_updated_at;autoUpdateTime" json:"live_session_recording_updated_at"`
	LiveSessionRecordingDeletedAt gorm.DeletedAt `gorm:"column:live_session_recording_deleted_at" json:"live_session_recording_deleted_at"`
}

func (LiveSessionRecordingModel) TableName() string {
	return "live_session_recordings"
}
