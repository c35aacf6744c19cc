package dto

import (
	"time"

	"github.com/google/uuid"

	"kelasku_backend/internals/features/liveclass/recordings/model"
)

// Response list/detail — tanpa video_url (hanya keluar lewat endpoint watch).
type RecordingResponse struct {
	RecordingID      uuid.UUID `json:"recording_id"`
	SessionID        uuid.UUID `json:"session_id"`
	Title            string    `json:"title"`
	DurationSeconds  int       `json:"duration_seconds"`
	RequiresPurchase bool      `json:"requires_purchase"`
	ViewCount        int64     `json:"view_count"`
	CreatedAt        time.Time `json:"created_at"`
}

func ToRecordingResponse(m *model.LiveSessionRecordingModel) RecordingResponse {
	return RecordingResponse{
		RecordingID:      m.LiveSessionRecordingID,
		SessionID:        m.LiveSessionRecordingSessionID,
		Title:            m.LiveSessionRecordingTitle,
		DurationSeconds:  m.LiveSessionRecordingDurationSeconds,
		RequiresPurchase: m.LiveSessionRecordingRequiresPurchase,
		ViewCount:        m.LiveSessionRecordingViewCount,
		CreatedAt:        m.LiveSessionRecordingCreatedAt,
	}
}

func ToRecordingResponses(ms []model.LiveSessionRecordingModel) []RecordingResponse {
	out := make([]RecordingResponse, 0, len(ms))
	for i := range ms {
		out = append(out, ToRecordingResponse(&ms[i]))
	}
	return out
}

// Response watch: metadata + URL video + alasan akses.
type WatchRecordingResponse struct {
	Recording    RecordingResponse `json:"recording"`
	VideoURL     string            `json:"video_url"`
	AccessReason string            `json:"access_reason"`
}
