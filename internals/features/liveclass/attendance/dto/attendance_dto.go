package dto

import (
	"time"

	"github.com/bytedance/sonic"
	"github.com/google/uuid"
	"gorm.io/datatypes"

	"kelasku_backend/internals/features/liveclass/attendance/model"
)

/* ===================== REQUEST ===================== */

// Body POST /live-sessions/:id/join (semua opsional, session dari path)
type JoinLiveSessionRequest struct {
	DeviceInfo map[string]interface{} `json:"device_info"`
}

// Body POST /live-sessions/:id/attendances/excuse (staff only)
type ExcuseAttendanceRequest struct {
	UserID uuid.UUID `json:"user_id" validate:"required"`
	Reason string    `json:"reason" validate:"required,min=3,max=500"`
}

/* ===================== RESPONSE ===================== */

type LiveSessionAttendanceResponse struct {
	AttendanceID      uuid.UUID  `json:"attendance_id"`
	SessionID         uuid.UUID  `json:"session_id"`
	UserID            uuid.UUID  `json:"user_id"`
	JoinedAt          *time.Time `json:"joined_at"`
	LeftAt            *time.Time `json:"left_at"`
	DurationMinutes   int        `json:"duration_minutes"`
	IsPresent         bool       `json:"is_present"`
	Status            string     `json:"status"`
	LateMinutes       int        `json:"late_minutes"`
	EarlyLeaveMinutes int        `json:"early_leave_minutes"`
	Score             int        `json:"score"`
	ExcuseReason      *string    `json:"excuse_reason,omitempty"`
	IsManual          bool       `json:"is_manual"`
}

func ToLiveSessionAttendanceResponse(m *model.LiveSessionAttendanceModel) LiveSessionAttendanceResponse {
	return LiveSessionAttendanceResponse{
		AttendanceID:      m.LiveSessionAttendanceID,
		SessionID:         m.LiveSessionAttendanceSessionID,
		UserID:            m.LiveSessionAttendanceUserID,
		JoinedAt:          m.LiveSessionAttendanceJoinedAt,
		LeftAt:            m.LiveSessionAttendanceLeftAt,
		DurationMinutes:   m.LiveSessionAttendanceDurationMinutes,
		IsPresent:         m.LiveSessionAttendanceIsPresent,
		Status:            m.LiveSessionAttendanceStatus,
		LateMinutes:       m.LiveSessionAttendanceLateMinutes,
		EarlyLeaveMinutes: m.LiveSessionAttendanceEarlyLeaveMinutes,
		Score:             m.LiveSessionAttendanceScore,
		ExcuseReason:      m.LiveSessionAttendanceExcuseReason,
		IsManual:          m.LiveSessionAttendanceIsManual,
	}
}

func ToLiveSessionAttendanceResponses(ms []model.LiveSessionAttendanceModel) []LiveSessionAttendanceResponse {
	out := make([]LiveSessionAttendanceResponse, 0, len(ms))
	for i := range ms {
		out = append(out, ToLiveSessionAttendanceResponse(&ms[i]))
	}
	return out
}

// DeviceInfoJSON mengubah map bebas dari request jadi JSONB untuk disimpan.
func (r *JoinLiveSessionRequest) DeviceInfoJSON() datatypes.JSON {
	if len(r.DeviceInfo) == 0 {
		return nil
	}
	b, err := sonic.Marshal(r.DeviceInfo)
	if err != nil {
		return nil
	}
	return datatypes.JSON(b)
}
