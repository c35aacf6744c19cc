package dto

import (
	"time"

	"github.com/google/uuid"

	sessionModel "kelasku_backend/internals/features/liveclass/sessions/model"
	entitlement "kelasku_backend/internals/features/liveclass/entitlement/service"
)

/* ===================== SESSION ===================== */

type LiveSessionResponse struct {
	SessionID       uuid.UUID  `json:"session_id"`
	Title           string     `json:"title"`
	Description     string     `json:"description"`
	CourseID        uuid.UUID  `json:"course_id"`
	ScheduleID      *uuid.UUID `json:"schedule_id,omitempty"`
	InstructorID    uuid.UUID  `json:"instructor_id"`
	StartTime       time.Time  `json:"start_time"`
	EndTime         time.Time  `json:"end_time"`
	DurationMinutes int        `json:"duration_minutes"`
	Status          string     `json:"status"`
	PricingType     string     `json:"pricing_type"`
	Price           int64      `json:"price"`
	IsFreeForAll    bool       `json:"is_free_for_all"`
	MaxParticipants *int       `json:"max_participants"`
	SoldCount       int        `json:"sold_count"`
}

func ToLiveSessionResponse(m *sessionModel.LiveSessionModel) LiveSessionResponse {
	return LiveSessionResponse{
		SessionID:       m.LiveSessionID,
		Title:           m.LiveSessionTitle,
		Description:     m.LiveSessionDescription,
		CourseID:        m.LiveSessionCourseID,
		ScheduleID:      m.LiveSessionScheduleID,
		InstructorID:    m.LiveSessionInstructorID,
		StartTime:       m.LiveSessionStartTime,
		EndTime:         m.LiveSessionEndTime,
		DurationMinutes: m.LiveSessionDurationMinutes,
		Status:          m.LiveSessionStatus,
		PricingType:     m.LiveSessionPricingType,
		Price:           m.LiveSessionPrice,
		IsFreeForAll:    m.LiveSessionIsFreeForAll,
		MaxParticipants: m.LiveSessionMaxParticipants,
		SoldCount:       m.LiveSessionSoldCount,
	}
}

func ToLiveSessionResponses(ms []sessionModel.LiveSessionModel) []LiveSessionResponse {
	out := make([]LiveSessionResponse, 0, len(ms))
	for i := range ms {
		out = append(out, ToLiveSessionResponse(&ms[i]))
	}
	return out
}

// Detail sesi + keputusan akses pemanggil (anonymous tetap dapat detail,
// access.granted = false).
type LiveSessionDetailResponse struct {
	LiveSessionResponse
	Access entitlement.Decision `json:"access"`
}

/* ===================== SCHEDULE ===================== */

type ScheduleResponse struct {
	ScheduleID      uuid.UUID `json:"schedule_id"`
	Title           string    `json:"title"`
	Description     string    `json:"description"`
	Status          string    `json:"status"`
	Price           int64     `json:"price"`
	MaxStudents     *int      `json:"max_students"`
	EnrollmentCount int       `json:"enrollment_count"`
}

func ToScheduleResponse(m *sessionModel.ScheduleModel) ScheduleResponse {
	return ScheduleResponse{
		ScheduleID:      m.ScheduleID,
		Title:           m.ScheduleTitle,
		Description:     m.ScheduleDescription,
		Status:          m.ScheduleStatus,
		Price:           m.SchedulePrice,
		MaxStudents:     m.ScheduleMaxStudents,
		EnrollmentCount: m.ScheduleEnrollmentCount,
	}
}

func ToScheduleResponses(ms []sessionModel.ScheduleModel) []ScheduleResponse {
	out := make([]ScheduleResponse, 0, len(ms))
	for i := range ms {
		out = append(out, ToScheduleResponse(&ms[i]))
	}
	return out
}

// Detail paket + daftar sesinya.
type ScheduleDetailResponse struct {
	ScheduleResponse
	Sessions []LiveSessionResponse `json:"sessions"`
}
