package dto

import (
	"time"

	"github.com/google/uuid"

	"kelasku_backend/internals/features/payment/purchases/model"
)

/* ===================== REQUEST ===================== */

type CheckoutSessionRequest struct {
	SessionID uuid.UUID `json:"session_id" validate:"required"`
}

type CheckoutScheduleRequest struct {
	ScheduleID uuid.UUID `json:"schedule_id" validate:"required"`
}

/* ===================== RESPONSE ===================== */

type SessionPurchaseResponse struct {
	PurchaseID uuid.UUID  `json:"purchase_id"`
	SessionID  uuid.UUID  `json:"session_id"`
	OrderID    string     `json:"order_id"`
	Amount     int64      `json:"amount"`
	Status     string     `json:"status"`
	PaidAt     *time.Time `json:"paid_at"`
	CreatedAt  time.Time  `json:"created_at"`
}

func ToSessionPurchaseResponse(m *model.SessionPurchaseModel) SessionPurchaseResponse {
	return SessionPurchaseResponse{
		PurchaseID: m.SessionPurchaseID,
		SessionID:  m.SessionPurchaseSessionID,
		OrderID:    m.SessionPurchaseOrderID,
		Amount:     m.SessionPurchaseAmount,
		Status:     m.SessionPurchaseStatus,
		PaidAt:     m.SessionPurchasePaidAt,
		CreatedAt:  m.SessionPurchaseCreatedAt,
	}
}

func ToSessionPurchaseResponses(ms []model.SessionPurchaseModel) []SessionPurchaseResponse {
	out := make([]SessionPurchaseResponse, 0, len(ms))
	for i := range ms {
		out = append(out, ToSessionPurchaseResponse(&ms[i]))
	}
	return out
}

type ScheduleEnrollmentResponse struct {
	EnrollmentID uuid.UUID  `json:"enrollment_id"`
	ScheduleID   uuid.UUID  `json:"schedule_id"`
	OrderID      string     `json:"order_id"`
	Amount       int64      `json:"amount"`
	Status       string     `json:"status"`
	PaidAt       *time.Time `json:"paid_at"`
	CreatedAt    time.Time  `json:"created_at"`
}

func ToScheduleEnrollmentResponse(m *model.ScheduleEnrollmentModel) ScheduleEnrollmentResponse {
	return ScheduleEnrollmentResponse{
		EnrollmentID: m.ScheduleEnrollmentID,
		ScheduleID:   m.ScheduleEnrollmentScheduleID,
		OrderID:      m.ScheduleEnrollmentOrderID,
		Amount:       m.ScheduleEnrollmentAmount,
		Status:       m.ScheduleEnrollmentStatus,
		PaidAt:       m.ScheduleEnrollmentPaidAt,
		CreatedAt:    m.ScheduleEnrollmentCreatedAt,
	}
}

func ToScheduleEnrollmentResponses(ms []model.ScheduleEnrollmentModel) []ScheduleEnrollmentResponse {
	out := make([]ScheduleEnrollmentResponse, 0, len(ms))
	for i := range ms {
		out = append(out, ToScheduleEnrollmentResponse(&ms[i]))
	}
	return out
}
