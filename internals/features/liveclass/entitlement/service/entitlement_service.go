package service

import (
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"kelasku_backend/internals/constants"
	courseModel "kelasku_backend/internals/features/courses/model"
	sessionModel "kelasku_backend/internals/features/liveclass/sessions/model"
	purchaseModel "kelasku_backend/internals/features/payment/purchases/model"
	subsModel "kelasku_backend/internals/features/subscriptions/model"
)

// EntitlementService memuat Facts dari storage lalu memutuskan lewat Decide.
type EntitlementService struct {
	DB *gorm.DB

	// Injectable supaya uji waktu deterministik
	Now func() time.Time
}

func NewEntitlementService(db *gorm.DB) *EntitlementService {
	return &EntitlementService{DB: db, Now: time.Now}
}

// Resolve: keputusan akses untuk (user, sesi). userID boleh uuid.Nil
// (anonymous) → selalu tidak berhak, tanpa menyentuh sumber-sumber lain.
// Sesi tidak ada / soft-deleted → ErrNotFound, BUKAN "tidak berhak".
func (s *EntitlementService) Resolve(userID, sessionID uuid.UUID) (Decision, *sessionModel.LiveSessionModel, error) {
	var sess sessionModel.LiveSessionModel
	if err := s.DB.First(&sess, "live_session_id = ?", sessionID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return Decision{Reason: ReasonNone}, nil, fmt.Errorf("sesi %s: %w", sessionID, constants.ErrNotFound)
		}
		return Decision{Reason: ReasonNone}, nil, fmt.Errorf("baca sesi: %w", constants.ErrTransientStorage)
	}

	decision, err := s.ResolveForSession(userID, &sess)
	return decision, &sess, err
}

// ResolveForSession: sama dengan Resolve tapi sesi sudah di tangan pemanggil
// (dipakai detail view & join yang sudah load sesi duluan).
func (s *EntitlementService) ResolveForSession(userID uuid.UUID, sess *sessionModel.LiveSessionModel) (Decision, error) {
	if userID == uuid.Nil {
		return Decision{Granted: false, Reason: ReasonNone}, nil
	}

	facts, err := s.loadFacts(userID, sess)
	if err != nil {
		return Decision{Reason: ReasonNone}, err
	}

	return Decide(s.Now(), facts), nil
}

func (s *EntitlementService) loadFacts(userID uuid.UUID, sess *sessionModel.LiveSessionModel) (Facts, error) {
	facts := Facts{
		SessionIsFreeForAll: sess.LiveSessionIsFreeForAll,
		SessionPricingType:  sess.LiveSessionPricingType,
		SessionScheduleID:   sess.LiveSessionScheduleID,
	}

	// Sesi gratis tidak perlu query sumber apa pun
	if facts.SessionIsFreeForAll || facts.SessionPricingType == sessionModel.LiveSessionPricingFree {
		return facts, nil
	}

	// 🔍 Course enrollment aktif
	var enrollCount int64
	if err := s.DB.Model(&courseModel.CourseEnrollmentModel{}).
		Where("course_enrollment_user_id = ? AND course_enrollment_course_id = ? AND course_enrollment_status = ?",
			userID, sess.LiveSessionCourseID, courseModel.CourseEnrollmentStatusActive).
		Count(&enrollCount).Error; err != nil {
		return facts, fmt.Errorf("baca course enrollment: %w", constants.ErrTransientStorage)
	}
	facts.HasActiveCourseEnrollment = enrollCount > 0

	// 🔍 Pembelian satuan aktif untuk sesi ini
	var purchaseCount int64
	if err := s.DB.Model(&purchaseModel.SessionPurchaseModel{}).
		Where("session_purchase_user_id = ? AND session_purchase_session_id = ? AND session_purchase_status = ?",
			userID, sess.LiveSessionID, purchaseModel.PurchaseStatusActive).
		Count(&purchaseCount).Error; err != nil {
		return facts, fmt.Errorf("baca session purchase: %w", constants.ErrTransientStorage)
	}
	facts.HasActiveSessionPurchase = purchaseCount > 0

	// 🔍 Enrollment paket (hanya kalau sesi memang bagian dari paket)
	if sess.LiveSessionScheduleID != nil {
		var schedCount int64
		if err := s.DB.Model(&purchaseModel.ScheduleEnrollmentModel{}).
			Where("schedule_enrollment_user_id = ? AND schedule_enrollment_schedule_id = ? AND schedule_enrollment_status = ?",
				userID, *sess.LiveSessionScheduleID, purchaseModel.PurchaseStatusActive).
			Count(&schedCount).Error; err != nil {
			return facts, fmt.Errorf("baca schedule enrollment: %w", constants.ErrTransientStorage)
		}
		facts.HasActiveScheduleEnrollment = schedCount > 0
	}

	// 🔍 Langganan terbaru user + plan-nya. Filter masa berlaku dikerjakan
	//    Decide (pakai clock injectable), bukan SQL.
	var sub subsModel.SubscriptionModel
	err := s.DB.Preload("Plan").
		Where("subscription_user_id = ?", userID).
		Order("subscription_current_period_end DESC").
		First(&sub).Error
	switch {
	case err == nil:
		facts.SubscriptionStatus = sub.SubscriptionStatus
		facts.SubscriptionPeriodEnd = sub.SubscriptionCurrentPeriodEnd
		if sub.Plan != nil {
			facts.SubscriptionAllowsLive = sub.Plan.SubscriptionPlanAllowsLiveClass
		}
	case errors.Is(err, gorm.ErrRecordNotFound):
		// tidak punya langganan — biarkan kosong
	default:
		return facts, fmt.Errorf("baca subscription: %w", constants.ErrTransientStorage)
	}

	return facts, nil
}
