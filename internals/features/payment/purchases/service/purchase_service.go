package service

import (
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"kelasku_backend/internals/constants"
	notifModel "kelasku_backend/internals/features/home/notifications/model"
	notification "kelasku_backend/internals/features/home/notifications/service"
	entitlement "kelasku_backend/internals/features/liveclass/entitlement/service"
	sessionModel "kelasku_backend/internals/features/liveclass/sessions/model"
	"kelasku_backend/internals/features/payment/purchases/model"
)

// PurchaseService: lifecycle pembelian sesi satuan & paket. Checkout membuat
// baris pending + Snap token; status hanya bergerak lewat webhook sesuai
// tabel transisi. Aktivasi idempoten — notifikasi kembar tidak menambah
// sold_count dua kali.
type PurchaseService struct {
	DB          *gorm.DB
	Entitlement *entitlement.EntitlementService

	Now func() time.Time
}

func NewPurchaseService(db *gorm.DB) *PurchaseService {
	return &PurchaseService{
		DB:          db,
		Entitlement: entitlement.NewEntitlementService(db),
		Now:         time.Now,
	}
}

/* ===================== CHECKOUT SESI ===================== */

type CheckoutResult struct {
	OrderID     string `json:"order_id"`
	Amount      int64  `json:"amount"`
	SnapToken   string `json:"snap_token"`
	RedirectURL string `json:"redirect_url"`
}

// CheckoutSession membuat pembelian pending untuk satu sesi berbayar.
// User yang sudah punya akses (dari jalur mana pun) ditolak dengan
// ErrAlreadyEntitled supaya tidak bayar dua kali.
func (s *PurchaseService) CheckoutSession(userID, sessionID uuid.UUID) (*CheckoutResult, error) {
	decision, sess, err := s.Entitlement.Resolve(userID, sessionID)
	if err != nil {
		return nil, err
	}
	if decision.Granted {
		return nil, fmt.Errorf("sudah punya akses via %s: %w", decision.Reason, constants.ErrAlreadyEntitled)
	}
	if sess.LiveSessionPricingType != sessionModel.LiveSessionPricingPaid {
		return nil, fmt.Errorf("sesi %s tidak dijual satuan: %w", sess.LiveSessionPricingType, constants.ErrInvalidState)
	}
	if !sess.IsJoinable() {
		return nil, fmt.Errorf("sesi %s: %w", sess.LiveSessionStatus, constants.ErrInvalidState)
	}

	purchase := model.SessionPurchaseModel{
		SessionPurchaseUserID:    userID,
		SessionPurchaseSessionID: sessionID,
		SessionPurchaseOrderID:   NewSessionOrderID(),
		SessionPurchaseAmount:    sess.LiveSessionPrice,
		SessionPurchaseStatus:    model.PurchaseStatusPending,
	}

	// Guard checkout ganda di dalam transaksi, serialized lewat lock baris
	// sesi: pending yang sudah ada juga memblokir (resolver hanya melihat
	// active), supaya tidak pernah ada dua baris yang bisa sama-sama aktif.
	err = s.DB.Transaction(func(tx *gorm.DB) error {
		var locked sessionModel.LiveSessionModel
		if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			First(&locked, "live_session_id = ?", sessionID).Error; err != nil {
			return err
		}

		var statuses []string
		if err := tx.Model(&model.SessionPurchaseModel{}).
			Where("session_purchase_user_id = ? AND session_purchase_session_id = ?",
				userID, sessionID).
			Pluck("session_purchase_status", &statuses).Error; err != nil {
			return err
		}
		if HasOpenPurchase(statuses) {
			return fmt.Errorf("masih ada pembelian berjalan untuk sesi ini: %w", constants.ErrAlreadyEntitled)
		}

		return tx.Create(&purchase).Error
	})
	if err != nil {
		if errors.Is(err, constants.ErrAlreadyEntitled) {
			return nil, err
		}
		return nil, fmt.Errorf("simpan pembelian: %w", constants.ErrTransientStorage)
	}

	token, redirect, err := GenerateSessionSnapToken(purchase, sess.LiveSessionTitle)
	if err != nil {
		return nil, fmt.Errorf("buat token pembayaran: %v", err)
	}

	return &CheckoutResult{
		OrderID:     purchase.SessionPurchaseOrderID,
		Amount:      purchase.SessionPurchaseAmount,
		SnapToken:   token,
		RedirectURL: redirect,
	}, nil
}

/* ===================== CHECKOUT PAKET ===================== */

// CheckoutSchedule membuat enrollment pending untuk satu paket.
func (s *PurchaseService) CheckoutSchedule(userID, scheduleID uuid.UUID) (*CheckoutResult, error) {
	var sched sessionModel.ScheduleModel
	if err := s.DB.First(&sched, "schedule_id = ?", scheduleID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("paket %s: %w", scheduleID, constants.ErrNotFound)
		}
		return nil, fmt.Errorf("baca paket: %w", constants.ErrTransientStorage)
	}
	if !sched.IsPurchasable() {
		return nil, fmt.Errorf("paket %s: %w", sched.ScheduleStatus, constants.ErrInvalidState)
	}

	enrollment := model.ScheduleEnrollmentModel{
		ScheduleEnrollmentUserID:     userID,
		ScheduleEnrollmentScheduleID: scheduleID,
		ScheduleEnrollmentOrderID:    NewScheduleOrderID(),
		ScheduleEnrollmentAmount:     sched.SchedulePrice,
		ScheduleEnrollmentStatus:     model.PurchaseStatusPending,
	}

	// guard ganda + kuota dalam satu transaksi, lock baris paket
	err := s.DB.Transaction(func(tx *gorm.DB) error {
		var locked sessionModel.ScheduleModel
		if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			First(&locked, "schedule_id = ?", scheduleID).Error; err != nil {
			return err
		}

		var statuses []string
		if err := tx.Model(&model.ScheduleEnrollmentModel{}).
			Where("schedule_enrollment_user_id = ? AND schedule_enrollment_schedule_id = ?",
				userID, scheduleID).
			Pluck("schedule_enrollment_status", &statuses).Error; err != nil {
			return err
		}
		if HasOpenPurchase(statuses) {
			return fmt.Errorf("masih ada pendaftaran berjalan untuk paket ini: %w", constants.ErrAlreadyEntitled)
		}

		// kuota paket dicek saat checkout; yang mengikat tetap aktivasi
		if locked.ScheduleMaxStudents != nil && locked.ScheduleEnrollmentCount >= *locked.ScheduleMaxStudents {
			return fmt.Errorf("kuota paket habis: %w", constants.ErrSessionFull)
		}

		return tx.Create(&enrollment).Error
	})
	if err != nil {
		if errors.Is(err, constants.ErrAlreadyEntitled) || errors.Is(err, constants.ErrSessionFull) {
			return nil, err
		}
		return nil, fmt.Errorf("simpan enrollment: %w", constants.ErrTransientStorage)
	}

	token, redirect, err := GenerateScheduleSnapToken(enrollment, sched.ScheduleTitle)
	if err != nil {
		return nil, fmt.Errorf("buat token pembayaran: %v", err)
	}

	return &CheckoutResult{
		OrderID:     enrollment.ScheduleEnrollmentOrderID,
		Amount:      enrollment.ScheduleEnrollmentAmount,
		SnapToken:   token,
		RedirectURL: redirect,
	}, nil
}

/* ===================== TRANSISI DARI WEBHOOK ===================== */

// ApplySessionPurchaseStatus menggerakkan satu pembelian sesi ke status baru.
// Idempoten: transisi yang tidak diizinkan tabel (termasuk status sama)
// di-skip tanpa error. sold_count naik tepat sekali, di transisi
// pending→active, dalam transaksi yang sama.
func (s *PurchaseService) ApplySessionPurchaseStatus(orderID, newStatus string, payload datatypes.JSON) error {
	return s.DB.Transaction(func(tx *gorm.DB) error {
		var purchase model.SessionPurchaseModel
		if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			First(&purchase, "session_purchase_order_id = ?", orderID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return fmt.Errorf("order %s: %w", orderID, constants.ErrNotFound)
			}
			return err
		}

		if !CanTransition(purchase.SessionPurchaseStatus, newStatus) {
			// webhook kembar / telat, bukan error
			return nil
		}

		activated := purchase.SessionPurchaseStatus == model.PurchaseStatusPending &&
			newStatus == model.PurchaseStatusActive

		purchase.SessionPurchaseStatus = newStatus
		if payload != nil {
			purchase.SessionPurchaseGatewayPayload = payload
		}
		if activated {
			now := s.Now()
			purchase.SessionPurchasePaidAt = &now
		}
		if err := tx.Save(&purchase).Error; err != nil {
			return err
		}

		if activated {
			if err := tx.Model(&sessionModel.LiveSessionModel{}).
				Where("live_session_id = ?", purchase.SessionPurchaseSessionID).
				UpdateColumn("live_session_sold_count", gorm.Expr("live_session_sold_count + 1")).Error; err != nil {
				return err
			}

			notification.Send(s.DB, purchase.SessionPurchaseUserID,
				notifModel.NotificationKindPurchaseActivated,
				"Pembelian sesi aktif", map[string]interface{}{
					"order_id":   purchase.SessionPurchaseOrderID,
					"session_id": purchase.SessionPurchaseSessionID,
				})
		}
		return nil
	})
}

// ApplyScheduleEnrollmentStatus: padanan paket. enrollment_count naik saat
// aktivasi, turun saat refund dari active.
func (s *PurchaseService) ApplyScheduleEnrollmentStatus(orderID, newStatus string, payload datatypes.JSON) error {
	return s.DB.Transaction(func(tx *gorm.DB) error {
		var enrollment model.ScheduleEnrollmentModel
		if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			First(&enrollment, "schedule_enrollment_order_id = ?", orderID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return fmt.Errorf("order %s: %w", orderID, constants.ErrNotFound)
			}
			return err
		}

		if !CanTransition(enrollment.ScheduleEnrollmentStatus, newStatus) {
			return nil
		}

		activated := enrollment.ScheduleEnrollmentStatus == model.PurchaseStatusPending &&
			newStatus == model.PurchaseStatusActive
		refunded := enrollment.ScheduleEnrollmentStatus == model.PurchaseStatusActive &&
			newStatus == model.PurchaseStatusRefunded

		enrollment.ScheduleEnrollmentStatus = newStatus
		if payload != nil {
			enrollment.ScheduleEnrollmentGatewayPayload = payload
		}
		if activated {
			now := s.Now()
			enrollment.ScheduleEnrollmentPaidAt = &now
		}
		if err := tx.Save(&enrollment).Error; err != nil {
			return err
		}

		counterDelta := 0
		if activated {
			counterDelta = 1
		} else if refunded {
			counterDelta = -1
		}
		if counterDelta != 0 {
			if err := tx.Model(&sessionModel.ScheduleModel{}).
				Where("schedule_id = ?", enrollment.ScheduleEnrollmentScheduleID).
				UpdateColumn("schedule_enrollment_count",
					gorm.Expr("GREATEST(schedule_enrollment_count + ?, 0)", counterDelta)).Error; err != nil {
				return err
			}
		}

		if activated {
			notification.Send(s.DB, enrollment.ScheduleEnrollmentUserID,
				notifModel.NotificationKindPurchaseActivated,
				"Pendaftaran paket aktif", map[string]interface{}{
					"order_id":    enrollment.ScheduleEnrollmentOrderID,
					"schedule_id": enrollment.ScheduleEnrollmentScheduleID,
				})
		}
		return nil
	})
}
