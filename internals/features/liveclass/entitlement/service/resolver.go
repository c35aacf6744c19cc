package service

import (
	"time"

	"github.com/google/uuid"

	sessionModel "kelasku_backend/internals/features/liveclass/sessions/model"
	subsModel "kelasku_backend/internals/features/subscriptions/model"
)

// Reason: alasan akses untuk ditampilkan ke user. Urutan presedensi hanya
// untuk display — keputusan boolean-nya tetap OR dari semua sumber.
type Reason string

const (
	ReasonFree               Reason = "free"
	ReasonCourseEnrollment   Reason = "course_enrollment"
	ReasonDirectPurchase     Reason = "direct_purchase"
	ReasonScheduleEnrollment Reason = "schedule_enrollment"
	ReasonSubscription       Reason = "subscription"
	ReasonNone               Reason = "none"
)

type Decision struct {
	Granted bool   `json:"granted"`
	Reason  Reason `json:"reason"`
}

// Facts: snapshot semua sumber akses untuk satu (user, sesi), dimuat dari
// storage oleh EntitlementService. Decide murni di atas snapshot ini supaya
// aturan bisnisnya bisa diuji tanpa database.
type Facts struct {
	SessionIsFreeForAll bool
	SessionPricingType  string
	SessionScheduleID   *uuid.UUID

	HasActiveCourseEnrollment   bool
	HasActiveSessionPurchase    bool
	HasActiveScheduleEnrollment bool

	// "" kalau user tidak punya langganan sama sekali
	SubscriptionStatus     string
	SubscriptionPeriodEnd  time.Time
	SubscriptionAllowsLive bool
}

// Decide: SATU-SATUNYA jalur keputusan entitlement. Join, detail sesi, dan
// gate rekaman semua lewat sini — jangan tambah pengecekan inline di
// controller, dua call site yang tidak sinkron itu bug korektness.
func Decide(now time.Time, f Facts) Decision {
	// 1) Gratis untuk semua
	if f.SessionIsFreeForAll || f.SessionPricingType == sessionModel.LiveSessionPricingFree {
		return Decision{Granted: true, Reason: ReasonFree}
	}

	// 2) Enrollment course pemilik sesi
	if f.HasActiveCourseEnrollment {
		return Decision{Granted: true, Reason: ReasonCourseEnrollment}
	}

	// 3) Pembelian satuan sesi ini
	if f.HasActiveSessionPurchase {
		return Decision{Granted: true, Reason: ReasonDirectPurchase}
	}

	// 4) Enrollment paket yang memuat sesi ini
	if f.SessionScheduleID != nil && f.HasActiveScheduleEnrollment {
		return Decision{Granted: true, Reason: ReasonScheduleEnrollment}
	}

	// 5) Langganan platform — hanya untuk sesi paid/subscription_only, dan
	//    hanya selama periodenya masih berjalan. Status "active" dengan
	//    period end lewat TIDAK memberi akses.
	if subscriptionCoversSession(now, f) {
		return Decision{Granted: true, Reason: ReasonSubscription}
	}

	return Decision{Granted: false, Reason: ReasonNone}
}

func subscriptionCoversSession(now time.Time, f Facts) bool {
	if f.SessionPricingType != sessionModel.LiveSessionPricingPaid &&
		f.SessionPricingType != sessionModel.LiveSessionPricingSubscriptionOnly {
		return false
	}
	if !f.SubscriptionAllowsLive {
		return false
	}
	if f.SubscriptionStatus != subsModel.SubscriptionStatusActive &&
		f.SubscriptionStatus != subsModel.SubscriptionStatusTrialing {
		return false
	}
	return f.SubscriptionPeriodEnd.After(now)
}
