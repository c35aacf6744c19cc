package service

import (
	"testing"
	"time"

	"github.com/google/uuid"

	sessionModel "kelasku_backend/internals/features/liveclass/sessions/model"
	subsModel "kelasku_backend/internals/features/subscriptions/model"
)

var testNow = time.Date(2025, 6, 1, 10, 0, 0, 0, time.UTC)

func paidFacts() Facts {
	return Facts{SessionPricingType: sessionModel.LiveSessionPricingPaid}
}

func TestDecideFreeSession(t *testing.T) {
	cases := []struct {
		name  string
		facts Facts
	}{
		{"free_for_all flag", Facts{
			SessionIsFreeForAll: true,
			SessionPricingType:  sessionModel.LiveSessionPricingPaid,
		}},
		{"pricing free", Facts{
			SessionPricingType: sessionModel.LiveSessionPricingFree,
		}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			d := Decide(testNow, tc.facts)
			if !d.Granted || d.Reason != ReasonFree {
				t.Fatalf("Decide = %+v, mau granted dengan reason free", d)
			}
		})
	}
}

// Properti any-of: subset mana pun dari sumber yang berisi minimal satu true
// harus granted; subset kosong harus ditolak.
func TestDecideAnyOfSources(t *testing.T) {
	scheduleID := uuid.New()

	type sources struct {
		course, purchase, schedule, subscription bool
	}

	build := func(s sources) Facts {
		f := paidFacts()
		f.HasActiveCourseEnrollment = s.course
		f.HasActiveSessionPurchase = s.purchase
		if s.schedule {
			f.SessionScheduleID = &scheduleID
			f.HasActiveScheduleEnrollment = true
		}
		if s.subscription {
			f.SubscriptionStatus = subsModel.SubscriptionStatusActive
			f.SubscriptionPeriodEnd = testNow.Add(24 * time.Hour)
			f.SubscriptionAllowsLive = true
		}
		return f
	}

	// semua 16 kombinasi
	for mask := 0; mask < 16; mask++ {
		s := sources{
			course:       mask&1 != 0,
			purchase:     mask&2 != 0,
			schedule:     mask&4 != 0,
			subscription: mask&8 != 0,
		}
		wantGranted := mask != 0

		d := Decide(testNow, build(s))
		if d.Granted != wantGranted {
			t.Errorf("sources %+v: granted = %v, mau %v", s, d.Granted, wantGranted)
		}
		if !wantGranted && d.Reason != ReasonNone {
			t.Errorf("subset kosong: reason = %s, mau none", d.Reason)
		}
	}
}

// Urutan presedensi display: free → course → purchase → schedule → subscription.
func TestDecideReasonPrecedence(t *testing.T) {
	scheduleID := uuid.New()

	f := paidFacts()
	f.HasActiveCourseEnrollment = true
	f.HasActiveSessionPurchase = true
	f.SessionScheduleID = &scheduleID
	f.HasActiveScheduleEnrollment = true
	f.SubscriptionStatus = subsModel.SubscriptionStatusActive
	f.SubscriptionPeriodEnd = testNow.Add(time.Hour)
	f.SubscriptionAllowsLive = true

	steps := []struct {
		want  Reason
		strip func(*Facts)
	}{
		{ReasonCourseEnrollment, func(f *Facts) { f.HasActiveCourseEnrollment = false }},
		{ReasonDirectPurchase, func(f *Facts) { f.HasActiveSessionPurchase = false }},
		{ReasonScheduleEnrollment, func(f *Facts) { f.HasActiveScheduleEnrollment = false }},
		{ReasonSubscription, func(f *Facts) { f.SubscriptionAllowsLive = false }},
		{ReasonNone, nil},
	}

	for _, step := range steps {
		d := Decide(testNow, f)
		if d.Reason != step.want {
			t.Fatalf("reason = %s, mau %s", d.Reason, step.want)
		}
		if step.strip != nil {
			step.strip(&f)
		}
	}
}

// Langganan expired tidak pernah memberi akses, walau statusnya masih active.
func TestDecideExpiredSubscriptionExcluded(t *testing.T) {
	f := paidFacts()
	f.SubscriptionStatus = subsModel.SubscriptionStatusActive
	f.SubscriptionAllowsLive = true
	f.SubscriptionPeriodEnd = testNow.Add(-time.Minute)

	if d := Decide(testNow, f); d.Granted {
		t.Fatalf("subscription expired tetap granted: %+v", d)
	}

	// tepat di batas: period end == now juga ditolak (harus > now)
	f.SubscriptionPeriodEnd = testNow
	if d := Decide(testNow, f); d.Granted {
		t.Fatalf("period end == now tetap granted: %+v", d)
	}
}

func TestDecideSubscriptionRules(t *testing.T) {
	valid := func() Facts {
		f := paidFacts()
		f.SubscriptionStatus = subsModel.SubscriptionStatusActive
		f.SubscriptionPeriodEnd = testNow.Add(time.Hour)
		f.SubscriptionAllowsLive = true
		return f
	}

	cases := []struct {
		name    string
		mutate  func(*Facts)
		granted bool
	}{
		{"active valid", func(f *Facts) {}, true},
		{"trialing valid", func(f *Facts) { f.SubscriptionStatus = subsModel.SubscriptionStatusTrialing }, true},
		{"subscription_only session", func(f *Facts) { f.SessionPricingType = sessionModel.LiveSessionPricingSubscriptionOnly }, true},
		{"cancelled", func(f *Facts) { f.SubscriptionStatus = subsModel.SubscriptionStatusCancelled }, false},
		{"plan tanpa akses live", func(f *Facts) { f.SubscriptionAllowsLive = false }, false},
		{"tidak punya langganan", func(f *Facts) { f.SubscriptionStatus = "" }, false},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			f := valid()
			tc.mutate(&f)
			if d := Decide(testNow, f); d.Granted != tc.granted {
				t.Fatalf("granted = %v, mau %v (%+v)", d.Granted, tc.granted, d)
			}
		})
	}
}

// Skenario paket: enrollment paket hanya membuka sesi milik paket itu.
func TestDecideScheduleEnrollmentScoped(t *testing.T) {
	owned := uuid.New()

	// sesi di dalam paket yang dibeli
	f := paidFacts()
	f.SessionScheduleID = &owned
	f.HasActiveScheduleEnrollment = true
	if d := Decide(testNow, f); !d.Granted || d.Reason != ReasonScheduleEnrollment {
		t.Fatalf("sesi dalam paket: %+v", d)
	}

	// sesi paket lain: loader tidak akan menemukan enrollment untuk schedule
	// itu, jadi flag-nya false
	g := paidFacts()
	other := uuid.New()
	g.SessionScheduleID = &other
	g.HasActiveScheduleEnrollment = false
	if d := Decide(testNow, g); d.Granted {
		t.Fatalf("sesi paket lain ikut granted: %+v", d)
	}

	// sesi tanpa paket: flag schedule diabaikan sama sekali
	h := paidFacts()
	h.SessionScheduleID = nil
	h.HasActiveScheduleEnrollment = true
	if d := Decide(testNow, h); d.Granted {
		t.Fatalf("sesi tanpa paket granted lewat schedule: %+v", d)
	}
}
