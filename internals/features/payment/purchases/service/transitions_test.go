package service

import (
	"testing"

	"kelasku_backend/internals/features/payment/purchases/model"
)

func TestCanTransition(t *testing.T) {
	cases := []struct {
		from, to string
		want     bool
	}{
		{model.PurchaseStatusPending, model.PurchaseStatusActive, true},
		{model.PurchaseStatusPending, model.PurchaseStatusExpired, true},
		{model.PurchaseStatusPending, model.PurchaseStatusCancelled, true},
		{model.PurchaseStatusActive, model.PurchaseStatusRefunded, true},

		// idempoten: status sama tidak dianggap transisi
		{model.PurchaseStatusActive, model.PurchaseStatusActive, false},
		{model.PurchaseStatusPending, model.PurchaseStatusPending, false},

		// status final tidak pernah bergerak
		{model.PurchaseStatusRefunded, model.PurchaseStatusActive, false},
		{model.PurchaseStatusExpired, model.PurchaseStatusActive, false},
		{model.PurchaseStatusCancelled, model.PurchaseStatusActive, false},

		// active tidak bisa mundur ke pending atau expired
		{model.PurchaseStatusActive, model.PurchaseStatusPending, false},
		{model.PurchaseStatusActive, model.PurchaseStatusExpired, false},

		// pending tidak boleh langsung refund (belum pernah dibayar)
		{model.PurchaseStatusPending, model.PurchaseStatusRefunded, false},
	}

	for _, tc := range cases {
		if got := CanTransition(tc.from, tc.to); got != tc.want {
			t.Errorf("CanTransition(%s, %s) = %v, mau %v", tc.from, tc.to, got, tc.want)
		}
	}
}

// Checkout kedua untuk pasangan yang sama harus terblokir selama masih ada
// baris pending/active — dua baris pending bisa sama-sama diaktifkan
// webhook masing-masing.
func TestHasOpenPurchase(t *testing.T) {
	cases := []struct {
		name     string
		statuses []string
		want     bool
	}{
		{"belum pernah beli", nil, false},
		{"pending memblokir", []string{model.PurchaseStatusPending}, true},
		{"active memblokir", []string{model.PurchaseStatusActive}, true},
		{"refund boleh beli ulang", []string{model.PurchaseStatusRefunded}, false},
		{"expired boleh beli ulang", []string{model.PurchaseStatusExpired}, false},
		{"cancelled boleh beli ulang", []string{model.PurchaseStatusCancelled}, false},
		{"riwayat campur tanpa yang hidup", []string{
			model.PurchaseStatusExpired,
			model.PurchaseStatusCancelled,
			model.PurchaseStatusRefunded,
		}, false},
		{"pending di tengah riwayat", []string{
			model.PurchaseStatusExpired,
			model.PurchaseStatusPending,
		}, true},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := HasOpenPurchase(tc.statuses); got != tc.want {
				t.Fatalf("HasOpenPurchase(%v) = %v, mau %v", tc.statuses, got, tc.want)
			}
		})
	}
}

func TestStatusFromGateway(t *testing.T) {
	cases := []struct {
		name        string
		txStatus    string
		fraudStatus string
		wantStatus  string
		wantOK      bool
	}{
		{"settlement", "settlement", "", model.PurchaseStatusActive, true},
		{"capture accept", "capture", "accept", model.PurchaseStatusActive, true},
		{"capture challenge ditahan", "capture", "challenge", "", false},
		{"expire", "expire", "", model.PurchaseStatusExpired, true},
		{"cancel", "cancel", "", model.PurchaseStatusCancelled, true},
		{"deny", "deny", "", model.PurchaseStatusCancelled, true},
		{"refund", "refund", "", model.PurchaseStatusRefunded, true},
		{"pending diabaikan", "pending", "", "", false},
		{"status asing diabaikan", "authorize", "", "", false},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, ok := StatusFromGateway(tc.txStatus, tc.fraudStatus)
			if ok != tc.wantOK || got != tc.wantStatus {
				t.Fatalf("StatusFromGateway(%s, %s) = (%s, %v), mau (%s, %v)",
					tc.txStatus, tc.fraudStatus, got, ok, tc.wantStatus, tc.wantOK)
			}
		})
	}
}
