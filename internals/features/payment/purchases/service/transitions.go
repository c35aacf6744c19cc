package service

import "kelasku_backend/internals/features/payment/purchases/model"

// Transisi status pembelian sebagai tabel murni. Aturan pokok: pending boleh
// ke mana saja, active hanya boleh ke refunded; status final tidak pernah
// bergerak lagi. Webhook yang datang dua kali atau telat jadi no-op, bukan
// korupsi status.
var allowedTransitions = map[string]map[string]bool{
	model.PurchaseStatusPending: {
		model.PurchaseStatusActive:    true,
		model.PurchaseStatusExpired:   true,
		model.PurchaseStatusCancelled: true,
	},
	model.PurchaseStatusActive: {
		model.PurchaseStatusRefunded: true,
	},
}

// HasOpenPurchase: guard checkout ganda. Pending ATAU active untuk pasangan
// (user, item) yang sama memblokir pembelian baru — pending yang menunggu
// webhook-nya sendiri bisa aktif belakangan, jadi baris kedua berarti
// potensi bayar dua kali. Status final (refunded/expired/cancelled) tidak
// menghalangi beli ulang.
func HasOpenPurchase(statuses []string) bool {
	for _, st := range statuses {
		if st == model.PurchaseStatusPending || st == model.PurchaseStatusActive {
			return true
		}
	}
	return false
}

func CanTransition(from, to string) bool {
	if from == to {
		return false
	}
	return allowedTransitions[from][to]
}

// StatusFromGateway memetakan transaction_status Midtrans ke status pembelian.
// ok=false berarti status gateway tidak perlu diproses (pending dsb).
func StatusFromGateway(transactionStatus, fraudStatus string) (string, bool) {
	switch transactionStatus {
	case "settlement":
		return model.PurchaseStatusActive, true
	case "capture":
		// capture kartu kredit baru sah kalau lolos FDS
		if fraudStatus == "challenge" {
			return "", false
		}
		return model.PurchaseStatusActive, true
	case "expire":
		return model.PurchaseStatusExpired, true
	case "cancel", "deny":
		return model.PurchaseStatusCancelled, true
	case "refund", "partial_refund", "chargeback":
		return model.PurchaseStatusRefunded, true
	default:
		return "", false
	}
}
