package service

import (
	"fmt"
	"log"
	"strings"

	"github.com/bytedance/sonic"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// HandlePaymentNotification dipanggil saat menerima notifikasi dari Midtrans.
// Dispatch pakai prefix order id: KLS-SESI-* = pembelian sesi satuan,
// KLS-PAKET-* = pendaftaran paket.
func HandlePaymentNotification(db *gorm.DB, body map[string]interface{}) error {
	orderID, ok1 := body["order_id"].(string)
	status, ok2 := body["transaction_status"].(string)
	if !ok1 || !ok2 {
		log.Println("[ERROR] Payload webhook tidak lengkap:", body)
		return fmt.Errorf("invalid payload")
	}
	fraudStatus, _ := body["fraud_status"].(string)

	log.Println("📄 Order ID:", orderID)
	log.Println("📌 Transaction Status:", status)

	newStatus, ok := StatusFromGateway(status, fraudStatus)
	if !ok {
		log.Println("[INFO] Status tidak diproses:", status)
		return nil
	}

	// snapshot payload mentah untuk audit
	var payload datatypes.JSON
	if raw, err := sonic.Marshal(body); err == nil {
		payload = datatypes.JSON(raw)
	}

	svc := NewPurchaseService(db)
	switch {
	case strings.HasPrefix(orderID, OrderIDPrefixSession):
		return svc.ApplySessionPurchaseStatus(orderID, newStatus, payload)
	case strings.HasPrefix(orderID, OrderIDPrefixSchedule):
		return svc.ApplyScheduleEnrollmentStatus(orderID, newStatus, payload)
	default:
		log.Println("[WARN] Order ID tidak dikenal:", orderID)
		return fmt.Errorf("order id %s tidak dikenal", orderID)
	}
}
