package service

import (
	"log"

	"github.com/bytedance/sonic"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"kelasku_backend/internals/features/home/notifications/model"
)

// Send menulis notifikasi in-app untuk user. Fire-and-forget: kegagalan
// hanya dicatat ke log dan TIDAK pernah menggagalkan operasi pemanggil
// (aktivasi pembelian / hasil join tidak boleh batal gara-gara notifikasi).
func Send(db *gorm.DB, userID uuid.UUID, kind, title string, payload map[string]interface{}, tags ...string) {
	if userID == uuid.Nil {
		return
	}

	var raw []byte
	if payload != nil {
		b, err := sonic.Marshal(payload)
		if err != nil {
			log.Printf("[ERROR] Gagal marshal payload notifikasi (%s): %v", kind, err)
		} else {
			raw = b
		}
	}

	notif := model.NotificationModel{
		NotificationUserID:  userID,
		NotificationKind:    kind,
		NotificationTitle:   title,
		NotificationPayload: raw,
		NotificationTags:    tags,
	}

	if err := db.Create(&notif).Error; err != nil {
		log.Printf("[ERROR] Gagal kirim notifikasi %s ke user %s: %v", kind, userID, err)
	}
}
