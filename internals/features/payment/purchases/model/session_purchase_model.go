package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// Status pembelian. Hanya "active" yang memberi akses — refund/expired/
// cancelled tidak pernah memberi akses walau barisnya tidak dihapus.
const (
	PurchaseStatusPending   = "pending"
	PurchaseStatusActive    = "active"
	PurchaseStatusRefunded  = "refunded"
	PurchaseStatusCancelled = "cancelled"
	PurchaseStatusExpired   = "expired"
)

// SessionPurchaseModel: pembelian satuan, one-to-one dengan satu sesi.
type SessionPurchaseModel struct {
	SessionPurchaseID        uuid.UUID `gorm:"column:session_purchase_id;primaryKey;type:uuid;default:gen_random_uuid()" json:"session_purchase_id"`
	SessionPurchaseUserID    uuid.UUID `gorm:"column:session_purchase_user_id;type:uuid;not null;index" json:"session_purchase_user_id"`
	SessionPurchaseSessionID uuid.UUID `gorm:"column:session_purchase_session_id;type:uuid;not null;index" json:"session_purchase_session_id"`

	// 🧾 Referensi pembayaran (order id gateway, unik)
	SessionPurchaseOrderID string `gorm:"column:session_purchase_order_id;type:varchar(64);not null;uniqueIndex" json:"session_purchase_order_id"`

	SessionPurchaseAmount int64  `gorm:"column:session_purchase_amount;not null" json:"session_purchase_amount"`
	SessionPurchaseStatus string `gorm:"column:session_purchase_status;type:varchar(20);not null;default:'pending'" json:"session_purchase_status"`

	SessionPurchasePaidAt *time.Time `gorm:"column:session_purchase_paid_at" json:"session_purchase_paid_at"`

	// Snapshot payload notifikasi gateway terakhir (audit)
	SessionPurchaseGatewayPayload datatypes.JSON `gorm:"column:session_purchase_gateway_payload;type:jsonb" json:"-"`

	SessionPurchaseCreatedAt time.Time  `gorm:"column:session_purchase_created_at;autoCreateTime" json:"session_purchase_created_at"`
	SessionPurchaseUpdatedAt *time.Time `gorm:"column:session_purchase_updated_at;autoUpdateTime" json:"session_purchase_updated_at"`
}

func (SessionPurchaseModel) TableName() string {
	return "session_purchases"
}
