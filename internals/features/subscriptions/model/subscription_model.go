package model

import (
	"time"

	"github.com/google/uuid"
)

// Status langganan. Yang memberi akses hanya active/trialing, dan itupun
// selama current_period_end masih di depan — status saja tidak cukup.
const (
	SubscriptionStatusActive    = "active"
	SubscriptionStatusTrialing  = "trialing"
	SubscriptionStatusCancelled = "cancelled"
)

type SubscriptionModel struct {
	SubscriptionID     uuid.UUID `gorm:"column:subscription_id;primaryKey;type:uuid;default:gen_random_uuid()" json:"subscription_id"`
	SubscriptionUserID uuid.UUID `gorm:"column:subscription_user_id;type:uuid;not null;index" json:"subscription_user_id"`
	SubscriptionPlanID uuid.UUID `gorm:"column:subscription_plan_id;type:uuid;not null" json:"subscription_plan_id"`

	SubscriptionStatus string `gorm:"column:subscription_status;type:varchar(20);not null;default:'active'" json:"subscription_status"`

	// ⏰ Batas periode berjalan (dibayar sampai kapan)
	SubscriptionCurrentPeriodEnd time.Time `gorm:"column:subscription_current_period_end;not null" json:"subscription_current_period_end"`

	SubscriptionCreatedAt time.Time  `gorm:"column:subscription_created_at;autoCreateTime" json:"subscription_created_at"`
	SubscriptionUpdatedAt *time.Time `gorm:"column:subscription_updated_at;autoUpdateTime" json:"subscription_updated_at"`

	// Relations
	Plan *SubscriptionPlanModel `gorm:"foreignKey:SubscriptionPlanID" json:"plan,omitempty"`
}

func (SubscriptionModel) TableName() string {
	return "subscriptions"
}
