package model

import (
	"time"

	"github.com/google/uuid"
)

type SubscriptionPlanModel struct {
	SubscriptionPlanID   uuid.UUID `gorm:"column:subscription_plan_id;primaryKey;type:uuid;default:gen_random_uuid()" json:"subscription_plan_id"`
	SubscriptionPlanName string    `gorm:"column:subscription_plan_name;type:varchar(100);not null" json:"subscription_plan_name"`

	// 💰 Harga per periode (rupiah)
	SubscriptionPlanPrice int64 `gorm:"column:subscription_plan_price;not null;default:0" json:"subscription_plan_price"`

	// ✅ Plan ini memberi akses kelas live atau tidak
	SubscriptionPlanAllowsLiveClass bool `gorm:"column:subscription_plan_allows_live_class;default:false" json:"subscription_plan_allows_live_class"`

	SubscriptionPlanCreatedAt time.Time  `gorm:"column:subscription_plan_created_at;autoCreateTime" json:"subscription_plan_created_at"`
	SubscriptionPlanUpdatedAt *time.Time `gorm:"column:subscription_plan_updated_at;autoUpdateTime" json:"subscription_plan_updated_at"`
}

func (SubscriptionPlanModel) TableName() string {
	return "subscription_plans"
}
