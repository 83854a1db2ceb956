package model

import (
	"time"
)

type LMSPlatform string

const (
	PlatformMoodle     LMSPlatform = "moodle"
	PlatformBlackboard LMSPlatform = "blackboard"
)

// swagger:model LMSIntegration
type LMSIntegration struct {
	BaseModel
	UserID       uint        `gorm:"index:idx_user_platform,unique" json:"userId"`
	Platform     LMSPlatform `gorm:"size:20;index:idx_user_platform,unique" json:"platform"`
	AccessToken  string      `gorm:"size:512" json:"-"`
	RefreshToken string      `gorm:"size:512" json:"-"`
	TokenExpiry  *time.Time  `json:"tokenExpiry"`
	LastSync     time.Time   `json:"lastSync"`
	SyncStatus   string      `gorm:"size:20;default:'idle'" json:"syncStatus"`
}

func (LMSIntegration) TableName() string {
	return "lms_integrations"
}
