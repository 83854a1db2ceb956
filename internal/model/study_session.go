package model

import (
	"time"
)

type SessionStatus string

const (
	SessionActive    SessionStatus = "active"
	SessionCompleted SessionStatus = "completed"
)

// swagger:model StudySession
type StudySession struct {
	BaseModel
	UserID             uint          `gorm:"index" json:"userId"`
	Subject            string        `gorm:"size:100;not null" json:"subject"`
	StartTime          time.Time     `json:"startTime"`
	EndTime            *time.Time    `json:"endTime"`
	Duration           int           `gorm:"default:0" json:"duration"` // 分钟
	Status             SessionStatus `gorm:"size:20;default:'active'" json:"status"`
	ProductivityRating *int          `json:"productivityRating"` // 1-5
	Notes              string        `gorm:"type:text" json:"notes"`
	Goals              string        `gorm:"type:text" json:"goals"`
}

func (StudySession) TableName() string {
	return "study_sessions"
}
