package model

import (
	"time"
)

type TaskStatus string

const (
	TaskPending   TaskStatus = "pending"
	TaskProgress  TaskStatus = "in_progress"
	TaskCompleted TaskStatus = "completed"
)

type TaskPriority string

const (
	PriorityLow    TaskPriority = "low"
	PriorityMedium TaskPriority = "medium"
	PriorityHigh   TaskPriority = "high"
)

// swagger:model Task
type Task struct {
	BaseModel
	Title       string       `gorm:"size:255;not null" json:"title"`
	Description string       `gorm:"type:text" json:"description"`
	DueDate     *time.Time   `json:"dueDate"`
	Status      TaskStatus   `gorm:"size:20;default:'pending'" json:"status"`
	Priority    TaskPriority `gorm:"size:20;default:'medium'" json:"priority"`
	Category    string       `gorm:"size:50" json:"category"`
	UserID      uint         `gorm:"index" json:"userId"`
	CompletedAt *time.Time   `json:"completedAt"`
}

func (Task) TableName() string {
	return "tasks"
}
