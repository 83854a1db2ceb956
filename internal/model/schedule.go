package model

// Weekday 表示星期几
type Weekday string

const (
	Monday    Weekday = "monday"
	Tuesday   Weekday = "tuesday"
	Wednesday Weekday = "wednesday"
	Thursday  Weekday = "thursday"
	Friday    Weekday = "friday"
	Saturday  Weekday = "saturday"
	Sunday    Weekday = "sunday"
)

// swagger:model Schedule
type Schedule struct {
	BaseModel
	UserID      uint    `gorm:"index" json:"userId"`
	SubjectCode string  `gorm:"size:20" json:"subjectCode"`
	Subject     string  `gorm:"size:100;not null" json:"subject"`
	DayOfWeek   Weekday `gorm:"size:20;index" json:"dayOfWeek"`
	StartTime   string  `gorm:"size:10" json:"startTime"` // HH:MM
	EndTime     string  `gorm:"size:10" json:"endTime"`   // HH:MM
	Topic       string  `gorm:"size:255" json:"topic"`
	Location    string  `gorm:"size:100" json:"location"`
	IsRecurring bool    `gorm:"default:true" json:"isRecurring"`
}

func (Schedule) TableName() string {
	return "schedules"
}
