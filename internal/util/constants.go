package util

// 时间格式常量
const (
	DateFormat     = "2006-01-02"
	TimeFormat     = "15:04"
	DateTimeFormat = "2006-01-02 15:04:05"
	SlashDate      = "02/01/2006"
)
