package util

import "errors"

var (
	ErrUserNotFound         = errors.New("用户不存在")
	ErrEmailRegistered      = errors.New("该邮箱已被注册")
	ErrInvalidCredentials   = errors.New("邮箱或密码错误")
	ErrPermissionDenied     = errors.New("permission denied")
	ErrTaskNotFound         = errors.New("task not found")
	ErrScheduleNotFound     = errors.New("schedule not found")
	ErrSessionNotFound      = errors.New("study session not found")
	ErrSessionAlreadyEnded  = errors.New("study session already ended")
	ErrConversationNotFound = errors.New("conversation not found")
	ErrUnknownPlatform      = errors.New("unsupported LMS platform")
)
