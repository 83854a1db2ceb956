package service

import (
	"naira_backend/internal/model"
	"naira_backend/internal/repository"
	"naira_backend/internal/util"
	"time"

	"gorm.io/gorm"
)

type StudySessionService struct {
	SessionRepo *repository.StudySessionRepository
}

func NewStudySessionService(sessionRepo *repository.StudySessionRepository) *StudySessionService {
	return &StudySessionService{SessionRepo: sessionRepo}
}

// StartSessionInput 开始学习会话入参
type StartSessionInput struct {
	Subject string `json:"subject" form:"subject" binding:"required"`
	Goals   string `json:"goals" form:"goals"`
}

func (s *StudySessionService) Start(userID uint, input StartSessionInput) (*model.StudySession, error) {
	session := &model.StudySession{
		UserID:    userID,
		Subject:   input.Subject,
		StartTime: time.Now(),
		Status:    model.SessionActive,
		Goals:     input.Goals,
	}
	if err := s.SessionRepo.Create(session); err != nil {
		return nil, err
	}
	return session, nil
}

func (s *StudySessionService) List(userID uint) ([]*model.StudySession, error) {
	return s.SessionRepo.FindByUserID(userID)
}

// EndSessionInput 结束学习会话入参
type EndSessionInput struct {
	ProductivityRating *int   `json:"productivity_rating" form:"productivity_rating"`
	Notes              string `json:"notes" form:"notes"`
}

// End 结束会话并固化时长（整分钟），重复结束返回业务错误
func (s *StudySessionService) End(userID, sessionID uint, input EndSessionInput) (*model.StudySession, error) {
	session, err := s.SessionRepo.FindByID(sessionID)
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, util.ErrSessionNotFound
		}
		return nil, err
	}
	if session.UserID != userID {
		return nil, util.ErrPermissionDenied
	}
	if session.EndTime != nil {
		return nil, util.ErrSessionAlreadyEnded
	}

	now := time.Now()
	session.EndTime = &now
	session.Duration = int(now.Sub(session.StartTime).Seconds()) / 60
	session.Status = model.SessionCompleted
	if input.ProductivityRating != nil {
		session.ProductivityRating = input.ProductivityRating
	}
	if input.Notes != "" {
		session.Notes = input.Notes
	}

	if err := s.SessionRepo.Update(session); err != nil {
		return nil, err
	}
	return session, nil
}
