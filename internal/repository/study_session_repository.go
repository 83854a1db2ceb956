package repository

import (
	"naira_backend/internal/model"
	"time"

	"gorm.io/gorm"
)

type StudySessionRepository struct {
	DB *gorm.DB
}

func NewStudySessionRepository(db *gorm.DB) *StudySessionRepository {
	return &StudySessionRepository{DB: db}
}

func (r *StudySessionRepository) Create(session *model.StudySession) error {
	return r.DB.Create(session).Error
}

func (r *StudySessionRepository) FindByID(id uint) (*model.StudySession, error) {
	var session model.StudySession
	err := r.DB.First(&session, id).Error
	return &session, err
}

func (r *StudySessionRepository) FindByUserID(userID uint) ([]*model.StudySession, error) {
	var sessions []*model.StudySession
	err := r.DB.Where("user_id = ?", userID).Order("start_time DESC").Find(&sessions).Error
	return sessions, err
}

func (r *StudySessionRepository) Update(session *model.StudySession) error {
	return r.DB.Save(session).Error
}

// SubjectMinutes 某科目统计行
type SubjectMinutes struct {
	Subject string `json:"subject"`
	Minutes int    `json:"minutes"`
}

// MinutesBySubject 统计since之后已完成会话的学习分钟数
func (r *StudySessionRepository) MinutesBySubject(userID uint, since time.Time) ([]SubjectMinutes, error) {
	var rows []SubjectMinutes
	err := r.DB.Model(&model.StudySession{}).
		Select("subject, SUM(duration) as minutes").
		Where("user_id = ? AND status = ? AND start_time >= ?", userID, model.SessionCompleted, since).
		Group("subject").
		Scan(&rows).Error
	return rows, err
}

func (r *StudySessionRepository) Recent(userID uint, limit int) ([]*model.StudySession, error) {
	var sessions []*model.StudySession
	err := r.DB.Where("user_id = ?", userID).
		Order("start_time DESC").
		Limit(limit).
		Find(&sessions).Error
	return sessions, err
}
