package service

import (
	"naira_backend/internal/model"
	"naira_backend/internal/repository"
	"time"
)

type DashboardService struct {
	Tasks       *TaskService
	SessionRepo *repository.StudySessionRepository
}

func NewDashboardService(tasks *TaskService, sessionRepo *repository.StudySessionRepository) *DashboardService {
	return &DashboardService{
		Tasks:       tasks,
		SessionRepo: sessionRepo,
	}
}

// Overview 仪表盘汇总
type Overview struct {
	TaskCounts     map[string]int64            `json:"task_counts"`
	StudyMinutes   []repository.SubjectMinutes `json:"study_minutes"`
	RecentSessions []*model.StudySession       `json:"recent_sessions"`
}

// GetOverview 任务状态统计 + 近7天分科目学习时长 + 最近会话
func (s *DashboardService) GetOverview(userID uint) (*Overview, error) {
	counts, err := s.Tasks.CountsByStatus(userID)
	if err != nil {
		return nil, err
	}

	since := time.Now().AddDate(0, 0, -7)
	minutes, err := s.SessionRepo.MinutesBySubject(userID, since)
	if err != nil {
		return nil, err
	}

	recent, err := s.SessionRepo.Recent(userID, 5)
	if err != nil {
		return nil, err
	}

	return &Overview{
		TaskCounts:     counts,
		StudyMinutes:   minutes,
		RecentSessions: recent,
	}, nil
}
