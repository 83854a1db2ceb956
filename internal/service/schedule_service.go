package service

import (
	"naira_backend/internal/model"
	"naira_backend/internal/repository"
	"naira_backend/internal/util"

	"gorm.io/gorm"
)

type ScheduleService struct {
	ScheduleRepo *repository.ScheduleRepository
}

func NewScheduleService(scheduleRepo *repository.ScheduleRepository) *ScheduleService {
	return &ScheduleService{ScheduleRepo: scheduleRepo}
}

// CreateScheduleInput 创建课程表条目入参
type CreateScheduleInput struct {
	SubjectCode string `json:"subject_code" form:"subject_code"`
	Subject     string `json:"subject" form:"subject" binding:"required"`
	DayOfWeek   string `json:"day_of_week" form:"day_of_week" binding:"required"`
	StartTime   string `json:"start_time" form:"start_time" binding:"required"`
	EndTime     string `json:"end_time" form:"end_time" binding:"required"`
	Topic       string `json:"topic" form:"topic"`
	Location    string `json:"location" form:"location"`
	IsRecurring *bool  `json:"is_recurring" form:"is_recurring"`
}

func (s *ScheduleService) Create(userID uint, input CreateScheduleInput) (*model.Schedule, error) {
	recurring := true
	if input.IsRecurring != nil {
		recurring = *input.IsRecurring
	}

	schedule := &model.Schedule{
		UserID:      userID,
		SubjectCode: input.SubjectCode,
		Subject:     input.Subject,
		DayOfWeek:   model.Weekday(input.DayOfWeek),
		StartTime:   input.StartTime,
		EndTime:     input.EndTime,
		Topic:       input.Topic,
		Location:    input.Location,
		IsRecurring: recurring,
	}
	if err := s.ScheduleRepo.Create(schedule); err != nil {
		return nil, err
	}
	return schedule, nil
}

func (s *ScheduleService) List(userID uint) ([]*model.Schedule, error) {
	return s.ScheduleRepo.FindByUserID(userID)
}

func (s *ScheduleService) Delete(userID, scheduleID uint) error {
	schedule, err := s.ScheduleRepo.FindByID(scheduleID)
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return util.ErrScheduleNotFound
		}
		return err
	}
	if schedule.UserID != userID {
		return util.ErrPermissionDenied
	}
	return s.ScheduleRepo.Delete(scheduleID)
}
