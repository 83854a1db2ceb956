package repository

import (
	"naira_backend/internal/model"

	"gorm.io/gorm"
)

type ScheduleRepository struct {
	DB *gorm.DB
}

func NewScheduleRepository(db *gorm.DB) *ScheduleRepository {
	return &ScheduleRepository{DB: db}
}

func (r *ScheduleRepository) Create(schedule *model.Schedule) error {
	return r.DB.Create(schedule).Error
}

func (r *ScheduleRepository) FindByID(id uint) (*model.Schedule, error) {
	var schedule model.Schedule
	err := r.DB.First(&schedule, id).Error
	return &schedule, err
}

func (r *ScheduleRepository) FindByUserID(userID uint) ([]*model.Schedule, error) {
	var schedules []*model.Schedule
	err := r.DB.Where("user_id = ?", userID).
		Order("day_of_week, start_time").
		Find(&schedules).Error
	return schedules, err
}

func (r *ScheduleRepository) Delete(id uint) error {
	return r.DB.Delete(&model.Schedule{}, id).Error
}
