package repository

import (
	"naira_backend/internal/model"

	"gorm.io/gorm"
)

type MotivationRepository struct {
	DB *gorm.DB
}

func NewMotivationRepository(db *gorm.DB) *MotivationRepository {
	return &MotivationRepository{DB: db}
}

// Current 当前启用的激励短句，未指定时回落到任意启用项
func (r *MotivationRepository) Current() (*model.Motivation, error) {
	var motivation model.Motivation
	err := r.DB.Where("is_enabled = ? AND is_currently_used = ?", true, true).
		First(&motivation).Error
	if err == gorm.ErrRecordNotFound {
		err = r.DB.Where("is_enabled = ?", true).First(&motivation).Error
	}
	return &motivation, err
}
