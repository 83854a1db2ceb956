package repository

import (
	"naira_backend/internal/model"

	"gorm.io/gorm"
)

// LMSRepository 实现 lms.TokenStore
type LMSRepository struct {
	DB *gorm.DB
}

func NewLMSRepository(db *gorm.DB) *LMSRepository {
	return &LMSRepository{DB: db}
}

func (r *LMSRepository) Find(userID uint, platform model.LMSPlatform) (*model.LMSIntegration, error) {
	var integration model.LMSIntegration
	err := r.DB.Where("user_id = ? AND platform = ?", userID, platform).
		First(&integration).Error
	if err != nil {
		return nil, err
	}
	return &integration, nil
}

func (r *LMSRepository) Save(integration *model.LMSIntegration) error {
	return r.DB.Save(integration).Error
}
