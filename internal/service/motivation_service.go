package service

import (
	"naira_backend/internal/model"
	"naira_backend/internal/repository"
)

type MotivationService struct {
	MotivationRepo *repository.MotivationRepository
}

func NewMotivationService(motivationRepo *repository.MotivationRepository) *MotivationService {
	return &MotivationService{MotivationRepo: motivationRepo}
}

func (s *MotivationService) Current() (*model.Motivation, error) {
	return s.MotivationRepo.Current()
}
