package service

import (
	"context"
	"encoding/json"
	"fmt"
	"naira_backend/internal/config"
	"naira_backend/internal/lms"
	"naira_backend/internal/repository"
	"time"

	"github.com/go-redis/redis/v8"
)

// LMSService 选择平台连接器，课程与作业结果带Redis缓存
type LMSService struct {
	LMSRepo *repository.LMSRepository
	Redis   *redis.Client
	Cfg     config.LMSConfig
}

func NewLMSService(lmsRepo *repository.LMSRepository, rdb *redis.Client, cfg config.LMSConfig) *LMSService {
	return &LMSService{
		LMSRepo: lmsRepo,
		Redis:   rdb,
		Cfg:     cfg,
	}
}

func (s *LMSService) connector(platform string, userID uint) (lms.Connector, error) {
	return lms.New(platform, userID, s.LMSRepo, s.Cfg)
}

func (s *LMSService) Authenticate(ctx context.Context, platform string, userID uint, username, password string) (bool, error) {
	connector, err := s.connector(platform, userID)
	if err != nil {
		return false, err
	}
	return connector.Authenticate(ctx, username, password)
}

func (s *LMSService) GetCourses(ctx context.Context, platform string, userID uint) ([]map[string]interface{}, error) {
	connector, err := s.connector(platform, userID)
	if err != nil {
		return nil, err
	}

	cacheKey := fmt.Sprintf("lms:courses:%s:%d", platform, userID)
	if cached, ok := s.fromCache(ctx, cacheKey); ok {
		return cached, nil
	}

	courses, err := connector.GetCourses(ctx)
	if err != nil {
		return nil, err
	}

	s.toCache(ctx, cacheKey, courses)
	return courses, nil
}

func (s *LMSService) GetAssignments(ctx context.Context, platform string, userID uint, courseID string) ([]map[string]interface{}, error) {
	connector, err := s.connector(platform, userID)
	if err != nil {
		return nil, err
	}

	cacheKey := fmt.Sprintf("lms:assignments:%s:%d:%s", platform, userID, courseID)
	if cached, ok := s.fromCache(ctx, cacheKey); ok {
		return cached, nil
	}

	assignments, err := connector.GetAssignments(ctx, courseID)
	if err != nil {
		return nil, err
	}

	s.toCache(ctx, cacheKey, assignments)
	return assignments, nil
}

func (s *LMSService) fromCache(ctx context.Context, key string) ([]map[string]interface{}, bool) {
	if s.Redis == nil {
		return nil, false
	}
	data, err := s.Redis.Get(ctx, key).Bytes()
	if err != nil {
		return nil, false
	}
	var result []map[string]interface{}
	if err := json.Unmarshal(data, &result); err != nil {
		return nil, false
	}
	return result, true
}

func (s *LMSService) toCache(ctx context.Context, key string, value []map[string]interface{}) {
	if s.Redis == nil || len(value) == 0 {
		return
	}
	if data, err := json.Marshal(value); err == nil {
		ttl := time.Duration(s.Cfg.CourseCacheMinutes) * time.Minute
		s.Redis.Set(ctx, key, data, ttl)
	}
}
