package lms

import (
	"context"
	"naira_backend/internal/config"
	"naira_backend/internal/model"
	"naira_backend/internal/util"
	"net/http"
	"time"
)

// Connector LMS连接器，认证并只读拉取课程与作业
type Connector interface {
	Authenticate(ctx context.Context, username, password string) (bool, error)
	GetCourses(ctx context.Context) ([]map[string]interface{}, error)
	GetAssignments(ctx context.Context, courseID string) ([]map[string]interface{}, error)
}

// TokenStore 凭据持久化
type TokenStore interface {
	Find(userID uint, platform model.LMSPlatform) (*model.LMSIntegration, error)
	Save(integration *model.LMSIntegration) error
}

// New 按平台名创建连接器，不认识的平台返回 ErrUnknownPlatform
func New(platform string, userID uint, store TokenStore, cfg config.LMSConfig) (Connector, error) {
	client := &http.Client{Timeout: time.Duration(cfg.TimeoutSeconds) * time.Second}

	switch model.LMSPlatform(platform) {
	case model.PlatformMoodle:
		return &moodleConnector{
			base: base{userID: userID, platform: model.PlatformMoodle, store: store, client: client},
			cfg:  cfg,
		}, nil
	case model.PlatformBlackboard:
		return &blackboardConnector{
			base: base{userID: userID, platform: model.PlatformBlackboard, store: store, client: client},
			cfg:  cfg,
		}, nil
	}
	return nil, util.ErrUnknownPlatform
}

type base struct {
	userID   uint
	platform model.LMSPlatform
	store    TokenStore
	client   *http.Client
}

func (b *base) integration() *model.LMSIntegration {
	integration, err := b.store.Find(b.userID, b.platform)
	if err != nil {
		return nil
	}
	return integration
}

func (b *base) isConfigured() bool {
	integration := b.integration()
	return integration != nil && integration.AccessToken != ""
}

func (b *base) needsRefresh() bool {
	integration := b.integration()
	if integration == nil {
		return true
	}
	return integration.TokenExpiry != nil && !integration.TokenExpiry.After(time.Now())
}

func (b *base) updateTokens(accessToken, refreshToken string, expiry *time.Time) error {
	integration := b.integration()
	if integration == nil {
		integration = &model.LMSIntegration{
			UserID:   b.userID,
			Platform: b.platform,
		}
	}

	integration.AccessToken = accessToken
	integration.RefreshToken = refreshToken
	integration.TokenExpiry = expiry
	integration.LastSync = time.Now()
	integration.SyncStatus = "synced"
	return b.store.Save(integration)
}
