package lms

import (
	"context"
	"encoding/json"
	"fmt"
	"naira_backend/internal/config"
	"naira_backend/pkg/logger"
	"net/http"
	"net/url"
	"strings"
	"time"

	"go.uber.org/zap"
)

// blackboardConnector OAuth2密码模式，令牌过期前惰性刷新
type blackboardConnector struct {
	base
	cfg config.LMSConfig
}

type blackboardToken struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
	ExpiresIn    int    `json:"expires_in"`
}

func (b *blackboardConnector) Authenticate(ctx context.Context, username, password string) (bool, error) {
	form := url.Values{}
	form.Set("grant_type", "password")
	form.Set("username", username)
	form.Set("password", password)

	data, err := b.requestToken(ctx, form)
	if err != nil {
		logger.L().Error("Blackboard authentication error", zap.Error(err))
		return false, nil
	}
	if data.AccessToken == "" {
		return false, nil
	}

	expiry := time.Now().Add(time.Duration(data.ExpiresIn) * time.Second)
	if err := b.updateTokens(data.AccessToken, data.RefreshToken, &expiry); err != nil {
		return false, err
	}
	return true, nil
}

func (b *blackboardConnector) refreshAccessToken(ctx context.Context) bool {
	integration := b.integration()
	if integration == nil || integration.RefreshToken == "" {
		return false
	}

	form := url.Values{}
	form.Set("grant_type", "refresh_token")
	form.Set("refresh_token", integration.RefreshToken)

	data, err := b.requestToken(ctx, form)
	if err != nil {
		logger.L().Error("Error refreshing Blackboard token", zap.Error(err))
		return false
	}

	expiry := time.Now().Add(time.Duration(data.ExpiresIn) * time.Second)
	if err := b.updateTokens(data.AccessToken, data.RefreshToken, &expiry); err != nil {
		return false
	}
	return true
}

func (b *blackboardConnector) requestToken(ctx context.Context, form url.Values) (*blackboardToken, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost,
		b.cfg.BlackboardBaseURL+"/learn/api/public/v1/oauth2/token", strings.NewReader(form.Encode()))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	req.SetBasicAuth(b.cfg.BlackboardClientID, b.cfg.BlackboardClientSecret)

	resp, err := b.client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("blackboard token status %d", resp.StatusCode)
	}

	var data blackboardToken
	if err := json.NewDecoder(resp.Body).Decode(&data); err != nil {
		return nil, err
	}
	return &data, nil
}

func (b *blackboardConnector) GetCourses(ctx context.Context) ([]map[string]interface{}, error) {
	if !b.isConfigured() {
		return []map[string]interface{}{}, nil
	}
	if b.needsRefresh() && !b.refreshAccessToken(ctx) {
		return []map[string]interface{}{}, nil
	}

	var data struct {
		Results []map[string]interface{} `json:"results"`
	}
	path := fmt.Sprintf("/learn/api/public/v1/users/%d/courses", b.userID)
	if err := b.getJSON(ctx, path, &data); err != nil {
		logger.L().Error("Error fetching Blackboard courses", zap.Error(err))
		return []map[string]interface{}{}, nil
	}
	if data.Results == nil {
		return []map[string]interface{}{}, nil
	}
	return data.Results, nil
}

func (b *blackboardConnector) GetAssignments(ctx context.Context, courseID string) ([]map[string]interface{}, error) {
	if !b.isConfigured() {
		return []map[string]interface{}{}, nil
	}
	if b.needsRefresh() && !b.refreshAccessToken(ctx) {
		return []map[string]interface{}{}, nil
	}

	courseIDs := []string{}
	if courseID != "" {
		courseIDs = append(courseIDs, courseID)
	} else {
		courses, _ := b.GetCourses(ctx)
		for _, course := range courses {
			if id, ok := course["id"].(string); ok {
				courseIDs = append(courseIDs, id)
			}
		}
	}

	assignments := []map[string]interface{}{}
	for _, id := range courseIDs {
		var data struct {
			Results []map[string]interface{} `json:"results"`
		}
		path := fmt.Sprintf("/learn/api/public/v1/courses/%s/gradebook/columns", id)
		if err := b.getJSON(ctx, path, &data); err != nil {
			logger.L().Error("Error fetching Blackboard assignments", zap.Error(err))
			return []map[string]interface{}{}, nil
		}
		assignments = append(assignments, data.Results...)
	}
	return assignments, nil
}

func (b *blackboardConnector) getJSON(ctx context.Context, path string, out interface{}) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, b.cfg.BlackboardBaseURL+path, nil)
	if err != nil {
		return err
	}
	req.Header.Set("Authorization", "Bearer "+b.integration().AccessToken)

	resp, err := b.client.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("blackboard API status %d", resp.StatusCode)
	}

	return json.NewDecoder(resp.Body).Decode(out)
}
