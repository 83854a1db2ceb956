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

	"go.uber.org/zap"
)

// moodleConnector Moodle令牌不过期，也没有refresh token
type moodleConnector struct {
	base
	cfg config.LMSConfig
}

func (m *moodleConnector) Authenticate(ctx context.Context, username, password string) (bool, error) {
	form := url.Values{}
	form.Set("username", username)
	form.Set("password", password)
	form.Set("service", "moodle_mobile_app")

	req, err := http.NewRequestWithContext(ctx, http.MethodPost,
		m.cfg.MoodleBaseURL+"/login/token.php", strings.NewReader(form.Encode()))
	if err != nil {
		return false, err
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := m.client.Do(req)
	if err != nil {
		logger.L().Error("Moodle authentication error", zap.Error(err))
		return false, nil
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		logger.L().Error("Moodle authentication error", zap.Int("status", resp.StatusCode))
		return false, nil
	}

	var data struct {
		Token string `json:"token"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&data); err != nil {
		logger.L().Error("Moodle authentication error", zap.Error(err))
		return false, nil
	}

	if data.Token == "" {
		return false, nil
	}

	if err := m.updateTokens(data.Token, "", nil); err != nil {
		return false, err
	}
	return true, nil
}

func (m *moodleConnector) GetCourses(ctx context.Context) ([]map[string]interface{}, error) {
	if !m.isConfigured() {
		return []map[string]interface{}{}, nil
	}

	params := url.Values{}
	params.Set("wstoken", m.integration().AccessToken)
	params.Set("wsfunction", "core_enrol_get_users_courses")
	params.Set("userid", fmt.Sprintf("%d", m.userID))
	params.Set("moodlewsrestformat", "json")

	var courses []map[string]interface{}
	if err := m.getJSON(ctx, params, &courses); err != nil {
		logger.L().Error("Error fetching Moodle courses", zap.Error(err))
		return []map[string]interface{}{}, nil
	}
	return courses, nil
}

func (m *moodleConnector) GetAssignments(ctx context.Context, courseID string) ([]map[string]interface{}, error) {
	if !m.isConfigured() {
		return []map[string]interface{}{}, nil
	}

	params := url.Values{}
	params.Set("wstoken", m.integration().AccessToken)
	params.Set("wsfunction", "mod_assign_get_assignments")
	params.Set("moodlewsrestformat", "json")
	if courseID != "" {
		params.Set("courseids[]", courseID)
	}

	var data struct {
		Courses []map[string]interface{} `json:"courses"`
	}
	if err := m.getJSON(ctx, params, &data); err != nil {
		logger.L().Error("Error fetching Moodle assignments", zap.Error(err))
		return []map[string]interface{}{}, nil
	}
	if data.Courses == nil {
		return []map[string]interface{}{}, nil
	}
	return data.Courses, nil
}

func (m *moodleConnector) getJSON(ctx context.Context, params url.Values, out interface{}) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet,
		m.cfg.MoodleBaseURL+"/webservice/rest/server.php?"+params.Encode(), nil)
	if err != nil {
		return err
	}

	resp, err := m.client.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("moodle API status %d", resp.StatusCode)
	}

	return json.NewDecoder(resp.Body).Decode(out)
}
