package lms

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"naira_backend/internal/config"
	"naira_backend/internal/model"
	"naira_backend/internal/util"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"
)

type memoryStore struct {
	integrations map[string]*model.LMSIntegration
}

func newMemoryStore() *memoryStore {
	return &memoryStore{integrations: map[string]*model.LMSIntegration{}}
}

func (s *memoryStore) key(userID uint, platform model.LMSPlatform) string {
	return fmt.Sprintf("%s/%d", platform, userID)
}

func (s *memoryStore) Find(userID uint, platform model.LMSPlatform) (*model.LMSIntegration, error) {
	integration, ok := s.integrations[s.key(userID, platform)]
	if !ok {
		return nil, errors.New("record not found")
	}
	return integration, nil
}

func (s *memoryStore) Save(integration *model.LMSIntegration) error {
	s.integrations[s.key(integration.UserID, integration.Platform)] = integration
	return nil
}

func testConfig(moodleURL, blackboardURL string) config.LMSConfig {
	return config.LMSConfig{
		MoodleBaseURL:          moodleURL,
		BlackboardBaseURL:      blackboardURL,
		BlackboardClientID:     "client",
		BlackboardClientSecret: "secret",
		TimeoutSeconds:         5,
	}
}

func TestNewRejectsUnknownPlatform(t *testing.T) {
	_, err := New("canvas", 1, newMemoryStore(), testConfig("", ""))
	if !errors.Is(err, util.ErrUnknownPlatform) {
		t.Fatalf("expected unknown platform error, got %v", err)
	}
}

func TestMoodleAuthenticateStoresToken(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/login/token.php" {
			t.Errorf("unexpected path %s", r.URL.Path)
		}
		if err := r.ParseForm(); err != nil {
			t.Fatalf("parse form: %v", err)
		}
		if r.PostForm.Get("service") != "moodle_mobile_app" {
			t.Errorf("unexpected service %q", r.PostForm.Get("service"))
		}
		json.NewEncoder(w).Encode(map[string]string{"token": "moodle-token"})
	}))
	defer server.Close()

	store := newMemoryStore()
	conn, err := New("moodle", 1, store, testConfig(server.URL, ""))
	if err != nil {
		t.Fatalf("new: %v", err)
	}

	ok, err := conn.Authenticate(context.Background(), "student", "secret")
	if err != nil {
		t.Fatalf("authenticate: %v", err)
	}
	if !ok {
		t.Fatal("expected successful authentication")
	}

	integration, err := store.Find(1, model.PlatformMoodle)
	if err != nil {
		t.Fatalf("find: %v", err)
	}
	if integration.AccessToken != "moodle-token" {
		t.Errorf("unexpected token %q", integration.AccessToken)
	}
	if integration.SyncStatus != "synced" {
		t.Errorf("unexpected sync status %q", integration.SyncStatus)
	}
	if integration.TokenExpiry != nil {
		t.Error("moodle tokens must not expire")
	}
}

func TestMoodleAuthenticateFailureIsSoft(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer server.Close()

	conn, _ := New("moodle", 1, newMemoryStore(), testConfig(server.URL, ""))

	ok, err := conn.Authenticate(context.Background(), "student", "bad")
	if err != nil {
		t.Fatalf("soft failure must not return error, got %v", err)
	}
	if ok {
		t.Fatal("expected failed authentication")
	}
}

func TestMoodleGetCoursesUnconfigured(t *testing.T) {
	conn, _ := New("moodle", 1, newMemoryStore(), testConfig("http://moodle.invalid", ""))

	courses, err := conn.GetCourses(context.Background())
	if err != nil {
		t.Fatalf("get courses: %v", err)
	}
	if len(courses) != 0 {
		t.Errorf("expected empty courses, got %v", courses)
	}
}

func TestMoodleGetCourses(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/webservice/rest/server.php" {
			t.Errorf("unexpected path %s", r.URL.Path)
		}
		if r.URL.Query().Get("wstoken") != "moodle-token" {
			t.Errorf("unexpected token %q", r.URL.Query().Get("wstoken"))
		}
		if r.URL.Query().Get("wsfunction") != "core_enrol_get_users_courses" {
			t.Errorf("unexpected function %q", r.URL.Query().Get("wsfunction"))
		}
		json.NewEncoder(w).Encode([]map[string]interface{}{
			{"id": 1, "fullname": "Programming Fundamentals"},
		})
	}))
	defer server.Close()

	store := newMemoryStore()
	store.Save(&model.LMSIntegration{
		UserID:      1,
		Platform:    model.PlatformMoodle,
		AccessToken: "moodle-token",
	})
	conn, _ := New("moodle", 1, store, testConfig(server.URL, ""))

	courses, err := conn.GetCourses(context.Background())
	if err != nil {
		t.Fatalf("get courses: %v", err)
	}
	if len(courses) != 1 || courses[0]["fullname"] != "Programming Fundamentals" {
		t.Errorf("unexpected courses %v", courses)
	}
}

func TestMoodleGetCoursesDegradesToEmpty(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer server.Close()

	store := newMemoryStore()
	store.Save(&model.LMSIntegration{
		UserID:      1,
		Platform:    model.PlatformMoodle,
		AccessToken: "moodle-token",
	})
	conn, _ := New("moodle", 1, store, testConfig(server.URL, ""))

	courses, err := conn.GetCourses(context.Background())
	if err != nil {
		t.Fatalf("upstream failure must degrade, got %v", err)
	}
	if len(courses) != 0 {
		t.Errorf("expected empty courses, got %v", courses)
	}
}

func TestBlackboardAuthenticate(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/learn/api/public/v1/oauth2/token" {
			t.Errorf("unexpected path %s", r.URL.Path)
		}
		user, pass, ok := r.BasicAuth()
		if !ok || user != "client" || pass != "secret" {
			t.Errorf("expected client basic auth, got %q/%q", user, pass)
		}
		if err := r.ParseForm(); err != nil {
			t.Fatalf("parse form: %v", err)
		}
		if r.PostForm.Get("grant_type") != "password" {
			t.Errorf("unexpected grant type %q", r.PostForm.Get("grant_type"))
		}
		json.NewEncoder(w).Encode(blackboardToken{
			AccessToken:  "bb-access",
			RefreshToken: "bb-refresh",
			ExpiresIn:    3600,
		})
	}))
	defer server.Close()

	store := newMemoryStore()
	conn, _ := New("blackboard", 2, store, testConfig("", server.URL))

	ok, err := conn.Authenticate(context.Background(), "student", "secret")
	if err != nil {
		t.Fatalf("authenticate: %v", err)
	}
	if !ok {
		t.Fatal("expected successful authentication")
	}

	integration, err := store.Find(2, model.PlatformBlackboard)
	if err != nil {
		t.Fatalf("find: %v", err)
	}
	if integration.AccessToken != "bb-access" || integration.RefreshToken != "bb-refresh" {
		t.Errorf("unexpected tokens %+v", integration)
	}
	if integration.TokenExpiry == nil || !integration.TokenExpiry.After(time.Now()) {
		t.Errorf("expected future expiry, got %v", integration.TokenExpiry)
	}
}

func TestBlackboardLazyRefreshOnExpiredToken(t *testing.T) {
	refreshed := false
	mux := http.NewServeMux()
	mux.HandleFunc("/learn/api/public/v1/oauth2/token", func(w http.ResponseWriter, r *http.Request) {
		if err := r.ParseForm(); err != nil {
			t.Fatalf("parse form: %v", err)
		}
		if r.PostForm.Get("grant_type") != "refresh_token" {
			t.Errorf("unexpected grant type %q", r.PostForm.Get("grant_type"))
		}
		if r.PostForm.Get("refresh_token") != "old-refresh" {
			t.Errorf("unexpected refresh token %q", r.PostForm.Get("refresh_token"))
		}
		refreshed = true
		json.NewEncoder(w).Encode(blackboardToken{
			AccessToken:  "new-access",
			RefreshToken: "new-refresh",
			ExpiresIn:    3600,
		})
	})
	mux.HandleFunc("/learn/api/public/v1/users/2/courses", func(w http.ResponseWriter, r *http.Request) {
		if r.Header.Get("Authorization") != "Bearer new-access" {
			t.Errorf("expected refreshed token, got %q", r.Header.Get("Authorization"))
		}
		json.NewEncoder(w).Encode(map[string]interface{}{
			"results": []map[string]interface{}{{"id": "c1", "name": "Databases"}},
		})
	})
	server := httptest.NewServer(mux)
	defer server.Close()

	expired := time.Now().Add(-time.Hour)
	store := newMemoryStore()
	store.Save(&model.LMSIntegration{
		UserID:       2,
		Platform:     model.PlatformBlackboard,
		AccessToken:  "old-access",
		RefreshToken: "old-refresh",
		TokenExpiry:  &expired,
	})
	conn, _ := New("blackboard", 2, store, testConfig("", server.URL))

	courses, err := conn.GetCourses(context.Background())
	if err != nil {
		t.Fatalf("get courses: %v", err)
	}
	if !refreshed {
		t.Fatal("expected token refresh before fetching")
	}
	if len(courses) != 1 || courses[0]["name"] != "Databases" {
		t.Errorf("unexpected courses %v", courses)
	}
}

func TestBlackboardRefreshFailureDegradesToEmpty(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
	}))
	defer server.Close()

	expired := time.Now().Add(-time.Hour)
	store := newMemoryStore()
	store.Save(&model.LMSIntegration{
		UserID:       2,
		Platform:     model.PlatformBlackboard,
		AccessToken:  "old-access",
		RefreshToken: "old-refresh",
		TokenExpiry:  &expired,
	})
	conn, _ := New("blackboard", 2, store, testConfig("", server.URL))

	courses, err := conn.GetCourses(context.Background())
	if err != nil {
		t.Fatalf("refresh failure must degrade, got %v", err)
	}
	if len(courses) != 0 {
		t.Errorf("expected empty courses, got %v", courses)
	}
}
