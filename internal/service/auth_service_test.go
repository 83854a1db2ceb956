package service

import (
	"errors"
	"naira_backend/internal/config"
	"naira_backend/internal/model"
	"naira_backend/internal/repository"
	"naira_backend/internal/util"
	"testing"
	"time"
)

func newAuthService(t *testing.T) *AuthService {
	t.Helper()
	cfg := &config.Config{}
	cfg.JWT.Secret = "test-secret"
	cfg.JWT.ExpireTime = time.Hour
	return NewAuthService(repository.NewUserRepository(openTestDB(t)), cfg)
}

func TestRegisterAndLogin(t *testing.T) {
	svc := newAuthService(t)

	user := &model.User{Name: "Ada", Email: "ada@example.com", Password: "password123"}
	if err := svc.Register(user); err != nil {
		t.Fatalf("register: %v", err)
	}
	if user.Role != model.Student {
		t.Errorf("expected default student role, got %q", user.Role)
	}
	if user.Password == "password123" {
		t.Error("password must be hashed")
	}

	token, err := svc.Login("ada@example.com", "password123")
	if err != nil {
		t.Fatalf("login: %v", err)
	}
	if token == "" {
		t.Fatal("expected a token")
	}

	claims, err := util.ParseJWT(token, "test-secret")
	if err != nil {
		t.Fatalf("parse token: %v", err)
	}
	if claims.UserID != user.ID {
		t.Errorf("expected user %d in claims, got %d", user.ID, claims.UserID)
	}
}

func TestRegisterDuplicateEmail(t *testing.T) {
	svc := newAuthService(t)

	if err := svc.Register(&model.User{Name: "Ada", Email: "dup@example.com", Password: "password123"}); err != nil {
		t.Fatalf("register: %v", err)
	}
	err := svc.Register(&model.User{Name: "Other", Email: "dup@example.com", Password: "password456"})
	if !errors.Is(err, util.ErrEmailRegistered) {
		t.Errorf("expected duplicate email error, got %v", err)
	}
}

func TestLoginWrongCredentials(t *testing.T) {
	svc := newAuthService(t)

	if err := svc.Register(&model.User{Name: "Ada", Email: "ada@example.com", Password: "password123"}); err != nil {
		t.Fatalf("register: %v", err)
	}

	if _, err := svc.Login("ada@example.com", "wrong"); !errors.Is(err, util.ErrInvalidCredentials) {
		t.Errorf("expected invalid credentials, got %v", err)
	}
	if _, err := svc.Login("nobody@example.com", "password123"); !errors.Is(err, util.ErrInvalidCredentials) {
		t.Errorf("expected invalid credentials for unknown email, got %v", err)
	}
}
