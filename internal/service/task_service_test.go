package service

import (
	"errors"
	"naira_backend/internal/model"
	"naira_backend/internal/nlp"
	"naira_backend/internal/repository"
	"naira_backend/internal/util"
	"testing"
	"time"

	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
)

func openTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	if err := db.AutoMigrate(
		&model.User{},
		&model.Task{},
		&model.Schedule{},
		&model.StudySession{},
		&model.Conversation{},
		&model.Message{},
	); err != nil {
		t.Fatalf("automigrate: %v", err)
	}
	return db
}

func newTaskService(t *testing.T) *TaskService {
	t.Helper()
	return NewTaskService(repository.NewTaskRepository(openTestDB(t)))
}

func TestCreateTaskDefaults(t *testing.T) {
	svc := newTaskService(t)

	task, err := svc.Create(1, CreateTaskInput{Title: "Read chapter 3"})
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if task.Status != model.TaskPending {
		t.Errorf("expected pending status, got %q", task.Status)
	}
	if task.Priority != model.PriorityMedium {
		t.Errorf("expected medium priority, got %q", task.Priority)
	}
}

func TestUpdateTaskSetsCompletedAt(t *testing.T) {
	svc := newTaskService(t)

	task, err := svc.Create(1, CreateTaskInput{Title: "Finish lab"})
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	status := string(model.TaskCompleted)
	updated, err := svc.Update(1, task.ID, UpdateTaskInput{Status: &status})
	if err != nil {
		t.Fatalf("update: %v", err)
	}
	if updated.Status != model.TaskCompleted {
		t.Errorf("expected completed status, got %q", updated.Status)
	}
	if updated.CompletedAt == nil {
		t.Error("expected CompletedAt to be set")
	}
}

func TestTaskOwnership(t *testing.T) {
	svc := newTaskService(t)

	task, err := svc.Create(1, CreateTaskInput{Title: "Owned task"})
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	if _, err := svc.Update(2, task.ID, UpdateTaskInput{}); !errors.Is(err, util.ErrPermissionDenied) {
		t.Errorf("expected permission denied for other user, got %v", err)
	}
	if err := svc.Delete(1, 9999); !errors.Is(err, util.ErrTaskNotFound) {
		t.Errorf("expected not found for missing task, got %v", err)
	}
}

func TestToggleDeletesUnfinishedTask(t *testing.T) {
	svc := newTaskService(t)

	task, err := svc.Create(1, CreateTaskInput{Title: "Disposable"})
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	result, deleted, err := svc.Toggle(1, task.ID)
	if err != nil {
		t.Fatalf("toggle: %v", err)
	}
	if !deleted || result != nil {
		t.Fatalf("expected task to be deleted, got deleted=%v result=%v", deleted, result)
	}
	if _, err := svc.TaskRepo.FindByID(task.ID); !errors.Is(err, gorm.ErrRecordNotFound) {
		t.Errorf("expected row gone, got %v", err)
	}
}

func TestToggleReopensCompletedTask(t *testing.T) {
	svc := newTaskService(t)

	task, err := svc.Create(1, CreateTaskInput{Title: "Done already"})
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	status := string(model.TaskCompleted)
	if _, err := svc.Update(1, task.ID, UpdateTaskInput{Status: &status}); err != nil {
		t.Fatalf("update: %v", err)
	}

	result, deleted, err := svc.Toggle(1, task.ID)
	if err != nil {
		t.Fatalf("toggle: %v", err)
	}
	if deleted {
		t.Fatal("completed task must be reopened, not deleted")
	}
	if result.Status != model.TaskPending {
		t.Errorf("expected pending status, got %q", result.Status)
	}
	if result.CompletedAt != nil {
		t.Error("expected CompletedAt cleared")
	}
}

func TestCreateFromAction(t *testing.T) {
	svc := newTaskService(t)

	task, err := svc.CreateFromAction(1, nlp.Action{
		Type: nlp.ActionCreateTask,
		Data: map[string]interface{}{
			"title":    "physics homework",
			"due_date": "tomorrow",
			"priority": "medium",
			"category": "academic",
		},
	})
	if err != nil {
		t.Fatalf("create from action: %v", err)
	}
	if task.Title != "physics homework" {
		t.Errorf("unexpected title %q", task.Title)
	}
	if task.DueDate == nil {
		t.Fatal("expected due date resolved from phrase")
	}
	if task.Category != "academic" {
		t.Errorf("unexpected category %q", task.Category)
	}
}

func TestResolveDueDate(t *testing.T) {
	// 2026-09-01 is a Tuesday
	now := time.Date(2026, 9, 1, 15, 0, 0, 0, time.UTC)
	day := time.Date(2026, 9, 1, 0, 0, 0, 0, time.UTC)

	cases := []struct {
		text string
		want *time.Time
	}{
		{"today", &day},
		{"tonight", &day},
		{"tomorrow", timePtr(day.AddDate(0, 0, 1))},
		{"next week", timePtr(day.AddDate(0, 0, 7))},
		{"friday", timePtr(day.AddDate(0, 0, 3))},
		{"tuesday", timePtr(day.AddDate(0, 0, 7))},
		{"15/10/2026", timePtr(time.Date(2026, 10, 15, 0, 0, 0, 0, time.UTC))},
		{"2026-10-15", timePtr(time.Date(2026, 10, 15, 0, 0, 0, 0, time.UTC))},
		{"someday", nil},
		{"", nil},
	}

	for _, tc := range cases {
		got := resolveDueDate(tc.text, now)
		switch {
		case tc.want == nil && got != nil:
			t.Errorf("%q: expected nil, got %v", tc.text, got)
		case tc.want != nil && got == nil:
			t.Errorf("%q: expected %v, got nil", tc.text, tc.want)
		case tc.want != nil && !got.Equal(*tc.want):
			t.Errorf("%q: expected %v, got %v", tc.text, tc.want, got)
		}
	}
}

func timePtr(t time.Time) *time.Time { return &t }

func TestCountsByStatus(t *testing.T) {
	svc := newTaskService(t)

	for i := 0; i < 3; i++ {
		if _, err := svc.Create(1, CreateTaskInput{Title: "Pending"}); err != nil {
			t.Fatalf("create: %v", err)
		}
	}
	task, _ := svc.Create(1, CreateTaskInput{Title: "Will complete"})
	status := string(model.TaskCompleted)
	if _, err := svc.Update(1, task.ID, UpdateTaskInput{Status: &status}); err != nil {
		t.Fatalf("update: %v", err)
	}

	counts, err := svc.CountsByStatus(1)
	if err != nil {
		t.Fatalf("counts: %v", err)
	}
	if counts["pending"] != 3 {
		t.Errorf("expected 3 pending, got %d", counts["pending"])
	}
	if counts["completed"] != 1 {
		t.Errorf("expected 1 completed, got %d", counts["completed"])
	}
}
