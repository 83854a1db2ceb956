package service

import (
	"naira_backend/internal/model"
	"naira_backend/internal/nlp"
	"naira_backend/internal/repository"
	"naira_backend/internal/util"
	"strings"
	"time"

	"gorm.io/gorm"
)

type TaskService struct {
	TaskRepo *repository.TaskRepository
}

func NewTaskService(taskRepo *repository.TaskRepository) *TaskService {
	return &TaskService{TaskRepo: taskRepo}
}

// CreateTaskInput 创建任务入参
type CreateTaskInput struct {
	Title       string     `json:"title" form:"title" binding:"required"`
	Description string     `json:"description" form:"description"`
	DueDate     *time.Time `json:"due_date" form:"due_date"`
	Priority    string     `json:"priority" form:"priority"`
	Category    string     `json:"category" form:"category"`
}

func (s *TaskService) Create(userID uint, input CreateTaskInput) (*model.Task, error) {
	priority := model.TaskPriority(input.Priority)
	if priority == "" {
		priority = model.PriorityMedium
	}

	task := &model.Task{
		Title:       input.Title,
		Description: input.Description,
		DueDate:     input.DueDate,
		Status:      model.TaskPending,
		Priority:    priority,
		Category:    input.Category,
		UserID:      userID,
	}
	if err := s.TaskRepo.Create(task); err != nil {
		return nil, err
	}
	return task, nil
}

func (s *TaskService) List(userID uint) ([]*model.Task, error) {
	return s.TaskRepo.FindByUserID(userID)
}

// UpdateTaskInput 部分更新入参，nil字段保持不变
type UpdateTaskInput struct {
	Title       *string    `json:"title"`
	Description *string    `json:"description"`
	DueDate     *time.Time `json:"due_date"`
	Status      *string    `json:"status"`
	Priority    *string    `json:"priority"`
	Category    *string    `json:"category"`
}

func (s *TaskService) Update(userID, taskID uint, input UpdateTaskInput) (*model.Task, error) {
	task, err := s.findOwned(userID, taskID)
	if err != nil {
		return nil, err
	}

	if input.Title != nil {
		task.Title = *input.Title
	}
	if input.Description != nil {
		task.Description = *input.Description
	}
	if input.DueDate != nil {
		task.DueDate = input.DueDate
	}
	if input.Status != nil {
		task.Status = model.TaskStatus(*input.Status)
		if task.Status == model.TaskCompleted && task.CompletedAt == nil {
			now := time.Now()
			task.CompletedAt = &now
		}
	}
	if input.Priority != nil {
		task.Priority = model.TaskPriority(*input.Priority)
	}
	if input.Category != nil {
		task.Category = *input.Category
	}

	if err := s.TaskRepo.Update(task); err != nil {
		return nil, err
	}
	return task, nil
}

func (s *TaskService) Delete(userID, taskID uint) error {
	if _, err := s.findOwned(userID, taskID); err != nil {
		return err
	}
	return s.TaskRepo.Delete(taskID)
}

// Toggle 切换完成状态；置为完成时直接删除任务行
func (s *TaskService) Toggle(userID, taskID uint) (*model.Task, bool, error) {
	task, err := s.findOwned(userID, taskID)
	if err != nil {
		return nil, false, err
	}

	if task.Status != model.TaskCompleted {
		if err := s.TaskRepo.Delete(taskID); err != nil {
			return nil, false, err
		}
		return nil, true, nil
	}

	task.Status = model.TaskPending
	task.CompletedAt = nil
	if err := s.TaskRepo.Update(task); err != nil {
		return nil, false, err
	}
	return task, false, nil
}

// CreateFromAction 落地对话产生的建任务动作
func (s *TaskService) CreateFromAction(userID uint, action nlp.Action) (*model.Task, error) {
	title, _ := action.Data["title"].(string)
	if title == "" {
		title = "New Task"
	}
	priority, _ := action.Data["priority"].(string)
	category, _ := action.Data["category"].(string)
	dueText, _ := action.Data["due_date"].(string)

	return s.Create(userID, CreateTaskInput{
		Title:    title,
		DueDate:  resolveDueDate(dueText, time.Now()),
		Priority: priority,
		Category: category,
	})
}

// resolveDueDate 解析日期短语，无法识别时返回nil
func resolveDueDate(text string, now time.Time) *time.Time {
	text = strings.ToLower(strings.TrimSpace(text))
	if text == "" {
		return nil
	}

	day := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())

	switch text {
	case "today", "tonight":
		return &day
	case "tomorrow":
		d := day.AddDate(0, 0, 1)
		return &d
	case "next week":
		d := day.AddDate(0, 0, 7)
		return &d
	}

	weekdays := map[string]time.Weekday{
		"sunday": time.Sunday, "monday": time.Monday, "tuesday": time.Tuesday,
		"wednesday": time.Wednesday, "thursday": time.Thursday,
		"friday": time.Friday, "saturday": time.Saturday,
	}
	if wd, ok := weekdays[text]; ok {
		days := (int(wd) - int(day.Weekday()) + 7) % 7
		if days == 0 {
			days = 7
		}
		d := day.AddDate(0, 0, days)
		return &d
	}

	for _, layout := range []string{util.SlashDate, util.DateFormat} {
		if d, err := time.ParseInLocation(layout, text, now.Location()); err == nil {
			return &d
		}
	}

	return nil
}

func (s *TaskService) findOwned(userID, taskID uint) (*model.Task, error) {
	task, err := s.TaskRepo.FindByID(taskID)
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, util.ErrTaskNotFound
		}
		return nil, err
	}
	if task.UserID != userID {
		return nil, util.ErrPermissionDenied
	}
	return task, nil
}

// CountsByStatus 仪表盘的任务状态统计
func (s *TaskService) CountsByStatus(userID uint) (map[string]int64, error) {
	counts := map[string]int64{}
	for _, status := range []model.TaskStatus{model.TaskPending, model.TaskProgress, model.TaskCompleted} {
		count, err := s.TaskRepo.CountByStatus(userID, status)
		if err != nil {
			return nil, err
		}
		counts[string(status)] = count
	}
	return counts, nil
}
