package nlp

import (
	"fmt"
	"sync"
)

// 动作类型
const (
	ActionCreateTask = "create_task"
)

// Action 响应附带的动作，由服务层落地
type Action struct {
	Type string                 `json:"type"`
	Data map[string]interface{} `json:"data"`
}

// Reply 生成的回复
type Reply struct {
	Message string   `json:"message"`
	Actions []Action `json:"actions"`
}

// Thresholds 响应决策阈值，支持配置热更新
type Thresholds struct {
	SupportCompound float64
	SupportNegative float64
	SupportNeutral  float64
}

func DefaultThresholds() Thresholds {
	return Thresholds{
		SupportCompound: -0.5,
		SupportNegative: 0.5,
		SupportNeutral:  0.5,
	}
}

// Responder 按优先级决策：情绪支持 > 学业解释 > 任务创建 > 通用兜底
type Responder struct {
	mu         sync.RWMutex
	thresholds Thresholds
}

func NewResponder(thresholds Thresholds) *Responder {
	return &Responder{thresholds: thresholds}
}

// SetThresholds 配置热更新入口
func (r *Responder) SetThresholds(t Thresholds) {
	r.mu.Lock()
	r.thresholds = t
	r.mu.Unlock()
}

func (r *Responder) Respond(result *Result) Reply {
	r.mu.RLock()
	t := r.thresholds
	r.mu.RUnlock()

	if result.Sentiment.Compound < t.SupportCompound {
		return Reply{Message: r.emotionalSupport(result.Sentiment, t)}
	}

	switch result.Intent.Type {
	case "academic_query":
		return Reply{Message: r.academicExplanation(result)}
	case "task_management":
		return r.taskCreation(result)
	}

	return Reply{
		Message: "I'm here to help with your studies and productivity. Would you like " +
			"help with studying, task management, or something else?",
	}
}

func (r *Responder) emotionalSupport(sentiment Sentiment, t Thresholds) string {
	if sentiment.Negative > t.SupportNegative {
		return "I understand you're feeling stressed. Remember, it's normal to feel " +
			"this way, and we'll work through it together. Would you like to " +
			"break this down into smaller, manageable steps?"
	}
	if sentiment.Neutral > t.SupportNeutral {
		return "I'm here to help you stay on track. Let's focus on what we can " +
			"do to make progress. Would you like to create a study plan?"
	}
	return "That's great to hear! Let's maintain this positive momentum. " +
		"What would you like to focus on next?"
}

func (r *Responder) academicExplanation(result *Result) string {
	if len(result.Entities.Subjects) > 0 {
		return fmt.Sprintf("I'll help you understand %s. Let's break this down "+
			"into key concepts and create a study plan. What specific aspect "+
			"would you like to focus on first?", result.Entities.Subjects[0])
	}
	return "I'll help you with that. Could you specify the subject or topic " +
		"you'd like to focus on?"
}

func (r *Responder) taskCreation(result *Result) Reply {
	title := "New Task"
	if len(result.NounPhrases) > 0 {
		title = result.NounPhrases[0]
	}

	dueDate := ""
	if len(result.Entities.Dates) > 0 {
		dueDate = result.Entities.Dates[0].Text
	}

	category := "personal"
	if result.Intent.Type == "academic_query" {
		category = "academic"
	}

	return Reply{
		Message: "I'll help you create a task for that.",
		Actions: []Action{
			{
				Type: ActionCreateTask,
				Data: map[string]interface{}{
					"title":    title,
					"due_date": dueDate,
					"priority": "medium",
					"category": category,
				},
			},
		},
	}
}
