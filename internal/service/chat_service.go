package service

import (
	"naira_backend/internal/model"
	"naira_backend/internal/nlp"
	"naira_backend/internal/repository"
	"naira_backend/internal/util"
	"naira_backend/pkg/logger"
	"naira_backend/pkg/monitoring"
	"time"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

// ChatService 对话编排：分析管线路径与关键词机器人路径
type ChatService struct {
	ConvRepo  *repository.ConversationRepository
	Processor *nlp.Processor
	Responder *nlp.Responder
	Bot       *nlp.KeywordBot
	Tasks     *TaskService
}

func NewChatService(convRepo *repository.ConversationRepository, processor *nlp.Processor,
	responder *nlp.Responder, bot *nlp.KeywordBot, tasks *TaskService) *ChatService {
	return &ChatService{
		ConvRepo:  convRepo,
		Processor: processor,
		Responder: responder,
		Bot:       bot,
		Tasks:     tasks,
	}
}

// ChatReply 管线路径的响应体
type ChatReply struct {
	ConversationID string       `json:"conversation_id"`
	Response       string       `json:"response"`
	Actions        []nlp.Action `json:"actions"`
	Context        string       `json:"context"`
}

// ProcessMessage 完整管线：取/建会话 → 分析 → 存用户消息 → 生成并存回复 → 落地动作
func (s *ChatService) ProcessMessage(userID uint, message, conversationID, context string) (*ChatReply, error) {
	conversation, err := s.resolveConversation(userID, conversationID, context)
	if err != nil {
		return nil, err
	}

	result, err := s.Processor.Process(message, conversation.Context)
	if err != nil {
		// 标注降级不阻断回复
		logger.L().Warn("annotation failed, continuing without entities", zap.Error(err))
	}

	monitoring.ChatIntentCounter.WithLabelValues(result.Intent.Type).Inc()

	compound := result.Sentiment.Compound
	userMsg := &model.Message{
		ConversationID: conversation.ID,
		Content:        message,
		Role:           "user",
		Sentiment:      &compound,
	}
	if err := s.ConvRepo.CreateMessage(userMsg); err != nil {
		return nil, err
	}

	reply := s.Responder.Respond(result)

	assistantMsg := &model.Message{
		ConversationID: conversation.ID,
		Content:        reply.Message,
		Role:           "assistant",
	}
	if err := s.ConvRepo.CreateMessage(assistantMsg); err != nil {
		return nil, err
	}

	for _, action := range reply.Actions {
		if action.Type != nlp.ActionCreateTask {
			continue
		}
		if _, err := s.Tasks.CreateFromAction(userID, action); err != nil {
			logger.L().Error("failed to create task from chat action", zap.Error(err))
		}
	}

	if reply.Actions == nil {
		reply.Actions = []nlp.Action{}
	}

	return &ChatReply{
		ConversationID: conversation.ID,
		Response:       reply.Message,
		Actions:        reply.Actions,
		Context:        conversation.Context,
	}, nil
}

func (s *ChatService) resolveConversation(userID uint, conversationID, context string) (*model.Conversation, error) {
	if conversationID != "" {
		conversation, err := s.ConvRepo.FindByID(conversationID)
		if err != nil {
			if err == gorm.ErrRecordNotFound {
				return nil, util.ErrConversationNotFound
			}
			return nil, err
		}
		if conversation.UserID != userID {
			return nil, util.ErrPermissionDenied
		}
		return conversation, nil
	}

	if context == "" {
		context = "general"
	}
	conversation := &model.Conversation{
		UserID:  userID,
		Context: context,
	}
	if err := s.ConvRepo.Create(conversation); err != nil {
		return nil, err
	}
	return conversation, nil
}

// QuickReply 关键词机器人路径，无需登录
func (s *ChatService) QuickReply(message string) string {
	return s.Bot.Respond(message)
}

// HistoryMessage 历史消息条目
type HistoryMessage struct {
	Content   string    `json:"content"`
	Role      string    `json:"role"`
	Timestamp time.Time `json:"timestamp"`
}

func (s *ChatService) History(userID uint, conversationID string) ([]HistoryMessage, error) {
	conversation, err := s.ConvRepo.FindByID(conversationID)
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, util.ErrConversationNotFound
		}
		return nil, err
	}
	if conversation.UserID != userID {
		return nil, util.ErrPermissionDenied
	}

	messages, err := s.ConvRepo.MessagesByConversation(conversationID)
	if err != nil {
		return nil, err
	}

	history := make([]HistoryMessage, 0, len(messages))
	for _, msg := range messages {
		history = append(history, HistoryMessage{
			Content:   msg.Content,
			Role:      msg.Role,
			Timestamp: msg.CreatedAt,
		})
	}
	return history, nil
}

// ConversationSummary 会话列表条目
type ConversationSummary struct {
	ID          string    `json:"id"`
	Context     string    `json:"context"`
	CreatedAt   time.Time `json:"created_at"`
	LastMessage string    `json:"last_message"`
}

func (s *ChatService) Conversations(userID uint) ([]ConversationSummary, error) {
	conversations, err := s.ConvRepo.FindByUser(userID)
	if err != nil {
		return nil, err
	}

	summaries := make([]ConversationSummary, 0, len(conversations))
	for _, conv := range conversations {
		summary := ConversationSummary{
			ID:        conv.ID,
			Context:   conv.Context,
			CreatedAt: conv.CreatedAt,
		}
		if last, err := s.ConvRepo.LastMessage(conv.ID); err == nil {
			summary.LastMessage = last.Content
		}
		summaries = append(summaries, summary)
	}
	return summaries, nil
}
