package repository

import (
	"context"
	"encoding/json"
	"fmt"
	"naira_backend/internal/model"
	"time"

	"github.com/go-redis/redis/v8"
	"gorm.io/gorm"
)

// ConversationRepository 会话与消息存取，最近消息在Redis中保留一份热缓存
type ConversationRepository struct {
	DB    *gorm.DB
	Redis *redis.Client
	ctx   context.Context
}

func NewConversationRepository(db *gorm.DB, rdb *redis.Client) *ConversationRepository {
	return &ConversationRepository{
		DB:    db,
		Redis: rdb,
		ctx:   context.Background(),
	}
}

func (r *ConversationRepository) Create(conv *model.Conversation) error {
	return r.DB.Create(conv).Error
}

func (r *ConversationRepository) FindByID(id string) (*model.Conversation, error) {
	var conv model.Conversation
	err := r.DB.First(&conv, "id = ?", id).Error
	return &conv, err
}

func (r *ConversationRepository) FindByUser(userID uint) ([]model.Conversation, error) {
	var convs []model.Conversation
	err := r.DB.Where("user_id = ?", userID).
		Order("updated_at DESC").
		Find(&convs).Error
	return convs, err
}

func (r *ConversationRepository) CreateMessage(msg *model.Message) error {
	if err := r.DB.Create(msg).Error; err != nil {
		return err
	}

	// 热缓存尽力而为，失败不影响主流程
	if r.Redis != nil {
		key := fmt.Sprintf("chat:recent:%s", msg.ConversationID)
		if data, err := json.Marshal(msg); err == nil {
			pipe := r.Redis.Pipeline()
			pipe.RPush(r.ctx, key, data)
			pipe.LTrim(r.ctx, key, -50, -1)
			pipe.Expire(r.ctx, key, 24*time.Hour)
			pipe.Exec(r.ctx)
		}
	}

	return nil
}

func (r *ConversationRepository) MessagesByConversation(conversationID string) ([]model.Message, error) {
	var messages []model.Message
	err := r.DB.Where("conversation_id = ?", conversationID).
		Order("created_at ASC").
		Find(&messages).Error
	return messages, err
}

func (r *ConversationRepository) LastMessage(conversationID string) (*model.Message, error) {
	var msg model.Message
	err := r.DB.Where("conversation_id = ?", conversationID).
		Order("created_at DESC").
		First(&msg).Error
	if err != nil {
		return nil, err
	}
	return &msg, nil
}
