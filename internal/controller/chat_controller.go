package controller

import (
	"errors"
	"naira_backend/internal/service"
	"naira_backend/internal/util"
	"time"

	"github.com/gin-gonic/gin"
)

type ChatController struct {
	ChatService *service.ChatService
}

func NewChatController(chatService *service.ChatService) *ChatController {
	return &ChatController{ChatService: chatService}
}

// ChatMessageRequest 管线路径请求体
// swagger:model ChatMessageRequest
type ChatMessageRequest struct {
	Message        string `json:"message" binding:"required"`
	ConversationID string `json:"conversation_id"`
	Context        string `json:"context"`
}

// ProcessMessage godoc
// @Summary 发送对话消息
// @Description 完整分析管线：意图识别、情感分析、实体提取并生成回复
// @Tags 对话
// @Accept  json
// @Produce  json
// @Security ApiKeyAuth
// @Param   body body ChatMessageRequest true "消息内容"
// @Success 200 {object} util.Response{data=service.ChatReply} "Success"
// @Failure 400 {object} util.Response "消息缺失"
// @Failure 403 {object} util.Response "会话属于其他用户"
// @Failure 404 {object} util.Response "会话不存在"
// @Router /api/chat/message [post]
func (c *ChatController) ProcessMessage(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)
	if claims == nil {
		util.Unauthorized(ctx)
		return
	}

	var req ChatMessageRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, "No message provided")
		return
	}

	reply, err := c.ChatService.ProcessMessage(claims.UserID, req.Message, req.ConversationID, req.Context)
	if err != nil {
		c.mapChatError(ctx, err)
		return
	}

	util.Success(ctx, reply)
}

// SendRequest 关键词机器人请求体
type SendRequest struct {
	Message string `json:"message" binding:"required"`
}

// Send godoc
// @Summary 快捷问答
// @Description 关键词规则机器人，无需登录
// @Tags 对话
// @Accept  json
// @Produce  json
// @Param   body body SendRequest true "消息内容"
// @Success 200 {object} util.Response{data=object} "Success"
// @Failure 400 {object} util.Response "消息缺失"
// @Router /api/chat/send [post]
func (c *ChatController) Send(ctx *gin.Context) {
	var req SendRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, "No message provided")
		return
	}

	util.Success(ctx, gin.H{
		"response":  c.ChatService.QuickReply(req.Message),
		"timestamp": time.Now().Format(time.RFC3339),
	})
}

// GetHistory godoc
// @Summary 获取会话历史
// @Description 按时间顺序返回会话全部消息
// @Tags 对话
// @Produce  json
// @Security ApiKeyAuth
// @Param   conversationId path string true "会话ID"
// @Success 200 {object} util.Response{data=object} "Success"
// @Failure 403 {object} util.Response "会话属于其他用户"
// @Failure 404 {object} util.Response "会话不存在"
// @Router /api/chat/history/{conversationId} [get]
func (c *ChatController) GetHistory(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)
	if claims == nil {
		util.Unauthorized(ctx)
		return
	}

	conversationID := ctx.Param("conversationId")
	messages, err := c.ChatService.History(claims.UserID, conversationID)
	if err != nil {
		c.mapChatError(ctx, err)
		return
	}

	util.Success(ctx, gin.H{
		"conversation_id": conversationID,
		"messages":        messages,
	})
}

// GetConversations godoc
// @Summary 获取会话列表
// @Tags 对话
// @Produce  json
// @Security ApiKeyAuth
// @Success 200 {object} util.Response{data=object} "Success"
// @Router /api/chat/conversations [get]
func (c *ChatController) GetConversations(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)
	if claims == nil {
		util.Unauthorized(ctx)
		return
	}

	conversations, err := c.ChatService.Conversations(claims.UserID)
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}

	util.Success(ctx, gin.H{"conversations": conversations})
}

func (c *ChatController) mapChatError(ctx *gin.Context, err error) {
	switch {
	case errors.Is(err, util.ErrConversationNotFound):
		util.NotFound(ctx)
	case errors.Is(err, util.ErrPermissionDenied):
		util.Forbidden(ctx)
	default:
		util.LogInternalError(ctx, err)
	}
}
