package controller

import (
	"errors"
	"naira_backend/internal/service"
	"naira_backend/internal/util"
	"strconv"

	"github.com/gin-gonic/gin"
)

type StudySessionController struct {
	SessionService *service.StudySessionService
}

func NewStudySessionController(sessionService *service.StudySessionService) *StudySessionController {
	return &StudySessionController{SessionService: sessionService}
}

// ListSessions godoc
// @Summary 获取学习会话列表
// @Tags 学习会话
// @Produce  json
// @Security ApiKeyAuth
// @Success 200 {object} util.Response{data=[]model.StudySession} "Success"
// @Router /api/study-sessions [get]
func (c *StudySessionController) ListSessions(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)
	if claims == nil {
		util.Unauthorized(ctx)
		return
	}

	sessions, err := c.SessionService.List(claims.UserID)
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}

	util.Success(ctx, sessions)
}

// StartSession godoc
// @Summary 开始学习会话
// @Description 记录开始时间，结束时间与时长留空
// @Tags 学习会话
// @Accept  json
// @Produce  json
// @Security ApiKeyAuth
// @Param   body body service.StartSessionInput true "会话信息"
// @Success 201 {object} util.Response{data=model.StudySession} "创建成功"
// @Failure 400 {object} util.Response "科目缺失"
// @Router /api/study-sessions [post]
func (c *StudySessionController) StartSession(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)
	if claims == nil {
		util.Unauthorized(ctx)
		return
	}

	var input service.StartSessionInput
	if err := ctx.ShouldBind(&input); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	session, err := c.SessionService.Start(claims.UserID, input)
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}

	util.Created(ctx, session)
}

// EndSession godoc
// @Summary 结束学习会话
// @Description 固化时长（整分钟），重复结束返回400
// @Tags 学习会话
// @Accept  json
// @Produce  json
// @Security ApiKeyAuth
// @Param   id path int true "会话ID"
// @Param   body body service.EndSessionInput false "评分与笔记"
// @Success 200 {object} util.Response{data=model.StudySession} "Success"
// @Failure 400 {object} util.Response "会话已结束"
// @Failure 403 {object} util.Response "无权限"
// @Failure 404 {object} util.Response "会话不存在"
// @Router /api/study-sessions/{id}/end [post]
func (c *StudySessionController) EndSession(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)
	if claims == nil {
		util.Unauthorized(ctx)
		return
	}

	sessionID, err := strconv.ParseUint(ctx.Param("id"), 10, 32)
	if err != nil {
		util.BadRequest(ctx, "invalid session id")
		return
	}

	var input service.EndSessionInput
	if err := ctx.ShouldBind(&input); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	session, err := c.SessionService.End(claims.UserID, uint(sessionID), input)
	if err != nil {
		switch {
		case errors.Is(err, util.ErrSessionNotFound):
			util.NotFound(ctx)
		case errors.Is(err, util.ErrPermissionDenied):
			util.Forbidden(ctx)
		case errors.Is(err, util.ErrSessionAlreadyEnded):
			util.BadRequest(ctx, err.Error())
		default:
			util.LogInternalError(ctx, err)
		}
		return
	}

	util.Success(ctx, session)
}
