package controller

import (
	"errors"
	"naira_backend/internal/service"
	"naira_backend/internal/util"
	"strconv"

	"github.com/gin-gonic/gin"
)

type ScheduleController struct {
	ScheduleService *service.ScheduleService
}

func NewScheduleController(scheduleService *service.ScheduleService) *ScheduleController {
	return &ScheduleController{ScheduleService: scheduleService}
}

// ListSchedules godoc
// @Summary 获取课程表
// @Description 获取当前用户的课程表条目
// @Tags 课程表
// @Produce  json
// @Security ApiKeyAuth
// @Success 200 {object} util.Response{data=[]model.Schedule} "Success"
// @Router /api/schedules [get]
func (c *ScheduleController) ListSchedules(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)
	if claims == nil {
		util.Unauthorized(ctx)
		return
	}

	schedules, err := c.ScheduleService.List(claims.UserID)
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}

	util.Success(ctx, schedules)
}

// CreateSchedule godoc
// @Summary 创建课程表条目
// @Tags 课程表
// @Accept  json
// @Produce  json
// @Security ApiKeyAuth
// @Param   body body service.CreateScheduleInput true "课程信息"
// @Success 201 {object} util.Response{data=model.Schedule} "创建成功"
// @Failure 400 {object} util.Response "请求参数错误"
// @Router /api/schedules [post]
func (c *ScheduleController) CreateSchedule(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)
	if claims == nil {
		util.Unauthorized(ctx)
		return
	}

	var input service.CreateScheduleInput
	if err := ctx.ShouldBind(&input); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	schedule, err := c.ScheduleService.Create(claims.UserID, input)
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}

	util.Created(ctx, schedule)
}

// DeleteSchedule godoc
// @Summary 删除课程表条目
// @Tags 课程表
// @Produce  json
// @Security ApiKeyAuth
// @Param   id path int true "条目ID"
// @Success 200 {object} util.Response "Success"
// @Failure 403 {object} util.Response "无权限"
// @Failure 404 {object} util.Response "条目不存在"
// @Router /api/schedules/{id} [delete]
func (c *ScheduleController) DeleteSchedule(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)
	if claims == nil {
		util.Unauthorized(ctx)
		return
	}

	scheduleID, err := strconv.ParseUint(ctx.Param("id"), 10, 32)
	if err != nil {
		util.BadRequest(ctx, "invalid schedule id")
		return
	}

	if err := c.ScheduleService.Delete(claims.UserID, uint(scheduleID)); err != nil {
		switch {
		case errors.Is(err, util.ErrScheduleNotFound):
			util.NotFound(ctx)
		case errors.Is(err, util.ErrPermissionDenied):
			util.Forbidden(ctx)
		default:
			util.LogInternalError(ctx, err)
		}
		return
	}

	util.Success(ctx, gin.H{"deleted": true})
}
