package controller

import (
	"errors"
	"naira_backend/internal/service"
	"naira_backend/internal/util"
	"strconv"

	"github.com/gin-gonic/gin"
)

type TaskController struct {
	TaskService *service.TaskService
}

func NewTaskController(taskService *service.TaskService) *TaskController {
	return &TaskController{TaskService: taskService}
}

// ListTasks godoc
// @Summary 获取任务列表
// @Description 获取当前用户的全部任务
// @Tags 任务
// @Produce  json
// @Security ApiKeyAuth
// @Success 200 {object} util.Response{data=[]model.Task} "Success"
// @Router /api/tasks [get]
func (c *TaskController) ListTasks(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)
	if claims == nil {
		util.Unauthorized(ctx)
		return
	}

	tasks, err := c.TaskService.List(claims.UserID)
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}

	util.Success(ctx, tasks)
}

// CreateTask godoc
// @Summary 创建任务
// @Description 创建新任务，默认状态pending、优先级medium
// @Tags 任务
// @Accept  json
// @Produce  json
// @Security ApiKeyAuth
// @Param   body body service.CreateTaskInput true "任务信息"
// @Success 201 {object} util.Response{data=model.Task} "创建成功"
// @Failure 400 {object} util.Response "标题缺失"
// @Router /api/tasks [post]
func (c *TaskController) CreateTask(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)
	if claims == nil {
		util.Unauthorized(ctx)
		return
	}

	var input service.CreateTaskInput
	if err := ctx.ShouldBind(&input); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	task, err := c.TaskService.Create(claims.UserID, input)
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}

	util.Created(ctx, task)
}

// UpdateTask godoc
// @Summary 更新任务
// @Description 部分更新任务字段
// @Tags 任务
// @Accept  json
// @Produce  json
// @Security ApiKeyAuth
// @Param   id path int true "任务ID"
// @Param   body body service.UpdateTaskInput true "更新字段"
// @Success 200 {object} util.Response{data=model.Task} "Success"
// @Failure 403 {object} util.Response "无权限"
// @Failure 404 {object} util.Response "任务不存在"
// @Router /api/tasks/{id} [put]
func (c *TaskController) UpdateTask(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)
	if claims == nil {
		util.Unauthorized(ctx)
		return
	}

	taskID, err := strconv.ParseUint(ctx.Param("id"), 10, 32)
	if err != nil {
		util.BadRequest(ctx, "invalid task id")
		return
	}

	var input service.UpdateTaskInput
	if err := ctx.ShouldBindJSON(&input); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	task, err := c.TaskService.Update(claims.UserID, uint(taskID), input)
	if err != nil {
		c.mapTaskError(ctx, err)
		return
	}

	util.Success(ctx, task)
}

// DeleteTask godoc
// @Summary 删除任务
// @Tags 任务
// @Produce  json
// @Security ApiKeyAuth
// @Param   id path int true "任务ID"
// @Success 200 {object} util.Response "Success"
// @Failure 403 {object} util.Response "无权限"
// @Failure 404 {object} util.Response "任务不存在"
// @Router /api/tasks/{id} [delete]
func (c *TaskController) DeleteTask(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)
	if claims == nil {
		util.Unauthorized(ctx)
		return
	}

	taskID, err := strconv.ParseUint(ctx.Param("id"), 10, 32)
	if err != nil {
		util.BadRequest(ctx, "invalid task id")
		return
	}

	if err := c.TaskService.Delete(claims.UserID, uint(taskID)); err != nil {
		c.mapTaskError(ctx, err)
		return
	}

	util.Success(ctx, gin.H{"deleted": true})
}

// ToggleTask godoc
// @Summary 切换任务完成状态
// @Description 未完成任务切换为完成时直接删除该任务
// @Tags 任务
// @Produce  json
// @Security ApiKeyAuth
// @Param   id path int true "任务ID"
// @Success 200 {object} util.Response{data=object} "Success"
// @Failure 403 {object} util.Response "无权限"
// @Failure 404 {object} util.Response "任务不存在"
// @Router /api/tasks/{id}/toggle [post]
func (c *TaskController) ToggleTask(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)
	if claims == nil {
		util.Unauthorized(ctx)
		return
	}

	taskID, err := strconv.ParseUint(ctx.Param("id"), 10, 32)
	if err != nil {
		util.BadRequest(ctx, "invalid task id")
		return
	}

	task, completed, err := c.TaskService.Toggle(claims.UserID, uint(taskID))
	if err != nil {
		c.mapTaskError(ctx, err)
		return
	}

	if completed {
		util.Success(ctx, gin.H{"completed": true})
		return
	}
	util.Success(ctx, task)
}

func (c *TaskController) mapTaskError(ctx *gin.Context, err error) {
	switch {
	case errors.Is(err, util.ErrTaskNotFound):
		util.NotFound(ctx)
	case errors.Is(err, util.ErrPermissionDenied):
		util.Forbidden(ctx)
	default:
		util.LogInternalError(ctx, err)
	}
}
