package controller

import (
	"errors"
	"naira_backend/internal/service"
	"naira_backend/internal/util"

	"github.com/gin-gonic/gin"
)

type LMSController struct {
	LMSService *service.LMSService
}

func NewLMSController(lmsService *service.LMSService) *LMSController {
	return &LMSController{LMSService: lmsService}
}

// LMSAuthRequest LMS认证请求体
type LMSAuthRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// Authenticate godoc
// @Summary LMS平台认证
// @Description 使用LMS账号认证并保存访问令牌
// @Tags LMS
// @Accept  json
// @Produce  json
// @Security ApiKeyAuth
// @Param   platform path string true "平台名(moodle/blackboard)"
// @Param   body body LMSAuthRequest true "LMS账号"
// @Success 200 {object} util.Response{data=object} "Success"
// @Failure 400 {object} util.Response "平台不支持"
// @Router /api/lms/{platform}/authenticate [post]
func (c *LMSController) Authenticate(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)
	if claims == nil {
		util.Unauthorized(ctx)
		return
	}

	var req LMSAuthRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	authenticated, err := c.LMSService.Authenticate(ctx.Request.Context(),
		ctx.Param("platform"), claims.UserID, req.Username, req.Password)
	if err != nil {
		c.mapLMSError(ctx, err)
		return
	}

	util.Success(ctx, gin.H{"authenticated": authenticated})
}

// GetCourses godoc
// @Summary 获取LMS课程
// @Description 拉取已认证平台的课程，外部失败时返回空列表
// @Tags LMS
// @Produce  json
// @Security ApiKeyAuth
// @Param   platform path string true "平台名(moodle/blackboard)"
// @Success 200 {object} util.Response{data=object} "Success"
// @Failure 400 {object} util.Response "平台不支持"
// @Router /api/lms/{platform}/courses [get]
func (c *LMSController) GetCourses(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)
	if claims == nil {
		util.Unauthorized(ctx)
		return
	}

	courses, err := c.LMSService.GetCourses(ctx.Request.Context(), ctx.Param("platform"), claims.UserID)
	if err != nil {
		c.mapLMSError(ctx, err)
		return
	}

	util.Success(ctx, gin.H{"courses": courses})
}

// GetAssignments godoc
// @Summary 获取LMS作业
// @Tags LMS
// @Produce  json
// @Security ApiKeyAuth
// @Param   platform path string true "平台名(moodle/blackboard)"
// @Param   courseId query string false "课程ID"
// @Success 200 {object} util.Response{data=object} "Success"
// @Failure 400 {object} util.Response "平台不支持"
// @Router /api/lms/{platform}/assignments [get]
func (c *LMSController) GetAssignments(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)
	if claims == nil {
		util.Unauthorized(ctx)
		return
	}

	assignments, err := c.LMSService.GetAssignments(ctx.Request.Context(),
		ctx.Param("platform"), claims.UserID, ctx.Query("courseId"))
	if err != nil {
		c.mapLMSError(ctx, err)
		return
	}

	util.Success(ctx, gin.H{"assignments": assignments})
}

func (c *LMSController) mapLMSError(ctx *gin.Context, err error) {
	if errors.Is(err, util.ErrUnknownPlatform) {
		util.BadRequest(ctx, err.Error())
		return
	}
	util.LogInternalError(ctx, err)
}
