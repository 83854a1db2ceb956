package controller

import (
	"naira_backend/internal/service"
	"naira_backend/internal/util"

	"github.com/gin-gonic/gin"
)

type MotivationController struct {
	MotivationService *service.MotivationService
}

func NewMotivationController(motivationService *service.MotivationService) *MotivationController {
	return &MotivationController{MotivationService: motivationService}
}

// GetMotivation godoc
// @Summary 获取激励短句
// @Description 返回当前启用的激励短句，无需登录
// @Tags 系统
// @Produce  json
// @Success 200 {object} util.Response{data=object} "Success"
// @Router /api/motivation [get]
func (c *MotivationController) GetMotivation(ctx *gin.Context) {
	motivation, err := c.MotivationService.Current()
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}

	util.Success(ctx, gin.H{"content": motivation.Content})
}
