package controllers

import (
	"time"

	"natura-http-service/internal/domain/services/container"
	"natura-http-service/internal/error/code"
	"natura-http-service/internal/error/response"

	"github.com/gin-gonic/gin"
)

// HealthController 健康检查控制器
type HealthController struct {
	Ctx       *gin.Context
	Container *container.ServiceContainer
}

// NewHealthController 创建一个新的健康检查控制器
func NewHealthController(ctx *gin.Context, container *container.ServiceContainer) *HealthController {
	return &HealthController{
		Ctx:       ctx,
		Container: container,
	}
}

// HandleHealthFunc 返回一个处理健康检查请求的Gin处理函数
func HandleHealthFunc(container *container.ServiceContainer, method string) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		controller := NewHealthController(ctx, container)

		switch method {
		case "ping":
			controller.Ping()
		case "status":
			controller.Status()
		default:
			response.FailWithMessage(ctx, code.ErrBind, "无效的方法", nil)
		}
	}
}

// Ping 服务连通性检查
// @Summary 健康检查
// @Description 检查服务是否正常运行
// @Tags Health
// @Produce json
// @Success 200 {object} response.Response
// @Router /ping [get]
func (c *HealthController) Ping() {
	response.Success(c.Ctx, gin.H{
		"message": "pong",
		"time":    time.Now().Format(time.RFC3339),
	})
}

// Status 检查数据库连接状态
// @Summary 服务状态
// @Description 返回数据库连接状态
// @Tags Health
// @Produce json
// @Success 200 {object} response.Response
// @Router /health/status [get]
func (c *HealthController) Status() {
	dbStatus := "ok"
	sqlDB, err := c.Container.GetDB().DB()
	if err != nil || sqlDB.Ping() != nil {
		dbStatus = "unavailable"
	}

	response.Success(c.Ctx, gin.H{
		"database": dbStatus,
		"time":     time.Now().Format(time.RFC3339),
	})
}
