package controllers

import (
	"errors"

	"natura-http-service/internal/domain/services"
	"natura-http-service/internal/domain/services/container"
	"natura-http-service/internal/error/code"
	"natura-http-service/internal/error/response"
	"natura-http-service/pkg/logger"
	"natura-http-service/utils"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// InterfaceJWTController 定义认证控制器接口
type InterfaceJWTController interface {
	Login()
}

// JWTController 处理身份验证请求
type JWTController struct {
	Ctx       *gin.Context
	Container *container.ServiceContainer
}

// NewJWTController 创建一个新的认证控制器
func NewJWTController(ctx *gin.Context, container *container.ServiceContainer) *JWTController {
	return &JWTController{
		Ctx:       ctx,
		Container: container,
	}
}

// LoginRequest 表示登录请求
type LoginRequest struct {
	Username string `json:"username" binding:"required" example:"admin"`
	Password string `json:"password" binding:"required" example:"admin123"`
}

// ErrorResponse 表示错误响应
type ErrorResponse struct {
	Code    int         `json:"code" example:"401"`
	Message string      `json:"message" example:"用户名错误"`
	Data    interface{} `json:"data"`
}

// HandleJWTFunc 返回一个处理JWT认证请求的Gin处理函数
func HandleJWTFunc(container *container.ServiceContainer, method string) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		controller := NewJWTController(ctx, container)

		switch method {
		case "login":
			controller.Login()
		default:
			response.FailWithMessage(ctx, code.ErrBind, "无效的方法", nil)
		}
	}
}

// Login 处理管理员登录
// @Summary      管理员登录
// @Description  校验用户名和密码，成功后返回24小时有效的JWT令牌
// @Tags         Auth
// @Accept       json
// @Produce      json
// @Param        request body LoginRequest true "登录请求参数"
// @Success      200  {object}  response.Response  "返回令牌"
// @Failure      400  {object}  ErrorResponse  "请求参数错误"
// @Failure      401  {object}  ErrorResponse  "用户名或密码错误"
// @Failure      500  {object}  ErrorResponse  "服务器内部错误"
// @Router       /auth/login [post]
func (c *JWTController) Login() {
	var req LoginRequest
	if err := c.Ctx.ShouldBindJSON(&req); err != nil {
		response.FailWithMessage(c.Ctx, code.ErrBind, "无效的请求参数", nil)
		return
	}

	adminService := c.Container.GetService("admin").(services.InterfaceAdminService)
	jwtService := c.Container.GetService("jwt").(services.InterfaceJWTService)

	// 按用户名精确查找管理员
	admin, err := adminService.GetAdminByUsername(req.Username)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			response.Fail(c.Ctx, code.ErrUsernameIncorrect, nil)
			return
		}
		logger.Error("登录查询管理员失败: %v", err)
		response.Fail(c.Ctx, code.ErrDatabase, nil)
		return
	}

	// 比较密码哈希
	if !utils.CheckPasswordHash(req.Password, admin.Password) {
		response.Fail(c.Ctx, code.ErrPasswordIncorrect, nil)
		return
	}

	// 生成管理员令牌
	token, err := jwtService.GenerateToken(admin.ID, admin.Username)
	if err != nil {
		logger.Error("生成令牌失败: %v", err)
		response.FailWithMessage(c.Ctx, code.ErrUnknown, "生成令牌失败", nil)
		return
	}

	response.Success(c.Ctx, gin.H{
		"token":      token,
		"user_id":    admin.ID,
		"username":   admin.Username,
		"created_at": admin.CreatedAt,
	})
}
