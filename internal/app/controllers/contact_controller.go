package controllers

import (
	"natura-http-service/internal/domain/models"
	"natura-http-service/internal/domain/services"
	"natura-http-service/internal/domain/services/container"
	"natura-http-service/internal/error/code"
	"natura-http-service/internal/error/response"
	"natura-http-service/pkg/logger"

	"github.com/gin-gonic/gin"
)

// InterfaceContactController 定义留言控制器接口
type InterfaceContactController interface {
	CreateContact()
	GetContacts()
}

// ContactController 处理留言相关的请求
type ContactController struct {
	Ctx       *gin.Context
	Container *container.ServiceContainer
}

// NewContactController 创建一个新的留言控制器
func NewContactController(ctx *gin.Context, container *container.ServiceContainer) *ContactController {
	return &ContactController{
		Ctx:       ctx,
		Container: container,
	}
}

// CreateContactRequest 表示留言提交请求
type CreateContactRequest struct {
	Name     string `json:"name" binding:"required" example:"张三"`
	Email    string `json:"email" binding:"required" example:"zhangsan@example.com"`
	Phone    string `json:"phone" example:"13800138000"`
	Message  string `json:"message" binding:"required" example:"想了解批发价格"`
	Interest string `json:"interest" binding:"omitempty,oneof=general wholesale visit order" example:"wholesale"`
}

// HandleContactFunc 返回一个处理留言请求的Gin处理函数
func HandleContactFunc(container *container.ServiceContainer, method string) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		controller := NewContactController(ctx, container)

		switch method {
		case "createContact":
			controller.CreateContact()
		case "getContacts":
			controller.GetContacts()
		default:
			response.FailWithMessage(ctx, code.ErrBind, "无效的方法", nil)
		}
	}
}

// 1. CreateContact 提交留言
// @Summary 提交留言
// @Description 公开接口，提交联系表单，姓名、邮箱和留言内容为必填项
// @Tags Contact
// @Accept json
// @Produce json
// @Param contact body CreateContactRequest true "留言内容"
// @Success 201 {object} response.Response
// @Failure 400 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /contact [post]
func (c *ContactController) CreateContact() {
	var req CreateContactRequest
	if err := c.Ctx.ShouldBindJSON(&req); err != nil {
		response.FailWithMessage(c.Ctx, code.ErrContactInvalid, "无效的请求参数: "+err.Error(), nil)
		return
	}

	contact := &models.Contact{
		Name:     req.Name,
		Email:    req.Email,
		Phone:    req.Phone,
		Message:  req.Message,
		Interest: req.Interest,
	}

	contactService := c.Container.GetService("contact").(services.InterfaceContactService)
	if err := contactService.CreateContact(contact); err != nil {
		logger.Error("保存留言失败: %v", err)
		response.FailWithMessage(c.Ctx, code.ErrDatabase, "提交留言失败", nil)
		return
	}

	response.Created(c.Ctx, contact)
}

// 2. GetContacts 获取所有留言
// @Summary 获取留言列表
// @Description 获取所有留言，按提交时间倒序
// @Tags Contact
// @Accept json
// @Produce json
// @Security BearerAuth
// @Success 200 {object} response.Response
// @Failure 401 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /contact [get]
func (c *ContactController) GetContacts() {
	contactService := c.Container.GetService("contact").(services.InterfaceContactService)
	contacts, err := contactService.GetAllContacts()
	if err != nil {
		logger.Error("获取留言列表失败: %v", err)
		response.FailWithMessage(c.Ctx, code.ErrDatabase, "获取留言列表失败", nil)
		return
	}

	response.Success(c.Ctx, contacts)
}
