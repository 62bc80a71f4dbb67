package controllers

import (
	"errors"
	"strconv"

	"natura-http-service/internal/domain/models"
	"natura-http-service/internal/domain/services"
	"natura-http-service/internal/domain/services/container"
	"natura-http-service/internal/error/code"
	"natura-http-service/internal/error/response"
	"natura-http-service/pkg/logger"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// InterfaceAdminController 定义管理员控制器接口
type InterfaceAdminController interface {
	GetAdmins()
	GetAdmin()
	CreateAdmin()
	UpdateAdmin()
	DeleteAdmin()
}

// AdminController 管理员控制器
type AdminController struct {
	Ctx       *gin.Context
	Container *container.ServiceContainer
}

// NewAdminController 创建一个新的管理员控制器
func NewAdminController(ctx *gin.Context, container *container.ServiceContainer) *AdminController {
	return &AdminController{
		Ctx:       ctx,
		Container: container,
	}
}

// CreateAdminRequest 创建管理员请求
type CreateAdminRequest struct {
	Username string `json:"username" binding:"required" example:"admin123"`
	Password string `json:"password" binding:"required" example:"Admin@123"`
}

// UpdateAdminRequest 更新管理员请求
type UpdateAdminRequest struct {
	Username string `json:"username" example:"admin123"`
	Password string `json:"password" example:"NewPassword@123"`
}

// HandleAdminFunc 返回一个处理管理员请求的Gin处理函数
func HandleAdminFunc(container *container.ServiceContainer, method string) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		controller := NewAdminController(ctx, container)

		switch method {
		case "getAdmins":
			controller.GetAdmins()
		case "getAdmin":
			controller.GetAdmin()
		case "createAdmin":
			controller.CreateAdmin()
		case "updateAdmin":
			controller.UpdateAdmin()
		case "deleteAdmin":
			controller.DeleteAdmin()
		default:
			response.FailWithMessage(ctx, code.ErrBind, "无效的方法", nil)
		}
	}
}

// 1. GetAdmins 获取所有管理员
// @Summary 获取管理员列表
// @Description 获取系统中所有管理员，支持分页
// @Tags Admin
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param page query int false "页码，默认为1"
// @Param page_size query int false "每页条数，默认为10"
// @Success 200 {object} response.Response
// @Failure 500 {object} ErrorResponse
// @Router /admin [get]
func (c *AdminController) GetAdmins() {
	// 获取分页参数
	page, _ := strconv.Atoi(c.Ctx.DefaultQuery("page", "1"))
	pageSize, _ := strconv.Atoi(c.Ctx.DefaultQuery("page_size", "10"))
	if page < 1 {
		page = 1
	}
	if pageSize < 1 || pageSize > 100 {
		pageSize = 10
	}

	adminService := c.Container.GetService("admin").(services.InterfaceAdminService)
	admins, total, err := adminService.GetAllAdmins(page, pageSize)
	if err != nil {
		logger.Error("获取管理员列表失败: %v", err)
		response.FailWithMessage(c.Ctx, code.ErrDatabase, "获取管理员列表失败", nil)
		return
	}

	response.Success(c.Ctx, gin.H{
		"total":     total,
		"page":      page,
		"page_size": pageSize,
		"data":      admins,
	})
}

// 2. GetAdmin 获取单个管理员
// @Summary 获取管理员详情
// @Description 根据ID获取管理员信息
// @Tags Admin
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "管理员ID"
// @Success 200 {object} response.Response
// @Failure 404 {object} ErrorResponse
// @Router /admin/{id} [get]
func (c *AdminController) GetAdmin() {
	adminID, err := strconv.Atoi(c.Ctx.Param("id"))
	if err != nil {
		response.ParamError(c.Ctx, "无效的管理员ID")
		return
	}

	adminService := c.Container.GetService("admin").(services.InterfaceAdminService)
	admin, err := adminService.GetAdminByID(uint(adminID))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			response.Fail(c.Ctx, code.ErrAdminNotFound, nil)
			return
		}
		logger.Error("获取管理员失败 id=%d: %v", adminID, err)
		response.FailWithMessage(c.Ctx, code.ErrDatabase, "获取管理员失败", nil)
		return
	}

	response.Success(c.Ctx, admin)
}

// 3. CreateAdmin 创建新管理员
// @Summary 创建管理员
// @Description 创建一个新的管理员账户，用户名必须唯一
// @Tags Admin
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param admin body CreateAdminRequest true "管理员信息"
// @Success 201 {object} response.Response
// @Failure 400 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /admin [post]
func (c *AdminController) CreateAdmin() {
	var req CreateAdminRequest
	if err := c.Ctx.ShouldBindJSON(&req); err != nil {
		response.FailWithMessage(c.Ctx, code.ErrBind, "无效的请求参数: "+err.Error(), nil)
		return
	}

	admin := &models.Admin{
		Username: req.Username,
		Password: req.Password,
	}

	adminService := c.Container.GetService("admin").(services.InterfaceAdminService)
	if err := adminService.CreateAdmin(admin); err != nil {
		response.FailWithMessage(c.Ctx, code.ErrAdminAlreadyExist, "创建管理员失败: "+err.Error(), nil)
		return
	}

	response.Created(c.Ctx, admin)
}

// 4. UpdateAdmin 更新管理员信息
// @Summary 更新管理员
// @Description 更新管理员的用户名或密码，仅覆盖提供的字段
// @Tags Admin
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "管理员ID"
// @Param admin body UpdateAdminRequest true "管理员信息"
// @Success 200 {object} response.Response
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /admin/{id} [put]
func (c *AdminController) UpdateAdmin() {
	adminID, err := strconv.Atoi(c.Ctx.Param("id"))
	if err != nil {
		response.ParamError(c.Ctx, "无效的管理员ID")
		return
	}

	var req UpdateAdminRequest
	if err := c.Ctx.ShouldBindJSON(&req); err != nil {
		response.FailWithMessage(c.Ctx, code.ErrBind, "无效的请求参数: "+err.Error(), nil)
		return
	}

	// 创建更新映射
	updates := make(map[string]interface{})
	if req.Username != "" {
		updates["username"] = req.Username
	}
	if req.Password != "" {
		updates["password"] = req.Password
	}

	adminService := c.Container.GetService("admin").(services.InterfaceAdminService)
	admin, err := adminService.UpdateAdmin(uint(adminID), updates)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			response.Fail(c.Ctx, code.ErrAdminNotFound, nil)
			return
		}
		response.FailWithMessage(c.Ctx, code.ErrDatabase, "更新管理员失败: "+err.Error(), nil)
		return
	}

	response.Success(c.Ctx, admin)
}

// 5. DeleteAdmin 删除管理员
// @Summary 删除管理员
// @Description 删除指定管理员，系统中必须保留至少一个管理员
// @Tags Admin
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "管理员ID"
// @Success 200 {object} response.Response
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /admin/{id} [delete]
func (c *AdminController) DeleteAdmin() {
	adminID, err := strconv.Atoi(c.Ctx.Param("id"))
	if err != nil {
		response.ParamError(c.Ctx, "无效的管理员ID")
		return
	}

	adminService := c.Container.GetService("admin").(services.InterfaceAdminService)
	if err := adminService.DeleteAdmin(uint(adminID)); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			response.Fail(c.Ctx, code.ErrAdminNotFound, nil)
			return
		}
		response.FailWithMessage(c.Ctx, code.ErrDatabase, "删除管理员失败: "+err.Error(), nil)
		return
	}

	response.Success(c.Ctx, nil)
}
