package controllers

import (
	"errors"
	"strconv"

	"natura-http-service/internal/app/middleware"
	"natura-http-service/internal/domain/models"
	"natura-http-service/internal/domain/services"
	"natura-http-service/internal/domain/services/container"
	"natura-http-service/internal/error/code"
	"natura-http-service/internal/error/response"
	"natura-http-service/pkg/logger"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// InterfaceGalleryController 定义相册控制器接口
type InterfaceGalleryController interface {
	GetGalleryItems()
	CreateGalleryItem()
	UpdateGalleryItem()
	DeleteGalleryItem()
}

// GalleryController 处理相册相关的请求
type GalleryController struct {
	Ctx       *gin.Context
	Container *container.ServiceContainer
}

// NewGalleryController 创建一个新的相册控制器
func NewGalleryController(ctx *gin.Context, container *container.ServiceContainer) *GalleryController {
	return &GalleryController{
		Ctx:       ctx,
		Container: container,
	}
}

// HandleGalleryFunc 返回一个处理相册请求的Gin处理函数
func HandleGalleryFunc(container *container.ServiceContainer, method string) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		controller := NewGalleryController(ctx, container)

		switch method {
		case "getGalleryItems":
			controller.GetGalleryItems()
		case "createGalleryItem":
			controller.CreateGalleryItem()
		case "updateGalleryItem":
			controller.UpdateGalleryItem()
		case "deleteGalleryItem":
			controller.DeleteGalleryItem()
		default:
			response.FailWithMessage(ctx, code.ErrBind, "无效的方法", nil)
		}
	}
}

// 1. GetGalleryItems 获取所有相册条目
// @Summary 获取相册列表
// @Description 获取所有相册条目，按创建时间倒序
// @Tags Gallery
// @Accept json
// @Produce json
// @Success 200 {object} response.Response
// @Failure 500 {object} ErrorResponse
// @Router /gallery [get]
func (c *GalleryController) GetGalleryItems() {
	// 先查列表缓存
	redisService := c.Container.GetRedisService()
	if redisService != nil {
		var cached []models.GalleryItem
		if redisService.GetList(services.GalleryListCacheKey, &cached) {
			response.Success(c.Ctx, cached)
			return
		}
	}

	galleryService := c.Container.GetService("gallery").(services.InterfaceGalleryService)
	items, err := galleryService.GetAllGalleryItems()
	if err != nil {
		logger.Error("获取相册列表失败: %v", err)
		response.FailWithMessage(c.Ctx, code.ErrDatabase, "获取相册列表失败", nil)
		return
	}

	if redisService != nil {
		if err := redisService.CacheList(services.GalleryListCacheKey, items); err != nil {
			logger.Warning("缓存相册列表失败: %v", err)
		}
	}

	response.Success(c.Ctx, items)
}

// 2. CreateGalleryItem 上传相册图片
// @Summary 上传相册图片
// @Description 创建新相册条目，图片为必填项，标题和描述可选
// @Tags Gallery
// @Accept multipart/form-data
// @Produce json
// @Security BearerAuth
// @Param title formData string false "标题"
// @Param description formData string false "描述"
// @Param image formData file true "相册图片"
// @Success 201 {object} response.Response
// @Failure 400 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /gallery/upload [post]
func (c *GalleryController) CreateGalleryItem() {
	// 上传中间件写入的图片地址和删除句柄
	imageURL := c.Ctx.GetString(middleware.ImageURLKey)
	publicID := c.Ctx.GetString(middleware.ImagePublicIDKey)
	if imageURL == "" {
		response.Fail(c.Ctx, code.ErrImageRequired, nil)
		return
	}

	item := &models.GalleryItem{
		Title:       c.Ctx.PostForm("title"),
		Description: c.Ctx.PostForm("description"),
		ImageURL:    imageURL,
		PublicID:    publicID,
	}

	galleryService := c.Container.GetService("gallery").(services.InterfaceGalleryService)
	if err := galleryService.CreateGalleryItem(item); err != nil {
		logger.Error("创建相册条目失败: %v", err)
		response.FailWithMessage(c.Ctx, code.ErrDatabase, "创建相册条目失败", nil)
		return
	}

	c.invalidateListCache()
	response.Created(c.Ctx, item)
}

// 3. UpdateGalleryItem 更新相册条目
// @Summary 更新相册条目
// @Description 更新相册条目，仅覆盖请求中出现的字段；携带新图片时旧图片会被删除
// @Tags Gallery
// @Accept multipart/form-data
// @Produce json
// @Security BearerAuth
// @Param id path int true "相册条目ID"
// @Success 200 {object} response.Response
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /gallery/{id} [put]
func (c *GalleryController) UpdateGalleryItem() {
	itemID, err := strconv.Atoi(c.Ctx.Param("id"))
	if err != nil {
		response.ParamError(c.Ctx, "无效的相册条目ID")
		return
	}

	// 仅收集请求中出现的字段，区分"未提供"和"提供了空值"
	updates := make(map[string]interface{})

	if title, ok := c.Ctx.GetPostForm("title"); ok {
		updates["title"] = title
	}
	if description, ok := c.Ctx.GetPostForm("description"); ok {
		updates["description"] = description
	}

	// 上传中间件已处理的新图片
	if imageURL := c.Ctx.GetString(middleware.ImageURLKey); imageURL != "" {
		updates["image_url"] = imageURL
		updates["public_id"] = c.Ctx.GetString(middleware.ImagePublicIDKey)
	}

	galleryService := c.Container.GetService("gallery").(services.InterfaceGalleryService)
	item, err := galleryService.UpdateGalleryItem(c.Ctx.Request.Context(), uint(itemID), updates)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			response.Fail(c.Ctx, code.ErrGalleryNotFound, nil)
			return
		}
		logger.Error("更新相册条目失败 id=%d: %v", itemID, err)
		response.FailWithMessage(c.Ctx, code.ErrDatabase, "更新相册条目失败", nil)
		return
	}

	c.invalidateListCache()
	response.Success(c.Ctx, item)
}

// 4. DeleteGalleryItem 删除相册条目
// @Summary 删除相册条目
// @Description 删除指定相册条目，关联的外部图片尽力清理
// @Tags Gallery
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "相册条目ID"
// @Success 200 {object} response.Response
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /gallery/{id} [delete]
func (c *GalleryController) DeleteGalleryItem() {
	itemID, err := strconv.Atoi(c.Ctx.Param("id"))
	if err != nil {
		response.ParamError(c.Ctx, "无效的相册条目ID")
		return
	}

	galleryService := c.Container.GetService("gallery").(services.InterfaceGalleryService)
	if err := galleryService.DeleteGalleryItem(c.Ctx.Request.Context(), uint(itemID)); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			response.Fail(c.Ctx, code.ErrGalleryNotFound, nil)
			return
		}
		logger.Error("删除相册条目失败 id=%d: %v", itemID, err)
		response.FailWithMessage(c.Ctx, code.ErrDatabase, "删除相册条目失败", nil)
		return
	}

	c.invalidateListCache()
	response.Success(c.Ctx, nil)
}

// invalidateListCache 相册数据变更后使列表缓存失效
func (c *GalleryController) invalidateListCache() {
	if redisService := c.Container.GetRedisService(); redisService != nil {
		redisService.InvalidateList(services.GalleryListCacheKey)
	}
}
