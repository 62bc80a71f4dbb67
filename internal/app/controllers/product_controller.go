package controllers

import (
	"errors"
	"strconv"
	"strings"

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

// InterfaceProductController 定义产品控制器接口
type InterfaceProductController interface {
	GetProducts()
	CreateProduct()
	UpdateProduct()
	DeleteProduct()
}

// ProductController 处理产品相关的请求
type ProductController struct {
	Ctx       *gin.Context
	Container *container.ServiceContainer
}

// NewProductController 创建一个新的产品控制器
func NewProductController(ctx *gin.Context, container *container.ServiceContainer) *ProductController {
	return &ProductController{
		Ctx:       ctx,
		Container: container,
	}
}

// HandleProductFunc 返回一个处理产品请求的Gin处理函数
func HandleProductFunc(container *container.ServiceContainer, method string) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		controller := NewProductController(ctx, container)

		switch method {
		case "getProducts":
			controller.GetProducts()
		case "createProduct":
			controller.CreateProduct()
		case "updateProduct":
			controller.UpdateProduct()
		case "deleteProduct":
			controller.DeleteProduct()
		default:
			response.FailWithMessage(ctx, code.ErrBind, "无效的方法", nil)
		}
	}
}

// 1. GetProducts 获取所有产品
// @Summary 获取产品列表
// @Description 获取所有产品，按创建时间倒序
// @Tags Product
// @Accept json
// @Produce json
// @Success 200 {object} response.Response
// @Failure 500 {object} ErrorResponse
// @Router /products [get]
func (c *ProductController) GetProducts() {
	// 先查列表缓存
	redisService := c.Container.GetRedisService()
	if redisService != nil {
		var cached []models.Product
		if redisService.GetList(services.ProductListCacheKey, &cached) {
			response.Success(c.Ctx, cached)
			return
		}
	}

	productService := c.Container.GetService("product").(services.InterfaceProductService)
	products, err := productService.GetAllProducts()
	if err != nil {
		logger.Error("获取产品列表失败: %v", err)
		response.FailWithMessage(c.Ctx, code.ErrDatabase, "获取产品列表失败", nil)
		return
	}

	if redisService != nil {
		if err := redisService.CacheList(services.ProductListCacheKey, products); err != nil {
			logger.Warning("缓存产品列表失败: %v", err)
		}
	}

	response.Success(c.Ctx, products)
}

// 2. CreateProduct 创建新产品
// @Summary 创建产品
// @Description 创建新产品，名称、价格和图片为必填项，图片由上传中间件先行处理
// @Tags Product
// @Accept multipart/form-data
// @Produce json
// @Security BearerAuth
// @Param name formData string true "产品名称"
// @Param price formData number true "产品价格"
// @Param category formData string false "产品分类"
// @Param stock formData int false "库存数量"
// @Param status formData string false "产品状态 Active/Inactive"
// @Param image formData file true "产品图片"
// @Success 201 {object} response.Response
// @Failure 400 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /products/upload [post]
func (c *ProductController) CreateProduct() {
	name := strings.TrimSpace(c.Ctx.PostForm("name"))
	priceStr := c.Ctx.PostForm("price")
	if name == "" || priceStr == "" {
		response.Fail(c.Ctx, code.ErrProductInvalid, nil)
		return
	}

	price, err := strconv.ParseFloat(priceStr, 64)
	if err != nil || price <= 0 {
		response.ParamError(c.Ctx, "无效的产品价格")
		return
	}

	// 上传中间件写入的图片地址和删除句柄
	imageURL := c.Ctx.GetString(middleware.ImageURLKey)
	publicID := c.Ctx.GetString(middleware.ImagePublicIDKey)
	if imageURL == "" {
		response.Fail(c.Ctx, code.ErrImageRequired, nil)
		return
	}

	stock := 0
	if stockStr := c.Ctx.PostForm("stock"); stockStr != "" {
		stock, err = strconv.Atoi(stockStr)
		if err != nil || stock < 0 {
			response.ParamError(c.Ctx, "无效的库存数量")
			return
		}
	}

	status := c.Ctx.PostForm("status")
	if status != "" && status != models.ProductStatusActive && status != models.ProductStatusInactive {
		response.ParamError(c.Ctx, "无效的产品状态")
		return
	}

	product := &models.Product{
		Name:     name,
		Price:    price,
		ImageURL: imageURL,
		PublicID: publicID,
		Category: c.Ctx.PostForm("category"),
		Stock:    stock,
		Status:   status,
	}

	productService := c.Container.GetService("product").(services.InterfaceProductService)
	if err := productService.CreateProduct(product); err != nil {
		logger.Error("创建产品失败: %v", err)
		response.FailWithMessage(c.Ctx, code.ErrDatabase, "创建产品失败", nil)
		return
	}

	c.invalidateListCache()
	response.Created(c.Ctx, product)
}

// 3. UpdateProduct 更新产品信息
// @Summary 更新产品
// @Description 更新产品信息，仅覆盖请求中出现的字段；携带新图片时旧图片会被删除
// @Tags Product
// @Accept multipart/form-data
// @Produce json
// @Security BearerAuth
// @Param id path int true "产品ID"
// @Success 200 {object} response.Response
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /products/{id} [put]
func (c *ProductController) UpdateProduct() {
	productID, err := strconv.Atoi(c.Ctx.Param("id"))
	if err != nil {
		response.ParamError(c.Ctx, "无效的产品ID")
		return
	}

	// 仅收集请求中出现的字段，区分"未提供"和"提供了空值"
	updates := make(map[string]interface{})

	if name, ok := c.Ctx.GetPostForm("name"); ok {
		if strings.TrimSpace(name) == "" {
			response.ParamError(c.Ctx, "产品名称不能为空")
			return
		}
		updates["name"] = strings.TrimSpace(name)
	}
	if priceStr, ok := c.Ctx.GetPostForm("price"); ok {
		price, err := strconv.ParseFloat(priceStr, 64)
		if err != nil || price <= 0 {
			response.ParamError(c.Ctx, "无效的产品价格")
			return
		}
		updates["price"] = price
	}
	if category, ok := c.Ctx.GetPostForm("category"); ok {
		// 分类允许清空
		updates["category"] = category
	}
	if stockStr, ok := c.Ctx.GetPostForm("stock"); ok {
		stock, err := strconv.Atoi(stockStr)
		if err != nil || stock < 0 {
			response.ParamError(c.Ctx, "无效的库存数量")
			return
		}
		updates["stock"] = stock
	}
	if status, ok := c.Ctx.GetPostForm("status"); ok {
		if status != models.ProductStatusActive && status != models.ProductStatusInactive {
			response.ParamError(c.Ctx, "无效的产品状态")
			return
		}
		updates["status"] = status
	}

	// 上传中间件已处理的新图片
	if imageURL := c.Ctx.GetString(middleware.ImageURLKey); imageURL != "" {
		updates["image_url"] = imageURL
		updates["public_id"] = c.Ctx.GetString(middleware.ImagePublicIDKey)
	}

	productService := c.Container.GetService("product").(services.InterfaceProductService)
	product, err := productService.UpdateProduct(c.Ctx.Request.Context(), uint(productID), updates)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			response.Fail(c.Ctx, code.ErrProductNotFound, nil)
			return
		}
		logger.Error("更新产品失败 id=%d: %v", productID, err)
		response.FailWithMessage(c.Ctx, code.ErrDatabase, "更新产品失败", nil)
		return
	}

	c.invalidateListCache()
	response.Success(c.Ctx, product)
}

// 4. DeleteProduct 删除产品
// @Summary 删除产品
// @Description 删除指定产品，关联的外部图片尽力清理
// @Tags Product
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "产品ID"
// @Success 200 {object} response.Response
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /products/{id} [delete]
func (c *ProductController) DeleteProduct() {
	productID, err := strconv.Atoi(c.Ctx.Param("id"))
	if err != nil {
		response.ParamError(c.Ctx, "无效的产品ID")
		return
	}

	productService := c.Container.GetService("product").(services.InterfaceProductService)
	if err := productService.DeleteProduct(c.Ctx.Request.Context(), uint(productID)); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			response.Fail(c.Ctx, code.ErrProductNotFound, nil)
			return
		}
		logger.Error("删除产品失败 id=%d: %v", productID, err)
		response.FailWithMessage(c.Ctx, code.ErrDatabase, "删除产品失败", nil)
		return
	}

	c.invalidateListCache()
	response.Success(c.Ctx, nil)
}

// invalidateListCache 产品数据变更后使列表缓存失效
func (c *ProductController) invalidateListCache() {
	if redisService := c.Container.GetRedisService(); redisService != nil {
		redisService.InvalidateList(services.ProductListCacheKey)
	}
}
