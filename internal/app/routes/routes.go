package routes

import (
	_ "natura-http-service/docs"
	"natura-http-service/internal/app/controllers"
	"natura-http-service/internal/app/middleware"
	"natura-http-service/internal/domain/services"
	"natura-http-service/internal/domain/services/container"
	"natura-http-service/internal/infrastructure/config"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"gorm.io/gorm"
)

// SetupRouter 初始化并返回配置好的路由
func SetupRouter(db *gorm.DB, cfg *config.Config) *gin.Engine {
	// 初始化 Gin
	r := gin.Default()

	// 添加 CORS 中间件
	r.Use(func(c *gin.Context) {
		c.Writer.Header().Set("Access-Control-Allow-Origin", "*")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Content-Type, Content-Length, Accept-Encoding, X-CSRF-Token, Authorization, Accept, Origin, Cache-Control, X-Requested-With")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS, PATCH")
		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(204)
			return
		}

		c.Next()
	})
	// 设置正确的Content-Type，确保UTF-8编码
	r.Use(func(c *gin.Context) {
		c.Writer.Header().Set("Content-Type", "application/json; charset=utf-8")
		c.Next()
	})
	// 创建Redis客户端，连接失败时容器将自动降级为无缓存模式
	redisClient := redis.NewClient(&redis.Options{
		Addr: cfg.GetRedisAddr(),
		DB:   cfg.RedisDB,
	})
	// 创建服务容器
	serviceContainer := container.NewServiceContainer(db, cfg, redisClient)
	// 初始化中间件
	middleware.InitAuthMiddleware(cfg)
	// 添加 Swagger 文档路由
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// 注册路由
	registerRoutes(r, serviceContainer)
	return r
}

// registerRoutes 配置所有API路由
func registerRoutes(
	r *gin.Engine,
	container *container.ServiceContainer,
) {
	// API 路由根路径
	api := r.Group("/api")
	// 注册公共路由
	registerPublicRoutes(api, container)
	// 注册需要认证的路由
	registerAuthenticatedRoutes(api, container)
}

// registerPublicRoutes 注册公共路由
func registerPublicRoutes(
	api *gin.RouterGroup,
	container *container.ServiceContainer,
) {
	// 健康检查路由
	api.GET("/ping", controllers.HandleHealthFunc(container, "ping"))
	api.GET("/health", controllers.HandleHealthFunc(container, "status"))

	// 认证路由
	api.POST("/auth/login", controllers.HandleJWTFunc(container, "login"))

	// 联系表单提交 - 每秒2个请求，最多突发5个，防止表单滥用
	api.POST("/contact", middleware.RateLimit(2, 5), controllers.HandleContactFunc(container, "createContact"))

	// 商品与画廊的公开读取路由
	api.GET("/products", controllers.HandleProductFunc(container, "getProducts"))
	api.GET("/gallery", controllers.HandleGalleryFunc(container, "getGalleryItems"))
}

// registerAuthenticatedRoutes 注册需要认证的路由
func registerAuthenticatedRoutes(
	api *gin.RouterGroup,
	container *container.ServiceContainer,
) {
	// 添加认证中间件
	auth := api.Group("/")
	auth.Use(middleware.AuthenticateAdmin())

	// 添加通用限流中间件 - 每秒30个请求，最多突发50个请求
	auth.Use(middleware.RateLimit(30, 50))

	// 联系表单查看路由
	auth.GET("/contact", controllers.HandleContactFunc(container, "getContacts"))

	// 商品路由
	productGroup := auth.Group("/products")
	productGroup.POST("/upload", middleware.ImageUpload(container, services.ProductFolder), controllers.HandleProductFunc(container, "createProduct"))
	productGroup.PUT("/:id", middleware.ImageUpload(container, services.ProductFolder), controllers.HandleProductFunc(container, "updateProduct"))
	productGroup.DELETE("/:id", controllers.HandleProductFunc(container, "deleteProduct"))

	// 画廊路由
	galleryGroup := auth.Group("/gallery")
	galleryGroup.POST("/upload", middleware.ImageUpload(container, services.GalleryFolder), controllers.HandleGalleryFunc(container, "createGalleryItem"))
	galleryGroup.PUT("/:id", middleware.ImageUpload(container, services.GalleryFolder), controllers.HandleGalleryFunc(container, "updateGalleryItem"))
	galleryGroup.DELETE("/:id", controllers.HandleGalleryFunc(container, "deleteGalleryItem"))

	// 管理员路由
	adminGroup := auth.Group("/admin")
	adminGroup.GET("", controllers.HandleAdminFunc(container, "getAdmins"))
	adminGroup.GET("/:id", controllers.HandleAdminFunc(container, "getAdmin"))
	adminGroup.POST("", controllers.HandleAdminFunc(container, "createAdmin"))
	adminGroup.PUT("/:id", controllers.HandleAdminFunc(container, "updateAdmin"))
	adminGroup.DELETE("/:id", controllers.HandleAdminFunc(container, "deleteAdmin"))
}
