package container

import (
	"context"
	"log"
	"sync"
	"time"

	"natura-http-service/internal/domain/services"
	"natura-http-service/internal/infrastructure/config"

	"github.com/go-redis/redis/v8"
	"gorm.io/gorm"
)

// ServiceContainer 管理所有服务的依赖注入
type ServiceContainer struct {
	db     *gorm.DB
	config *config.Config
	redis  *redis.Client

	// 基础服务
	jwtService     services.InterfaceJWTService
	storageService services.InterfaceStorageService
	redisService   services.InterfaceRedisService

	// 业务服务
	adminService   services.InterfaceAdminService
	contactService services.InterfaceContactService
	productService services.InterfaceProductService
	galleryService services.InterfaceGalleryService

	mu sync.RWMutex
}

// NewServiceContainer 创建新的服务容器
func NewServiceContainer(db *gorm.DB, cfg *config.Config, redisClient *redis.Client) *ServiceContainer {
	if db == nil {
		panic("数据库连接为空")
	}

	if cfg == nil {
		panic("配置为空")
	}

	// 测试Redis连接
	if redisClient != nil {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()

		if err := redisClient.Ping(ctx).Err(); err != nil {
			log.Printf("Redis连接测试失败: %v，将不使用Redis缓存", err)
			redisClient = nil
		}
	}

	container := &ServiceContainer{
		db:     db,
		config: cfg,
		redis:  redisClient,
	}
	container.initializeServices()
	return container
}

// initializeServices 初始化所有服务
func (c *ServiceContainer) initializeServices() {
	c.mu.Lock()
	defer c.mu.Unlock()

	// 初始化基础服务
	c.jwtService = services.NewJWTService(c.config)

	// 初始化图片存储服务，凭证缺失时仅告警，上传接口将返回错误
	if storage, err := services.NewCloudinaryStorageService(c.config); err != nil {
		log.Printf("图片存储服务初始化失败: %v", err)
	} else {
		c.storageService = storage
	}

	// 初始化Redis缓存服务
	if c.redis != nil {
		c.redisService = services.NewRedisService(c.config)
	}

	// 初始化业务服务
	c.adminService = services.NewAdminService(c.db, c.config)
	c.contactService = services.NewContactService(c.db, c.config)
	c.productService = services.NewProductService(c.db, c.config, c.storageService)
	c.galleryService = services.NewGalleryService(c.db, c.config, c.storageService)
}

// SetStorageService 替换图片存储服务（测试时注入假实现）
func (c *ServiceContainer) SetStorageService(storage services.InterfaceStorageService) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.storageService = storage
	c.productService = services.NewProductService(c.db, c.config, storage)
	c.galleryService = services.NewGalleryService(c.db, c.config, storage)
}

// GetService 获取指定名称的服务
func (c *ServiceContainer) GetService(name string) interface{} {
	c.mu.RLock()
	defer c.mu.RUnlock()

	switch name {
	case "config":
		return c.config
	case "db":
		return c.db
	case "jwt":
		return c.jwtService
	case "storage":
		return c.storageService
	case "redis":
		return c.redisService
	case "admin":
		return c.adminService
	case "contact":
		return c.contactService
	case "product":
		return c.productService
	case "gallery":
		return c.galleryService
	default:
		return nil
	}
}

// GetDB 获取数据库连接
func (c *ServiceContainer) GetDB() *gorm.DB {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.db
}

// GetStorageService 获取图片存储服务
func (c *ServiceContainer) GetStorageService() services.InterfaceStorageService {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.storageService
}

// GetRedisService 获取Redis缓存服务，未启用时返回nil
func (c *ServiceContainer) GetRedisService() services.InterfaceRedisService {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.redisService
}
