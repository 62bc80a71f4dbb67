package services

import (
	"context"
	"errors"

	"natura-http-service/internal/domain/models"
	"natura-http-service/internal/infrastructure/config"
	"natura-http-service/pkg/logger"

	"gorm.io/gorm"
)

// InterfaceProductService 定义产品服务接口
type InterfaceProductService interface {
	GetAllProducts() ([]models.Product, error)
	GetProductByID(id uint) (*models.Product, error)
	CreateProduct(product *models.Product) error
	UpdateProduct(ctx context.Context, id uint, updates map[string]interface{}) (*models.Product, error)
	DeleteProduct(ctx context.Context, id uint) error
}

// ProductService 提供产品相关的服务
type ProductService struct {
	DB      *gorm.DB
	Config  *config.Config
	Storage InterfaceStorageService
}

// NewProductService 创建一个新的产品服务
func NewProductService(db *gorm.DB, cfg *config.Config, storage InterfaceStorageService) *ProductService {
	return &ProductService{
		DB:      db,
		Config:  cfg,
		Storage: storage,
	}
}

// GetAllProducts 获取所有产品，按创建时间倒序
func (s *ProductService) GetAllProducts() ([]models.Product, error) {
	var products []models.Product
	if err := s.DB.Order("created_at DESC").Find(&products).Error; err != nil {
		return nil, err
	}
	return products, nil
}

// GetProductByID 根据ID获取产品
func (s *ProductService) GetProductByID(id uint) (*models.Product, error) {
	var product models.Product
	if err := s.DB.First(&product, id).Error; err != nil {
		return nil, err
	}
	return &product, nil
}

// CreateProduct 创建新产品
func (s *ProductService) CreateProduct(product *models.Product) error {
	if product.Name == "" {
		return errors.New("产品名称为必填项")
	}
	if product.Price <= 0 {
		return errors.New("产品价格必须大于0")
	}
	// 图片URL和删除句柄必须成对出现
	if product.ImageURL == "" || product.PublicID == "" {
		return errors.New("产品图片为必填项")
	}
	if product.Status == "" {
		product.Status = models.ProductStatusActive
	}

	return s.DB.Create(product).Error
}

// UpdateProduct 更新产品信息，仅覆盖提供的字段；
// 如果更新中带有新图片，会先尽力删除旧的外部图片
func (s *ProductService) UpdateProduct(ctx context.Context, id uint, updates map[string]interface{}) (*models.Product, error) {
	product, err := s.GetProductByID(id)
	if err != nil {
		return nil, err
	}

	// 替换图片时清理旧的外部资源，失败只记录日志
	if newPublicID, ok := updates["public_id"].(string); ok && newPublicID != "" {
		if product.PublicID != "" && product.PublicID != newPublicID {
			s.destroyAsset(ctx, product.PublicID)
		}
	}

	if len(updates) > 0 {
		if err := s.DB.Model(product).Updates(updates).Error; err != nil {
			return nil, err
		}
	}

	// 重新获取更新后的产品信息
	return s.GetProductByID(id)
}

// DeleteProduct 删除产品，先尽力删除关联的外部图片，再删除数据库记录
func (s *ProductService) DeleteProduct(ctx context.Context, id uint) error {
	product, err := s.GetProductByID(id)
	if err != nil {
		return err
	}

	if product.PublicID != "" {
		s.destroyAsset(ctx, product.PublicID)
	}

	return s.DB.Delete(product).Error
}

// destroyAsset 尽力删除外部图片，失败不阻塞主流程
func (s *ProductService) destroyAsset(ctx context.Context, publicID string) {
	if s.Storage == nil {
		return
	}
	if err := s.Storage.DeleteImage(ctx, publicID); err != nil {
		logger.Warning("删除产品图片失败 public_id=%s: %v", publicID, err)
	}
}
