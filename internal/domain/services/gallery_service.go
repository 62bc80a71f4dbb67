package services

import (
	"context"
	"errors"

	"natura-http-service/internal/domain/models"
	"natura-http-service/internal/infrastructure/config"
	"natura-http-service/pkg/logger"

	"gorm.io/gorm"
)

// InterfaceGalleryService 定义相册服务接口
type InterfaceGalleryService interface {
	GetAllGalleryItems() ([]models.GalleryItem, error)
	GetGalleryItemByID(id uint) (*models.GalleryItem, error)
	CreateGalleryItem(item *models.GalleryItem) error
	UpdateGalleryItem(ctx context.Context, id uint, updates map[string]interface{}) (*models.GalleryItem, error)
	DeleteGalleryItem(ctx context.Context, id uint) error
}

// GalleryService 提供相册相关的服务
type GalleryService struct {
	DB      *gorm.DB
	Config  *config.Config
	Storage InterfaceStorageService
}

// NewGalleryService 创建一个新的相册服务
func NewGalleryService(db *gorm.DB, cfg *config.Config, storage InterfaceStorageService) *GalleryService {
	return &GalleryService{
		DB:      db,
		Config:  cfg,
		Storage: storage,
	}
}

// GetAllGalleryItems 获取所有相册条目，按创建时间倒序
func (s *GalleryService) GetAllGalleryItems() ([]models.GalleryItem, error) {
	var items []models.GalleryItem
	if err := s.DB.Order("created_at DESC").Find(&items).Error; err != nil {
		return nil, err
	}
	return items, nil
}

// GetGalleryItemByID 根据ID获取相册条目
func (s *GalleryService) GetGalleryItemByID(id uint) (*models.GalleryItem, error) {
	var item models.GalleryItem
	if err := s.DB.First(&item, id).Error; err != nil {
		return nil, err
	}
	return &item, nil
}

// CreateGalleryItem 创建新相册条目
func (s *GalleryService) CreateGalleryItem(item *models.GalleryItem) error {
	// 图片URL和删除句柄必须成对出现
	if item.ImageURL == "" || item.PublicID == "" {
		return errors.New("相册图片为必填项")
	}

	return s.DB.Create(item).Error
}

// UpdateGalleryItem 更新相册条目，仅覆盖提供的字段；
// 如果更新中带有新图片，会先尽力删除旧的外部图片
func (s *GalleryService) UpdateGalleryItem(ctx context.Context, id uint, updates map[string]interface{}) (*models.GalleryItem, error) {
	item, err := s.GetGalleryItemByID(id)
	if err != nil {
		return nil, err
	}

	// 替换图片时清理旧的外部资源，失败只记录日志
	if newPublicID, ok := updates["public_id"].(string); ok && newPublicID != "" {
		if item.PublicID != "" && item.PublicID != newPublicID {
			s.destroyAsset(ctx, item.PublicID)
		}
	}

	if len(updates) > 0 {
		if err := s.DB.Model(item).Updates(updates).Error; err != nil {
			return nil, err
		}
	}

	// 重新获取更新后的相册条目
	return s.GetGalleryItemByID(id)
}

// DeleteGalleryItem 删除相册条目，先尽力删除关联的外部图片，再删除数据库记录
func (s *GalleryService) DeleteGalleryItem(ctx context.Context, id uint) error {
	item, err := s.GetGalleryItemByID(id)
	if err != nil {
		return err
	}

	if item.PublicID != "" {
		s.destroyAsset(ctx, item.PublicID)
	}

	return s.DB.Delete(item).Error
}

// destroyAsset 尽力删除外部图片，失败不阻塞主流程
func (s *GalleryService) destroyAsset(ctx context.Context, publicID string) {
	if s.Storage == nil {
		return
	}
	if err := s.Storage.DeleteImage(ctx, publicID); err != nil {
		logger.Warning("删除相册图片失败 public_id=%s: %v", publicID, err)
	}
}
