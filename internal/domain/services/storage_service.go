package services

import (
	"context"
	"errors"
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"natura-http-service/internal/infrastructure/config"

	"github.com/cloudinary/cloudinary-go/v2"
	"github.com/cloudinary/cloudinary-go/v2/api"
	"github.com/cloudinary/cloudinary-go/v2/api/uploader"
	"github.com/google/uuid"
)

// 图片存储的逻辑文件夹，按实体类型区分
const (
	ProductFolder = "natura_products"
	GalleryFolder = "natura_gallery"
)

// UploadedImage 上传成功后返回的图片地址和删除句柄
type UploadedImage struct {
	URL      string
	PublicID string
}

// InterfaceStorageService 定义图片存储服务接口
type InterfaceStorageService interface {
	UploadImage(ctx context.Context, file io.Reader, filename, folder string) (*UploadedImage, error)
	DeleteImage(ctx context.Context, publicID string) error
}

// CloudinaryStorageService 基于 Cloudinary 的图片存储服务
type CloudinaryStorageService struct {
	client *cloudinary.Cloudinary
}

// NewCloudinaryStorageService 创建一个新的 Cloudinary 存储服务
func NewCloudinaryStorageService(cfg *config.Config) (*CloudinaryStorageService, error) {
	if !cfg.HasCloudinary() {
		return nil, errors.New("Cloudinary 配置不完整")
	}

	client, err := cloudinary.NewFromParams(cfg.CloudinaryCloudName, cfg.CloudinaryAPIKey, cfg.CloudinaryAPISecret)
	if err != nil {
		return nil, fmt.Errorf("初始化 Cloudinary 客户端失败: %w", err)
	}

	return &CloudinaryStorageService{client: client}, nil
}

// UploadImage 将图片上传到指定文件夹，返回可访问的URL和删除句柄
func (s *CloudinaryStorageService) UploadImage(ctx context.Context, file io.Reader, filename, folder string) (*UploadedImage, error) {
	// 以原文件名加随机后缀作为 public_id，避免同名覆盖
	base := strings.TrimSuffix(filepath.Base(filename), filepath.Ext(filename))
	publicID := fmt.Sprintf("%s_%s", base, uuid.NewString()[:8])

	result, err := s.client.Upload.Upload(ctx, file, uploader.UploadParams{
		PublicID:       publicID,
		Folder:         folder,
		AllowedFormats: api.CldAPIArray{"jpg", "jpeg", "png"},
	})
	if err != nil {
		return nil, fmt.Errorf("上传图片失败: %w", err)
	}
	if result.Error.Message != "" {
		return nil, fmt.Errorf("上传图片失败: %s", result.Error.Message)
	}

	return &UploadedImage{
		URL:      result.SecureURL,
		PublicID: result.PublicID,
	}, nil
}

// DeleteImage 根据删除句柄删除已上传的图片
func (s *CloudinaryStorageService) DeleteImage(ctx context.Context, publicID string) error {
	result, err := s.client.Upload.Destroy(ctx, uploader.DestroyParams{PublicID: publicID})
	if err != nil {
		return fmt.Errorf("删除图片失败: %w", err)
	}
	// "not found" 视为已删除
	if result.Result != "ok" && result.Result != "not found" {
		return fmt.Errorf("删除图片失败: %s", result.Result)
	}
	return nil
}
