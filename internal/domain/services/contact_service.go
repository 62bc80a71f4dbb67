package services

import (
	"errors"
	"strings"

	"natura-http-service/internal/domain/models"
	"natura-http-service/internal/infrastructure/config"

	"gorm.io/gorm"
)

// InterfaceContactService 定义留言服务接口
type InterfaceContactService interface {
	CreateContact(contact *models.Contact) error
	GetAllContacts() ([]models.Contact, error)
}

// ContactService 提供留言相关的服务
type ContactService struct {
	DB     *gorm.DB
	Config *config.Config
}

// NewContactService 创建一个新的留言服务
func NewContactService(db *gorm.DB, cfg *config.Config) *ContactService {
	return &ContactService{
		DB:     db,
		Config: cfg,
	}
}

// CreateContact 创建新留言
func (s *ContactService) CreateContact(contact *models.Contact) error {
	// 去除首尾空白
	contact.Name = strings.TrimSpace(contact.Name)
	contact.Email = strings.TrimSpace(contact.Email)
	contact.Phone = strings.TrimSpace(contact.Phone)
	contact.Message = strings.TrimSpace(contact.Message)

	if contact.Name == "" || contact.Email == "" || contact.Message == "" {
		return errors.New("姓名、邮箱和留言内容为必填项")
	}

	// 意向类型默认为 general
	if contact.Interest == "" {
		contact.Interest = models.InterestGeneral
	}
	if !models.ValidInterest(contact.Interest) {
		return errors.New("无效的意向类型")
	}

	return s.DB.Create(contact).Error
}

// GetAllContacts 获取所有留言，按提交时间倒序
func (s *ContactService) GetAllContacts() ([]models.Contact, error) {
	var contacts []models.Contact
	if err := s.DB.Order("created_at DESC").Find(&contacts).Error; err != nil {
		return nil, err
	}
	return contacts, nil
}
