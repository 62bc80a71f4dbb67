package services

import (
	"context"
	"database/sql"
	"errors"
	"io"
	"sync"
	"testing"

	"natura-http-service/internal/domain/models"
	"natura-http-service/internal/infrastructure/config"

	"github.com/google/uuid"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
	_ "modernc.org/sqlite"
)

// newTestDB 创建一个内存SQLite数据库并迁移所有模型
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	// 每个测试使用独立的共享缓存内存库，避免连接池拿到不同的库
	dsn := "file:" + uuid.NewString() + "?mode=memory&cache=shared"
	sqlDB, err := sql.Open("sqlite", dsn)
	if err != nil {
		t.Fatalf("打开测试数据库失败: %v", err)
	}

	db, err := gorm.Open(sqlite.Dialector{
		DriverName: "sqlite",
		DSN:        dsn,
		Conn:       sqlDB,
	}, &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("连接测试数据库失败: %v", err)
	}

	if err := db.AutoMigrate(
		&models.Admin{},
		&models.Contact{},
		&models.Product{},
		&models.GalleryItem{},
	); err != nil {
		t.Fatalf("迁移测试数据库失败: %v", err)
	}

	t.Cleanup(func() {
		sqlDB.Close()
	})
	return db
}

// testConfig 返回测试用配置
func testConfig() *config.Config {
	return &config.Config{
		JWTSecretKey:         "test-secret",
		DefaultAdminPassword: "admin",
	}
}

// fakeStorage 记录上传和删除调用的假图片存储
type fakeStorage struct {
	mu        sync.Mutex
	uploads   []string
	destroyed []string
	uploadErr error
	deleteErr error
}

func (f *fakeStorage) UploadImage(ctx context.Context, file io.Reader, filename, folder string) (*UploadedImage, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.uploadErr != nil {
		return nil, f.uploadErr
	}
	publicID := folder + "/" + filename
	f.uploads = append(f.uploads, publicID)
	return &UploadedImage{
		URL:      "https://cdn.example.com/" + publicID,
		PublicID: publicID,
	}, nil
}

func (f *fakeStorage) DeleteImage(ctx context.Context, publicID string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.destroyed = append(f.destroyed, publicID)
	return f.deleteErr
}

func (f *fakeStorage) destroyedIDs() []string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]string(nil), f.destroyed...)
}

var errStorageDown = errors.New("外部存储不可用")
