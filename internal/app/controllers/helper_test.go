package controllers

import (
	"bytes"
	"context"
	"database/sql"
	"encoding/json"
	"io"
	"mime/multipart"
	"net/http/httptest"
	"sync"
	"testing"

	"natura-http-service/internal/domain/models"
	"natura-http-service/internal/domain/services"
	"natura-http-service/internal/domain/services/container"
	"natura-http-service/internal/infrastructure/config"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
	_ "modernc.org/sqlite"
)

// newTestDB 创建一个内存SQLite数据库并迁移所有模型
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

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

// fakeStorage 记录上传和删除调用的假图片存储
type fakeStorage struct {
	mu        sync.Mutex
	uploads   []string
	destroyed []string
	uploadErr error
	deleteErr error
}

func (f *fakeStorage) UploadImage(ctx context.Context, file io.Reader, filename, folder string) (*services.UploadedImage, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.uploadErr != nil {
		return nil, f.uploadErr
	}
	publicID := folder + "/" + filename
	f.uploads = append(f.uploads, publicID)
	return &services.UploadedImage{
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

// newTestContainer 创建绑定内存数据库和假图片存储的服务容器
func newTestContainer(t *testing.T) (*container.ServiceContainer, *gorm.DB, *fakeStorage) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	db := newTestDB(t)
	cfg := &config.Config{JWTSecretKey: "test-secret"}
	c := container.NewServiceContainer(db, cfg, nil)

	storage := &fakeStorage{}
	c.SetStorageService(storage)
	return c, db, storage
}

// testEnv 聚合测试路由背后的依赖
type testEnv struct {
	db      *gorm.DB
	storage *fakeStorage
}

// envelope 统一响应格式
type envelope struct {
	Code    int             `json:"code"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
}

// doJSON 发送JSON请求并解析统一响应
func doJSON(t *testing.T, r *gin.Engine, method, path string, body interface{}) (*httptest.ResponseRecorder, envelope) {
	t.Helper()

	var reader io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			t.Fatalf("序列化请求失败: %v", err)
		}
		reader = bytes.NewReader(data)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	var env envelope
	if err := json.Unmarshal(w.Body.Bytes(), &env); err != nil {
		t.Fatalf("解析响应失败: %v, body=%s", err, w.Body.String())
	}
	return w, env
}

// multipartBody 构造multipart表单，fields为普通字段，imageName非空时附带图片文件
func multipartBody(t *testing.T, fields map[string]string, imageName string) (*bytes.Buffer, string) {
	t.Helper()

	buf := &bytes.Buffer{}
	writer := multipart.NewWriter(buf)
	for k, v := range fields {
		if err := writer.WriteField(k, v); err != nil {
			t.Fatalf("写入表单字段失败: %v", err)
		}
	}
	if imageName != "" {
		part, err := writer.CreateFormFile("image", imageName)
		if err != nil {
			t.Fatalf("创建文件字段失败: %v", err)
		}
		if _, err := part.Write([]byte("fake image bytes")); err != nil {
			t.Fatalf("写入文件内容失败: %v", err)
		}
	}
	if err := writer.Close(); err != nil {
		t.Fatalf("关闭表单失败: %v", err)
	}
	return buf, writer.FormDataContentType()
}

// doMultipart 发送multipart请求并解析统一响应
func doMultipart(t *testing.T, r *gin.Engine, method, path string, fields map[string]string, imageName string) (*httptest.ResponseRecorder, envelope) {
	t.Helper()

	body, contentType := multipartBody(t, fields, imageName)
	req := httptest.NewRequest(method, path, body)
	req.Header.Set("Content-Type", contentType)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	var env envelope
	if err := json.Unmarshal(w.Body.Bytes(), &env); err != nil {
		t.Fatalf("解析响应失败: %v, body=%s", err, w.Body.String())
	}
	return w, env
}
