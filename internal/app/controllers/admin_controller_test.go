package controllers

import (
	"encoding/json"
	"fmt"
	"net/http"
	"testing"

	"natura-http-service/internal/domain/models"
	"natura-http-service/internal/error/code"
	"natura-http-service/utils"

	"github.com/gin-gonic/gin"
)

func newAdminRouter(t *testing.T) (*gin.Engine, *testEnv) {
	t.Helper()

	c, db, _ := newTestContainer(t)
	r := gin.New()
	r.GET("/api/admin", HandleAdminFunc(c, "getAdmins"))
	r.GET("/api/admin/:id", HandleAdminFunc(c, "getAdmin"))
	r.POST("/api/admin", HandleAdminFunc(c, "createAdmin"))
	r.PUT("/api/admin/:id", HandleAdminFunc(c, "updateAdmin"))
	r.DELETE("/api/admin/:id", HandleAdminFunc(c, "deleteAdmin"))
	return r, &testEnv{db: db}
}

func TestCreateAdminEndpoint(t *testing.T) {
	r, env := newAdminRouter(t)

	w, resp := doJSON(t, r, http.MethodPost, "/api/admin", gin.H{
		"username": "admin2",
		"password": "Admin@123",
	})
	if w.Code != http.StatusCreated {
		t.Fatalf("状态码 = %d, 期望 201, body=%s", w.Code, w.Body.String())
	}

	var created models.Admin
	if err := json.Unmarshal(resp.Data, &created); err != nil {
		t.Fatalf("解析响应数据失败: %v", err)
	}
	if created.Username != "admin2" {
		t.Errorf("Username = %q", created.Username)
	}

	var stored models.Admin
	if err := env.db.First(&stored, created.ID).Error; err != nil {
		t.Fatalf("查询管理员失败: %v", err)
	}
	if !utils.CheckPasswordHash("Admin@123", stored.Password) {
		t.Error("存储的密码哈希无法验证")
	}
}

func TestGetAdminsEndpointPagination(t *testing.T) {
	r, env := newAdminRouter(t)

	for i := 0; i < 3; i++ {
		admin := models.Admin{Username: fmt.Sprintf("admin%d", i), Password: "x"}
		if err := env.db.Create(&admin).Error; err != nil {
			t.Fatalf("写入管理员失败: %v", err)
		}
	}

	w, resp := doJSON(t, r, http.MethodGet, "/api/admin?page=1&page_size=2", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("状态码 = %d, 期望 200", w.Code)
	}

	var data struct {
		Total    int64          `json:"total"`
		Page     int            `json:"page"`
		PageSize int            `json:"page_size"`
		Data     []models.Admin `json:"data"`
	}
	if err := json.Unmarshal(resp.Data, &data); err != nil {
		t.Fatalf("解析响应数据失败: %v", err)
	}
	if data.Total != 3 {
		t.Errorf("total = %d, 期望 3", data.Total)
	}
	if len(data.Data) != 2 {
		t.Errorf("当前页条数 = %d, 期望 2", len(data.Data))
	}
}

func TestDeleteAdminEndpointKeepsLastAdmin(t *testing.T) {
	r, env := newAdminRouter(t)

	admin := models.Admin{Username: "admin", Password: "x"}
	if err := env.db.Create(&admin).Error; err != nil {
		t.Fatalf("写入管理员失败: %v", err)
	}

	w, _ := doJSON(t, r, http.MethodDelete, fmt.Sprintf("/api/admin/%d", admin.ID), nil)
	if w.Code == http.StatusOK {
		t.Error("删除最后一个管理员应失败")
	}

	var count int64
	env.db.Model(&models.Admin{}).Count(&count)
	if count != 1 {
		t.Errorf("管理员数 = %d, 期望 1", count)
	}
}

func TestGetAdminEndpointNotFound(t *testing.T) {
	r, _ := newAdminRouter(t)

	w, resp := doJSON(t, r, http.MethodGet, "/api/admin/999", nil)
	if w.Code != http.StatusNotFound {
		t.Errorf("状态码 = %d, 期望 404", w.Code)
	}
	if resp.Code != code.ErrAdminNotFound {
		t.Errorf("业务码 = %d, 期望 %d", resp.Code, code.ErrAdminNotFound)
	}
}
