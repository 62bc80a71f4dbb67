package controllers

import (
	"encoding/json"
	"net/http"
	"testing"

	"natura-http-service/internal/domain/models"
	"natura-http-service/internal/error/code"

	"github.com/gin-gonic/gin"
)

func newContactRouter(t *testing.T) (*gin.Engine, *testEnv) {
	t.Helper()

	c, db, _ := newTestContainer(t)
	r := gin.New()
	r.POST("/api/contact", HandleContactFunc(c, "createContact"))
	r.GET("/api/contact", HandleContactFunc(c, "getContacts"))
	return r, &testEnv{db: db}
}

func TestCreateContactEndpoint(t *testing.T) {
	r, env := newContactRouter(t)

	w, resp := doJSON(t, r, http.MethodPost, "/api/contact", gin.H{
		"name":     "张三",
		"email":    "zhangsan@example.com",
		"phone":    "13800138000",
		"message":  "想了解批发价格",
		"interest": "wholesale",
	})

	if w.Code != http.StatusCreated {
		t.Fatalf("状态码 = %d, 期望 201, body=%s", w.Code, w.Body.String())
	}
	if resp.Code != code.ErrSuccess {
		t.Errorf("业务码 = %d", resp.Code)
	}

	var count int64
	env.db.Model(&models.Contact{}).Count(&count)
	if count != 1 {
		t.Errorf("留言数 = %d, 期望 1", count)
	}
}

func TestCreateContactEndpointMissingFields(t *testing.T) {
	r, env := newContactRouter(t)

	w, resp := doJSON(t, r, http.MethodPost, "/api/contact", gin.H{
		"name": "张三",
	})

	if w.Code != http.StatusBadRequest {
		t.Errorf("状态码 = %d, 期望 400", w.Code)
	}
	if resp.Code != code.ErrContactInvalid {
		t.Errorf("业务码 = %d, 期望 %d", resp.Code, code.ErrContactInvalid)
	}

	var count int64
	env.db.Model(&models.Contact{}).Count(&count)
	if count != 0 {
		t.Errorf("校验失败时不应写库, 留言数 = %d", count)
	}
}

func TestCreateContactEndpointRejectsUnknownInterest(t *testing.T) {
	r, _ := newContactRouter(t)

	w, _ := doJSON(t, r, http.MethodPost, "/api/contact", gin.H{
		"name":     "张三",
		"email":    "a@b.com",
		"message":  "hi",
		"interest": "marketing",
	})

	if w.Code != http.StatusBadRequest {
		t.Errorf("状态码 = %d, 期望 400", w.Code)
	}
}

func TestGetContactsEndpoint(t *testing.T) {
	r, env := newContactRouter(t)

	seed := []models.Contact{
		{Name: "甲", Email: "a@b.com", Message: "first", Interest: "general"},
		{Name: "乙", Email: "c@d.com", Message: "second", Interest: "order"},
	}
	for i := range seed {
		if err := env.db.Create(&seed[i]).Error; err != nil {
			t.Fatalf("写入留言失败: %v", err)
		}
	}

	w, resp := doJSON(t, r, http.MethodGet, "/api/contact", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("状态码 = %d, 期望 200", w.Code)
	}

	var contacts []models.Contact
	if err := json.Unmarshal(resp.Data, &contacts); err != nil {
		t.Fatalf("解析响应数据失败: %v", err)
	}
	if len(contacts) != 2 {
		t.Errorf("留言数 = %d, 期望 2", len(contacts))
	}
}
