package controllers

import (
	"encoding/json"
	"fmt"
	"net/http"
	"testing"

	"natura-http-service/internal/app/middleware"
	"natura-http-service/internal/domain/models"
	"natura-http-service/internal/domain/services"
	"natura-http-service/internal/error/code"

	"github.com/gin-gonic/gin"
)

func newProductRouter(t *testing.T) (*gin.Engine, *testEnv) {
	t.Helper()

	c, db, storage := newTestContainer(t)
	r := gin.New()
	r.GET("/api/products", HandleProductFunc(c, "getProducts"))
	r.POST("/api/products/upload", middleware.ImageUpload(c, services.ProductFolder), HandleProductFunc(c, "createProduct"))
	r.PUT("/api/products/:id", middleware.ImageUpload(c, services.ProductFolder), HandleProductFunc(c, "updateProduct"))
	r.DELETE("/api/products/:id", HandleProductFunc(c, "deleteProduct"))
	return r, &testEnv{db: db, storage: storage}
}

func seedProduct(t *testing.T, env *testEnv) *models.Product {
	t.Helper()

	product := &models.Product{
		Name:     "Honey Jar",
		Price:    19.9,
		ImageURL: "https://cdn.example.com/natura_products/honey.jpg",
		PublicID: "natura_products/honey.jpg",
		Category: "food",
		Stock:    5,
		Status:   models.ProductStatusActive,
	}
	if err := env.db.Create(product).Error; err != nil {
		t.Fatalf("写入产品失败: %v", err)
	}
	return product
}

func TestCreateProductEndpoint(t *testing.T) {
	r, env := newProductRouter(t)

	w, resp := doMultipart(t, r, http.MethodPost, "/api/products/upload", map[string]string{
		"name":     "Honey Jar",
		"price":    "19.9",
		"category": "food",
		"stock":    "5",
	}, "honey.jpg")

	if w.Code != http.StatusCreated {
		t.Fatalf("状态码 = %d, 期望 201, body=%s", w.Code, w.Body.String())
	}

	var product models.Product
	if err := json.Unmarshal(resp.Data, &product); err != nil {
		t.Fatalf("解析响应数据失败: %v", err)
	}
	// 图片URL和删除句柄来自同一次上传
	if product.ImageURL != "https://cdn.example.com/natura_products/honey.jpg" {
		t.Errorf("ImageURL = %q", product.ImageURL)
	}
	if product.PublicID != "natura_products/honey.jpg" {
		t.Errorf("PublicID = %q", product.PublicID)
	}
	if product.Status != models.ProductStatusActive {
		t.Errorf("Status = %q, 期望默认 Active", product.Status)
	}

	if len(env.storage.uploads) != 1 {
		t.Errorf("上传调用次数 = %d, 期望 1", len(env.storage.uploads))
	}
}

func TestCreateProductEndpointWithoutImage(t *testing.T) {
	r, env := newProductRouter(t)

	w, resp := doMultipart(t, r, http.MethodPost, "/api/products/upload", map[string]string{
		"name":  "Honey Jar",
		"price": "19.9",
	}, "")

	if w.Code != http.StatusBadRequest {
		t.Errorf("状态码 = %d, 期望 400", w.Code)
	}
	if resp.Code != code.ErrImageRequired {
		t.Errorf("业务码 = %d, 期望 %d", resp.Code, code.ErrImageRequired)
	}

	var count int64
	env.db.Model(&models.Product{}).Count(&count)
	if count != 0 {
		t.Errorf("缺少图片时不应写库, 产品数 = %d", count)
	}
}

func TestCreateProductEndpointRejectsBadFormat(t *testing.T) {
	r, env := newProductRouter(t)

	w, resp := doMultipart(t, r, http.MethodPost, "/api/products/upload", map[string]string{
		"name":  "Honey Jar",
		"price": "19.9",
	}, "honey.gif")

	if w.Code != http.StatusBadRequest {
		t.Errorf("状态码 = %d, 期望 400", w.Code)
	}
	if resp.Code != code.ErrImageFormat {
		t.Errorf("业务码 = %d, 期望 %d", resp.Code, code.ErrImageFormat)
	}
	if len(env.storage.uploads) != 0 {
		t.Error("非法格式不应触发上传")
	}
}

func TestCreateProductEndpointMissingPrice(t *testing.T) {
	r, env := newProductRouter(t)

	w, resp := doMultipart(t, r, http.MethodPost, "/api/products/upload", map[string]string{
		"name": "Honey Jar",
	}, "honey.jpg")

	if w.Code != http.StatusBadRequest {
		t.Errorf("状态码 = %d, 期望 400", w.Code)
	}
	if resp.Code != code.ErrProductInvalid {
		t.Errorf("业务码 = %d, 期望 %d", resp.Code, code.ErrProductInvalid)
	}

	var count int64
	env.db.Model(&models.Product{}).Count(&count)
	if count != 0 {
		t.Errorf("缺少价格时不应写库, 产品数 = %d", count)
	}
}

func TestUpdateProductEndpointPartial(t *testing.T) {
	r, env := newProductRouter(t)
	product := seedProduct(t, env)

	// 只更新价格，空字符串分类用于清空
	w, resp := doMultipart(t, r, http.MethodPut, fmt.Sprintf("/api/products/%d", product.ID), map[string]string{
		"price":    "29.9",
		"category": "",
	}, "")

	if w.Code != http.StatusOK {
		t.Fatalf("状态码 = %d, 期望 200, body=%s", w.Code, w.Body.String())
	}

	var updated models.Product
	if err := json.Unmarshal(resp.Data, &updated); err != nil {
		t.Fatalf("解析响应数据失败: %v", err)
	}
	if updated.Price != 29.9 {
		t.Errorf("Price = %v, 期望 29.9", updated.Price)
	}
	if updated.Category != "" {
		t.Errorf("Category = %q, 期望被清空", updated.Category)
	}
	// 未提供的字段保持不变
	if updated.Name != product.Name {
		t.Errorf("Name = %q, 不应被修改", updated.Name)
	}
	if updated.ImageURL != product.ImageURL {
		t.Error("图片字段不应被修改")
	}
}

func TestUpdateProductEndpointReplacesImage(t *testing.T) {
	r, env := newProductRouter(t)
	product := seedProduct(t, env)

	w, resp := doMultipart(t, r, http.MethodPut, fmt.Sprintf("/api/products/%d", product.ID), nil, "new.jpg")
	if w.Code != http.StatusOK {
		t.Fatalf("状态码 = %d, 期望 200, body=%s", w.Code, w.Body.String())
	}

	var updated models.Product
	if err := json.Unmarshal(resp.Data, &updated); err != nil {
		t.Fatalf("解析响应数据失败: %v", err)
	}
	if updated.PublicID != "natura_products/new.jpg" {
		t.Errorf("PublicID = %q", updated.PublicID)
	}
	if len(env.storage.destroyed) != 1 || env.storage.destroyed[0] != "natura_products/honey.jpg" {
		t.Errorf("旧图片未被删除: %v", env.storage.destroyed)
	}
}

func TestUpdateProductEndpointNotFound(t *testing.T) {
	r, _ := newProductRouter(t)

	w, resp := doMultipart(t, r, http.MethodPut, "/api/products/999", map[string]string{
		"price": "1.0",
	}, "")

	if w.Code != http.StatusNotFound {
		t.Errorf("状态码 = %d, 期望 404", w.Code)
	}
	if resp.Code != code.ErrProductNotFound {
		t.Errorf("业务码 = %d, 期望 %d", resp.Code, code.ErrProductNotFound)
	}
}

func TestDeleteProductEndpoint(t *testing.T) {
	r, env := newProductRouter(t)
	product := seedProduct(t, env)

	w, _ := doJSON(t, r, http.MethodDelete, fmt.Sprintf("/api/products/%d", product.ID), nil)
	if w.Code != http.StatusOK {
		t.Fatalf("状态码 = %d, 期望 200, body=%s", w.Code, w.Body.String())
	}

	var count int64
	env.db.Model(&models.Product{}).Count(&count)
	if count != 0 {
		t.Errorf("产品数 = %d, 期望 0", count)
	}
	if len(env.storage.destroyed) != 1 {
		t.Errorf("外部图片删除调用次数 = %d, 期望 1", len(env.storage.destroyed))
	}
}

func TestGetProductsEndpoint(t *testing.T) {
	r, env := newProductRouter(t)
	seedProduct(t, env)

	w, resp := doJSON(t, r, http.MethodGet, "/api/products", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("状态码 = %d, 期望 200", w.Code)
	}

	var products []models.Product
	if err := json.Unmarshal(resp.Data, &products); err != nil {
		t.Fatalf("解析响应数据失败: %v", err)
	}
	if len(products) != 1 {
		t.Errorf("产品数 = %d, 期望 1", len(products))
	}
}
