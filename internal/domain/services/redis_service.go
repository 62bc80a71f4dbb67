package services

import (
	"context"
	"encoding/json"
	"time"

	"natura-http-service/internal/infrastructure/config"

	"github.com/go-redis/redis/v8"
)

// 列表缓存键
const (
	ProductListCacheKey = "cache:products"
	GalleryListCacheKey = "cache:gallery"
)

// 列表缓存过期时间
const listCacheExpiration = 5 * time.Minute

// InterfaceRedisService 定义Redis缓存服务接口
type InterfaceRedisService interface {
	Set(key string, value interface{}, expiration time.Duration) error
	Get(key string, dest interface{}) error
	Delete(key string) error
	CacheList(key string, value interface{}) error
	GetList(key string, dest interface{}) bool
	InvalidateList(key string)
}

// RedisService handles Redis operations
type RedisService struct {
	Client *redis.Client
	Ctx    context.Context
}

// NewRedisService creates a new Redis service
func NewRedisService(cfg *config.Config) *RedisService {
	client := redis.NewClient(&redis.Options{
		Addr:     cfg.GetRedisAddr(),
		Password: "", // No password set
		DB:       cfg.RedisDB,
	})

	ctx := context.Background()

	return &RedisService{
		Client: client,
		Ctx:    ctx,
	}
}

// Set sets a key-value pair in Redis with expiration
func (s *RedisService) Set(key string, value interface{}, expiration time.Duration) error {
	jsonValue, err := json.Marshal(value)
	if err != nil {
		return err
	}

	return s.Client.Set(s.Ctx, key, jsonValue, expiration).Err()
}

// Get gets a value from Redis by key
func (s *RedisService) Get(key string, dest interface{}) error {
	val, err := s.Client.Get(s.Ctx, key).Result()
	if err != nil {
		return err
	}

	return json.Unmarshal([]byte(val), dest)
}

// Delete deletes a key from Redis
func (s *RedisService) Delete(key string) error {
	return s.Client.Del(s.Ctx, key).Err()
}

// CacheList 缓存列表响应
func (s *RedisService) CacheList(key string, value interface{}) error {
	return s.Set(key, value, listCacheExpiration)
}

// GetList 从缓存读取列表，命中返回true
func (s *RedisService) GetList(key string, dest interface{}) bool {
	return s.Get(key, dest) == nil
}

// InvalidateList 数据变更后使列表缓存失效
func (s *RedisService) InvalidateList(key string) {
	// 缓存失效失败不影响主流程
	_ = s.Delete(key)
}
