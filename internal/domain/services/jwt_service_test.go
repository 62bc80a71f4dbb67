package services

import (
	"testing"

	"natura-http-service/internal/infrastructure/config"
)

func TestGenerateAndExtractClaims(t *testing.T) {
	svc := NewJWTService(testConfig())

	token, err := svc.GenerateToken(42, "admin")
	if err != nil {
		t.Fatalf("生成令牌失败: %v", err)
	}
	if token == "" {
		t.Fatal("令牌为空")
	}

	claims, err := svc.ExtractClaims(token)
	if err != nil {
		t.Fatalf("提取声明失败: %v", err)
	}
	if claims.UserID != 42 {
		t.Errorf("UserID = %d, 期望 42", claims.UserID)
	}
	if claims.Username != "admin" {
		t.Errorf("Username = %q, 期望 admin", claims.Username)
	}
	if claims.Role != "admin" {
		t.Errorf("Role = %q, 期望 admin", claims.Role)
	}
	if claims.Issuer != "natura-http-service" {
		t.Errorf("Issuer = %q", claims.Issuer)
	}
}

func TestValidateTokenRejectsGarbage(t *testing.T) {
	svc := NewJWTService(testConfig())

	if _, err := svc.ValidateToken("not-a-token"); err == nil {
		t.Error("无效令牌应验证失败")
	}
}

func TestValidateTokenRejectsWrongSecret(t *testing.T) {
	svc := NewJWTService(testConfig())
	other := NewJWTService(&config.Config{JWTSecretKey: "another-secret"})

	token, err := other.GenerateToken(1, "admin")
	if err != nil {
		t.Fatalf("生成令牌失败: %v", err)
	}

	if _, err := svc.ValidateToken(token); err == nil {
		t.Error("错误密钥签名的令牌应验证失败")
	}
}
