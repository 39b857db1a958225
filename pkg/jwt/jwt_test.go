package jwt

import (
	"testing"
	"time"
)

func TestGenerateAndParseToken(t *testing.T) {
	secret := []byte("test-secret")

	token, err := GenerateToken(secret, 42, "access", time.Hour)
	if err != nil {
		t.Fatalf("生成令牌失败: %v", err)
	}

	claims, err := ParseToken(secret, "access", token)
	if err != nil {
		t.Fatalf("解析令牌失败: %v", err)
	}
	if claims.UserID != 42 {
		t.Fatalf("期望 UserID 42, 实际 %d", claims.UserID)
	}
}

func TestParseTokenWrongType(t *testing.T) {
	secret := []byte("test-secret")

	token, err := GenerateToken(secret, 42, "refresh", time.Hour)
	if err != nil {
		t.Fatalf("生成令牌失败: %v", err)
	}

	if _, err := ParseToken(secret, "access", token); err == nil {
		t.Fatal("类型不匹配的令牌应被拒绝")
	}
}

func TestParseTokenWrongSecret(t *testing.T) {
	token, err := GenerateToken([]byte("secret-a"), 42, "access", time.Hour)
	if err != nil {
		t.Fatalf("生成令牌失败: %v", err)
	}

	if _, err := ParseToken([]byte("secret-b"), "access", token); err == nil {
		t.Fatal("错误密钥签发的令牌应被拒绝")
	}
}

func TestParseTokenExpired(t *testing.T) {
	secret := []byte("test-secret")

	token, err := GenerateToken(secret, 42, "access", -time.Minute)
	if err != nil {
		t.Fatalf("生成令牌失败: %v", err)
	}

	if _, err := ParseToken(secret, "access", token); err == nil {
		t.Fatal("过期令牌应被拒绝")
	}
}
