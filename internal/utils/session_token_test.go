package utils

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// 测试内容：验证会话令牌签发后可以解析出用户信息。
func TestSessionToken_RoundTrip(t *testing.T) {
	token, err := GenerateSessionToken("secret", 7, "alice", time.Hour)
	if err != nil {
		t.Fatalf("GenerateSessionToken: %v", err)
	}
	claims, err := ParseSessionToken("secret", token)
	if err != nil {
		t.Fatalf("ParseSessionToken: %v", err)
	}
	if claims.ID != 7 || claims.Username != "alice" {
		t.Fatalf("期望 id=7 username=alice，实际为 %+v", claims)
	}
}

// 测试内容：验证使用错误密钥签名的令牌被拒绝。
func TestSessionToken_WrongSecret(t *testing.T) {
	token, err := GenerateSessionToken("secret", 1, "alice", time.Hour)
	if err != nil {
		t.Fatalf("GenerateSessionToken: %v", err)
	}
	if _, err := ParseSessionToken("other", token); err == nil {
		t.Fatalf("期望错误密钥返回错误")
	}
}

// 测试内容：验证过期令牌被拒绝。
func TestSessionToken_Expired(t *testing.T) {
	token, err := GenerateSessionToken("secret", 1, "alice", -time.Minute)
	if err != nil {
		t.Fatalf("GenerateSessionToken: %v", err)
	}
	if _, err := ParseSessionToken("secret", token); err == nil {
		t.Fatalf("期望过期令牌返回错误")
	}
}

// 测试内容：验证类型不是 session 的令牌被拒绝。
func TestSessionToken_WrongType(t *testing.T) {
	claims := SessionClaims{
		ID:   1,
		Type: "email_verify",
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		},
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("secret"))
	if err != nil {
		t.Fatalf("sign: %v", err)
	}
	if _, err := ParseSessionToken("secret", token); err == nil {
		t.Fatalf("期望错误类型返回错误")
	}
}

// 测试内容：验证空密钥不能签发令牌。
func TestGenerateSessionToken_EmptySecret(t *testing.T) {
	if _, err := GenerateSessionToken("", 1, "alice", time.Hour); err == nil {
		t.Fatalf("期望空密钥返回错误")
	}
}
