package middleware

import (
	"testing"
)

func TestTokenBucketBurst(t *testing.T) {
	// 每秒1个令牌，容量3
	bucket := NewTokenBucket(1, 3)

	for i := 0; i < 3; i++ {
		if !bucket.Allow() {
			t.Fatalf("第 %d 次请求应在突发容量内被允许", i+1)
		}
	}
	if bucket.Allow() {
		t.Error("超出突发容量的请求应被拒绝")
	}
}
