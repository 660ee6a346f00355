package auth

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestNewVerifyToken(t *testing.T) {
	tok := newVerifyToken(42)

	assert.Equal(t, uint(42), tok.UserID)
	assert.Equal(t, "verify", tok.Type)
	assert.Len(t, tok.Token, 32) // 16 random bytes hex-encoded

	// A just-issued token must pass VerifyEmail's expiry guard.
	assert.False(t, tok.ExpiresAt.Before(time.Now()),
		"fresh verification token must not already be expired")
	assert.WithinDuration(t, time.Now().Add(verifyTokenTTL), tok.ExpiresAt, time.Minute)
}

func TestIsEmailValid(t *testing.T) {
	tests := []struct {
		email string
		want  bool
	}{
		{"alice@example.com", true},
		{"alice.smith+tag@example.co.uk", true},
		{"user%mailbox@example.com", true},
		{"no-at-sign.example.com", false},
		{"@example.com", false},
		{"alice@", false},
		{"alice@example", false},
		{"", false},
	}

	for _, tt := range tests {
		t.Run(tt.email, func(t *testing.T) {
			assert.Equal(t, tt.want, isEmailValid(tt.email))
		})
	}
}

func TestIsPasswordStrong(t *testing.T) {
	tests := []struct {
		name     string
		password string
		want     bool
	}{
		{"letters and digits", "compliance1", true},
		{"too short", "abc123", false},
		{"letters only", "compliance", false},
		{"digits only", "12345678", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, isPasswordStrong(tt.password))
		})
	}
}
