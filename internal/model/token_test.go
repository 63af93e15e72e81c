package model

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestTokenSecondsLeft(t *testing.T) {
	tests := []struct {
		name       string
		expiration time.Time
		wantZero   bool
	}{
		{name: "future expiration", expiration: time.Now().Add(90 * time.Second), wantZero: false},
		{name: "past expiration", expiration: time.Now().Add(-time.Minute), wantZero: true},
		{name: "immediate expiration", expiration: time.Now(), wantZero: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tok := &Token{Token: "abc", Username: "alice", Expiration: tt.expiration}
			left := tok.SecondsLeft()
			if tt.wantZero {
				assert.Equal(t, uint64(0), left)
				assert.True(t, tok.IsExpired())
			} else {
				assert.Greater(t, left, uint64(0))
				assert.LessOrEqual(t, left, uint64(90))
				assert.False(t, tok.IsExpired())
			}
		})
	}
}

func TestTokenSecondsLeftNonIncreasing(t *testing.T) {
	tok := &Token{Expiration: time.Now().Add(time.Hour)}
	first := tok.SecondsLeft()
	second := tok.SecondsLeft()
	assert.LessOrEqual(t, second, first)
}

func TestUserIsActive(t *testing.T) {
	tests := []struct {
		name string
		user User
		want bool
	}{
		{name: "enabled and unexpired", user: User{Enabled: true, Expiration: time.Now().Add(time.Hour)}, want: true},
		{name: "disabled", user: User{Enabled: false, Expiration: time.Now().Add(time.Hour)}, want: false},
		{name: "expired", user: User{Enabled: true, Expiration: time.Now().Add(-time.Hour)}, want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.user.IsActive())
		})
	}
}
