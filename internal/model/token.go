package model

import "time"

// Token is an issued session credential. It is created on login, never
// updated, and becomes logically invalid once its expiration passes. Expired
// rows stay in the store until the maintenance sweep removes them.
type Token struct {
	Token      string    `json:"token" gorm:"primaryKey;size:64"`
	Username   string    `json:"username" gorm:"size:255;not null"`
	Expiration time.Time `json:"expiration" gorm:"not null"`
	Scopes     []string  `json:"scopes" gorm:"serializer:json"`
}

// SecondsLeft returns the whole seconds until expiration, never negative.
func (t *Token) SecondsLeft() uint64 {
	d := time.Until(t.Expiration)
	if d <= 0 {
		return 0
	}
	return uint64(d.Seconds())
}

// IsExpired reports whether the token is past its expiration.
func (t *Token) IsExpired() bool {
	return t.SecondsLeft() == 0
}
