package model

import "time"

// User is an identity record. Users are created by an administrator with a
// fixed set of grantable scopes and are never updated or deleted afterwards.
type User struct {
	Name       string    `json:"name" gorm:"primaryKey;size:255"`
	Hash       string    `json:"-" gorm:"size:255;not null"` // Never expose in JSON
	Expiration time.Time `json:"expiration" gorm:"not null"`
	Enabled    bool      `json:"enabled" gorm:"not null"`
	Scopes     []string  `json:"scopes" gorm:"serializer:json"`
}

// IsExpired reports whether the account is past its expiration.
func (u *User) IsExpired() bool {
	return !time.Now().Before(u.Expiration)
}

// IsActive reports whether the account can authenticate: enabled and not expired.
func (u *User) IsActive() bool {
	return u.Enabled && !u.IsExpired()
}
