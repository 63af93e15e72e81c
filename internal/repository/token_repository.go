package repository

import (
	"context"
	"time"

	"gorm.io/gorm"

	"gatekeeper/internal/model"
)

// TokenRepository defines persistence operations for issued tokens.
type TokenRepository interface {
	Create(ctx context.Context, token *model.Token) error
	FindByID(ctx context.Context, id string) (*model.Token, error)
	// DeleteExpired removes every token whose expiration is before now and
	// returns how many rows were deleted.
	DeleteExpired(ctx context.Context, now time.Time) (int64, error)
}

type tokenRepository struct {
	db *gorm.DB
}

// NewTokenRepository builds a GORM-backed repository.
func NewTokenRepository(db *gorm.DB) TokenRepository {
	return &tokenRepository{db: db}
}

func (r *tokenRepository) Create(ctx context.Context, token *model.Token) error {
	return r.db.WithContext(ctx).Create(token).Error
}

func (r *tokenRepository) FindByID(ctx context.Context, id string) (*model.Token, error) {
	var token model.Token
	if err := r.db.WithContext(ctx).Where("token = ?", id).First(&token).Error; err != nil {
		return nil, err
	}
	return &token, nil
}

func (r *tokenRepository) DeleteExpired(ctx context.Context, now time.Time) (int64, error) {
	res := r.db.WithContext(ctx).Where("expiration < ?", now).Delete(&model.Token{})
	return res.RowsAffected, res.Error
}
