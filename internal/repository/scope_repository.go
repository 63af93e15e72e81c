package repository

import (
	"context"

	"gorm.io/gorm"

	"gatekeeper/internal/model"
)

// ScopeRepository defines persistence operations for the scope registry.
type ScopeRepository interface {
	Create(ctx context.Context, scope *model.Scope) error
	ListNames(ctx context.Context) ([]string, error)
}

type scopeRepository struct {
	db *gorm.DB
}

// NewScopeRepository builds a GORM-backed repository.
func NewScopeRepository(db *gorm.DB) ScopeRepository {
	return &scopeRepository{db: db}
}

func (r *scopeRepository) Create(ctx context.Context, scope *model.Scope) error {
	return r.db.WithContext(ctx).Create(scope).Error
}

func (r *scopeRepository) ListNames(ctx context.Context) ([]string, error) {
	var names []string
	if err := r.db.WithContext(ctx).Model(&model.Scope{}).Pluck("name", &names).Error; err != nil {
		return nil, err
	}
	return names, nil
}
