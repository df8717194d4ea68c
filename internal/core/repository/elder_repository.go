package repository

import (
	"context"

	"github.com/idosos/backend/internal/core/domain"
)

//go:generate mockgen -source=elder_repository.go -destination=mock/elder_repository_mock.go -package=mock

// ElderRepository owns elder storage and id assignment. Faults of the
// underlying store are reported as *domain.StorageError, missing records
// as domain.ErrNotFound.
type ElderRepository interface {
	Create(ctx context.Context, elder *domain.Elder) error
	FindByID(ctx context.Context, id int64) (*domain.Elder, error)
	Delete(ctx context.Context, id int64) error
	List(ctx context.Context) ([]*domain.Elder, error)
	Count(ctx context.Context) (int, error)
}
