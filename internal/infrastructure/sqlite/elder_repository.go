package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/idosos/backend/internal/core/domain"
	"github.com/idosos/backend/internal/core/repository"
)

const elderColumns = `id, name, age, guardian_name, guardian_phone, postal_code,
	street, number, neighborhood, city, state`

type elderRepository struct {
	db *DB
}

func NewElderRepository(db *DB) repository.ElderRepository {
	return &elderRepository{db: db}
}

func (r *elderRepository) Create(ctx context.Context, elder *domain.Elder) error {
	query := `
		INSERT INTO elder (name, age, guardian_name, guardian_phone, postal_code,
			street, number, neighborhood, city, state)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`
	result, err := r.db.ExecContext(ctx, query,
		elder.Name,
		elder.Age,
		elder.GuardianName,
		elder.GuardianPhone,
		elder.PostalCode,
		elder.Street,
		elder.Number,
		elder.Neighborhood,
		elder.City,
		elder.State,
	)
	if err != nil {
		return domain.NewStorageError("create elder", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return domain.NewStorageError("get inserted id", err)
	}
	elder.ID = id

	return nil
}

func (r *elderRepository) FindByID(ctx context.Context, id int64) (*domain.Elder, error) {
	query := `SELECT ` + elderColumns + ` FROM elder WHERE id = ?`

	var elder domain.Elder
	err := r.db.GetContext(ctx, &elder, query, id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("elder %d: %w", id, domain.ErrNotFound)
	}
	if err != nil {
		return nil, domain.NewStorageError("find elder", err)
	}

	return &elder, nil
}

func (r *elderRepository) Delete(ctx context.Context, id int64) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM elder WHERE id = ?`, id)
	if err != nil {
		return domain.NewStorageError("delete elder", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return domain.NewStorageError("get rows affected", err)
	}
	if rows == 0 {
		return fmt.Errorf("elder %d: %w", id, domain.ErrNotFound)
	}

	return nil
}

func (r *elderRepository) List(ctx context.Context) ([]*domain.Elder, error) {
	query := `SELECT ` + elderColumns + ` FROM elder ORDER BY id`

	elders := []*domain.Elder{}
	if err := r.db.SelectContext(ctx, &elders, query); err != nil {
		return nil, domain.NewStorageError("list elders", err)
	}

	return elders, nil
}

func (r *elderRepository) Count(ctx context.Context) (int, error) {
	var count int
	if err := r.db.GetContext(ctx, &count, `SELECT COUNT(*) FROM elder`); err != nil {
		return 0, domain.NewStorageError("count elders", err)
	}
	return count, nil
}
