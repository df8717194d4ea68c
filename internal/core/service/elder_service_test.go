package service

import (
	"context"
	"errors"
	"testing"

	"github.com/idosos/backend/internal/core/domain"
	"github.com/idosos/backend/internal/core/repository/mock"
	"github.com/idosos/backend/internal/infrastructure/sqlite"
	"github.com/idosos/backend/internal/logging"
	"github.com/idosos/backend/internal/metrics"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func ptr[T any](v T) *T {
	return &v
}

func validSubmission() Submission {
	return Submission{
		Name:          ptr("Maria"),
		Age:           ptr(82),
		GuardianName:  ptr("Ana"),
		GuardianPhone: ptr("11999990000"),
		PostalCode:    ptr("01001000"),
	}
}

func newSQLiteService(t *testing.T) (*ElderService, *metrics.Metrics) {
	t.Helper()

	db, err := sqlite.New(sqlite.MemoryPath)
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	m := metrics.New(prometheus.NewRegistry())
	return NewElderService(sqlite.NewElderRepository(db), m, logging.Discard()), m
}

func TestRegister_StoresSubmittedValues(t *testing.T) {
	svc, m := newSQLiteService(t)
	ctx := context.Background()

	id, err := svc.Register(ctx, validSubmission())
	require.NoError(t, err)
	assert.NotZero(t, id)

	elders, err := svc.List(ctx)
	require.NoError(t, err)
	require.Len(t, elders, 1)
	assert.Equal(t, &domain.Elder{
		ID:            id,
		Name:          "Maria",
		Age:           82,
		GuardianName:  "Ana",
		GuardianPhone: "11999990000",
		PostalCode:    "01001000",
	}, elders[0])
	assert.Equal(t, 1.0, testutil.ToFloat64(m.EldersRegistered))
}

func TestRegister_KeepsOptionalAddress(t *testing.T) {
	svc, _ := newSQLiteService(t)
	ctx := context.Background()

	sub := validSubmission()
	sub.Street = ptr("Praça da Sé")
	sub.City = ptr("São Paulo")
	sub.State = ptr("SP")

	id, err := svc.Register(ctx, sub)
	require.NoError(t, err)

	elder, err := svc.Get(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, "Praça da Sé", elder.Street)
	assert.Equal(t, "", elder.Number)
	assert.Equal(t, "", elder.Neighborhood)
	assert.Equal(t, "São Paulo", elder.City)
	assert.Equal(t, "SP", elder.State)
}

func TestRegister_MissingRequiredFields(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Submission)
		missing []string
	}{
		{"missing name", func(s *Submission) { s.Name = nil }, []string{"name"}},
		{"missing age", func(s *Submission) { s.Age = nil }, []string{"age"}},
		{"missing guardian name", func(s *Submission) { s.GuardianName = nil }, []string{"guardian_name"}},
		{"missing guardian phone", func(s *Submission) { s.GuardianPhone = nil }, []string{"guardian_phone"}},
		{"missing postal code", func(s *Submission) { s.PostalCode = nil }, []string{"postal_code"}},
		{
			name:    "only name given",
			mutate:  func(s *Submission) { *s = Submission{Name: ptr("Joao")} },
			missing: []string{"age", "guardian_name", "guardian_phone", "postal_code"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, m := newSQLiteService(t)
			ctx := context.Background()

			sub := validSubmission()
			tt.mutate(&sub)

			id, err := svc.Register(ctx, sub)
			assert.Zero(t, id)

			var validationErr *ValidationError
			require.True(t, errors.As(err, &validationErr))
			assert.Equal(t, tt.missing, validationErr.Fields)

			elders, err := svc.List(ctx)
			require.NoError(t, err)
			assert.Empty(t, elders)
			assert.Equal(t, 1.0, testutil.ToFloat64(m.ValidationFailures))
		})
	}
}

func TestRegister_ZeroAgeIsPresent(t *testing.T) {
	svc, _ := newSQLiteService(t)

	sub := validSubmission()
	sub.Age = ptr(0)

	_, err := svc.Register(context.Background(), sub)
	assert.NoError(t, err)
}

func TestRegister_StorageFailure(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := mock.NewMockElderRepository(ctrl)

	storageErr := domain.NewStorageError("create elder", errors.New("disk I/O error"))
	repo.EXPECT().Create(gomock.Any(), gomock.Any()).Return(storageErr)

	m := metrics.New(prometheus.NewRegistry())
	svc := NewElderService(repo, m, logging.Discard())

	_, err := svc.Register(context.Background(), validSubmission())

	var got *domain.StorageError
	require.True(t, errors.As(err, &got))
	assert.Equal(t, 0.0, testutil.ToFloat64(m.EldersRegistered))
}

func TestDelete(t *testing.T) {
	svc, m := newSQLiteService(t)
	ctx := context.Background()

	id, err := svc.Register(ctx, validSubmission())
	require.NoError(t, err)

	err = svc.Delete(ctx, id+1)
	assert.ErrorIs(t, err, domain.ErrNotFound)

	require.NoError(t, svc.Delete(ctx, id))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.EldersDeleted))

	_, err = svc.Get(ctx, id)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestDelete_StorageFailure(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := mock.NewMockElderRepository(ctrl)

	repo.EXPECT().Delete(gomock.Any(), int64(3)).Return(domain.NewStorageError("delete elder", errors.New("database is locked")))

	svc := NewElderService(repo, nil, logging.Discard())
	err := svc.Delete(context.Background(), 3)

	var got *domain.StorageError
	assert.True(t, errors.As(err, &got))
}
