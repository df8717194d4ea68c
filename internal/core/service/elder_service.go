package service

import (
	"context"
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/idosos/backend/internal/core/domain"
	"github.com/idosos/backend/internal/core/repository"
	"github.com/idosos/backend/internal/metrics"
	"github.com/sirupsen/logrus"
)

// Submission is a registration request. Required fields are pointers so an
// absent value can be told apart from a zero one.
type Submission struct {
	Name          *string `json:"name" validate:"required"`
	Age           *int    `json:"age" validate:"required"`
	GuardianName  *string `json:"guardian_name" validate:"required"`
	GuardianPhone *string `json:"guardian_phone" validate:"required"`
	PostalCode    *string `json:"postal_code" validate:"required"`

	Street       *string `json:"street"`
	Number       *string `json:"number"`
	Neighborhood *string `json:"neighborhood"`
	City         *string `json:"city"`
	State        *string `json:"state"`
}

type ElderService struct {
	elderRepo repository.ElderRepository
	validate  *validator.Validate
	metrics   *metrics.Metrics
	logger    logrus.FieldLogger
}

func NewElderService(elderRepo repository.ElderRepository, m *metrics.Metrics, logger logrus.FieldLogger) *ElderService {
	validate := validator.New()
	// Report fields by their wire names
	validate.RegisterTagNameFunc(func(field reflect.StructField) string {
		name := strings.SplitN(field.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	return &ElderService{
		elderRepo: elderRepo,
		validate:  validate,
		metrics:   m,
		logger:    logger,
	}
}

// Register validates the submission and stores a new elder, returning its id
func (s *ElderService) Register(ctx context.Context, sub Submission) (int64, error) {
	if err := s.validateSubmission(sub); err != nil {
		s.metrics.IncrementValidationFailures()
		s.logger.WithField("fields", err.Fields).Info("Rejected registration with missing fields")
		return 0, err
	}

	elder := domain.NewElder(
		*sub.Name,
		*sub.Age,
		*sub.GuardianName,
		*sub.GuardianPhone,
		*sub.PostalCode,
		domain.Address{
			Street:       valueOrEmpty(sub.Street),
			Number:       valueOrEmpty(sub.Number),
			Neighborhood: valueOrEmpty(sub.Neighborhood),
			City:         valueOrEmpty(sub.City),
			State:        valueOrEmpty(sub.State),
		},
	)

	if err := s.elderRepo.Create(ctx, elder); err != nil {
		s.logger.WithError(err).Error("Failed to register elder")
		return 0, err
	}

	s.metrics.IncrementEldersRegistered()
	s.logger.WithFields(logrus.Fields{
		"id":          elder.ID,
		"postal_code": elder.PostalCode,
	}).Info("Elder registered")

	return elder.ID, nil
}

// List returns every registered elder
func (s *ElderService) List(ctx context.Context) ([]*domain.Elder, error) {
	return s.elderRepo.List(ctx)
}

// Get retrieves an elder by id
func (s *ElderService) Get(ctx context.Context, id int64) (*domain.Elder, error) {
	return s.elderRepo.FindByID(ctx, id)
}

// Delete removes an elder by id
func (s *ElderService) Delete(ctx context.Context, id int64) error {
	if err := s.elderRepo.Delete(ctx, id); err != nil {
		if !errors.Is(err, domain.ErrNotFound) {
			s.logger.WithError(err).WithField("id", id).Error("Failed to delete elder")
		}
		return err
	}

	s.metrics.IncrementEldersDeleted()
	s.logger.WithField("id", id).Info("Elder deleted")
	return nil
}

func (s *ElderService) validateSubmission(sub Submission) *ValidationError {
	err := s.validate.Struct(sub)
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return NewValidationError(fmt.Sprintf("invalid submission: %v", err))
	}

	fields := make([]string, 0, len(fieldErrs))
	for _, fe := range fieldErrs {
		fields = append(fields, fe.Field())
	}
	return NewValidationError(fields...)
}

func valueOrEmpty(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
