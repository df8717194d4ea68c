package service

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/idosos/backend/internal/core/domain"
	"github.com/idosos/backend/internal/metrics"
	"github.com/sirupsen/logrus"
)

// AddressResolver turns a postal code into an address
type AddressResolver interface {
	Resolve(ctx context.Context, postalCode string) (*domain.Address, error)
}

// AddressService looks up addresses for clients filling in a registration.
// Results are returned as-is and never stored.
type AddressService struct {
	resolver AddressResolver
	metrics  *metrics.Metrics
	logger   logrus.FieldLogger
}

func NewAddressService(resolver AddressResolver, m *metrics.Metrics, logger logrus.FieldLogger) *AddressService {
	return &AddressService{
		resolver: resolver,
		metrics:  m,
		logger:   logger,
	}
}

// Lookup resolves postalCode through the external provider
func (s *AddressService) Lookup(ctx context.Context, postalCode string) (*domain.Address, error) {
	postalCode = strings.TrimSpace(postalCode)
	if postalCode == "" {
		return nil, NewValidationError("postal_code")
	}

	start := time.Now()
	addr, err := s.resolver.Resolve(ctx, postalCode)
	switch {
	case err == nil:
		s.metrics.ObserveAddressLookup(metrics.OutcomeFound, start)
	case errors.Is(err, domain.ErrNotFound):
		s.metrics.ObserveAddressLookup(metrics.OutcomeNotFound, start)
	default:
		s.metrics.ObserveAddressLookup(metrics.OutcomeError, start)
		s.logger.WithError(err).WithField("postal_code", postalCode).Warn("Address lookup failed")
	}

	return addr, err
}
