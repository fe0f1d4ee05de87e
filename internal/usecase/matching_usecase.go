package usecase

import (
	"context"
	"errors"
	"impressao_xpto/internal/domain/entities"
	"impressao_xpto/internal/usecase/interfaces"
)

var ErrInvalidServiceType = errors.New("invalid service type")

// IMatchingUseCase selects the providers qualified for a quote.
//
// Qualification is an exact membership test of the quote's service type in
// the provider's declared capability set. No fuzzy matching, no ranking:
// results keep provider registration order and providers self-select by
// submitting proposals. An empty result is a valid outcome.

type IMatchingUseCase interface {
	FindQualifiedProviders(ctx context.Context, serviceType entities.ServiceType) ([]entities.Provider, error)
}

type MatchingUseCase struct {
	providerRepo interfaces.IProviderRepository
}

var _ IMatchingUseCase = (*MatchingUseCase)(nil)

func NewMatchingUseCase(providerRepo interfaces.IProviderRepository) *MatchingUseCase {
	return &MatchingUseCase{providerRepo: providerRepo}
}

func (u *MatchingUseCase) FindQualifiedProviders(ctx context.Context, serviceType entities.ServiceType) ([]entities.Provider, error) {
	if !entities.ValidServiceType(serviceType) {
		return nil, ErrInvalidServiceType
	}

	all, err := u.providerRepo.List(ctx)
	if err != nil {
		return nil, err
	}

	qualified := make([]entities.Provider, 0, len(all))
	for _, p := range all {
		if p.Approved && p.HasService(serviceType) {
			qualified = append(qualified, p)
		}
	}
	return qualified, nil
}
