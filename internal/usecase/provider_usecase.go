package usecase

import (
	"context"
	"errors"
	"impressao_xpto/internal/domain/entities"
	"impressao_xpto/internal/usecase/interfaces"
	"strings"
	"time"

	"github.com/google/uuid"
)

var (
	ErrProviderNotFound   = errors.New("provider not found")
	ErrInvalidProviderID  = errors.New("invalid provider id")
	ErrInvalidProviderCmd = errors.New("invalid provider registration")
)

// RegisterProviderCommand carries a provider registration.
type RegisterProviderCommand struct {
	Name         string
	Email        string
	Phone        string
	Services     []entities.ServiceType
	PortfolioURL string
}

// IProviderUseCase manages the provider directory. New providers start
// unapproved and only enter matching after an administrator approves them.

type IProviderUseCase interface {
	Register(ctx context.Context, cmd RegisterProviderCommand) (entities.Provider, error)
	Approve(ctx context.Context, id string) (entities.Provider, error)
	GetByID(ctx context.Context, id string) (entities.Provider, error)
	List(ctx context.Context) ([]entities.Provider, error)
}

type ProviderUseCase struct {
	repo interfaces.IProviderRepository
}

var _ IProviderUseCase = (*ProviderUseCase)(nil)

func NewProviderUseCase(repo interfaces.IProviderRepository) *ProviderUseCase {
	return &ProviderUseCase{repo: repo}
}

func (u *ProviderUseCase) Register(ctx context.Context, cmd RegisterProviderCommand) (entities.Provider, error) {
	name := strings.TrimSpace(cmd.Name)
	email := strings.TrimSpace(cmd.Email)
	if name == "" || email == "" || len(cmd.Services) == 0 {
		return entities.Provider{}, ErrInvalidProviderCmd
	}
	for _, s := range cmd.Services {
		if !entities.ValidServiceType(s) {
			return entities.Provider{}, ErrInvalidServiceType
		}
	}

	p := entities.Provider{
		ID:           uuid.NewString(),
		Name:         name,
		Email:        email,
		Phone:        strings.TrimSpace(cmd.Phone),
		Services:     cmd.Services,
		Approved:     false,
		PortfolioURL: strings.TrimSpace(cmd.PortfolioURL),
		CreatedAt:    time.Now().UTC(),
	}
	return u.repo.Create(ctx, p)
}

func (u *ProviderUseCase) Approve(ctx context.Context, id string) (entities.Provider, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Provider{}, ErrInvalidProviderID
	}

	p, err := u.repo.SetApproved(ctx, id, true)
	if err != nil {
		return entities.Provider{}, err
	}
	if p.ID == "" {
		return entities.Provider{}, ErrProviderNotFound
	}
	return p, nil
}

func (u *ProviderUseCase) GetByID(ctx context.Context, id string) (entities.Provider, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Provider{}, ErrInvalidProviderID
	}

	p, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.Provider{}, err
	}
	if p.ID == "" {
		return entities.Provider{}, ErrProviderNotFound
	}
	return p, nil
}

func (u *ProviderUseCase) List(ctx context.Context) ([]entities.Provider, error) {
	return u.repo.List(ctx)
}
