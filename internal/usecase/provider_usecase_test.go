package usecase

import (
	"context"
	"errors"
	"testing"

	"impressao_xpto/internal/domain/entities"
	mock_interfaces "impressao_xpto/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

func TestProviderUseCase_Register(t *testing.T) {
	t.Run("missing name", func(t *testing.T) {
		uc := NewProviderUseCase(nil)
		_, err := uc.Register(context.Background(), RegisterProviderCommand{
			Email:    "a@b.com",
			Services: []entities.ServiceType{entities.ServiceTypeImpressao},
		})
		if !errors.Is(err, ErrInvalidProviderCmd) {
			t.Fatalf("expected ErrInvalidProviderCmd, got %v", err)
		}
	})

	t.Run("unknown service type", func(t *testing.T) {
		uc := NewProviderUseCase(nil)
		_, err := uc.Register(context.Background(), RegisterProviderCommand{
			Name:     "Oficina 3D",
			Email:    "a@b.com",
			Services: []entities.ServiceType{"usinagem"},
		})
		if !errors.Is(err, ErrInvalidServiceType) {
			t.Fatalf("expected ErrInvalidServiceType, got %v", err)
		}
	})

	t.Run("new providers start unapproved", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIProviderRepository(ctrl)
		uc := NewProviderUseCase(repo)

		repo.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, p entities.Provider) (entities.Provider, error) {
				if p.Approved {
					t.Fatal("new provider must not be approved")
				}
				if p.ID == "" {
					t.Fatal("expected generated id")
				}
				return p, nil
			})

		got, err := uc.Register(context.Background(), RegisterProviderCommand{
			Name:     "Oficina 3D",
			Email:    "a@b.com",
			Services: []entities.ServiceType{entities.ServiceTypeImpressao, entities.ServiceTypeModelagem},
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(got.Services) != 2 {
			t.Fatalf("expected 2 services, got %+v", got.Services)
		}
	})
}

func TestProviderUseCase_Approve(t *testing.T) {
	t.Run("not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIProviderRepository(ctrl)
		uc := NewProviderUseCase(repo)

		repo.EXPECT().SetApproved(gomock.Any(), "p-1", true).Return(entities.Provider{}, nil)

		_, err := uc.Approve(context.Background(), "p-1")
		if !errors.Is(err, ErrProviderNotFound) {
			t.Fatalf("expected ErrProviderNotFound, got %v", err)
		}
	})

	t.Run("approve success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIProviderRepository(ctrl)
		uc := NewProviderUseCase(repo)

		repo.EXPECT().SetApproved(gomock.Any(), "p-1", true).Return(entities.Provider{ID: "p-1", Approved: true}, nil)

		got, err := uc.Approve(context.Background(), "p-1")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !got.Approved {
			t.Fatal("expected approved provider")
		}
	})
}
