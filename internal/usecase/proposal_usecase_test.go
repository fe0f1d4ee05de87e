package usecase

import (
	"context"
	"errors"
	"strings"
	"testing"

	"impressao_xpto/internal/domain/entities"
	mock_interfaces "impressao_xpto/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

func validProposalCmd() CreateProposalCommand {
	return CreateProposalCommand{
		QuoteID:       "q-1",
		ProviderID:    "p-1",
		ProviderName:  "Oficina 3D",
		ProviderEmail: "contato@oficina3d.com",
		Price:         150,
		EstimatedDays: 5,
	}
}

func TestProposalUseCase_CreateProposal(t *testing.T) {
	t.Run("invalid price", func(t *testing.T) {
		uc := NewProposalUseCase(nil, nil, nil, nil)
		cmd := validProposalCmd()
		cmd.Price = 0
		_, err := uc.CreateProposal(context.Background(), cmd)
		if !errors.Is(err, ErrInvalidProposalPrice) {
			t.Fatalf("expected ErrInvalidProposalPrice, got %v", err)
		}
	})

	t.Run("invalid estimated days", func(t *testing.T) {
		uc := NewProposalUseCase(nil, nil, nil, nil)
		cmd := validProposalCmd()
		cmd.EstimatedDays = -1
		_, err := uc.CreateProposal(context.Background(), cmd)
		if !errors.Is(err, ErrInvalidEstimatedDays) {
			t.Fatalf("expected ErrInvalidEstimatedDays, got %v", err)
		}
	})

	t.Run("quote not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		quoteRepo := mock_interfaces.NewMockIQuoteRepository(ctrl)
		uc := NewProposalUseCase(nil, quoteRepo, nil, nil)

		quoteRepo.EXPECT().GetByID(gomock.Any(), "q-1").Return(entities.Quote{}, nil)

		_, err := uc.CreateProposal(context.Background(), validProposalCmd())
		if !errors.Is(err, ErrQuoteNotFound) {
			t.Fatalf("expected ErrQuoteNotFound, got %v", err)
		}
	})

	t.Run("terminal quote refused", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		quoteRepo := mock_interfaces.NewMockIQuoteRepository(ctrl)
		uc := NewProposalUseCase(nil, quoteRepo, nil, nil)

		quoteRepo.EXPECT().GetByID(gomock.Any(), "q-1").Return(entities.Quote{
			ID: "q-1", Origin: entities.QuoteOriginMarketplace, Status: entities.QuoteStatusCancelled,
		}, nil)

		_, err := uc.CreateProposal(context.Background(), validProposalCmd())
		if !errors.Is(err, ErrQuoteTerminal) {
			t.Fatalf("expected ErrQuoteTerminal, got %v", err)
		}
	})

	t.Run("quote with accepted proposal refused", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		quoteRepo := mock_interfaces.NewMockIQuoteRepository(ctrl)
		uc := NewProposalUseCase(nil, quoteRepo, nil, nil)

		quoteRepo.EXPECT().GetByID(gomock.Any(), "q-1").Return(entities.Quote{
			ID: "q-1", Origin: entities.QuoteOriginMarketplace, Status: entities.QuoteStatusInProgress, AcceptedProposalID: "prop-9",
		}, nil)

		_, err := uc.CreateProposal(context.Background(), validProposalCmd())
		if !errors.Is(err, ErrQuoteAlreadyDecided) {
			t.Fatalf("expected ErrQuoteAlreadyDecided, got %v", err)
		}
	})

	t.Run("direct quote refused", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		quoteRepo := mock_interfaces.NewMockIQuoteRepository(ctrl)
		uc := NewProposalUseCase(nil, quoteRepo, nil, nil)

		quoteRepo.EXPECT().GetByID(gomock.Any(), "q-1").Return(entities.Quote{
			ID: "q-1", Origin: entities.QuoteOriginDireto, Status: entities.QuoteStatusPendente,
		}, nil)

		_, err := uc.CreateProposal(context.Background(), validProposalCmd())
		if !errors.Is(err, ErrQuoteNotMarketplace) {
			t.Fatalf("expected ErrQuoteNotMarketplace, got %v", err)
		}
	})

	t.Run("create success notifies the customer", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIProposalRepository(ctrl)
		quoteRepo := mock_interfaces.NewMockIQuoteRepository(ctrl)
		notifRepo := mock_interfaces.NewMockINotificationRepository(ctrl)
		uc := NewProposalUseCase(repo, quoteRepo, notifRepo, nil)

		quoteRepo.EXPECT().GetByID(gomock.Any(), "q-1").Return(entities.Quote{
			ID: "q-1", Origin: entities.QuoteOriginMarketplace, SequenceNumber: "ORC-000010", ClientID: "client-1", Status: entities.QuoteStatusSentToProviders,
		}, nil)
		repo.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, p entities.Proposal) (entities.Proposal, error) {
				if p.Status != entities.ProposalStatusPending {
					t.Fatalf("expected pending, got %s", p.Status)
				}
				return p, nil
			})
		notifRepo.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, n entities.Notification) (entities.Notification, error) {
				if n.RecipientID != "client-1" || n.Type != entities.NotificationTypeNewProposal {
					t.Fatalf("unexpected notification %+v", n)
				}
				if !strings.Contains(n.Message, "R$ 150.00") {
					t.Fatalf("message should carry the price, got %q", n.Message)
				}
				return n, nil
			})

		got, err := uc.CreateProposal(context.Background(), validProposalCmd())
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got.QuoteID != "q-1" || got.ProviderID != "p-1" {
			t.Fatalf("unexpected proposal %+v", got)
		}
	})

	t.Run("notification failure does not fail the proposal", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIProposalRepository(ctrl)
		quoteRepo := mock_interfaces.NewMockIQuoteRepository(ctrl)
		notifRepo := mock_interfaces.NewMockINotificationRepository(ctrl)
		uc := NewProposalUseCase(repo, quoteRepo, notifRepo, nil)

		quoteRepo.EXPECT().GetByID(gomock.Any(), "q-1").Return(entities.Quote{
			ID: "q-1", Origin: entities.QuoteOriginMarketplace, ClientID: "client-1", Status: entities.QuoteStatusSentToProviders,
		}, nil)
		repo.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, p entities.Proposal) (entities.Proposal, error) { return p, nil })
		notifRepo.EXPECT().Create(gomock.Any(), gomock.Any()).Return(entities.Notification{}, errors.New("ddb throttled"))

		_, err := uc.CreateProposal(context.Background(), validProposalCmd())
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})
}

func TestProposalUseCase_Accept(t *testing.T) {
	pendingProposal := entities.Proposal{ID: "prop-1", QuoteID: "q-1", Status: entities.ProposalStatusPending}
	sentQuote := entities.Quote{ID: "q-1", Status: entities.QuoteStatusSentToProviders}

	t.Run("proposal already decided", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIProposalRepository(ctrl)
		uc := NewProposalUseCase(repo, nil, nil, nil)

		repo.EXPECT().GetByID(gomock.Any(), "prop-1").Return(entities.Proposal{ID: "prop-1", Status: entities.ProposalStatusRejected}, nil)

		_, err := uc.Accept(context.Background(), "prop-1")
		if !errors.Is(err, ErrProposalAlreadyDecided) {
			t.Fatalf("expected ErrProposalAlreadyDecided, got %v", err)
		}
	})

	t.Run("quote already decided", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIProposalRepository(ctrl)
		quoteRepo := mock_interfaces.NewMockIQuoteRepository(ctrl)
		uc := NewProposalUseCase(repo, quoteRepo, nil, nil)

		repo.EXPECT().GetByID(gomock.Any(), "prop-1").Return(pendingProposal, nil)
		quoteRepo.EXPECT().GetByID(gomock.Any(), "q-1").Return(entities.Quote{
			ID: "q-1", Status: entities.QuoteStatusInProgress, AcceptedProposalID: "prop-2",
		}, nil)

		_, err := uc.Accept(context.Background(), "prop-1")
		if !errors.Is(err, ErrQuoteAlreadyDecided) {
			t.Fatalf("expected ErrQuoteAlreadyDecided, got %v", err)
		}
	})

	t.Run("accept rejects only pending siblings", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIProposalRepository(ctrl)
		quoteRepo := mock_interfaces.NewMockIQuoteRepository(ctrl)
		tx := mock_interfaces.NewMockIMarketplaceTxRepository(ctrl)
		uc := NewProposalUseCase(repo, quoteRepo, nil, tx)

		repo.EXPECT().GetByID(gomock.Any(), "prop-1").Return(pendingProposal, nil)
		quoteRepo.EXPECT().GetByID(gomock.Any(), "q-1").Return(sentQuote, nil)
		repo.EXPECT().ListByQuoteID(gomock.Any(), "q-1").Return([]entities.Proposal{
			pendingProposal,
			{ID: "prop-2", QuoteID: "q-1", Status: entities.ProposalStatusPending},
			{ID: "prop-3", QuoteID: "q-1", Status: entities.ProposalStatusRejected},
			{ID: "prop-4", QuoteID: "q-1", Status: entities.ProposalStatusPending},
		}, nil)
		tx.EXPECT().AcceptProposal(gomock.Any(), "q-1", "prop-1", []string{"prop-2", "prop-4"}).Return(true, nil)

		got, err := uc.Accept(context.Background(), "prop-1")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got.Status != entities.ProposalStatusAccepted {
			t.Fatalf("expected accepted, got %s", got.Status)
		}
	})

	t.Run("lost acceptance race", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIProposalRepository(ctrl)
		quoteRepo := mock_interfaces.NewMockIQuoteRepository(ctrl)
		tx := mock_interfaces.NewMockIMarketplaceTxRepository(ctrl)
		uc := NewProposalUseCase(repo, quoteRepo, nil, tx)

		repo.EXPECT().GetByID(gomock.Any(), "prop-1").Return(pendingProposal, nil)
		quoteRepo.EXPECT().GetByID(gomock.Any(), "q-1").Return(sentQuote, nil)
		repo.EXPECT().ListByQuoteID(gomock.Any(), "q-1").Return([]entities.Proposal{pendingProposal}, nil)
		tx.EXPECT().AcceptProposal(gomock.Any(), "q-1", "prop-1", []string{}).Return(false, nil)

		_, err := uc.Accept(context.Background(), "prop-1")
		if !errors.Is(err, ErrAcceptConflict) {
			t.Fatalf("expected ErrAcceptConflict, got %v", err)
		}
	})
}

func TestProposalUseCase_Reject(t *testing.T) {
	t.Run("reject pending proposal", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIProposalRepository(ctrl)
		uc := NewProposalUseCase(repo, nil, nil, nil)

		repo.EXPECT().GetByID(gomock.Any(), "prop-1").Return(entities.Proposal{ID: "prop-1", Status: entities.ProposalStatusPending}, nil)
		repo.EXPECT().UpdateStatus(gomock.Any(), "prop-1", entities.ProposalStatusPending, entities.ProposalStatusRejected).
			Return(entities.Proposal{ID: "prop-1", Status: entities.ProposalStatusRejected}, nil)

		got, err := uc.Reject(context.Background(), "prop-1")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got.Status != entities.ProposalStatusRejected {
			t.Fatalf("expected rejected, got %s", got.Status)
		}
	})

	t.Run("accepted proposal never flips back", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIProposalRepository(ctrl)
		uc := NewProposalUseCase(repo, nil, nil, nil)

		repo.EXPECT().GetByID(gomock.Any(), "prop-1").Return(entities.Proposal{ID: "prop-1", Status: entities.ProposalStatusAccepted}, nil)

		_, err := uc.Reject(context.Background(), "prop-1")
		if !errors.Is(err, ErrProposalAlreadyDecided) {
			t.Fatalf("expected ErrProposalAlreadyDecided, got %v", err)
		}
	})
}
