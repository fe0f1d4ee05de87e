package usecase

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"impressao_xpto/internal/domain/entities"
	mock_interfaces "impressao_xpto/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

func TestSaleUseCase_GetByID(t *testing.T) {
	t.Run("invalid id", func(t *testing.T) {
		uc := NewSaleUseCase(nil, nil)
		_, err := uc.GetByID(context.Background(), "  ")
		if !errors.Is(err, ErrInvalidSaleID) {
			t.Fatalf("expected ErrInvalidSaleID, got %v", err)
		}
	})

	t.Run("not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockISaleRepository(ctrl)
		uc := NewSaleUseCase(repo, nil)

		repo.EXPECT().GetByID(gomock.Any(), "s-1").Return(entities.Sale{}, nil)

		_, err := uc.GetByID(context.Background(), "s-1")
		if !errors.Is(err, ErrSaleNotFound) {
			t.Fatalf("expected ErrSaleNotFound, got %v", err)
		}
	})
}

func TestSaleUseCase_PayWithGateway(t *testing.T) {
	pendingSale := entities.Sale{ID: "s-1", QuoteID: "q-1", ClientID: "client-1", Total: 200, Status: entities.SaleStatusPendente}

	t.Run("sale not pending", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockISaleRepository(ctrl)
		uc := NewSaleUseCase(repo, nil)

		repo.EXPECT().GetByID(gomock.Any(), "s-1").Return(entities.Sale{ID: "s-1", Status: entities.SaleStatusPago}, nil)

		_, err := uc.PayWithGateway(context.Background(), "s-1", nil)
		if !errors.Is(err, ErrSaleNotPending) {
			t.Fatalf("expected ErrSaleNotPending, got %v", err)
		}
	})

	t.Run("invalid payload", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockISaleRepository(ctrl)
		gateway := mock_interfaces.NewMockIPaymentGateway(ctrl)
		uc := NewSaleUseCase(repo, gateway)

		repo.EXPECT().GetByID(gomock.Any(), "s-1").Return(pendingSale, nil)

		_, err := uc.PayWithGateway(context.Background(), "s-1", json.RawMessage("{"))
		if !errors.Is(err, ErrInvalidPaymentPayload) {
			t.Fatalf("expected ErrInvalidPaymentPayload, got %v", err)
		}
	})

	t.Run("payload enriched with the sale amount and reference", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockISaleRepository(ctrl)
		gateway := mock_interfaces.NewMockIPaymentGateway(ctrl)
		uc := NewSaleUseCase(repo, gateway)

		repo.EXPECT().GetByID(gomock.Any(), "s-1").Return(pendingSale, nil)
		gateway.EXPECT().CreatePayment(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, payload json.RawMessage) (string, string, json.RawMessage, error) {
				var m map[string]any
				if err := json.Unmarshal(payload, &m); err != nil {
					t.Fatalf("payload not json: %v", err)
				}
				if m["external_reference"] != "s-1" {
					t.Fatalf("expected external_reference s-1, got %v", m["external_reference"])
				}
				if m["transaction_amount"] != float64(200) {
					t.Fatalf("expected amount 200, got %v", m["transaction_amount"])
				}
				return "mp-1", "approved", json.RawMessage(`{"status":"approved"}`), nil
			})
		repo.EXPECT().SetPaid(gomock.Any(), "s-1", "mp-1").Return(entities.Sale{ID: "s-1", Status: entities.SaleStatusPago, PaymentID: "mp-1"}, nil)

		got, err := uc.PayWithGateway(context.Background(), "s-1", json.RawMessage(`{"payment_method_id":"pix"}`))
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got.Status != entities.SaleStatusPago || got.PaymentID != "mp-1" {
			t.Fatalf("unexpected sale %+v", got)
		}
	})

	t.Run("payment not approved leaves the sale pending", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockISaleRepository(ctrl)
		gateway := mock_interfaces.NewMockIPaymentGateway(ctrl)
		uc := NewSaleUseCase(repo, gateway)

		repo.EXPECT().GetByID(gomock.Any(), "s-1").Return(pendingSale, nil)
		gateway.EXPECT().CreatePayment(gomock.Any(), gomock.Any()).Return("mp-2", "rejected", nil, nil)

		_, err := uc.PayWithGateway(context.Background(), "s-1", nil)
		if !errors.Is(err, ErrPaymentNotApproved) {
			t.Fatalf("expected ErrPaymentNotApproved, got %v", err)
		}
	})

	t.Run("gateway error", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockISaleRepository(ctrl)
		gateway := mock_interfaces.NewMockIPaymentGateway(ctrl)
		uc := NewSaleUseCase(repo, gateway)

		repo.EXPECT().GetByID(gomock.Any(), "s-1").Return(pendingSale, nil)
		gateway.EXPECT().CreatePayment(gomock.Any(), gomock.Any()).Return("", "", nil, errors.New("timeout"))

		_, err := uc.PayWithGateway(context.Background(), "s-1", nil)
		if err == nil || err.Error() != "timeout" {
			t.Fatalf("expected timeout error, got %v", err)
		}
	})
}
