package usecase

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"impressao_xpto/internal/domain/entities"
	"impressao_xpto/internal/usecase/interfaces"
	"log"
	"strings"
)

var (
	ErrSaleNotFound          = errors.New("sale not found")
	ErrInvalidSaleID         = errors.New("invalid sale id")
	ErrSaleNotPending        = errors.New("sale is not pending payment")
	ErrInvalidPaymentPayload = errors.New("invalid payment payload")
	ErrPaymentNotApproved    = errors.New("payment not approved by provider")
)

// ISaleUseCase exposes sale reads and the payment flow for converted sales.
//
// PayWithGateway charges a pending sale through the configured payment
// gateway and flips it to pago when the provider approves.

type ISaleUseCase interface {
	GetByID(ctx context.Context, id string) (entities.Sale, error)
	ListByClient(ctx context.Context, clientID string) ([]entities.Sale, error)
	PayWithGateway(ctx context.Context, saleID string, payload json.RawMessage) (entities.Sale, error)
}

type SaleUseCase struct {
	repo    interfaces.ISaleRepository
	gateway interfaces.IPaymentGateway
}

var _ ISaleUseCase = (*SaleUseCase)(nil)

func NewSaleUseCase(repo interfaces.ISaleRepository, gateway interfaces.IPaymentGateway) *SaleUseCase {
	return &SaleUseCase{repo: repo, gateway: gateway}
}

func (u *SaleUseCase) GetByID(ctx context.Context, id string) (entities.Sale, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Sale{}, ErrInvalidSaleID
	}

	s, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.Sale{}, err
	}
	if s.ID == "" {
		return entities.Sale{}, ErrSaleNotFound
	}
	return s, nil
}

func (u *SaleUseCase) ListByClient(ctx context.Context, clientID string) ([]entities.Sale, error) {
	clientID = strings.TrimSpace(clientID)
	if clientID == "" {
		return nil, ErrInvalidClientID
	}
	return u.repo.ListByClientID(ctx, clientID)
}

func (u *SaleUseCase) PayWithGateway(ctx context.Context, saleID string, payload json.RawMessage) (entities.Sale, error) {
	sale, err := u.GetByID(ctx, saleID)
	if err != nil {
		return entities.Sale{}, err
	}
	if sale.Status != entities.SaleStatusPendente {
		return entities.Sale{}, ErrSaleNotPending
	}
	if u.gateway == nil {
		return entities.Sale{}, errors.New("payment gateway not configured")
	}
	if len(payload) == 0 {
		payload = json.RawMessage("{}")
	}
	if !json.Valid(payload) {
		return entities.Sale{}, ErrInvalidPaymentPayload
	}

	// The sale in the database is the source of truth for the amount, and
	// external_reference lets the provider reconcile events back to it.
	var reqMap map[string]any
	if err := json.Unmarshal(payload, &reqMap); err == nil {
		if _, ok := reqMap["external_reference"]; !ok {
			reqMap["external_reference"] = sale.ID
		}
		if _, ok := reqMap["description"]; !ok {
			reqMap["description"] = fmt.Sprintf("Venda %s", sale.ID)
		}
		reqMap["transaction_amount"] = sale.Total
		if b, err := json.Marshal(reqMap); err == nil {
			payload = b
		}
	}

	log.Printf("[sale][usecase] calling payment gateway sale_id=%s amount=%.2f", sale.ID, sale.Total)
	providerPaymentID, providerStatus, _, err := u.gateway.CreatePayment(ctx, payload)
	if err != nil {
		log.Printf("[sale][usecase] payment gateway failed sale_id=%s err=%v", sale.ID, err)
		return entities.Sale{}, err
	}
	if providerStatus != "approved" {
		log.Printf("[sale][usecase] payment not approved sale_id=%s provider_status=%s", sale.ID, providerStatus)
		return entities.Sale{}, ErrPaymentNotApproved
	}

	updated, err := u.repo.SetPaid(ctx, sale.ID, providerPaymentID)
	if err != nil {
		return entities.Sale{}, err
	}
	if updated.ID == "" {
		return entities.Sale{}, ErrSaleNotPending
	}
	log.Printf("[sale][usecase] sale paid sale_id=%s payment_id=%s", updated.ID, providerPaymentID)
	return updated, nil
}
