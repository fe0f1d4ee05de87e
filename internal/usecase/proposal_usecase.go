package usecase

import (
	"context"
	"errors"
	"fmt"
	"impressao_xpto/internal/domain/entities"
	"impressao_xpto/internal/usecase/interfaces"
	"log"
	"strings"
	"time"

	"github.com/google/uuid"
)

var (
	ErrProposalNotFound       = errors.New("proposal not found")
	ErrInvalidProposalID      = errors.New("invalid proposal id")
	ErrInvalidProviderRef     = errors.New("invalid provider reference")
	ErrInvalidProposalPrice   = errors.New("invalid proposal price")
	ErrInvalidEstimatedDays   = errors.New("invalid estimated days")
	ErrProposalAlreadyDecided = errors.New("proposal already decided")
	ErrQuoteAlreadyDecided    = errors.New("quote already has an accepted proposal")
	ErrAcceptConflict         = errors.New("proposal acceptance lost a concurrent race")
)

// CreateProposalCommand carries a provider's offer against a quote.
type CreateProposalCommand struct {
	QuoteID       string
	ProviderID    string
	ProviderName  string
	ProviderEmail string
	Price         float64
	EstimatedDays int
	Description   string
}

// IProposalUseCase exposes the proposal ledger operations.
//
// Accept is the sensitive one: it must leave at most one accepted proposal
// per quote, flip still-pending siblings to rejected in the same transaction
// and never re-transition a decided proposal.

type IProposalUseCase interface {
	CreateProposal(ctx context.Context, cmd CreateProposalCommand) (entities.Proposal, error)
	GetByID(ctx context.Context, id string) (entities.Proposal, error)
	GetByQuote(ctx context.Context, quoteID string) ([]entities.Proposal, error)
	GetByProvider(ctx context.Context, providerID string) ([]entities.Proposal, error)
	Accept(ctx context.Context, proposalID string) (entities.Proposal, error)
	Reject(ctx context.Context, proposalID string) (entities.Proposal, error)
}

type ProposalUseCase struct {
	repo             interfaces.IProposalRepository
	quoteRepo        interfaces.IQuoteRepository
	notificationRepo interfaces.INotificationRepository
	tx               interfaces.IMarketplaceTxRepository
}

var _ IProposalUseCase = (*ProposalUseCase)(nil)

func NewProposalUseCase(
	repo interfaces.IProposalRepository,
	quoteRepo interfaces.IQuoteRepository,
	notificationRepo interfaces.INotificationRepository,
	tx interfaces.IMarketplaceTxRepository,
) *ProposalUseCase {
	return &ProposalUseCase{repo: repo, quoteRepo: quoteRepo, notificationRepo: notificationRepo, tx: tx}
}

func (u *ProposalUseCase) CreateProposal(ctx context.Context, cmd CreateProposalCommand) (entities.Proposal, error) {
	quoteID := strings.TrimSpace(cmd.QuoteID)
	if quoteID == "" {
		return entities.Proposal{}, ErrInvalidQuoteID
	}
	providerID := strings.TrimSpace(cmd.ProviderID)
	providerName := strings.TrimSpace(cmd.ProviderName)
	providerEmail := strings.TrimSpace(cmd.ProviderEmail)
	if providerID == "" || providerName == "" || providerEmail == "" {
		return entities.Proposal{}, ErrInvalidProviderRef
	}
	if cmd.Price <= 0 {
		return entities.Proposal{}, ErrInvalidProposalPrice
	}
	if cmd.EstimatedDays <= 0 {
		return entities.Proposal{}, ErrInvalidEstimatedDays
	}

	q, err := u.quoteRepo.GetByID(ctx, quoteID)
	if err != nil {
		return entities.Proposal{}, err
	}
	if q.ID == "" {
		return entities.Proposal{}, ErrQuoteNotFound
	}
	// Direct quotes are priced by the administrator and never receive
	// provider proposals.
	if q.Origin != entities.QuoteOriginMarketplace {
		return entities.Proposal{}, ErrQuoteNotMarketplace
	}
	if q.Status.IsTerminal() {
		return entities.Proposal{}, ErrQuoteTerminal
	}
	if q.AcceptedProposalID != "" {
		return entities.Proposal{}, ErrQuoteAlreadyDecided
	}

	now := time.Now().UTC()
	p := entities.Proposal{
		ID:            uuid.NewString(),
		QuoteID:       q.ID,
		ProviderID:    providerID,
		ProviderName:  providerName,
		ProviderEmail: providerEmail,
		Price:         cmd.Price,
		EstimatedDays: cmd.EstimatedDays,
		Description:   strings.TrimSpace(cmd.Description),
		Status:        entities.ProposalStatusPending,
		CreatedAt:     now,
		UpdatedAt:     now,
	}

	created, err := u.repo.Create(ctx, p)
	if err != nil {
		return entities.Proposal{}, err
	}

	notification := entities.Notification{
		ID:            uuid.NewString(),
		RecipientID:   q.ClientID,
		RecipientKind: entities.RecipientKindCliente,
		QuoteID:       q.ID,
		Type:          entities.NotificationTypeNewProposal,
		Title:         "Nova proposta recebida",
		Message:       fmt.Sprintf("%s enviou uma proposta de R$ %.2f para o orçamento %s", providerName, cmd.Price, q.SequenceNumber),
		CreatedAt:     now,
	}
	if _, err := u.notificationRepo.Create(ctx, notification); err != nil {
		// The proposal itself stands; the customer still sees it on re-fetch.
		log.Printf("[proposal][usecase] customer notification failed quote_id=%s proposal_id=%s err=%v", q.ID, created.ID, err)
	}

	return created, nil
}

func (u *ProposalUseCase) GetByID(ctx context.Context, id string) (entities.Proposal, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Proposal{}, ErrInvalidProposalID
	}

	p, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.Proposal{}, err
	}
	if p.ID == "" {
		return entities.Proposal{}, ErrProposalNotFound
	}
	return p, nil
}

func (u *ProposalUseCase) GetByQuote(ctx context.Context, quoteID string) ([]entities.Proposal, error) {
	quoteID = strings.TrimSpace(quoteID)
	if quoteID == "" {
		return nil, ErrInvalidQuoteID
	}
	return u.repo.ListByQuoteID(ctx, quoteID)
}

func (u *ProposalUseCase) GetByProvider(ctx context.Context, providerID string) ([]entities.Proposal, error) {
	providerID = strings.TrimSpace(providerID)
	if providerID == "" {
		return nil, ErrInvalidProviderRef
	}
	return u.repo.ListByProviderID(ctx, providerID)
}

// Accept marks the proposal accepted, rejects every still-pending sibling
// and moves the parent quote to in_progress, all in one transaction.
//
// Concurrent acceptances on the same quote are decided by the transaction's
// condition checks: exactly one wins, the loser gets ErrAcceptConflict and
// nothing of the losing attempt is applied.
func (u *ProposalUseCase) Accept(ctx context.Context, proposalID string) (entities.Proposal, error) {
	p, err := u.GetByID(ctx, proposalID)
	if err != nil {
		return entities.Proposal{}, err
	}
	if p.Status != entities.ProposalStatusPending {
		return entities.Proposal{}, ErrProposalAlreadyDecided
	}

	q, err := u.quoteRepo.GetByID(ctx, p.QuoteID)
	if err != nil {
		return entities.Proposal{}, err
	}
	if q.ID == "" {
		return entities.Proposal{}, ErrQuoteNotFound
	}
	if q.Status.IsTerminal() {
		return entities.Proposal{}, ErrQuoteTerminal
	}
	if q.AcceptedProposalID != "" {
		return entities.Proposal{}, ErrQuoteAlreadyDecided
	}

	// A proposal created after this listing is not seen by the transaction
	// and stays pending on the decided quote. Single acceptance still holds
	// (CreateProposal refuses quotes with an accepted proposal), and the
	// straggler can be rejected through Reject.
	siblings, err := u.repo.ListByQuoteID(ctx, p.QuoteID)
	if err != nil {
		return entities.Proposal{}, err
	}
	pendingSiblings := make([]string, 0, len(siblings))
	for _, s := range siblings {
		// Already-rejected siblings stay as they are.
		if s.ID != p.ID && s.Status == entities.ProposalStatusPending {
			pendingSiblings = append(pendingSiblings, s.ID)
		}
	}

	applied, err := u.tx.AcceptProposal(ctx, q.ID, p.ID, pendingSiblings)
	if err != nil {
		return entities.Proposal{}, err
	}
	if !applied {
		return entities.Proposal{}, ErrAcceptConflict
	}

	log.Printf("[proposal][usecase] proposal accepted quote_id=%s proposal_id=%s rejected_siblings=%d", q.ID, p.ID, len(pendingSiblings))

	p.Status = entities.ProposalStatusAccepted
	p.UpdatedAt = time.Now().UTC()
	return p, nil
}

// Reject flips a single pending proposal to rejected. It does not touch the
// parent quote or sibling proposals.
func (u *ProposalUseCase) Reject(ctx context.Context, proposalID string) (entities.Proposal, error) {
	p, err := u.GetByID(ctx, proposalID)
	if err != nil {
		return entities.Proposal{}, err
	}
	if p.Status != entities.ProposalStatusPending {
		return entities.Proposal{}, ErrProposalAlreadyDecided
	}

	updated, err := u.repo.UpdateStatus(ctx, p.ID, entities.ProposalStatusPending, entities.ProposalStatusRejected)
	if err != nil {
		return entities.Proposal{}, err
	}
	if updated.ID == "" {
		return entities.Proposal{}, ErrProposalAlreadyDecided
	}
	return updated, nil
}
