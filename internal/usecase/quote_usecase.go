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
	ErrQuoteNotFound        = errors.New("quote not found")
	ErrInvalidQuoteID       = errors.New("invalid quote id")
	ErrInvalidClientID      = errors.New("invalid client id")
	ErrInvalidQuoteItems    = errors.New("invalid quote items")
	ErrQuoteTerminal        = errors.New("quote is in a terminal status")
	ErrQuoteAlreadySent     = errors.New("quote already sent to providers")
	ErrQuoteNotMarketplace  = errors.New("quote is not a marketplace quote")
	ErrQuoteNotDirect       = errors.New("quote is not a direct quote")
	ErrNoQualifiedProviders = errors.New("no qualified providers for service type")
)

// CreateQuoteCommand carries a normalized quote submission. Both quote
// origins come through here, so core logic never sees the dual status
// vocabulary on input.
type CreateQuoteCommand struct {
	Origin        entities.QuoteOrigin
	ServiceType   entities.ServiceType
	ClientID      string
	Description   string
	FileRefs      []string
	Items         []entities.QuoteItem
	Shipping      float64
	PaymentMethod string
	Notes         string
}

// FanoutResult reports the outcome of sending a quote to providers.
type FanoutResult struct {
	Quote         entities.Quote
	ProviderCount int
}

// IQuoteUseCase exposes the quote ledger operations.
//
//   - CreateQuote: submission (marketplace or direct)
//   - SendToProviders: matching + notification fan-out
//   - Cancel: customer cancellation, terminal-safe
//   - ApproveDirect/RejectDirect: the admin-priced direct path
//     (pendente -> aprovado | recusado)

type IQuoteUseCase interface {
	CreateQuote(ctx context.Context, cmd CreateQuoteCommand) (entities.Quote, error)
	GetByID(ctx context.Context, id string) (entities.Quote, error)
	ListByClient(ctx context.Context, clientID string) ([]entities.Quote, error)
	SendToProviders(ctx context.Context, quoteID string) (FanoutResult, error)
	Cancel(ctx context.Context, quoteID string) (entities.Quote, error)
	ApproveDirect(ctx context.Context, quoteID string) (entities.Quote, error)
	RejectDirect(ctx context.Context, quoteID string) (entities.Quote, error)
}

type QuoteUseCase struct {
	repo             interfaces.IQuoteRepository
	notificationRepo interfaces.INotificationRepository
	matching         IMatchingUseCase
}

var _ IQuoteUseCase = (*QuoteUseCase)(nil)

func NewQuoteUseCase(repo interfaces.IQuoteRepository, notificationRepo interfaces.INotificationRepository, matching IMatchingUseCase) *QuoteUseCase {
	return &QuoteUseCase{repo: repo, notificationRepo: notificationRepo, matching: matching}
}

func (u *QuoteUseCase) CreateQuote(ctx context.Context, cmd CreateQuoteCommand) (entities.Quote, error) {
	clientID := strings.TrimSpace(cmd.ClientID)
	if clientID == "" {
		return entities.Quote{}, ErrInvalidClientID
	}
	if !entities.ValidServiceType(cmd.ServiceType) {
		return entities.Quote{}, ErrInvalidServiceType
	}
	if len(cmd.Items) == 0 {
		return entities.Quote{}, ErrInvalidQuoteItems
	}

	items := make([]entities.QuoteItem, 0, len(cmd.Items))
	subtotal := 0.0
	for _, it := range cmd.Items {
		if it.Quantity <= 0 || it.UnitPrice < 0 {
			return entities.Quote{}, ErrInvalidQuoteItems
		}
		it.Total = it.UnitPrice * float64(it.Quantity)
		subtotal += it.Total
		items = append(items, it)
	}
	if cmd.Shipping < 0 {
		return entities.Quote{}, ErrInvalidQuoteItems
	}

	origin := cmd.Origin
	if origin == "" {
		origin = entities.QuoteOriginMarketplace
	}
	status := entities.QuoteStatusOpen
	if origin == entities.QuoteOriginDireto {
		status = entities.QuoteStatusPendente
	}

	seq, err := u.repo.NextSequence(ctx)
	if err != nil {
		return entities.Quote{}, err
	}

	now := time.Now().UTC()
	q := entities.Quote{
		ID:             uuid.NewString(),
		SequenceNumber: fmt.Sprintf("ORC-%06d", seq),
		Origin:         origin,
		ServiceType:    cmd.ServiceType,
		ClientID:       clientID,
		Description:    strings.TrimSpace(cmd.Description),
		FileRefs:       cmd.FileRefs,
		Items:          items,
		Subtotal:       subtotal,
		Shipping:       cmd.Shipping,
		Total:          subtotal + cmd.Shipping,
		PaymentMethod:  strings.TrimSpace(cmd.PaymentMethod),
		Notes:          strings.TrimSpace(cmd.Notes),
		Status:         status,
		CreatedAt:      now,
		UpdatedAt:      now,
	}
	return u.repo.Create(ctx, q)
}

func (u *QuoteUseCase) GetByID(ctx context.Context, id string) (entities.Quote, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Quote{}, ErrInvalidQuoteID
	}

	q, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.Quote{}, err
	}
	if q.ID == "" {
		return entities.Quote{}, ErrQuoteNotFound
	}
	return q, nil
}

func (u *QuoteUseCase) ListByClient(ctx context.Context, clientID string) ([]entities.Quote, error) {
	clientID = strings.TrimSpace(clientID)
	if clientID == "" {
		return nil, ErrInvalidClientID
	}
	return u.repo.ListByClientID(ctx, clientID)
}

// SendToProviders matches the quote against registered providers and fans
// one notification out per qualified provider.
//
// The operation is idempotent by quote: a quote already flagged as sent
// fails with ErrQuoteAlreadySent instead of duplicating notifications.
// Zero qualified providers returns ErrNoQualifiedProviders and leaves the
// quote untouched, so the customer can cancel or try again later.
func (u *QuoteUseCase) SendToProviders(ctx context.Context, quoteID string) (FanoutResult, error) {
	q, err := u.GetByID(ctx, quoteID)
	if err != nil {
		return FanoutResult{}, err
	}
	if q.Origin != entities.QuoteOriginMarketplace {
		return FanoutResult{}, ErrQuoteNotMarketplace
	}
	if q.Status.IsTerminal() {
		return FanoutResult{}, ErrQuoteTerminal
	}
	if q.SentToProviders {
		return FanoutResult{}, ErrQuoteAlreadySent
	}

	providers, err := u.matching.FindQualifiedProviders(ctx, q.ServiceType)
	if err != nil {
		return FanoutResult{}, err
	}
	if len(providers) == 0 {
		log.Printf("[quote][usecase] fan-out matched no providers quote_id=%s service_type=%s", q.ID, q.ServiceType)
		return FanoutResult{}, ErrNoQualifiedProviders
	}

	// The sent flag is flipped first, under a condition, so a concurrent
	// duplicate send loses here before any notification is written.
	updated, err := u.repo.MarkSentToProviders(ctx, q.ID, len(providers))
	if err != nil {
		return FanoutResult{}, err
	}
	if updated.ID == "" {
		return FanoutResult{}, ErrQuoteAlreadySent
	}

	now := time.Now().UTC()
	notifications := make([]entities.Notification, 0, len(providers))
	for _, p := range providers {
		notifications = append(notifications, entities.Notification{
			ID:            uuid.NewString(),
			RecipientID:   p.ID,
			RecipientKind: entities.RecipientKindProvider,
			QuoteID:       q.ID,
			Type:          entities.NotificationTypeNewQuote,
			Title:         "Novo orçamento disponível",
			Message:       fmt.Sprintf("Orçamento %s (%s) aguarda sua proposta", q.SequenceNumber, q.ServiceType),
			CreatedAt:     now,
		})
	}
	if err := u.notificationRepo.CreateBatch(ctx, notifications); err != nil {
		return FanoutResult{}, err
	}

	log.Printf("[quote][usecase] fan-out complete quote_id=%s providers=%d", q.ID, len(providers))
	return FanoutResult{Quote: updated, ProviderCount: len(providers)}, nil
}

func (u *QuoteUseCase) Cancel(ctx context.Context, quoteID string) (entities.Quote, error) {
	q, err := u.GetByID(ctx, quoteID)
	if err != nil {
		return entities.Quote{}, err
	}
	if q.Status.IsTerminal() {
		return entities.Quote{}, ErrQuoteTerminal
	}

	updated, err := u.repo.UpdateStatus(ctx, q.ID, q.Status, entities.QuoteStatusCancelled)
	if err != nil {
		return entities.Quote{}, err
	}
	if updated.ID == "" {
		// Status moved between read and write; whoever moved it wins.
		return entities.Quote{}, ErrQuoteTerminal
	}
	return updated, nil
}

func (u *QuoteUseCase) ApproveDirect(ctx context.Context, quoteID string) (entities.Quote, error) {
	return u.decideDirect(ctx, quoteID, entities.QuoteStatusAprovado)
}

func (u *QuoteUseCase) RejectDirect(ctx context.Context, quoteID string) (entities.Quote, error) {
	return u.decideDirect(ctx, quoteID, entities.QuoteStatusRecusado)
}

func (u *QuoteUseCase) decideDirect(ctx context.Context, quoteID string, to entities.QuoteStatus) (entities.Quote, error) {
	q, err := u.GetByID(ctx, quoteID)
	if err != nil {
		return entities.Quote{}, err
	}
	if q.Origin != entities.QuoteOriginDireto {
		return entities.Quote{}, ErrQuoteNotDirect
	}
	if q.Status != entities.QuoteStatusPendente {
		return entities.Quote{}, ErrQuoteTerminal
	}

	updated, err := u.repo.UpdateStatus(ctx, q.ID, entities.QuoteStatusPendente, to)
	if err != nil {
		return entities.Quote{}, err
	}
	if updated.ID == "" {
		return entities.Quote{}, ErrQuoteTerminal
	}
	return updated, nil
}
