package handlers

import (
	"context"
	"errors"
	request "impressao_xpto/internal/adapter/http/dto/request"
	response "impressao_xpto/internal/adapter/http/dto/response"
	"impressao_xpto/internal/domain/entities"
	"impressao_xpto/internal/usecase"
	"impressao_xpto/pkg"
	"net/http"

	"github.com/gin-gonic/gin"
)

var (
	errInvalidQuotePayload = pkg.NewDomainErrorSimple("INVALID_QUOTE_INPUT", "Invalid quote payload", http.StatusBadRequest)
)

// QuoteHandler handles HTTP requests for the quote ledger: submission,
// provider fan-out, cancellation and the direct approve/reject path.

type QuoteHandler struct {
	usecase usecase.IQuoteUseCase
}

func NewQuoteHandler(uc usecase.IQuoteUseCase) *QuoteHandler {
	return &QuoteHandler{usecase: uc}
}

func (h *QuoteHandler) CreateQuote(c *gin.Context) {
	var payload request.CreateQuoteRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidQuotePayload.HTTPStatus, errInvalidQuotePayload.ToHTTPError())
		return
	}

	items := make([]entities.QuoteItem, 0, len(payload.Items))
	for _, it := range payload.Items {
		items = append(items, entities.QuoteItem{
			ProductID:   it.ProductID,
			Description: it.Description,
			Quantity:    it.Quantity,
			UnitPrice:   it.UnitPrice,
		})
	}

	quote, err := h.usecase.CreateQuote(c.Request.Context(), usecase.CreateQuoteCommand{
		Origin:        entities.QuoteOrigin(payload.Origin),
		ServiceType:   entities.ServiceType(payload.ServiceType),
		ClientID:      payload.ClientID,
		Description:   payload.Description,
		FileRefs:      payload.FileRefs,
		Items:         items,
		Shipping:      payload.Shipping,
		PaymentMethod: payload.PaymentMethod,
		Notes:         payload.Notes,
	})
	if err != nil {
		appErr := mapQuoteError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusCreated, response.FromQuote(quote))
}

func (h *QuoteHandler) GetQuote(c *gin.Context) {
	quote, err := h.usecase.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		appErr := mapQuoteError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromQuote(quote))
}

func (h *QuoteHandler) ListQuotes(c *gin.Context) {
	quotes, err := h.usecase.ListByClient(c.Request.Context(), c.Query("client_id"))
	if err != nil {
		appErr := mapQuoteError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromQuotes(quotes))
}

// SendToProviders runs matching and the notification fan-out for a quote.
func (h *QuoteHandler) SendToProviders(c *gin.Context) {
	result, err := h.usecase.SendToProviders(c.Request.Context(), c.Param("id"))
	if err != nil {
		appErr := mapQuoteError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FanoutResponse{
		Quote:         response.FromQuote(result.Quote),
		ProviderCount: result.ProviderCount,
	})
}

func (h *QuoteHandler) CancelQuote(c *gin.Context) {
	h.patchQuoteStatus(c, h.usecase.Cancel)
}

func (h *QuoteHandler) ApproveQuote(c *gin.Context) {
	h.patchQuoteStatus(c, h.usecase.ApproveDirect)
}

func (h *QuoteHandler) RejectQuote(c *gin.Context) {
	h.patchQuoteStatus(c, h.usecase.RejectDirect)
}

func (h *QuoteHandler) patchQuoteStatus(
	c *gin.Context,
	updater func(ctx context.Context, quoteID string) (entities.Quote, error),
) {
	quote, err := updater(c.Request.Context(), c.Param("id"))
	if err != nil {
		appErr := mapQuoteError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromQuote(quote))
}

func mapQuoteError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidQuoteID),
		errors.Is(err, usecase.ErrInvalidClientID),
		errors.Is(err, usecase.ErrInvalidQuoteItems),
		errors.Is(err, usecase.ErrInvalidServiceType):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrQuoteNotFound):
		return pkg.NewDomainErrorSimple("QUOTE_NOT_FOUND", "Orçamento não encontrado", http.StatusNotFound)
	case errors.Is(err, usecase.ErrQuoteAlreadySent):
		return pkg.NewDomainErrorSimple("QUOTE_ALREADY_SENT", "Orçamento já enviado aos prestadores", http.StatusConflict)
	case errors.Is(err, usecase.ErrNoQualifiedProviders):
		return pkg.NewDomainErrorSimple("NO_QUALIFIED_PROVIDERS", "Nenhum prestador qualificado para este tipo de serviço", http.StatusUnprocessableEntity)
	case errors.Is(err, usecase.ErrQuoteTerminal):
		return pkg.NewDomainErrorSimple("QUOTE_TERMINAL", "Orçamento já finalizado", http.StatusConflict)
	case errors.Is(err, usecase.ErrQuoteNotMarketplace), errors.Is(err, usecase.ErrQuoteNotDirect):
		return pkg.NewDomainErrorSimple("QUOTE_WRONG_ORIGIN", "Operação não disponível para esta origem de orçamento", http.StatusConflict)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
