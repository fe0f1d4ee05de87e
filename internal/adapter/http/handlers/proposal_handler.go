package handlers

import (
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
	errInvalidProposalPayload = pkg.NewDomainErrorSimple("INVALID_PROPOSAL_INPUT", "Invalid proposal payload", http.StatusBadRequest)
)

// ProposalHandler handles HTTP requests for the proposal ledger.

type ProposalHandler struct {
	usecase usecase.IProposalUseCase
}

func NewProposalHandler(uc usecase.IProposalUseCase) *ProposalHandler {
	return &ProposalHandler{usecase: uc}
}

func (h *ProposalHandler) CreateProposal(c *gin.Context) {
	var payload request.CreateProposalRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidProposalPayload.HTTPStatus, errInvalidProposalPayload.ToHTTPError())
		return
	}

	proposal, err := h.usecase.CreateProposal(c.Request.Context(), usecase.CreateProposalCommand{
		QuoteID:       payload.QuoteID,
		ProviderID:    payload.ProviderID,
		ProviderName:  payload.ProviderName,
		ProviderEmail: payload.ProviderEmail,
		Price:         payload.Price,
		EstimatedDays: payload.EstimatedDays,
		Description:   payload.Description,
	})
	if err != nil {
		appErr := mapProposalError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusCreated, response.FromProposal(proposal))
}

// ListProposals filters by quote_id or provider_id, whichever is present.
func (h *ProposalHandler) ListProposals(c *gin.Context) {
	var (
		proposals []entities.Proposal
		err       error
	)
	switch {
	case c.Query("quote_id") != "":
		proposals, err = h.usecase.GetByQuote(c.Request.Context(), c.Query("quote_id"))
	case c.Query("provider_id") != "":
		proposals, err = h.usecase.GetByProvider(c.Request.Context(), c.Query("provider_id"))
	default:
		appErr := pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	if err != nil {
		appErr := mapProposalError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromProposals(proposals))
}

func (h *ProposalHandler) AcceptProposal(c *gin.Context) {
	proposal, err := h.usecase.Accept(c.Request.Context(), c.Param("id"))
	if err != nil {
		appErr := mapProposalError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromProposal(proposal))
}

func (h *ProposalHandler) RejectProposal(c *gin.Context) {
	proposal, err := h.usecase.Reject(c.Request.Context(), c.Param("id"))
	if err != nil {
		appErr := mapProposalError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromProposal(proposal))
}

func mapProposalError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidProposalID),
		errors.Is(err, usecase.ErrInvalidQuoteID),
		errors.Is(err, usecase.ErrInvalidProviderRef),
		errors.Is(err, usecase.ErrInvalidProposalPrice),
		errors.Is(err, usecase.ErrInvalidEstimatedDays):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrProposalNotFound):
		return pkg.NewDomainErrorSimple("PROPOSAL_NOT_FOUND", "Proposta não encontrada", http.StatusNotFound)
	case errors.Is(err, usecase.ErrQuoteNotFound):
		return pkg.NewDomainErrorSimple("QUOTE_NOT_FOUND", "Orçamento não encontrado", http.StatusNotFound)
	case errors.Is(err, usecase.ErrQuoteNotMarketplace):
		return pkg.NewDomainErrorSimple("QUOTE_WRONG_ORIGIN", "Operação não disponível para esta origem de orçamento", http.StatusConflict)
	case errors.Is(err, usecase.ErrProposalAlreadyDecided):
		return pkg.NewDomainErrorSimple("PROPOSAL_ALREADY_DECIDED", "Proposta já decidida", http.StatusConflict)
	case errors.Is(err, usecase.ErrQuoteAlreadyDecided):
		return pkg.NewDomainErrorSimple("QUOTE_ALREADY_DECIDED", "Orçamento já possui proposta aceita", http.StatusConflict)
	case errors.Is(err, usecase.ErrQuoteTerminal):
		return pkg.NewDomainErrorSimple("QUOTE_TERMINAL", "Orçamento já finalizado", http.StatusConflict)
	case errors.Is(err, usecase.ErrAcceptConflict):
		return pkg.NewDomainErrorSimple("PROPOSAL_CONFLICT", "Outra proposta foi aceita primeiro", http.StatusConflict)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
