package handlers

import (
	"errors"
	"net/http"

	request "impressao_xpto/internal/adapter/http/dto/request"
	response "impressao_xpto/internal/adapter/http/dto/response"
	"impressao_xpto/internal/domain/entities"
	"impressao_xpto/internal/usecase"
	"impressao_xpto/pkg"

	"github.com/gin-gonic/gin"
)

var (
	errInvalidProviderPayload = pkg.NewDomainErrorSimple("INVALID_PROVIDER_INPUT", "Invalid provider payload", http.StatusBadRequest)
)

// ProviderHandler handles the provider directory endpoints.

type ProviderHandler struct {
	usecase usecase.IProviderUseCase
}

func NewProviderHandler(uc usecase.IProviderUseCase) *ProviderHandler {
	return &ProviderHandler{usecase: uc}
}

func (h *ProviderHandler) RegisterProvider(c *gin.Context) {
	var payload request.RegisterProviderRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidProviderPayload.HTTPStatus, errInvalidProviderPayload.ToHTTPError())
		return
	}

	services := make([]entities.ServiceType, 0, len(payload.Services))
	for _, s := range payload.Services {
		services = append(services, entities.ServiceType(s))
	}

	provider, err := h.usecase.Register(c.Request.Context(), usecase.RegisterProviderCommand{
		Name:         payload.Name,
		Email:        payload.Email,
		Phone:        payload.Phone,
		Services:     services,
		PortfolioURL: payload.PortfolioURL,
	})
	if err != nil {
		appErr := mapProviderError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusCreated, response.FromProvider(provider))
}

// ApproveProvider flips a provider to approved, letting it enter matching.
func (h *ProviderHandler) ApproveProvider(c *gin.Context) {
	id := c.Param("id")

	provider, err := h.usecase.Approve(c.Request.Context(), id)
	if err != nil {
		appErr := mapProviderError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromProvider(provider))
}

func (h *ProviderHandler) GetProvider(c *gin.Context) {
	id := c.Param("id")

	provider, err := h.usecase.GetByID(c.Request.Context(), id)
	if err != nil {
		appErr := mapProviderError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromProvider(provider))
}

func (h *ProviderHandler) ListProviders(c *gin.Context) {
	providers, err := h.usecase.List(c.Request.Context())
	if err != nil {
		appErr := mapProviderError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromProviders(providers))
}

func mapProviderError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidProviderID), errors.Is(err, usecase.ErrInvalidProviderCmd), errors.Is(err, usecase.ErrInvalidServiceType):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrProviderNotFound):
		return pkg.NewDomainErrorSimple("PROVIDER_NOT_FOUND", "Prestador não encontrado", http.StatusNotFound)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
