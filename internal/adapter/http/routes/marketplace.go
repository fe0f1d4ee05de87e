package routes

import (
	"impressao_xpto/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

const (
	PathQuotes        = "/quotes"
	PathProposals     = "/proposals"
	PathSales         = "/sales"
	PathNotifications = "/notifications"
	PathProviders     = "/providers"
)

func addMarketplaceRoutes(
	rg *gin.RouterGroup,
	quoteHandler *handlers.QuoteHandler,
	proposalHandler *handlers.ProposalHandler,
	saleHandler *handlers.SaleHandler,
	notificationHandler *handlers.NotificationHandler,
	providerHandler *handlers.ProviderHandler,
) {
	quotes := rg.Group(PathQuotes)
	{
		quotes.POST("", quoteHandler.CreateQuote)
		quotes.GET("", quoteHandler.ListQuotes)
		quotes.GET("/:id", quoteHandler.GetQuote)
		quotes.POST("/:id/send", quoteHandler.SendToProviders)
		quotes.POST("/:id/convert", saleHandler.ConvertQuote)
		quotes.PATCH("/:id/cancel", quoteHandler.CancelQuote)
		// Fluxo direto: orçamento precificado pelo administrador.
		quotes.PATCH("/:id/approve", quoteHandler.ApproveQuote)
		quotes.PATCH("/:id/reject", quoteHandler.RejectQuote)
	}

	proposals := rg.Group(PathProposals)
	{
		proposals.POST("", proposalHandler.CreateProposal)
		proposals.GET("", proposalHandler.ListProposals)
		proposals.PATCH("/:id/accept", proposalHandler.AcceptProposal)
		proposals.PATCH("/:id/reject", proposalHandler.RejectProposal)
	}

	sales := rg.Group(PathSales)
	{
		sales.GET("", saleHandler.ListSales)
		sales.GET("/:id", saleHandler.GetSale)
		sales.POST("/:id/payments", saleHandler.PaySale)
	}

	notifications := rg.Group(PathNotifications)
	{
		notifications.GET("", notificationHandler.ListNotifications)
		notifications.PATCH("/:id/read", notificationHandler.MarkRead)
	}

	providers := rg.Group(PathProviders)
	{
		providers.POST("", providerHandler.RegisterProvider)
		providers.GET("", providerHandler.ListProviders)
		providers.GET("/:id", providerHandler.GetProvider)
		providers.PATCH("/:id/approve", providerHandler.ApproveProvider)
	}
}
