package routes

import (
	_ "impressao_xpto/docs" // This will be auto-generated
	"impressao_xpto/internal/adapter/http/handlers"
	repository2 "impressao_xpto/internal/adapter/persistence/repository"
	"impressao_xpto/internal/infrastructure/database"
	"impressao_xpto/internal/infrastructure/payments"
	"impressao_xpto/internal/usecase"
	"impressao_xpto/internal/usecase/interfaces"
	"log"
	"os"
	"strconv"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

var router = gin.Default()

const PORT = 8080

// Run will start the server
func Run() {
	setMiddlewares()

	// Swagger documentation endpoint
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	getRoutes()

	err := router.Run(":" + strconv.Itoa(PORT))
	if err != nil {
		log.Fatalf("Failed to startup the application: %v", err.Error())
	}
}

func getRoutes() {
	ddb := database.ConnectDynamoDB()

	quoteRepo := repository2.NewQuoteDynamoRepository(ddb)
	proposalRepo := repository2.NewProposalDynamoRepository(ddb)
	providerRepo := repository2.NewProviderDynamoRepository(ddb)
	productRepo := repository2.NewProductDynamoRepository(ddb)
	saleRepo := repository2.NewSaleDynamoRepository(ddb)
	notificationRepo := repository2.NewNotificationDynamoRepository(ddb)
	txRepo := repository2.NewMarketplaceTxDynamoRepository(ddb)

	var paymentGateway interfaces.IPaymentGateway
	mpGateway, err := payments.NewMercadoPagoGateway(os.Getenv("MERCADOPAGO_ACCESS_TOKEN"))
	if err != nil {
		log.Printf("Mercado Pago gateway not configured: %v", err)
	} else {
		paymentGateway = mpGateway
	}

	matchingUseCase := usecase.NewMatchingUseCase(providerRepo)
	quoteUseCase := usecase.NewQuoteUseCase(quoteRepo, notificationRepo, matchingUseCase)
	proposalUseCase := usecase.NewProposalUseCase(proposalRepo, quoteRepo, notificationRepo, txRepo)
	conversionUseCase := usecase.NewConversionUseCase(quoteRepo, productRepo, txRepo)
	saleUseCase := usecase.NewSaleUseCase(saleRepo, paymentGateway)
	notificationUseCase := usecase.NewNotificationUseCase(notificationRepo)
	providerUseCase := usecase.NewProviderUseCase(providerRepo)

	quoteHandler := handlers.NewQuoteHandler(quoteUseCase)
	proposalHandler := handlers.NewProposalHandler(proposalUseCase)
	saleHandler := handlers.NewSaleHandler(saleUseCase, conversionUseCase)
	notificationHandler := handlers.NewNotificationHandler(notificationUseCase)
	providerHandler := handlers.NewProviderHandler(providerUseCase)

	// Rotas publicas
	v1 := router.Group("/v1")
	addPingRoutes(v1)
	addMarketplaceRoutes(v1, quoteHandler, proposalHandler, saleHandler, notificationHandler, providerHandler)
}

func setMiddlewares() {
	router.Use(gin.Logger())
	router.Use(gin.Recovery())
	router.Use(gin.CustomRecovery(func(c *gin.Context, recovered interface{}) {
		log.Printf("Recovered from panic: %v", recovered)
		c.AbortWithStatus(500)
	}))
}
