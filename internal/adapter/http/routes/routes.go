package routes

import (
	"log"
	"os"
	"strconv"

	_ "dynamic_shipping/docs" // This will be auto-generated
	"dynamic_shipping/internal/adapter/http/handlers"
	repository2 "dynamic_shipping/internal/adapter/persistence/repository"
	"dynamic_shipping/internal/infrastructure/carrier"
	"dynamic_shipping/internal/infrastructure/database"
	"dynamic_shipping/internal/infrastructure/payments"
	"dynamic_shipping/internal/usecase"
	"dynamic_shipping/internal/usecase/interfaces"

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

	shipmentRepo := repository2.NewShipmentDynamoRepository(ddb)
	profileRepo := repository2.NewProfileDynamoRepository(ddb)
	paymentRepo := repository2.NewShipmentPaymentDynamoRepository(ddb)

	shipmentUseCase := usecase.NewShipmentUseCase(shipmentRepo)
	quoteUseCase := usecase.NewQuoteUseCase()
	trackingUseCase := usecase.NewTrackingUseCase(shipmentRepo, carrier.NewStaticFeed())
	profileUseCase := usecase.NewProfileUseCase(profileRepo)

	var paymentGateway interfaces.IPaymentGateway
	mpGateway, err := payments.NewMercadoPagoGateway(os.Getenv("MERCADOPAGO_ACCESS_TOKEN"))
	if err != nil {
		log.Printf("Mercado Pago gateway not configured: %v", err)
	} else {
		paymentGateway = mpGateway
	}

	paymentUseCase := usecase.NewShipmentPaymentUseCase(paymentRepo, shipmentRepo, paymentGateway)

	shipmentHandler := handlers.NewShipmentHandler(shipmentUseCase)
	quoteHandler := handlers.NewQuoteHandler(quoteUseCase)
	trackingHandler := handlers.NewTrackingHandler(trackingUseCase)
	profileHandler := handlers.NewProfileHandler(profileUseCase)
	paymentHandler := handlers.NewShipmentPaymentHandler(paymentUseCase)

	v1 := router.Group("/v1")
	addPingRoutes(v1)
	addShippingRoutes(v1, shipmentHandler, quoteHandler, trackingHandler, profileHandler, paymentHandler)
}

func setMiddlewares() {
	router.Use(gin.Logger())
	router.Use(gin.Recovery())
	router.Use(gin.CustomRecovery(func(c *gin.Context, recovered interface{}) {
		log.Printf("Recovered from panic: %v", recovered)
		c.AbortWithStatus(500)
	}))
}
