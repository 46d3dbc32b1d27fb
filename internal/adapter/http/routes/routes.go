package routes

import (
	"context"
	"log"
	"os"
	"strconv"
	"time"

	"github.com/mayconabentes-bi/calculadora-orcamento-cdl-sub001/internal/adapter/http/handlers"
	repository2 "github.com/mayconabentes-bi/calculadora-orcamento-cdl-sub001/internal/adapter/persistence/repository"
	"github.com/mayconabentes-bi/calculadora-orcamento-cdl-sub001/internal/datamanager"
	"github.com/mayconabentes-bi/calculadora-orcamento-cdl-sub001/internal/infrastructure/database"
	"github.com/mayconabentes-bi/calculadora-orcamento-cdl-sub001/internal/infrastructure/payments"
	"github.com/mayconabentes-bi/calculadora-orcamento-cdl-sub001/internal/syncworker"
	"github.com/mayconabentes-bi/calculadora-orcamento-cdl-sub001/internal/usecase"
	"github.com/mayconabentes-bi/calculadora-orcamento-cdl-sub001/internal/usecase/interfaces"

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
	sqliteDB := database.ConnectSQLite()

	remoteStore := repository2.NewDynamoDocumentStore(ddb)
	snapshotStore, err := repository2.NewSQLiteSnapshotStore(sqliteDB)
	if err != nil {
		log.Fatalf("Failed to prepare snapshot store: %v", err)
	}

	dm := datamanager.New(snapshotStore, remoteStore)
	if err := dm.Load(context.Background()); err != nil {
		log.Fatalf("Failed to load application state: %v", err)
	}

	var paymentGateway interfaces.IPaymentLinkGateway
	mpGateway, err := payments.NewMercadoPagoGateway(os.Getenv("MERCADOPAGO_ACCESS_TOKEN"))
	if err != nil {
		log.Printf("Mercado Pago gateway not configured: %v", err)
	} else {
		paymentGateway = mpGateway
	}

	quoteUseCase := usecase.NewQuoteUseCase(dm, paymentGateway)
	leadUseCase := usecase.NewLeadUseCase(dm)
	reportUseCase := usecase.NewReportUseCase(dm)
	adminUseCase := usecase.NewAdminUseCase(dm)

	quoteHandler := handlers.NewQuoteHandler(quoteUseCase)
	leadHandler := handlers.NewLeadHandler(leadUseCase)
	reportHandler := handlers.NewReportHandler(reportUseCase)
	adminHandler := handlers.NewAdminHandler(adminUseCase)

	go syncworker.New(dm, syncInterval()).Run(context.Background())

	// Rotas publicas
	v1 := router.Group("/v1")
	addPingRoutes(v1)
	addCalculadoraRoutes(v1, quoteHandler, leadHandler, reportHandler, adminHandler)
}

func syncInterval() time.Duration {
	if v := os.Getenv("SYNC_INTERVAL_SECONDS"); v != "" {
		if secs, err := strconv.Atoi(v); err == nil && secs > 0 {
			return time.Duration(secs) * time.Second
		}
	}
	return 30 * time.Second
}

func setMiddlewares() {
	router.Use(gin.Logger())
	router.Use(gin.Recovery())
	router.Use(gin.CustomRecovery(func(c *gin.Context, recovered interface{}) {
		log.Printf("Recovered from panic: %v", recovered)
		c.AbortWithStatus(500)
	}))
}
