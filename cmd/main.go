package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/rakhigifts/shop-service/internal/ai"
	"github.com/rakhigifts/shop-service/internal/events"
	"github.com/rakhigifts/shop-service/internal/handler"
	"github.com/rakhigifts/shop-service/internal/payment"
	"github.com/rakhigifts/shop-service/internal/repository"
	"github.com/rakhigifts/shop-service/internal/service"
	"github.com/rakhigifts/shop-service/pkg/config"
	"github.com/rakhigifts/shop-service/pkg/middleware"
	pkgtls "github.com/rakhigifts/shop-service/pkg/tls"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal("Failed to load config:", err)
	}

	logger, err := newLogger(cfg.LogLevel)
	if err != nil {
		log.Fatal("Failed to create logger:", err)
	}
	defer logger.Sync()

	ctx := context.Background()

	dynamoClient, err := repository.NewDynamoDBClient(ctx, cfg)
	if err != nil {
		logger.Fatal("Failed to create DynamoDB client", zap.Error(err))
	}

	productRepo := repository.NewProductRepository(dynamoClient, cfg.TableName)
	cartRepo := repository.NewCartRepository(dynamoClient, cfg.TableName)
	orderRepo := repository.NewOrderRepository(dynamoClient, cfg.TableName)
	blogRepo := repository.NewBlogRepository(dynamoClient, cfg.TableName)

	gateway := payment.NewStripeGateway(cfg.StripeSecretKey, cfg.StripeWebhookSecret)

	var publisher service.EventPublisher
	if cfg.KafkaBrokers != "" {
		producer := events.NewKafkaProducer(cfg.KafkaBrokers, logger)
		defer producer.Close()
		publisher = producer
	}

	productService := service.NewProductService(productRepo, logger)
	cartService := service.NewCartService(cartRepo, productRepo, logger)
	checkoutService := service.NewCheckoutService(cartRepo, productRepo, orderRepo,
		gateway, publisher, cfg.FrontendURL, logger)
	orderService := service.NewOrderService(orderRepo, logger)
	contentService := service.NewContentService(
		ai.NewOpenAIClient(cfg.OpenAIAPIKey), blogRepo, logger)

	productHandler := handler.NewProductHandler(productService, logger)
	cartHandler := handler.NewCartHandler(cartService, logger)
	checkoutHandler := handler.NewCheckoutHandler(checkoutService, logger)
	orderHandler := handler.NewOrderHandler(orderService, logger)
	contentHandler := handler.NewContentHandler(contentService, logger)

	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.RequestID())
	router.Use(middleware.Logger(logger))
	router.Use(cors.New(cors.Config{
		AllowAllOrigins: true,
		AllowMethods:    []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:    []string{"Content-Type", "Authorization", "X-API-Key", middleware.RequestIDHeader},
	}))

	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "healthy"})
	})

	// Public catalog and gateway callback.
	router.GET("/products", productHandler.ListProducts)
	router.GET("/products/:id", productHandler.GetProduct)
	router.GET("/blog/:slug", contentHandler.GetBlogPost)
	router.POST("/checkout/webhook", checkoutHandler.PaymentWebhook)

	// Routes acting on the caller's own cart and orders.
	user := router.Group("")
	user.Use(middleware.RequireUser())
	{
		user.GET("/cart", cartHandler.GetCart)
		user.POST("/cart", cartHandler.AddToCart)
		user.PUT("/cart/:itemId", cartHandler.UpdateCartItem)
		user.DELETE("/cart/:itemId", cartHandler.RemoveCartItem)
		user.POST("/checkout", checkoutHandler.CreateCheckoutSession)
		user.GET("/orders", orderHandler.ListOrders)
		user.GET("/orders/:id", orderHandler.GetOrder)
		user.POST("/ai/gift-message", contentHandler.GenerateGiftMessage)
	}

	admin := router.Group("")
	admin.Use(middleware.RequireAdminKey(cfg.AdminAPIKey))
	{
		admin.GET("/admin/orders", orderHandler.ListAllOrders)
		admin.PUT("/orders/:id/status", orderHandler.UpdateOrderStatus)
		admin.POST("/products", productHandler.CreateProduct)
		admin.PUT("/products/:id", productHandler.UpdateProduct)
		admin.DELETE("/products/:id", productHandler.DeleteProduct)
		admin.POST("/ai/product-description", contentHandler.GenerateProductDescription)
		admin.POST("/ai/blog", contentHandler.GenerateBlogPost)
	}

	tlsConfig, err := pkgtls.LoadTLSConfig(&cfg.TLS, logger)
	if err != nil {
		logger.Fatal("Failed to load TLS config", zap.Error(err))
	}
	defer pkgtls.Cleanup()

	srv := &http.Server{
		Addr:      ":" + cfg.Port,
		Handler:   router,
		TLSConfig: tlsConfig,
	}

	go func() {
		logger.Info("Starting server",
			zap.String("port", cfg.Port),
			zap.Bool("tls", tlsConfig != nil))

		var err error
		if tlsConfig != nil {
			go pkgtls.WatchCertificates(&cfg.TLS, logger)
			err = srv.ListenAndServeTLS("", "")
		} else {
			err = srv.ListenAndServe()
		}
		if err != nil && err != http.ErrServerClosed {
			logger.Fatal("Failed to start server", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("Shutting down server...")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Fatal("Server forced to shutdown", zap.Error(err))
	}
	logger.Info("Server exited")
}

func newLogger(level string) (*zap.Logger, error) {
	zapCfg := zap.NewProductionConfig()
	if lvl, err := zapcore.ParseLevel(level); err == nil {
		zapCfg.Level = zap.NewAtomicLevelAt(lvl)
	}
	return zapCfg.Build()
}
