package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/take-two/storefront/cartstore"
	"github.com/take-two/storefront/config"
	"github.com/take-two/storefront/contact"
	"github.com/take-two/storefront/controllers"
	"github.com/take-two/storefront/database"
	"github.com/take-two/storefront/kafka"
	"github.com/take-two/storefront/logger"
	"github.com/take-two/storefront/middleware"
	"github.com/take-two/storefront/models"
	"github.com/take-two/storefront/repository"
	"github.com/take-two/storefront/routes"
	"github.com/take-two/storefront/services"
)

func main() {
	cfg := config.Load()

	logger.Initialize(cfg.Env)
	defer logger.Log.Sync()
	log := logger.Log

	mongoClient, db, err := database.ConnectMongo(cfg.MongoURL, cfg.MongoDB, log)
	if err != nil {
		log.Fatal("failed to connect to MongoDB", zap.Error(err))
	}
	defer database.CloseMongo(mongoClient)

	// Cart slots live in Redis by default; a file-backed store is available
	// for single-node setups without Redis.
	var stores controllers.StoreFactory
	if cfg.CartSlots == "file" {
		stores = func(slot string) cartstore.Store {
			return cartstore.NewFileStore(cfg.StateDir, slot, log)
		}
	} else {
		redisClient, err := database.NewRedisClient(cfg.RedisURL, log)
		if err != nil {
			log.Fatal("failed to connect to Redis", zap.Error(err))
		}
		defer redisClient.Close()
		stores = func(slot string) cartstore.Store {
			return cartstore.NewRedisStore(redisClient, slot, cfg.CartTTL, log)
		}
	}

	// The delivery log is optional; without Postgres the email route still
	// sends, it just stops recording attempts.
	var deliveryLogs repository.DeliveryLogRepository
	if os.Getenv("POSTGRES_USER") != "" {
		gormDB, err := database.ConnectPostgres(log, &models.DeliveryLog{})
		if err != nil {
			log.Fatal("failed to connect to PostgreSQL", zap.Error(err))
		}
		defer database.ClosePostgres(gormDB)
		deliveryLogs = repository.NewDeliveryLogRepository(gormDB)
	} else {
		log.Warn("POSTGRES_USER not set, delivery log disabled")
	}

	producer := kafka.NewOrderEventProducer(cfg.KafkaBrokers, cfg.KafkaTopic, log)
	defer producer.Close()

	channel := contact.NewEmailJSChannel(cfg.EmailJSBaseURL, cfg.EmailJSServiceID, cfg.EmailJSTemplateID, cfg.EmailJSPublicKey)
	form := contact.NewForm(channel, log)

	userRepo := repository.NewUserRepository(db)
	productRepo := repository.NewProductRepository(db)
	orderRepo := repository.NewOrderRepository(db)

	tokens := services.NewTokenService(cfg.JWTSecret)
	passwords := services.NewPasswordService()
	stripeSvc := services.NewStripeService(cfg.StripeSecretKey)

	if cfg.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(logger.RequestLogger())
	router.Use(middleware.SecurityHeaders())
	router.Use(middleware.SanitizeJSON())
	router.Use(cors.New(cors.Config{
		AllowOrigins:     cfg.CORSOrigins,
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "PATCH", "OPTIONS"},
		AllowHeaders:     []string{"Content-Type", "Authorization", "X-Requested-With", "X-Session-ID"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	routes.Register(router, cfg, routes.Deps{
		Auth:    controllers.NewAuthController(userRepo, tokens, passwords),
		Users:   controllers.NewUserController(userRepo),
		Product: controllers.NewProductController(productRepo),
		Cart:    controllers.NewCartController(stores),
		Orders:  controllers.NewOrderController(orderRepo, stores, producer),
		Payment: controllers.NewPaymentController(orderRepo, stripeSvc),
		Admin:   controllers.NewAdminController(userRepo, productRepo, orderRepo, deliveryLogs),
		Email:   controllers.NewEmailController(channel, deliveryLogs),
		Contact: controllers.NewContactController(form),
		Tokens:  tokens,
	})

	srv := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: router,
	}

	go func() {
		log.Info("Storefront API is running", zap.String("port", cfg.Port))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal("Server failed", zap.Error(err))
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)
	<-stop

	log.Info("Shutting down gracefully...")
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Fatal("Shutdown error", zap.Error(err))
	}
	log.Info("Server shutdown complete.")
}
