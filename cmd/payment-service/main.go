package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"github.com/MdAshrafuddinnoyon/artistiya-showcase-sub004/internal/config"
	httpdelivery "github.com/MdAshrafuddinnoyon/artistiya-showcase-sub004/internal/delivery/http"
	"github.com/MdAshrafuddinnoyon/artistiya-showcase-sub004/internal/delivery/http/handlers"
	"github.com/MdAshrafuddinnoyon/artistiya-showcase-sub004/internal/domain"
	"github.com/MdAshrafuddinnoyon/artistiya-showcase-sub004/internal/gateway"
	"github.com/MdAshrafuddinnoyon/artistiya-showcase-sub004/internal/infrastructure/kafka"
	"github.com/MdAshrafuddinnoyon/artistiya-showcase-sub004/internal/infrastructure/metrics"
	"github.com/MdAshrafuddinnoyon/artistiya-showcase-sub004/internal/infrastructure/migrate"
	"github.com/MdAshrafuddinnoyon/artistiya-showcase-sub004/internal/infrastructure/postgres"
	"github.com/MdAshrafuddinnoyon/artistiya-showcase-sub004/internal/infrastructure/postgres/repository"
	"github.com/MdAshrafuddinnoyon/artistiya-showcase-sub004/internal/usecase"
	"github.com/MdAshrafuddinnoyon/artistiya-showcase-sub004/internal/vault"
	"github.com/MdAshrafuddinnoyon/artistiya-showcase-sub004/pkg/logger"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("failed to load .env")
	}
	// Reading config
	cfg := config.MustLoad()

	zapLogger := logger.NewLogger("payment-service", cfg.LogConfig.LogLevel, cfg.LogConfig.LogFormat)
	defer zapLogger.Sync()

	// Init database
	db := postgres.MustInitDB(cfg)
	if cfg.PaymentDB.MigrationsPath != "" {
		if err := migrate.RunMigrations(db, cfg.PaymentDB.MigrationsPath, zapLogger); err != nil {
			log.Fatalf("failed to run migrations: %v", err)
		}
	}

	// Init repositories
	orderRepo := repository.NewDefaultOrderRepository(db)
	providerRepo := repository.NewDefaultProviderRepository(db)
	settingsRepo := repository.NewDefaultSettingsRepository(db)
	callbackLogRepo := repository.NewDefaultCallbackLogRepository(db)

	// Credential vault
	credentialVault := vault.NewVault(cfg.Vault.MasterKey, vault.Mode(cfg.Vault.Mode), zapLogger)

	// Gateway adapters share one HTTP client
	gatewayClient := gateway.NewClient(time.Duration(cfg.App.GatewayTimeoutSec) * time.Second)
	registry := gateway.NewRegistry(
		gateway.NewBkashAdapter(gatewayClient),
		gateway.NewNagadAdapter(gatewayClient),
		gateway.NewSslcommerzAdapter(gatewayClient),
		gateway.NewAamarpayAdapter(gatewayClient),
		gateway.NewSurjopayAdapter(gatewayClient),
	)

	// Payment events
	var publisher *kafka.PaymentEventPublisher
	if cfg.Kafka.Enabled {
		brokers := []string{fmt.Sprintf("%s:%s", cfg.Kafka.Host, cfg.Kafka.Port)}
		publisher = kafka.NewPaymentEventPublisher(brokers, cfg.Kafka.Topic)
		defer publisher.Close()
	}

	paymentMetrics := metrics.NewPaymentMetrics()

	// Init usecases
	paymentUsecase := usecase.NewDefaultPaymentUsecase(
		orderRepo,
		providerRepo,
		callbackLogRepo,
		registry,
		credentialVault,
		publisherOrNil(publisher),
		paymentMetrics,
		zapLogger,
		cfg.App.AppURL,
		cfg.App.PublicURL,
	)
	credentialsUsecase := usecase.NewDefaultCredentialsUsecase(credentialVault)
	documentUsecase := usecase.NewDefaultDocumentUsecase(orderRepo, settingsRepo, zapLogger)

	// HTTP delivery
	router := httpdelivery.NewRouter(httpdelivery.RouterDeps{
		Payments:    handlers.NewPaymentHandler(paymentUsecase, zapLogger),
		Credentials: handlers.NewCredentialsHandler(credentialsUsecase, zapLogger),
		Documents:   handlers.NewDocumentHandler(documentUsecase, zapLogger),
		AdminToken:  cfg.App.AdminAPIToken,
		Logger:      zapLogger,
	})

	srv := &http.Server{
		Addr:         fmt.Sprintf("%s:%s", cfg.HTTPServer.Host, cfg.HTTPServer.Port),
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		zapLogger.Info("starting payment service",
			zap.String("addr", srv.Addr), zap.String("env", cfg.Env))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("failed to start server: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	zapLogger.Info("shutting down payment service")
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Fatalf("server forced to shutdown: %v", err)
	}
}

// publisherOrNil avoids handing the usecase a typed-nil interface when
// kafka is disabled.
func publisherOrNil(publisher *kafka.PaymentEventPublisher) domain.PaymentPublisher {
	if publisher == nil {
		return nil
	}
	return publisher
}
