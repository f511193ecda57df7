package main

import (
	"fmt"
	"log"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"
	"github.com/payquill/dpo-payment-service/internal/config"
	deliveryhttp "github.com/payquill/dpo-payment-service/internal/delivery/http"
	"github.com/payquill/dpo-payment-service/internal/delivery/http/handlers"
	"github.com/payquill/dpo-payment-service/internal/infrastructure/dpo"
	publisher "github.com/payquill/dpo-payment-service/internal/infrastructure/kafka"
	"github.com/payquill/dpo-payment-service/internal/infrastructure/logger"
	"github.com/payquill/dpo-payment-service/internal/infrastructure/metrics"
	"github.com/payquill/dpo-payment-service/internal/infrastructure/migrate"
	"github.com/payquill/dpo-payment-service/internal/infrastructure/postgres"
	"github.com/payquill/dpo-payment-service/internal/infrastructure/postgres/repository"
	usecase "github.com/payquill/dpo-payment-service/internal/usecase/payment"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("failed to load .env")
	}
	// Reading config
	cfg := config.MustLoad()
	// Init database
	db := postgres.MustInitDB(cfg)

	if cfg.PaymentDB.MigrationPath != "" {
		if err := migrate.RunMigrations(db, cfg.PaymentDB.MigrationPath); err != nil {
			log.Fatalf("failed to run migrations: %v", err)
		}
	}

	if !cfg.DPOGateway.Active() {
		// Missing credentials leave the module inert; the process still
		// serves health and metrics so the merchant can see it is up.
		slog.Warn("DPO Pay module disabled: company token or service type not configured")
	}

	brokers := []string{fmt.Sprintf("%s:%s", cfg.Kafka.Host, cfg.Kafka.Port)}
	pub := publisher.NewDefaultKafkaPublisher(brokers)

	// Init repos
	orderRepo := repository.NewDefaultOrderRepository(db)
	currencyRepo := repository.NewDefaultCurrencyRepository(db)

	// Init infrastructure
	gatewayClient := dpo.NewClient(cfg.DPOGateway.APIURL, cfg.DPOGateway.RequestTimeout)
	paymentMetrics := metrics.NewPaymentMetrics()
	eventLog := logger.NewPGPaymentEventLogger(db)
	debugLog := logger.NewDebugLogger(cfg.LogConfig.DebugMode, cfg.LogConfig.DebugFile)
	defer debugLog.Close()

	// Init payment usecase
	uc, err := usecase.NewDefaultPaymentUsecase(
		orderRepo,
		currencyRepo,
		gatewayClient,
		pub,
		eventLog,
		debugLog,
		paymentMetrics,
		cfg.DPOGateway,
		cfg.Statuses,
		cfg.Kafka.Topic,
	)
	if err != nil {
		log.Fatalf("failed to init payment usecase: %v", err)
	}

	paymentHandler := handlers.NewPaymentHandler(uc, cfg.Storefront)
	server := deliveryhttp.NewServer(paymentHandler)

	addr := fmt.Sprintf("%s:%s", cfg.HTTPServer.Host, cfg.HTTPServer.Port)
	httpServer := &http.Server{
		Addr:    addr,
		Handler: server.Router,
	}

	go func() {
		log.Printf("payment service started on %s\n", addr)
		if err := httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("failed to serve: %v\n", err)
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)
	<-stop

	log.Println("shutting down")
	httpServer.Close()
}
