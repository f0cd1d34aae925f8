package cmd

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"loja-service/internal/api"
	"loja-service/internal/config"
	"loja-service/internal/database"
	"loja-service/internal/repository"
	"loja-service/internal/service"
	"loja-service/migrations"
)

var listenAddr string

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the HTTP API",
	Long: `Start the HTTP API. Redis (REDIS_ADDR) enables idempotent cart and
order creation, Kafka (KAFKA_BROKERS) enables the cart and order events.
Both are optional.`,
	RunE: runServe,
}

func init() {
	rootCmd.AddCommand(serveCmd)

	serveCmd.Flags().StringVar(&listenAddr, "addr", "", "Listen address, overrides HTTP_ADDR")
}

func runServe(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	if listenAddr != "" {
		cfg.HTTP.Addr = listenAddr
	}

	db, err := database.Open(cfg.DB)
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}
	defer db.Close()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if cfg.DB.AutoMigrate {
		if err := migrations.AutoMigrate(ctx, db, 3); err != nil {
			return fmt.Errorf("failed to migrate tables: %w", err)
		}
	}

	rdb := config.NewRedisClient(cfg.Redis)
	if rdb != nil {
		defer rdb.Close()
	}
	kafkaWriter := config.NewKafkaWriter(cfg.Kafka)
	if kafkaWriter != nil {
		defer kafkaWriter.Close()
	}

	gw := database.NewGateway(db)
	customerRepo := repository.NewCustomerRepository(gw)
	supplierRepo := repository.NewSupplierRepository(gw)
	productRepo := repository.NewProductRepository(gw)
	cartRepo := repository.NewCartItemRepository(gw)
	orderRepo := repository.NewOrderRepository(gw)

	guard := service.NewIdempotencyGuard(rdb)
	events := service.NewEventPublisher(kafkaWriter)

	handlers := api.Handlers{
		Customers: api.NewCustomerHandler(service.NewCustomerService(customerRepo)),
		Suppliers: api.NewSupplierHandler(service.NewSupplierService(supplierRepo)),
		Products:  api.NewProductHandler(service.NewProductService(productRepo)),
		Carts:     api.NewCartHandler(service.NewCartService(cartRepo, customerRepo, productRepo, guard, events)),
		Orders:    api.NewOrderHandler(service.NewOrderService(orderRepo, customerRepo, cartRepo, guard, events)),
		DB:        gw,
	}
	e := api.NewServer(handlers, api.Options{RateLimit: cfg.HTTP.RateLimit, RateBurst: cfg.HTTP.RateBurst})

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		log.Info().Str("addr", cfg.HTTP.Addr).Msg("starting server")
		if err := e.Start(cfg.HTTP.Addr); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("server failed: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		<-gctx.Done()
		log.Info().Msg("shutting down server")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := e.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("failed to shut down server: %w", err)
		}
		return nil
	})
	return g.Wait()
}
