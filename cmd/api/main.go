package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"tokohp/internal/config"
	"tokohp/internal/httpx"
	kafkax "tokohp/internal/kafka"
	"tokohp/internal/postgres"
	"tokohp/internal/redisx"
	"tokohp/internal/seed"
	"tokohp/internal/shop"
)

func main() {
	_ = godotenv.Load()

	cfg := config.Load()
	log := zap.Must(zap.NewProduction())
	defer func() { _ = log.Sync() }()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// DB
	db, err := postgres.Connect(ctx, cfg.PostgresDSN)
	if err != nil {
		log.Fatal("db connect", zap.Error(err))
	}
	defer db.Close()

	// Redis
	rdb := redisx.New(cfg.RedisAddr)
	defer rdb.Close()

	// Kafka producer
	prod := kafkax.NewProducer(cfg.KafkaBrokers, shop.TopicSaleRecorded, 1024, log)
	prod.Start(ctx)

	catalog := &shop.CatalogRepo{DB: db}
	ledger := &shop.LedgerRepo{DB: db}
	stats := &shop.StatsRepo{DB: db}
	cache := &redisx.StatsCache{R: rdb}

	if cfg.SeedSampleData {
		seed.Run(ctx, catalog, ledger, log)
	}

	router := httpx.NewRouter()
	(&httpx.ProductsHandler{Catalog: catalog, Cache: cache, Log: log}).Register(router)
	(&httpx.SalesHandler{Ledger: ledger, Producer: prod, Cache: cache, Service: cfg.ServiceName, Log: log}).Register(router)
	(&httpx.DashboardHandler{Stats: stats, Cache: cache, Log: log}).Register(router)

	srv := &http.Server{Addr: cfg.HTTPAddr, Handler: router}

	go func() {
		log.Info("HTTP listening", zap.String("addr", cfg.HTTPAddr))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal("listen", zap.Error(err))
		}
	}()

	sig := make(chan os.Signal, 1)
	signal.Notify(sig, syscall.SIGINT, syscall.SIGTERM)
	<-sig
	log.Info("shutting down...")

	ctx2, cancel2 := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel2()
	_ = srv.Shutdown(ctx2)
	prod.Close()      // close inbox -> flush & close writer
	cancel()          // stop producer loop
	prod.WaitClosed() // drain
}
