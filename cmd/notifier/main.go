package main

import (
	"context"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"tokohp/internal/alerts"
	"tokohp/internal/config"
	kafkax "tokohp/internal/kafka"
	"tokohp/internal/redisx"
	"tokohp/internal/shop"
)

func mustAtoi(s, def string) int {
	if s == "" {
		s = def
	}
	i, err := strconv.Atoi(s)
	if err != nil {
		return 1
	}
	return i
}

func main() {
	_ = godotenv.Load()
	cfg := config.Load()
	log := zap.Must(zap.NewProduction())
	defer func() { _ = log.Sync() }()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Redis
	rdb := redisx.New(cfg.RedisAddr)
	defer rdb.Close()

	// Producer for stock.low alerts
	prod := kafkax.NewProducer(cfg.KafkaBrokers, shop.TopicStockLow, 1024, log)
	prod.Start(ctx)

	svc := &alerts.Service{
		Dedup:       &redisx.Dedup{R: rdb, Service: "notifier"},
		Producer:    prod,
		ServiceName: cfg.ServiceName + "-notifier",
		Log:         log,
	}

	group := getenv("NOTIFIER_GROUP", "stock-notifier")
	workers := mustAtoi(os.Getenv("NOTIFIER_WORKERS"), "4")
	cons := kafkax.NewConsumer(cfg.KafkaBrokers, group, shop.TopicSaleRecorded, workers, log)

	go func() {
		log.Info("notifier consumer started",
			zap.String("group", group),
			zap.String("topic", shop.TopicSaleRecorded),
			zap.Int("workers", workers),
		)
		if err := cons.Start(ctx, svc.HandleSaleRecorded); err != nil {
			log.Error("consumer exit", zap.Error(err))
			cancel()
		}
	}()

	sig := make(chan os.Signal, 1)
	signal.Notify(sig, syscall.SIGINT, syscall.SIGTERM)
	<-sig
	log.Info("shutting down consumer...")
	cancel()
	time.Sleep(500 * time.Millisecond)
	prod.Close()
	prod.WaitClosed()
}

func getenv(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}
