package alerts

import (
	"context"
	"encoding/json"
	"time"

	"github.com/google/uuid"
	kafkago "github.com/segmentio/kafka-go"
	"go.uber.org/zap"

	kafkax "tokohp/internal/kafka"
	"tokohp/internal/shop"
)

// Deduper remembers processed event ids across restarts.
type Deduper interface {
	SeenBefore(ctx context.Context, eventID string) (bool, error)
	MarkSeen(ctx context.Context, eventID string) error
}

// Publisher matches the kafka producer's Publish signature.
type Publisher interface {
	Publish(key, value []byte, headers ...kafkago.Header)
}

// Service watches sale.recorded events and raises low-stock alerts.
// It is the consumer-side half of the sale pipeline: the API records
// the sale, this service reacts to the stock that remains.
type Service struct {
	Dedup       Deduper
	Producer    Publisher // publishes stock.low
	ServiceName string
	Log         *zap.Logger
}

// HandleSaleRecorded is wired as the consumer handler.
func (s *Service) HandleSaleRecorded(ctx context.Context, m kafkago.Message) error {
	var env shop.Envelope
	if err := json.Unmarshal(m.Value, &env); err != nil {
		return err
	}
	if env.EventType != shop.EventSaleRecorded {
		return nil
	}

	seen, err := s.Dedup.SeenBefore(ctx, env.EventID)
	if err != nil {
		// treat a failed check as unseen; the pipeline is at-least-once
		s.Log.Warn("dedup check failed", zap.String("event_id", env.EventID), zap.Error(err))
	} else if seen {
		return nil
	}

	p, err := kafkax.UnwrapPayload[shop.SaleRecordedPayload](env.Payload)
	if err != nil {
		return err
	}

	if LowStock(p.StockAfter) {
		s.Log.Warn("low stock after sale",
			zap.String("product_id", p.ProductID),
			zap.String("product_name", p.ProductName),
			zap.Int("stock", p.StockAfter),
		)
		s.publishStockLow(p, env.TraceID)
	}

	// mark only after the alert is out, so a crash in between replays
	// the event instead of dropping the alert
	if err := s.Dedup.MarkSeen(ctx, env.EventID); err != nil {
		s.Log.Warn("dedup mark failed", zap.String("event_id", env.EventID), zap.Error(err))
	}
	return nil
}

// LowStock applies the fixed dashboard threshold to remaining stock.
func LowStock(stockAfter int) bool {
	return stockAfter <= shop.LowStockThreshold
}

func (s *Service) publishStockLow(p shop.SaleRecordedPayload, trace string) {
	ev := shop.Envelope{
		EventID:       uuid.NewString(),
		EventType:     shop.EventStockLow,
		EventVersion:  1,
		OccurredAt:    time.Now().UTC(),
		Producer:      s.ServiceName,
		TraceID:       trace,
		CorrelationID: p.ProductID,
		Payload: kafkax.MustMarshal(shop.StockLowPayload{
			ProductID:   p.ProductID,
			ProductName: p.ProductName,
			Stock:       p.StockAfter,
			Threshold:   shop.LowStockThreshold,
		}),
	}
	s.Producer.Publish(shop.PartitionKey(p.ProductID), kafkax.MustMarshal(ev),
		kafkago.Header{Key: "x-event-type", Value: []byte(shop.EventStockLow)},
		kafkago.Header{Key: "x-event-version", Value: []byte("1")},
	)
}
