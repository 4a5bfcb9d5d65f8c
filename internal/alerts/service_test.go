package alerts

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	kafkago "github.com/segmentio/kafka-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	kafkax "tokohp/internal/kafka"
	"tokohp/internal/shop"
)

type fakeDedup struct {
	seen     map[string]bool
	checkErr error
	ops      *[]string
}

func (d *fakeDedup) SeenBefore(_ context.Context, id string) (bool, error) {
	if d.checkErr != nil {
		return false, d.checkErr
	}
	return d.seen[id], nil
}
func (d *fakeDedup) MarkSeen(_ context.Context, id string) error {
	d.seen[id] = true
	if d.ops != nil {
		*d.ops = append(*d.ops, "mark")
	}
	return nil
}

type fakePublisher struct {
	values [][]byte
	ops    *[]string
}

func (p *fakePublisher) Publish(_, value []byte, _ ...kafkago.Header) {
	p.values = append(p.values, value)
	if p.ops != nil {
		*p.ops = append(*p.ops, "publish")
	}
}

func saleRecordedMessage(t *testing.T, eventID string, stockAfter int) kafkago.Message {
	t.Helper()
	env := shop.Envelope{
		EventID:      eventID,
		EventType:    shop.EventSaleRecorded,
		EventVersion: 1,
		OccurredAt:   time.Now().UTC(),
		Producer:     "test",
		Payload: kafkax.MustMarshal(shop.SaleRecordedPayload{
			SaleID: "s1", ProductID: "p1", ProductName: "Phone",
			Quantity: 1, TotalPrice: 100, StockAfter: stockAfter,
		}),
	}
	return kafkago.Message{Value: kafkax.MustMarshal(env)}
}

func newService(pub *fakePublisher, dedup *fakeDedup) *Service {
	return &Service{
		Dedup:       dedup,
		Producer:    pub,
		ServiceName: "test-notifier",
		Log:         zap.NewNop(),
	}
}

func TestLowStock(t *testing.T) {
	assert.True(t, LowStock(0))
	assert.True(t, LowStock(shop.LowStockThreshold))
	assert.False(t, LowStock(shop.LowStockThreshold+1))
}

func TestHandleSaleRecorded_PublishesAlert(t *testing.T) {
	pub := &fakePublisher{}
	svc := newService(pub, &fakeDedup{seen: map[string]bool{}})

	err := svc.HandleSaleRecorded(context.Background(), saleRecordedMessage(t, "ev1", 3))
	require.NoError(t, err)
	require.Len(t, pub.values, 1)

	var env shop.Envelope
	require.NoError(t, json.Unmarshal(pub.values[0], &env))
	assert.Equal(t, shop.EventStockLow, env.EventType)

	var p shop.StockLowPayload
	require.NoError(t, json.Unmarshal(env.Payload, &p))
	assert.Equal(t, "p1", p.ProductID)
	assert.Equal(t, 3, p.Stock)
	assert.Equal(t, shop.LowStockThreshold, p.Threshold)
}

func TestHandleSaleRecorded_StockHealthy(t *testing.T) {
	pub := &fakePublisher{}
	svc := newService(pub, &fakeDedup{seen: map[string]bool{}})

	err := svc.HandleSaleRecorded(context.Background(), saleRecordedMessage(t, "ev1", 20))
	require.NoError(t, err)
	assert.Empty(t, pub.values)
}

func TestHandleSaleRecorded_Dedup(t *testing.T) {
	pub := &fakePublisher{}
	svc := newService(pub, &fakeDedup{seen: map[string]bool{}})

	m := saleRecordedMessage(t, "ev1", 2)
	require.NoError(t, svc.HandleSaleRecorded(context.Background(), m))
	require.NoError(t, svc.HandleSaleRecorded(context.Background(), m))

	assert.Len(t, pub.values, 1, "duplicate event must not alert twice")
}

func TestHandleSaleRecorded_IgnoresOtherEvents(t *testing.T) {
	pub := &fakePublisher{}
	svc := newService(pub, &fakeDedup{seen: map[string]bool{}})

	env := shop.Envelope{EventID: "ev2", EventType: shop.EventStockLow, Payload: []byte(`{}`)}
	err := svc.HandleSaleRecorded(context.Background(), kafkago.Message{Value: kafkax.MustMarshal(env)})
	require.NoError(t, err)
	assert.Empty(t, pub.values)
}

func TestHandleSaleRecorded_MarksSeenAfterPublish(t *testing.T) {
	var ops []string
	pub := &fakePublisher{ops: &ops}
	dedup := &fakeDedup{seen: map[string]bool{}, ops: &ops}
	svc := newService(pub, dedup)

	require.NoError(t, svc.HandleSaleRecorded(context.Background(), saleRecordedMessage(t, "ev1", 2)))

	// a crash between publish and mark replays the event; the reverse
	// order would drop the alert for good
	assert.Equal(t, []string{"publish", "mark"}, ops)
	assert.True(t, dedup.seen["ev1"])
}

func TestHandleSaleRecorded_DedupCheckFailureStillAlerts(t *testing.T) {
	pub := &fakePublisher{}
	svc := newService(pub, &fakeDedup{seen: map[string]bool{}, checkErr: assert.AnError})

	err := svc.HandleSaleRecorded(context.Background(), saleRecordedMessage(t, "ev1", 2))
	require.NoError(t, err)
	assert.Len(t, pub.values, 1, "a broken dedup store must not drop alerts")
}

func TestHandleSaleRecorded_BadEnvelope(t *testing.T) {
	svc := newService(&fakePublisher{}, &fakeDedup{seen: map[string]bool{}})

	err := svc.HandleSaleRecorded(context.Background(), kafkago.Message{Value: []byte("{broken")})
	assert.Error(t, err)
}
