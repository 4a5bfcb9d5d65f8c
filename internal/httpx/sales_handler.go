package httpx

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	kafkago "github.com/segmentio/kafka-go"
	"go.uber.org/zap"

	kafkax "tokohp/internal/kafka"
	"tokohp/internal/shop"
)

// Ledger is the slice of the ledger repo the handlers need.
type Ledger interface {
	List(ctx context.Context) ([]shop.Sale, error)
	RecordSale(ctx context.Context, in shop.SaleInput) (shop.Sale, int, error)
}

// Publisher matches the kafka producer's Publish signature.
type Publisher interface {
	Publish(key, value []byte, headers ...kafkago.Header)
}

type SalesHandler struct {
	Ledger   Ledger
	Producer Publisher
	Cache    Cache
	Service  string
	Log      *zap.Logger
}

func (h *SalesHandler) Register(r *chi.Mux) {
	r.Get("/api/sales", h.list)
	r.Post("/api/sales", h.create)
}

func (h *SalesHandler) list(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 3*time.Second)
	defer cancel()

	sales, err := h.Ledger.List(ctx)
	if err != nil {
		h.Log.Error("list sales", zap.Error(err))
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, sales)
}

func (h *SalesHandler) create(w http.ResponseWriter, r *http.Request) {
	var in shop.SaleInput
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"message": "invalid json"})
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	sale, stockAfter, err := h.Ledger.RecordSale(ctx, in)
	if err != nil {
		writeError(w, err)
		return
	}
	h.Cache.Invalidate(ctx)

	ev := shop.Envelope{
		EventID:       uuid.NewString(),
		EventType:     shop.EventSaleRecorded,
		EventVersion:  1,
		OccurredAt:    time.Now().UTC(),
		Producer:      h.Service,
		TraceID:       r.Header.Get("X-Request-Id"),
		CorrelationID: sale.ID,
		Payload: kafkax.MustMarshal(shop.SaleRecordedPayload{
			SaleID:      sale.ID,
			ProductID:   sale.ProductID,
			ProductName: sale.ProductName,
			Quantity:    sale.Quantity,
			TotalPrice:  sale.TotalPrice,
			StockAfter:  stockAfter,
		}),
	}
	h.Producer.Publish(shop.PartitionKey(sale.ProductID), kafkax.MustMarshal(ev),
		kafkago.Header{Key: "x-event-type", Value: []byte(shop.EventSaleRecorded)},
		kafkago.Header{Key: "x-event-version", Value: []byte("1")},
	)

	writeJSON(w, http.StatusCreated, sale)
}
