package shop

import (
	"encoding/json"
	"time"
)

const (
	EventSaleRecorded = "SaleRecorded"
	EventStockLow     = "StockLow"
)

type Envelope struct {
	EventID       string          `json:"event_id"`
	EventType     string          `json:"event_type"`
	EventVersion  int             `json:"event_version"`
	OccurredAt    time.Time       `json:"occurred_at"`
	Producer      string          `json:"producer"`
	TraceID       string          `json:"trace_id,omitempty"`
	CorrelationID string          `json:"correlation_id,omitempty"` // sale_id for SaleRecorded
	Payload       json.RawMessage `json:"payload"`
}

type SaleRecordedPayload struct {
	SaleID      string `json:"sale_id"`
	ProductID   string `json:"product_id"`
	ProductName string `json:"product_name"`
	Quantity    int    `json:"quantity"`
	TotalPrice  int64  `json:"total_price"`
	StockAfter  int    `json:"stock_after"`
}

type StockLowPayload struct {
	ProductID   string `json:"product_id"`
	ProductName string `json:"product_name"`
	Stock       int    `json:"stock"`
	Threshold   int    `json:"threshold"`
}
