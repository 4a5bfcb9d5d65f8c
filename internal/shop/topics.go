package shop

const (
	TopicSaleRecorded = "sale.recorded"
	TopicStockLow     = "stock.low"
)

// Partition key = product_id, so events for one product keep their order.
func PartitionKey(productID string) []byte { return []byte(productID) }
