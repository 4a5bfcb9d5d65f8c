package shop

import "time"

// LowStockThreshold is the fixed policy cutoff for the dashboard's
// low-stock counter and for notifier alerts. Not configurable.
const LowStockThreshold = 5

// StatsTimezone is the reference zone for monthly sale bucketing.
var StatsTimezone = time.UTC

type Specifications struct {
	Storage string `json:"storage,omitempty"`
	RAM     string `json:"ram,omitempty"`
	Camera  string `json:"camera,omitempty"`
	Battery string `json:"battery,omitempty"`
	Display string `json:"display,omitempty"`
}

type Product struct {
	ID             string         `json:"id"`
	Name           string         `json:"name"`
	Brand          string         `json:"brand"`
	Model          string         `json:"model"`
	Price          int64          `json:"price"` // currency minor units
	Stock          int            `json:"stock"`
	Category       string         `json:"category"`
	Specifications Specifications `json:"specifications"`
	Image          string         `json:"image,omitempty"`
	Description    string         `json:"description,omitempty"`
	CreatedAt      time.Time      `json:"createdAt"`
	UpdatedAt      time.Time      `json:"updatedAt"`
}

// Sale is an immutable ledger entry. ProductName and UnitPrice are
// snapshots taken when the sale was recorded; later product edits or
// deletes do not touch them. Product is resolved on read when the
// referenced product still exists.
type Sale struct {
	ID            string        `json:"id"`
	ProductID     string        `json:"productId"`
	ProductName   string        `json:"productName"`
	Quantity      int           `json:"quantity"`
	UnitPrice     int64         `json:"unitPrice"`
	TotalPrice    int64         `json:"totalPrice"`
	CustomerName  string        `json:"customerName,omitempty"`
	CustomerPhone string        `json:"customerPhone,omitempty"`
	SaleDate      time.Time     `json:"saleDate"`
	PaymentMethod PaymentMethod `json:"paymentMethod"`
	Product       *Product      `json:"product,omitempty"`
}

type MonthlyBucket struct {
	Year    int   `json:"year"`
	Month   int   `json:"month"`
	Count   int   `json:"count"`
	Revenue int64 `json:"revenue"`
}

type TopProduct struct {
	ProductID   string `json:"productId"`
	ProductName string `json:"productName"`
	TotalSold   int    `json:"totalSold"`
	Revenue     int64  `json:"revenue"`
}

type DashboardStats struct {
	TotalProducts    int             `json:"totalProducts"`
	TotalSales       int             `json:"totalSales"`
	LowStockProducts int             `json:"lowStockProducts"`
	TotalRevenue     int64           `json:"totalRevenue"`
	MonthlySales     []MonthlyBucket `json:"monthlySales"`
	TopProducts      []TopProduct    `json:"topProducts"`
}
