// Package seed loads demo data into an empty catalog. It is strictly
// best-effort: failures are logged and the server starts anyway, and
// nothing else in the system depends on it having run.
package seed

import (
	"context"
	"time"

	"go.uber.org/zap"

	"tokohp/internal/shop"
)

var sampleProducts = []shop.ProductInput{
	{
		Name: "iPhone 15 Pro Max", Brand: "Apple", Model: "A3108",
		Price: 19999000, Stock: 15, Category: "Smartphone",
		Specifications: shop.Specifications{
			Storage: "256GB", RAM: "8GB", Camera: "48MP Triple Camera",
			Battery: "4441mAh", Display: "6.7-inch Super Retina XDR",
		},
		Description: "Latest iPhone with titanium design and advanced camera system",
	},
	{
		Name: "Samsung Galaxy S24 Ultra", Brand: "Samsung", Model: "SM-S928B",
		Price: 18499000, Stock: 12, Category: "Smartphone",
		Specifications: shop.Specifications{
			Storage: "512GB", RAM: "12GB", Camera: "200MP Quad Camera",
			Battery: "5000mAh", Display: "6.8-inch Dynamic AMOLED 2X",
		},
		Description: "Premium Android flagship with S Pen and AI features",
	},
	{
		Name: "Xiaomi 14 Ultra", Brand: "Xiaomi", Model: "2405CPX3DG",
		Price: 14999000, Stock: 8, Category: "Smartphone",
		Specifications: shop.Specifications{
			Storage: "512GB", RAM: "16GB", Camera: "50MP Leica Quad Camera",
			Battery: "5300mAh", Display: "6.73-inch LTPO AMOLED",
		},
		Description: "Photography-focused flagship with Leica partnership",
	},
	{
		Name: "Google Pixel 8 Pro", Brand: "Google", Model: "GC3VE",
		Price: 13999000, Stock: 10, Category: "Smartphone",
		Specifications: shop.Specifications{
			Storage: "256GB", RAM: "12GB", Camera: "50MP Triple Camera",
			Battery: "5050mAh", Display: "6.7-inch LTPO OLED",
		},
		Description: "Pure Android experience with advanced AI photography",
	},
	{
		Name: "Nothing Phone (2a)", Brand: "Nothing", Model: "A142P",
		Price: 4999000, Stock: 25, Category: "Smartphone",
		Specifications: shop.Specifications{
			Storage: "128GB", RAM: "8GB", Camera: "50MP Dual Camera",
			Battery: "5000mAh", Display: "6.7-inch AMOLED",
		},
		Description: "Unique transparent design with Glyph interface",
	},
	{
		Name: "Asus ROG Phone 8 Pro", Brand: "Asus", Model: "AI2401",
		Price: 15999000, Stock: 9, Category: "Smartphone",
		Specifications: shop.Specifications{
			Storage: "512GB", RAM: "16GB", Camera: "50MP Triple Camera",
			Battery: "6000mAh", Display: "6.78-inch AMOLED 165Hz",
		},
		Description: "Ultimate gaming smartphone with advanced cooling",
	},
}

// sampleSales index into sampleProducts; recorded through the real sale
// transaction so stock ends up decremented the same way live sales do.
var sampleSales = []struct {
	product  int
	quantity int
	name     string
	phone    string
	method   string
	daysAgo  int
}{
	{0, 2, "Budi Santoso", "081234567890", "transfer", 7},
	{1, 1, "Siti Nurhaliza", "081987654321", "credit", 5},
	{4, 3, "Ahmad Rizki", "081122334455", "cash", 3},
	{2, 1, "Eko Prasetyo", "081888999000", "transfer", 1},
	{3, 2, "Rina Wati", "081333444555", "cash", 0},
}

// Run populates an empty catalog with demo phones and a few historical
// sales. A non-empty catalog is left alone.
func Run(ctx context.Context, catalog *shop.CatalogRepo, ledger *shop.LedgerRepo, log *zap.Logger) {
	n, err := catalog.Count(ctx)
	if err != nil {
		log.Warn("seed: counting products", zap.Error(err))
		return
	}
	if n > 0 {
		return
	}

	created := make([]shop.Product, 0, len(sampleProducts))
	for _, in := range sampleProducts {
		p, err := catalog.Create(ctx, in)
		if err != nil {
			log.Warn("seed: create product", zap.String("name", in.Name), zap.Error(err))
			continue
		}
		created = append(created, p)
	}
	log.Info("seed: sample products inserted", zap.Int("count", len(created)))

	for _, s := range sampleSales {
		if s.product >= len(created) {
			continue
		}
		date := time.Now().UTC().AddDate(0, 0, -s.daysAgo)
		_, _, err := ledger.RecordSale(ctx, shop.SaleInput{
			ProductID:     created[s.product].ID,
			Quantity:      s.quantity,
			CustomerName:  s.name,
			CustomerPhone: s.phone,
			PaymentMethod: s.method,
			SaleDate:      &date,
		})
		if err != nil {
			log.Warn("seed: record sale", zap.Error(err))
		}
	}
	log.Info("seed: sample sales recorded", zap.Int("count", len(sampleSales)))
}
