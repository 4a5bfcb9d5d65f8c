package shop

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

type LedgerRepo struct{ DB *pgxpool.Pool }

// RecordSale runs the whole sale transaction: lock the product row,
// check stock, append the ledger entry with snapshotted name/price, and
// decrement stock. All of it commits or none of it does. The row lock
// (FOR UPDATE) serializes concurrent sales per product, so the stock
// check and the decrement act as one step; sales against different
// products proceed in parallel.
//
// Returns the created sale and the stock remaining after the decrement.
func (r *LedgerRepo) RecordSale(ctx context.Context, in SaleInput) (Sale, int, error) {
	if err := in.Validate(); err != nil {
		return Sale{}, 0, err
	}
	method, _ := ParsePaymentMethod(in.PaymentMethod)

	tx, err := r.DB.BeginTx(ctx, pgx.TxOptions{})
	if err != nil {
		return Sale{}, 0, err
	}
	defer func() { _ = tx.Rollback(ctx) }()

	var name string
	var price int64
	var stock int
	err = tx.QueryRow(ctx, `SELECT name, price, stock FROM products WHERE id=$1 FOR UPDATE`,
		in.ProductID).Scan(&name, &price, &stock)
	if errors.Is(err, pgx.ErrNoRows) {
		return Sale{}, 0, ErrProductNotFound
	}
	if err != nil {
		return Sale{}, 0, err
	}

	if stock < in.Quantity {
		return Sale{}, 0, &InsufficientStockError{
			ProductID: in.ProductID, Requested: in.Quantity, Available: stock,
		}
	}

	sale := Sale{
		ID:            uuid.NewString(),
		ProductID:     in.ProductID,
		ProductName:   name,
		Quantity:      in.Quantity,
		UnitPrice:     price,
		TotalPrice:    price * int64(in.Quantity),
		CustomerName:  in.CustomerName,
		CustomerPhone: in.CustomerPhone,
		PaymentMethod: method,
	}
	if in.SaleDate != nil {
		sale.SaleDate = in.SaleDate.UTC()
	} else {
		sale.SaleDate = time.Now().UTC()
	}

	if err := insertSale(ctx, tx, sale); err != nil {
		return Sale{}, 0, err
	}

	ct, err := tx.Exec(ctx, `UPDATE products SET stock = stock - $2, updated_at = now() WHERE id=$1`,
		in.ProductID, in.Quantity)
	if err != nil {
		return Sale{}, 0, err
	}
	if ct.RowsAffected() != 1 {
		return Sale{}, 0, fmt.Errorf("stock decrement touched %d rows for product %s", ct.RowsAffected(), in.ProductID)
	}

	if err := tx.Commit(ctx); err != nil {
		return Sale{}, 0, err
	}
	return sale, stock - in.Quantity, nil
}

// Insert is the bare append primitive. No business validation; the sale
// transaction and the fixture loader are its only callers.
func (r *LedgerRepo) Insert(ctx context.Context, sale Sale) error {
	return insertSale(ctx, r.DB, sale)
}

// execer covers both the pool and an open transaction.
type execer interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
}

func insertSale(ctx context.Context, db execer, sale Sale) error {
	_, err := db.Exec(ctx, `
		INSERT INTO sales(id, product_id, product_name, quantity, unit_price, total_price,
			customer_name, customer_phone, sale_date, payment_method)
		VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10)`,
		sale.ID, sale.ProductID, sale.ProductName, sale.Quantity, sale.UnitPrice, sale.TotalPrice,
		sale.CustomerName, sale.CustomerPhone, sale.SaleDate, sale.PaymentMethod)
	if err != nil {
		return fmt.Errorf("insert sale: %w", err)
	}
	return nil
}

// List returns the ledger newest first, with the referenced product
// embedded when it still exists (left join; deleted products leave the
// reference dangling by design).
func (r *LedgerRepo) List(ctx context.Context) ([]Sale, error) {
	rows, err := r.DB.Query(ctx, `
		SELECT s.id, s.product_id, s.product_name, s.quantity, s.unit_price, s.total_price,
			s.customer_name, s.customer_phone, s.sale_date, s.payment_method,
			p.id, p.name, p.brand, p.model, p.price, p.stock, p.category,
			p.spec_storage, p.spec_ram, p.spec_camera, p.spec_battery, p.spec_display,
			p.image, p.description, p.created_at, p.updated_at
		FROM sales s
		LEFT JOIN products p ON p.id = s.product_id
		ORDER BY s.sale_date DESC, s.id`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []Sale{}
	for rows.Next() {
		var s Sale
		var p Product
		var pid *string
		var pName, pBrand, pModel, pCategory *string
		var pPrice *int64
		var pStock *int
		var pStorage, pRAM, pCamera, pBattery, pDisplay *string
		var pImage, pDescription *string
		var pCreated, pUpdated *time.Time
		err := rows.Scan(&s.ID, &s.ProductID, &s.ProductName, &s.Quantity, &s.UnitPrice, &s.TotalPrice,
			&s.CustomerName, &s.CustomerPhone, &s.SaleDate, &s.PaymentMethod,
			&pid, &pName, &pBrand, &pModel, &pPrice, &pStock, &pCategory,
			&pStorage, &pRAM, &pCamera, &pBattery, &pDisplay,
			&pImage, &pDescription, &pCreated, &pUpdated)
		if err != nil {
			return nil, err
		}
		if pid != nil {
			p = Product{
				ID: *pid, Name: *pName, Brand: *pBrand, Model: *pModel,
				Price: *pPrice, Stock: *pStock, Category: *pCategory,
				Specifications: Specifications{
					Storage: *pStorage, RAM: *pRAM, Camera: *pCamera,
					Battery: *pBattery, Display: *pDisplay,
				},
				Image: *pImage, Description: *pDescription,
				CreatedAt: *pCreated, UpdatedAt: *pUpdated,
			}
			s.Product = &p
		}
		out = append(out, s)
	}
	return out, rows.Err()
}

func (r *LedgerRepo) Count(ctx context.Context) (int, error) {
	var n int
	err := r.DB.QueryRow(ctx, `SELECT COUNT(*) FROM sales`).Scan(&n)
	return n, err
}
