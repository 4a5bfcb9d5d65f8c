package shop

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type StatsRepo struct{ DB *pgxpool.Pool }

// Snapshot reads everything the aggregator needs inside one
// repeatable-read transaction, so the counts and the ledger scan see
// the same committed state.
func (r *StatsRepo) Snapshot(ctx context.Context) (StatsSnapshot, error) {
	var snap StatsSnapshot

	tx, err := r.DB.BeginTx(ctx, pgx.TxOptions{IsoLevel: pgx.RepeatableRead, AccessMode: pgx.ReadOnly})
	if err != nil {
		return snap, err
	}
	defer func() { _ = tx.Rollback(ctx) }()

	if err := tx.QueryRow(ctx, `SELECT COUNT(*) FROM products`).Scan(&snap.ProductCount); err != nil {
		return snap, err
	}
	if err := tx.QueryRow(ctx, `SELECT COUNT(*) FROM products WHERE stock <= $1`,
		LowStockThreshold).Scan(&snap.LowStockCount); err != nil {
		return snap, err
	}

	rows, err := tx.Query(ctx, `
		SELECT product_id, product_name, quantity, total_price, sale_date
		FROM sales ORDER BY sale_date, id`)
	if err != nil {
		return snap, err
	}
	defer rows.Close()

	for rows.Next() {
		var f SaleFact
		if err := rows.Scan(&f.ProductID, &f.ProductName, &f.Quantity, &f.TotalPrice, &f.SaleDate); err != nil {
			return snap, err
		}
		snap.Sales = append(snap.Sales, f)
	}
	if err := rows.Err(); err != nil {
		return snap, err
	}
	return snap, tx.Commit(ctx)
}
