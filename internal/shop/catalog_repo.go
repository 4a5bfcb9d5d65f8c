package shop

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

const productColumns = `id, name, brand, model, price, stock, category,
	spec_storage, spec_ram, spec_camera, spec_battery, spec_display,
	image, description, created_at, updated_at`

type CatalogRepo struct{ DB *pgxpool.Pool }

func scanProduct(row pgx.Row) (Product, error) {
	var p Product
	err := row.Scan(&p.ID, &p.Name, &p.Brand, &p.Model, &p.Price, &p.Stock, &p.Category,
		&p.Specifications.Storage, &p.Specifications.RAM, &p.Specifications.Camera,
		&p.Specifications.Battery, &p.Specifications.Display,
		&p.Image, &p.Description, &p.CreatedAt, &p.UpdatedAt)
	return p, err
}

func (r *CatalogRepo) List(ctx context.Context) ([]Product, error) {
	rows, err := r.DB.Query(ctx, `SELECT `+productColumns+` FROM products ORDER BY created_at DESC, id`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []Product{}
	for rows.Next() {
		p, err := scanProduct(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, p)
	}
	return out, rows.Err()
}

func (r *CatalogRepo) Get(ctx context.Context, id string) (Product, error) {
	p, err := scanProduct(r.DB.QueryRow(ctx, `SELECT `+productColumns+` FROM products WHERE id=$1`, id))
	if errors.Is(err, pgx.ErrNoRows) {
		return Product{}, ErrProductNotFound
	}
	return p, err
}

func (r *CatalogRepo) Count(ctx context.Context) (int, error) {
	var n int
	err := r.DB.QueryRow(ctx, `SELECT COUNT(*) FROM products`).Scan(&n)
	return n, err
}

func (r *CatalogRepo) Create(ctx context.Context, in ProductInput) (Product, error) {
	if err := in.Validate(); err != nil {
		return Product{}, err
	}
	row := r.DB.QueryRow(ctx, `
		INSERT INTO products(id, name, brand, model, price, stock, category,
			spec_storage, spec_ram, spec_camera, spec_battery, spec_display,
			image, description)
		VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11,$12,$13,$14)
		RETURNING `+productColumns,
		uuid.NewString(), in.Name, in.Brand, in.Model, in.Price, in.Stock, in.Category,
		in.Specifications.Storage, in.Specifications.RAM, in.Specifications.Camera,
		in.Specifications.Battery, in.Specifications.Display,
		in.Image, in.Description)
	p, err := scanProduct(row)
	if err != nil {
		return Product{}, fmt.Errorf("create product: %w", err)
	}
	return p, nil
}

// Update applies a partial edit and refreshes updated_at. Only supplied
// fields change; a supplied stock overwrites whatever is there (manual
// restock is allowed to bypass the sale path).
func (r *CatalogRepo) Update(ctx context.Context, id string, in ProductUpdate) (Product, error) {
	if err := in.Validate(); err != nil {
		return Product{}, err
	}

	var sets []string
	var args []any
	add := func(col string, v any) {
		args = append(args, v)
		sets = append(sets, fmt.Sprintf("%s = $%d", col, len(args)))
	}
	if in.Name != nil {
		add("name", *in.Name)
	}
	if in.Brand != nil {
		add("brand", *in.Brand)
	}
	if in.Model != nil {
		add("model", *in.Model)
	}
	if in.Price != nil {
		add("price", *in.Price)
	}
	if in.Stock != nil {
		add("stock", *in.Stock)
	}
	if in.Category != nil {
		add("category", *in.Category)
	}
	if in.Specifications != nil {
		add("spec_storage", in.Specifications.Storage)
		add("spec_ram", in.Specifications.RAM)
		add("spec_camera", in.Specifications.Camera)
		add("spec_battery", in.Specifications.Battery)
		add("spec_display", in.Specifications.Display)
	}
	if in.Image != nil {
		add("image", *in.Image)
	}
	if in.Description != nil {
		add("description", *in.Description)
	}
	sets = append(sets, "updated_at = now()")

	args = append(args, id)
	query := fmt.Sprintf(`UPDATE products SET %s WHERE id = $%d RETURNING %s`,
		strings.Join(sets, ", "), len(args), productColumns)

	p, err := scanProduct(r.DB.QueryRow(ctx, query, args...))
	if errors.Is(err, pgx.ErrNoRows) {
		return Product{}, ErrProductNotFound
	}
	if err != nil {
		return Product{}, fmt.Errorf("update product: %w", err)
	}
	return p, nil
}

// Delete removes the product only; historical sales keep their snapshot
// and their (now dangling) product reference.
func (r *CatalogRepo) Delete(ctx context.Context, id string) error {
	ct, err := r.DB.Exec(ctx, `DELETE FROM products WHERE id=$1`, id)
	if err != nil {
		return fmt.Errorf("delete product: %w", err)
	}
	if ct.RowsAffected() == 0 {
		return ErrProductNotFound
	}
	return nil
}
