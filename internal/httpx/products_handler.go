package httpx

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"tokohp/internal/shop"
)

// CatalogStore is the slice of the catalog repo the handlers need.
type CatalogStore interface {
	List(ctx context.Context) ([]shop.Product, error)
	Create(ctx context.Context, in shop.ProductInput) (shop.Product, error)
	Update(ctx context.Context, id string, in shop.ProductUpdate) (shop.Product, error)
	Delete(ctx context.Context, id string) error
}

// Cache invalidation is best-effort; a nil-op fake stands in during tests.
type Cache interface {
	Get(ctx context.Context) ([]byte, bool)
	Set(ctx context.Context, body []byte)
	Invalidate(ctx context.Context)
}

type ProductsHandler struct {
	Catalog CatalogStore
	Cache   Cache
	Log     *zap.Logger
}

func (h *ProductsHandler) Register(r *chi.Mux) {
	r.Get("/api/products", h.list)
	r.Post("/api/products", h.create)
	r.Put("/api/products/{id}", h.update)
	r.Delete("/api/products/{id}", h.delete)
}

func (h *ProductsHandler) list(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 3*time.Second)
	defer cancel()

	products, err := h.Catalog.List(ctx)
	if err != nil {
		h.Log.Error("list products", zap.Error(err))
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, products)
}

func (h *ProductsHandler) create(w http.ResponseWriter, r *http.Request) {
	var in shop.ProductInput
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"message": "invalid json"})
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	p, err := h.Catalog.Create(ctx, in)
	if err != nil {
		writeError(w, err)
		return
	}
	h.Cache.Invalidate(ctx)
	writeJSON(w, http.StatusCreated, p)
}

func (h *ProductsHandler) update(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	var in shop.ProductUpdate
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"message": "invalid json"})
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	p, err := h.Catalog.Update(ctx, id, in)
	if err != nil {
		writeError(w, err)
		return
	}
	h.Cache.Invalidate(ctx)
	writeJSON(w, http.StatusOK, p)
}

func (h *ProductsHandler) delete(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	if err := h.Catalog.Delete(ctx, id); err != nil {
		writeError(w, err)
		return
	}
	h.Cache.Invalidate(ctx)
	writeJSON(w, http.StatusOK, map[string]string{"message": "Product deleted successfully"})
}
