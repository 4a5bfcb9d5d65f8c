package httpx

import (
	"encoding/json"
	"errors"
	"net/http"

	"tokohp/internal/shop"
)

func writeJSON(w http.ResponseWriter, code int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	_ = json.NewEncoder(w).Encode(v)
}

// writeError maps domain errors onto the response contract: every
// failure body is {"message": ...}.
func writeError(w http.ResponseWriter, err error) {
	var ve *shop.ValidationError
	var ise *shop.InsufficientStockError
	switch {
	case errors.As(err, &ve), errors.As(err, &ise):
		writeJSON(w, http.StatusBadRequest, map[string]string{"message": err.Error()})
	case errors.Is(err, shop.ErrProductNotFound):
		writeJSON(w, http.StatusNotFound, map[string]string{"message": "Product not found"})
	default:
		writeJSON(w, http.StatusInternalServerError, map[string]string{"message": err.Error()})
	}
}
