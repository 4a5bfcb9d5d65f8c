package shop

import "time"

// ProductInput carries the fields a caller may supply when creating a
// product. Validation happens once here; repos trust validated input.
type ProductInput struct {
	Name           string         `json:"name"`
	Brand          string         `json:"brand"`
	Model          string         `json:"model"`
	Price          int64          `json:"price"`
	Stock          int            `json:"stock"`
	Category       string         `json:"category"`
	Specifications Specifications `json:"specifications"`
	Image          string         `json:"image"`
	Description    string         `json:"description"`
}

func (in *ProductInput) Validate() error {
	for _, f := range []struct{ name, val string }{
		{"name", in.Name},
		{"brand", in.Brand},
		{"model", in.Model},
		{"category", in.Category},
	} {
		if f.val == "" {
			return &ValidationError{Field: f.name, Reason: "required"}
		}
	}
	if in.Price < 0 {
		return &ValidationError{Field: "price", Reason: "must not be negative"}
	}
	if in.Stock < 0 {
		return &ValidationError{Field: "stock", Reason: "must not be negative"}
	}
	return nil
}

// ProductUpdate is a partial edit; nil fields are left untouched.
// Stock may be set directly here (manual restock) and is not subject to
// the sale transaction's serialization.
type ProductUpdate struct {
	Name           *string         `json:"name"`
	Brand          *string         `json:"brand"`
	Model          *string         `json:"model"`
	Price          *int64          `json:"price"`
	Stock          *int            `json:"stock"`
	Category       *string         `json:"category"`
	Specifications *Specifications `json:"specifications"`
	Image          *string         `json:"image"`
	Description    *string         `json:"description"`
}

func (in *ProductUpdate) Validate() error {
	for _, f := range []struct {
		name string
		val  *string
	}{
		{"name", in.Name},
		{"brand", in.Brand},
		{"model", in.Model},
		{"category", in.Category},
	} {
		if f.val != nil && *f.val == "" {
			return &ValidationError{Field: f.name, Reason: "must not be empty"}
		}
	}
	if in.Price != nil && *in.Price < 0 {
		return &ValidationError{Field: "price", Reason: "must not be negative"}
	}
	if in.Stock != nil && *in.Stock < 0 {
		return &ValidationError{Field: "stock", Reason: "must not be negative"}
	}
	return nil
}

// SaleInput is the caller's side of recording a sale. Price and product
// name are never taken from here; they are snapshotted from the catalog
// inside the transaction.
type SaleInput struct {
	ProductID     string     `json:"productId"`
	Quantity      int        `json:"quantity"`
	CustomerName  string     `json:"customerName"`
	CustomerPhone string     `json:"customerPhone"`
	PaymentMethod string     `json:"paymentMethod"`
	SaleDate      *time.Time `json:"saleDate"`
}

func (in *SaleInput) Validate() error {
	if in.ProductID == "" {
		return &ValidationError{Field: "productId", Reason: "required"}
	}
	if in.Quantity <= 0 {
		return &ValidationError{Field: "quantity", Reason: "must be a positive integer"}
	}
	if _, err := ParsePaymentMethod(in.PaymentMethod); err != nil {
		return err
	}
	return nil
}
