package shop

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validProduct() ProductInput {
	return ProductInput{
		Name: "Pixel 8", Brand: "Google", Model: "GC3VE",
		Price: 13999000, Stock: 10, Category: "Smartphone",
	}
}

func TestProductInputValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*ProductInput)
		wantErr string
	}{
		{"valid", func(in *ProductInput) {}, ""},
		{"zero price and stock ok", func(in *ProductInput) { in.Price = 0; in.Stock = 0 }, ""},
		{"missing name", func(in *ProductInput) { in.Name = "" }, "invalid name: required"},
		{"missing brand", func(in *ProductInput) { in.Brand = "" }, "invalid brand: required"},
		{"missing model", func(in *ProductInput) { in.Model = "" }, "invalid model: required"},
		{"missing category", func(in *ProductInput) { in.Category = "" }, "invalid category: required"},
		{"negative price", func(in *ProductInput) { in.Price = -1 }, "invalid price: must not be negative"},
		{"negative stock", func(in *ProductInput) { in.Stock = -1 }, "invalid stock: must not be negative"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			in := validProduct()
			tt.mutate(&in)
			err := in.Validate()
			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			var ve *ValidationError
			require.ErrorAs(t, err, &ve)
			assert.Equal(t, tt.wantErr, err.Error())
		})
	}
}

func TestProductUpdateValidate(t *testing.T) {
	empty := ""
	negPrice := int64(-5)
	negStock := -5
	price := int64(100)
	stock := 0

	assert.NoError(t, (&ProductUpdate{}).Validate())
	assert.NoError(t, (&ProductUpdate{Price: &price, Stock: &stock}).Validate())
	assert.Error(t, (&ProductUpdate{Name: &empty}).Validate())
	assert.Error(t, (&ProductUpdate{Price: &negPrice}).Validate())
	assert.Error(t, (&ProductUpdate{Stock: &negStock}).Validate())
}

func TestSaleInputValidate(t *testing.T) {
	tests := []struct {
		name   string
		in     SaleInput
		wantOK bool
	}{
		{"valid", SaleInput{ProductID: "p1", Quantity: 1}, true},
		{"valid with method", SaleInput{ProductID: "p1", Quantity: 2, PaymentMethod: "transfer"}, true},
		{"missing product", SaleInput{Quantity: 1}, false},
		{"zero quantity", SaleInput{ProductID: "p1", Quantity: 0}, false},
		{"negative quantity", SaleInput{ProductID: "p1", Quantity: -3}, false},
		{"bad method", SaleInput{ProductID: "p1", Quantity: 1, PaymentMethod: "barter"}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.in.Validate()
			if tt.wantOK {
				assert.NoError(t, err)
			} else {
				var ve *ValidationError
				require.ErrorAs(t, err, &ve)
			}
		})
	}
}

func TestParsePaymentMethod(t *testing.T) {
	m, err := ParsePaymentMethod("")
	require.NoError(t, err)
	assert.Equal(t, PaymentCash, m)

	for _, s := range []string{"cash", "credit", "debit", "transfer"} {
		m, err := ParsePaymentMethod(s)
		require.NoError(t, err)
		assert.Equal(t, PaymentMethod(s), m)
	}

	_, err = ParsePaymentMethod("cheque")
	var ve *ValidationError
	require.ErrorAs(t, err, &ve)
	assert.Equal(t, "paymentMethod", ve.Field)
}
