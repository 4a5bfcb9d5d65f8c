package shop

type PaymentMethod string

const (
	PaymentCash     PaymentMethod = "cash"
	PaymentCredit   PaymentMethod = "credit"
	PaymentDebit    PaymentMethod = "debit"
	PaymentTransfer PaymentMethod = "transfer"
)

var validMethods = map[PaymentMethod]bool{
	PaymentCash:     true,
	PaymentCredit:   true,
	PaymentDebit:    true,
	PaymentTransfer: true,
}

// ParsePaymentMethod maps caller input to a PaymentMethod.
// Empty input defaults to cash.
func ParsePaymentMethod(s string) (PaymentMethod, error) {
	if s == "" {
		return PaymentCash, nil
	}
	m := PaymentMethod(s)
	if !validMethods[m] {
		return "", &ValidationError{Field: "paymentMethod", Reason: "must be one of cash, credit, debit, transfer"}
	}
	return m, nil
}
