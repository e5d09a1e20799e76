package provider

import "context"

// Order is the result of creating an order at the payment provider
type Order struct {
	OrderID  string
	Amount   int64 // Minor currency units
	Currency string
	KeyID    string // Public key the client checkout needs
}

// OrderCreator creates orders at the external payment provider
type OrderCreator interface {
	// CreateOrder registers an order for the given amount in minor currency
	// units. The receipt and notes are opaque metadata echoed back by the
	// provider's dashboard.
	CreateOrder(ctx context.Context, amount int64, receipt string, notes map[string]string) (*Order, error)
}

// PaymentVerifier authenticates a completed payment
type PaymentVerifier interface {
	// VerifySignature recomputes the expected signature over
	// orderID + "|" + paymentID with the shared secret and compares it in
	// constant time against the provided signature.
	//
	// Possible errors:
	// - ErrInvalidSignature: on mismatch
	VerifySignature(orderID, paymentID, signature string) error
}
