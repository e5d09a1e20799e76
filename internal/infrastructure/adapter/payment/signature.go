package payment

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"

	errs "github.com/pictrify/credit-ledger/internal/domain/error"
)

// SignatureVerifier checks payment signatures issued by the provider at
// checkout completion. The provider signs orderID|paymentID with the key
// secret; the secret never leaves the server.
type SignatureVerifier struct {
	keySecret string
}

// NewSignatureVerifier creates a verifier bound to the provider key secret
func NewSignatureVerifier(keySecret string) *SignatureVerifier {
	return &SignatureVerifier{keySecret: keySecret}
}

// VerifySignature recomputes the expected HMAC-SHA256 hex digest and compares
// it in constant time. Any mismatch or malformed input rejects the payment.
func (v *SignatureVerifier) VerifySignature(orderID, paymentID, signature string) error {
	if orderID == "" || paymentID == "" || signature == "" {
		return errs.ErrInvalidSignature
	}

	mac := hmac.New(sha256.New, []byte(v.keySecret))
	mac.Write([]byte(orderID + "|" + paymentID))
	expected := mac.Sum(nil)

	provided, err := hex.DecodeString(signature)
	if err != nil {
		return errs.ErrInvalidSignature
	}

	if !hmac.Equal(expected, provided) {
		return errs.ErrInvalidSignature
	}
	return nil
}
