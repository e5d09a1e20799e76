package payment

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"testing"

	errs "github.com/pictrify/credit-ledger/internal/domain/error"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testKeySecret = "rzp_test_secret"

func signPayment(secret, orderID, paymentID string) string {
	mac := hmac.New(sha256.New, []byte(secret))
	mac.Write([]byte(orderID + "|" + paymentID))
	return hex.EncodeToString(mac.Sum(nil))
}

func TestVerifySignature(t *testing.T) {
	verifier := NewSignatureVerifier(testKeySecret)

	orderID := "order_abc123"
	paymentID := "pay_xyz789"
	signature := signPayment(testKeySecret, orderID, paymentID)

	t.Run("Valid signature accepted", func(t *testing.T) {
		assert.NoError(t, verifier.VerifySignature(orderID, paymentID, signature))
	})

	t.Run("Single character mutation rejected", func(t *testing.T) {
		mutated := []byte(signature)
		if mutated[0] == 'a' {
			mutated[0] = 'b'
		} else {
			mutated[0] = 'a'
		}

		err := verifier.VerifySignature(orderID, paymentID, string(mutated))
		assert.ErrorIs(t, err, errs.ErrInvalidSignature)
	})

	t.Run("Signature for a different order rejected", func(t *testing.T) {
		other := signPayment(testKeySecret, "order_other", paymentID)

		err := verifier.VerifySignature(orderID, paymentID, other)
		assert.ErrorIs(t, err, errs.ErrInvalidSignature)
	})

	t.Run("Signature from a different secret rejected", func(t *testing.T) {
		forged := signPayment("attacker_secret", orderID, paymentID)

		err := verifier.VerifySignature(orderID, paymentID, forged)
		assert.ErrorIs(t, err, errs.ErrInvalidSignature)
	})

	t.Run("Non-hex signature rejected", func(t *testing.T) {
		err := verifier.VerifySignature(orderID, paymentID, "not-hex-at-all!")
		assert.ErrorIs(t, err, errs.ErrInvalidSignature)
	})

	t.Run("Truncated signature rejected", func(t *testing.T) {
		err := verifier.VerifySignature(orderID, paymentID, signature[:32])
		assert.ErrorIs(t, err, errs.ErrInvalidSignature)
	})

	t.Run("Empty inputs rejected", func(t *testing.T) {
		for _, tc := range []struct {
			name                         string
			orderID, paymentID, provided string
		}{
			{"empty order", "", paymentID, signature},
			{"empty payment", orderID, "", signature},
			{"empty signature", orderID, paymentID, ""},
		} {
			t.Run(tc.name, func(t *testing.T) {
				err := verifier.VerifySignature(tc.orderID, tc.paymentID, tc.provided)
				assert.ErrorIs(t, err, errs.ErrInvalidSignature)
			})
		}
	})

	t.Run("Swapped order and payment IDs rejected", func(t *testing.T) {
		err := verifier.VerifySignature(paymentID, orderID, signature)
		require.Error(t, err)
		assert.ErrorIs(t, err, errs.ErrInvalidSignature)
	})
}
