package gateway

import (
	"crypto/hmac"
	"crypto/sha512"
	"encoding/hex"
)

// ValidateSignature recomputes the HMAC-SHA512 of the raw webhook body with
// the shared secret and compares it against the x-paystack-signature header.
// The comparison is constant-time.
func ValidateSignature(rawBody []byte, signatureHeader, secret string) bool {
	if signatureHeader == "" || secret == "" {
		return false
	}
	mac := hmac.New(sha512.New, []byte(secret))
	mac.Write(rawBody)
	expected := hex.EncodeToString(mac.Sum(nil))
	return hmac.Equal([]byte(expected), []byte(signatureHeader))
}
