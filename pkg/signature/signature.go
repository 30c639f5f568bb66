// Package signature authenticates payment gateway webhooks. The gateway
// signs the exact raw request body with HMAC-SHA512 and sends the hex
// digest in a header.
package signature

import (
	"crypto/hmac"
	"crypto/sha512"
	"encoding/hex"
)

func Compute(secret, body []byte) string {
	mac := hmac.New(sha512.New, secret)
	mac.Write(body)
	return hex.EncodeToString(mac.Sum(nil))
}

// Verify compares the supplied signature against the expected digest in
// constant time.
func Verify(secret, body []byte, sig string) bool {
	return hmac.Equal([]byte(Compute(secret, body)), []byte(sig))
}
