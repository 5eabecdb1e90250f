package nestpay

import (
	"crypto/sha1"
	"encoding/base64"
)

// secureHash computes the 3-D Secure authentication hash: base64 of the
// SHA-1 digest over the ordered concatenation of the form parameters and the
// store key. The issuer's page recomputes the same digest to verify the
// parameters survived the trip through the cardholder's browser unchanged.
// The concatenation order is part of the gateway contract; do not reorder.
func secureHash(clientID, orderID, amount, okURL, failURL, storeKey string) string {
	sum := sha1.Sum([]byte(clientID + orderID + amount + okURL + failURL + storeKey))
	return base64.StdEncoding.EncodeToString(sum[:])
}
