package pricing

import (
	"crypto/rand"
	"math/big"
	"strconv"
	"time"
)

// GenerateOrderNumber produces a 6-digit numeric string, uniform in
// [100000, 999999]. Collisions are possible; the persistence layer
// re-checks uniqueness before an order is stored.
func GenerateOrderNumber() string {
	n, err := rand.Int(rand.Reader, big.NewInt(900000))
	if err != nil {
		// fallback: time-based entropy
		n = big.NewInt(time.Now().UnixNano() % 900000)
	}
	return strconv.FormatInt(100000+n.Int64(), 10)
}
