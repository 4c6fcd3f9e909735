package checkout

import (
	"math/rand"
	"strconv"
	"time"
)

const orderNumberPrefix = "WIG"

// GenerateOrderNumber produces a human-referenceable order number from
// the current time and a small random component, e.g. WIG1756712345678042.
// Collisions are improbable but possible; the store's unique index turns
// them into ErrDuplicateOrderNumber.
func GenerateOrderNumber() string {
	return orderNumberPrefix +
		strconv.FormatInt(time.Now().UnixMilli(), 10) +
		strconv.Itoa(rand.Intn(1000))
}
