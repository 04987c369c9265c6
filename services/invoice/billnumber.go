package invoice

import (
	"fmt"
	"math/rand"
	"time"
)

// billNumberPrefix marks export (sales) bills.
const billNumberPrefix = "XB"

// NewBillNumber produces a human-readable bill number: the prefix, the
// current unix time in milliseconds, and a zero-padded 3-digit random suffix
// that lowers the odds of two bills landing on the same millisecond.
// Uniqueness here is only probabilistic; the repository's unique index on
// billNumber is the real guarantee, and creation retries on collision.
func NewBillNumber() string {
	return fmt.Sprintf("%s%d%03d", billNumberPrefix, time.Now().UnixMilli(), rand.Intn(1000))
}
