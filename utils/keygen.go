package utils

import (
	"fmt"
	"math/rand"
	"time"
)

// Natural keys carry the issue month so documents sort naturally:
// OMNI/26-01/099, EVT/26-01/0042. The random suffix is best-effort;
// collisions are treated as acceptably rare and are not checked
// against the store.

func NewInvoiceNumber(prefix string) string {
	return fmt.Sprintf("%s/%s/%03d", prefix, time.Now().Format("06-01"), rand.Intn(1000))
}

func NewEventID() string {
	return fmt.Sprintf("EVT/%s/%04d", time.Now().Format("06-01"), rand.Intn(10000))
}
