package utils

import (
	"crypto/rand"
	"fmt"
	"math/big"
	"time"
)

// Reference prefixes for human-facing identifiers.
const (
	BookingRefPrefix = "BK"
	PayoutRefPrefix  = "PO"
)

// GenerateReference returns PREFIX-YYYYMMDD-HHMMSS-mmm-RRRR.
func GenerateReference(prefix string) string {
	now := time.Now().UTC()

	datePart := now.Format("20060102-150405")
	millis := now.Nanosecond() / int(time.Millisecond)

	n, err := rand.Int(rand.Reader, big.NewInt(10000))
	if err != nil {
		n = big.NewInt(now.UnixNano() % 10000)
	}

	return fmt.Sprintf("%s-%s-%03d-%04d", prefix, datePart, millis, n.Int64())
}
