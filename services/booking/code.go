package booking

import (
	"fmt"
	"math/rand"
	"time"
)

// GenerateBookingCode builds the human-readable booking code: "BK" followed
// by six time-derived digits and three random digits.
func GenerateBookingCode(now time.Time) string {
	return fmt.Sprintf("BK%06d%03d", now.Unix()%1000000, rand.Intn(1000))
}
