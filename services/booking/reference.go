package booking

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
)

// RefPrefix tags every generated booking reference.
const RefPrefix = "VNB"

// NewBookingRef generates a human-readable booking reference of the form
// VNB-<timestamp>-<random>. The random tail keeps rapid successive
// references distinct; the unique index on booking_ref is the hard
// guarantee.
func NewBookingRef(now time.Time) string {
	tail := strings.ToUpper(strings.ReplaceAll(uuid.NewString(), "-", ""))[:10]
	return fmt.Sprintf("%s-%s-%s", RefPrefix, now.Format("20060102150405"), tail)
}
