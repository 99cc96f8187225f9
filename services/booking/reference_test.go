package booking_test

import (
	"testing"
	"time"

	"venuely/services/booking"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewBookingRefFormat(t *testing.T) {
	now := time.Date(2026, 8, 31, 14, 5, 9, 0, time.UTC)
	ref := booking.NewBookingRef(now)
	assert.Regexp(t, `^VNB-20260831140509-[0-9A-F]{10}$`, ref)
}

func TestNewBookingRefUniqueness(t *testing.T) {
	now := time.Now()
	seen := make(map[string]struct{}, 10000)
	for i := 0; i < 10000; i++ {
		ref := booking.NewBookingRef(now)
		_, dup := seen[ref]
		require.False(t, dup, "duplicate reference %s", ref)
		seen[ref] = struct{}{}
	}
}
