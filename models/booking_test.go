package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBookingIsBlocking(t *testing.T) {
	blocking := map[string]bool{
		BookingPending:   true,
		BookingConfirmed: true,
		BookingCompleted: false,
		BookingCancelled: false,
		BookingNoShow:    false,
	}
	for status, want := range blocking {
		b := Booking{Status: status}
		assert.Equal(t, want, b.IsBlocking(), status)
	}
}
