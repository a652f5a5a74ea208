package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestServiceIDList_ValueScanRoundTrip(t *testing.T) {
	original := ServiceIDList{5, 1, 2}

	value, err := original.Value()
	require.NoError(t, err)
	assert.Equal(t, "[5,1,2]", value)

	var decoded ServiceIDList
	require.NoError(t, decoded.Scan(value))
	assert.Equal(t, original, decoded)
}

func TestServiceIDList_NilSerializesAsEmptyArray(t *testing.T) {
	var l ServiceIDList

	value, err := l.Value()

	require.NoError(t, err)
	assert.Equal(t, "[]", value)
}

func TestServiceIDList_ScanSources(t *testing.T) {
	var fromBytes ServiceIDList
	require.NoError(t, fromBytes.Scan([]byte("[1,2]")))
	assert.Equal(t, ServiceIDList{1, 2}, fromBytes)

	var fromNil ServiceIDList
	require.NoError(t, fromNil.Scan(nil))
	assert.Equal(t, ServiceIDList{}, fromNil)

	var fromInt ServiceIDList
	assert.Error(t, fromInt.Scan(42))
}

func TestServiceIDList_ScanInvalidPayload(t *testing.T) {
	var l ServiceIDList

	assert.Error(t, l.Scan(`{"not":"an array"}`))
	assert.Error(t, l.Scan("garbage"))
}

func TestBooking_IsTerminal(t *testing.T) {
	tests := []struct {
		status   BookingStatus
		terminal bool
	}{
		{StatusScheduled, false},
		{StatusInProgress, false},
		{StatusCompleted, true},
		{StatusCancelled, true},
	}

	for _, tt := range tests {
		b := &Booking{Status: tt.status}
		assert.Equal(t, tt.terminal, b.IsTerminal(), "status %s", tt.status)
	}
}

func TestValidators(t *testing.T) {
	assert.True(t, IsValidStatus("scheduled"))
	assert.True(t, IsValidStatus("in_progress"))
	assert.False(t, IsValidStatus("paused"))

	assert.True(t, IsValidBookingType(TypeWorkshop))
	assert.True(t, IsValidBookingType(TypeHomeVisit))
	assert.False(t, IsValidBookingType("drive_through"))

	assert.True(t, IsValidPaymentMode(PaymentOnSite))
	assert.False(t, IsValidPaymentMode("crypto"))

	for rating := MinRating; rating <= MaxRating; rating++ {
		assert.True(t, IsValidRating(rating))
	}
	assert.False(t, IsValidRating(MinRating-1))
	assert.False(t, IsValidRating(MaxRating+1))
}
