package types

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewTimeStringFromString(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    TimeString
		wantErr bool
	}{
		{name: "valid morning", input: "09:00", want: "09:00"},
		{name: "valid midnight", input: "00:00", want: "00:00"},
		{name: "valid end of day", input: "24:00", want: "24:00"},
		{name: "last minute", input: "23:59", want: "23:59"},
		{name: "past end of day", input: "24:01", wantErr: true},
		{name: "bad hour", input: "25:00", wantErr: true},
		{name: "bad minutes", input: "10:60", wantErr: true},
		{name: "missing padding", input: "9:00", wantErr: true},
		{name: "no colon", input: "0900", wantErr: true},
		{name: "empty", input: "", wantErr: true},
		{name: "garbage", input: "ab:cd", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := NewTimeStringFromString(tt.input)
			if tt.wantErr {
				require.Error(t, err)
				assert.ErrorIs(t, err, ErrInvalidTimeString)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestNewTimeString(t *testing.T) {
	ts := NewTimeString(time.Date(2024, 6, 1, 14, 5, 30, 0, time.UTC))
	assert.Equal(t, TimeString("14:05"), ts)
}

func TestAddMinutes(t *testing.T) {
	tests := []struct {
		name    string
		start   TimeString
		add     int
		want    TimeString
		wantErr bool
	}{
		{name: "simple", start: "09:00", add: 30, want: "09:30"},
		{name: "hour rollover", start: "09:45", add: 30, want: "10:15"},
		{name: "negative shift", start: "09:30", add: -30, want: "09:00"},
		{name: "to end of day", start: "23:30", add: 30, want: "24:00"},
		{name: "past end of day", start: "23:30", add: 45, wantErr: true},
		{name: "before midnight", start: "00:10", add: -20, wantErr: true},
		{name: "invalid base", start: "nope", add: 10, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := tt.start.AddMinutes(tt.add)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestComparisons(t *testing.T) {
	assert.True(t, TimeString("09:00").IsBefore("09:01"))
	assert.False(t, TimeString("09:00").IsBefore("09:00"))
	assert.False(t, TimeString("09:01").IsBefore("09:00"))

	assert.True(t, TimeString("17:00").IsAfter("09:00"))
	assert.False(t, TimeString("09:00").IsAfter("09:00"))

	// Invalid values never compare as before/after.
	assert.False(t, TimeString("bad").IsBefore("09:00"))
	assert.False(t, TimeString("09:00").IsAfter("bad"))
}

func TestMinutesRoundTrip(t *testing.T) {
	for _, s := range []TimeString{"00:00", "09:10", "12:34", "23:59", "24:00"} {
		m, err := s.Minutes()
		require.NoError(t, err)
		back, err := FromMinutes(m)
		require.NoError(t, err)
		assert.Equal(t, s, back)
	}
}
