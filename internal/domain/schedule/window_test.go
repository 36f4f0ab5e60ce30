package schedule

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/BruksfildServices01/foodtruck-storefront/internal/httperr"
)

func localTime(t *testing.T, tz string, hour, min int) time.Time {
	t.Helper()
	loc, err := time.LoadLocation(tz)
	require.NoError(t, err)
	return time.Date(2024, 1, 15, hour, min, 0, 0, loc)
}

func TestIsWithinWindow(t *testing.T) {
	const tz = "America/Sao_Paulo"

	tests := []struct {
		name     string
		now      time.Time
		open     string
		close    string
		wantOpen bool
	}{
		{"inside same-day window", localTime(t, tz, 12, 0), "11:00", "14:00", true},
		{"before opening", localTime(t, tz, 10, 59), "11:00", "14:00", false},
		{"opening boundary is inclusive", localTime(t, tz, 11, 0), "11:00", "14:00", true},
		{"closing boundary is exclusive", localTime(t, tz, 14, 0), "11:00", "14:00", false},
		{"minute before closing", localTime(t, tz, 13, 59), "11:00", "14:00", true},

		// Janela que cruza a meia-noite (22:00 - 02:00).
		{"overnight late evening", localTime(t, tz, 23, 30), "22:00", "02:00", true},
		{"overnight early morning", localTime(t, tz, 1, 0), "22:00", "02:00", true},
		{"overnight midday is closed", localTime(t, tz, 10, 0), "22:00", "02:00", false},
		{"overnight close boundary exclusive", localTime(t, tz, 2, 0), "22:00", "02:00", false},
		{"overnight open boundary inclusive", localTime(t, tz, 22, 0), "22:00", "02:00", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := IsWithinWindow(tt.now, tt.open, tt.close, tz)
			require.NoError(t, err)
			assert.Equal(t, tt.wantOpen, got)
		})
	}
}

func TestIsWithinWindow_ConvertsToZone(t *testing.T) {
	// 14:00 UTC = 11:00 em São Paulo (UTC-3): dentro da janela local.
	now := time.Date(2024, 1, 15, 14, 0, 0, 0, time.UTC)

	got, err := IsWithinWindow(now, "11:00", "14:00", "America/Sao_Paulo")
	require.NoError(t, err)
	assert.True(t, got)

	// O mesmo instante em UTC já passou das 14:00.
	got, err = IsWithinWindow(now, "11:00", "14:00", "UTC")
	require.NoError(t, err)
	assert.False(t, got)
}

func TestIsWithinWindow_Errors(t *testing.T) {
	now := time.Date(2024, 1, 15, 12, 0, 0, 0, time.UTC)

	_, err := IsWithinWindow(now, "11:00", "14:00", "Not/AZone")
	assert.True(t, httperr.IsBusiness(err, "invalid_timezone"))

	_, err = IsWithinWindow(now, "25:99", "14:00", "UTC")
	assert.True(t, httperr.IsBusiness(err, "malformed_time"))

	_, err = IsWithinWindow(now, "11:00", "2pm", "UTC")
	assert.True(t, httperr.IsBusiness(err, "malformed_time"))
}
