package util

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInitializeTimeProvider(t *testing.T) {
	tests := []struct {
		name     string
		timezone string
		wantErr  bool
	}{
		{name: "utc", timezone: "UTC"},
		{name: "named zone", timezone: "America/New_York"},
		{name: "local", timezone: "Local"},
		{name: "empty means local", timezone: ""},
		{name: "garbage", timezone: "Not/AZone", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := InitializeTimeProvider(tt.timezone)
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestInitializeFailureKeepsPreviousProvider(t *testing.T) {
	require.NoError(t, InitializeTimeProvider("UTC"))

	err := InitializeTimeProvider("Bad/Zone")

	require.Error(t, err)
	assert.Equal(t, "UTC", GetTimeProvider().Location().String())
}

func TestDateOfFollowsConfiguredTimezone(t *testing.T) {
	require.NoError(t, InitializeTimeProvider("UTC"))
	provider := GetTimeProvider()

	// Half past eleven at night in UTC-5 is already the next day in UTC
	est := time.FixedZone("UTC-5", -5*60*60)
	late := time.Date(2024, 3, 15, 23, 30, 0, 0, est)

	assert.Equal(t, "2024-03-16", provider.DateOf(late))
	assert.Equal(t, 4, provider.In(late).Hour())
}

func TestToday(t *testing.T) {
	require.NoError(t, InitializeTimeProvider("UTC"))

	today := GetTimeProvider().Today()

	parsed, err := time.Parse("2006-01-02", today)
	require.NoError(t, err)
	assert.Equal(t, today, parsed.Format("2006-01-02"))
}

func TestFormatNow(t *testing.T) {
	require.NoError(t, InitializeTimeProvider("UTC"))

	stamp := GetTimeProvider().FormatNow("20060102_150405")

	assert.Len(t, stamp, 15)
	_, err := time.Parse("20060102_150405", stamp)
	assert.NoError(t, err)
}
