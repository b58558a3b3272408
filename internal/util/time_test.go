package util

import (
	"sync"
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
		{name: "local timezone", timezone: "Local"},
		{name: "UTC timezone", timezone: "UTC"},
		{name: "valid timezone Asia/Tokyo", timezone: "Asia/Tokyo"},
		{name: "empty timezone defaults to Local", timezone: ""},
		{name: "invalid timezone", timezone: "Invalid/Timezone", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := InitializeTimeProvider(tt.timezone)
			if tt.wantErr {
				require.Error(t, err)
				assert.Contains(t, err.Error(), "invalid timezone")
				assert.Contains(t, err.Error(), "Valid examples:")
			} else {
				assert.NoError(t, err)
				assert.NotNil(t, GetTimeProvider())
			}
		})
	}
}

func TestGetTimeProviderDefaultsToLocal(t *testing.T) {
	mu.Lock()
	globalTimeProvider = nil
	mu.Unlock()

	provider := GetTimeProvider()
	require.NotNil(t, provider)
	assert.Same(t, provider, GetTimeProvider())

	ts := time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)
	assert.Equal(t, time.Local, provider.In(ts).Location())
}

func TestTimeProvider_FormatClock(t *testing.T) {
	provider := &TimeProvider{}
	require.NoError(t, provider.SetTimezone("UTC"))

	tests := []struct {
		name string
		t    time.Time
		want string
	}{
		{"morning_no_leading_zero", time.Date(2024, 3, 15, 9, 5, 0, 0, time.UTC), "9:05"},
		{"afternoon", time.Date(2024, 3, 15, 14, 30, 45, 0, time.UTC), "14:30"},
		{"midnight", time.Date(2024, 3, 15, 0, 0, 59, 0, time.UTC), "0:00"},
		{"late", time.Date(2024, 3, 15, 23, 59, 0, 0, time.UTC), "23:59"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, provider.FormatClock(tt.t))
		})
	}
}

func TestTimeProvider_FormatClockTimezone(t *testing.T) {
	provider := &TimeProvider{}
	require.NoError(t, provider.SetTimezone("Asia/Tokyo"))

	utc := time.Date(2024, 1, 1, 1, 7, 0, 0, time.UTC)
	assert.Equal(t, "10:07", provider.FormatClock(utc))
	assert.Equal(t, "20240101_1007", provider.FileStamp(utc))
}

func TestTimeProvider_FileStamp(t *testing.T) {
	provider := &TimeProvider{}
	require.NoError(t, provider.SetTimezone("UTC"))

	ts := time.Date(2024, 3, 5, 8, 4, 0, 0, time.UTC)
	assert.Equal(t, "20240305_0804", provider.FileStamp(ts))
}

func TestFormatCountdown(t *testing.T) {
	assert.Equal(t, "25:00", FormatCountdown(1500))
	assert.Equal(t, "24:35", FormatCountdown(24*60+35))
	assert.Equal(t, "00:09", FormatCountdown(9))
	assert.Equal(t, "00:00", FormatCountdown(0))
	assert.Equal(t, "00:00", FormatCountdown(-3))
}

func TestTimeProvider_Concurrency(t *testing.T) {
	provider := &TimeProvider{}
	require.NoError(t, provider.SetTimezone("UTC"))

	var wg sync.WaitGroup
	timezones := []string{"UTC", "Asia/Tokyo", "America/New_York", "Europe/London"}
	for i := 0; i < 20; i++ {
		wg.Add(2)
		go func() {
			defer wg.Done()
			_ = provider.Now()
			_ = provider.FormatClock(time.Now())
		}()
		go func(idx int) {
			defer wg.Done()
			assert.NoError(t, provider.SetTimezone(timezones[idx%len(timezones)]))
		}(i)
	}
	wg.Wait()
}
