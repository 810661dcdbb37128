package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEndTime_Basic(t *testing.T) {
	end, err := EndTime("10:00", 30)

	require.NoError(t, err)
	assert.Equal(t, "10:30", end)
}

func TestEndTime_CrossesHour(t *testing.T) {
	end, err := EndTime("09:45", 30)

	require.NoError(t, err)
	assert.Equal(t, "10:15", end)
}

func TestEndTime_EndsAtMidnight(t *testing.T) {
	end, err := EndTime("23:30", 30)

	require.NoError(t, err)
	assert.Equal(t, "24:00", end)
}

func TestEndTime_CrossesMidnight(t *testing.T) {
	_, err := EndTime("23:30", 31)

	require.Error(t, err)
}

func TestEndTime_NonPositiveDuration(t *testing.T) {
	_, err := EndTime("10:00", 0)
	require.Error(t, err)

	_, err = EndTime("10:00", -15)
	require.Error(t, err)
}

func TestEndTime_InvalidStart(t *testing.T) {
	_, err := EndTime("25:00", 30)
	require.Error(t, err)

	_, err = EndTime("not-a-time", 30)
	require.Error(t, err)
}

func TestOverlaps(t *testing.T) {
	tests := []struct {
		name         string
		aStart, aEnd string
		bStart, bEnd string
		want         bool
	}{
		{"identical", "10:00", "10:30", "10:00", "10:30", true},
		{"equal starts different ends", "10:00", "10:30", "10:00", "11:00", true},
		{"contained", "10:00", "11:00", "10:15", "10:45", true},
		{"partial overlap", "10:00", "10:30", "10:15", "10:45", true},
		{"touching end to start", "10:00", "10:30", "10:30", "11:00", false},
		{"disjoint", "09:00", "09:30", "10:00", "10:30", false},
		{"ends at midnight", "23:00", "24:00", "23:30", "24:00", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Overlaps(tt.aStart, tt.aEnd, tt.bStart, tt.bEnd))

			// the predicate is symmetric
			assert.Equal(t, tt.want, Overlaps(tt.bStart, tt.bEnd, tt.aStart, tt.aEnd))
		})
	}
}

func TestNormalizeDate(t *testing.T) {
	date, err := NormalizeDate("2024-06-01")
	require.NoError(t, err)
	assert.Equal(t, "2024-06-01", date)

	_, err = NormalizeDate("01.06.2024")
	require.Error(t, err)

	_, err = NormalizeDate("2024-13-01")
	require.Error(t, err)
}

func TestNormalizeClock(t *testing.T) {
	clock, err := NormalizeClock("09:05")
	require.NoError(t, err)
	assert.Equal(t, "09:05", clock)

	// single-digit hours are accepted and zero-padded
	clock, err = NormalizeClock("9:05")
	require.NoError(t, err)
	assert.Equal(t, "09:05", clock)

	_, err = NormalizeClock("10:60")
	require.Error(t, err)

	_, err = NormalizeClock("10.30")
	require.Error(t, err)
}
