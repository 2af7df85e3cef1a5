package cleanup

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestRetentionLeft(t *testing.T) {
	now := time.Now()

	tests := []struct {
		name       string
		lastPlayed time.Time
		cutoff     time.Time
		want       string
	}{
		{
			name:       "cutoff passed",
			lastPlayed: now.Add(-time.Hour),
			cutoff:     now,
			want:       "0",
		},
		{
			name:       "one day",
			lastPlayed: now,
			cutoff:     now.Add(-24*time.Hour - 5*time.Minute),
			want:       "1 day",
		},
		{
			name:       "days",
			lastPlayed: now,
			cutoff:     now.Add(-72*time.Hour - 5*time.Minute),
			want:       "3 days",
		},
		{
			name:       "one hour",
			lastPlayed: now,
			cutoff:     now.Add(-time.Hour),
			want:       "1 hour",
		},
		{
			name:       "hours",
			lastPlayed: now,
			cutoff:     now.Add(-13 * time.Hour),
			want:       "13 hours",
		},
		{
			name:       "one minute",
			lastPlayed: now,
			cutoff:     now.Add(-70 * time.Second),
			want:       "1 minute",
		},
		{
			name:       "minutes",
			lastPlayed: now,
			cutoff:     now.Add(-125 * time.Second),
			want:       "2 minutes",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, retentionLeft(tt.lastPlayed, tt.cutoff))
		})
	}
}
