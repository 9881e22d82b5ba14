package schedule

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestNextResetTime(t *testing.T) {
	loc := time.UTC

	tests := []struct {
		name string
		now  time.Time
		hour int
		want time.Time
	}{
		{
			name: "before reset hour same day",
			now:  time.Date(2025, 3, 10, 8, 30, 0, 0, loc),
			hour: 9,
			want: time.Date(2025, 3, 10, 9, 0, 0, 0, loc),
		},
		{
			name: "after reset hour rolls to next day",
			now:  time.Date(2025, 3, 10, 9, 30, 0, 0, loc),
			hour: 9,
			want: time.Date(2025, 3, 11, 9, 0, 0, 0, loc),
		},
		{
			name: "exactly at reset hour rolls to next day",
			now:  time.Date(2025, 3, 10, 0, 0, 0, 0, loc),
			hour: 0,
			want: time.Date(2025, 3, 11, 0, 0, 0, 0, loc),
		},
		{
			name: "midnight reset from evening",
			now:  time.Date(2025, 3, 10, 23, 59, 0, 0, loc),
			hour: 0,
			want: time.Date(2025, 3, 11, 0, 0, 0, 0, loc),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, nextResetTime(tt.now, tt.hour))
		})
	}
}
