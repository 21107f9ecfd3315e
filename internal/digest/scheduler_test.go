package digest

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewSchedulerRejectsBadTime(t *testing.T) {
	_, err := NewScheduler(nil, "9 o'clock")
	assert.Error(t, err)
}

func TestNextRun(t *testing.T) {
	s, err := NewScheduler(nil, "09:00")
	require.NoError(t, err)

	morning := time.Date(2025, 6, 1, 7, 30, 0, 0, time.UTC)
	assert.Equal(t, time.Date(2025, 6, 1, 9, 0, 0, 0, time.UTC), s.nextRun(morning))

	evening := time.Date(2025, 6, 1, 21, 0, 0, 0, time.UTC)
	assert.Equal(t, time.Date(2025, 6, 2, 9, 0, 0, 0, time.UTC), s.nextRun(evening))

	// exactly at fire time the next run is tomorrow
	onTime := time.Date(2025, 6, 1, 9, 0, 0, 0, time.UTC)
	assert.Equal(t, time.Date(2025, 6, 2, 9, 0, 0, 0, time.UTC), s.nextRun(onTime))
}
