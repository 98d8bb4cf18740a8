package entities

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func Test_DaysRemaining_TracksExpiry(t *testing.T) {
	now := time.Now().UTC()
	job := Job{ExpiresAt: now.AddDate(0, 0, 10)}

	assert.InDelta(t, 10.0, job.DaysRemaining(now), 0.01)

	// Later reads shrink the window without touching the stored expiry.
	later := job.DaysRemaining(now.Add(12 * time.Hour))
	assert.InDelta(t, 9.5, later, 0.01)
	assert.True(t, later < job.DaysRemaining(now))
	assert.Equal(t, now.AddDate(0, 0, 10), job.ExpiresAt)
}

func Test_DaysRemaining_NegativeAfterExpiry(t *testing.T) {
	now := time.Now().UTC()
	job := Job{ExpiresAt: now.Add(-24 * time.Hour)}

	assert.InDelta(t, -1.0, job.DaysRemaining(now), 0.01)
}
