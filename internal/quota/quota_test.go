package quota

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLimiter_AllowUntilLimit(t *testing.T) {
	l := NewLimiter(3)

	for i := 0; i < 3; i++ {
		require.NoError(t, l.Allow("alice"))
		l.Consume("alice")
	}

	err := l.Allow("alice")
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrQuotaExceeded))
}

func TestLimiter_UsersAreIndependent(t *testing.T) {
	l := NewLimiter(1)

	l.Consume("alice")
	require.Error(t, l.Allow("alice"))
	assert.NoError(t, l.Allow("bob"))
}

func TestLimiter_MonthRollover(t *testing.T) {
	now := time.Date(2026, time.January, 31, 23, 0, 0, 0, time.UTC)
	l := NewLimiter(1).WithClock(func() time.Time { return now })

	l.Consume("alice")
	require.Error(t, l.Allow("alice"))

	used, limit, month := l.Usage("alice")
	assert.Equal(t, 1, used)
	assert.Equal(t, 1, limit)
	assert.Equal(t, "2026-01", month)

	// The counter resets on the first touch in the next month.
	now = now.Add(2 * time.Hour)
	assert.NoError(t, l.Allow("alice"))

	used, _, month = l.Usage("alice")
	assert.Equal(t, 0, used)
	assert.Equal(t, "2026-02", month)
}

func TestLimiter_ZeroLimitDeniesEveryone(t *testing.T) {
	l := NewLimiter(0)
	assert.Error(t, l.Allow("anyone"))
}
