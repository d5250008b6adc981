package clock

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestFixed_ReturnsSameInstant(t *testing.T) {
	at := time.Date(2026, time.March, 8, 7, 0, 0, 0, time.UTC)
	c := Fixed(at)

	assert.True(t, c.Now().Equal(at))
	assert.True(t, c.Now().Equal(c.Now()))
}

func TestFunc_CallsThrough(t *testing.T) {
	calls := 0
	c := Func(func() time.Time {
		calls++
		return time.Unix(0, 0)
	})

	c.Now()
	c.Now()
	assert.Equal(t, 2, calls)
}

func TestRealClock_Advances(t *testing.T) {
	before := time.Now()
	assert.False(t, RealClock{}.Now().Before(before))
}
