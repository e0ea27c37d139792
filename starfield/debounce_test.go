package starfield

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestDebouncerCollapsesBursts(t *testing.T) {
	clock := time.Unix(0, 0)
	d := NewDebouncer(50 * time.Millisecond)
	d.now = func() time.Time { return clock }

	assert.False(t, d.Ready(), "quiet debouncer never fires")

	// Ten triggers spread over 45ms: the deadline keeps sliding.
	for range 10 {
		d.Trigger()
		clock = clock.Add(5 * time.Millisecond)
		assert.False(t, d.Ready())
	}

	clock = clock.Add(44 * time.Millisecond)
	assert.False(t, d.Ready(), "still inside the quiet interval")

	clock = clock.Add(2 * time.Millisecond)
	assert.True(t, d.Ready(), "burst fires exactly once")
	assert.False(t, d.Ready(), "and never twice")

	d.Trigger()
	clock = clock.Add(51 * time.Millisecond)
	assert.True(t, d.Ready(), "a fresh trigger arms a fresh burst")
}
