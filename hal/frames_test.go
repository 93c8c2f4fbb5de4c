package hal

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFrameQueueRunsOncePerSchedule(t *testing.T) {
	var q FrameQueue
	calls := 0
	h := q.Schedule(func() { calls++ })
	require.NotZero(t, h)
	assert.Equal(t, 1, q.Pending())

	assert.Equal(t, 1, q.RunFrame())
	assert.Equal(t, 0, q.RunFrame())
	assert.Equal(t, 1, calls)
	assert.Equal(t, uint64(2), q.Frames())
}

func TestFrameQueueRearmRunsNextFrame(t *testing.T) {
	q := NewFrameQueue()
	calls := 0
	var tick func()
	tick = func() {
		calls++
		q.Schedule(tick)
	}
	q.Schedule(tick)

	for i := 0; i < 5; i++ {
		assert.Equal(t, 1, q.RunFrame())
	}
	assert.Equal(t, 5, calls)
	assert.Equal(t, 1, q.Pending())
}

func TestFrameQueueCancel(t *testing.T) {
	q := NewFrameQueue()
	ran := false
	h := q.Schedule(func() { ran = true })
	q.Cancel(h)
	q.Cancel(h)
	q.Cancel(12345)

	assert.Equal(t, 0, q.RunFrame())
	assert.False(t, ran)
	assert.Equal(t, 0, q.Pending())
}

func TestFrameQueueCancelDuringFrame(t *testing.T) {
	q := NewFrameQueue()
	var second FrameHandle
	ranSecond := false
	q.Schedule(func() { q.Cancel(second) })
	second = q.Schedule(func() { ranSecond = true })

	assert.Equal(t, 1, q.RunFrame())
	assert.False(t, ranSecond)
}

func TestFrameQueueNilCallback(t *testing.T) {
	q := NewFrameQueue()
	assert.Zero(t, q.Schedule(nil))
	assert.Equal(t, 0, q.Pending())
}

func TestFrameQueuePanicHandler(t *testing.T) {
	q := NewFrameQueue()
	var got any
	var stack []byte
	q.SetPanicHandler(func(v any, s []byte) { got, stack = v, s })

	after := 0
	q.Schedule(func() { panic("boom") })
	q.Schedule(func() { after++ })

	assert.NotPanics(t, func() { assert.Equal(t, 2, q.RunFrame()) })
	assert.Equal(t, "boom", got)
	assert.NotEmpty(t, stack)
	assert.Equal(t, 1, after)
}

func TestFrameQueuePanicWithoutHandler(t *testing.T) {
	q := NewFrameQueue()
	q.Schedule(func() { panic("boom") })
	assert.PanicsWithValue(t, "boom", func() { q.RunFrame() })
}
