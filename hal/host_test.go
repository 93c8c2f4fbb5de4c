package hal

import (
	"bytes"
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type countingApp struct {
	updates int
	closed  int
	err     error
}

func (a *countingApp) Update() error {
	a.updates++
	return a.err
}

func (a *countingApp) Close() { a.closed++ }

func TestHostDefaults(t *testing.T) {
	h := New(HostConfig{})
	w, hh := h.Display().Size()
	assert.Equal(t, defaultWidth, w)
	assert.Equal(t, defaultHeight, hh)
	assert.NotNil(t, h.Logger())
	assert.NotNil(t, h.Input().Keyboard())
	assert.NotNil(t, h.Input().Pointer())
}

func TestRunHeadlessStopsAfterTicks(t *testing.T) {
	h := New(HostConfig{Width: 8, Height: 8})
	app := &countingApp{}
	frames := 0
	var tick func()
	tick = func() {
		frames++
		h.Frames().Schedule(tick)
	}
	h.Frames().Schedule(tick)

	err := RunHeadless(context.Background(), h, func(HAL) (App, error) { return app, nil },
		HeadlessConfig{Hz: 1000, Ticks: 5})
	require.NoError(t, err)
	assert.Equal(t, 5, app.updates)
	assert.Equal(t, 5, frames)
	assert.Equal(t, 1, app.closed)
}

func TestRunHeadlessContextCancel(t *testing.T) {
	h := New(HostConfig{})
	app := &countingApp{}
	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()

	err := RunHeadless(ctx, h, func(HAL) (App, error) { return app, nil }, HeadlessConfig{Hz: 100})
	assert.ErrorIs(t, err, context.DeadlineExceeded)
	assert.Equal(t, 1, app.closed)
}

func TestRunHeadlessErrors(t *testing.T) {
	h := New(HostConfig{})
	boom := errors.New("boom")

	err := RunHeadless(context.Background(), h, func(HAL) (App, error) { return nil, boom }, HeadlessConfig{})
	assert.ErrorIs(t, err, boom)

	app := &countingApp{err: boom}
	err = RunHeadless(context.Background(), h, func(HAL) (App, error) { return app, nil }, HeadlessConfig{Hz: 1000})
	assert.ErrorIs(t, err, boom)
	assert.Equal(t, 1, app.closed)
}

func TestInputQueueDropsWhenFull(t *testing.T) {
	q := NewInputQueue()
	assert.False(t, q.EmitPointer(PointerEvent{}))
	for i := 0; i < 64; i++ {
		require.True(t, q.EmitPointer(PointerEvent{DX: 1}))
	}
	assert.False(t, q.EmitPointer(PointerEvent{DX: 1}))

	require.True(t, q.EmitKey(KeyEvent{Code: KeyLeft, Press: true}))
	ev := <-q.Keyboard().Events()
	assert.Equal(t, KeyLeft, ev.Code)
}

func TestNewLogger(t *testing.T) {
	var buf bytes.Buffer
	log, err := NewLogger(&buf, "warn", false)
	require.NoError(t, err)

	log.Info().Msg("hidden")
	log.Warn().Str("k", "v").Msg("shown")
	assert.NotContains(t, buf.String(), "hidden")
	assert.Contains(t, buf.String(), `"k":"v"`)

	_, err = NewLogger(&buf, "loud", false)
	assert.Error(t, err)
}
