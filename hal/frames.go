package hal

import (
	"runtime/debug"
	"sync"
)

// FrameHandle identifies a scheduled frame callback. Zero is never issued.
type FrameHandle uint64

// FrameQueue is a display-refresh scheduler: callbacks scheduled before a
// frame starts run once on that frame; callbacks scheduled while a frame is
// running wait for the next one. The zero value is ready to use.
type FrameQueue struct {
	mu      sync.Mutex
	next    FrameHandle
	pending map[FrameHandle]func()
	order   []FrameHandle
	frames  uint64
	onPanic PanicHandler
}

// PanicHandler receives a value recovered from a frame callback together with
// the goroutine stack at the point of the panic.
type PanicHandler func(v any, stack []byte)

// NewFrameQueue returns an empty queue.
func NewFrameQueue() *FrameQueue {
	return &FrameQueue{pending: make(map[FrameHandle]func())}
}

// Schedule queues cb for the next frame. A nil callback is ignored and
// yields the zero handle.
func (q *FrameQueue) Schedule(cb func()) FrameHandle {
	if cb == nil {
		return 0
	}
	q.mu.Lock()
	defer q.mu.Unlock()
	if q.pending == nil {
		q.pending = make(map[FrameHandle]func())
	}
	q.next++
	h := q.next
	q.pending[h] = cb
	q.order = append(q.order, h)
	return h
}

// Cancel drops a pending callback. Unknown or already-run handles are ignored.
func (q *FrameQueue) Cancel(h FrameHandle) {
	q.mu.Lock()
	defer q.mu.Unlock()
	delete(q.pending, h)
}

// SetPanicHandler makes RunFrame recover callback panics and report them to
// fn; the remaining callbacks of the frame still run. With no handler a panic
// propagates to the caller of RunFrame.
func (q *FrameQueue) SetPanicHandler(fn PanicHandler) {
	q.mu.Lock()
	q.onPanic = fn
	q.mu.Unlock()
}

// RunFrame runs the callbacks due on this frame and returns how many ran.
func (q *FrameQueue) RunFrame() int {
	q.mu.Lock()
	due := q.order
	q.order = nil
	q.frames++
	q.mu.Unlock()

	ran := 0
	for _, h := range due {
		q.mu.Lock()
		cb, ok := q.pending[h]
		delete(q.pending, h)
		onPanic := q.onPanic
		q.mu.Unlock()
		if !ok {
			continue
		}
		run(cb, onPanic)
		ran++
	}
	return ran
}

// Pending reports how many callbacks are waiting.
func (q *FrameQueue) Pending() int {
	q.mu.Lock()
	defer q.mu.Unlock()
	return len(q.pending)
}

// Frames reports how many frames have run.
func (q *FrameQueue) Frames() uint64 {
	q.mu.Lock()
	defer q.mu.Unlock()
	return q.frames
}

func run(cb func(), onPanic PanicHandler) {
	if onPanic != nil {
		defer func() {
			if v := recover(); v != nil {
				onPanic(v, debug.Stack())
			}
		}()
	}
	cb()
}
