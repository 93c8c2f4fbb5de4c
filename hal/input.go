package hal

type keyStream chan KeyEvent

func (k keyStream) Events() <-chan KeyEvent { return k }

type pointerStream chan PointerEvent

func (p pointerStream) Events() <-chan PointerEvent { return p }

// InputQueue is a buffered Input fed by a runner. Events are dropped when the
// consumer falls behind.
type InputQueue struct {
	keys    keyStream
	pointer pointerStream
}

var _ Input = (*InputQueue)(nil)

func NewInputQueue() *InputQueue {
	return &InputQueue{
		keys:    make(keyStream, 64),
		pointer: make(pointerStream, 64),
	}
}

func (q *InputQueue) Keyboard() Keyboard { return q.keys }
func (q *InputQueue) Pointer() Pointer   { return q.pointer }

// EmitKey queues a key event and reports whether it was accepted.
func (q *InputQueue) EmitKey(ev KeyEvent) bool {
	select {
	case q.keys <- ev:
		return true
	default:
		return false
	}
}

// EmitPointer queues a pointer event and reports whether it was accepted.
func (q *InputQueue) EmitPointer(ev PointerEvent) bool {
	if ev == (PointerEvent{}) {
		return false
	}
	select {
	case q.pointer <- ev:
		return true
	default:
		return false
	}
}
