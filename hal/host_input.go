package hal

// hostInput buffers events for the app step. The window polls ebiten into it;
// the headless runner and tests feed it with Inject.
type hostInput struct {
	ch chan InputEvent

	down    bool
	lastX   int
	lastY   int
	buttons int
}

func newHostInput() *hostInput {
	return &hostInput{ch: make(chan InputEvent, 256)}
}

func (in *hostInput) Events() <-chan InputEvent { return in.ch }

func (in *hostInput) emit(ev InputEvent) bool {
	select {
	case in.ch <- ev:
		return true
	default:
		return false
	}
}

// Inject queues ev on a host HAL's input. It reports false when h is not a
// host HAL or the queue is full.
func Inject(h HAL, ev InputEvent) bool {
	hh, ok := h.(*hostHAL)
	if !ok {
		return false
	}
	return hh.input.emit(ev)
}
