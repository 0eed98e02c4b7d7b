package engine

// ListenerID identifies a subscription so it can be removed later.
type ListenerID uint64

type listener[T any] struct {
	id ListenerID
	fn func(T)
}

// Event is a multi-cast event carrying one argument.
// Listeners run synchronously, in subscription order, on the goroutine calling Invoke.
type Event[T any] struct {
	nextID    ListenerID
	listeners []listener[T]
}

// AddListener subscribes fn and returns a handle for RemoveListener.
// A nil fn is ignored and yields the zero ID.
func (e *Event[T]) AddListener(fn func(T)) ListenerID {
	if fn == nil {
		return 0
	}
	e.nextID++
	e.listeners = append(e.listeners, listener[T]{id: e.nextID, fn: fn})
	return e.nextID
}

// RemoveListener drops the subscription with the given ID. Unknown IDs are ignored.
func (e *Event[T]) RemoveListener(id ListenerID) {
	for i, l := range e.listeners {
		if l.id == id {
			e.listeners = append(e.listeners[:i], e.listeners[i+1:]...)
			return
		}
	}
}

func (e *Event[T]) RemoveAllListeners() {
	e.listeners = nil
}

// Invoke calls every listener with arg.
func (e *Event[T]) Invoke(arg T) {
	for _, l := range e.listeners {
		l.fn(arg)
	}
}

func (e *Event[T]) ListenerCount() int {
	return len(e.listeners)
}
