package stepper

// Subscription is a handle to a registered event handler. Dispose removes
// the handler and is safe to call more than once.
type Subscription interface {
	Dispose()
}

// SubscriptionFunc adapts a function to Subscription.
type SubscriptionFunc func()

// Dispose implements Subscription.
func (f SubscriptionFunc) Dispose() {
	if f != nil {
		f()
	}
}

// Subscriptions collects handles so they can be released together.
type Subscriptions struct {
	subs []Subscription
}

// Add records a subscription. Nil subscriptions are ignored.
func (s *Subscriptions) Add(sub Subscription) {
	if sub == nil {
		return
	}
	s.subs = append(s.subs, sub)
}

// Len returns the number of live subscriptions.
func (s *Subscriptions) Len() int {
	return len(s.subs)
}

// Dispose releases every collected subscription in reverse order.
func (s *Subscriptions) Dispose() {
	for i := len(s.subs) - 1; i >= 0; i-- {
		s.subs[i].Dispose()
	}
	s.subs = nil
}

// Emitter fans an event out to its subscribers. Host adapters embed one
// per event they expose. The zero value is ready to use.
type Emitter[T any] struct {
	next     int
	handlers map[int]func(T)
	order    []int
}

// Subscribe registers fn and returns the handle that removes it.
func (e *Emitter[T]) Subscribe(fn func(T)) Subscription {
	if e.handlers == nil {
		e.handlers = make(map[int]func(T))
	}
	id := e.next
	e.next++
	e.handlers[id] = fn
	e.order = append(e.order, id)

	return SubscriptionFunc(func() {
		if _, ok := e.handlers[id]; !ok {
			return
		}
		delete(e.handlers, id)
		for i, v := range e.order {
			if v == id {
				e.order = append(e.order[:i], e.order[i+1:]...)
				break
			}
		}
	})
}

// Emit calls every handler in subscription order. Handlers removed during
// emission are skipped.
func (e *Emitter[T]) Emit(v T) {
	ids := append([]int(nil), e.order...)
	for _, id := range ids {
		if fn, ok := e.handlers[id]; ok {
			fn(v)
		}
	}
}

// Len returns the number of registered handlers.
func (e *Emitter[T]) Len() int {
	return len(e.handlers)
}
