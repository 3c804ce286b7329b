// internal/event/event.go
package event

// EventType — тип события
type EventType string

// Event — структура события
type Event struct {
	Type EventType
	Data interface{} // payload, see types.go for what each type carries
}

// Listener — интерфейс для подписчиков на события
type Listener interface {
	OnEvent(event Event)
}

// ListenerFunc adapts a plain function to Listener.
type ListenerFunc func(event Event)

// OnEvent calls f(event).
func (f ListenerFunc) OnEvent(event Event) {
	f(event)
}

type subscriber struct {
	id       uint64
	listener Listener
	active   bool
}

// Dispatcher delivers events synchronously to the listeners subscribed to
// their type, in subscription order. It is not safe for concurrent use; the
// whole arena advances on a single tick loop.
type Dispatcher struct {
	listeners map[EventType][]*subscriber
	nextID    uint64
}

// NewDispatcher — создаёт новый диспетчер
func NewDispatcher() *Dispatcher {
	return &Dispatcher{
		listeners: make(map[EventType][]*subscriber),
	}
}

// Subscribe registers listener for eventType and returns the handle that
// removes it again. A nil listener is ignored and yields a zero handle.
func (d *Dispatcher) Subscribe(eventType EventType, listener Listener) Subscription {
	if listener == nil {
		return Subscription{}
	}
	d.nextID++
	sub := &subscriber{id: d.nextID, listener: listener, active: true}
	d.listeners[eventType] = append(d.listeners[eventType], sub)
	return Subscription{dispatcher: d, eventType: eventType, id: sub.id}
}

// SubscribeFunc is Subscribe for a plain function.
func (d *Dispatcher) SubscribeFunc(eventType EventType, fn func(Event)) Subscription {
	if fn == nil {
		return Subscription{}
	}
	return d.Subscribe(eventType, ListenerFunc(fn))
}

// unsubscribe reports whether the subscription was still registered.
func (d *Dispatcher) unsubscribe(eventType EventType, id uint64) bool {
	listeners, exists := d.listeners[eventType]
	if !exists {
		return false
	}
	for i, sub := range listeners {
		if sub.id == id {
			sub.active = false
			d.listeners[eventType] = append(listeners[:i:i], listeners[i+1:]...)
			if len(d.listeners[eventType]) == 0 {
				delete(d.listeners, eventType)
			}
			return true
		}
	}
	return false
}

// Dispatch — отправка события всем подписчикам.
// Listeners removed during delivery are skipped, listeners added during
// delivery only see the next event.
func (d *Dispatcher) Dispatch(event Event) {
	listeners, exists := d.listeners[event.Type]
	if !exists || len(listeners) == 0 {
		return
	}
	snapshot := make([]*subscriber, len(listeners))
	copy(snapshot, listeners)
	for _, sub := range snapshot {
		if !sub.active {
			continue
		}
		sub.listener.OnEvent(event)
	}
}

// ListenerCount returns how many listeners are subscribed to eventType.
func (d *Dispatcher) ListenerCount(eventType EventType) int {
	return len(d.listeners[eventType])
}

// Clear drops every subscription. Handles issued before stay safe to use.
func (d *Dispatcher) Clear() {
	for _, listeners := range d.listeners {
		for _, sub := range listeners {
			sub.active = false
		}
	}
	d.listeners = make(map[EventType][]*subscriber)
}

// Subscription is the handle returned by Subscribe. The zero value is valid
// and Unsubscribe on it does nothing.
type Subscription struct {
	dispatcher *Dispatcher
	eventType  EventType
	id         uint64
}

// Unsubscribe removes the listener. Calling it more than once, or after the
// dispatcher was cleared, is a no-op. It reports whether anything was removed.
func (s Subscription) Unsubscribe() bool {
	if s.dispatcher == nil {
		return false
	}
	return s.dispatcher.unsubscribe(s.eventType, s.id)
}
