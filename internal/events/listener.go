package events

// ListenerFunc adapts a function into an EventListener
type ListenerFunc struct {
	id       string
	priority int
	fn       func(Event) error
}

// NewListenerFunc creates a listener from a function
func NewListenerFunc(id string, priority int, fn func(Event) error) *ListenerFunc {
	return &ListenerFunc{id: id, priority: priority, fn: fn}
}

func (l *ListenerFunc) ID() string                    { return l.id }
func (l *ListenerFunc) Priority() int                 { return l.priority }
func (l *ListenerFunc) HandleEvent(event Event) error { return l.fn(event) }
