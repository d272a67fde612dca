package observe

// Signal connects plain functions instead of Observer values.
// Emission order is connection order.
type Signal[E any] struct {
	subject *Subject[E]
}

func NewSignal[E any]() *Signal[E] {
	return &Signal[E]{subject: NewSubject[E]()}
}

// Connect registers slot and returns its disconnect token. A nil slot
// panics.
func (s *Signal[E]) Connect(slot func(event E)) Token {
	if slot == nil {
		panic("observe: connect nil slot")
	}
	return s.subject.Attach(ObserverFunc[E](slot))
}

func (s *Signal[E]) Disconnect(tok Token) bool {
	return s.subject.Detach(tok)
}

func (s *Signal[E]) DisconnectAll() {
	s.subject = NewSubject[E]()
}

func (s *Signal[E]) Len() int { return s.subject.Len() }

func (s *Signal[E]) Emit(event E) {
	s.subject.Notify(event)
}
