// Package observe provides subjects that fan events out to attached
// observers, and signals for callback-style connections. Attachment
// returns a token; identity is the token, never observer value
// equality, so two equal observers detach independently.
package observe

// Token identifies one attachment to a Subject or Signal.
type Token uint64

// Observer receives events of type E.
type Observer[E any] interface {
	Notify(event E)
}

// ObserverFunc adapts a function to Observer.
type ObserverFunc[E any] func(event E)

func (f ObserverFunc[E]) Notify(event E) { f(event) }

// Subject fans events out to attached observers in attachment order.
type Subject[E any] struct {
	next    Token
	tokens  []Token
	entries map[Token]Observer[E]
}

func NewSubject[E any]() *Subject[E] {
	return &Subject[E]{entries: map[Token]Observer[E]{}}
}

// Attach registers o and returns its detach token. A nil observer
// panics.
func (s *Subject[E]) Attach(o Observer[E]) Token {
	if o == nil {
		panic("observe: attach nil observer")
	}
	s.next++
	tok := s.next
	s.tokens = append(s.tokens, tok)
	s.entries[tok] = o
	return tok
}

// Detach removes the attachment for tok, reporting whether it existed.
func (s *Subject[E]) Detach(tok Token) bool {
	if _, ok := s.entries[tok]; !ok {
		return false
	}
	delete(s.entries, tok)
	for i, t := range s.tokens {
		if t == tok {
			s.tokens = append(s.tokens[:i], s.tokens[i+1:]...)
			break
		}
	}
	return true
}

func (s *Subject[E]) Len() int { return len(s.entries) }

// Notify delivers event to every observer attached when the call
// started. Observers detached mid-notify by earlier observers are
// skipped; ones attached mid-notify wait for the next event.
func (s *Subject[E]) Notify(event E) {
	snapshot := make([]Token, len(s.tokens))
	copy(snapshot, s.tokens)
	for _, tok := range snapshot {
		if o, ok := s.entries[tok]; ok {
			o.Notify(event)
		}
	}
}
