package visit

import "errors"

var (
	ErrLeafType  = errors.New("visit: leaf value type mismatch")
	ErrNoHandler = errors.New("visit: no handler registered for type")
)
