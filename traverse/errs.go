package traverse

import "errors"

var ErrExhausted = errors.New("traverse: no more elements")
