package encode

import "errors"

var (
	ErrBadDocument = errors.New("encode: bad tree document")
	ErrLeafPayload = errors.New("encode: unsupported leaf payload")
)
