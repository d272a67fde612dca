package factory

import "errors"

var ErrUnknownKind = errors.New("factory: unknown kind")
