package build

import "errors"

var (
	ErrNoComponentType = errors.New("build: no component type available for leaf")
	ErrNoStructure     = errors.New("build: structural kind not selected")
	ErrValidation      = errors.New("build: validation failed")
)
