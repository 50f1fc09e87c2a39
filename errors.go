package hierarchy

import "errors"

var (
	ErrNilGraph           = errors.New("hierarchy: nil graph")
	ErrNilNode            = errors.New("hierarchy: nil node")
	ErrMalformedComponent = errors.New("hierarchy: malformed component")
	ErrCycle              = errors.New("hierarchy: cycle detected")
	ErrTooDeep            = errors.New("hierarchy: tree too deep")
	ErrUnknownEasing      = errors.New("hierarchy: unknown easing")
)
