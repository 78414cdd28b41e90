package domain

import "errors"

// Domain errors.
var (
	ErrUnsupportedKind  = errors.New("unsupported task kind")
	ErrIndexOutOfRange  = errors.New("task index out of range")
	ErrObserverNotFound = errors.New("observer not found")
	ErrInvalidLogLevel  = errors.New("invalid log level")
)
