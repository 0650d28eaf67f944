package config

import "errors"

var (
	ErrInvalidTarget   = errors.New("target must be a power of two >= 4")
	ErrUnknownMode     = errors.New("unknown mode")
	ErrInvalidTickRate = errors.New("tick rate must be positive")
	ErrInvalidTimeout  = errors.New("idle timeout must not be negative")
	ErrUnknownLogLevel = errors.New("unknown log level")
)
