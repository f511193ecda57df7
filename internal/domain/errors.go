package domain

import (
	"errors"
	"fmt"
)

var (
	ErrOrderNotFound       = errors.New("order not found")
	ErrCurrencyNotFound    = errors.New("currency not found")
	ErrModuleDisabled      = errors.New("payment module is disabled")
	ErrTokenCreateFailed   = errors.New("gateway token creation failed")
	ErrVerificationTimeout = errors.New("verification attempts exhausted")
)

// ConfigurationError means merchant credentials or currency metadata are
// missing. The module must stay inert rather than fail mid-checkout.
type ConfigurationError struct {
	Field string
}

func (e *ConfigurationError) Error() string {
	return fmt.Sprintf("configuration error: missing %s", e.Field)
}

// TransportError wraps a network or remote failure talking to the gateway.
// It is never retried below the verification poller's own bound.
type TransportError struct {
	Op  string
	Err error
}

func (e *TransportError) Error() string {
	return fmt.Sprintf("gateway transport error during %s: %v", e.Op, e.Err)
}

func (e *TransportError) Unwrap() error {
	return e.Err
}
