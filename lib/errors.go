package lib

import (
	"fmt"
)

// ConfigError is a missing or unreadable setting, detected before any api call.
type ConfigError struct {
	Field string
	Err   error
}

func (e *ConfigError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s", e.Field, e.Err)
	}
	return e.Field + " is required"
}

func (e *ConfigError) Unwrap() error {
	return e.Err
}

// ProviderError carries an ec2 api failure through without altering its message.
type ProviderError struct {
	Err error
}

func (e *ProviderError) Error() string {
	return e.Err.Error()
}

func (e *ProviderError) Unwrap() error {
	return e.Err
}

type AmbiguousTargetError struct {
	Count int
}

func (e *AmbiguousTargetError) Error() string {
	return "multiple hosts matched, be more specific"
}

type NoMatchError struct{}

func (e *NoMatchError) Error() string {
	return "no hosts matched"
}

type NoAddressError struct {
	Name string
}

func (e *NoAddressError) Error() string {
	return e.Name + " has no public address"
}

type PatternError struct {
	Which   string
	Pattern string
	Err     error
}

func (e *PatternError) Error() string {
	return fmt.Sprintf("invalid %s pattern %q: %s", e.Which, e.Pattern, e.Err)
}

func (e *PatternError) Unwrap() error {
	return e.Err
}
