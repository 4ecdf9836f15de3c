package envmap

import (
	"errors"
	"fmt"
)

var (
	// ErrNotString is matched by errors from Static, Public and Prefixed when
	// a value is unset or not a string.
	ErrNotString = errors.New("not a string")

	// ErrMissingPrefix is matched by errors from Public and Prefixed when a key
	// lacks the required prefix.
	ErrMissingPrefix = errors.New("missing required prefix")

	// ErrMissingOrNotString is matched by errors from Dynamic when a requested
	// key is absent or its value is not a string.
	ErrMissingOrNotString = errors.New("missing or not a string")
)

// Kind classifies a ValidationError.
type Kind int

const (
	KindNotString Kind = iota + 1
	KindMissingPrefix
	KindMissingOrNotString
)

func (k Kind) String() string {
	switch k {
	case KindNotString:
		return "not_string"
	case KindMissingPrefix:
		return "missing_prefix"
	case KindMissingOrNotString:
		return "missing_or_not_string"
	default:
		return fmt.Sprintf("kind(%d)", int(k))
	}
}

// ValidationError reports the first key that failed validation.
type ValidationError struct {
	Kind Kind
	Key  string
	// Value is the offending raw value; nil when the key was unset.
	Value any
	// Prefix is the required prefix for KindMissingPrefix.
	Prefix string
}

func (e *ValidationError) Error() string {
	switch e.Kind {
	case KindMissingPrefix:
		return fmt.Sprintf("key %q does not begin with %q but should for a public env", e.Key, e.Prefix)
	case KindMissingOrNotString:
		return fmt.Sprintf("expected env to have %q defined as a string but it is not", e.Key)
	default:
		return fmt.Sprintf("key %s must be a string but is %v", e.Key, e.Value)
	}
}

// Unwrap returns the sentinel error for e.Kind.
func (e *ValidationError) Unwrap() error {
	switch e.Kind {
	case KindMissingPrefix:
		return ErrMissingPrefix
	case KindMissingOrNotString:
		return ErrMissingOrNotString
	default:
		return ErrNotString
	}
}
