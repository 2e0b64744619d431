package translit

import (
	"errors"
	"fmt"
)

// Configuration errors reported by Compile. Use errors.Is to test for them.
var (
	ErrEmptyKey         = errors.New("empty key")
	ErrMissingDefault   = errors.New("rule has no default output")
	ErrContextKeyLength = errors.New("context override on multi-letter key")
	ErrKeyCollision     = errors.New("case variant collides with another key")
	ErrUnknownAlias     = errors.New("alias references unregistered rule")
)

// ConfigError identifies the table and key that failed to compile.
type ConfigError struct {
	Table  string // table name, e.g. "uk-Latn-K"
	Key    string // offending key as written or as derived
	Detail string // optional extra context
	Err    error
}

func (e *ConfigError) Error() string {
	msg := fmt.Sprintf("translit: table %s: key %q: %v", e.Table, e.Key, e.Err)
	if e.Detail != "" {
		msg += " (" + e.Detail + ")"
	}
	return msg
}

func (e *ConfigError) Unwrap() error {
	return e.Err
}
