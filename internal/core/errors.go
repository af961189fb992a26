package core

import (
	"errors"
	"sort"
	"strings"
)

var (
	ErrNotFound               = errors.New("document not found")
	ErrStoreUnavailable       = errors.New("document store unavailable")
	ErrInvalidCredentials     = errors.New("invalid email or password")
	ErrDefaultAccountReadOnly = errors.New("the default admin account password cannot be changed")
	ErrForbidden              = errors.New("page not allowed for this account")
	ErrImageTooLarge          = errors.New("image exceeds the 700KB limit")
	ErrNotImage               = errors.New("file is not an image")
)

// ValidationErrors maps a form field name to its inline error message.
type ValidationErrors map[string]string

func (v ValidationErrors) Error() string {
	keys := make([]string, 0, len(v))
	for k := range v {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	parts := make([]string, 0, len(keys))
	for _, k := range keys {
		parts = append(parts, k+": "+v[k])
	}
	return "validation failed: " + strings.Join(parts, "; ")
}

// Add records msg for field unless the field already has an error.
func (v ValidationErrors) Add(field, msg string) {
	if _, ok := v[field]; !ok {
		v[field] = msg
	}
}

// Err returns v as an error, or nil when empty.
func (v ValidationErrors) Err() error {
	if len(v) == 0 {
		return nil
	}
	return v
}
