package service

import (
	"strings"

	"github.com/google/uuid"
)

// namedField pairs an updatable field name with its supplied value, so
// update validation walks fields in a fixed, explicit order and the first
// violation wins.
type namedField struct {
	name  string
	value *string
}

// isUUID reports whether s has the UUID shape expected of user, post,
// and comment identifiers.
func isUUID(s string) bool {
	_, err := uuid.Parse(s)
	return err == nil
}

// anyProvided reports whether at least one field was supplied with a
// non-blank value after trimming.
func anyProvided(fields []namedField) bool {
	for _, f := range fields {
		if f.value != nil && strings.TrimSpace(*f.value) != "" {
			return true
		}
	}
	return false
}

// firstBlank returns the name of the first supplied field that is blank
// after trimming, in field order. When includeEmpty is false a supplied
// empty string is skipped rather than reported blank.
func firstBlank(fields []namedField, includeEmpty bool) (string, bool) {
	for _, f := range fields {
		if f.value == nil {
			continue
		}
		if !includeEmpty && *f.value == "" {
			continue
		}
		if strings.TrimSpace(*f.value) == "" {
			return f.name, true
		}
	}
	return "", false
}

// trimmed returns a pointer to the trimmed value when the field carries a
// usable (non-blank) value, nil otherwise.
func trimmed(value *string) *string {
	if value == nil {
		return nil
	}
	t := strings.TrimSpace(*value)
	if t == "" {
		return nil
	}
	return &t
}
