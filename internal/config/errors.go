package config

import "fmt"

// Validation error kinds.
const (
	KindMissingRequiredField = "missing-required-field"
	KindDuplicateName        = "duplicate-name"
	KindInvalidTier          = "invalid-tier"
)

// ValidationError reports a malformed or inconsistent document, or an
// out-of-range enumerated value. It is deterministic: the same input always
// produces the same error.
type ValidationError struct {
	Kind       string
	Field      string
	Collection string
	Name       string
}

func (e *ValidationError) Error() string {
	switch e.Kind {
	case KindMissingRequiredField:
		return fmt.Sprintf("%s: %q", e.Kind, e.Field)
	case KindDuplicateName:
		return fmt.Sprintf("%s: %q in %s", e.Kind, e.Name, e.Collection)
	case KindInvalidTier:
		return fmt.Sprintf("%s: %q", e.Kind, e.Field)
	default:
		return e.Kind
	}
}

// MissingRequiredField reports an empty required scalar.
func MissingRequiredField(field string) *ValidationError {
	return &ValidationError{Kind: KindMissingRequiredField, Field: field}
}

// DuplicateName reports two elements sharing a name within a collection.
func DuplicateName(collection, name string) *ValidationError {
	return &ValidationError{Kind: KindDuplicateName, Collection: collection, Name: name}
}

// InvalidTier reports a tier value outside the known set.
func InvalidTier(tier string) *ValidationError {
	return &ValidationError{Kind: KindInvalidTier, Field: tier}
}
