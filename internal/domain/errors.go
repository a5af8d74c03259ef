package domain

import "errors"

// ErrElectorNotFound is the terminal outcome when the identity key has no
// primary person record. Distinct from an empty search result, which is a
// valid empty success.
var ErrElectorNotFound = errors.New("elector not found")

// ErrUsuarioNotFound reports a missing application account.
var ErrUsuarioNotFound = errors.New("usuario not found")

// ValidationKind classifies caller input errors. These are always detected
// before any query executes and are never retried.
type ValidationKind string

const (
	NoFilterProvided   ValidationKind = "no_filter_provided"
	InvalidNationality ValidationKind = "invalid_nationality"
	InvalidIdentifier  ValidationKind = "invalid_identifier"
	InvalidDate        ValidationKind = "invalid_date"
	MissingField       ValidationKind = "missing_field"
	InvalidUpload      ValidationKind = "invalid_upload"
)

// ValidationError reports malformed or out-of-range caller input. Message is
// safe to echo to the client.
type ValidationError struct {
	Kind    ValidationKind
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

func NewValidationError(kind ValidationKind, message string) *ValidationError {
	return &ValidationError{Kind: kind, Message: message}
}

// AsValidation unwraps err into a *ValidationError when it is one.
func AsValidation(err error) (*ValidationError, bool) {
	var ve *ValidationError
	if errors.As(err, &ve) {
		return ve, true
	}
	return nil, false
}
