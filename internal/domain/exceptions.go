package domain

import (
	"errors"
	"net/http"
)

// ClientError is a request-scoped failure that maps to a 4xx response.
// The message is client-facing and already localized.
type ClientError struct {
	Status  int
	Message string
}

func (e *ClientError) Error() string { return e.Message }

// NewInvariantError reports a business-rule violation (400).
func NewInvariantError(message string) *ClientError {
	return &ClientError{Status: http.StatusBadRequest, Message: message}
}

// NewNotFoundError reports a missing lookup/delete target (404).
func NewNotFoundError(message string) *ClientError {
	return &ClientError{Status: http.StatusNotFound, Message: message}
}

// NewAuthenticationError reports failed credential verification (401).
func NewAuthenticationError(message string) *ClientError {
	return &ClientError{Status: http.StatusUnauthorized, Message: message}
}

// NewAuthorizationError reports an authenticated caller lacking the required role (403).
func NewAuthorizationError(message string) *ClientError {
	return &ClientError{Status: http.StatusForbidden, Message: message}
}

// ValidationError carries a domain validation code raised by entity
// construction. Codes are translated to client messages by Translate.
type ValidationError struct {
	Code string
}

func (e *ValidationError) Error() string { return e.Code }

func NewValidationError(code string) *ValidationError {
	return &ValidationError{Code: code}
}

// NotImplementedError signals an abstract repository method invoked without a
// concrete binding. It is only reachable from misconfigured test doubles.
type NotImplementedError struct {
	Method string
}

func (e *NotImplementedError) Error() string {
	return "USER_REPOSITORY.METHOD_NOT_IMPLEMENTED"
}

// Validation codes raised by RegisterUser.
const (
	ErrRegisterUserMissingProperty      = "REGISTER_USER.NOT_CONTAIN_NEEDED_PROPERTY"
	ErrRegisterUserTypeMismatch         = "REGISTER_USER.NOT_MEET_DATA_TYPE_SPECIFICATION"
	ErrRegisterUserUsernameTooLong      = "REGISTER_USER.USERNAME_LIMIT_CHAR"
	ErrRegisterUserUsernameRestricted   = "REGISTER_USER.USERNAME_CONTAIN_RESTRICTED_CHARACTER"
	ErrAuthenticationPayloadNotComplete = "USER_LOGIN.NOT_CONTAIN_NEEDED_PROPERTY"
)

var validationMessages = map[string]string{
	ErrRegisterUserMissingProperty:      "tidak dapat membuat user baru karena properti yang dibutuhkan tidak ada",
	ErrRegisterUserTypeMismatch:         "tidak dapat membuat user baru karena tipe data tidak sesuai",
	ErrRegisterUserUsernameTooLong:      "tidak dapat membuat user baru karena karakter username melebihi batas limit",
	ErrRegisterUserUsernameRestricted:   "tidak dapat membuat user baru karena username mengandung karakter terlarang",
	ErrAuthenticationPayloadNotComplete: "harus mengirimkan username dan password",
}

// Translate maps validation codes to localized client errors. Errors that are
// not validation codes, or codes with no registered message, pass through
// unchanged so the boundary treats them as server faults.
func Translate(err error) error {
	var ve *ValidationError
	if errors.As(err, &ve) {
		if msg, ok := validationMessages[ve.Code]; ok {
			return NewInvariantError(msg)
		}
	}
	return err
}
