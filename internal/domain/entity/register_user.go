package entity

import (
	"regexp"
	"unicode/utf8"

	"user-accounts/internal/domain"
)

var usernamePattern = regexp.MustCompile(`^\w+$`)

// RegisterUser is the validated registration record for create and update
// operations. It is built from the raw request payload and never carries an id;
// Password holds plaintext until the use case swaps in the digest.
type RegisterUser struct {
	Username string
	Password string
	Fullname string
	Role     string
}

// NewRegisterUser validates the raw payload and returns a normalized record.
// Checks run in order and the first violation wins: missing property, data
// type, username length, username charset.
func NewRegisterUser(payload map[string]any) (*RegisterUser, error) {
	fields := []string{"username", "password", "fullname", "role"}

	for _, f := range fields {
		if isFalsy(payload[f]) {
			return nil, domain.NewValidationError(domain.ErrRegisterUserMissingProperty)
		}
	}

	values := make(map[string]string, len(fields))
	for _, f := range fields {
		s, ok := payload[f].(string)
		if !ok {
			return nil, domain.NewValidationError(domain.ErrRegisterUserTypeMismatch)
		}
		values[f] = s
	}

	if utf8.RuneCountInString(values["username"]) > 50 {
		return nil, domain.NewValidationError(domain.ErrRegisterUserUsernameTooLong)
	}

	if !usernamePattern.MatchString(values["username"]) {
		return nil, domain.NewValidationError(domain.ErrRegisterUserUsernameRestricted)
	}

	return &RegisterUser{
		Username: values["username"],
		Password: values["password"],
		Fullname: values["fullname"],
		Role:     values["role"],
	}, nil
}

// isFalsy mirrors the truthiness rules of the JSON payloads we accept: a field
// is missing when absent, null, an empty string, false, or zero.
func isFalsy(v any) bool {
	switch x := v.(type) {
	case nil:
		return true
	case string:
		return x == ""
	case bool:
		return !x
	case float64:
		return x == 0
	default:
		return false
	}
}
