package entity_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"user-accounts/internal/domain"
	"user-accounts/internal/domain/entity"
)

func validPayload() map[string]any {
	return map[string]any{
		"username": "developer",
		"password": "secret",
		"fullname": "Developer Indonesia",
		"role":     "User",
	}
}

func assertValidationCode(t *testing.T, err error, code string) {
	t.Helper()
	var ve *domain.ValidationError
	require.ErrorAs(t, err, &ve)
	assert.Equal(t, code, ve.Code)
}

func TestNewRegisterUser_Valid(t *testing.T) {
	user, err := entity.NewRegisterUser(validPayload())

	require.NoError(t, err)
	assert.Equal(t, "developer", user.Username)
	assert.Equal(t, "secret", user.Password)
	assert.Equal(t, "Developer Indonesia", user.Fullname)
	assert.Equal(t, "User", user.Role)
}

func TestNewRegisterUser_MissingProperty(t *testing.T) {
	for _, field := range []string{"username", "password", "fullname", "role"} {
		payload := validPayload()
		delete(payload, field)

		_, err := entity.NewRegisterUser(payload)

		assertValidationCode(t, err, domain.ErrRegisterUserMissingProperty)
	}
}

func TestNewRegisterUser_EmptyStringIsMissing(t *testing.T) {
	payload := validPayload()
	payload["fullname"] = ""

	_, err := entity.NewRegisterUser(payload)

	assertValidationCode(t, err, domain.ErrRegisterUserMissingProperty)
}

func TestNewRegisterUser_TypeMismatch(t *testing.T) {
	cases := []any{
		[]any{"Developer Indonesia"},
		float64(123),
		map[string]any{"name": "dev"},
		true,
	}

	for _, value := range cases {
		payload := validPayload()
		payload["fullname"] = value

		_, err := entity.NewRegisterUser(payload)

		assertValidationCode(t, err, domain.ErrRegisterUserTypeMismatch)
	}
}

func TestNewRegisterUser_MissingWinsOverType(t *testing.T) {
	payload := validPayload()
	delete(payload, "username")
	payload["fullname"] = []any{"Developer Indonesia"}

	_, err := entity.NewRegisterUser(payload)

	assertValidationCode(t, err, domain.ErrRegisterUserMissingProperty)
}

func TestNewRegisterUser_UsernameTooLong(t *testing.T) {
	payload := validPayload()
	payload["username"] = strings.Repeat("a", 51)

	_, err := entity.NewRegisterUser(payload)

	assertValidationCode(t, err, domain.ErrRegisterUserUsernameTooLong)
}

func TestNewRegisterUser_UsernameAtLimit(t *testing.T) {
	payload := validPayload()
	payload["username"] = strings.Repeat("a", 50)

	user, err := entity.NewRegisterUser(payload)

	require.NoError(t, err)
	assert.Len(t, user.Username, 50)
}

func TestNewRegisterUser_UsernameRestrictedCharacter(t *testing.T) {
	for _, username := range []string{"developer indonesia", "developer!", "dev-eloper", "dev.eloper"} {
		payload := validPayload()
		payload["username"] = username

		_, err := entity.NewRegisterUser(payload)

		assertValidationCode(t, err, domain.ErrRegisterUserUsernameRestricted)
	}
}

func TestNewRegisterUser_UsernameWordCharactersAllowed(t *testing.T) {
	payload := validPayload()
	payload["username"] = "dev_eloper123"

	user, err := entity.NewRegisterUser(payload)

	require.NoError(t, err)
	assert.Equal(t, "dev_eloper123", user.Username)
}

func TestNewRegisterUser_UsernameLengthCountsCharactersNotBytes(t *testing.T) {
	payload := validPayload()
	// 26 characters but 52 bytes; must reach the charset check, not fail on length
	payload["username"] = strings.Repeat("é", 26)

	_, err := entity.NewRegisterUser(payload)

	assertValidationCode(t, err, domain.ErrRegisterUserUsernameRestricted)
}

func TestNewRegisterUser_MultibyteUsernameOverLimit(t *testing.T) {
	payload := validPayload()
	payload["username"] = strings.Repeat("é", 51)

	_, err := entity.NewRegisterUser(payload)

	assertValidationCode(t, err, domain.ErrRegisterUserUsernameTooLong)
}

func TestNewRegisterUser_LengthWinsOverCharset(t *testing.T) {
	payload := validPayload()
	payload["username"] = strings.Repeat("a b", 20) // 60 chars, also restricted

	_, err := entity.NewRegisterUser(payload)

	assertValidationCode(t, err, domain.ErrRegisterUserUsernameTooLong)
}

func TestRegisteredUser_StructuralEquality(t *testing.T) {
	a := entity.RegisteredUser{ID: "user-123", Username: "developer", Fullname: "Developer Indonesia", Role: "User"}
	b := entity.RegisteredUser{ID: "user-123", Username: "developer", Fullname: "Developer Indonesia", Role: "User"}

	assert.Equal(t, a, b)
}
