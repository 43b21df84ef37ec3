package validation

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRequired(t *testing.T) {
	assert.NoError(t, Required(Field{"email", "a@b.c"}, Field{"password", "x"}))

	err := Required(Field{"email", "  "}, Field{"password", ""})
	assert.ErrorIs(t, err, ErrRequired)
	assert.EqualError(t, err, "email is required")

	err = Required(Field{"email", "a@b.c"}, Field{"password", ""})
	assert.EqualError(t, err, "password is required")
}

func TestEmail(t *testing.T) {
	assert.NoError(t, Email("me@example.com"))
	assert.ErrorIs(t, Email(""), ErrRequired)
	assert.Error(t, Email("not-an-email"))
}

func TestPassword(t *testing.T) {
	assert.Error(t, Password("short"))
	assert.NoError(t, Password("long enough password"))
}
