package validate

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/inkpress/backend/internal/model"
)

func fields(t *testing.T, err error) []string {
	t.Helper()
	var ve *ValidationError
	require.True(t, errors.As(err, &ve), "expected *ValidationError, got %v", err)
	return ve.Fields
}

func TestSignupValid(t *testing.T) {
	in, err := Signup("  Ada Lovelace ", " ADA@Example.COM ", "secret-password")
	require.NoError(t, err)
	assert.Equal(t, "Ada Lovelace", in.Fullname)
	assert.Equal(t, "ada@example.com", in.Email, "email is lowercased")
	assert.Equal(t, "secret-password", in.Password)
}

func TestSignupCollectsAllFieldErrors(t *testing.T) {
	_, err := Signup("", "not-an-email", "short")
	msgs := fields(t, err)
	assert.Len(t, msgs, 3)
	assert.Contains(t, msgs, "Fullname is required")
	assert.Contains(t, msgs, "Please provide a valid email")
	assert.Contains(t, msgs, "Password must be at least 8 characters")
}

func TestSignupPasswordTooLong(t *testing.T) {
	_, err := Signup("Ada Lovelace", "ada@example.com", strings.Repeat("x", 61))
	assert.Contains(t, fields(t, err), "Password must not exceed 60 characters")
}

func TestLoginValid(t *testing.T) {
	in, err := Login("ada@example.com", "whatever")
	require.NoError(t, err)
	assert.Equal(t, "ada@example.com", in.Email)
}

func TestLoginMissingFields(t *testing.T) {
	_, err := Login("", "")
	msgs := fields(t, err)
	assert.Contains(t, msgs, "Email is required")
	assert.Contains(t, msgs, "Password is required")
}

func TestProfileBounds(t *testing.T) {
	_, err := Profile("ab")
	assert.Contains(t, fields(t, err), "Fullname length not less than 3 characters")

	_, err = Profile(strings.Repeat("x", 61))
	assert.Contains(t, fields(t, err), "Fullname length must not exceed 60 characters")

	in, err := Profile("Ada Lovelace")
	require.NoError(t, err)
	assert.Equal(t, "Ada Lovelace", in.Fullname)
}

func TestBlogValid(t *testing.T) {
	in, err := Blog(" Title ", "my-slug", "Body content", "active")
	require.NoError(t, err)
	assert.Equal(t, "Title", in.Title)
	assert.Equal(t, model.StatusActive, in.Status)
}

func TestBlogStatusDefaultsToInactive(t *testing.T) {
	in, err := Blog("Title", "my-slug", "Body content", "")
	require.NoError(t, err)
	assert.Equal(t, model.StatusInactive, in.Status)
}

func TestBlogRejectsUnknownStatus(t *testing.T) {
	_, err := Blog("Title", "my-slug", "Body content", "draft")
	assert.Contains(t, fields(t, err), "Please select a valid status")
}

func TestBlogLengthBounds(t *testing.T) {
	_, err := Blog("ab", strings.Repeat("s", 71), strings.Repeat("c", 8001), "active")
	msgs := fields(t, err)
	assert.Contains(t, msgs, "Title length not less than 3 characters")
	assert.Contains(t, msgs, "Slug length must not exceed 70 characters")
	assert.Contains(t, msgs, "Content length must not exceed 8000 characters")
}

func TestValidationErrorMessage(t *testing.T) {
	_, err := Blog("", "", "", "")
	require.Error(t, err)
	assert.Equal(t, "Title is required", err.Error(), "first field message doubles as the error string")
}
