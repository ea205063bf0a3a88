//go:build unit

package user_test

import (
	"strings"
	"testing"

	"geresaco/internal/domain/user"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewEmail(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		input   string
		want    string
		wantErr bool
	}{
		{name: "plain address", input: "ana@example.com", want: "ana@example.com"},
		{name: "subdomain", input: "ana@mail.example.co", want: "ana@mail.example.co"},
		{name: "plus tag", input: "ana+reservas@example.com", want: "ana+reservas@example.com"},
		{name: "surrounding whitespace trimmed", input: "  ana@example.com  ", want: "ana@example.com"},
		{name: "missing at", input: "ana.example.com", wantErr: true},
		{name: "missing tld", input: "ana@example", wantErr: true},
		{name: "empty", input: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got, err := user.NewEmail(tt.input)
			if tt.wantErr {
				assert.ErrorIs(t, err, user.ErrInvalidEmail)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got.Value())
		})
	}
}

func TestNewName(t *testing.T) {
	t.Parallel()

	name, err := user.NewName("  Ana María  ")
	require.NoError(t, err)
	assert.Equal(t, "Ana María", name.Value())

	_, err = user.NewName("   ")
	assert.ErrorIs(t, err, user.ErrInvalidName)

	_, err = user.NewName(strings.Repeat("a", 256))
	assert.ErrorIs(t, err, user.ErrInvalidName)
}

func TestNewPassword(t *testing.T) {
	t.Parallel()

	_, err := user.NewPassword("secreto")
	require.NoError(t, err)

	_, err = user.NewPassword("corta")
	assert.ErrorIs(t, err, user.ErrPasswordTooWeak)
}

func TestNewRole(t *testing.T) {
	t.Parallel()

	role, err := user.NewRole("admin")
	require.NoError(t, err)
	assert.Equal(t, user.RoleAdmin, role)

	role, err = user.NewRole("user")
	require.NoError(t, err)
	assert.Equal(t, user.RoleUser, role)

	_, err = user.NewRole("superadmin")
	assert.ErrorIs(t, err, user.ErrInvalidRole)
}

func TestUserIsAdmin(t *testing.T) {
	t.Parallel()

	name, err := user.NewName("Ana")
	require.NoError(t, err)
	email, err := user.NewEmail("ana@example.com")
	require.NoError(t, err)

	admin := user.NewUser(name, email, "hash", user.RoleAdmin)
	assert.True(t, admin.IsAdmin())

	regular := user.NewUser(name, email, "hash", user.RoleUser)
	assert.False(t, regular.IsAdmin())
}

func TestReconstructNameAndEmail(t *testing.T) {
	t.Parallel()

	// Rehydration trusts the stored row even when today's rules would reject it.
	name := user.ReconstructName("")
	assert.Equal(t, "", name.Value())

	email := user.ReconstructEmail("legacy-address")
	assert.Equal(t, "legacy-address", email.Value())
}
