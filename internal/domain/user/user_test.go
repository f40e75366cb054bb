package user

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewUser(t *testing.T) {
	u, err := NewUser(" Dana ", "dana@example.com", RoleSupport)
	require.NoError(t, err)
	assert.Equal(t, "Dana", u.Name())
	assert.Zero(t, u.ID())

	require.NoError(t, u.SetID(4))
	assert.Error(t, u.SetID(5), "id is immutable once set")

	_, err = NewUser("", "x@example.com", RoleClient)
	assert.Error(t, err)
	_, err = NewUser("x", "x@example.com", Role("OWNER"))
	assert.Error(t, err)
}

func TestRole(t *testing.T) {
	tests := []struct {
		role    Role
		staff   bool
		admin   bool
		isValid bool
	}{
		{RoleAdmin, true, true, true},
		{RoleSupport, true, false, true},
		{RoleClient, false, false, true},
		{Role("GUEST"), false, false, false},
	}

	for _, tt := range tests {
		t.Run(string(tt.role), func(t *testing.T) {
			assert.Equal(t, tt.staff, tt.role.IsStaff())
			assert.Equal(t, tt.admin, tt.role.IsAdmin())
			assert.Equal(t, tt.isValid, tt.role.IsValid())
		})
	}

	_, err := NewRole("support")
	assert.Error(t, err, "roles are case sensitive")
}
