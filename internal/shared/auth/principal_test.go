package auth

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRoleValid(t *testing.T) {
	assert.True(t, RoleUser.Valid())
	assert.True(t, RoleModerator.Valid())
	assert.True(t, RoleAdmin.Valid())

	assert.False(t, Role("superadmin").Valid())
	assert.False(t, Role("").Valid())
}

func TestRoleAtLeast(t *testing.T) {
	assert.True(t, RoleAdmin.AtLeast(RoleUser))
	assert.True(t, RoleModerator.AtLeast(RoleModerator))
	assert.False(t, RoleUser.AtLeast(RoleModerator))
}

func TestPrincipalIsAdmin(t *testing.T) {
	assert.True(t, Principal{Role: RoleAdmin}.IsAdmin())
	assert.False(t, Principal{Role: RoleModerator}.IsAdmin())
	assert.False(t, Principal{Role: RoleUser}.IsAdmin())
}

func TestSuperuserBypassesRole(t *testing.T) {
	p := Principal{Role: RoleUser, Superuser: true}

	assert.True(t, p.IsAdmin())
	assert.True(t, p.IsStaff())
}

func TestPrincipalIsStaff(t *testing.T) {
	assert.True(t, Principal{Role: RoleAdmin}.IsStaff())
	assert.True(t, Principal{Role: RoleModerator}.IsStaff())
	assert.False(t, Principal{Role: RoleUser}.IsStaff())
}
