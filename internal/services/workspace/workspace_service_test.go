package workspace

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalizeRole(t *testing.T) {
	role, err := NormalizeRole("admin")
	require.NoError(t, err)
	assert.Equal(t, RoleAdmin, role)

	role, err = NormalizeRole(" Member ")
	require.NoError(t, err)
	assert.Equal(t, RoleMember, role)

	_, err = NormalizeRole("owner")
	assert.ErrorIs(t, err, ErrInvalidRole)

	_, err = NormalizeRole("")
	assert.ErrorIs(t, err, ErrInvalidRole)
}
