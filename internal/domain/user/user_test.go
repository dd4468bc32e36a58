package user

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewUser(t *testing.T) {
	u, err := NewUser("  Carla  ", " Suporte ", "hash")
	require.NoError(t, err)

	assert.Equal(t, "Carla", u.Name())
	assert.Equal(t, "CARLA", u.NormalizedName())
	assert.Equal(t, "Suporte", u.Area())
	assert.Equal(t, "hash", u.PasswordHash())
	assert.Equal(t, u.CreatedAt(), u.UpdatedAt())
}

func TestNewUser_RequiredFields(t *testing.T) {
	tests := []struct {
		name     string
		userName string
		area     string
		hash     string
	}{
		{name: "blank name", userName: "   ", area: "Suporte", hash: "h"},
		{name: "blank area", userName: "Carla", area: "", hash: "h"},
		{name: "empty hash", userName: "Carla", area: "Suporte", hash: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			u, err := NewUser(tt.userName, tt.area, tt.hash)
			assert.Error(t, err)
			assert.Nil(t, u)
		})
	}
}

func TestUser_Rename(t *testing.T) {
	u, err := NewUser("Carla", "Suporte", "hash")
	require.NoError(t, err)
	before := u.UpdatedAt()

	require.NoError(t, u.Rename("  Carla Souza "))
	assert.Equal(t, "Carla Souza", u.Name())
	assert.Equal(t, "CARLA SOUZA", u.NormalizedName())
	assert.False(t, u.UpdatedAt().Before(before))

	assert.Error(t, u.Rename("  "))
}

func TestUser_ChangeArea(t *testing.T) {
	u, err := NewUser("Carla", "Suporte", "hash")
	require.NoError(t, err)

	require.NoError(t, u.ChangeArea("Financeiro"))
	assert.Equal(t, "Financeiro", u.Area())

	assert.Error(t, u.ChangeArea(""))
}

func TestUser_ChangePasswordHash(t *testing.T) {
	u, err := NewUser("Carla", "Suporte", "hash")
	require.NoError(t, err)

	require.NoError(t, u.ChangePasswordHash("other"))
	assert.Equal(t, "other", u.PasswordHash())

	assert.Error(t, u.ChangePasswordHash(""))
}

func TestUser_SetIDOnlyOnce(t *testing.T) {
	u, err := NewUser("Carla", "Suporte", "hash")
	require.NoError(t, err)

	require.NoError(t, u.SetID(7))
	assert.Equal(t, uint(7), u.ID())
	assert.Error(t, u.SetID(8))
}

func TestNormalizeName(t *testing.T) {
	assert.Equal(t, "CARLA", NormalizeName("  carla "))
	assert.Equal(t, "CARLA SOUZA", NormalizeName("Carla Souza"))
	assert.Equal(t, "", NormalizeName("   "))
}
