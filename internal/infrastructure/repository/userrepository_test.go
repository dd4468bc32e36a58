package repository

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"helpdesk/internal/domain/user"
)

func persistedUser(t *testing.T, repo *UserRepository, name string) *user.User {
	t.Helper()

	created, err := user.NewUser(name, "Suporte", "hashed:segredo")
	require.NoError(t, err)
	require.NoError(t, repo.Save(context.Background(), created))
	return created
}

func TestUserRepository_UpdateKeepsMillisecondTimestamps(t *testing.T) {
	repo := NewUserRepository(openTestDB(t))
	created := persistedUser(t, repo, "Carla")

	require.NoError(t, created.ChangeArea("Financeiro"))
	require.NoError(t, repo.Update(context.Background(), created))

	reloaded, err := repo.GetByID(context.Background(), created.ID())
	require.NoError(t, err)

	assert.Equal(t, "Financeiro", reloaded.Area())
	assert.False(t, reloaded.UpdatedAt().Before(reloaded.CreatedAt()))
	assert.Equal(t, created.CreatedAt().Year(), reloaded.UpdatedAt().Year())
}

func TestUserRepository_GetByName_CaseInsensitive(t *testing.T) {
	repo := NewUserRepository(openTestDB(t))
	persistedUser(t, repo, "Carla")

	found, err := repo.GetByName(context.Background(), "  carla ")
	require.NoError(t, err)
	assert.Equal(t, "Carla", found.Name())
}
