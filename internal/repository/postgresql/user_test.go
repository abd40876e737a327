package postgresql_test

import (
	"context"
	"errors"
	"testing"

	"github.com/gymdesk/gymdesk-backend-go/internal/domain/user"
	"github.com/gymdesk/gymdesk-backend-go/internal/repository/postgresql"
	"github.com/jackc/pgx/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func TestUserRepository_CreateAndGetByEmail(t *testing.T) {
	setupTestData(t)
	ctx := context.Background()

	repo := postgresql.NewUserRepository(testDB)

	hashed, err := bcrypt.GenerateFromPassword([]byte("password123"), bcrypt.DefaultCost)
	require.NoError(t, err)
	hashedStr := string(hashed)

	created, err := repo.Create(ctx, user.User{
		Email:        "admin@example.com",
		PasswordHash: &hashedStr,
		Role:         user.RoleAdmin,
	})
	require.NoError(t, err)
	assert.NotEmpty(t, created.ID)

	found, err := repo.GetByEmail(ctx, "admin@example.com")
	require.NoError(t, err)
	assert.Equal(t, created.ID, found.ID)
	assert.Equal(t, user.RoleAdmin, found.Role)
}

func TestUserRepository_GetByEmail_NotFound(t *testing.T) {
	setupTestData(t)
	ctx := context.Background()

	repo := postgresql.NewUserRepository(testDB)

	_, err := repo.GetByEmail(ctx, "ghost@example.com")
	assert.True(t, errors.Is(err, pgx.ErrNoRows))
}

func TestUserRepository_LinkGoogleAccount(t *testing.T) {
	setupTestData(t)
	ctx := context.Background()

	repo := postgresql.NewUserRepository(testDB)

	created, err := repo.Create(ctx, user.User{
		Email: "manager@example.com",
		Role:  user.RoleManager,
	})
	require.NoError(t, err)

	linked, err := repo.LinkGoogleAccount(ctx, "google-id-123", "manager@example.com")
	require.NoError(t, err)
	assert.Equal(t, created.ID, linked.ID)
	require.NotNil(t, linked.OAuthProvider)
	assert.Equal(t, "google", *linked.OAuthProvider)
	require.NotNil(t, linked.OAuthProviderID)
	assert.Equal(t, "google-id-123", *linked.OAuthProviderID)
}

func TestUserRepository_UpdateRole(t *testing.T) {
	setupTestData(t)
	ctx := context.Background()

	repo := postgresql.NewUserRepository(testDB)

	created, err := repo.Create(ctx, user.User{
		Email: "reception@example.com",
		Role:  user.RoleReceptionist,
	})
	require.NoError(t, err)

	require.NoError(t, repo.UpdateRole(ctx, created.ID, user.RoleManager))

	found, err := repo.GetByID(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, user.RoleManager, found.Role)
}
