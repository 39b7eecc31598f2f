package repositories_test

import (
	"context"
	"testing"

	"github.com/nandasafiq/go-storefront/app/db/testdb"
	"github.com/nandasafiq/go-storefront/app/models"
	"github.com/nandasafiq/go-storefront/app/repositories"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func TestUserCreate_HashesPasswordAndDefaultsRole(t *testing.T) {
	db := testdb.Open(t)
	repo := repositories.NewUserRepository(db)
	ctx := context.Background()

	user := &models.User{
		FirstName: "Ana",
		Email:     "ana@example.com",
		Password:  "plain-secret",
	}
	require.NoError(t, repo.Create(ctx, user))
	assert.NotEmpty(t, user.ID)
	assert.Equal(t, models.RoleCustomer, user.Role)
	assert.NotEqual(t, "plain-secret", user.Password)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(user.Password), []byte("plain-secret")))
}

func TestUserFindByEmail(t *testing.T) {
	db := testdb.Open(t)
	repo := repositories.NewUserRepository(db)
	ctx := context.Background()

	require.NoError(t, repo.Create(ctx, &models.User{FirstName: "Ana", Email: "ana@example.com", Password: "x"}))

	user, err := repo.FindByEmail(ctx, "ana@example.com")
	require.NoError(t, err)
	require.NotNil(t, user)
	assert.Equal(t, "Ana", user.FirstName)

	user, err = repo.FindByEmail(ctx, "nobody@example.com")
	require.NoError(t, err)
	assert.Nil(t, user)
}
