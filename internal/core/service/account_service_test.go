package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/inkpress/blog-api/internal/core/domain"
)

func TestAccountService_CreateUser_Success(t *testing.T) {
	repo := newStubUserRepo()
	svc := NewAccountService(repo, &plainHasher{})

	user, err := svc.CreateUser(context.Background(), "alice", "pass1234",
		domain.RoleSet{domain.RoleCreator, domain.RoleCreator, domain.RoleCommentator})
	require.NoError(t, err)
	assert.NotEmpty(t, user.ID)
	assert.Equal(t, "hashed:pass1234", user.PasswordHash)
	assert.Equal(t, domain.RoleSet{domain.RoleCreator, domain.RoleCommentator}, user.Roles)
}

func TestAccountService_CreateUser_Validation(t *testing.T) {
	svc := NewAccountService(newStubUserRepo(), &plainHasher{})

	_, err := svc.CreateUser(context.Background(), "", "pass1234", domain.RoleSet{domain.RoleAdmin})
	assert.ErrorIs(t, err, domain.ErrInvalidCredentials)

	_, err = svc.CreateUser(context.Background(), "bob", "pass1234", nil)
	assert.ErrorIs(t, err, domain.ErrInvalidRole)

	_, err = svc.CreateUser(context.Background(), "bob", "pass1234", domain.RoleSet{"guest"})
	assert.ErrorIs(t, err, domain.ErrInvalidRole)
}

func TestAccountService_CreateUser_Duplicate(t *testing.T) {
	svc := NewAccountService(newStubUserRepo(), &plainHasher{})

	_, err := svc.CreateUser(context.Background(), "carol", "pass1234", domain.RoleSet{domain.RoleAdmin})
	require.NoError(t, err)
	_, err = svc.CreateUser(context.Background(), "carol", "other-pass", domain.RoleSet{domain.RoleAdmin})
	assert.ErrorIs(t, err, domain.ErrUserExists)
}

func TestUserService_GetUser(t *testing.T) {
	repo := newStubUserRepo()
	u := repo.add("dave", "pw", domain.RoleCommentator)
	svc := NewUserService(repo)

	got, err := svc.GetUser(context.Background(), u.ID)
	require.NoError(t, err)
	assert.Equal(t, "dave", got.Username)

	_, err = svc.GetUser(context.Background(), "u9999")
	assert.ErrorIs(t, err, domain.ErrUserNotFound)
}
