package service

import (
	"context"
	"fmt"
	"time"

	"github.com/inkpress/blog-api/internal/core/domain"
	"github.com/inkpress/blog-api/internal/core/ports"
)

// AccountService implements operator-driven user creation.
type AccountService struct {
	users  ports.UserRepository
	hasher ports.PasswordHasher
}

func NewAccountService(users ports.UserRepository, hasher ports.PasswordHasher) *AccountService {
	return &AccountService{users: users, hasher: hasher}
}

func (s *AccountService) CreateUser(ctx context.Context, username, password string, roles domain.RoleSet) (*domain.User, error) {
	if username == "" || password == "" {
		return nil, domain.ErrInvalidCredentials
	}

	normalized, err := normalizeRoles(roles)
	if err != nil {
		return nil, err
	}

	hash, err := s.hasher.Hash(password)
	if err != nil {
		return nil, fmt.Errorf("create user: %w", err)
	}

	created, err := s.users.Create(ctx, &domain.User{
		Username:     username,
		PasswordHash: hash,
		Roles:        normalized,
		CreatedAt:    time.Now().UTC(),
	})
	if err != nil {
		return nil, err
	}
	return created, nil
}

// normalizeRoles rejects empty or unknown role sets and drops duplicates.
func normalizeRoles(roles domain.RoleSet) (domain.RoleSet, error) {
	if len(roles) == 0 {
		return nil, domain.ErrInvalidRole
	}
	out := make(domain.RoleSet, 0, len(roles))
	for _, r := range roles {
		if !r.Valid() {
			return nil, fmt.Errorf("%w: %q", domain.ErrInvalidRole, r)
		}
		if !out.Has(r) {
			out = append(out, r)
		}
	}
	return out, nil
}
