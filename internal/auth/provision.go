package auth

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

// ProvisionAdmin creates the first admin account. It is a deliberate,
// separately-invoked deployment step (see cmd/provision-admin) rather than an
// implicit side effect of the login path, so ordinary traffic can never
// mutate the user table. It refuses to run once any admin exists.
func ProvisionAdmin(ctx context.Context, repo *Repo, username, email, password string) (*User, error) {
	username = strings.TrimSpace(username)
	email = strings.TrimSpace(strings.ToLower(email))

	if username == "" || !strings.Contains(email, "@") {
		return nil, fmt.Errorf("provision admin: username and valid email required")
	}
	if len(password) < 8 || len(password) > 72 {
		return nil, fmt.Errorf("provision admin: password must be 8-72 chars")
	}

	existing, err := repo.CountByRole(ctx, RoleAdmin)
	if err != nil {
		return nil, err
	}
	if existing > 0 {
		return nil, fmt.Errorf("provision admin: an admin account already exists")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("provision admin: hash: %w", err)
	}

	u := User{
		ID:           uuid.NewString(),
		Username:     username,
		Email:        email,
		PasswordHash: string(hash),
		Role:         RoleAdmin,
	}
	if err := repo.CreateUser(ctx, u); err != nil {
		return nil, err
	}
	return &u, nil
}
