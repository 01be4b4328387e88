// Package users defines the credential-store repository: identity records
// keyed by a unique email.
package users

import (
	"context"

	"github.com/dmitrijs2005/bookstore/internal/models"
)

type Repository interface {
	// Create inserts a new user. Email uniqueness is enforced by the store;
	// a duplicate yields common.ErrAlreadyExists.
	Create(ctx context.Context, user *models.User) (*models.User, error)

	// GetByEmail returns the user with the given email or common.ErrNotFound.
	GetByEmail(ctx context.Context, email string) (*models.User, error)
}
