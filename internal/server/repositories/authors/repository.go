// Package authors defines the read-only author repository. Authors are
// seeded by migration and never mutated through the API.
package authors

import (
	"context"

	"github.com/dmitrijs2005/bookstore/internal/models"
)

type Repository interface {
	// List returns all authors ordered by id.
	List(ctx context.Context) ([]*models.Author, error)

	// Exists reports whether an author with the given id is present.
	Exists(ctx context.Context, id int32) (bool, error)
}
