// Package books defines the catalog repository for book records.
package books

import (
	"context"

	"github.com/dmitrijs2005/bookstore/internal/models"
)

type Repository interface {
	// Create inserts a book and returns it with the assigned id.
	Create(ctx context.Context, book *models.Book) (*models.Book, error)

	// List returns all books ordered by id, each with its author embedded.
	List(ctx context.Context) ([]*models.Book, error)
}
