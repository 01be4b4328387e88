package services

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/dmitrijs2005/bookstore/internal/common"
	"github.com/dmitrijs2005/bookstore/internal/dbx"
	"github.com/dmitrijs2005/bookstore/internal/logging"
	"github.com/dmitrijs2005/bookstore/internal/models"
	"github.com/dmitrijs2005/bookstore/internal/server/repositories/repomanager"
)

// AddBookParams carries the fields of the addBook operation.
type AddBookParams struct {
	Title    string
	ISBN     string
	AuthorID int32
	Price    float64
	Stock    int32
}

// CatalogService provides book/author reads and the authorized book
// creation path. It performs no authentication itself; the transport gate
// must have validated the caller before AddBook is reached.
type CatalogService struct {
	db     *sql.DB
	repos  repomanager.RepositoryManager
	logger logging.Logger
}

func NewCatalogService(conn *sql.DB, m repomanager.RepositoryManager, l logging.Logger) *CatalogService {
	return &CatalogService{
		db:     conn,
		repos:  m,
		logger: l.With("module", "catalog_service"),
	}
}

// ListBooks returns all books ordered by id, with authors embedded.
func (s *CatalogService) ListBooks(ctx context.Context) ([]*models.Book, error) {
	list, err := s.repos.Books(s.db).List(ctx)
	if err != nil {
		s.logger.Error(ctx, "error listing books", "error", err)
		return nil, common.ErrInternal
	}
	return list, nil
}

// ListAuthors returns all authors ordered by id.
func (s *CatalogService) ListAuthors(ctx context.Context) ([]*models.Author, error) {
	list, err := s.repos.Authors(s.db).List(ctx)
	if err != nil {
		s.logger.Error(ctx, "error listing authors", "error", err)
		return nil, common.ErrInternal
	}
	return list, nil
}

// AddBook validates the fields, checks the author reference, and persists
// the book. The reference check and the insert run in one transaction so a
// concurrently deleted author cannot slip through.
func (s *CatalogService) AddBook(ctx context.Context, params AddBookParams) (*models.Book, error) {
	if reasons := validateBook(params); len(reasons) > 0 {
		return nil, &common.ValidationError{Reasons: reasons}
	}

	var created *models.Book
	err := dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		exists, err := s.repos.Authors(tx).Exists(ctx, params.AuthorID)
		if err != nil {
			return err
		}
		if !exists {
			return common.ErrUnknownAuthor
		}

		created, err = s.repos.Books(tx).Create(ctx, &models.Book{
			Title:    params.Title,
			ISBN:     params.ISBN,
			AuthorID: params.AuthorID,
			Price:    params.Price,
			Stock:    params.Stock,
		})
		return err
	})
	if err != nil {
		if errors.Is(err, common.ErrUnknownAuthor) {
			return nil, err
		}
		s.logger.Error(ctx, "error adding book", "error", err)
		return nil, common.ErrInternal
	}

	return created, nil
}

func validateBook(params AddBookParams) []string {
	var reasons []string

	if params.Title == "" {
		reasons = append(reasons, "title must not be empty")
	}
	if params.ISBN == "" {
		reasons = append(reasons, "isbn must not be empty")
	}
	if params.Price < 0 {
		reasons = append(reasons, fmt.Sprintf("price must not be negative, got %v", params.Price))
	}
	if params.Stock < 0 {
		reasons = append(reasons, fmt.Sprintf("stock must not be negative, got %d", params.Stock))
	}

	return reasons
}
