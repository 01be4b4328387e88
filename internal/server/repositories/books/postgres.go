package books

import (
	"context"
	"fmt"

	"github.com/dmitrijs2005/bookstore/internal/dbx"
	"github.com/dmitrijs2005/bookstore/internal/models"
)

type PostgresRepository struct {
	db dbx.DBTX
}

func NewPostgresRepository(db dbx.DBTX) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (r *PostgresRepository) Create(ctx context.Context, book *models.Book) (*models.Book, error) {

	query :=
		`INSERT INTO books (title, isbn, author_id, price, stock)
		 VALUES ($1, $2, $3, $4, $5)
		 RETURNING id
		`

	err := r.db.QueryRowContext(ctx, query,
		book.Title, book.ISBN, book.AuthorID, book.Price, book.Stock).Scan(&book.ID)

	if err != nil {
		return nil, fmt.Errorf("error performing sql request: %w", err)
	}

	return book, nil
}

func (r *PostgresRepository) List(ctx context.Context) ([]*models.Book, error) {
	query :=
		`SELECT b.id, b.title, b.isbn, b.author_id, b.price, b.stock,
		        a.id, a.first_name, a.last_name
		 FROM books b
		 JOIN authors a ON a.id = b.author_id
		 ORDER BY b.id
		`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("error performing sql request: %w", err)
	}
	defer rows.Close()

	result := make([]*models.Book, 0)
	for rows.Next() {
		book := &models.Book{Author: &models.Author{}}
		if err := rows.Scan(
			&book.ID, &book.Title, &book.ISBN, &book.AuthorID, &book.Price, &book.Stock,
			&book.Author.ID, &book.Author.FirstName, &book.Author.LastName,
		); err != nil {
			return nil, fmt.Errorf("error scanning row: %w", err)
		}
		result = append(result, book)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating rows: %w", err)
	}

	return result, nil
}
