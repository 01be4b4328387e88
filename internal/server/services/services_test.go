package services

import (
	"context"
	"database/sql"
	"io"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/dmitrijs2005/bookstore/internal/dbx"
	"github.com/dmitrijs2005/bookstore/internal/logging"
	"github.com/dmitrijs2005/bookstore/internal/models"
	authorsrepo "github.com/dmitrijs2005/bookstore/internal/server/repositories/authors"
	booksrepo "github.com/dmitrijs2005/bookstore/internal/server/repositories/books"
	usersrepo "github.com/dmitrijs2005/bookstore/internal/server/repositories/users"
)

// --- shared test fixtures ---

func newMockDB(t *testing.T) (*sql.DB, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New error: %v", err)
	}
	return db, mock
}

func testLogger() logging.Logger {
	return logging.NewJSON(io.Discard)
}

func userWithHash(id, email string, hash []byte) *models.User {
	return &models.User{ID: id, Email: email, PasswordHash: hash}
}

type fakeUsersRepo struct {
	createErr error
	created   *models.User

	getOut *models.User
	getErr error
}

func (f *fakeUsersRepo) Create(ctx context.Context, u *models.User) (*models.User, error) {
	if f.createErr != nil {
		return nil, f.createErr
	}
	f.created = u
	return u, nil
}

func (f *fakeUsersRepo) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	if f.getErr != nil {
		return nil, f.getErr
	}
	return f.getOut, nil
}

type fakeAuthorsRepo struct {
	exists    bool
	existsErr error

	listOut []*models.Author
	listErr error
}

func (f *fakeAuthorsRepo) List(ctx context.Context) ([]*models.Author, error) {
	if f.listErr != nil {
		return nil, f.listErr
	}
	return f.listOut, nil
}

func (f *fakeAuthorsRepo) Exists(ctx context.Context, id int32) (bool, error) {
	return f.exists, f.existsErr
}

type fakeBooksRepo struct {
	createErr error
	created   *models.Book

	listOut []*models.Book
	listErr error
}

func (f *fakeBooksRepo) Create(ctx context.Context, b *models.Book) (*models.Book, error) {
	if f.createErr != nil {
		return nil, f.createErr
	}
	b.ID = 42
	f.created = b
	return b, nil
}

func (f *fakeBooksRepo) List(ctx context.Context) ([]*models.Book, error) {
	if f.listErr != nil {
		return nil, f.listErr
	}
	return f.listOut, nil
}

type fakeRepoManager struct {
	u *fakeUsersRepo
	a *fakeAuthorsRepo
	b *fakeBooksRepo
}

func (m *fakeRepoManager) Users(db dbx.DBTX) usersrepo.Repository     { return m.u }
func (m *fakeRepoManager) Authors(db dbx.DBTX) authorsrepo.Repository { return m.a }
func (m *fakeRepoManager) Books(db dbx.DBTX) booksrepo.Repository     { return m.b }
