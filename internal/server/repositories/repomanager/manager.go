// Package repomanager hands out repositories bound to a database handle,
// so services can run the same repository code against *sql.DB or an open
// transaction.
package repomanager

import (
	"github.com/dmitrijs2005/bookstore/internal/dbx"
	"github.com/dmitrijs2005/bookstore/internal/server/repositories/authors"
	"github.com/dmitrijs2005/bookstore/internal/server/repositories/books"
	"github.com/dmitrijs2005/bookstore/internal/server/repositories/users"
)

type RepositoryManager interface {
	Users(db dbx.DBTX) users.Repository
	Authors(db dbx.DBTX) authors.Repository
	Books(db dbx.DBTX) books.Repository
}
