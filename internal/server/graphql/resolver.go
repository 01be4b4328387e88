package graphql

import (
	"context"

	"github.com/dmitrijs2005/bookstore/internal/common"
	"github.com/dmitrijs2005/bookstore/internal/models"
	"github.com/dmitrijs2005/bookstore/internal/server/auth"
	"github.com/dmitrijs2005/bookstore/internal/server/services"
	graphql "github.com/graph-gophers/graphql-go"
)

// UserService is the slice of the user service the resolvers need.
type UserService interface {
	Register(ctx context.Context, email, password string) error
	Login(ctx context.Context, email, password string) (string, error)
}

// CatalogService is the slice of the catalog service the resolvers need.
type CatalogService interface {
	ListBooks(ctx context.Context) ([]*models.Book, error)
	ListAuthors(ctx context.Context) ([]*models.Author, error)
	AddBook(ctx context.Context, params services.AddBookParams) (*models.Book, error)
}

// Resolver is the root resolver for the schema.
type Resolver struct {
	users   UserService
	catalog CatalogService
}

func NewResolver(users UserService, catalog CatalogService) *Resolver {
	return &Resolver{users: users, catalog: catalog}
}

// NewSchema parses SchemaDef against the resolver. Schema/resolver mismatch
// is a programming error, so it panics at startup.
func NewSchema(r *Resolver) *graphql.Schema {
	return graphql.MustParseSchema(SchemaDef, r)
}

// Books resolves the public books query.
func (r *Resolver) Books(ctx context.Context) ([]*bookResolver, error) {
	list, err := r.catalog.ListBooks(ctx)
	if err != nil {
		return nil, wrapError(err)
	}
	resolvers := make([]*bookResolver, 0, len(list))
	for _, b := range list {
		resolvers = append(resolvers, &bookResolver{b: b})
	}
	return resolvers, nil
}

// Authors resolves the public authors query.
func (r *Resolver) Authors(ctx context.Context) ([]*authorResolver, error) {
	list, err := r.catalog.ListAuthors(ctx)
	if err != nil {
		return nil, wrapError(err)
	}
	resolvers := make([]*authorResolver, 0, len(list))
	for _, a := range list {
		resolvers = append(resolvers, &authorResolver{a: a})
	}
	return resolvers, nil
}

// Register resolves the register mutation. No token is issued; login is a
// separate step.
func (r *Resolver) Register(ctx context.Context, args struct{ Email, Password string }) (string, error) {
	if err := r.users.Register(ctx, args.Email, args.Password); err != nil {
		return "", wrapError(err)
	}
	return "User registered successfully", nil
}

// Login resolves the login mutation and returns the bearer token string.
func (r *Resolver) Login(ctx context.Context, args struct{ Email, Password string }) (string, error) {
	token, err := r.users.Login(ctx, args.Email, args.Password)
	if err != nil {
		return "", wrapError(err)
	}
	return token, nil
}

// AddBook resolves the addBook mutation. The request must carry a validated
// identity; without one the catalog is never touched.
func (r *Resolver) AddBook(ctx context.Context, args struct {
	Title    string
	ISBN     string
	AuthorID int32
	Price    float64
	Stock    int32
}) (*bookResolver, error) {
	if err := auth.ErrorFromContext(ctx); err != nil {
		return nil, wrapError(err)
	}
	if _, ok := auth.IdentityFromContext(ctx); !ok {
		return nil, wrapError(common.ErrUnauthorized)
	}

	book, err := r.catalog.AddBook(ctx, services.AddBookParams{
		Title:    args.Title,
		ISBN:     args.ISBN,
		AuthorID: args.AuthorID,
		Price:    args.Price,
		Stock:    args.Stock,
	})
	if err != nil {
		return nil, wrapError(err)
	}

	return &bookResolver{b: book}, nil
}

type authorResolver struct {
	a *models.Author
}

func (r *authorResolver) ID() int32         { return r.a.ID }
func (r *authorResolver) FirstName() string { return r.a.FirstName }
func (r *authorResolver) LastName() string  { return r.a.LastName }

type bookResolver struct {
	b *models.Book
}

func (r *bookResolver) ID() int32       { return r.b.ID }
func (r *bookResolver) Title() string   { return r.b.Title }
func (r *bookResolver) ISBN() string    { return r.b.ISBN }
func (r *bookResolver) AuthorID() int32 { return r.b.AuthorID }
func (r *bookResolver) Price() float64  { return r.b.Price }
func (r *bookResolver) Stock() int32    { return r.b.Stock }
func (r *bookResolver) Author() *authorResolver {
	if r.b.Author == nil {
		return nil
	}
	return &authorResolver{a: r.b.Author}
}
