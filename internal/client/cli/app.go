// Package cli implements the interactive bookstore command-line client.
package cli

import (
	"bufio"
	"context"
	"fmt"
	"os"

	"github.com/dmitrijs2005/bookstore/internal/client/client"
	"github.com/dmitrijs2005/bookstore/internal/client/config"
	"github.com/dmitrijs2005/bookstore/internal/models"
)

// api is the slice of the HTTP client the CLI commands use.
// *client.Client satisfies it; tests can provide a stub.
type api interface {
	Register(ctx context.Context, email, password string) (string, error)
	Login(ctx context.Context, email, password string) (string, error)
	Books(ctx context.Context) ([]models.Book, error)
	Authors(ctx context.Context) ([]models.Author, error)
	AddBook(ctx context.Context, title, isbn string, authorID int32, price float64, stock int32) (*models.Book, error)
	SetToken(token string)
	Token() string
}

type App struct {
	config   *config.Config
	api      api
	userName string
	reader   *bufio.Reader
}

func NewApp(c *config.Config) (*App, error) {
	apiClient, err := client.New(c.ServerAddr)
	if err != nil {
		return nil, err
	}
	return &App{config: c, api: apiClient, reader: bufio.NewReader(os.Stdin)}, nil
}

func (a *App) isLoggedIn() bool {
	return a.api.Token() != ""
}

func (a *App) getStatus() string {
	if a.userName == "" {
		return ""
	}
	return fmt.Sprintf("(%s)", a.userName)
}

func (a *App) Logout(ctx context.Context) error {
	a.api.SetToken("")
	a.userName = ""
	printlnFn("Logged out")
	return nil
}

func (a *App) Run(ctx context.Context) {
	printlnFn("Welcome to Bookstore CLI (type 'help' for commands)")
	scanner := bufio.NewScanner(os.Stdin)
	runREPL(ctx, a, a.getStatus, scanner)
}
