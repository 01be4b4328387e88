package cli

import (
	"context"
	"fmt"
)

func (a *App) ListBooks(ctx context.Context) error {
	books, err := a.api.Books(ctx)
	if err != nil {
		printlnFn("error:", err.Error())
		return err
	}

	if len(books) == 0 {
		printlnFn("The catalog is empty")
		return nil
	}

	for _, b := range books {
		author := ""
		if b.Author != nil {
			author = fmt.Sprintf("%s %s", b.Author.FirstName, b.Author.LastName)
		}
		printlnFn(fmt.Sprintf("[%d] %q by %s (ISBN %s) $%.2f, %d in stock",
			b.ID, b.Title, author, b.ISBN, b.Price, b.Stock))
	}
	return nil
}

func (a *App) ListAuthors(ctx context.Context) error {
	authors, err := a.api.Authors(ctx)
	if err != nil {
		printlnFn("error:", err.Error())
		return err
	}

	for _, au := range authors {
		printlnFn(fmt.Sprintf("[%d] %s %s", au.ID, au.FirstName, au.LastName))
	}
	return nil
}
