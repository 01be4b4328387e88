package cli

import (
	"context"
	"fmt"
	"os"
)

func (a *App) AddBook(ctx context.Context) error {
	if !a.isLoggedIn() {
		printlnFn("Please log in first")
		return nil
	}

	title, err := GetSimpleText(a.reader, "Enter title", os.Stdout)
	if err != nil {
		printlnFn("error:", err.Error())
		return err
	}

	isbn, err := GetSimpleText(a.reader, "Enter ISBN", os.Stdout)
	if err != nil {
		printlnFn("error:", err.Error())
		return err
	}

	authorID, err := GetInt32(a.reader, "Enter author id (see 'authors')", os.Stdout)
	if err != nil {
		printlnFn("error:", err.Error())
		return err
	}

	price, err := GetFloat(a.reader, "Enter price", os.Stdout)
	if err != nil {
		printlnFn("error:", err.Error())
		return err
	}

	stock, err := GetInt32(a.reader, "Enter stock", os.Stdout)
	if err != nil {
		printlnFn("error:", err.Error())
		return err
	}

	book, err := a.api.AddBook(ctx, title, isbn, authorID, price, stock)
	if err != nil {
		printlnFn("error:", err.Error())
		return err
	}

	printlnFn(fmt.Sprintf("Added book [%d] %q", book.ID, book.Title))
	return nil
}
