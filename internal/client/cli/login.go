package cli

import (
	"context"
	"errors"
	"os"

	"github.com/dmitrijs2005/bookstore/internal/client/client"
)

func (a *App) Login(ctx context.Context) error {
	email, err := GetSimpleText(a.reader, "Enter email", os.Stdout)
	if err != nil {
		printlnFn("error:", err.Error())
		return err
	}

	password, err := GetPassword(os.Stdout)
	if err != nil {
		printlnFn("error:", err.Error())
		return err
	}

	if _, err := a.api.Login(ctx, email, string(password)); err != nil {
		if errors.Is(err, client.ErrUnavailable) {
			printlnFn("Server unavailable, try again later")
		} else {
			printlnFn("Login unsuccessful:", err.Error())
		}
		return err
	}

	a.userName = email
	printlnFn("Login successful")
	return nil
}
