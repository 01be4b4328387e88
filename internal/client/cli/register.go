package cli

import (
	"context"
	"os"
)

func (a *App) Register(ctx context.Context) error {
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

	msg, err := a.api.Register(ctx, email, string(password))
	if err != nil {
		printlnFn("Registration failed:", err.Error())
		return err
	}

	printlnFn(msg)
	return nil
}
