package cli

import (
	"context"
	"fmt"

	"github.com/dmitrijs2005/atelier/internal/common"
)

// getPassword is an indirection over GetPassword so tests avoid the terminal.
var getPassword = GetPassword

func (a *App) credentials() (string, []byte, error) {
	email, err := a.ask("Enter email")
	if err != nil {
		return "", nil, err
	}
	password, err := getPassword(a.out)
	if err != nil {
		return "", nil, err
	}
	return email, password, nil
}

// Register creates an account. It does not log in.
func (a *App) Register(ctx context.Context) error {
	email, password, err := a.credentials()
	if err != nil {
		return err
	}
	defer common.WipeByteArray(password)

	ctx, cancel := a.rpcContext(ctx)
	defer cancel()

	if err := a.auth.Register(ctx, email, string(password)); err != nil {
		return err
	}

	fmt.Fprintln(a.out, "Account created, you can login now")
	return nil
}

func (a *App) Login(ctx context.Context) error {
	email, password, err := a.credentials()
	if err != nil {
		return err
	}
	defer common.WipeByteArray(password)

	ctx, cancel := a.rpcContext(ctx)
	defer cancel()

	if err := a.auth.Login(ctx, email, string(password)); err != nil {
		return err
	}

	a.email = email
	fmt.Fprintln(a.out, "Login successful")
	return nil
}

func (a *App) Logout(ctx context.Context) error {
	if err := a.auth.Logout(ctx); err != nil {
		return err
	}
	a.email = ""
	fmt.Fprintln(a.out, "Logged out")
	return nil
}
