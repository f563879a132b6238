package cli

import (
	"context"
	"fmt"
	"os"

	"github.com/exebots/secstore/internal/randx"
)

func (a *App) Login(ctx context.Context) error {
	email, err := GetSimpleText(a.reader, "Enter email", os.Stdout)
	if err != nil {
		fmt.Println(err.Error())
		return err
	}

	password, err := GetPassword("Enter password", os.Stdout)
	if err != nil {
		fmt.Println(err.Error())
		return err
	}
	defer randx.Wipe(password)

	sess, token, err := a.suite.Login(ctx, email, string(password))
	if err != nil {
		fmt.Println(err.Error())
		return err
	}

	a.token = token
	fmt.Printf("Logged in as %s (session expires %s)\n", sess.Email, sess.ExpiresAt.Format("15:04:05"))
	return nil
}

func (a *App) Logout(ctx context.Context) error {
	if err := a.suite.Logout(ctx); err != nil {
		fmt.Println(err.Error())
		return err
	}
	a.token = ""
	fmt.Println("Logged out")
	return nil
}
