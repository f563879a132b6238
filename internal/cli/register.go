package cli

import (
	"context"
	"fmt"
	"os"

	"github.com/exebots/secstore/internal/randx"
)

func (a *App) Register(ctx context.Context) error {
	email, err := GetSimpleText(a.reader, "Enter email", os.Stdout)
	if err != nil {
		fmt.Println(err.Error())
		return err
	}

	name, err := GetSimpleText(a.reader, "Enter display name", os.Stdout)
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

	if _, err := a.suite.Users.Register(ctx, email, name, string(password)); err != nil {
		fmt.Println(err.Error())
		return err
	}

	fmt.Println("Success!")
	return nil
}
