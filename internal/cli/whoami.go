package cli

import (
	"context"
	"errors"
	"fmt"

	"github.com/exebots/secstore/internal/common"
)

func (a *App) WhoAmI(ctx context.Context) error {
	if !a.isLoggedIn() {
		fmt.Println("Not logged in")
		return nil
	}

	sess, err := a.suite.Sessions.Current(ctx, a.token)
	if err != nil {
		if errors.Is(err, common.ErrorSessionExpired) || errors.Is(err, common.ErrorNotFound) {
			a.token = ""
			fmt.Println("Session expired, please log in again")
			return nil
		}
		fmt.Println(err.Error())
		return err
	}

	fmt.Printf("%s (session expires %s)\n", sess.Email, sess.ExpiresAt.Format("2006-01-02 15:04:05"))
	return nil
}
