package cli

import (
	"context"
	"fmt"
	"os"
)

func (a *App) Wipe(ctx context.Context) error {
	answer, err := GetSimpleText(a.reader, "This destroys all stored data. Type 'yes' to confirm", os.Stdout)
	if err != nil {
		fmt.Println(err.Error())
		return err
	}
	if answer != "yes" {
		fmt.Println("Cancelled")
		return nil
	}

	if err := a.suite.Wipe(ctx); err != nil {
		fmt.Println(err.Error())
		return err
	}

	a.token = ""
	fmt.Println("All data wiped. Restart to start fresh.")
	return nil
}
