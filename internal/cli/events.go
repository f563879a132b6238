package cli

import (
	"context"
	"fmt"
)

const eventsShown = 10

func (a *App) Events(ctx context.Context) error {
	recent := a.suite.Events.Recent(eventsShown)
	if len(recent) == 0 {
		fmt.Println("No events recorded")
		return nil
	}

	for _, e := range recent {
		fmt.Printf("%s  %-22s %v\n", e.Timestamp.Format("2006-01-02 15:04:05"), e.Type, e.Data)
	}
	return nil
}
