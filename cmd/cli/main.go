package main

import (
	"context"
	"log"
	"os"

	"github.com/exebots/secstore/internal/buildinfo"
	"github.com/exebots/secstore/internal/cli"
	"github.com/exebots/secstore/internal/config"
)

func main() {

	buildinfo.PrintBuildData(os.Stdout)

	ctx := context.Background()
	cfg := config.LoadConfig()
	app, err := cli.NewApp(ctx, cfg)

	if err != nil {
		log.Fatalf("%v", err)
		return
	}

	app.Run(ctx)

}
