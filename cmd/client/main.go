package main

import (
	"context"
	"log"
	"os"

	"github.com/dmitrijs2005/atelier/internal/buildinfo"
	"github.com/dmitrijs2005/atelier/internal/client/cli"
	"github.com/dmitrijs2005/atelier/internal/client/config"
)

func main() {
	buildinfo.Print(os.Stdout)

	ctx := context.Background()
	cfg := config.LoadConfig()

	app, err := cli.NewApp(ctx, cfg)
	if err != nil {
		log.Fatalf("%v", err)
	}

	app.Run(ctx)
}
