package main

import (
	"context"
	"log"
	"os"

	"github.com/fgclabs/combovault/internal/buildinfo"
	"github.com/fgclabs/combovault/internal/client/cli"
	"github.com/fgclabs/combovault/internal/client/config"
)

func main() {
	buildinfo.PrintBuildData(os.Stdout)

	cfg := config.LoadConfig()

	app, err := cli.NewApp(cfg)
	if err != nil {
		log.Fatalf("combovault: %v", err)
	}

	app.Run(context.Background())
}
