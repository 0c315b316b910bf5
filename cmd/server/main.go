package main

import (
	"context"
	"log"
	"os"

	"github.com/fgclabs/combovault/internal/buildinfo"
	"github.com/fgclabs/combovault/internal/server"
	"github.com/fgclabs/combovault/internal/server/config"
)

func main() {
	buildinfo.PrintBuildData(os.Stdout)

	cfg := config.LoadConfig()

	app, err := server.NewApp(cfg)
	if err != nil {
		log.Fatalf("combovault server: %v", err)
	}

	app.Run(context.Background())
}
