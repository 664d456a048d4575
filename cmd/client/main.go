package main

import (
	"context"
	"log"

	"github.com/dmitrijs2005/reportkeeper/internal/client/cli"
	"github.com/dmitrijs2005/reportkeeper/internal/client/config"
)

func main() {

	ctx := context.Background()

	cfg, err := config.LoadConfig()
	if err != nil {
		log.Printf("config error: %v", err)
		return
	}

	app, err := cli.NewApp(cfg)
	if err != nil {
		log.Fatalf("%v", err)
		return
	}

	app.Run(ctx)

}
