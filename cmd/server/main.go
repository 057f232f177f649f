package main

import (
	"context"
	"log"
	"os"

	"github.com/awnumar/memguard"

	"github.com/dmitrijs2005/secureshare/internal/server"
	"github.com/dmitrijs2005/secureshare/internal/server/config"
)

func main() {
	defer memguard.Purge()

	ctx := context.Background()
	cfg, err := config.LoadConfig(os.Args[1:], os.LookupEnv)
	if err != nil {
		log.Printf("config: %v", err)
		return
	}

	app, err := server.NewApp(ctx, cfg)
	if err != nil {
		log.Printf("%v", err)
		return
	}

	app.Run(ctx)
}
