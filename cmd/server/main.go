package main

import (
	"context"
	"flag"
	"log"
	"os"

	"github.com/mealgenie/backend/internal/server"
	"github.com/mealgenie/backend/internal/server/config"
)

func main() {

	configPath := flag.String("config", os.Getenv("CONFIG_PATH"), "path to a yaml config file (optional)")
	flag.Parse()

	ctx := context.Background()
	cfg := config.MustLoadConfig(*configPath)

	app, err := server.NewApp(cfg)
	if err != nil {
		log.Printf("%v", err)
		return
	}

	app.Run(ctx)
}
