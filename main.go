package main

import (
	"context"
	"fmt"
	"log"

	"github.com/Vini9-9/api-quanto-foi/internal/config"
	"github.com/Vini9-9/api-quanto-foi/internal/handler"
	"github.com/Vini9-9/api-quanto-foi/internal/query"
	"github.com/Vini9-9/api-quanto-foi/internal/router"
	"github.com/Vini9-9/api-quanto-foi/internal/store"

	flag "github.com/spf13/pflag"
)

func main() {
	configPath := flag.String("config", "config.yaml", "path to config file")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	ctx := context.Background()

	// the one shared handle: created here, passed down, never mutated
	tree, err := store.NewFirebaseTree(ctx, cfg.Firebase.CredentialsFile, cfg.Firebase.DatabaseURL)
	if err != nil {
		log.Fatalf("connect database: %v", err)
	}
	adapter := store.NewAdapter(tree)
	engine := query.NewEngine(adapter)
	products := handler.NewProductHandler(adapter, engine)

	r := router.SetupRouter(cfg, products)

	addr := fmt.Sprintf("%s:%d", cfg.Server.Address, cfg.Server.Port)
	log.Printf("server listening on %s", addr)
	if err := r.Run(addr); err != nil {
		log.Fatalf("run server: %v", err)
	}
}
