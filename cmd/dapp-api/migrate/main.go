package main

import (
	"context"
	"flag"
	"log"

	"github.com/chainsafe/dapp-gateway/pkg/config"
	"github.com/chainsafe/dapp-gateway/pkg/migrations/dappdb"
	"github.com/chainsafe/dapp-gateway/pkg/pgutil"
	mghelper "github.com/chainsafe/dapp-gateway/pkg/pgutil/migrations"

	"github.com/uptrace/bun/migrate"
)

func main() {
	cfgPath := flag.String("config", "config.example.yaml", "Path to configuration file")
	flag.Usage = mghelper.Usage
	flag.Parse()

	// Load configuration
	cfg, err := config.Load(*cfgPath)
	if err != nil {
		log.Fatalf("error reading configuration file: %s", err.Error())
	}

	ctx := context.Background()

	// Connect to database
	db, err := pgutil.ConnectDB(ctx, &cfg.Database, nil)
	if err != nil {
		log.Fatalf("error connecting to database: %s", err.Error())
	}
	defer db.Close()

	log.Printf("Running migrations for transaction journal (%s)...\n", cfg.Database.Database)

	// Create migrator
	migrator := migrate.NewMigrator(db, dappdb.Migrations)

	if args := flag.Args(); len(args) > 0 && args[0] == "reset" {
		if err := dappdb.Reset(ctx, db); err != nil {
			log.Fatalf("error resetting journal: %s", err.Error())
		}
		log.Println("transaction journal emptied")
		return
	}

	// Run migrations with args
	err = mghelper.RunMigrations(ctx, migrator, flag.Args()...)
	if err != nil {
		mghelper.Exitf(err.Error())
	}
}
