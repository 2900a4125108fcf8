package main

import (
	"context"
	"fmt"
	"os"

	"github.com/dmitrijs2005/pocketbank/internal/buildinfo"
	"github.com/dmitrijs2005/pocketbank/internal/client/cli"
	"github.com/dmitrijs2005/pocketbank/internal/client/config"
	"github.com/dmitrijs2005/pocketbank/internal/client/database"
	"github.com/dmitrijs2005/pocketbank/internal/client/repositories/accounts"
	"github.com/dmitrijs2005/pocketbank/internal/client/repositories/kv"
	"github.com/dmitrijs2005/pocketbank/internal/client/services"
	"github.com/dmitrijs2005/pocketbank/internal/filex"
	"github.com/dmitrijs2005/pocketbank/internal/logging"
	"github.com/dmitrijs2005/pocketbank/internal/timex"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run() error {
	buildinfo.PrintBuildData(os.Stdout)

	ctx := context.Background()

	cfg, err := config.LoadConfig(os.Args[1:])
	if err != nil {
		return err
	}

	log, err := logging.New(os.Stderr, cfg.LogLevel)
	if err != nil {
		return err
	}

	if err := filex.EnsureParentDir(cfg.DatabasePath); err != nil {
		return fmt.Errorf("error preparing database directory: %w", err)
	}

	db, err := database.InitDatabase(ctx, cfg.DatabasePath)
	if err != nil {
		return fmt.Errorf("error initializing database: %w", err)
	}
	defer db.Close()

	store := kv.NewSQLiteRepository(db)
	app := cli.NewApp(
		services.NewAccountService(accounts.NewKVRepository(store), cfg, log),
		services.NewDepositService(store, timex.System(), log),
		services.NewReconciler(store, log),
		log,
		os.Stdin,
		os.Stdout,
	)

	log.Debug(ctx, "starting", "db", cfg.DatabasePath, "create_mode", cfg.CreateMode, "password_storage", cfg.PasswordStorage)
	app.Run(ctx)
	return nil
}
