package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/pinguimprofissional/hosts/internal/app"
	"github.com/pinguimprofissional/hosts/internal/config"
	"github.com/pinguimprofissional/hosts/internal/logger"
	"github.com/pinguimprofissional/hosts/internal/source"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	cfg, err := config.LoadMerge()
	if errors.Is(err, config.ErrNoSources) {
		fmt.Println("Adicione URLs em HOSTS_SOURCES antes de rodar.")
		os.Exit(1)
	}
	if err != nil {
		log.Fatalf("config: %v", err)
	}

	lc := config.LoadLog()
	zl := logger.New(logger.Options{Level: lc.Level, File: lc.File})
	defer zl.Sync()

	res, err := app.Merge(ctx, zl.Named("app"), cfg, source.NewClient(cfg.FetchTimeout))
	if err != nil {
		zl.Sync()
		log.Fatalf("merge: %v", err)
	}

	fmt.Printf("Pronto — %d entradas escritas em %s\n", res.Entries, res.Path)
}
