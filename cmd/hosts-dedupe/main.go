package main

import (
	"fmt"
	"log"

	"github.com/pinguimprofissional/hosts/internal/app"
	"github.com/pinguimprofissional/hosts/internal/config"
	"github.com/pinguimprofissional/hosts/internal/logger"
)

func main() {
	lc := config.LoadLog()
	zl := logger.New(logger.Options{Level: lc.Level, File: lc.File})
	defer zl.Sync()

	res, err := app.Dedupe(zl.Named("app"), config.LoadDedupe())
	if err != nil {
		zl.Sync()
		log.Fatalf("dedupe: %v", err)
	}

	fmt.Printf("%d linhas únicas gravadas em '%s'.\n", res.Lines, res.Path)
}
