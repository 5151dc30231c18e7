package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"applause-ledger/internal/platform/config"
	"applause-ledger/internal/platform/logger"
)

const programName = "applause-ledger"

var configFile string

// @title Applause Ledger API
// @version 1.0
// @description Aplausos entre compañeros: cada 15 la persona debe traer comida.
// @BasePath /
func main() {
	root := &cobra.Command{
		Use:           programName,
		Short:         "Applause ledger HTTP API",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.PersistentFlags().StringVarP(&configFile, "config", "c", "", "path to YAML config file")

	root.AddCommand(serveCommand(), seedCommand())

	// sin subcomando: serve
	root.RunE = serveCommand().RunE

	if err := root.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func loadConfig() (*config.Config, logger.Logger, error) {
	cfg, err := config.Load(configFile)
	if err != nil {
		return nil, nil, err
	}
	log := logger.New(logger.Options{
		Level:  logger.ParseLevel(cfg.Log.Level),
		Format: logger.ParseFormat(cfg.Log.Format),
		App:    cfg.Log.App,
	})
	return cfg, log, nil
}
