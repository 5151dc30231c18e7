package main

import (
	"time"

	"github.com/spf13/cobra"

	"applause-ledger/internal/adapters/storage/kvrepo"
	"applause-ledger/internal/domain/people"
	"applause-ledger/internal/seed"
)

func seedCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "seed",
		Short: "Load the sample team if the store is empty",
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, log, err := loadConfig()
			if err != nil {
				return err
			}

			store, err := openStore(cmd.Context(), cfg.Storage, log)
			if err != nil {
				return err
			}
			defer store.Close()

			n, err := seed.EnsureSampleData(cmd.Context(), people.NewService(kvrepo.NewPeopleRepo(store)), log, time.Now())
			if err != nil {
				return err
			}
			cmd.Printf("seeded %d people\n", n)
			return nil
		},
	}
}
