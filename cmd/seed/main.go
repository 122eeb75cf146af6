// Command seed loads a YAML knowledge base into MongoDB.
package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.uber.org/zap"

	"github.com/campusassist/campus-assist/internal/config"
	"github.com/campusassist/campus-assist/internal/knowledge"
	"github.com/campusassist/campus-assist/internal/repository"
)

func main() {
	var (
		file    string
		dryRun  bool
		timeout time.Duration
	)

	rootCmd := &cobra.Command{
		Use:   "seed",
		Short: "Load curated FAQs and documents into the knowledge store",
		RunE: func(cmd *cobra.Command, args []string) error {
			logger, err := zap.NewDevelopment()
			if err != nil {
				return err
			}
			defer logger.Sync()

			f, err := os.Open(file)
			if err != nil {
				return fmt.Errorf("open knowledge base: %w", err)
			}
			defer f.Close()

			kb, err := knowledge.Parse(f)
			if err != nil {
				return err
			}
			if dryRun {
				fmt.Printf("%s is valid: %d FAQs, %d documents\n", file, len(kb.FAQs), len(kb.Documents))
				return nil
			}

			cfg, err := config.Load()
			if err != nil {
				return err
			}

			ctx, cancel := context.WithTimeout(cmd.Context(), timeout)
			defer cancel()

			client, err := mongo.Connect(ctx, options.Client().ApplyURI(cfg.Mongo.URI))
			if err != nil {
				return fmt.Errorf("connect to %s: %w", config.SanitizeURI(cfg.Mongo.URI), err)
			}
			defer client.Disconnect(context.Background())

			db := client.Database(cfg.Mongo.Database)
			seeder := knowledge.NewSeeder(repository.NewFAQRepo(db), repository.NewDocumentRepo(db), logger)

			res, err := seeder.Seed(ctx, kb)
			if err != nil {
				return err
			}
			fmt.Printf("Seeded %d FAQs and %d documents into %s\n", res.FAQs, res.Documents, cfg.Mongo.Database)
			return nil
		},
	}

	rootCmd.Flags().StringVarP(&file, "file", "f", "seed/knowledge_base.yaml", "knowledge base YAML file")
	rootCmd.Flags().BoolVar(&dryRun, "dry-run", false, "validate the file without writing")
	rootCmd.Flags().DurationVar(&timeout, "timeout", 30*time.Second, "overall time limit")

	if err := rootCmd.ExecuteContext(context.Background()); err != nil {
		os.Exit(1)
	}
}
