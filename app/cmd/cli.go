package cmd

import (
	"context"
	"log"
	"os"

	"github.com/nandasafiq/go-storefront/app/configs"
	"github.com/nandasafiq/go-storefront/app/db/seeders"
	"github.com/nandasafiq/go-storefront/app/models/migrations"
	"github.com/urfave/cli/v3"
)

func RunCli() {
	cmd := &cli.Command{
		Commands: []*cli.Command{
			{
				Name:  "migrate",
				Usage: "Run database migration",
				Action: func(ctx context.Context, c *cli.Command) error {
					db, err := configs.OpenConnection()
					if err != nil {
						return err
					}
					if err := migrations.AutoMigrate(db); err != nil {
						return err
					}
					log.Println("Migration complete")
					return nil
				},
			},
			{
				Name:  "seed",
				Usage: "Fill the database with sample categories, products and users",
				Action: func(ctx context.Context, c *cli.Command) error {
					db, err := configs.OpenConnection()
					if err != nil {
						return err
					}
					if err := seeders.DBSeed(db); err != nil {
						return err
					}
					log.Println("Seeding complete")
					return nil
				},
			},
			{
				Name:  "generate-keys",
				Usage: "Generate new session and CSRF keys for .env",
				Action: func(ctx context.Context, c *cli.Command) error {
					return configs.GenerateAndPrintSessionKeys()
				},
			},
		},
	}

	if err := cmd.Run(context.Background(), os.Args); err != nil {
		log.Fatal(err)
	}
}
