// Command seed wipes the database and loads the sample data set.
package main

import (
	"context"
	"log"

	"github.com/LovationAdmin/travel-api/config"
	"github.com/LovationAdmin/travel-api/migration"
	"github.com/LovationAdmin/travel-api/utils"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal("Invalid configuration: ", err)
	}
	utils.ConfigureLogging(cfg.IsProduction(), cfg.LogLevel)

	db, err := config.InitDB(cfg.DatabaseURL)
	if err != nil {
		log.Fatal("Failed to connect to database: ", err)
	}
	defer db.Close()

	if err := config.RunMigrations(db); err != nil {
		log.Fatal("Failed to run migrations: ", err)
	}

	gdb, err := config.OpenGorm(db, cfg.IsProduction())
	if err != nil {
		log.Fatal("Failed to initialise gorm: ", err)
	}

	if err := migration.NewSeeder(gdb).Seed(context.Background()); err != nil {
		log.Fatal("Seeding failed: ", err)
	}
	utils.SafeLog("✅ Database seeded successfully")
}
