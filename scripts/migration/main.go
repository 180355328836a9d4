package main

import (
	"database/sql"
	"log"

	_ "github.com/go-sql-driver/mysql"

	"github.com/Waseemalame/unwokeai/config"
	"github.com/Waseemalame/unwokeai/db"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}

	sqlDB, err := sql.Open("mysql", cfg.DSN())
	if err != nil {
		log.Fatal(err)
	}
	defer sqlDB.Close()

	if err := sqlDB.Ping(); err != nil {
		log.Fatal("Failed to connect to DB:", err)
	}

	if err := db.Migrate(sqlDB); err != nil {
		log.Fatal(err)
	}
	log.Println("Migration completed.")
}
