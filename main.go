//go:build !cli
// +build !cli

package main

import (
	"log"

	"gudang.GO/api"
	"gudang.GO/config"
)

func main() {
	config.LoadEnv()
	config.LoadAppConfig()

	db, err := config.NewDB()
	if err != nil {
		log.Fatalf("failed to connect to DB: %v", err)
	}

	// Check DB connection
	sqldb, err := db.DB()
	if err != nil {
		log.Fatalf("failed to get DB instance: %v", err)
	}
	if err := sqldb.Ping(); err != nil {
		log.Fatalf("database connection failed: %v", err)
	}
	log.Println("Database connection successful.")

	e := api.NewServer(db)

	port := config.AppConfig.Port
	log.Printf("Server running on :%s", port)
	e.Logger.Fatal(e.Start(":" + port))
}
