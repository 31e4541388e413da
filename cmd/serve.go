package cmd

import (
	"fmt"
	"log"

	"github.com/spf13/cobra"

	"gudang.GO/api"
	"gudang.GO/config"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the HTTP API server",
	Run: func(cmd *cobra.Command, args []string) {
		config.LoadAppConfig()

		db, err := config.NewDB()
		if err != nil {
			fail("Database connection failed: %v", err)
		}
		sqlDB, err := db.DB()
		if err != nil {
			fail("Database connection failed: %v", err)
		}
		if err := sqlDB.Ping(); err != nil {
			fail("Database connection failed: %v", err)
		}

		e := api.NewServer(db)
		port := config.AppConfig.Port
		fmt.Printf("Server running on http://localhost:%s\n", port)
		log.Fatal(e.Start(":" + port))
	},
}

func init() {
	rootCmd.AddCommand(serveCmd)
}
