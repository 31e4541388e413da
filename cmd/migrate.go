package cmd

import (
	"database/sql"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/golang-migrate/migrate/v4"
	migratemysql "github.com/golang-migrate/migrate/v4/database/mysql"
	"github.com/golang-migrate/migrate/v4/source/iofs"
	"github.com/spf13/cobra"

	"gudang.GO/config"
	"gudang.GO/migrations"
)

// Tables dropped by migrate:fresh, dependents first. The singular names are
// legacy leftovers from before the schema rename.
var freshTables = []string{
	"transaction_items",
	"transactions",
	"item",
	"items",
	"category",
	"categories",
	"schema_migrations",
}

func openMigrator() (*migrate.Migrate, *sql.DB, error) {
	// Dedicated connection: the migration files hold several statements each.
	dsn := config.DSN()
	if !strings.Contains(dsn, "multiStatements=") {
		dsn += "&multiStatements=true"
	}
	db, err := sql.Open("mysql", dsn)
	if err != nil {
		return nil, nil, fmt.Errorf("open database: %w", err)
	}

	driver, err := migratemysql.WithInstance(db, &migratemysql.Config{})
	if err != nil {
		db.Close()
		return nil, nil, fmt.Errorf("migration driver: %w", err)
	}
	src, err := iofs.New(migrations.FS, ".")
	if err != nil {
		db.Close()
		return nil, nil, fmt.Errorf("migration source: %w", err)
	}
	m, err := migrate.NewWithInstance("iofs", src, "mysql", driver)
	if err != nil {
		db.Close()
		return nil, nil, fmt.Errorf("migrator: %w", err)
	}
	return m, db, nil
}

func fail(format string, args ...interface{}) {
	fmt.Fprintf(os.Stderr, format+"\n", args...)
	os.Exit(1)
}

func migrateUp() {
	m, db, err := openMigrator()
	if err != nil {
		fail("Failed to migrate up: %v", err)
	}
	defer db.Close()

	if err := m.Up(); err != nil {
		if errors.Is(err, migrate.ErrNoChange) {
			fmt.Println("No pending migrations")
			return
		}
		fail("Failed to migrate up: %v", err)
	}
	fmt.Println("Migrations applied successfully")
}

var migrateUpCmd = &cobra.Command{
	Use:   "migrate:up",
	Short: "Apply all pending schema migrations",
	Run: func(cmd *cobra.Command, args []string) {
		migrateUp()
	},
}

var migrateDownCmd = &cobra.Command{
	Use:   "migrate:down",
	Short: "Revert the last applied schema migration",
	Run: func(cmd *cobra.Command, args []string) {
		m, db, err := openMigrator()
		if err != nil {
			fail("Failed to migrate down: %v", err)
		}
		defer db.Close()

		if err := m.Steps(-1); err != nil {
			if errors.Is(err, migrate.ErrNoChange) {
				fmt.Println("No migrations to roll back")
				return
			}
			fail("Failed to migrate down: %v", err)
		}
		fmt.Println("Last migration rolled back successfully")
	},
}

var migrateFreshCmd = &cobra.Command{
	Use:   "migrate:fresh",
	Short: "Drop all known tables (including legacy names) and re-apply every migration",
	Run: func(cmd *cobra.Command, args []string) {
		gdb, err := config.NewDB()
		if err != nil {
			fail("Failed to migrate fresh: %v", err)
		}

		fmt.Println("Dropping all tables...")
		// Disable FK checks so drop order does not matter.
		if err := gdb.Exec("SET FOREIGN_KEY_CHECKS = 0").Error; err != nil {
			fail("Failed to migrate fresh: %v", err)
		}
		for _, table := range freshTables {
			if err := gdb.Exec("DROP TABLE IF EXISTS `" + table + "`").Error; err != nil {
				fail("Failed to drop table %s: %v", table, err)
			}
		}
		if err := gdb.Exec("SET FOREIGN_KEY_CHECKS = 1").Error; err != nil {
			fail("Failed to migrate fresh: %v", err)
		}

		fmt.Println("All tables dropped. Running migrations...")
		migrateUp()
	},
}

func init() {
	rootCmd.AddCommand(migrateUpCmd)
	rootCmd.AddCommand(migrateDownCmd)
	rootCmd.AddCommand(migrateFreshCmd)
}
