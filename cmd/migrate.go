package cmd

import (
	"errors"
	"fmt"
	"os"

	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/mysql"
	_ "github.com/golang-migrate/migrate/v4/source/file"
	"github.com/spf13/cobra"
)

var (
	migrateDir  string
	migrateDown bool
)

func migrateURL() (string, error) {
	host := os.Getenv("MYSQL_HOST")
	if host == "" {
		return "", fmt.Errorf("db:migrate requires MySQL (set MYSQL_HOST); the sqlite fallback is schema-managed via AutoMigrate")
	}
	port := os.Getenv("MYSQL_PORT")
	if port == "" {
		port = "3306"
	}
	return fmt.Sprintf("mysql://%s:%s@tcp(%s:%s)/%s?multiStatements=true",
		os.Getenv("MYSQL_USER"), os.Getenv("MYSQL_PASS"), host, port, os.Getenv("MYSQL_DB")), nil
}

var migrateCmd = &cobra.Command{
	Use:   "db:migrate",
	Short: "Apply SQL migrations (use --down to roll back one step)",
	Run: func(cmd *cobra.Command, args []string) {
		url, err := migrateURL()
		if err != nil {
			fmt.Println(err)
			os.Exit(1)
		}
		m, err := migrate.New("file://"+migrateDir, url)
		if err != nil {
			fmt.Printf("Migration setup failed: %v\n", err)
			os.Exit(1)
		}
		defer m.Close()

		if migrateDown {
			err = m.Steps(-1)
		} else {
			err = m.Up()
		}
		if errors.Is(err, migrate.ErrNoChange) {
			fmt.Println("Database is up to date")
			return
		}
		if err != nil {
			fmt.Printf("Migration failed: %v\n", err)
			os.Exit(1)
		}
		fmt.Println("Migrations applied")
	},
}

func init() {
	migrateCmd.Flags().StringVar(&migrateDir, "dir", "migrations", "Directory with migration files")
	migrateCmd.Flags().BoolVar(&migrateDown, "down", false, "Roll back the most recent migration")
	rootCmd.AddCommand(migrateCmd)
}
