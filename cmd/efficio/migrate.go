package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/efficio-cad/efficio/internal/history"
)

// handleMigrate manages the history database schema. The build and
// history commands migrate automatically; this exists for inspecting
// state and recovering from a failed migration.
func handleMigrate(args []string) {
	fs := flag.NewFlagSet("migrate", flag.ExitOnError)
	dbPath := fs.String("db", defaultDBFile, "Build history database")
	fs.Parse(args)

	rest := fs.Args()
	if len(rest) < 1 {
		printMigrateHelp()
		os.Exit(1)
	}
	action := rest[0]

	db, err := history.Open(*dbPath)
	if err != nil {
		log.Fatalf("Failed to open database: %v", err)
	}
	defer db.Close()

	switch action {
	case "up":
		log.Printf("Running migrations...")
		if err := db.MigrateUp(); err != nil {
			log.Fatalf("Migration up failed: %v", err)
		}
		log.Println("✓ All migrations applied")
		printMigrateVersion(db)

	case "down":
		log.Printf("Rolling back one migration...")
		if err := db.MigrateDown(); err != nil {
			log.Fatalf("Migration down failed: %v", err)
		}
		log.Println("✓ Migration rolled back")
		printMigrateVersion(db)

	case "status":
		version, dirty, err := db.MigrateVersion()
		if err != nil {
			log.Fatalf("Failed to get migration status: %v", err)
		}
		fmt.Printf("Current version: %d\n", version)
		fmt.Printf("Dirty: %v\n", dirty)
		if dirty {
			fmt.Println("\nWARNING: a migration failed mid-execution.")
			fmt.Println("Inspect the database, fix any issues, then run: efficio migrate force <version>")
		}

	case "force":
		if len(rest) < 2 {
			log.Fatal("Usage: efficio migrate force <version>")
		}
		var forceVersion int
		if _, err := fmt.Sscanf(rest[1], "%d", &forceVersion); err != nil {
			log.Fatalf("Invalid version number: %s", rest[1])
		}
		fmt.Printf("WARNING: forcing migration version to %d.\n", forceVersion)
		fmt.Println("This should only be used to recover from a dirty migration state.")
		fmt.Print("Continue? [y/N]: ")
		var response string
		fmt.Scanln(&response)
		if response != "y" && response != "Y" {
			log.Println("Aborted")
			os.Exit(0)
		}
		if err := db.MigrateForce(forceVersion); err != nil {
			log.Fatalf("Force migration failed: %v", err)
		}
		log.Printf("✓ Migration version forced to %d", forceVersion)

	case "help":
		printMigrateHelp()

	default:
		fmt.Printf("Unknown migrate action: %s\n\n", action)
		printMigrateHelp()
		os.Exit(1)
	}
}

func printMigrateVersion(db *history.DB) {
	version, dirty, err := db.MigrateVersion()
	if err != nil {
		return
	}
	log.Printf("Current version: %d (dirty: %v)", version, dirty)
}

func printMigrateHelp() {
	fmt.Println("History Database Migration Commands")
	fmt.Println()
	fmt.Println("Usage: efficio migrate [-db <path>] <command>")
	fmt.Println()
	fmt.Println("Commands:")
	fmt.Println("  up           Apply all pending migrations")
	fmt.Println("  down         Rollback one migration")
	fmt.Println("  status       Show current migration version")
	fmt.Println("  force <N>    Force migration version to N (recovery only)")
	fmt.Println("  help         Show this help message")
	fmt.Println()
	fmt.Println("Examples:")
	fmt.Println("  efficio migrate up")
	fmt.Println("  efficio migrate status")
	fmt.Println("  efficio migrate -db builds.db force 2")
}
