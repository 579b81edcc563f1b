//cmd/seeder/main.go
package main

import (
	"fmt"
	"log"
	"os"

	_ "github.com/lib/pq"

	"github.com/iffertmedia/dashboard-backend/internal/db"
)

// Applies the schema (and any extra SQL files passed as arguments) to the
// database pointed at by DATABASE_URL.
func main() {
	dsn := os.Getenv("DATABASE_URL")
	if dsn == "" {
		log.Fatal("DATABASE_URL is required")
	}

	conn, err := db.Open(dsn)
	if err != nil {
		log.Fatal(err)
	}
	defer conn.Close()

	seedFiles := []string{"seed/schema.sql"}
	seedFiles = append(seedFiles, os.Args[1:]...)

	for _, file := range seedFiles {
		content, err := os.ReadFile(file)
		if err != nil {
			log.Fatalf("failed to read %s: %v", file, err)
		}

		if _, err = conn.Exec(string(content)); err != nil {
			log.Fatalf("failed to execute %s: %v", file, err)
		}
		fmt.Printf("Applied: %s\n", file)
	}

	fmt.Println("Database setup completed successfully!")
}
