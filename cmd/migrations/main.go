package main

import (
	"database/sql"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"regexp"
	"sort"
	"strings"

	"github.com/joho/godotenv"
	_ "github.com/lib/pq"
)

func main() {
	err := godotenv.Load()
	if err != nil {
		log.Fatal("Error loading .env file")
	}

	connStr := dbConnString()
	db, err := sql.Open("postgres", connStr)
	if err != nil {
		log.Fatal(err)
	}
	defer db.Close()

	basePath := filepath.Join(".", "internal", "adapters", "repository", "postgres", "migrations")

	// With a migration name, run just that migration. Otherwise run every
	// up migration in order.
	if len(os.Args) >= 2 {
		fileContent, err := migrationFileContent(basePath, os.Args[1])
		if err != nil {
			log.Fatal(err)
		}
		if _, err := db.Exec(string(fileContent)); err != nil {
			log.Fatalf("Failed to execute SQL file: %v", err)
		}
		fmt.Println("Migration file executed successfully.")
		return
	}

	files, err := upMigrationFiles(basePath)
	if err != nil {
		log.Fatal(err)
	}

	for _, f := range files {
		fileContent, err := os.ReadFile(filepath.Join(basePath, f))
		if err != nil {
			log.Fatal(err)
		}
		if _, err := db.Exec(string(fileContent)); err != nil {
			log.Fatalf("Failed to execute %s: %v", f, err)
		}
		fmt.Printf("Applied %s\n", f)
	}
}

func upMigrationFiles(basePath string) ([]string, error) {
	entries, err := os.ReadDir(basePath)
	if err != nil {
		return nil, err
	}

	var files []string
	for _, f := range entries {
		if f.IsDir() || !strings.HasSuffix(f.Name(), "_up.sql") {
			continue
		}
		files = append(files, f.Name())
	}
	sort.Strings(files)
	return files, nil
}

func migrationFileContent(basePath string, migrationName string) ([]byte, error) {
	filePath, err := migrationFilePath(basePath, migrationName)
	if err != nil {
		return nil, err
	}

	fileContent, err := os.ReadFile(filepath.Join(basePath, filePath))
	if err != nil {
		return nil, err
	}

	return fileContent, nil
}

func migrationFilePath(basePath string, migrationName string) (string, error) {
	patternStr := fmt.Sprintf(`^.*%s\.sql`, regexp.QuoteMeta(migrationName))

	regex, err := regexp.Compile(patternStr)
	if err != nil {
		log.Fatalf("Invalid pattern: %v", err)
	}

	files, _ := os.ReadDir(basePath)
	for _, f := range files {
		if f.IsDir() {
			continue
		}

		if regex.MatchString(f.Name()) {
			return f.Name(), nil
		}
	}

	return "", fmt.Errorf("migration file not found")
}

func dbConnString() string {
	dbName, user, password, host, port := dbConfig()
	return fmt.Sprintf("postgres://%s:%s@%s:%s/%s?sslmode=disable", user, password, host, port, dbName)
}

func dbConfig() (dbName string, user string, password string, host string, port string) {
	dbName = os.Getenv("POSTGRES_DB")
	user = os.Getenv("POSTGRES_USER")
	password = os.Getenv("POSTGRES_PASSWORD")
	host = os.Getenv("POSTGRES_HOST")
	port = os.Getenv("POSTGRES_PORT")
	return
}
