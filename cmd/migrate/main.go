package main

import (
	"database/sql"
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/joho/godotenv"
	_ "github.com/lib/pq"
)

func main() {
	_ = godotenv.Load()

	dsn := os.Getenv("DATABASE_URL")
	if dsn == "" {
		log.Fatal("DATABASE_URL is required")
	}

	dir := "migrations"
	listOnly := false
	for _, a := range os.Args[1:] {
		if a == "--list" {
			listOnly = true
		} else {
			dir = a
		}
	}

	db, err := sql.Open("postgres", dsn)
	if err != nil {
		log.Fatalf("connect: %v", err)
	}
	defer db.Close()

	if err := db.Ping(); err != nil {
		log.Fatalf("ping: %v", err)
	}
	log.Println("Connected to database")

	if listOnly {
		if err := listTables(db, os.Stdout); err != nil {
			log.Fatal(err)
		}
		return
	}

	okCount, errCount, err := applyDir(db, dir, os.Stdout)
	if err != nil {
		log.Fatal(err)
	}
	log.Printf("Done: %d OK, %d errors", okCount, errCount)
	if errCount > 0 {
		os.Exit(1)
	}
	log.Println("Migrations complete")
}

func listTables(db *sql.DB, out io.Writer) error {
	rows, err := db.Query("SELECT tablename FROM pg_tables WHERE schemaname='public' AND tablename LIKE 'bulkmail_%' ORDER BY tablename")
	if err != nil {
		return err
	}
	defer rows.Close()
	n := 0
	for rows.Next() {
		var t string
		if err := rows.Scan(&t); err != nil {
			return err
		}
		fmt.Fprintln(out, " ", t)
		n++
	}
	fmt.Fprintf(out, "Total: %d tables\n", n)
	return rows.Err()
}

// migrationFiles returns the non-empty *.sql files in dir, sorted by name.
func migrationFiles(dir string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("read migrations dir %s: %w", dir, err)
	}
	var files []string
	for _, e := range entries {
		if !e.IsDir() && strings.HasSuffix(e.Name(), ".sql") {
			files = append(files, e.Name())
		}
	}
	sort.Strings(files)
	return files, nil
}

// applyDir runs each migration file in its own transaction. A failing file
// is rolled back and reported; later files still run.
func applyDir(db *sql.DB, dir string, out io.Writer) (okCount, errCount int, err error) {
	files, err := migrationFiles(dir)
	if err != nil {
		return 0, 0, err
	}

	for _, f := range files {
		path := filepath.Join(dir, f)
		data, err := os.ReadFile(path)
		if err != nil {
			return okCount, errCount, fmt.Errorf("read %s: %w", path, err)
		}
		content := string(data)
		if strings.TrimSpace(content) == "" {
			continue
		}
		fmt.Fprintf(out, "  %s ... ", f)

		tx, err := db.Begin()
		if err != nil {
			fmt.Fprintf(out, "BEGIN ERROR: %v\n", err)
			errCount++
			continue
		}
		if _, err := tx.Exec(content); err != nil {
			_ = tx.Rollback()
			fmt.Fprintf(out, "ERROR: %v\n", err)
			errCount++
			continue
		}
		if err := tx.Commit(); err != nil {
			fmt.Fprintf(out, "COMMIT ERROR: %v\n", err)
			errCount++
			continue
		}
		fmt.Fprintln(out, "OK")
		okCount++
	}
	return okCount, errCount, nil
}
