package database

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"

	_ "github.com/jackc/pgx/v5/stdlib" // PostgreSQL driver for database/sql
)

var db *sql.DB

// GetDB returns the shared database handle.
func GetDB() *sql.DB {
	return db
}

// StartPostgreSQL opens the PostgreSQL connection and creates the tables if
// they do not exist yet.
func StartPostgreSQL() error {
	uri := os.Getenv("POSTGRESQL_URI")
	if uri == "" {
		return errors.New("you must set your 'POSTGRESQL_URI' environmental variable")
	}

	var err error
	db, err = sql.Open("pgx", uri)
	if err != nil {
		return fmt.Errorf("failed to open database connection: %w", err)
	}

	err = db.PingContext(context.Background())
	if err != nil {
		return fmt.Errorf("cannot connect to PostgreSQL: %w", err)
	}

	fmt.Println("Connected to PostgreSQL successfully")

	err = createTables()
	if err != nil {
		return fmt.Errorf("failed to create tables: %w", err)
	}

	return nil
}

// createTables creates the tables if they do not exist. The UNIQUE
// constraints on users.email and users.username are the actual uniqueness
// guarantee; the handler-level pre-checks only exist for friendlier errors.
func createTables() error {
	query := `
	CREATE TABLE IF NOT EXISTS users (
		id SERIAL PRIMARY KEY,
		name VARCHAR(255) NOT NULL,
		email VARCHAR(50) UNIQUE NOT NULL,
		username VARCHAR(50) UNIQUE NOT NULL,
		password TEXT NOT NULL
	);

	CREATE TABLE IF NOT EXISTS todos (
		id VARCHAR(50) PRIMARY KEY,
		title VARCHAR(100) NOT NULL,
		description TEXT NOT NULL DEFAULT '',
		completed BOOLEAN NOT NULL DEFAULT FALSE,
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
		user_id INTEGER NOT NULL REFERENCES users(id),
		username VARCHAR(50) NOT NULL
	);

	CREATE TABLE IF NOT EXISTS sessions (
		token VARCHAR(128) PRIMARY KEY,
		is_auth BOOLEAN NOT NULL DEFAULT FALSE,
		user_id INTEGER NOT NULL,
		username VARCHAR(50) NOT NULL,
		email VARCHAR(50) NOT NULL,
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
		expires_at TIMESTAMPTZ NOT NULL
	);

	CREATE INDEX IF NOT EXISTS idx_todos_username ON todos (username);
	CREATE INDEX IF NOT EXISTS idx_sessions_email ON sessions (email)
	`
	_, err := db.Exec(query)
	if err != nil {
		return err
	}

	fmt.Println("Tables created or already exist")
	return nil
}

// ClosePostgreSQL closes the database connection.
func ClosePostgreSQL() {
	if db != nil {
		err := db.Close()
		if err != nil {
			panic(err)
		}
		fmt.Println("Database connection closed")
	}
}
