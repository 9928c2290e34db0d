package database

import (
	"database/sql"

	"golang.org/x/crypto/bcrypt"
	_ "modernc.org/sqlite" // SQLite driver
)

// New creates a new database connection pool.
//
// The default DSN points at a shared in-memory database. database/sql opens
// connections lazily, and each fresh connection to a plain :memory: DSN would
// see its own empty database, so the pool is pinned to a single connection.
// That single connection also serializes row inserts, which is what gives
// concurrent registrations their exactly-one-winner behavior on the email
// uniqueness constraint.
func New(dataSourceName string) (*sql.DB, error) {
	db, err := sql.Open("sqlite", dataSourceName)
	if err != nil {
		return nil, err
	}
	db.SetMaxOpenConns(1)
	if err = db.Ping(); err != nil {
		return nil, err
	}
	return db, nil
}

// Migrate runs the SQL statements to set up the database schema.
func Migrate(db *sql.DB) error {
	const sqlStmt = `
	CREATE TABLE IF NOT EXISTS users (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		email TEXT UNIQUE,
		password TEXT,
		name TEXT,
		created_at DATETIME DEFAULT CURRENT_TIMESTAMP
	);

	CREATE TABLE IF NOT EXISTS insights (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		user_id INTEGER NOT NULL,
		title TEXT,
		description TEXT,
		confidence REAL,
		category TEXT,
		created_at DATETIME DEFAULT CURRENT_TIMESTAMP,
		FOREIGN KEY(user_id) REFERENCES users(id)
	);

	CREATE TABLE IF NOT EXISTS predictions (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		user_id INTEGER NOT NULL,
		input_data TEXT,
		prediction TEXT,
		accuracy REAL,
		created_at DATETIME DEFAULT CURRENT_TIMESTAMP,
		FOREIGN KEY(user_id) REFERENCES users(id)
	);
	`
	_, err := db.Exec(sqlStmt)
	return err
}

// Seed inserts the demo accounts and sample insights so a fresh in-memory
// database has something to show on the dashboard.
func Seed(db *sql.DB) error {
	sampleUsers := []struct {
		email, password, name string
	}{
		{"demo@auroramind.ai", "Demo@123", "Demo User"},
		{"innovator@auroramind.ai", "Innovator@123", "Innovation Pro"},
	}

	for _, u := range sampleUsers {
		hash, err := bcrypt.GenerateFromPassword([]byte(u.password), bcrypt.DefaultCost)
		if err != nil {
			return err
		}
		if _, err := db.Exec(
			"INSERT OR IGNORE INTO users (email, password, name) VALUES (?, ?, ?)",
			u.email, string(hash), u.name,
		); err != nil {
			return err
		}
	}

	sampleInsights := []struct {
		userID      int64
		title       string
		description string
		confidence  float64
		category    string
	}{
		{1, "Market Surge Detected", "AI predicted 23% growth in Q2 based on emerging patterns", 0.94, "Prediction"},
		{1, "Cost Optimization", "Identified $2.3M in operational savings across 7 departments", 0.89, "Optimization"},
		{2, "Risk Alert", "Detected anomalies in supply chain requiring immediate attention", 0.91, "Alert"},
	}

	for _, in := range sampleInsights {
		if _, err := db.Exec(
			"INSERT INTO insights (user_id, title, description, confidence, category) VALUES (?, ?, ?, ?, ?)",
			in.userID, in.title, in.description, in.confidence, in.category,
		); err != nil {
			return err
		}
	}

	return nil
}
