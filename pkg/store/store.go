package store

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite"

	"pfimport/pkg/models"
)

// Store is the sqlite persistence layer. It owns the schema; the pipeline
// only uses the operations exposed here.
type Store struct {
	db *sql.DB
}

// Open opens (or creates) the database at path and ensures the schema and
// seed categories exist.
func Open(path string) (*Store, error) {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("creating db directory: %w", err)
		}
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}
	if _, err := db.Exec("PRAGMA foreign_keys = ON"); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("enabling foreign keys: %w", err)
	}

	s := &Store{db: db}
	if err := s.init(); err != nil {
		_ = db.Close()
		return nil, err
	}
	return s, nil
}

func (s *Store) Close() error {
	return s.db.Close()
}

var schema = []string{
	`CREATE TABLE IF NOT EXISTS accounts (
		id INTEGER PRIMARY KEY,
		type TEXT NOT NULL,
		name TEXT NOT NULL,
		institution TEXT,
		currency TEXT NOT NULL DEFAULT 'USD',
		opened_at DATE,
		closed_at DATE
	)`,
	`CREATE INDEX IF NOT EXISTS idx_accounts_type ON accounts(type)`,
	`CREATE TABLE IF NOT EXISTS statements (
		id INTEGER PRIMARY KEY,
		account_id INTEGER NOT NULL REFERENCES accounts(id),
		period_start DATE NOT NULL,
		period_end DATE NOT NULL,
		source_file_path TEXT NOT NULL,
		source_file_hash TEXT NOT NULL,
		imported_at DATETIME NOT NULL,
		status TEXT NOT NULL DEFAULT 'imported',
		UNIQUE (account_id, period_start, period_end)
	)`,
	`CREATE INDEX IF NOT EXISTS idx_statements_hash ON statements(source_file_hash)`,
	`CREATE TABLE IF NOT EXISTS categories (
		id INTEGER PRIMARY KEY,
		name TEXT NOT NULL,
		parent_id INTEGER,
		type TEXT NOT NULL
	)`,
	`CREATE UNIQUE INDEX IF NOT EXISTS idx_categories_name ON categories(name)`,
	`CREATE TABLE IF NOT EXISTS transactions (
		id INTEGER PRIMARY KEY,
		account_id INTEGER NOT NULL REFERENCES accounts(id),
		statement_id INTEGER REFERENCES statements(id),
		posted_at DATE NOT NULL,
		description TEXT NOT NULL,
		merchant TEXT,
		amount NUMERIC NOT NULL,
		currency TEXT NOT NULL DEFAULT 'USD',
		category_id INTEGER,
		is_transfer INTEGER NOT NULL DEFAULT 0,
		is_income INTEGER NOT NULL DEFAULT 0,
		is_expense INTEGER NOT NULL DEFAULT 0
	)`,
	`CREATE INDEX IF NOT EXISTS idx_tx_account_date ON transactions(account_id, posted_at)`,
	`CREATE INDEX IF NOT EXISTS idx_tx_category_date ON transactions(category_id, posted_at)`,
}

var seedCategories = []struct {
	name string
	kind models.CategoryKind
}{
	{"Uncategorized", models.KindExpense},
	{"Groceries", models.KindExpense},
	{"Dining", models.KindExpense},
	{"Transport", models.KindExpense},
	{"Shopping", models.KindExpense},
	{"Utilities", models.KindExpense},
	{"Mortgage", models.KindExpense},
	{"Income:Salary", models.KindIncome},
	{"Income:Dividend", models.KindIncome},
}

func (s *Store) init() error {
	for _, stmt := range schema {
		if _, err := s.db.Exec(stmt); err != nil {
			return fmt.Errorf("creating schema: %w", err)
		}
	}

	var count int
	if err := s.db.QueryRow("SELECT COUNT(1) FROM categories").Scan(&count); err != nil {
		return fmt.Errorf("counting categories: %w", err)
	}
	if count == 0 {
		for _, c := range seedCategories {
			if _, err := s.db.Exec("INSERT INTO categories(name, type) VALUES (?, ?)", c.name, string(c.kind)); err != nil {
				return fmt.Errorf("seeding category %s: %w", c.name, err)
			}
		}
	}
	return nil
}

// StatementExistsByHash reports whether a statement with this content hash
// was already imported, regardless of where the file lived at the time.
func (s *Store) StatementExistsByHash(hash string) (bool, error) {
	var one int
	err := s.db.QueryRow("SELECT 1 FROM statements WHERE source_file_hash = ? LIMIT 1", hash).Scan(&one)
	if err == sql.ErrNoRows {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("checking statement hash: %w", err)
	}
	return true, nil
}

// EnsureAccount returns the id of the account with this name/institution,
// creating it with the given type when missing.
func (s *Store) EnsureAccount(accountType models.StatementType, name, institution string) (int64, error) {
	var id int64
	err := s.db.QueryRow(
		"SELECT id FROM accounts WHERE name = ? AND IFNULL(institution, '') = IFNULL(?, '') LIMIT 1",
		name, institution,
	).Scan(&id)
	if err == nil {
		return id, nil
	}
	if err != sql.ErrNoRows {
		return 0, fmt.Errorf("looking up account: %w", err)
	}

	res, err := s.db.Exec(
		"INSERT INTO accounts(type, name, institution, opened_at) VALUES (?, ?, ?, ?)",
		string(accountType), name, institution, time.Now().UTC().Format("2006-01-02"),
	)
	if err != nil {
		return 0, fmt.Errorf("creating account: %w", err)
	}
	return res.LastInsertId()
}

// InsertStatement records an imported statement. Inserting the same
// (account, period_start, period_end) twice violates the unique constraint
// and comes back as an error.
func (s *Store) InsertStatement(accountID int64, period models.Period, sourcePath, sourceHash string) (int64, error) {
	res, err := s.db.Exec(
		`INSERT INTO statements(account_id, period_start, period_end, source_file_path, source_file_hash, imported_at, status)
		 VALUES (?, ?, ?, ?, ?, ?, 'parsed')`,
		accountID,
		period.Start.Format("2006-01-02"),
		period.End.Format("2006-01-02"),
		sourcePath,
		sourceHash,
		time.Now().UTC().Format(time.RFC3339),
	)
	if err != nil {
		return 0, fmt.Errorf("inserting statement: %w", err)
	}
	return res.LastInsertId()
}

// InsertTransaction persists one extracted transaction. categoryID may be
// nil when category resolution failed.
func (s *Store) InsertTransaction(accountID, statementID int64, txn models.Transaction, currency string, categoryID *int64, assignment models.CategoryAssignment) error {
	merchant := sql.NullString{String: txn.Merchant, Valid: txn.Merchant != ""}
	_, err := s.db.Exec(
		`INSERT INTO transactions(account_id, statement_id, posted_at, description, merchant, amount, currency, category_id, is_transfer, is_income, is_expense)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, 0, ?, ?)`,
		accountID,
		statementID,
		txn.PostedAt.Format("2006-01-02"),
		txn.Description,
		merchant,
		txn.Amount.String(),
		currency,
		categoryID,
		boolToInt(assignment.IsIncome),
		boolToInt(assignment.IsExpense),
	)
	if err != nil {
		return fmt.Errorf("inserting transaction: %w", err)
	}
	return nil
}

// GetOrCreateCategory resolves a category id by name, creating the row on
// first use. The name is the uniqueness key; an existing row's kind is not
// re-validated.
func (s *Store) GetOrCreateCategory(name string, kind models.CategoryKind) (int64, error) {
	var id int64
	err := s.db.QueryRow("SELECT id FROM categories WHERE name = ? LIMIT 1", name).Scan(&id)
	if err == nil {
		return id, nil
	}
	if err != sql.ErrNoRows {
		return 0, fmt.Errorf("looking up category: %w", err)
	}

	res, err := s.db.Exec("INSERT INTO categories(name, type) VALUES (?, ?)", name, string(kind))
	if err != nil {
		return 0, fmt.Errorf("creating category: %w", err)
	}
	return res.LastInsertId()
}

func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}
