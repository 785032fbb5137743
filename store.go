package main

import (
	"context"
	"database/sql"
	"encoding/json"
	"os"

	_ "modernc.org/sqlite"
)

// CategoryInfo identifies a category row in the backing store.
type CategoryInfo struct {
	ID   int64
	Name string
}

// CategorySource is the read-only contract the puzzle builder needs from the
// word database.
type CategorySource interface {
	ListCategories(ctx context.Context) ([]CategoryInfo, error)
	WordsForCategory(ctx context.Context, id int64) ([]string, error)
}

// sqliteStore is a CategorySource backed by a local sqlite database.
type sqliteStore struct {
	db *sql.DB
}

// categoryFile mirrors the structure of data/categories.json.
type categoryFile struct {
	Categories []Category `json:"categories"`
}

// openCategoryStore opens the sqlite word database, creating the schema if
// needed and seeding it from the seed file on first run.
func openCategoryStore(dbPath, seedPath string) (*sqliteStore, error) {
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, err
	}

	store := &sqliteStore{db: db}
	if err := store.ensureSchema(); err != nil {
		db.Close()
		return nil, err
	}
	if err := store.seedIfEmpty(seedPath); err != nil {
		db.Close()
		return nil, err
	}
	return store, nil
}

// ensureSchema creates the categories and words tables if they do not exist.
func (s *sqliteStore) ensureSchema() error {
	statements := []string{
		`CREATE TABLE IF NOT EXISTS categories (
			category_id INTEGER PRIMARY KEY AUTOINCREMENT,
			category_name TEXT NOT NULL UNIQUE
		)`,
		`CREATE TABLE IF NOT EXISTS words (
			word_id INTEGER PRIMARY KEY AUTOINCREMENT,
			category_id INTEGER NOT NULL REFERENCES categories(category_id),
			word TEXT NOT NULL
		)`,
	}
	for _, stmt := range statements {
		if _, err := s.db.Exec(stmt); err != nil {
			return err
		}
	}
	return nil
}

// seedIfEmpty loads the seed file into an empty database. A missing seed
// file is not an error; the store just starts empty and the fallback puzzle
// covers for it.
func (s *sqliteStore) seedIfEmpty(seedPath string) error {
	var count int
	if err := s.db.QueryRow(`SELECT COUNT(*) FROM categories`).Scan(&count); err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	logInfo("Seeding category store from %s", seedPath)
	data, err := os.ReadFile(seedPath)
	if err != nil {
		if os.IsNotExist(err) {
			logWarn("Seed file %s not found, starting with an empty category store", seedPath)
			return nil
		}
		return err
	}

	var cf categoryFile
	if err := json.Unmarshal(data, &cf); err != nil {
		return err
	}

	tx, err := s.db.Begin()
	if err != nil {
		return err
	}
	for _, cat := range cf.Categories {
		res, err := tx.Exec(`INSERT INTO categories (category_name) VALUES (?)`, cat.Name)
		if err != nil {
			tx.Rollback()
			return err
		}
		id, err := res.LastInsertId()
		if err != nil {
			tx.Rollback()
			return err
		}
		for _, word := range cat.Words {
			if _, err := tx.Exec(`INSERT INTO words (category_id, word) VALUES (?, ?)`, id, word); err != nil {
				tx.Rollback()
				return err
			}
		}
	}
	if err := tx.Commit(); err != nil {
		return err
	}

	logInfo("Seeded %d categories", len(cf.Categories))
	return nil
}

// ListCategories returns all known categories in insertion order.
func (s *sqliteStore) ListCategories(ctx context.Context) ([]CategoryInfo, error) {
	rows, err := s.db.QueryContext(ctx, `SELECT category_id, category_name FROM categories ORDER BY category_id`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var infos []CategoryInfo
	for rows.Next() {
		var info CategoryInfo
		if err := rows.Scan(&info.ID, &info.Name); err != nil {
			return nil, err
		}
		infos = append(infos, info)
	}
	return infos, rows.Err()
}

// WordsForCategory returns a category's words in insertion order. Stable
// ordering matters: the puzzle builder truncates to the first four words.
func (s *sqliteStore) WordsForCategory(ctx context.Context, id int64) ([]string, error) {
	rows, err := s.db.QueryContext(ctx, `SELECT word FROM words WHERE category_id = ? ORDER BY word_id`, id)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var words []string
	for rows.Next() {
		var word string
		if err := rows.Scan(&word); err != nil {
			return nil, err
		}
		words = append(words, word)
	}
	return words, rows.Err()
}

// Close closes the underlying database handle.
func (s *sqliteStore) Close() error {
	return s.db.Close()
}

// loadCategoryPool fetches the full category pool for puzzle building.
// Storage failures degrade to an empty pool so the fixed fallback puzzle
// takes over; they never surface as request errors.
func (app *App) loadCategoryPool(ctx context.Context) []Category {
	if app.Store == nil {
		return nil
	}

	infos, err := app.Store.ListCategories(ctx)
	if err != nil {
		logWarn("Failed to list categories: %v", err)
		return nil
	}

	pool := make([]Category, 0, len(infos))
	for _, info := range infos {
		words, err := app.Store.WordsForCategory(ctx, info.ID)
		if err != nil {
			logWarn("Failed to load words for category %q: %v", info.Name, err)
			continue
		}
		pool = append(pool, Category{Name: info.Name, Words: words})
	}
	return pool
}
