// Package catalog implements the product search boundary of the shopping
// agent. Two implementations are provided: Store, a SQLite-backed catalog
// persisted in the data directory, and Memory, an in-memory catalog used for
// tests and as a fallback.
package catalog

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	_ "modernc.org/sqlite"

	"shopagent/model"
)

// Store is a SQLite-backed product catalog implementing model.SearchProvider.
type Store struct {
	db *sql.DB
}

// OpenStore opens (creating if necessary) the catalog database under
// dataDir. A freshly created catalog is seeded with the sample products so
// the agent is usable out of the box.
func OpenStore(dataDir string) (*Store, error) {
	dbPath := filepath.Join(dataDir, "catalog.db")

	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("failed to open catalog database: %w", err)
	}

	if err := db.Ping(); err != nil {
		return nil, fmt.Errorf("failed to ping catalog database: %w", err)
	}

	store := &Store{db: db}

	if err := store.initialize(); err != nil {
		return nil, fmt.Errorf("failed to initialize catalog database: %w", err)
	}

	return store, nil
}

func (s *Store) initialize() error {
	schema := `
	CREATE TABLE IF NOT EXISTS products (
		id TEXT PRIMARY KEY,
		name TEXT NOT NULL,
		price REAL NOT NULL,
		description TEXT NOT NULL
	);
	CREATE INDEX IF NOT EXISTS idx_products_name ON products(name);
	`

	if _, err := s.db.Exec(schema); err != nil {
		return err
	}

	var count int
	if err := s.db.QueryRow(`SELECT COUNT(*) FROM products`).Scan(&count); err != nil {
		return err
	}
	if count == 0 {
		return s.seed(SampleProducts())
	}

	return nil
}

func (s *Store) seed(products []model.Product) error {
	tx, err := s.db.Begin()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	for _, p := range products {
		_, err := tx.Exec(
			`INSERT INTO products (id, name, price, description) VALUES (?, ?, ?, ?)`,
			p.ID, p.Name, p.Price, p.Description,
		)
		if err != nil {
			return err
		}
	}

	return tx.Commit()
}

// Search implements model.SearchProvider.Search. Products matching at least
// one keyword (case-insensitive substring of name or description) are
// returned ordered by number of keyword hits, then by ID, so identical
// queries always return the same order.
func (s *Store) Search(ctx context.Context, keywords []string) ([]model.Product, error) {
	if len(keywords) == 0 {
		return nil, nil
	}

	var hitTerms []string
	var matchTerms []string
	var args []any
	for _, kw := range keywords {
		hitTerms = append(hitTerms, `(CASE WHEN lower(name || ' ' || description) LIKE ? THEN 1 ELSE 0 END)`)
		matchTerms = append(matchTerms, `lower(name || ' ' || description) LIKE ?`)
		args = append(args, "%"+strings.ToLower(kw)+"%")
	}
	// the hit-count expression repeats the patterns, so double the args
	args = append(args, args...)

	query := fmt.Sprintf(
		`SELECT id, name, price, description FROM products WHERE %s ORDER BY (%s) DESC, id ASC`,
		strings.Join(matchTerms, " OR "),
		strings.Join(hitTerms, " + "),
	)

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("catalog search failed: %w", err)
	}
	defer rows.Close()

	var products []model.Product
	for rows.Next() {
		var p model.Product
		if err := rows.Scan(&p.ID, &p.Name, &p.Price, &p.Description); err != nil {
			return nil, fmt.Errorf("failed to scan product: %w", err)
		}
		products = append(products, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("catalog search failed: %w", err)
	}

	return products, nil
}

// GetDetails implements model.SearchProvider.GetDetails. An unknown ID is
// reported through the found flag, not as an error.
func (s *Store) GetDetails(ctx context.Context, productID string) (model.Product, bool, error) {
	var p model.Product
	err := s.db.QueryRowContext(ctx,
		`SELECT id, name, price, description FROM products WHERE id = ?`,
		productID,
	).Scan(&p.ID, &p.Name, &p.Price, &p.Description)
	if errors.Is(err, sql.ErrNoRows) {
		return model.Product{}, false, nil
	}
	if err != nil {
		return model.Product{}, false, fmt.Errorf("catalog lookup failed: %w", err)
	}

	return p, true, nil
}

// Close releases the underlying database handle.
func (s *Store) Close() error {
	return s.db.Close()
}
