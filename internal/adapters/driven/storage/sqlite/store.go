package sqlite

import (
	"context"
	"database/sql"
	"embed"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	_ "modernc.org/sqlite" // SQLite driver

	"github.com/atelier-labs/atelier-cli/internal/adapters/driven/storage/sqlite/migrations"
	"github.com/atelier-labs/atelier-cli/internal/core/domain"
	"github.com/atelier-labs/atelier-cli/internal/core/ports/driven"
)

// Store is the SQLite-backed storage for the recommendation archive.
type Store struct {
	db   *sql.DB
	path string
}

// NewStore creates a new SQLite store at the specified data directory.
// If dataDir is empty, defaults to ~/.atelier/data/archive.db.
func NewStore(dataDir string) (*Store, error) {
	if dataDir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("getting home directory: %w", err)
		}
		dataDir = filepath.Join(home, ".atelier", "data")
	}

	// Ensure directory exists
	if err := os.MkdirAll(dataDir, 0700); err != nil {
		return nil, fmt.Errorf("creating data directory: %w", err)
	}

	dbPath := filepath.Join(dataDir, "archive.db")

	// Open database with WAL mode for better concurrency
	db, err := sql.Open("sqlite", dbPath+"?_pragma=journal_mode(WAL)&_pragma=busy_timeout(5000)")
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}

	s := &Store{
		db:   db,
		path: dbPath,
	}

	// Run migrations
	if err := s.migrate(migrations.FS); err != nil {
		db.Close()
		return nil, fmt.Errorf("running migrations: %w", err)
	}

	return s, nil
}

// Close closes the database connection.
func (s *Store) Close() error {
	return s.db.Close()
}

// Path returns the database file path.
func (s *Store) Path() string {
	return s.path
}

// Archive returns a RecommendationArchive interface backed by this store.
func (s *Store) Archive() driven.RecommendationArchive {
	return &recommendationArchive{store: s}
}

// migrate runs all pending migrations.
func (s *Store) migrate(fsys embed.FS) error {
	// Ensure schema_migrations table exists
	_, err := s.db.Exec(`
		CREATE TABLE IF NOT EXISTS schema_migrations (
			version INTEGER PRIMARY KEY,
			applied_at DATETIME DEFAULT CURRENT_TIMESTAMP
		)
	`)
	if err != nil {
		return fmt.Errorf("creating schema_migrations table: %w", err)
	}

	// Get current version
	var currentVersion int
	row := s.db.QueryRow("SELECT COALESCE(MAX(version), 0) FROM schema_migrations")
	if err := row.Scan(&currentVersion); err != nil {
		return fmt.Errorf("getting current version: %w", err)
	}

	// Find all up migrations
	entries, err := fs.ReadDir(fsys, ".")
	if err != nil {
		return fmt.Errorf("reading migrations directory: %w", err)
	}

	var upFiles []string
	for _, entry := range entries {
		name := entry.Name()
		if strings.HasSuffix(name, ".up.sql") {
			upFiles = append(upFiles, name)
		}
	}
	sort.Strings(upFiles)

	for _, name := range upFiles {
		// Extract version number (e.g., "001_initial.up.sql" -> 1)
		var version int
		if _, err := fmt.Sscanf(name, "%d_", &version); err != nil {
			continue // Skip files that don't match pattern
		}

		if version <= currentVersion {
			continue // Already applied
		}

		content, err := fs.ReadFile(fsys, name)
		if err != nil {
			return fmt.Errorf("reading migration %s: %w", name, err)
		}

		if _, err := s.db.Exec(string(content)); err != nil {
			return fmt.Errorf("executing migration %s: %w", name, err)
		}

		if _, err := s.db.Exec("INSERT INTO schema_migrations (version) VALUES (?)", version); err != nil {
			return fmt.Errorf("recording migration %s: %w", name, err)
		}
	}

	return nil
}

// recommendationArchive implements driven.RecommendationArchive.
type recommendationArchive struct {
	store *Store
}

var _ driven.RecommendationArchive = (*recommendationArchive)(nil)

// Save stores or updates a recommendation.
func (a *recommendationArchive) Save(ctx context.Context, rec *domain.DesignRecommendation) error {
	if rec.CreatedAt.IsZero() {
		rec.CreatedAt = time.Now().UTC()
	}

	payload, err := json.Marshal(rec)
	if err != nil {
		return fmt.Errorf("marshalling recommendation: %w", err)
	}

	_, err = a.store.db.ExecContext(ctx, `
		INSERT INTO recommendations (id, project, query, category, severity, payload, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT(id) DO UPDATE SET
			project = excluded.project,
			query = excluded.query,
			category = excluded.category,
			severity = excluded.severity,
			payload = excluded.payload,
			created_at = excluded.created_at
	`, rec.ID, rec.Project, rec.Query, rec.Category, string(rec.Severity),
		string(payload), rec.CreatedAt)

	if err != nil {
		return fmt.Errorf("saving recommendation: %w", err)
	}
	return nil
}

// Get retrieves a recommendation by ID.
func (a *recommendationArchive) Get(ctx context.Context, id string) (*domain.DesignRecommendation, error) {
	row := a.store.db.QueryRowContext(ctx,
		"SELECT payload FROM recommendations WHERE id = ?", id)

	var payload string
	if err := row.Scan(&payload); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrRecommendationNotFound
		}
		return nil, fmt.Errorf("scanning recommendation: %w", err)
	}

	var rec domain.DesignRecommendation
	if err := json.Unmarshal([]byte(payload), &rec); err != nil {
		return nil, fmt.Errorf("unmarshalling recommendation: %w", err)
	}
	return &rec, nil
}

// List returns summaries of stored recommendations, newest first.
func (a *recommendationArchive) List(ctx context.Context, limit int) ([]domain.RecommendationSummary, error) {
	query := `
		SELECT id, project, query, category, severity, created_at
		FROM recommendations
		ORDER BY created_at DESC, id
	`
	args := []any{}
	if limit > 0 {
		query += " LIMIT ?"
		args = append(args, limit)
	}

	rows, err := a.store.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("querying recommendations: %w", err)
	}
	defer rows.Close()

	var summaries []domain.RecommendationSummary //nolint:prealloc // size unknown from query
	for rows.Next() {
		var summary domain.RecommendationSummary
		var severity string
		var createdAt sql.NullTime
		if err := rows.Scan(&summary.ID, &summary.Project, &summary.Query,
			&summary.Category, &severity, &createdAt); err != nil {
			return nil, fmt.Errorf("scanning recommendation summary: %w", err)
		}
		summary.Severity = domain.Severity(severity)
		if createdAt.Valid {
			summary.CreatedAt = createdAt.Time
		}
		summaries = append(summaries, summary)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating recommendations: %w", err)
	}

	return summaries, nil
}

// Delete removes a recommendation.
func (a *recommendationArchive) Delete(ctx context.Context, id string) error {
	result, err := a.store.db.ExecContext(ctx,
		"DELETE FROM recommendations WHERE id = ?", id)
	if err != nil {
		return fmt.Errorf("deleting recommendation: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("checking delete result: %w", err)
	}
	if affected == 0 {
		return domain.ErrRecommendationNotFound
	}
	return nil
}

// Close releases the underlying database.
func (a *recommendationArchive) Close() error {
	return a.store.Close()
}
