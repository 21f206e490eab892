package sqlite

import (
	"context"
	"database/sql"
	"embed"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	_ "modernc.org/sqlite" // SQLite driver

	"github.com/custodia-labs/seamap/internal/adapters/driven/storage/sqlite/migrations"
	"github.com/custodia-labs/seamap/internal/core/domain"
	"github.com/custodia-labs/seamap/internal/core/ports/driven"
)

// Store is a SQLite-based storage for the initiative dataset.
type Store struct {
	db   *sql.DB
	path string
}

// NewStore creates a new SQLite store at the specified data directory.
// If dataDir is empty, defaults to ~/.seamap/data/initiatives.db.
func NewStore(dataDir string) (*Store, error) {
	if dataDir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("getting home directory: %w", err)
		}
		dataDir = filepath.Join(home, ".seamap", "data")
	}

	// Ensure directory exists
	if err := os.MkdirAll(dataDir, 0700); err != nil {
		return nil, fmt.Errorf("creating data directory: %w", err)
	}

	dbPath := filepath.Join(dataDir, "initiatives.db")

	// Open database with WAL mode for better concurrency
	db, err := sql.Open("sqlite", dbPath+"?_pragma=journal_mode(WAL)&_pragma=busy_timeout(5000)")
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}

	s := &Store{
		db:   db,
		path: dbPath,
	}

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

// InitiativeStore returns an InitiativeStore interface backed by this store.
func (s *Store) InitiativeStore() driven.InitiativeStore {
	return &initiativeStore{store: s}
}

// migrate runs all pending migrations and records each applied version.
func (s *Store) migrate(fsys embed.FS) error {
	_, err := s.db.Exec(`
		CREATE TABLE IF NOT EXISTS schema_migrations (
			version INTEGER PRIMARY KEY,
			applied_at DATETIME DEFAULT CURRENT_TIMESTAMP
		)
	`)
	if err != nil {
		return fmt.Errorf("creating schema_migrations table: %w", err)
	}

	var currentVersion int
	row := s.db.QueryRow("SELECT COALESCE(MAX(version), 0) FROM schema_migrations")
	if err := row.Scan(&currentVersion); err != nil {
		return fmt.Errorf("getting current version: %w", err)
	}

	entries, err := fs.ReadDir(fsys, ".")
	if err != nil {
		return fmt.Errorf("reading migrations directory: %w", err)
	}

	var upFiles []string
	for _, entry := range entries {
		if name := entry.Name(); strings.HasSuffix(name, ".up.sql") {
			upFiles = append(upFiles, name)
		}
	}
	sort.Strings(upFiles)

	for _, name := range upFiles {
		// Extract version number (e.g., "001_initial.up.sql" -> 1)
		var version int
		if _, err := fmt.Sscanf(name, "%d_", &version); err != nil {
			continue
		}
		if version <= currentVersion {
			continue
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

// SchemaVersion returns the highest applied migration version.
func (s *Store) SchemaVersion() (int, error) {
	var version int
	row := s.db.QueryRow("SELECT COALESCE(MAX(version), 0) FROM schema_migrations")
	if err := row.Scan(&version); err != nil {
		return 0, fmt.Errorf("getting schema version: %w", err)
	}
	return version, nil
}

// ==================== Initiative Store ====================

// initiativeStore implements driven.InitiativeStore.
type initiativeStore struct {
	store *Store
}

var _ driven.InitiativeStore = (*initiativeStore)(nil)

const initiativeColumns = "id, name, homepage, postcode, lat, lng"

// SaveAll stores or updates initiatives in a single transaction.
func (s *initiativeStore) SaveAll(ctx context.Context, initiatives []*domain.Initiative) error {
	return s.inTx(ctx, func(tx *sql.Tx) error {
		return saveInitiatives(ctx, tx, initiatives)
	})
}

// ReplaceAll swaps the stored dataset for initiatives in a single
// transaction. On error the previous rows are kept.
func (s *initiativeStore) ReplaceAll(ctx context.Context, initiatives []*domain.Initiative) error {
	return s.inTx(ctx, func(tx *sql.Tx) error {
		if _, err := tx.ExecContext(ctx, "DELETE FROM initiatives"); err != nil {
			return fmt.Errorf("clearing initiatives: %w", err)
		}
		return saveInitiatives(ctx, tx, initiatives)
	})
}

func (s *initiativeStore) inTx(ctx context.Context, fn func(tx *sql.Tx) error) error {
	tx, err := s.store.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("beginning transaction: %w", err)
	}
	defer tx.Rollback() //nolint:errcheck // no-op after commit

	if err := fn(tx); err != nil {
		return err
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("committing initiatives: %w", err)
	}
	return nil
}

func saveInitiatives(ctx context.Context, tx *sql.Tx, initiatives []*domain.Initiative) error {
	stmt, err := tx.PrepareContext(ctx, `
		INSERT INTO initiatives (id, name, homepage, postcode, lat, lng, name_fold, postcode_fold, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT(id) DO UPDATE SET
			name = excluded.name,
			homepage = excluded.homepage,
			postcode = excluded.postcode,
			lat = excluded.lat,
			lng = excluded.lng,
			name_fold = excluded.name_fold,
			postcode_fold = excluded.postcode_fold,
			updated_at = excluded.updated_at
	`)
	if err != nil {
		return fmt.Errorf("preparing insert: %w", err)
	}
	defer stmt.Close()

	now := time.Now().UTC()
	for _, in := range initiatives {
		if in == nil || in.ID == "" {
			return fmt.Errorf("saving initiative: %w", domain.ErrInvalidInput)
		}
		lat, lng := nullCoords(in)
		_, err := stmt.ExecContext(ctx, in.ID, in.Name, in.Homepage, in.Postcode, lat, lng,
			strings.ToLower(in.Name), strings.ToLower(in.Postcode), now, now)
		if err != nil {
			return fmt.Errorf("saving initiative %q: %w", in.ID, err)
		}
	}
	return nil
}

// Get retrieves an initiative by ID.
func (s *initiativeStore) Get(ctx context.Context, id string) (*domain.Initiative, error) {
	row := s.store.db.QueryRowContext(ctx,
		"SELECT "+initiativeColumns+" FROM initiatives WHERE id = ?", id)

	in, err := scanInitiative(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, domain.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("scanning initiative: %w", err)
	}
	return in, nil
}

// List returns every initiative ordered by name.
func (s *initiativeStore) List(ctx context.Context) ([]*domain.Initiative, error) {
	rows, err := s.store.db.QueryContext(ctx,
		"SELECT "+initiativeColumns+" FROM initiatives ORDER BY name_fold, id")
	if err != nil {
		return nil, fmt.Errorf("querying initiatives: %w", err)
	}
	return scanInitiatives(rows)
}

// Search returns initiatives whose name or postcode contains the text.
// Matching runs on the folded columns so case folding follows
// strings.ToLower rather than SQLite's ASCII-only rules.
func (s *initiativeStore) Search(ctx context.Context, text string, limit int) ([]*domain.Initiative, error) {
	needle := strings.ToLower(strings.TrimSpace(text))
	query := "SELECT " + initiativeColumns + ` FROM initiatives
		WHERE instr(name_fold, ?) > 0 OR instr(postcode_fold, ?) > 0
		ORDER BY name_fold, id`
	args := []any{needle, needle}
	if limit > 0 {
		query += " LIMIT ?"
		args = append(args, limit)
	}

	rows, err := s.store.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("searching initiatives: %w", err)
	}
	return scanInitiatives(rows)
}

// Count returns the number of stored initiatives.
func (s *initiativeStore) Count(ctx context.Context) (int, error) {
	var count int
	if err := s.store.db.QueryRowContext(ctx, "SELECT COUNT(*) FROM initiatives").Scan(&count); err != nil {
		return 0, fmt.Errorf("counting initiatives: %w", err)
	}
	return count, nil
}

// Clear removes every initiative.
func (s *initiativeStore) Clear(ctx context.Context) error {
	if _, err := s.store.db.ExecContext(ctx, "DELETE FROM initiatives"); err != nil {
		return fmt.Errorf("clearing initiatives: %w", err)
	}
	return nil
}

// ==================== Helper Functions ====================

type scanner interface {
	Scan(dest ...any) error
}

func scanInitiative(row scanner) (*domain.Initiative, error) {
	var in domain.Initiative
	var lat, lng sql.NullFloat64
	if err := row.Scan(&in.ID, &in.Name, &in.Homepage, &in.Postcode, &lat, &lng); err != nil {
		return nil, err
	}
	if lat.Valid && lng.Valid {
		in.Lat = lat.Float64
		in.Lng = lng.Float64
		in.Geolocated = true
	}
	return &in, nil
}

func scanInitiatives(rows *sql.Rows) ([]*domain.Initiative, error) {
	defer rows.Close()

	result := make([]*domain.Initiative, 0)
	for rows.Next() {
		in, err := scanInitiative(rows)
		if err != nil {
			return nil, fmt.Errorf("scanning initiative: %w", err)
		}
		result = append(result, in)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating initiatives: %w", err)
	}
	return result, nil
}

func nullCoords(in *domain.Initiative) (sql.NullFloat64, sql.NullFloat64) {
	if !in.Geolocated {
		return sql.NullFloat64{}, sql.NullFloat64{}
	}
	return sql.NullFloat64{Float64: in.Lat, Valid: true}, sql.NullFloat64{Float64: in.Lng, Valid: true}
}
