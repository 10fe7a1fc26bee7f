/*
Package sqlite implements a persistent EntityStore on a single SQLite file.
It uses the wazero-based ncruces driver, so the binary stays CGO-free.
Listing order is rowid order, which matches first-insertion order.
*/
package sqlite

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	_ "github.com/ncruces/go-sqlite3/driver"
	_ "github.com/ncruces/go-sqlite3/embed"
	"github.com/theapemachine/recall-go/pkg/record"
)

// Store is a SQLite-backed EntityStore.
type Store struct {
	db *sql.DB
}

// Open opens (or creates) the database at path and applies the schema.
func Open(path string) (*Store, error) {
	// The ncruces driver requires the file: prefix.
	db, err := sql.Open("sqlite3", "file:"+path)

	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}

	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("apply schema: %w", err)
	}

	return &Store{db: db}, nil
}

// Close releases the underlying database handle.
func (s *Store) Close() error {
	return s.db.Close()
}

// AddEntity registers the entity on first sight and appends a frame.
func (s *Store) AddEntity(ctx context.Context, rec *record.StructuredRecord) (record.Frame, error) {
	if err := rec.Validate(); err != nil {
		return record.Frame{}, err
	}

	properties, err := json.Marshal(rec.Properties)

	if err != nil {
		return record.Frame{}, fmt.Errorf("encode properties: %w", err)
	}

	relationships, err := json.Marshal(rec.Relationships)

	if err != nil {
		return record.Frame{}, fmt.Errorf("encode relationships: %w", err)
	}

	frame := record.Frame{
		ID:            uuid.NewString(),
		Entity:        rec.Name,
		Category:      rec.Category,
		Properties:    rec.Properties,
		Relationships: rec.Relationships,
		CreatedAt:     time.Now().UTC(),
	}

	tx, err := s.db.BeginTx(ctx, nil)

	if err != nil {
		return record.Frame{}, fmt.Errorf("begin transaction: %w", err)
	}

	defer tx.Rollback()

	if _, err := tx.ExecContext(
		ctx,
		`INSERT OR IGNORE INTO entities (name, created_at) VALUES (?, ?)`,
		rec.Name, frame.CreatedAt.Format(time.RFC3339Nano),
	); err != nil {
		return record.Frame{}, fmt.Errorf("insert entity: %w", err)
	}

	if _, err := tx.ExecContext(
		ctx,
		`INSERT INTO frames (id, entity, category, properties, relationships, created_at)
		 VALUES (?, ?, ?, ?, ?, ?)`,
		frame.ID, frame.Entity, string(frame.Category),
		string(properties), string(relationships), frame.CreatedAt.Format(time.RFC3339Nano),
	); err != nil {
		return record.Frame{}, fmt.Errorf("insert frame: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return record.Frame{}, fmt.Errorf("commit: %w", err)
	}

	return frame, nil
}

// ListEntities returns entity names in first-insertion (rowid) order.
func (s *Store) ListEntities(ctx context.Context) ([]string, error) {
	rows, err := s.db.QueryContext(ctx, `SELECT name FROM entities ORDER BY rowid`)

	if err != nil {
		return nil, fmt.Errorf("list entities: %w", err)
	}

	defer rows.Close()

	names := []string{}

	for rows.Next() {
		var name string

		if err := rows.Scan(&name); err != nil {
			return nil, fmt.Errorf("scan entity: %w", err)
		}

		names = append(names, name)
	}

	return names, rows.Err()
}

// QueryFrames returns the entity's frames in insertion order; an unknown
// entity yields an empty slice.
func (s *Store) QueryFrames(ctx context.Context, entity string) ([]record.Frame, error) {
	rows, err := s.db.QueryContext(
		ctx,
		`SELECT id, entity, category, properties, relationships, created_at
		 FROM frames WHERE entity = ? ORDER BY rowid`,
		entity,
	)

	if err != nil {
		return nil, fmt.Errorf("query frames: %w", err)
	}

	defer rows.Close()

	frames := []record.Frame{}

	for rows.Next() {
		var (
			frame         record.Frame
			category      string
			properties    string
			relationships string
			createdAt     string
		)

		if err := rows.Scan(
			&frame.ID, &frame.Entity, &category,
			&properties, &relationships, &createdAt,
		); err != nil {
			return nil, fmt.Errorf("scan frame: %w", err)
		}

		frame.Category = record.Category(category)

		if ts, err := time.Parse(time.RFC3339Nano, createdAt); err == nil {
			frame.CreatedAt = ts
		}

		if err := json.Unmarshal([]byte(properties), &frame.Properties); err != nil {
			return nil, fmt.Errorf("decode properties: %w", err)
		}

		if err := json.Unmarshal([]byte(relationships), &frame.Relationships); err != nil {
			return nil, fmt.Errorf("decode relationships: %w", err)
		}

		frames = append(frames, frame)
	}

	return frames, rows.Err()
}
