package postgres

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/lib/pq"

	"gateguard/internal/core/domain/definition"
	"gateguard/internal/platform/database/postgres"
)

const uniqueViolation = "23505"

// Connector hands out the live connection pool.
type Connector interface {
	Connection() *postgres.DB
}

// Repository stores every definition as one JSONB document keyed by name.
type Repository struct {
	db Connector
}

func NewRepository(db Connector) *Repository {
	return &Repository{db: db}
}

func (r *Repository) GetByName(ctx context.Context, name string) (*definition.Definition, error) {
	query := `SELECT document FROM schema_definitions WHERE name = $1`

	var document []byte
	err := r.db.Connection().QueryRowContext(ctx, query, name).Scan(&document)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, definition.ErrDefinitionNotFound
		}
		return nil, err
	}

	return decode(document)
}

func (r *Repository) List(ctx context.Context) ([]*definition.Definition, error) {
	query := `SELECT document FROM schema_definitions ORDER BY name`

	rows, err := r.db.Connection().QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	defs := make([]*definition.Definition, 0)
	for rows.Next() {
		var document []byte
		if err := rows.Scan(&document); err != nil {
			return nil, err
		}
		def, err := decode(document)
		if err != nil {
			return nil, err
		}
		defs = append(defs, def)
	}
	return defs, rows.Err()
}

func (r *Repository) Save(ctx context.Context, def *definition.Definition) error {
	query := `INSERT INTO schema_definitions (name, document) VALUES ($1, $2)`

	document, err := json.Marshal(def)
	if err != nil {
		return fmt.Errorf("encode definition %s: %w", def.Name, err)
	}

	_, err = r.db.Connection().ExecContext(ctx, query, def.Name, document)
	if err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && pqErr.Code == uniqueViolation {
			return &definition.AlreadyExistsError{Name: def.Name}
		}
		return err
	}

	return nil
}

func (r *Repository) Update(ctx context.Context, def *definition.Definition) error {
	query := `UPDATE schema_definitions SET document = $2, updated_at = CURRENT_TIMESTAMP WHERE name = $1`

	document, err := json.Marshal(def)
	if err != nil {
		return fmt.Errorf("encode definition %s: %w", def.Name, err)
	}

	result, err := r.db.Connection().ExecContext(ctx, query, def.Name, document)
	if err != nil {
		return err
	}
	return expectRow(result)
}

func (r *Repository) Delete(ctx context.Context, name string) error {
	query := `DELETE FROM schema_definitions WHERE name = $1`

	result, err := r.db.Connection().ExecContext(ctx, query, name)
	if err != nil {
		return err
	}
	return expectRow(result)
}

func (r *Repository) Count(ctx context.Context) (int, error) {
	query := `SELECT COUNT(*) FROM schema_definitions`

	var count int
	if err := r.db.Connection().QueryRowContext(ctx, query).Scan(&count); err != nil {
		return 0, err
	}
	return count, nil
}

func (r *Repository) CreateTable(ctx context.Context) error {
	return r.db.Connection().Migrate(ctx,
		`CREATE TABLE IF NOT EXISTS schema_definitions (
			name VARCHAR(128) PRIMARY KEY,
			document JSONB NOT NULL,
			created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP,
			updated_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
		)`,
		`CREATE INDEX IF NOT EXISTS schema_definitions_updated_at_idx ON schema_definitions (updated_at)`,
	)
}

func expectRow(result sql.Result) error {
	n, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return definition.ErrDefinitionNotFound
	}
	return nil
}

func decode(document []byte) (*definition.Definition, error) {
	var def definition.Definition
	if err := json.Unmarshal(document, &def); err != nil {
		return nil, fmt.Errorf("decode definition: %w", err)
	}
	return &def, nil
}
