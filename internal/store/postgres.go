package store

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/punchamoorthee/bankmitra/internal/domain"
)

const createTableSQL = `
CREATE TABLE IF NOT EXISTS account_state (
    key        TEXT PRIMARY KEY,
    data       JSONB NOT NULL,
    updated_at TIMESTAMPTZ NOT NULL DEFAULT now()
)`

// PostgresStore keeps the snapshot in a single key/value table, one row per
// logical key.
type PostgresStore struct {
	db *pgxpool.Pool
}

func NewPostgresStore(ctx context.Context, connString string) (*PostgresStore, error) {
	config, err := pgxpool.ParseConfig(connString)
	if err != nil {
		return nil, fmt.Errorf("unable to parse database config: %w", err)
	}

	pool, err := pgxpool.NewWithConfig(ctx, config)
	if err != nil {
		return nil, fmt.Errorf("unable to create connection pool: %w", err)
	}

	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("unable to ping database: %w", err)
	}

	if _, err := pool.Exec(ctx, createTableSQL); err != nil {
		pool.Close()
		return nil, fmt.Errorf("unable to ensure schema: %w", err)
	}

	return &PostgresStore{db: pool}, nil
}

func (s *PostgresStore) Close() {
	s.db.Close()
}

func (s *PostgresStore) Load(ctx context.Context) (*domain.Snapshot, error) {
	rows, err := s.db.Query(ctx, "SELECT key, data FROM account_state")
	if err != nil {
		return nil, fmt.Errorf("snapshot query failed: %w", err)
	}
	defer rows.Close()

	sections := map[string][]byte{}
	for rows.Next() {
		var key string
		var data []byte
		if err := rows.Scan(&key, &data); err != nil {
			return nil, fmt.Errorf("snapshot scan failed: %w", err)
		}
		sections[key] = data
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	if len(sections) == 0 {
		return nil, ErrNoSnapshot
	}
	return decodeSections(sections)
}

func (s *PostgresStore) Save(ctx context.Context, snap *domain.Snapshot) error {
	sections, err := encodeSections(snap)
	if err != nil {
		return err
	}

	tx, err := s.db.BeginTx(ctx, pgx.TxOptions{})
	if err != nil {
		return fmt.Errorf("tx begin failed: %w", err)
	}
	defer tx.Rollback(ctx)

	for _, key := range allKeys {
		_, err := tx.Exec(ctx,
			`INSERT INTO account_state (key, data, updated_at) VALUES ($1, $2, now())
			 ON CONFLICT (key) DO UPDATE SET data = EXCLUDED.data, updated_at = now()`,
			key, sections[key])
		if err != nil {
			return fmt.Errorf("snapshot upsert failed for %s: %w", key, err)
		}
	}
	return tx.Commit(ctx)
}

// encodeSections splits a snapshot into its per-key JSON payloads.
func encodeSections(snap *domain.Snapshot) (map[string][]byte, error) {
	sections := map[string]interface{}{
		KeyBalance:       snap.Balance,
		KeySavings:       snap.Savings,
		KeyTransactions:  snap.Transactions,
		KeyBills:         snap.Bills,
		KeyMoneyRequests: snap.MoneyRequests,
	}
	encoded := make(map[string][]byte, len(sections))
	for key, v := range sections {
		data, err := json.Marshal(v)
		if err != nil {
			return nil, fmt.Errorf("encode %s: %w", key, err)
		}
		encoded[key] = data
	}
	return encoded, nil
}

func decodeSections(sections map[string][]byte) (*domain.Snapshot, error) {
	snap := &domain.Snapshot{}
	targets := map[string]interface{}{
		KeyBalance:       &snap.Balance,
		KeySavings:       &snap.Savings,
		KeyTransactions:  &snap.Transactions,
		KeyBills:         &snap.Bills,
		KeyMoneyRequests: &snap.MoneyRequests,
	}
	for key, target := range targets {
		data, ok := sections[key]
		if !ok {
			continue
		}
		if err := json.Unmarshal(data, target); err != nil {
			return nil, fmt.Errorf("decode %s: %w", key, err)
		}
	}
	return snap, nil
}
