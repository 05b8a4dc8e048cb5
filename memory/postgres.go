package memory

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
)

// Schema is the DDL for the Postgres-backed store. Hosts that manage
// migrations themselves can apply it directly instead of calling
// Migrate.
const Schema = `
CREATE TABLE IF NOT EXISTS agentcontext_summaries (
    id          UUID PRIMARY KEY DEFAULT gen_random_uuid(),
    repo_key    TEXT NOT NULL,
    session_id  UUID NOT NULL,
    ts          BIGINT NOT NULL,
    kind        TEXT NOT NULL,
    title       TEXT NOT NULL,
    text        TEXT NOT NULL,
    msg_ids     TEXT[] NOT NULL DEFAULT '{}'
);

CREATE INDEX IF NOT EXISTS idx_agentcontext_summaries_repo_ts
    ON agentcontext_summaries (repo_key, ts DESC);
`

// PostgresStore persists summaries in Postgres through a pgx pool.
// Unlike the JSONL store it is safe across hosts, not just processes.
type PostgresStore struct {
	pool *pgxpool.Pool
}

// NewPostgresStore creates a store over an existing pool. The pool is
// owned by the caller.
func NewPostgresStore(pool *pgxpool.Pool) *PostgresStore {
	return &PostgresStore{pool: pool}
}

// Migrate applies the store schema.
func (s *PostgresStore) Migrate(ctx context.Context) error {
	if _, err := s.pool.Exec(ctx, Schema); err != nil {
		return fmt.Errorf("failed to apply summary store schema: %w", err)
	}
	return nil
}

// Append implements Store.
func (s *PostgresStore) Append(repoKey string, sessionID uuid.UUID, title, text string, msgIDs []string) error {
	return s.AppendContext(context.Background(), repoKey, sessionID, title, text, msgIDs)
}

// AppendContext records a summary, honoring ctx.
func (s *PostgresStore) AppendContext(ctx context.Context, repoKey string, sessionID uuid.UUID, title, text string, msgIDs []string) error {
	record := newRecord(repoKey, sessionID, title, text, msgIDs)
	if record.MsgIDs == nil {
		record.MsgIDs = []string{}
	}

	query := `
		INSERT INTO agentcontext_summaries (repo_key, session_id, ts, kind, title, text, msg_ids)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
	`
	_, err := s.pool.Exec(ctx, query,
		record.RepoKey, sessionID, record.TS, record.Kind, record.Title, record.Text, record.MsgIDs)
	if err != nil {
		return fmt.Errorf("failed to append summary: %w", err)
	}
	return nil
}

// Recent implements Store.
func (s *PostgresStore) Recent(repoKey string, limit int) ([]StoredSummary, error) {
	return s.RecentContext(context.Background(), repoKey, limit)
}

// RecentContext returns up to limit summaries for repoKey, newest
// first, honoring ctx.
func (s *PostgresStore) RecentContext(ctx context.Context, repoKey string, limit int) ([]StoredSummary, error) {
	query := `
		SELECT repo_key, session_id, ts, kind, title, text, msg_ids
		FROM agentcontext_summaries
		WHERE repo_key = $1
		ORDER BY ts DESC
		LIMIT $2
	`
	rows, err := s.pool.Query(ctx, query, repoKey, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to query summaries: %w", err)
	}
	defer rows.Close()

	var entries []StoredSummary
	for rows.Next() {
		var record StoredSummary
		var sessionID uuid.UUID
		if err := rows.Scan(&record.RepoKey, &sessionID, &record.TS, &record.Kind,
			&record.Title, &record.Text, &record.MsgIDs); err != nil {
			return nil, fmt.Errorf("failed to scan summary row: %w", err)
		}
		record.SessionID = sessionID.String()
		entries = append(entries, record)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read summary rows: %w", err)
	}
	return entries, nil
}
