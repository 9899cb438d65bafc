// Package sqlite provides a SQLite-backed raffle storage implementation.
package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"path/filepath"
	"strings"
	"time"

	sqlitemigrate "github.com/louisbranch/raffle/internal/platform/storage/sqlitemigrate"
	"github.com/louisbranch/raffle/internal/services/raffle/storage"
	"github.com/louisbranch/raffle/internal/services/raffle/storage/sqlite/migrations"
	_ "modernc.org/sqlite"
)

// Store persists raffle state in SQLite.
type Store struct {
	sqlDB *sql.DB
}

func toMillis(value time.Time) int64 {
	return value.UTC().UnixMilli()
}

func fromMillis(value int64) time.Time {
	return time.UnixMilli(value).UTC()
}

// Open opens a SQLite raffle store and applies embedded migrations.
func Open(path string) (*Store, error) {
	if strings.TrimSpace(path) == "" {
		return nil, fmt.Errorf("storage path is required")
	}
	cleanPath := filepath.Clean(path)
	dsn := cleanPath + "?_journal_mode=WAL&_foreign_keys=ON&_busy_timeout=5000&_synchronous=NORMAL"
	sqlDB, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("open sqlite db: %w", err)
	}
	if err := sqlDB.Ping(); err != nil {
		_ = sqlDB.Close()
		return nil, fmt.Errorf("ping sqlite db: %w", err)
	}
	if err := sqlitemigrate.ApplyMigrations(sqlDB, migrations.FS); err != nil {
		_ = sqlDB.Close()
		return nil, fmt.Errorf("run migrations: %w", err)
	}
	return &Store{sqlDB: sqlDB}, nil
}

// Close closes the SQLite handle.
func (s *Store) Close() error {
	if s == nil || s.sqlDB == nil {
		return nil
	}
	return s.sqlDB.Close()
}

// Deposit adds a participant's stake to the pooled balance and returns the
// updated balance. The update and the read run in one transaction.
func (s *Store) Deposit(ctx context.Context, participantID string, amount uint64) (uint64, error) {
	if err := ctx.Err(); err != nil {
		return 0, err
	}
	if s == nil || s.sqlDB == nil {
		return 0, fmt.Errorf("storage is not configured")
	}
	participantID = strings.TrimSpace(participantID)
	if participantID == "" {
		return 0, fmt.Errorf("participant id is required")
	}
	if amount == 0 {
		return 0, fmt.Errorf("deposit amount must be positive")
	}

	tx, err := s.sqlDB.BeginTx(ctx, nil)
	if err != nil {
		return 0, fmt.Errorf("begin deposit transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	result, err := tx.ExecContext(
		ctx,
		`UPDATE pool SET balance = balance + ? WHERE id = 1`,
		int64(amount),
	)
	if err != nil {
		return 0, fmt.Errorf("deposit into pool: %w", err)
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("deposit rows affected: %w", err)
	}
	if affected == 0 {
		return 0, fmt.Errorf("pool row is missing")
	}

	var balance int64
	row := tx.QueryRowContext(ctx, `SELECT balance FROM pool WHERE id = 1`)
	if err := row.Scan(&balance); err != nil {
		return 0, fmt.Errorf("read pool balance: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return 0, fmt.Errorf("commit deposit transaction: %w", err)
	}
	return uint64(balance), nil
}

// Balance returns the current pooled balance.
func (s *Store) Balance(ctx context.Context) (uint64, error) {
	if err := ctx.Err(); err != nil {
		return 0, err
	}
	if s == nil || s.sqlDB == nil {
		return 0, fmt.Errorf("storage is not configured")
	}

	var balance int64
	row := s.sqlDB.QueryRowContext(ctx, `SELECT balance FROM pool WHERE id = 1`)
	if err := row.Scan(&balance); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return 0, storage.ErrNotFound
		}
		return 0, fmt.Errorf("read pool balance: %w", err)
	}
	return uint64(balance), nil
}

// PayoutAll zeroes the pooled balance and credits the full amount to the
// participant's account in one transaction.
func (s *Store) PayoutAll(ctx context.Context, participantID string) (uint64, error) {
	if err := ctx.Err(); err != nil {
		return 0, err
	}
	if s == nil || s.sqlDB == nil {
		return 0, fmt.Errorf("storage is not configured")
	}
	participantID = strings.TrimSpace(participantID)
	if participantID == "" {
		return 0, fmt.Errorf("participant id is required")
	}

	tx, err := s.sqlDB.BeginTx(ctx, nil)
	if err != nil {
		return 0, fmt.Errorf("begin payout transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	var balance int64
	row := tx.QueryRowContext(ctx, `SELECT balance FROM pool WHERE id = 1`)
	if err := row.Scan(&balance); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return 0, storage.ErrNotFound
		}
		return 0, fmt.Errorf("read pool balance: %w", err)
	}

	if _, err := tx.ExecContext(ctx, `UPDATE pool SET balance = 0 WHERE id = 1`); err != nil {
		return 0, fmt.Errorf("zero pool balance: %w", err)
	}

	now := toMillis(time.Now())
	if _, err := tx.ExecContext(
		ctx,
		`INSERT INTO accounts (participant_id, balance, updated_at) VALUES (?, ?, ?)
		 ON CONFLICT (participant_id) DO UPDATE SET
		   balance = balance + excluded.balance,
		   updated_at = excluded.updated_at`,
		participantID,
		balance,
		now,
	); err != nil {
		return 0, fmt.Errorf("credit winner account: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return 0, fmt.Errorf("commit payout transaction: %w", err)
	}
	return uint64(balance), nil
}

// AccountBalance returns a participant's credited winnings.
func (s *Store) AccountBalance(ctx context.Context, participantID string) (uint64, error) {
	if err := ctx.Err(); err != nil {
		return 0, err
	}
	if s == nil || s.sqlDB == nil {
		return 0, fmt.Errorf("storage is not configured")
	}
	participantID = strings.TrimSpace(participantID)
	if participantID == "" {
		return 0, fmt.Errorf("participant id is required")
	}

	var balance int64
	row := s.sqlDB.QueryRowContext(
		ctx,
		`SELECT balance FROM accounts WHERE participant_id = ?`,
		participantID,
	)
	if err := row.Scan(&balance); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return 0, storage.ErrNotFound
		}
		return 0, fmt.Errorf("read account balance: %w", err)
	}
	return uint64(balance), nil
}

// AppendEvent inserts one raffle event journal record.
func (s *Store) AppendEvent(ctx context.Context, event storage.Event) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if s == nil || s.sqlDB == nil {
		return fmt.Errorf("storage is not configured")
	}
	eventType := strings.TrimSpace(event.Type)
	if eventType == "" {
		return fmt.Errorf("event type is required")
	}
	createdAt := event.CreatedAt
	if createdAt.IsZero() {
		createdAt = time.Now()
	}

	_, err := s.sqlDB.ExecContext(
		ctx,
		`INSERT INTO raffle_events (event_type, participant_id, amount, request_id, created_at)
		 VALUES (?, ?, ?, ?, ?)`,
		eventType,
		strings.TrimSpace(event.ParticipantID),
		int64(event.Amount),
		strings.TrimSpace(event.RequestID),
		toMillis(createdAt),
	)
	if err != nil {
		return fmt.Errorf("append raffle event: %w", err)
	}
	return nil
}

// ListEvents returns the most recent raffle events, newest first.
func (s *Store) ListEvents(ctx context.Context, limit int) ([]storage.Event, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if s == nil || s.sqlDB == nil {
		return nil, fmt.Errorf("storage is not configured")
	}
	if limit <= 0 {
		limit = 50
	}

	rows, err := s.sqlDB.QueryContext(
		ctx,
		`SELECT id, event_type, participant_id, amount, request_id, created_at
		 FROM raffle_events
		 ORDER BY id DESC
		 LIMIT ?`,
		limit,
	)
	if err != nil {
		return nil, fmt.Errorf("list raffle events: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var events []storage.Event
	for rows.Next() {
		var (
			event     storage.Event
			amount    int64
			createdAt int64
		)
		if err := rows.Scan(&event.ID, &event.Type, &event.ParticipantID, &amount, &event.RequestID, &createdAt); err != nil {
			return nil, fmt.Errorf("scan raffle event: %w", err)
		}
		event.Amount = uint64(amount)
		event.CreatedAt = fromMillis(createdAt)
		events = append(events, event)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate raffle events: %w", err)
	}
	return events, nil
}

var _ storage.Store = (*Store)(nil)
