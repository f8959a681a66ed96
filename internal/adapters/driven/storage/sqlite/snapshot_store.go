package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/custodia-labs/lexport/internal/core/domain"
	"github.com/custodia-labs/lexport/internal/core/ports/driven"
)

// snapshotStore implements driven.SnapshotStore.
type snapshotStore struct {
	store *Store
}

var _ driven.SnapshotStore = (*snapshotStore)(nil)

// timeLayout is fixed width so exported_at sorts correctly as text.
const timeLayout = "2006-01-02T15:04:05.000000000Z07:00"

const snapshotColumns = `id, bot_name, bot_version, checksum, intent_count, slot_type_count, pretty, exported_at, document`

// Save stores a snapshot.
func (s *snapshotStore) Save(ctx context.Context, snapshot *domain.Snapshot) error {
	if snapshot == nil || snapshot.ID == "" {
		return domain.ErrInvalidInput
	}

	_, err := s.store.db.ExecContext(ctx, `
		INSERT INTO snapshots (`+snapshotColumns+`)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)
	`, snapshot.ID, snapshot.BotName, snapshot.BotVersion, nullString(snapshot.Checksum),
		snapshot.IntentCount, snapshot.SlotTypeCount, boolToInt(snapshot.Pretty),
		snapshot.ExportedAt.UTC().Format(timeLayout), snapshot.Document)
	if err != nil {
		return fmt.Errorf("saving snapshot: %w", err)
	}
	return nil
}

// Get retrieves a snapshot by ID.
func (s *snapshotStore) Get(ctx context.Context, id string) (*domain.Snapshot, error) {
	row := s.store.db.QueryRowContext(ctx, `
		SELECT `+snapshotColumns+` FROM snapshots WHERE id = ?
	`, id)
	return scanSnapshot(row)
}

// List returns snapshots for a bot, most recent first.
func (s *snapshotStore) List(ctx context.Context, botName string, limit int) ([]domain.Snapshot, error) {
	if limit <= 0 {
		limit = -1 // SQLite: negative LIMIT means no limit
	}

	rows, err := s.store.db.QueryContext(ctx, `
		SELECT `+snapshotColumns+`
		FROM snapshots
		WHERE bot_name = ?
		ORDER BY exported_at DESC
		LIMIT ?
	`, botName, limit)
	if err != nil {
		return nil, fmt.Errorf("querying snapshots: %w", err)
	}
	defer rows.Close()

	snapshots := make([]domain.Snapshot, 0)
	for rows.Next() {
		snapshot, err := scanSnapshot(rows)
		if err != nil {
			return nil, err
		}
		snapshots = append(snapshots, *snapshot)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating snapshots: %w", err)
	}

	return snapshots, nil
}

// scanner is satisfied by *sql.Row and *sql.Rows.
type scanner interface {
	Scan(dest ...any) error
}

func scanSnapshot(row scanner) (*domain.Snapshot, error) {
	var (
		snapshot   domain.Snapshot
		checksum   sql.NullString
		pretty     int
		exportedAt string
	)

	err := row.Scan(&snapshot.ID, &snapshot.BotName, &snapshot.BotVersion, &checksum,
		&snapshot.IntentCount, &snapshot.SlotTypeCount, &pretty, &exportedAt, &snapshot.Document)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, domain.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("scanning snapshot: %w", err)
	}

	snapshot.Checksum = checksum.String
	snapshot.Pretty = pretty != 0
	snapshot.ExportedAt, err = time.Parse(timeLayout, exportedAt)
	if err != nil {
		return nil, fmt.Errorf("parsing exported_at: %w", err)
	}

	return &snapshot, nil
}

// nullString returns nil for empty strings, otherwise the string.
func nullString(s string) any {
	if s == "" {
		return nil
	}
	return s
}

// boolToInt converts a bool to 1 (true) or 0 (false).
func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}
