package audit

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	id "komek/pkg/domain"
)

// PostgresStore persists ledger entries in PostgreSQL for hosts that want
// durable audit rows. Open the database with the pgx stdlib driver; the
// store itself is driver-agnostic database/sql.
type PostgresStore struct {
	db *sql.DB
}

func NewPostgresStore(db *sql.DB) *PostgresStore {
	return &PostgresStore{db: db}
}

func (s *PostgresStore) Append(ctx context.Context, entry Entry) error {
	if entry.ID == uuid.Nil {
		entry.ID = uuid.New()
	}
	_, err := s.db.ExecContext(ctx, `
		INSERT INTO audit_log (
			id, entity_type, entity_id, action, field_name,
			old_value, new_value, actor_id, actor_role, event,
			client_ip, user_agent, request_id, created_at
		) VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11,$12,$13,$14)`,
		entry.ID, entry.EntityType, entry.EntityID, string(entry.Action), entry.FieldName,
		entry.OldValue, entry.NewValue, entry.ActorID.String(), entry.ActorRole, entry.Event,
		entry.Request.IP, entry.Request.UserAgent, entry.Request.RequestID, entry.Timestamp,
	)
	if err != nil {
		return fmt.Errorf("append audit entry: %w", err)
	}
	return nil
}

func (s *PostgresStore) List(ctx context.Context, filter Filter) ([]Entry, error) {
	query := strings.Builder{}
	query.WriteString(`
		SELECT id, entity_type, entity_id, action, field_name,
		       old_value, new_value, actor_id, actor_role, event,
		       client_ip, user_agent, request_id, created_at
		FROM audit_log`)

	var conds []string
	var args []any
	arg := func(v any) string {
		args = append(args, v)
		return fmt.Sprintf("$%d", len(args))
	}
	if filter.EntityType != "" {
		conds = append(conds, "entity_type = "+arg(filter.EntityType))
	}
	if filter.EntityID != "" {
		conds = append(conds, "entity_id = "+arg(filter.EntityID))
	}
	if !filter.ActorID.IsNil() {
		conds = append(conds, "actor_id = "+arg(filter.ActorID.String()))
	}
	if filter.Action != "" {
		conds = append(conds, "action = "+arg(string(filter.Action)))
	}
	if !filter.From.IsZero() {
		conds = append(conds, "created_at >= "+arg(filter.From))
	}
	if !filter.To.IsZero() {
		conds = append(conds, "created_at <= "+arg(filter.To))
	}
	if len(conds) > 0 {
		query.WriteString(" WHERE " + strings.Join(conds, " AND "))
	}
	query.WriteString(" ORDER BY created_at, id")

	rows, err := s.db.QueryContext(ctx, query.String(), args...)
	if err != nil {
		return nil, fmt.Errorf("list audit entries: %w", err)
	}
	defer rows.Close()

	var out []Entry
	for rows.Next() {
		var e Entry
		var actorID string
		var createdAt time.Time
		if err := rows.Scan(
			&e.ID, &e.EntityType, &e.EntityID, &e.Action, &e.FieldName,
			&e.OldValue, &e.NewValue, &actorID, &e.ActorRole, &e.Event,
			&e.Request.IP, &e.Request.UserAgent, &e.Request.RequestID, &createdAt,
		); err != nil {
			return nil, fmt.Errorf("scan audit entry: %w", err)
		}
		if parsed, err := id.ParseUserID(actorID); err == nil {
			e.ActorID = parsed
		}
		e.Timestamp = createdAt
		out = append(out, e)
	}
	return out, rows.Err()
}

// Reset truncates the ledger. Reserved for test fixtures; never expose this
// on a production path.
func (s *PostgresStore) Reset(ctx context.Context) error {
	_, err := s.db.ExecContext(ctx, `TRUNCATE audit_log`)
	return err
}
