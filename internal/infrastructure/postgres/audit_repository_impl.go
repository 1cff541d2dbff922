package postgres

import (
	"context"
	"encoding/json"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/oksasatya/go-social-network/internal/domain/entity"
	repo "github.com/oksasatya/go-social-network/internal/domain/repository"
)

// execer is the part of *pgxpool.Pool the audit log needs.
type execer interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
}

type AuditRepository struct {
	db execer
}

var _ repo.AuditRepository = (*AuditRepository)(nil)

func NewAuditRepository(db execer) *AuditRepository {
	return &AuditRepository{db: db}
}

func (r *AuditRepository) Record(ctx context.Context, ev entity.AuditEvent) error {
	md := ev.Metadata
	if md == nil {
		md = map[string]any{}
	}
	raw, err := json.Marshal(md)
	if err != nil {
		return err
	}
	_, err = r.db.Exec(ctx, `
		INSERT INTO audit_logs (id, user_id, email, action, ip, user_agent, metadata)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
	`, uuid.New(), ev.UserID, ev.Email, ev.Action, ev.IP, ev.UserAgent, raw)
	return err
}

// NopAuditRepository drops every event; used when the audit log is disabled.
type NopAuditRepository struct{}

func (NopAuditRepository) Record(context.Context, entity.AuditEvent) error { return nil }
