package repository

import (
	"context"

	"github.com/oksasatya/go-social-network/internal/domain/entity"
)

type AuditRepository interface {
	Record(ctx context.Context, ev entity.AuditEvent) error
}
