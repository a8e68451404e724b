package repository

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/spec-kit/fincalc-service/internal/domain"
)

// AuditLogRepository appends calculation audit rows. Writes are best effort
// from the caller's point of view; the repository itself reports failures.
type AuditLogRepository interface {
	Insert(ctx context.Context, record *domain.AuditRecord) error
}

type auditLogRepository struct {
	pool *pgxpool.Pool
}

// NewAuditLogRepository returns a Postgres-backed implementation.
func NewAuditLogRepository(pool *pgxpool.Pool) AuditLogRepository {
	return &auditLogRepository{pool: pool}
}

func (r *auditLogRepository) Insert(ctx context.Context, record *domain.AuditRecord) error {
	const query = `
        INSERT INTO calculation_logs (calculation_type, request_data, result)
        VALUES ($1, $2, $3)
        RETURNING id, created_at`

	return r.pool.QueryRow(ctx, query,
		string(record.CalculationType),
		record.RequestData,
		record.Result,
	).Scan(&record.ID, &record.CreatedAt)
}
