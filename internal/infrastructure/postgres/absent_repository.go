package postgres

import (
	"context"
	"fmt"

	"github.com/jhoicas/wazard-api/internal/domain"
	"github.com/jhoicas/wazard-api/internal/domain/entity"
	"github.com/jhoicas/wazard-api/internal/domain/repository"
)

var _ repository.AbsentRepository = (*AbsentRepo)(nil)

const insertAbsentRecordSQL = `
		INSERT INTO absent_records (account_id, company_id, absent_date, marked_by, created_at)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id`

// AbsentRepo marcas de ausencia sobre PostgreSQL.
type AbsentRepo struct {
	db Queryer
}

// NewAbsentRepository construye el adaptador.
func NewAbsentRepository(db Queryer) *AbsentRepo {
	return &AbsentRepo{db: db}
}

// MarkingAbsent inserta la ausencia y asigna record.ID.
func (r *AbsentRepo) MarkingAbsent(ctx context.Context, record *entity.AbsentRecord) error {
	row := absentRecordToRow(record)
	err := QueryerFromContext(ctx, r.db).QueryRow(ctx, insertAbsentRecordSQL,
		row.AccountID, row.CompanyID, row.AbsentDate, row.MarkedBy, row.CreatedAt,
	).Scan(&record.ID)
	if err != nil {
		if isForeignKeyViolation(err) {
			return domain.ErrNotFound
		}
		return fmt.Errorf("insert absent record: %w", err)
	}
	return nil
}
