package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/jhoicas/wazard-api/internal/domain"
	"github.com/jhoicas/wazard-api/internal/domain/entity"
	"github.com/jhoicas/wazard-api/internal/domain/repository"
)

var _ repository.CommuteRecordRepository = (*CommuteRecordRepo)(nil)

const (
	insertEnterRecordSQL = `
		INSERT INTO enter_records (account_id, company_id, enter_date, enter_time, tardy)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id`
	// Última entrada del par sin salida registrada; no se limita al día para cubrir turnos nocturnos.
	findOpenEnterRecordSQL = `
		SELECT e.id
		  FROM enter_records e
		  LEFT JOIN exit_records x ON x.enter_record_id = e.id
		 WHERE e.account_id = $1 AND e.company_id = $2 AND x.id IS NULL
		 ORDER BY e.enter_time DESC, e.id DESC
		 LIMIT 1`
	insertExitRecordSQL = `
		INSERT INTO exit_records (enter_record_id, exit_date, exit_time)
		VALUES ($1, $2, $3)
		RETURNING id`
	attendanceByDaySQL = `
		SELECT e.account_id, a.user_name, e.enter_time, x.exit_time, e.tardy
		  FROM enter_records e
		  JOIN accounts a ON a.id = e.account_id
		  LEFT JOIN exit_records x ON x.enter_record_id = e.id
		 WHERE e.account_id = $1 AND e.company_id = $2 AND e.enter_date = $3
		 ORDER BY e.enter_time, e.id`
	companyAttendanceByDaySQL = `
		SELECT e.account_id, a.user_name, e.enter_time, x.exit_time, e.tardy
		  FROM enter_records e
		  JOIN accounts a ON a.id = e.account_id
		  LEFT JOIN exit_records x ON x.enter_record_id = e.id
		 WHERE e.company_id = $1 AND e.enter_date = $2
		 ORDER BY a.user_name, e.enter_time, e.id`
)

// CommuteRecordRepo registros de entrada/salida sobre PostgreSQL.
type CommuteRecordRepo struct {
	db Queryer
}

// NewCommuteRecordRepository construye el adaptador.
func NewCommuteRecordRepository(db Queryer) *CommuteRecordRepo {
	return &CommuteRecordRepo{db: db}
}

// RecordEnterTime inserta la entrada y asigna record.ID.
func (r *CommuteRecordRepo) RecordEnterTime(ctx context.Context, record *entity.EnterRecord) error {
	row := enterRecordToRow(record)
	err := QueryerFromContext(ctx, r.db).QueryRow(ctx, insertEnterRecordSQL,
		row.AccountID, row.CompanyID, row.EnterDate, row.EnterTime, row.Tardy,
	).Scan(&record.ID)
	if err != nil {
		if isForeignKeyViolation(err) {
			return domain.ErrNotFound
		}
		return fmt.Errorf("insert enter record: %w", err)
	}
	return nil
}

// FindEnterRecord devuelve el id de la última entrada abierta o domain.ErrEnterRecordNotFound.
func (r *CommuteRecordRepo) FindEnterRecord(ctx context.Context, accountID, companyID int64) (int64, error) {
	var id int64
	err := QueryerFromContext(ctx, r.db).QueryRow(ctx, findOpenEnterRecordSQL, accountID, companyID).Scan(&id)
	if err != nil {
		if isNoRows(err) {
			return 0, domain.ErrEnterRecordNotFound
		}
		return 0, fmt.Errorf("find enter record: %w", err)
	}
	return id, nil
}

// RecordExitTime inserta la salida ligada a enterRecordID. Una segunda salida para la misma entrada
// choca con el índice único y se reporta como domain.ErrEnterRecordNotFound.
func (r *CommuteRecordRepo) RecordExitTime(ctx context.Context, record *entity.ExitRecord, enterRecordID int64) error {
	record.EnterRecordID = enterRecordID
	row := exitRecordToRow(record)
	err := QueryerFromContext(ctx, r.db).QueryRow(ctx, insertExitRecordSQL,
		row.EnterRecordID, row.ExitDate, row.ExitTime,
	).Scan(&record.ID)
	if err != nil {
		if isUniqueViolation(err) || isForeignKeyViolation(err) {
			return domain.ErrEnterRecordNotFound
		}
		return fmt.Errorf("insert exit record: %w", err)
	}
	return nil
}

// GetMyAttendanceByDayOfTheWeek entradas del día de una cuenta en una empresa, por hora de entrada.
func (r *CommuteRecordRepo) GetMyAttendanceByDayOfTheWeek(ctx context.Context, attendance entity.Attendance) ([]entity.AttendanceEntry, error) {
	rows, err := QueryerFromContext(ctx, r.db).Query(ctx, attendanceByDaySQL,
		attendance.AccountID, attendance.CompanyID, entity.DateOnly(attendance.Date),
	)
	if err != nil {
		return nil, fmt.Errorf("query attendance by day: %w", err)
	}
	entries, err := scanAttendanceEntries(rows)
	if err != nil {
		return nil, fmt.Errorf("scan attendance by day: %w", err)
	}
	return entries, nil
}

// ListCompanyAttendanceByDate entradas del día de todos los trabajadores de la empresa.
func (r *CommuteRecordRepo) ListCompanyAttendanceByDate(ctx context.Context, companyID int64, date time.Time) ([]entity.AttendanceEntry, error) {
	rows, err := QueryerFromContext(ctx, r.db).Query(ctx, companyAttendanceByDaySQL, companyID, entity.DateOnly(date))
	if err != nil {
		return nil, fmt.Errorf("query company attendance: %w", err)
	}
	entries, err := scanAttendanceEntries(rows)
	if err != nil {
		return nil, fmt.Errorf("scan company attendance: %w", err)
	}
	return entries, nil
}
