package repository

import (
	"context"
	"time"

	"github.com/jhoicas/wazard-api/internal/domain/entity"
)

// CommuteRecordRepository puerto para registros de entrada/salida.
type CommuteRecordRepository interface {
	RecordEnterTime(ctx context.Context, record *entity.EnterRecord) error
	// FindEnterRecord devuelve el id de la última entrada sin salida de (accountID, companyID),
	// o domain.ErrEnterRecordNotFound.
	FindEnterRecord(ctx context.Context, accountID, companyID int64) (int64, error)
	RecordExitTime(ctx context.Context, record *entity.ExitRecord, enterRecordID int64) error
	GetMyAttendanceByDayOfTheWeek(ctx context.Context, attendance entity.Attendance) ([]entity.AttendanceEntry, error)
	ListCompanyAttendanceByDate(ctx context.Context, companyID int64, date time.Time) ([]entity.AttendanceEntry, error)
}

// AbsentRepository puerto para marcas de ausencia.
type AbsentRepository interface {
	MarkingAbsent(ctx context.Context, record *entity.AbsentRecord) error
}
