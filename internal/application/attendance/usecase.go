package attendance

import (
	"context"
	"time"

	"github.com/jhoicas/wazard-api/internal/application/account"
	"github.com/jhoicas/wazard-api/internal/application/dto"
	"github.com/jhoicas/wazard-api/internal/application/ports"
	"github.com/jhoicas/wazard-api/internal/domain"
	"github.com/jhoicas/wazard-api/internal/domain/entity"
	"github.com/jhoicas/wazard-api/internal/domain/repository"
)

// AttendanceUseCase casos de uso de asistencia: entrada, salida, ausencia y consultas por día.
type AttendanceUseCase struct {
	commuteRepo repository.CommuteRecordRepository
	absentRepo  repository.AbsentRepository
	accountRepo repository.AccountRepository
	companyRepo repository.CompanyRepository
	sheets      SheetGenerator
	tx          ports.TxManager
	clock       ports.Clock
}

// Deps dependencias opcionales; los nil se reemplazan por implementaciones por defecto.
type Deps struct {
	Sheets SheetGenerator
	Tx     ports.TxManager
	Clock  ports.Clock
}

// NewAttendanceUseCase construye el caso de uso.
func NewAttendanceUseCase(
	commuteRepo repository.CommuteRecordRepository,
	absentRepo repository.AbsentRepository,
	accountRepo repository.AccountRepository,
	companyRepo repository.CompanyRepository,
	deps Deps,
) *AttendanceUseCase {
	uc := &AttendanceUseCase{
		commuteRepo: commuteRepo,
		absentRepo:  absentRepo,
		accountRepo: accountRepo,
		companyRepo: companyRepo,
		sheets:      deps.Sheets,
		tx:          deps.Tx,
		clock:       deps.Clock,
	}
	if uc.tx == nil {
		uc.tx = ports.NoopTxManager{}
	}
	if uc.clock == nil {
		uc.clock = ports.SystemClock{}
	}
	return uc
}

// RecordEnterTime registra la hora de entrada de hoy. No deduplica entradas del mismo día.
func (uc *AttendanceUseCase) RecordEnterTime(ctx context.Context, in dto.RecordEnterTimeRequest) (*dto.RecordEnterTimeResponse, error) {
	if in.AccountID <= 0 || in.CompanyID <= 0 {
		return nil, domain.ErrInvalidInput
	}
	now := uc.clock.Now()
	record := &entity.EnterRecord{
		AccountID: in.AccountID,
		CompanyID: in.CompanyID,
		EnterDate: entity.DateOnly(now),
		EnterTime: now,
		Tardy:     in.Tardy,
	}
	err := uc.tx.WithinReadWrite(ctx, func(txCtx context.Context) error {
		return uc.commuteRepo.RecordEnterTime(txCtx, record)
	})
	if err != nil {
		return nil, err
	}
	return &dto.RecordEnterTimeResponse{EnterRecordID: record.ID, EnterTime: record.EnterTime}, nil
}

// RecordExitTime registra la salida ligada a la última entrada abierta de la cuenta en la empresa.
// Devuelve domain.ErrEnterRecordNotFound si no hay entrada previa.
func (uc *AttendanceUseCase) RecordExitTime(ctx context.Context, in dto.RecordExitTimeRequest) (*dto.RecordExitTimeResponse, error) {
	if in.AccountID <= 0 || in.CompanyID <= 0 {
		return nil, domain.ErrInvalidInput
	}
	now := uc.clock.Now()
	record := &entity.ExitRecord{
		ExitDate: entity.DateOnly(now),
		ExitTime: now,
	}
	err := uc.tx.WithinReadWrite(ctx, func(txCtx context.Context) error {
		enterID, err := uc.commuteRepo.FindEnterRecord(txCtx, in.AccountID, in.CompanyID)
		if err != nil {
			return err
		}
		record.EnterRecordID = enterID
		return uc.commuteRepo.RecordExitTime(txCtx, record, enterID)
	})
	if err != nil {
		return nil, err
	}
	return &dto.RecordExitTimeResponse{EnterRecordID: record.EnterRecordID, ExitTime: record.ExitTime}, nil
}

// MarkingAbsent el empleador identificado por email marca ausente hoy al trabajador in.AccountID.
func (uc *AttendanceUseCase) MarkingAbsent(ctx context.Context, in dto.MarkingAbsentRequest) error {
	if in.AccountID <= 0 || in.CompanyID <= 0 {
		return domain.ErrInvalidInput
	}
	return uc.tx.WithinReadWrite(ctx, func(txCtx context.Context) error {
		actor, err := uc.accountRepo.FindByEmail(txCtx, account.NormalizeEmail(in.Email))
		if err != nil {
			return err
		}
		if _, err := uc.ownedCompany(txCtx, actor, in.CompanyID); err != nil {
			return err
		}
		if _, err := uc.accountRepo.FindByID(txCtx, in.AccountID); err != nil {
			return err
		}
		now := uc.clock.Now()
		return uc.absentRepo.MarkingAbsent(txCtx, &entity.AbsentRecord{
			AccountID:  in.AccountID,
			CompanyID:  in.CompanyID,
			AbsentDate: entity.DateOnly(now),
			MarkedBy:   actor.ID,
			CreatedAt:  now,
		})
	})
}

// GetMyAttendanceByDayOfTheWeek lista las entradas (con su salida) del día date.
// Cada cuenta puede consultar la suya; la de otros solo el empleador dueño de la empresa.
func (uc *AttendanceUseCase) GetMyAttendanceByDayOfTheWeek(ctx context.Context, in dto.GetAttendanceByDayOfTheWeekRequest, date time.Time) ([]dto.AttendanceByDayOfTheWeekResponse, error) {
	if in.AccountID <= 0 || in.CompanyID <= 0 {
		return nil, domain.ErrInvalidInput
	}
	var entries []entity.AttendanceEntry
	err := uc.tx.WithinReadOnly(ctx, func(txCtx context.Context) error {
		requester, err := uc.accountRepo.FindByEmail(txCtx, account.NormalizeEmail(in.Email))
		if err != nil {
			return err
		}
		if requester.ID != in.AccountID {
			if _, err := uc.ownedCompany(txCtx, requester, in.CompanyID); err != nil {
				return err
			}
		}
		entries, err = uc.commuteRepo.GetMyAttendanceByDayOfTheWeek(txCtx, entity.Attendance{
			AccountID: in.AccountID,
			CompanyID: in.CompanyID,
			Date:      entity.DateOnly(date),
		})
		return err
	})
	if err != nil {
		return nil, err
	}

	out := make([]dto.AttendanceByDayOfTheWeekResponse, 0, len(entries))
	for _, e := range entries {
		out = append(out, dto.AttendanceByDayOfTheWeekResponse{
			AccountID: e.AccountID,
			UserName:  e.UserName,
			EnterTime: e.EnterTime,
			ExitTime:  e.ExitTime,
			Tardy:     e.Tardy,
		})
	}
	return out, nil
}

// GetAttendanceSheet genera el PDF con la asistencia del día de toda la empresa.
// Solo el empleador dueño de la empresa puede descargarlo.
func (uc *AttendanceUseCase) GetAttendanceSheet(ctx context.Context, email string, companyID int64, date time.Time) ([]byte, error) {
	if uc.sheets == nil {
		return nil, domain.ErrNotFound
	}
	var (
		company *entity.Company
		entries []entity.AttendanceEntry
	)
	day := entity.DateOnly(date)
	err := uc.tx.WithinReadOnly(ctx, func(txCtx context.Context) error {
		actor, err := uc.accountRepo.FindByEmail(txCtx, account.NormalizeEmail(email))
		if err != nil {
			return err
		}
		company, err = uc.ownedCompany(txCtx, actor, companyID)
		if err != nil {
			return err
		}
		entries, err = uc.commuteRepo.ListCompanyAttendanceByDate(txCtx, companyID, day)
		return err
	})
	if err != nil {
		return nil, err
	}
	return uc.sheets.GenerateAttendanceSheet(ctx, company, day, entries)
}

// ownedCompany carga la empresa y exige que actor sea el empleador dueño.
func (uc *AttendanceUseCase) ownedCompany(ctx context.Context, actor *entity.Account, companyID int64) (*entity.Company, error) {
	if !actor.IsEmployer() {
		return nil, domain.ErrForbidden
	}
	company, err := uc.companyRepo.FindByID(ctx, companyID)
	if err != nil {
		return nil, err
	}
	if !company.OwnedBy(actor.ID) {
		return nil, domain.ErrForbidden
	}
	return company, nil
}
