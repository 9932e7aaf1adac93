package postgres

import (
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/wazard-api/internal/domain/entity"
)

// Filas tal como viven en las tablas; los repositorios solo hablan entity hacia afuera.

type accountRow struct {
	ID          int64
	Email       string
	Password    string
	UserName    string
	PhoneNumber string
	Gender      string
	Birth       time.Time
	Roles       string
	State       string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

func accountToRow(a *entity.Account) accountRow {
	return accountRow{
		ID:          a.ID,
		Email:       a.Profile.Email,
		Password:    a.Profile.Password,
		UserName:    a.Profile.UserName,
		PhoneNumber: a.Profile.PhoneNumber,
		Gender:      string(a.Profile.Gender),
		Birth:       a.Profile.Birth,
		Roles:       a.Roles,
		State:       a.State,
		CreatedAt:   a.CreatedAt,
		UpdatedAt:   a.UpdatedAt,
	}
}

func (r accountRow) toEntity() *entity.Account {
	return &entity.Account{
		ID: r.ID,
		Profile: entity.MyProfile{
			Email:       r.Email,
			Password:    r.Password,
			UserName:    r.UserName,
			PhoneNumber: r.PhoneNumber,
			Gender:      entity.GenderType(r.Gender),
			Birth:       r.Birth,
		},
		Roles:     r.Roles,
		State:     r.State,
		CreatedAt: r.CreatedAt,
		UpdatedAt: r.UpdatedAt,
	}
}

// scanAccount lee las columnas de accountColumns (sin password).
func scanAccount(row pgx.Row) (*entity.Account, error) {
	var r accountRow
	if err := row.Scan(&r.ID, &r.Email, &r.UserName, &r.PhoneNumber, &r.Gender, &r.Birth,
		&r.Roles, &r.State, &r.CreatedAt, &r.UpdatedAt); err != nil {
		return nil, err
	}
	return r.toEntity(), nil
}

type companyRow struct {
	ID             int64
	AccountID      int64
	CompanyName    string
	ZipCode        string
	Address        string
	CompanyContact string
	SalaryDate     int32
	LogoImageURL   string
	HourlyWage     decimal.Decimal
	State          string
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

func companyToRow(c *entity.Company) companyRow {
	return companyRow{
		ID:             c.ID,
		AccountID:      c.AccountID,
		CompanyName:    c.CompanyName,
		ZipCode:        c.ZipCode,
		Address:        c.Address,
		CompanyContact: c.CompanyContact,
		SalaryDate:     int32(c.SalaryDate),
		LogoImageURL:   c.LogoImageURL,
		HourlyWage:     c.HourlyWage,
		State:          c.State,
		CreatedAt:      c.CreatedAt,
		UpdatedAt:      c.UpdatedAt,
	}
}

func (r companyRow) toEntity() *entity.Company {
	return &entity.Company{
		ID:             r.ID,
		AccountID:      r.AccountID,
		CompanyName:    r.CompanyName,
		ZipCode:        r.ZipCode,
		Address:        r.Address,
		CompanyContact: r.CompanyContact,
		SalaryDate:     int(r.SalaryDate),
		LogoImageURL:   r.LogoImageURL,
		HourlyWage:     r.HourlyWage,
		State:          r.State,
		CreatedAt:      r.CreatedAt,
		UpdatedAt:      r.UpdatedAt,
	}
}

func scanCompany(row pgx.Row) (*entity.Company, error) {
	var r companyRow
	if err := row.Scan(&r.ID, &r.AccountID, &r.CompanyName, &r.ZipCode, &r.Address, &r.CompanyContact,
		&r.SalaryDate, &r.LogoImageURL, &r.HourlyWage, &r.State, &r.CreatedAt, &r.UpdatedAt); err != nil {
		return nil, err
	}
	return r.toEntity(), nil
}

type enterRecordRow struct {
	ID        int64
	AccountID int64
	CompanyID int64
	EnterDate time.Time
	EnterTime time.Time
	Tardy     bool
}

func enterRecordToRow(e *entity.EnterRecord) enterRecordRow {
	return enterRecordRow{
		ID:        e.ID,
		AccountID: e.AccountID,
		CompanyID: e.CompanyID,
		EnterDate: entity.DateOnly(e.EnterDate),
		EnterTime: e.EnterTime,
		Tardy:     e.Tardy,
	}
}

type exitRecordRow struct {
	ID            int64
	EnterRecordID int64
	ExitDate      time.Time
	ExitTime      time.Time
}

func exitRecordToRow(e *entity.ExitRecord) exitRecordRow {
	return exitRecordRow{
		ID:            e.ID,
		EnterRecordID: e.EnterRecordID,
		ExitDate:      entity.DateOnly(e.ExitDate),
		ExitTime:      e.ExitTime,
	}
}

type absentRecordRow struct {
	ID         int64
	AccountID  int64
	CompanyID  int64
	AbsentDate time.Time
	MarkedBy   int64
	CreatedAt  time.Time
}

func absentRecordToRow(a *entity.AbsentRecord) absentRecordRow {
	return absentRecordRow{
		ID:         a.ID,
		AccountID:  a.AccountID,
		CompanyID:  a.CompanyID,
		AbsentDate: entity.DateOnly(a.AbsentDate),
		MarkedBy:   a.MarkedBy,
		CreatedAt:  a.CreatedAt,
	}
}

// attendanceEntryRow resultado del LEFT JOIN enter_records / exit_records / accounts.
type attendanceEntryRow struct {
	AccountID int64
	UserName  string
	EnterTime time.Time
	ExitTime  pgtype.Timestamptz
	Tardy     bool
}

func (r attendanceEntryRow) toEntity() entity.AttendanceEntry {
	e := entity.AttendanceEntry{
		AccountID: r.AccountID,
		UserName:  r.UserName,
		EnterTime: r.EnterTime,
		Tardy:     r.Tardy,
	}
	if r.ExitTime.Valid {
		t := r.ExitTime.Time
		e.ExitTime = &t
	}
	return e
}

func scanAttendanceEntries(rows pgx.Rows) ([]entity.AttendanceEntry, error) {
	defer rows.Close()
	var out []entity.AttendanceEntry
	for rows.Next() {
		var r attendanceEntryRow
		if err := rows.Scan(&r.AccountID, &r.UserName, &r.EnterTime, &r.ExitTime, &r.Tardy); err != nil {
			return nil, err
		}
		out = append(out, r.toEntity())
	}
	return out, rows.Err()
}
