package attendance

import (
	"context"
	"sort"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/wazard-api/internal/application/dto"
	"github.com/jhoicas/wazard-api/internal/domain"
	"github.com/jhoicas/wazard-api/internal/domain/entity"
)

// ──────────────────────────────────────────────────────────────────────────────
// Fakes
// ──────────────────────────────────────────────────────────────────────────────

type fakeCommuteRepo struct {
	enters []entity.EnterRecord
	exits  []entity.ExitRecord
	users  map[int64]string
}

func (r *fakeCommuteRepo) RecordEnterTime(_ context.Context, rec *entity.EnterRecord) error {
	rec.ID = int64(len(r.enters) + 1)
	r.enters = append(r.enters, *rec)
	return nil
}

func (r *fakeCommuteRepo) FindEnterRecord(_ context.Context, accountID, companyID int64) (int64, error) {
	for i := len(r.enters) - 1; i >= 0; i-- {
		e := r.enters[i]
		if e.AccountID == accountID && e.CompanyID == companyID && r.exitOf(e.ID) == nil {
			return e.ID, nil
		}
	}
	return 0, domain.ErrEnterRecordNotFound
}

func (r *fakeCommuteRepo) RecordExitTime(_ context.Context, rec *entity.ExitRecord, enterRecordID int64) error {
	rec.ID = int64(len(r.exits) + 1)
	rec.EnterRecordID = enterRecordID
	r.exits = append(r.exits, *rec)
	return nil
}

func (r *fakeCommuteRepo) GetMyAttendanceByDayOfTheWeek(_ context.Context, a entity.Attendance) ([]entity.AttendanceEntry, error) {
	return r.list(func(e entity.EnterRecord) bool {
		return e.AccountID == a.AccountID && e.CompanyID == a.CompanyID && e.EnterDate.Equal(a.Date)
	}), nil
}

func (r *fakeCommuteRepo) ListCompanyAttendanceByDate(_ context.Context, companyID int64, date time.Time) ([]entity.AttendanceEntry, error) {
	return r.list(func(e entity.EnterRecord) bool {
		return e.CompanyID == companyID && e.EnterDate.Equal(date)
	}), nil
}

func (r *fakeCommuteRepo) exitOf(enterID int64) *entity.ExitRecord {
	for i := range r.exits {
		if r.exits[i].EnterRecordID == enterID {
			return &r.exits[i]
		}
	}
	return nil
}

func (r *fakeCommuteRepo) list(match func(entity.EnterRecord) bool) []entity.AttendanceEntry {
	var matched []entity.EnterRecord
	for _, e := range r.enters {
		if match(e) {
			matched = append(matched, e)
		}
	}
	sort.SliceStable(matched, func(i, j int) bool {
		if matched[i].EnterTime.Equal(matched[j].EnterTime) {
			return matched[i].ID < matched[j].ID
		}
		return matched[i].EnterTime.Before(matched[j].EnterTime)
	})
	out := make([]entity.AttendanceEntry, 0, len(matched))
	for _, e := range matched {
		entry := entity.AttendanceEntry{AccountID: e.AccountID, UserName: r.users[e.AccountID], EnterTime: e.EnterTime, Tardy: e.Tardy}
		if x := r.exitOf(e.ID); x != nil {
			t := x.ExitTime
			entry.ExitTime = &t
		}
		out = append(out, entry)
	}
	return out
}

type fakeAbsentRepo struct {
	records []entity.AbsentRecord
}

func (r *fakeAbsentRepo) MarkingAbsent(_ context.Context, rec *entity.AbsentRecord) error {
	rec.ID = int64(len(r.records) + 1)
	r.records = append(r.records, *rec)
	return nil
}

type fakeAccountRepo struct {
	byID map[int64]*entity.Account
}

func (r *fakeAccountRepo) Create(context.Context, *entity.Account) error      { return nil }
func (r *fakeAccountRepo) ExistsByEmail(context.Context, string) (bool, error) { return false, nil }
func (r *fakeAccountRepo) FindByID(_ context.Context, id int64) (*entity.Account, error) {
	a, ok := r.byID[id]
	if !ok {
		return nil, domain.ErrAccountNotFound
	}
	return a, nil
}
func (r *fakeAccountRepo) FindByEmail(_ context.Context, email string) (*entity.Account, error) {
	for _, a := range r.byID {
		if a.Profile.Email == email {
			return a, nil
		}
	}
	return nil, domain.ErrAccountNotFound
}
func (r *fakeAccountRepo) FindForSecurity(ctx context.Context, email string) (*entity.Account, error) {
	return r.FindByEmail(ctx, email)
}
func (r *fakeAccountRepo) UpdateProfile(context.Context, *entity.Account) error { return nil }

type fakeCompanyRepo struct {
	byID map[int64]*entity.Company
}

func (r *fakeCompanyRepo) Create(context.Context, *entity.Company) error { return nil }
func (r *fakeCompanyRepo) FindByID(_ context.Context, id int64) (*entity.Company, error) {
	c, ok := r.byID[id]
	if !ok {
		return nil, domain.ErrCompanyNotFound
	}
	return c, nil
}
func (r *fakeCompanyRepo) Update(context.Context, *entity.Company) error { return nil }

type fakeSheets struct {
	entries []entity.AttendanceEntry
}

func (s *fakeSheets) GenerateAttendanceSheet(_ context.Context, _ *entity.Company, _ time.Time, entries []entity.AttendanceEntry) ([]byte, error) {
	s.entries = entries
	return []byte("%PDF-fake"), nil
}

// movableClock permite avanzar la hora entre llamadas.
type movableClock struct{ now time.Time }

func (c *movableClock) Now() time.Time { return c.now }

const (
	employerID int64 = 1
	workerID   int64 = 2
	otherID    int64 = 3
	rivalID    int64 = 50
	companyID  int64 = 10
)

type fixture struct {
	uc      *AttendanceUseCase
	commute *fakeCommuteRepo
	absent  *fakeAbsentRepo
	sheets  *fakeSheets
	clock   *movableClock
}

func newFixture() *fixture {
	accounts := &fakeAccountRepo{byID: map[int64]*entity.Account{
		employerID: {ID: employerID, Profile: entity.MyProfile{Email: "boss@email.com", UserName: "boss"}, Roles: entity.RoleEmployer},
		workerID:   {ID: workerID, Profile: entity.MyProfile{Email: "test@email.com", UserName: "test"}, Roles: entity.RoleEmployee},
		otherID:    {ID: otherID, Profile: entity.MyProfile{Email: "other@email.com", UserName: "other"}, Roles: entity.RoleEmployee},
		rivalID:    {ID: rivalID, Profile: entity.MyProfile{Email: "rival@email.com", UserName: "rival"}, Roles: entity.RoleEmployer},
	}}
	companies := &fakeCompanyRepo{byID: map[int64]*entity.Company{
		companyID: {ID: companyID, AccountID: employerID, CompanyName: "wazard coffee"},
	}}
	f := &fixture{
		commute: &fakeCommuteRepo{users: map[int64]string{workerID: "test", otherID: "other"}},
		absent:  &fakeAbsentRepo{},
		sheets:  &fakeSheets{},
		clock:   &movableClock{now: time.Date(2023, 3, 6, 9, 0, 0, 0, time.UTC)},
	}
	f.uc = NewAttendanceUseCase(f.commute, f.absent, accounts, companies, Deps{Sheets: f.sheets, Clock: f.clock})
	return f
}

// ──────────────────────────────────────────────────────────────────────────────
// Entrada / salida
// ──────────────────────────────────────────────────────────────────────────────

func TestRecordEnterTime_GuardaFechaDeHoy(t *testing.T) {
	f := newFixture()

	out, err := f.uc.RecordEnterTime(context.Background(), dto.RecordEnterTimeRequest{AccountID: workerID, CompanyID: companyID, Tardy: true})
	require.NoError(t, err)
	assert.Equal(t, int64(1), out.EnterRecordID)
	require.Len(t, f.commute.enters, 1)
	assert.Equal(t, time.Date(2023, 3, 6, 0, 0, 0, 0, time.UTC), f.commute.enters[0].EnterDate)
	assert.True(t, f.commute.enters[0].Tardy)
}

func TestRecordExitTime_SinEntradaPrevia(t *testing.T) {
	f := newFixture()

	_, err := f.uc.RecordExitTime(context.Background(), dto.RecordExitTimeRequest{AccountID: workerID, CompanyID: companyID})
	assert.ErrorIs(t, err, domain.ErrEnterRecordNotFound)
	assert.Empty(t, f.commute.exits)
}

func TestRecordExitTime_LigadaALaEntrada(t *testing.T) {
	f := newFixture()
	ctx := context.Background()

	enter, err := f.uc.RecordEnterTime(ctx, dto.RecordEnterTimeRequest{AccountID: workerID, CompanyID: companyID})
	require.NoError(t, err)
	f.clock.now = f.clock.now.Add(8 * time.Hour)

	out, err := f.uc.RecordExitTime(ctx, dto.RecordExitTimeRequest{AccountID: workerID, CompanyID: companyID})
	require.NoError(t, err)
	assert.Equal(t, enter.EnterRecordID, out.EnterRecordID)
	require.Len(t, f.commute.exits, 1)
	assert.Equal(t, enter.EnterRecordID, f.commute.exits[0].EnterRecordID)

	_, err = f.uc.RecordExitTime(ctx, dto.RecordExitTimeRequest{AccountID: workerID, CompanyID: companyID})
	assert.ErrorIs(t, err, domain.ErrEnterRecordNotFound, "una entrada ya cerrada no admite otra salida")
}

func TestRecordExitTime_OtraEmpresaNoCuenta(t *testing.T) {
	f := newFixture()
	ctx := context.Background()

	_, err := f.uc.RecordEnterTime(ctx, dto.RecordEnterTimeRequest{AccountID: workerID, CompanyID: companyID})
	require.NoError(t, err)

	_, err = f.uc.RecordExitTime(ctx, dto.RecordExitTimeRequest{AccountID: workerID, CompanyID: 99})
	assert.ErrorIs(t, err, domain.ErrEnterRecordNotFound)
}

// ──────────────────────────────────────────────────────────────────────────────
// Ausencias
// ──────────────────────────────────────────────────────────────────────────────

func TestMarkingAbsent_Empleador(t *testing.T) {
	f := newFixture()

	err := f.uc.MarkingAbsent(context.Background(), dto.MarkingAbsentRequest{Email: "Boss@Email.com", CompanyID: companyID, AccountID: workerID})
	require.NoError(t, err)
	require.Len(t, f.absent.records, 1)
	assert.Equal(t, employerID, f.absent.records[0].MarkedBy)
	assert.Equal(t, workerID, f.absent.records[0].AccountID)
}

func TestMarkingAbsent_EmpleadoNoPuede(t *testing.T) {
	f := newFixture()

	err := f.uc.MarkingAbsent(context.Background(), dto.MarkingAbsentRequest{Email: "test@email.com", CompanyID: companyID, AccountID: otherID})
	assert.ErrorIs(t, err, domain.ErrForbidden)
	assert.Empty(t, f.absent.records)
}

func TestMarkingAbsent_EmpleadorDeOtraEmpresa(t *testing.T) {
	f := newFixture()

	err := f.uc.MarkingAbsent(context.Background(), dto.MarkingAbsentRequest{Email: "rival@email.com", CompanyID: companyID, AccountID: workerID})
	assert.ErrorIs(t, err, domain.ErrForbidden)
	assert.Empty(t, f.absent.records)
}

func TestMarkingAbsent_EmpresaInexistente(t *testing.T) {
	f := newFixture()

	err := f.uc.MarkingAbsent(context.Background(), dto.MarkingAbsentRequest{Email: "boss@email.com", CompanyID: 404, AccountID: workerID})
	assert.ErrorIs(t, err, domain.ErrCompanyNotFound)
	assert.Empty(t, f.absent.records)
}

func TestMarkingAbsent_ActorDesconocido(t *testing.T) {
	f := newFixture()

	err := f.uc.MarkingAbsent(context.Background(), dto.MarkingAbsentRequest{Email: "ghost@email.com", CompanyID: companyID, AccountID: workerID})
	assert.ErrorIs(t, err, domain.ErrAccountNotFound)
}

// ──────────────────────────────────────────────────────────────────────────────
// Consultas
// ──────────────────────────────────────────────────────────────────────────────

func TestGetMyAttendanceByDayOfTheWeek_OrdenDelStore(t *testing.T) {
	f := newFixture()
	ctx := context.Background()

	for i := 0; i < 3; i++ {
		_, err := f.uc.RecordEnterTime(ctx, dto.RecordEnterTimeRequest{AccountID: workerID, CompanyID: companyID})
		require.NoError(t, err)
		f.clock.now = f.clock.now.Add(time.Hour)
	}
	_, err := f.uc.RecordExitTime(ctx, dto.RecordExitTimeRequest{AccountID: workerID, CompanyID: companyID})
	require.NoError(t, err)

	out, err := f.uc.GetMyAttendanceByDayOfTheWeek(ctx, dto.GetAttendanceByDayOfTheWeekRequest{
		AccountID: workerID, CompanyID: companyID, Email: "test@email.com",
	}, time.Date(2023, 3, 6, 15, 0, 0, 0, time.UTC))
	require.NoError(t, err)
	require.Len(t, out, 3)
	for _, r := range out {
		assert.Equal(t, workerID, r.AccountID)
		assert.Equal(t, "test", r.UserName)
	}
	assert.True(t, out[0].EnterTime.Before(out[1].EnterTime))
	assert.Nil(t, out[0].ExitTime)
	require.NotNil(t, out[2].ExitTime, "la salida se liga a la última entrada abierta")
}

func TestGetMyAttendanceByDayOfTheWeek_OtroDiaVacio(t *testing.T) {
	f := newFixture()
	ctx := context.Background()
	_, err := f.uc.RecordEnterTime(ctx, dto.RecordEnterTimeRequest{AccountID: workerID, CompanyID: companyID})
	require.NoError(t, err)

	out, err := f.uc.GetMyAttendanceByDayOfTheWeek(ctx, dto.GetAttendanceByDayOfTheWeekRequest{
		AccountID: workerID, CompanyID: companyID, Email: "test@email.com",
	}, time.Date(2023, 3, 7, 0, 0, 0, 0, time.UTC))
	require.NoError(t, err)
	assert.Empty(t, out)
}

func TestGetMyAttendanceByDayOfTheWeek_Permisos(t *testing.T) {
	f := newFixture()
	ctx := context.Background()
	day := time.Date(2023, 3, 6, 0, 0, 0, 0, time.UTC)

	_, err := f.uc.GetMyAttendanceByDayOfTheWeek(ctx, dto.GetAttendanceByDayOfTheWeekRequest{
		AccountID: workerID, CompanyID: companyID, Email: "other@email.com",
	}, day)
	assert.ErrorIs(t, err, domain.ErrForbidden, "un empleado no ve la asistencia de otro")

	_, err = f.uc.GetMyAttendanceByDayOfTheWeek(ctx, dto.GetAttendanceByDayOfTheWeekRequest{
		AccountID: workerID, CompanyID: companyID, Email: "boss@email.com",
	}, day)
	assert.NoError(t, err, "el empleador dueño puede consultar a sus trabajadores")

	_, err = f.uc.GetMyAttendanceByDayOfTheWeek(ctx, dto.GetAttendanceByDayOfTheWeekRequest{
		AccountID: workerID, CompanyID: companyID, Email: "rival@email.com",
	}, day)
	assert.ErrorIs(t, err, domain.ErrForbidden, "un empleador ajeno no ve la asistencia de la empresa")

	_, err = f.uc.GetMyAttendanceByDayOfTheWeek(ctx, dto.GetAttendanceByDayOfTheWeekRequest{
		AccountID: rivalID, CompanyID: companyID, Email: "rival@email.com",
	}, day)
	assert.NoError(t, err, "cada cuenta puede consultar la suya")
}

func TestGetAttendanceSheet(t *testing.T) {
	f := newFixture()
	ctx := context.Background()
	_, err := f.uc.RecordEnterTime(ctx, dto.RecordEnterTimeRequest{AccountID: workerID, CompanyID: companyID})
	require.NoError(t, err)
	_, err = f.uc.RecordEnterTime(ctx, dto.RecordEnterTimeRequest{AccountID: otherID, CompanyID: companyID})
	require.NoError(t, err)

	pdf, err := f.uc.GetAttendanceSheet(ctx, "boss@email.com", companyID, f.clock.now)
	require.NoError(t, err)
	assert.Equal(t, "%PDF-fake", string(pdf))
	assert.Len(t, f.sheets.entries, 2)

	_, err = f.uc.GetAttendanceSheet(ctx, "test@email.com", companyID, f.clock.now)
	assert.ErrorIs(t, err, domain.ErrForbidden)

	_, err = f.uc.GetAttendanceSheet(ctx, "rival@email.com", companyID, f.clock.now)
	assert.ErrorIs(t, err, domain.ErrForbidden)

	_, err = f.uc.GetAttendanceSheet(ctx, "boss@email.com", 404, f.clock.now)
	assert.ErrorIs(t, err, domain.ErrCompanyNotFound)
}
