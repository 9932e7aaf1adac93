package postgres

import (
	"context"
	"regexp"
	"testing"
	"time"

	"github.com/jackc/pgx/v5/pgconn"
	pgxmock "github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/wazard-api/internal/domain"
	"github.com/jhoicas/wazard-api/internal/domain/entity"
)

var accountCols = []string{"id", "email", "user_name", "phone_number", "gender", "birth", "roles", "state", "created_at", "updated_at"}

func sampleAccount() *entity.Account {
	now := time.Date(2023, 3, 6, 9, 0, 0, 0, time.UTC)
	return &entity.Account{
		Profile: entity.MyProfile{
			Email:       "test@email.com",
			Password:    "$2a$10$hash",
			UserName:    "test",
			PhoneNumber: "010-1111-1111",
			Gender:      entity.GenderMale,
			Birth:       time.Date(1998, 1, 23, 0, 0, 0, 0, time.UTC),
		},
		Roles:     entity.RoleEmployee,
		State:     entity.AccountStateActive,
		CreatedAt: now,
		UpdatedAt: now,
	}
}

func TestAccountRepo_Create(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	a := sampleAccount()
	mock.ExpectQuery(regexp.QuoteMeta(insertAccountSQL)).
		WithArgs(a.Profile.Email, a.Profile.Password, a.Profile.UserName, a.Profile.PhoneNumber, "MALE",
			a.Profile.Birth, a.Roles, a.State, a.CreatedAt, a.UpdatedAt).
		WillReturnRows(pgxmock.NewRows([]string{"id"}).AddRow(int64(7)))

	require.NoError(t, NewAccountRepository(mock).Create(context.Background(), a))
	assert.Equal(t, int64(7), a.ID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestAccountRepo_Create_EmailDuplicado(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	mock.ExpectQuery(regexp.QuoteMeta(insertAccountSQL)).
		WithArgs(anyArgs(10)...).
		WillReturnError(&pgconn.PgError{Code: uniqueViolationCode})

	err = NewAccountRepository(mock).Create(context.Background(), sampleAccount())
	assert.ErrorIs(t, err, domain.ErrDuplicateEmail)
	assert.NoError(t, mock.ExpectationsWereMet())
}

// anyArgs acepta n argumentos cualesquiera en una expectativa de pgxmock.
func anyArgs(n int) []any {
	args := make([]any, n)
	for i := range args {
		args[i] = pgxmock.AnyArg()
	}
	return args
}

func TestAccountRepo_FindByID(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	a := sampleAccount()
	mock.ExpectQuery(regexp.QuoteMeta(findAccountByIDSQL)).
		WithArgs(int64(1)).
		WillReturnRows(pgxmock.NewRows(accountCols).AddRow(
			int64(1), a.Profile.Email, a.Profile.UserName, a.Profile.PhoneNumber, "MALE", a.Profile.Birth,
			a.Roles, a.State, a.CreatedAt, a.UpdatedAt,
		))

	found, err := NewAccountRepository(mock).FindByID(context.Background(), 1)
	require.NoError(t, err)
	assert.Equal(t, int64(1), found.ID)
	assert.Equal(t, entity.GenderMale, found.Profile.Gender)
	assert.Empty(t, found.Profile.Password, "el perfil nunca trae el hash")
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestAccountRepo_FindByEmail_NoExiste(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	mock.ExpectQuery(regexp.QuoteMeta(findAccountByEmailSQL)).
		WithArgs("nadie@email.com").
		WillReturnRows(pgxmock.NewRows(accountCols))

	_, err = NewAccountRepository(mock).FindByEmail(context.Background(), "nadie@email.com")
	assert.ErrorIs(t, err, domain.ErrAccountNotFound)
}

func TestAccountRepo_FindForSecurity(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	mock.ExpectQuery(regexp.QuoteMeta(findAccountSecuritySQL)).
		WithArgs("boss@email.com").
		WillReturnRows(pgxmock.NewRows([]string{"id", "email", "password", "roles", "state"}).
			AddRow(int64(3), "boss@email.com", "$2a$10$hash", entity.RoleEmployer, entity.AccountStateActive))

	found, err := NewAccountRepository(mock).FindForSecurity(context.Background(), "boss@email.com")
	require.NoError(t, err)
	assert.Equal(t, "$2a$10$hash", found.Profile.Password)
	assert.True(t, found.IsEmployer())
}

func TestAccountRepo_UpdateProfile_NoExiste(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	a := sampleAccount()
	a.ID = 99
	mock.ExpectExec(regexp.QuoteMeta(updateAccountProfileSQL)).
		WithArgs(a.Profile.UserName, a.Profile.PhoneNumber, "MALE", a.Profile.Birth, a.UpdatedAt, int64(99)).
		WillReturnResult(pgxmock.NewResult("UPDATE", 0))

	err = NewAccountRepository(mock).UpdateProfile(context.Background(), a)
	assert.ErrorIs(t, err, domain.ErrAccountNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}
