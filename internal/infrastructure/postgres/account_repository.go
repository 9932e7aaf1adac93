package postgres

import (
	"context"
	"fmt"

	"github.com/jhoicas/wazard-api/internal/domain"
	"github.com/jhoicas/wazard-api/internal/domain/entity"
	"github.com/jhoicas/wazard-api/internal/domain/repository"
)

var _ repository.AccountRepository = (*AccountRepo)(nil)

const accountColumns = `id, email, user_name, phone_number, gender, birth, roles, state, created_at, updated_at`

const (
	insertAccountSQL = `
		INSERT INTO accounts (email, password, user_name, phone_number, gender, birth, roles, state, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		RETURNING id`
	existsAccountByEmailSQL = `SELECT EXISTS (SELECT 1 FROM accounts WHERE email = $1)`
	findAccountByIDSQL      = `SELECT ` + accountColumns + ` FROM accounts WHERE id = $1`
	findAccountByEmailSQL   = `SELECT ` + accountColumns + ` FROM accounts WHERE email = $1`
	findAccountSecuritySQL  = `SELECT id, email, password, roles, state FROM accounts WHERE email = $1`
	updateAccountProfileSQL = `
		UPDATE accounts
		   SET user_name = $1, phone_number = $2, gender = $3, birth = $4, updated_at = $5
		 WHERE id = $6`
)

// AccountRepo implementación del puerto AccountRepository sobre PostgreSQL.
type AccountRepo struct {
	db Queryer
}

// NewAccountRepository construye el adaptador; db suele ser el *pgxpool.Pool.
func NewAccountRepository(db Queryer) *AccountRepo {
	return &AccountRepo{db: db}
}

// Create inserta la cuenta y asigna el ID generado.
func (r *AccountRepo) Create(ctx context.Context, account *entity.Account) error {
	row := accountToRow(account)
	err := QueryerFromContext(ctx, r.db).QueryRow(ctx, insertAccountSQL,
		row.Email, row.Password, row.UserName, row.PhoneNumber, row.Gender, row.Birth,
		row.Roles, row.State, row.CreatedAt, row.UpdatedAt,
	).Scan(&account.ID)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicateEmail
		}
		return fmt.Errorf("insert account: %w", err)
	}
	return nil
}

// ExistsByEmail informa si ya hay una cuenta con ese email.
func (r *AccountRepo) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	var exists bool
	if err := QueryerFromContext(ctx, r.db).QueryRow(ctx, existsAccountByEmailSQL, email).Scan(&exists); err != nil {
		return false, fmt.Errorf("exists account by email: %w", err)
	}
	return exists, nil
}

// FindByID obtiene una cuenta sin credenciales.
func (r *AccountRepo) FindByID(ctx context.Context, id int64) (*entity.Account, error) {
	a, err := scanAccount(QueryerFromContext(ctx, r.db).QueryRow(ctx, findAccountByIDSQL, id))
	if err != nil {
		if isNoRows(err) {
			return nil, domain.ErrAccountNotFound
		}
		return nil, fmt.Errorf("get account: %w", err)
	}
	return a, nil
}

// FindByEmail obtiene una cuenta sin credenciales.
func (r *AccountRepo) FindByEmail(ctx context.Context, email string) (*entity.Account, error) {
	a, err := scanAccount(QueryerFromContext(ctx, r.db).QueryRow(ctx, findAccountByEmailSQL, email))
	if err != nil {
		if isNoRows(err) {
			return nil, domain.ErrAccountNotFound
		}
		return nil, fmt.Errorf("get account by email: %w", err)
	}
	return a, nil
}

// FindForSecurity carga id, email, hash, rol y estado.
func (r *AccountRepo) FindForSecurity(ctx context.Context, email string) (*entity.Account, error) {
	var row accountRow
	err := QueryerFromContext(ctx, r.db).QueryRow(ctx, findAccountSecuritySQL, email).Scan(
		&row.ID, &row.Email, &row.Password, &row.Roles, &row.State,
	)
	if err != nil {
		if isNoRows(err) {
			return nil, domain.ErrAccountNotFound
		}
		return nil, fmt.Errorf("get account for security: %w", err)
	}
	return row.toEntity(), nil
}

// UpdateProfile actualiza los datos personales; email y password no se tocan.
func (r *AccountRepo) UpdateProfile(ctx context.Context, account *entity.Account) error {
	row := accountToRow(account)
	tag, err := QueryerFromContext(ctx, r.db).Exec(ctx, updateAccountProfileSQL,
		row.UserName, row.PhoneNumber, row.Gender, row.Birth, row.UpdatedAt, row.ID,
	)
	if err != nil {
		return fmt.Errorf("update account profile: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrAccountNotFound
	}
	return nil
}
