package postgres

import (
	"context"
	"fmt"

	"github.com/jhoicas/wazard-api/internal/domain"
	"github.com/jhoicas/wazard-api/internal/domain/entity"
	"github.com/jhoicas/wazard-api/internal/domain/repository"
)

// Asegura que CompanyRepo implementa repository.CompanyRepository.
var _ repository.CompanyRepository = (*CompanyRepo)(nil)

const companyColumns = `id, account_id, company_name, zip_code, address, company_contact, salary_date,
		logo_image_url, hourly_wage, state, created_at, updated_at`

const (
	insertCompanySQL = `
		INSERT INTO companies (account_id, company_name, zip_code, address, company_contact, salary_date,
			logo_image_url, hourly_wage, state, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
		RETURNING id`
	findCompanyByIDSQL = `SELECT ` + companyColumns + ` FROM companies WHERE id = $1`
	updateCompanySQL   = `
		UPDATE companies
		   SET company_name = $1, zip_code = $2, address = $3, company_contact = $4, salary_date = $5,
		       logo_image_url = $6, hourly_wage = $7, state = $8, updated_at = $9
		 WHERE id = $10`
)

// CompanyRepo implementación del puerto CompanyRepository sobre PostgreSQL.
type CompanyRepo struct {
	db Queryer
}

// NewCompanyRepository construye el adaptador de persistencia para empresas.
func NewCompanyRepository(db Queryer) *CompanyRepo {
	return &CompanyRepo{db: db}
}

// Create persiste una nueva empresa y asigna su ID.
func (r *CompanyRepo) Create(ctx context.Context, company *entity.Company) error {
	row := companyToRow(company)
	err := QueryerFromContext(ctx, r.db).QueryRow(ctx, insertCompanySQL,
		row.AccountID, row.CompanyName, row.ZipCode, row.Address, row.CompanyContact, row.SalaryDate,
		row.LogoImageURL, row.HourlyWage, row.State, row.CreatedAt, row.UpdatedAt,
	).Scan(&company.ID)
	if err != nil {
		if isForeignKeyViolation(err) {
			return domain.ErrAccountNotFound
		}
		return fmt.Errorf("insert company: %w", err)
	}
	return nil
}

// FindByID obtiene una empresa por ID.
func (r *CompanyRepo) FindByID(ctx context.Context, id int64) (*entity.Company, error) {
	c, err := scanCompany(QueryerFromContext(ctx, r.db).QueryRow(ctx, findCompanyByIDSQL, id))
	if err != nil {
		if isNoRows(err) {
			return nil, domain.ErrCompanyNotFound
		}
		return nil, fmt.Errorf("get company: %w", err)
	}
	return c, nil
}

// Update sobrescribe los campos editables de la empresa.
func (r *CompanyRepo) Update(ctx context.Context, company *entity.Company) error {
	row := companyToRow(company)
	tag, err := QueryerFromContext(ctx, r.db).Exec(ctx, updateCompanySQL,
		row.CompanyName, row.ZipCode, row.Address, row.CompanyContact, row.SalaryDate,
		row.LogoImageURL, row.HourlyWage, row.State, row.UpdatedAt, row.ID,
	)
	if err != nil {
		return fmt.Errorf("update company: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrCompanyNotFound
	}
	return nil
}
