package usecase

import (
	"context"
	"strings"

	"github.com/jhoicas/wazard-api/internal/application/dto"
	"github.com/jhoicas/wazard-api/internal/application/ports"
	"github.com/jhoicas/wazard-api/internal/domain"
	"github.com/jhoicas/wazard-api/internal/domain/entity"
	"github.com/jhoicas/wazard-api/internal/domain/repository"
)

// CompanyUseCase aplica reglas de negocio para empresas (casos de uso).
type CompanyUseCase struct {
	repo        repository.CompanyRepository
	accountRepo repository.AccountRepository
	tx          ports.TxManager
	clock       ports.Clock
}

// NewCompanyUseCase construye el caso de uso con los puertos de persistencia.
func NewCompanyUseCase(repo repository.CompanyRepository, accountRepo repository.AccountRepository, tx ports.TxManager, clock ports.Clock) *CompanyUseCase {
	if tx == nil {
		tx = ports.NoopTxManager{}
	}
	if clock == nil {
		clock = ports.SystemClock{}
	}
	return &CompanyUseCase{repo: repo, accountRepo: accountRepo, tx: tx, clock: clock}
}

// RegisterCompany crea una empresa ligada a la cuenta accountID.
// Devuelve domain.ErrAccountNotFound si la cuenta no existe.
func (uc *CompanyUseCase) RegisterCompany(ctx context.Context, accountID int64, in dto.RegisterCompanyRequest) (*dto.CompanyResponse, error) {
	if strings.TrimSpace(in.CompanyName) == "" || in.SalaryDate < 1 || in.SalaryDate > 31 || in.HourlyWage.IsNegative() {
		return nil, domain.ErrInvalidInput
	}

	var company *entity.Company
	err := uc.tx.WithinReadWrite(ctx, func(txCtx context.Context) error {
		if _, err := uc.accountRepo.FindByID(txCtx, accountID); err != nil {
			return err
		}
		now := uc.clock.Now()
		company = &entity.Company{
			AccountID:      accountID,
			CompanyName:    strings.TrimSpace(in.CompanyName),
			ZipCode:        strings.TrimSpace(in.ZipCode),
			Address:        strings.TrimSpace(in.Address),
			CompanyContact: strings.TrimSpace(in.CompanyContact),
			SalaryDate:     in.SalaryDate,
			LogoImageURL:   strings.TrimSpace(in.LogoImageURL),
			HourlyWage:     in.HourlyWage,
			State:          entity.CompanyStateActive,
			CreatedAt:      now,
			UpdatedAt:      now,
		}
		return uc.repo.Create(txCtx, company)
	})
	if err != nil {
		return nil, err
	}
	return entityToCompanyResponse(company), nil
}

// UpdateCompanyInfo aplica solo los campos presentes en el request.
// Devuelve domain.ErrCompanyNotFound si no existe y domain.ErrForbidden si accountID no es el dueño.
func (uc *CompanyUseCase) UpdateCompanyInfo(ctx context.Context, accountID int64, in dto.UpdateCompanyInfoRequest) (*dto.CompanyResponse, error) {
	var company *entity.Company
	err := uc.tx.WithinReadWrite(ctx, func(txCtx context.Context) error {
		var err error
		company, err = uc.repo.FindByID(txCtx, in.CompanyID)
		if err != nil {
			return err
		}
		if !company.OwnedBy(accountID) {
			return domain.ErrForbidden
		}
		if err := applyCompanyChanges(company, in); err != nil {
			return err
		}
		company.UpdatedAt = uc.clock.Now()
		return uc.repo.Update(txCtx, company)
	})
	if err != nil {
		return nil, err
	}
	return entityToCompanyResponse(company), nil
}

// GetCompanyInfo obtiene una empresa por ID. Solo el dueño (accountID) puede leerla.
func (uc *CompanyUseCase) GetCompanyInfo(ctx context.Context, accountID, companyID int64) (*dto.CompanyResponse, error) {
	var company *entity.Company
	err := uc.tx.WithinReadOnly(ctx, func(txCtx context.Context) error {
		var err error
		company, err = uc.repo.FindByID(txCtx, companyID)
		if err != nil {
			return err
		}
		if !company.OwnedBy(accountID) {
			return domain.ErrForbidden
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return entityToCompanyResponse(company), nil
}

func applyCompanyChanges(c *entity.Company, in dto.UpdateCompanyInfoRequest) error {
	if in.CompanyName != nil {
		name := strings.TrimSpace(*in.CompanyName)
		if name == "" {
			return domain.ErrInvalidInput
		}
		c.CompanyName = name
	}
	if in.ZipCode != nil {
		c.ZipCode = strings.TrimSpace(*in.ZipCode)
	}
	if in.Address != nil {
		c.Address = strings.TrimSpace(*in.Address)
	}
	if in.CompanyContact != nil {
		c.CompanyContact = strings.TrimSpace(*in.CompanyContact)
	}
	if in.SalaryDate != nil {
		if *in.SalaryDate < 1 || *in.SalaryDate > 31 {
			return domain.ErrInvalidInput
		}
		c.SalaryDate = *in.SalaryDate
	}
	if in.LogoImageURL != nil {
		c.LogoImageURL = strings.TrimSpace(*in.LogoImageURL)
	}
	if in.HourlyWage != nil {
		if in.HourlyWage.IsNegative() {
			return domain.ErrInvalidInput
		}
		c.HourlyWage = *in.HourlyWage
	}
	return nil
}

func entityToCompanyResponse(c *entity.Company) *dto.CompanyResponse {
	if c == nil {
		return nil
	}
	return &dto.CompanyResponse{
		CompanyID:      c.ID,
		AccountID:      c.AccountID,
		CompanyName:    c.CompanyName,
		ZipCode:        c.ZipCode,
		Address:        c.Address,
		CompanyContact: c.CompanyContact,
		SalaryDate:     c.SalaryDate,
		LogoImageURL:   c.LogoImageURL,
		HourlyWage:     c.HourlyWage,
		State:          c.State,
		UpdatedAt:      c.UpdatedAt,
	}
}
