package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// RegisterCompanyRequest entrada para registrar una empresa.
type RegisterCompanyRequest struct {
	CompanyName    string          `json:"companyName" validate:"required,min=1,max=100"`
	ZipCode        string          `json:"zipCode" validate:"required,max=10"`
	Address        string          `json:"address" validate:"required,max=200"`
	CompanyContact string          `json:"companyContact" validate:"required,max=20"`
	SalaryDate     int             `json:"salaryDate" validate:"required,min=1,max=31"`
	LogoImageURL   string          `json:"logoImageUrl" validate:"omitempty,url"`
	HourlyWage     decimal.Decimal `json:"hourlyWage"`
}

// UpdateCompanyInfoRequest entrada para actualizar una empresa (campos opcionales).
type UpdateCompanyInfoRequest struct {
	CompanyID      int64            `json:"companyId" validate:"required,gt=0"`
	CompanyName    *string          `json:"companyName" validate:"omitempty,min=1,max=100"`
	ZipCode        *string          `json:"zipCode" validate:"omitempty,max=10"`
	Address        *string          `json:"address" validate:"omitempty,max=200"`
	CompanyContact *string          `json:"companyContact" validate:"omitempty,max=20"`
	SalaryDate     *int             `json:"salaryDate" validate:"omitempty,min=1,max=31"`
	LogoImageURL   *string          `json:"logoImageUrl" validate:"omitempty,url"`
	HourlyWage     *decimal.Decimal `json:"hourlyWage"`
}

// CompanyResponse resumen de una empresa.
type CompanyResponse struct {
	CompanyID      int64           `json:"companyId"`
	AccountID      int64           `json:"accountId"`
	CompanyName    string          `json:"companyName"`
	ZipCode        string          `json:"zipCode"`
	Address        string          `json:"address"`
	CompanyContact string          `json:"companyContact"`
	SalaryDate     int             `json:"salaryDate"`
	LogoImageURL   string          `json:"logoImageUrl"`
	HourlyWage     decimal.Decimal `json:"hourlyWage"`
	State          string          `json:"state"`
	UpdatedAt      time.Time       `json:"updatedAt"`
}
