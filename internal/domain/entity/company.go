package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Estados de una empresa.
const (
	CompanyStateActive   = "ACTIVE"
	CompanyStateInactive = "INACTIVE"
)

// Company representa una empresa registrada por una cuenta empleadora.
type Company struct {
	ID             int64
	AccountID      int64 // cuenta dueña
	CompanyName    string
	ZipCode        string
	Address        string
	CompanyContact string
	SalaryDate     int             // día de pago (1..31)
	LogoImageURL   string
	HourlyWage     decimal.Decimal // salario por hora por defecto (NUMERIC)
	State          string
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

// OwnedBy informa si la empresa pertenece a la cuenta.
func (c *Company) OwnedBy(accountID int64) bool {
	return c != nil && c.AccountID == accountID
}
