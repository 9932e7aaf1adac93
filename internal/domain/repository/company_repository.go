package repository

import (
	"context"

	"github.com/jhoicas/wazard-api/internal/domain/entity"
)

// CompanyRepository define el puerto de persistencia para Company (DIP).
// La implementación vive en infrastructure.
type CompanyRepository interface {
	Create(ctx context.Context, company *entity.Company) error
	// FindByID devuelve domain.ErrCompanyNotFound si no existe.
	FindByID(ctx context.Context, id int64) (*entity.Company, error)
	Update(ctx context.Context, company *entity.Company) error
}
