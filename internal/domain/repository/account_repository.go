package repository

import (
	"context"

	"github.com/jhoicas/wazard-api/internal/domain/entity"
)

// AccountRepository define el puerto de persistencia para Account (DIP).
type AccountRepository interface {
	// Create persiste la cuenta y asigna account.ID.
	Create(ctx context.Context, account *entity.Account) error
	ExistsByEmail(ctx context.Context, email string) (bool, error)
	// FindByID devuelve domain.ErrAccountNotFound si no existe.
	FindByID(ctx context.Context, id int64) (*entity.Account, error)
	// FindByEmail devuelve domain.ErrAccountNotFound si no existe.
	FindByEmail(ctx context.Context, email string) (*entity.Account, error)
	// FindForSecurity carga solo email, hash y roles (para login).
	FindForSecurity(ctx context.Context, email string) (*entity.Account, error)
	UpdateProfile(ctx context.Context, account *entity.Account) error
}
