package security

import (
	"fmt"

	"golang.org/x/crypto/bcrypt"

	"github.com/jhoicas/wazard-api/internal/application/ports"
)

var _ ports.PasswordEncoder = (*BcryptEncoder)(nil)

// BcryptEncoder hashea contraseñas con bcrypt.
type BcryptEncoder struct {
	cost int
}

// NewBcryptEncoder usa bcrypt.DefaultCost si cost está fuera de rango.
func NewBcryptEncoder(cost int) *BcryptEncoder {
	if cost < bcrypt.MinCost || cost > bcrypt.MaxCost {
		cost = bcrypt.DefaultCost
	}
	return &BcryptEncoder{cost: cost}
}

// Encode devuelve el hash de raw.
func (e *BcryptEncoder) Encode(raw string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(raw), e.cost)
	if err != nil {
		return "", fmt.Errorf("hash password: %w", err)
	}
	return string(hash), nil
}

// Matches compara raw contra un hash generado por Encode.
func (e *BcryptEncoder) Matches(raw, encoded string) bool {
	return bcrypt.CompareHashAndPassword([]byte(encoded), []byte(raw)) == nil
}
