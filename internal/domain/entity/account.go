package entity

import "time"

// Roles válidos para Account.
const (
	RoleEmployer = "EMPLOYER"
	RoleEmployee = "EMPLOYEE"
)

// Estados del ciclo de vida de una cuenta.
const (
	AccountStateActive   = "ACTIVE"
	AccountStateInactive = "INACTIVE"
)

// GenderType género declarado en el perfil.
type GenderType string

const (
	GenderMale   GenderType = "MALE"
	GenderFemale GenderType = "FEMALE"
)

// Valid informa si el género es uno de los conocidos.
func (g GenderType) Valid() bool {
	return g == GenderMale || g == GenderFemale
}

// MyProfile datos personales editables de la cuenta.
type MyProfile struct {
	Email       string
	Password    string // hash bcrypt; vacío cuando la cuenta se carga sin credenciales
	UserName    string
	PhoneNumber string
	Gender      GenderType
	Birth       time.Time
}

// Account representa una cuenta (empleador o trabajador). Nunca se borra físicamente.
type Account struct {
	ID        int64
	Profile   MyProfile
	Roles     string // EMPLOYER, EMPLOYEE
	State     string // ACTIVE, INACTIVE
	CreatedAt time.Time
	UpdatedAt time.Time
}

// IsEmployer informa si la cuenta tiene rol de empleador.
func (a *Account) IsEmployer() bool {
	return a != nil && a.Roles == RoleEmployer
}

// IsActive informa si la cuenta puede operar.
func (a *Account) IsActive() bool {
	return a != nil && a.State == AccountStateActive
}
